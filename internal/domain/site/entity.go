package site

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("hero image not found")
	ErrInvalidInput = errors.New("invalid site content")
)

// Banner holds the scrolling notification text keyed by locale code.
type Banner map[string]string

type HeroImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Repository interface {
	Banner(ctx context.Context) (Banner, error)
	SaveBanner(ctx context.Context, b Banner) error
	HeroImages(ctx context.Context) ([]HeroImage, error)
	AddHeroImage(ctx context.Context, img HeroImage) error
	// RemoveHeroImage returns ErrNotFound when no image has the id.
	RemoveHeroImage(ctx context.Context, id string) error
}

func DefaultBanner() Banner {
	return Banner{
		"en": "🔔 Workers Needed! Apply Today • 👷 New Construction jobs available in Andheri • ⚡ Electricians needed urgently • 📞 Call us now: +91 98765 43210",
		"hi": "🔔 कामगारों की आवश्यकता है! आज ही आवेदन करें • 👷 अंधेरी में नए निर्माण कार्य उपलब्ध हैं • ⚡ इलेक्ट्रीशियन की तत्काल आवश्यकता है • 📞 हमें अभी कॉल करें: +91 98765 43210",
		"bn": "🔔 শ্রমিক প্রয়োজন! আজই আবেদন করুন • 👷 আন্ধেরিতে নতুন নির্মাণ কাজ উপলব্ধ • ⚡ ইলেকট্রিশিয়ান জরুরিভাবে প্রয়োজন • 📞 এখনই আমাদের কল করুন: +91 98765 43210",
	}
}

func DefaultHeroImages() []HeroImage {
	const q = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"
	return []HeroImage{
		{ID: "1", URL: "https://images.unsplash.com/photo-1504307651254-35680f356dfd" + q},
		{ID: "2", URL: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158" + q},
		{ID: "3", URL: "https://images.unsplash.com/photo-1621905251189-fc415343e6ae" + q},
		{ID: "4", URL: "https://images.unsplash.com/photo-1535732820275-9ffd998cac22" + q},
	}
}
