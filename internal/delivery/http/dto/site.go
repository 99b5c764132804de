package dto

import (
	"laborlink/internal/domain/site"
	"laborlink/internal/usecase"
)

type BannerRequest struct {
	Texts map[string]string `json:"texts"`
}

type BannerResponse struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

func NewBannerResponse(b usecase.LocalizedBanner) BannerResponse {
	return BannerResponse{Locale: b.Locale, Text: b.Text}
}

type BannerTextsResponse struct {
	Texts site.Banner `json:"texts"`
}

type HeroImageRequest struct {
	URL string `json:"url"`
}
