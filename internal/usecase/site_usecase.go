package usecase

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strings"

	"laborlink/internal/domain/site"
	"laborlink/internal/domain/user"
	"laborlink/internal/locale"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

// LocalizedBanner is the notification text for one locale. It falls back to
// the default locale when the admin left that translation empty.
type LocalizedBanner struct {
	Locale string
	Text   string
}

type SiteUsecase interface {
	Banner(ctx context.Context, lang string) (LocalizedBanner, error)
	BannerTexts(ctx context.Context, actor user.Actor) (site.Banner, error)
	UpdateBanner(ctx context.Context, actor user.Actor, texts map[string]string) (site.Banner, error)
	HeroImages(ctx context.Context) ([]site.HeroImage, error)
	AddHeroImage(ctx context.Context, actor user.Actor, rawURL string) (site.HeroImage, error)
	RemoveHeroImage(ctx context.Context, actor user.Actor, id string) error
}

type Site struct {
	repo   site.Repository
	logger *logging.Logger
}

func NewSiteUsecase(repo site.Repository, logger *logging.Logger) *Site {
	return &Site{repo: repo, logger: logger}
}

func (u *Site) Banner(ctx context.Context, lang string) (LocalizedBanner, error) {
	b, err := u.repo.Banner(ctx)
	if err != nil {
		return LocalizedBanner{}, ErrInternal
	}
	code := locale.Resolve(lang)
	return LocalizedBanner{Locale: code, Text: fallback(b[code], b[locale.Default])}, nil
}

func (u *Site) BannerTexts(ctx context.Context, actor user.Actor) (site.Banner, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	b, err := u.repo.Banner(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return b, nil
}

// UpdateBanner replaces every locale's text at once. The default locale must
// be present; other supported locales are optional.
func (u *Site) UpdateBanner(ctx context.Context, actor user.Actor, texts map[string]string) (site.Banner, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	b := make(site.Banner, len(texts))
	for k, v := range texts {
		code := strings.ToLower(strings.TrimSpace(k))
		if !slices.Contains(locale.Supported, code) {
			return nil, ErrInvalidInput
		}
		if v = strings.TrimSpace(v); v != "" {
			b[code] = v
		}
	}
	if b[locale.Default] == "" {
		return nil, ErrInvalidInput
	}
	if err := u.repo.SaveBanner(ctx, b); err != nil {
		return nil, ErrInternal
	}
	u.logger.Info("banner updated", "locales", len(b))
	return b, nil
}

func (u *Site) HeroImages(ctx context.Context) ([]site.HeroImage, error) {
	images, err := u.repo.HeroImages(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return images, nil
}

// AddHeroImage accepts an absolute http(s) URL or an inline data:image URL
// from an upload.
func (u *Site) AddHeroImage(ctx context.Context, actor user.Actor, rawURL string) (site.HeroImage, error) {
	if actor.Role != user.RoleAdmin {
		return site.HeroImage{}, ErrForbidden
	}
	link := strings.TrimSpace(rawURL)
	if !validImageURL(link) {
		return site.HeroImage{}, ErrInvalidInput
	}
	img := site.HeroImage{ID: uuid.NewString(), URL: link}
	if err := u.repo.AddHeroImage(ctx, img); err != nil {
		return site.HeroImage{}, ErrInternal
	}
	u.logger.Info("hero image added", "id", img.ID)
	return img, nil
}

func (u *Site) RemoveHeroImage(ctx context.Context, actor user.Actor, id string) error {
	if actor.Role != user.RoleAdmin {
		return ErrForbidden
	}
	if err := u.repo.RemoveHeroImage(ctx, id); err != nil {
		if errors.Is(err, site.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func validImageURL(link string) bool {
	if strings.HasPrefix(link, "data:image/") {
		return strings.Contains(link, ",")
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
