package usecase

import (
	"context"
	"testing"

	"laborlink/internal/domain/site"
	"laborlink/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSite_BannerFallsBackToDefaultLocale(t *testing.T) {
	uc := NewSiteUsecase(repository.NewMemorySiteRepository(nil, nil), nil)
	ctx := context.Background()

	b, err := uc.Banner(ctx, "bn-BD")
	require.NoError(t, err)
	assert.Equal(t, "bn", b.Locale)
	assert.Contains(t, b.Text, "শ্রমিক")

	_, err = uc.UpdateBanner(ctx, employer, map[string]string{"en": "x"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = uc.UpdateBanner(ctx, admin, map[string]string{"hi": "केवल हिंदी"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = uc.UpdateBanner(ctx, admin, map[string]string{"en": "Hi", "fr": "Salut"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	saved, err := uc.UpdateBanner(ctx, admin, map[string]string{"EN": " Painters wanted ", "hi": "पेंटर चाहिए", "bn": " "})
	require.NoError(t, err)
	assert.Equal(t, site.Banner{"en": "Painters wanted", "hi": "पेंटर चाहिए"}, saved)

	b, err = uc.Banner(ctx, "bn")
	require.NoError(t, err)
	assert.Equal(t, "Painters wanted", b.Text)
	b, err = uc.Banner(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "पेंटर चाहिए", b.Text)

	_, err = uc.BannerTexts(ctx, employer)
	assert.ErrorIs(t, err, ErrForbidden)
	texts, err := uc.BannerTexts(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, texts, 2)
}

func TestSite_HeroImages(t *testing.T) {
	uc := NewSiteUsecase(repository.NewMemorySiteRepository(nil, nil), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		url  string
		want error
	}{
		{"relative path", "/img/a.jpg", ErrInvalidInput},
		{"ftp scheme", "ftp://example.com/a.jpg", ErrInvalidInput},
		{"empty", "  ", ErrInvalidInput},
		{"https", "https://example.com/site.jpg", nil},
		{"uploaded data url", "data:image/png;base64,iVBORw0KGgo=", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.AddHeroImage(ctx, admin, tt.url)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := uc.AddHeroImage(ctx, employer, "https://example.com/x.jpg")
	assert.ErrorIs(t, err, ErrForbidden)

	images, err := uc.HeroImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 6)
	assert.Equal(t, "https://example.com/site.jpg", images[4].URL)

	assert.ErrorIs(t, uc.RemoveHeroImage(ctx, employer, images[4].ID), ErrForbidden)
	require.NoError(t, uc.RemoveHeroImage(ctx, admin, images[4].ID))
	assert.ErrorIs(t, uc.RemoveHeroImage(ctx, admin, images[4].ID), ErrNotFound)

	images, err = uc.HeroImages(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 5)
}
