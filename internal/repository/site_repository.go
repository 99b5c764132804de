package repository

import (
	"context"
	"maps"
	"sync"

	"laborlink/internal/domain/site"
	"laborlink/internal/pkg/logging"
)

const (
	bannerSnapshotKey     = "site:banner"
	heroImagesSnapshotKey = "site:hero_images"
)

// MemorySiteRepository starts from the built-in banner and hero slides until
// an admin edits them or a snapshot is restored.
type MemorySiteRepository struct {
	mu     sync.RWMutex
	banner site.Banner
	images []site.HeroImage
	snap   Snapshotter
	logger *logging.Logger
}

func NewMemorySiteRepository(snap Snapshotter, logger *logging.Logger) *MemorySiteRepository {
	if snap == nil {
		snap = noopSnapshotter{}
	}
	return &MemorySiteRepository{
		banner: site.DefaultBanner(),
		images: site.DefaultHeroImages(),
		snap:   snap,
		logger: logger,
	}
}

// Restore replaces whichever of banner and hero images has a snapshot.
func (r *MemorySiteRepository) Restore(ctx context.Context) (bool, error) {
	var banner site.Banner
	okBanner, err := r.snap.Load(ctx, bannerSnapshotKey, &banner)
	if err != nil {
		return false, err
	}
	var images []site.HeroImage
	okImages, err := r.snap.Load(ctx, heroImagesSnapshotKey, &images)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	if okBanner && len(banner) > 0 {
		r.banner = banner
	}
	if okImages {
		r.images = images
	}
	r.mu.Unlock()
	return okBanner || okImages, nil
}

func (r *MemorySiteRepository) Banner(ctx context.Context) (site.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.banner), nil
}

func (r *MemorySiteRepository) SaveBanner(ctx context.Context, b site.Banner) error {
	r.mu.Lock()
	r.banner = maps.Clone(b)
	snapshot := maps.Clone(b)
	r.mu.Unlock()

	if err := r.snap.Save(ctx, bannerSnapshotKey, snapshot); err != nil {
		r.logger.Warn("banner snapshot write failed", "err", err)
	}
	return nil
}

func (r *MemorySiteRepository) HeroImages(ctx context.Context) ([]site.HeroImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]site.HeroImage, len(r.images))
	copy(out, r.images)
	return out, nil
}

func (r *MemorySiteRepository) AddHeroImage(ctx context.Context, img site.HeroImage) error {
	r.mu.Lock()
	r.images = append(r.images, img)
	snapshot := make([]site.HeroImage, len(r.images))
	copy(snapshot, r.images)
	r.mu.Unlock()

	r.persistImages(ctx, snapshot)
	return nil
}

func (r *MemorySiteRepository) RemoveHeroImage(ctx context.Context, id string) error {
	r.mu.Lock()
	kept := make([]site.HeroImage, 0, len(r.images))
	for _, img := range r.images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	if len(kept) == len(r.images) {
		r.mu.Unlock()
		return site.ErrNotFound
	}
	r.images = kept
	snapshot := make([]site.HeroImage, len(kept))
	copy(snapshot, kept)
	r.mu.Unlock()

	r.persistImages(ctx, snapshot)
	return nil
}

func (r *MemorySiteRepository) persistImages(ctx context.Context, images []site.HeroImage) {
	if err := r.snap.Save(ctx, heroImagesSnapshotKey, images); err != nil {
		r.logger.Warn("hero image snapshot write failed", "err", err)
	}
}
