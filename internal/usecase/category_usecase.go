package usecase

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/category"
	"laborlink/internal/domain/user"
	"laborlink/internal/locale"
	"laborlink/internal/pkg/logging"

	"github.com/google/uuid"
)

type CategoryInput struct {
	Name         string
	Subtitle     string
	Icon         string
	Translations map[string]category.Translation
}

// LocalizedCategory is a category rendered for one locale. Key keeps the
// default-locale name because that is what job postings reference.
type LocalizedCategory struct {
	ID       uuid.UUID
	Key      string
	Name     string
	Subtitle string
	Icon     string
}

type CategoryUsecase interface {
	List(ctx context.Context, lang string) ([]LocalizedCategory, error)
	Create(ctx context.Context, actor user.Actor, in CategoryInput) (category.Category, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in CategoryInput) (category.Category, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type Categories struct {
	repo   category.Repository
	logger *logging.Logger
}

func NewCategoryUsecase(repo category.Repository, logger *logging.Logger) *Categories {
	return &Categories{repo: repo, logger: logger}
}

func (u *Categories) List(ctx context.Context, lang string) ([]LocalizedCategory, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	code := locale.Resolve(lang)

	out := make([]LocalizedCategory, 0, len(items))
	for _, c := range items {
		tr := c.Translations[code]
		out = append(out, LocalizedCategory{
			ID:       c.ID,
			Key:      c.Name,
			Name:     fallback(tr.Name, c.Name),
			Subtitle: fallback(tr.Subtitle, c.Subtitle),
			Icon:     c.Icon,
		})
	}
	return out, nil
}

func (u *Categories) Create(ctx context.Context, actor user.Actor, in CategoryInput) (category.Category, error) {
	if actor.Role != user.RoleAdmin {
		return category.Category{}, ErrForbidden
	}
	c, err := buildCategory(uuid.New(), in)
	if err != nil {
		return category.Category{}, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return category.Category{}, ErrInternal
	}
	u.logger.Info("category created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (u *Categories) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in CategoryInput) (category.Category, error) {
	if actor.Role != user.RoleAdmin {
		return category.Category{}, ErrForbidden
	}
	if _, err := u.repo.Get(ctx, id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return category.Category{}, ErrNotFound
		}
		return category.Category{}, ErrInternal
	}
	c, err := buildCategory(id, in)
	if err != nil {
		return category.Category{}, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return category.Category{}, ErrInternal
	}
	return c, nil
}

func (u *Categories) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if actor.Role != user.RoleAdmin {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return ErrInternal
	}
	return nil
}

func buildCategory(id uuid.UUID, in CategoryInput) (category.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return category.Category{}, ErrInvalidInput
	}
	var tr map[string]category.Translation
	if len(in.Translations) > 0 {
		tr = make(map[string]category.Translation, len(in.Translations))
		for k, v := range in.Translations {
			tr[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
	return category.Category{
		ID:           id,
		Name:         name,
		Subtitle:     strings.TrimSpace(in.Subtitle),
		Icon:         strings.TrimSpace(in.Icon),
		Translations: tr,
	}, nil
}

func fallback(override, def string) string {
	if strings.TrimSpace(override) == "" {
		return def
	}
	return override
}
