package dto

import (
	"laborlink/internal/domain/category"
	"laborlink/internal/usecase"

	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name         string                          `json:"name"`
	Subtitle     string                          `json:"subtitle"`
	Icon         string                          `json:"icon"`
	Translations map[string]category.Translation `json:"translations"`
}

func (r CategoryRequest) ToInput() usecase.CategoryInput {
	return usecase.CategoryInput{Name: r.Name, Subtitle: r.Subtitle, Icon: r.Icon, Translations: r.Translations}
}

type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Subtitle string    `json:"subtitle"`
	Icon     string    `json:"icon"`
}

func NewCategoryListResponse(items []usecase.LocalizedCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, CategoryResponse{ID: c.ID, Key: c.Key, Name: c.Name, Subtitle: c.Subtitle, Icon: c.Icon})
	}
	return out
}
