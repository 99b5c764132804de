package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/user"
	"laborlink/internal/locale"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	adminOnly := middleware.RequireRoles(user.RoleAdmin)
	r.Get("/", h.HandleList)
	r.Post("/", auth, adminOnly, h.HandleCreate)
	r.Put("/:id", auth, adminOnly, h.HandleUpdate)
	r.Delete("/:id", auth, adminOnly, h.HandleDelete)
}

func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	lang := locale.Resolve(requestLocale(c))
	items, err := h.uc.List(c.Context(), lang)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, dto.NewCategoryListResponse(items), len(items), lang)
}

func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actor, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, created)
}

func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), actor, id, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
