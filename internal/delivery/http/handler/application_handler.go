package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/application"
	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterJobRoutes mounts the per-job endpoints under /jobs. Every route
// expects the auth middleware to have run.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}
	r.Post("/:id/applications", auth, middleware.RequireRoles(user.RoleWorker), h.HandleApply)
	r.Get("/:id/applications", auth, middleware.RequireRoles(user.RoleAdmin, user.RoleEmployer), h.HandleListForJob)
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.HandleListMine)
	r.Patch("/:id", middleware.RequireRoles(user.RoleAdmin, user.RoleEmployer), h.HandleSetStatus)
}

func (h *ApplicationHandler) HandleApply(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	app, created, err := h.uc.Apply(c.Context(), actor, jobID, usecase.ApplyInput{Name: req.Name, Contact: req.Contact})
	if err != nil {
		return mapUsecaseError(err)
	}
	if !created {
		return response.Success(c, fiber.StatusOK, "already applied", dto.NewApplicationResponse(app))
	}
	return response.Created(c, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) HandleListForJob(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForJob(c.Context(), actor, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, dto.NewApplicationListResponse(apps), len(apps), "")
}

func (h *ApplicationHandler) HandleListMine(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ListMine(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, dto.NewApplicationListResponse(apps), len(apps), "")
}

func (h *ApplicationHandler) HandleSetStatus(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	status := application.Status(req.Status)
	if !status.Valid() {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, application.ErrInvalidStatus)
	}

	updated, err := h.uc.SetStatus(c.Context(), actor, id, status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}
