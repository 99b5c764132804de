package handler

import (
	"errors"

	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"
	useruc "laborlink/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc       usecase.UserUsecase
	profiles usecase.ProfileUsecase
}

func NewUserHandler(uc usecase.UserUsecase, profiles usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc, profiles: profiles}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/profile", h.GetProfileDocument)
	r.Put("/me/profile", h.SaveProfileDocument)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	u, err := h.uc.GetProfile(c.Context(), actor.UserID)
	if err != nil {
		return profileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(u))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	u, err := h.uc.UpdateProfile(c.Context(), actor.UserID, useruc.UpdateMeInput{
		Name:             req.Name,
		Password:         req.Password,
		ProfileCompleted: req.ProfileCompleted,
	})
	if err != nil {
		return profileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(u))
}

func (h *UserHandler) GetProfileDocument(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	doc, err := h.profiles.Get(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileDocumentResponse(doc))
}

// SaveProfileDocument decodes the body as a worker or employer profile
// depending on the caller's role.
func (h *UserHandler) SaveProfileDocument(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	doc := usecase.ProfileDocument{Role: actor.Role}
	switch actor.Role {
	case user.RoleWorker:
		var req dto.WorkerProfileRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		p, err := h.profiles.SaveWorker(c.Context(), actor, req.ToProfile())
		if err != nil {
			return mapUsecaseError(err)
		}
		doc.Worker = &p
	case user.RoleEmployer:
		var req dto.EmployerProfileRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		p, err := h.profiles.SaveEmployer(c.Context(), actor, req.ToProfile())
		if err != nil {
			return mapUsecaseError(err)
		}
		doc.Employer = &p
	default:
		return mapUsecaseError(usecase.ErrForbidden)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileDocumentResponse(doc))
}

func profileError(err error) error {
	switch {
	case errors.Is(err, useruc.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
