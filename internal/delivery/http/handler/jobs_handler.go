package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/domain/user"
	"laborlink/internal/locale"
	"laborlink/internal/matching"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobBoardUsecase
}

func NewJobsHandler(uc usecase.JobBoardUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes mounts the board. Reads are public; writes need auth.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
	r.Post("/", auth, middleware.RequireRoles(user.RoleAdmin, user.RoleEmployer), h.HandleCreateJob)
	r.Delete("/:id", auth, middleware.RequireRoles(user.RoleAdmin, user.RoleEmployer), h.HandleDeleteJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	lang := locale.Resolve(requestLocale(c))

	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Scope:      c.Query("scope"),
		Category:   c.Query("category"),
		Type:       c.Query("type"),
		Experience: c.Query("experience"),
		Salary:     c.Query("salary"),
		Country:    c.Query("country"),
		Search:     c.Query("q"),
		Locale:     lang,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.List(c, dto.NewJobListResponse(items), len(items), lang)
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetJob(c.Context(), id, requestLocale(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(item))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Locale == "" {
		req.Locale = requestLocale(c)
	}

	created, err := h.uc.CreateJob(c.Context(), actor, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewJobResponse(matching.Project(created, locale.Resolve(req.Locale))))
}

func (h *JobsHandler) HandleDeleteJob(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
