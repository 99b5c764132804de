package handler

import (
	"laborlink/internal/delivery/http/dto"
	"laborlink/internal/pkg/response"
	"laborlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/stats", h.HandleDashboard)
}

func (h *StatsHandler) HandleDashboard(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	s, err := h.uc.Dashboard(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStatsResponse(s))
}
