package handler

import (
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/locale"
	"laborlink/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type LocaleHandler struct{}

func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

func (h *LocaleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleList)
	r.Get("/:code", h.HandleGet)
}

func (h *LocaleHandler) HandleList(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"supported": locale.Supported,
		"default":   locale.Default,
		"preferred": locale.Resolve(c.Get(fiber.HeaderAcceptLanguage)),
	})
}

func (h *LocaleHandler) HandleGet(c fiber.Ctx) error {
	strs, ok := locale.Strings(c.Params("code"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Unsupported locale", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, strs)
}
