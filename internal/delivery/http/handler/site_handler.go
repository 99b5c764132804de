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

type SiteHandler struct {
	uc usecase.SiteUsecase
}

func NewSiteHandler(uc usecase.SiteUsecase) *SiteHandler {
	return &SiteHandler{uc: uc}
}

func (h *SiteHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	adminOnly := middleware.RequireRoles(user.RoleAdmin)
	r.Get("/banner", h.HandleBanner)
	r.Get("/banner/texts", auth, adminOnly, h.HandleBannerTexts)
	r.Put("/banner", auth, adminOnly, h.HandleUpdateBanner)

	r.Get("/hero-images", h.HandleHeroImages)
	r.Post("/hero-images", auth, adminOnly, h.HandleAddHeroImage)
	r.Delete("/hero-images/:id", auth, adminOnly, h.HandleRemoveHeroImage)
}

func (h *SiteHandler) HandleBanner(c fiber.Ctx) error {
	b, err := h.uc.Banner(c.Context(), locale.Resolve(requestLocale(c)))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBannerResponse(b))
}

func (h *SiteHandler) HandleBannerTexts(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	texts, err := h.uc.BannerTexts(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BannerTextsResponse{Texts: texts})
}

func (h *SiteHandler) HandleUpdateBanner(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.BannerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	texts, err := h.uc.UpdateBanner(c.Context(), actor, req.Texts)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BannerTextsResponse{Texts: texts})
}

func (h *SiteHandler) HandleHeroImages(c fiber.Ctx) error {
	images, err := h.uc.HeroImages(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.List(c, images, len(images), "")
}

func (h *SiteHandler) HandleAddHeroImage(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.HeroImageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	img, err := h.uc.AddHeroImage(c.Context(), actor, req.URL)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, img)
}

func (h *SiteHandler) HandleRemoveHeroImage(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.RemoveHeroImage(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
