package controller

import (
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	Overview(ctx *fiber.Ctx) error
	TopCompanies(ctx *fiber.Ctx) error
	RecentVerifications(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
	authMiddleware   fiber.Handler
}

func NewDashboardController(dashboardService service.IDashboardService, authMiddleware fiber.Handler) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
		authMiddleware:   authMiddleware,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Use(c.authMiddleware)
	h.Get("/stats", c.Stats)
	h.Get("/overview", c.Overview)
	h.Get("/top-companies", c.TopCompanies)
	h.Get("/recent", c.RecentVerifications)
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Stats(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *dashboardController) Overview(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", 30)

	res, err := c.dashboardService.Overview(ctx.Context(), days)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get verification overview", res))
}

func (c *dashboardController) TopCompanies(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 5)

	res, err := c.dashboardService.TopCompanies(ctx.Context(), limit)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get top companies", res))
}

func (c *dashboardController) RecentVerifications(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)

	res, err := c.dashboardService.RecentVerifications(ctx.Context(), limit)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recent verifications", res))
}
