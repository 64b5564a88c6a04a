package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	ShowCategory(ctx *fiber.Ctx) error
	ShowKey(ctx *fiber.Ctx) error
	SaveKey(ctx *fiber.Ctx) error
	ListAudits(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
	authMiddleware  fiber.Handler
}

func NewSettingsController(settingsService service.ISettingsService, authMiddleware fiber.Handler) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
		authMiddleware:  authMiddleware,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings")
	h.Use(c.authMiddleware)
	h.Get("/audit", serverutils.RequireRole(entity.AdminRoleAdmin), c.ListAudits)
	h.Get("/:category", c.ShowCategory)
	h.Get("/:category/:key", c.ShowKey)
	h.Put("/:category/:key", serverutils.RequireRole(entity.AdminRoleAdmin), c.SaveKey)
}

func (c *settingsController) ShowCategory(ctx *fiber.Ctx) error {
	res, err := c.settingsService.GetCategory(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show settings category", res))
}

func (c *settingsController) ShowKey(ctx *fiber.Ctx) error {
	res, err := c.settingsService.GetKey(ctx.Context(), ctx.Params("category"), ctx.Params("key"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show setting", res))
}

func (c *settingsController) SaveKey(ctx *fiber.Ctx) error {
	var req dto.SaveSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.settingsService.SaveKey(ctx.Context(), ctx.Params("category"), ctx.Params("key"), &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save setting", res))
}

func (c *settingsController) ListAudits(ctx *fiber.Ctx) error {
	var req dto.SettingsAuditListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.settingsService.ListAudits(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list settings audits", res))
}
