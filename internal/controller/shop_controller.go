package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IShopController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	RegenerateApiKey(ctx *fiber.Ctx) error
	ShowCustomization(ctx *fiber.Ctx) error
	SaveCustomization(ctx *fiber.Ctx) error
}

type shopController struct {
	shopService    service.IShopService
	authMiddleware fiber.Handler
}

func NewShopController(shopService service.IShopService, authMiddleware fiber.Handler) IShopController {
	return &shopController{
		shopService:    shopService,
		authMiddleware: authMiddleware,
	}
}

func (c *shopController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shops")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id", serverutils.RequireRole(entity.AdminRoleAdmin), c.Update)
	h.Post(":id/regenerate-key", serverutils.RequireRole(entity.AdminRoleAdmin), c.RegenerateApiKey)
	h.Get(":id/customization", c.ShowCustomization)
	h.Put(":id/customization", serverutils.RequireRole(entity.AdminRoleAdmin), c.SaveCustomization)
}

func (c *shopController) List(ctx *fiber.Ctx) error {
	var req dto.ShopListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shopService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list shops", res))
}

func (c *shopController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.shopService.Get(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show shop", res))
}

func (c *shopController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateShopRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.shopService.Update(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update shop", res))
}

func (c *shopController) RegenerateApiKey(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.shopService.RegenerateApiKey(ctx.Context(), id, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success regenerate api key", res))
}

func (c *shopController) ShowCustomization(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.shopService.GetCustomization(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show customization", res))
}

func (c *shopController) SaveCustomization(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveCustomizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.shopService.SaveCustomization(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save customization", res))
}
