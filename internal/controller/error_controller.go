package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IErrorController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type errorController struct {
	errorService   service.IErrorService
	authMiddleware fiber.Handler
}

func NewErrorController(errorService service.IErrorService, authMiddleware fiber.Handler) IErrorController {
	return &errorController{
		errorService:   errorService,
		authMiddleware: authMiddleware,
	}
}

func (c *errorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/errors")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id/status", serverutils.RequireRole(entity.AdminRoleAdmin), c.UpdateStatus)
}

func (c *errorController) List(ctx *fiber.Ctx) error {
	var req dto.ErrorListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.errorService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list errors", res))
}

func (c *errorController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.errorService.Get(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show error", res))
}

func (c *errorController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateErrorStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.errorService.UpdateStatus(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update error status", res))
}
