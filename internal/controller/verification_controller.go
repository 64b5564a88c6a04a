package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVerificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Correct(ctx *fiber.Ctx) error
}

type verificationController struct {
	verificationService service.IVerificationService
	authMiddleware      fiber.Handler
}

func NewVerificationController(verificationService service.IVerificationService, authMiddleware fiber.Handler) IVerificationController {
	return &verificationController{
		verificationService: verificationService,
		authMiddleware:      authMiddleware,
	}
}

func (c *verificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/verifications")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Post(":id/correct", serverutils.RequireRole(entity.AdminRoleSuperAdmin), c.Correct)
}

func (c *verificationController) List(ctx *fiber.Ctx) error {
	var req dto.VerificationListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.verificationService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list verifications", res))
}

func (c *verificationController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.verificationService.Get(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show verification", res))
}

func (c *verificationController) Correct(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CorrectVerificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.verificationService.Correct(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success correct verification", res))
}
