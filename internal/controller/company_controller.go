package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	AdjustCredit(ctx *fiber.Ctx) error
}

type companyController struct {
	companyService service.ICompanyService
	authMiddleware fiber.Handler
}

func NewCompanyController(companyService service.ICompanyService, authMiddleware fiber.Handler) ICompanyController {
	return &companyController{
		companyService: companyService,
		authMiddleware: authMiddleware,
	}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companies")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id", serverutils.RequireRole(entity.AdminRoleAdmin), c.Update)
	h.Post(":id/approve", serverutils.RequireRole(entity.AdminRoleSuperAdmin), c.Approve)
	h.Post(":id/reject", serverutils.RequireRole(entity.AdminRoleSuperAdmin), c.Reject)
	h.Post(":id/credit", serverutils.RequireRole(entity.AdminRoleAdmin), c.AdjustCredit)
}

func (c *companyController) List(ctx *fiber.Ctx) error {
	var req dto.CompanyListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.companyService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list companies", res))
}

func (c *companyController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.companyService.Get(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show company", res))
}

func (c *companyController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.companyService.Update(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update company", res))
}

func (c *companyController) Approve(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.companyService.Approve(ctx.Context(), id, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success approve company", res))
}

func (c *companyController) Reject(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RejectCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.companyService.Reject(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reject company", res))
}

func (c *companyController) AdjustCredit(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreditAdjustmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.companyService.AdjustCredit(ctx.Context(), id, &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success adjust credit", res))
}
