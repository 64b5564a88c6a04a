package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	ListActionLogs(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	authMiddleware fiber.Handler
}

func NewAdminController(adminService service.IAdminService, authMiddleware fiber.Handler) IAdminController {
	return &adminController{
		adminService:   adminService,
		authMiddleware: authMiddleware,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admins")
	h.Use(c.authMiddleware)
	h.Get("", serverutils.RequireRole(entity.AdminRoleAdmin), c.List)
	h.Post("", serverutils.RequireRole(entity.AdminRoleSuperAdmin), c.Create)
	h.Get("/actions", serverutils.RequireRole(entity.AdminRoleAdmin), c.ListActionLogs)

	logs := r.Group("/logs")
	logs.Use(c.authMiddleware, serverutils.RequireRole(entity.AdminRoleAdmin))
	logs.Get("", c.GetLogs)
	logs.Get("/:id", c.GetLogById)
}

func (c *adminController) List(ctx *fiber.Ctx) error {
	var req dto.AdminListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list admins", res))
}

func (c *adminController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	actorId := serverutils.AdminIdFromCtx(ctx)
	res, err := c.adminService.Create(ctx.Context(), &req, actorId, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create admin", res))
}

func (c *adminController) ListActionLogs(ctx *fiber.Ctx) error {
	var req dto.ActionLogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.ListActionLogs(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list action logs", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.LogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.GetLogs(ctx.Context(), req.Level, req.Limit, req.Offset)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLogById(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetLogById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}
