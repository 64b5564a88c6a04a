package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	DownloadInvoice(ctx *fiber.Ctx) error
}

type transactionController struct {
	walletService  service.IWalletService
	authMiddleware fiber.Handler
}

func NewTransactionController(walletService service.IWalletService, authMiddleware fiber.Handler) ITransactionController {
	return &transactionController{
		walletService:  walletService,
		authMiddleware: authMiddleware,
	}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transactions")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/invoice", c.DownloadInvoice)
}

func (c *transactionController) List(ctx *fiber.Ctx) error {
	var req dto.TransactionListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.walletService.List(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list transactions", res))
}

func (c *transactionController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.walletService.Get(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show transaction", res))
}

func (c *transactionController) DownloadInvoice(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	buf, filename, err := c.walletService.BuildInvoice(ctx.Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
