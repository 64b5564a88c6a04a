package controller

import (
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/pkg/serverutils"
	"agegate-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IIngestController exposes the error reporting endpoint shops call
// directly, authenticated by API key rather than a staff token.
type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	IngestError(ctx *fiber.Ctx) error
}

type ingestController struct {
	errorService service.IErrorService
}

func NewIngestController(errorService service.IErrorService) IIngestController {
	return &ingestController{errorService: errorService}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingest")
	h.Post("/errors", c.IngestError)
}

func (c *ingestController) IngestError(ctx *fiber.Ctx) error {
	apiKey := ctx.Get("X-Api-Key")
	if apiKey == "" {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "missing api key"))
	}

	var req dto.IngestErrorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.errorService.Ingest(ctx.Context(), apiKey, &req)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Error report accepted", res))
}
