package controller

import (
	"strings"

	"agegate-admin-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps the well-known service error strings onto HTTP
// status codes. Anything unrecognized is a 500.
func respondError(ctx *fiber.Ctx, err error) error {
	msg := err.Error()
	status := fiber.StatusInternalServerError

	switch {
	case strings.Contains(msg, "not found"):
		status = fiber.StatusNotFound
	case strings.Contains(msg, "invalid credentials"), strings.Contains(msg, "invalid api key"):
		status = fiber.StatusUnauthorized
	case strings.Contains(msg, "too many login attempts"):
		status = fiber.StatusTooManyRequests
	case strings.Contains(msg, "already"):
		status = fiber.StatusConflict
	case strings.Contains(msg, "invalid"), strings.Contains(msg, "must be"), strings.Contains(msg, "only completed"):
		status = fiber.StatusBadRequest
	}

	return ctx.Status(status).JSON(serverutils.ErrorResponse(status, msg))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id parameter")
	}
	return id, nil
}
