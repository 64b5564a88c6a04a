package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errors.New("company not found"), fiber.StatusNotFound},
		{"already exists", errors.New("admin already exists"), fiber.StatusConflict},
		{"already in state", errors.New("company is already approved"), fiber.StatusConflict},
		{"invalid credentials", errors.New("invalid credentials"), fiber.StatusUnauthorized},
		{"invalid api key", errors.New("invalid api key"), fiber.StatusUnauthorized},
		{"rate limited", errors.New("too many login attempts"), fiber.StatusTooManyRequests},
		{"bad filter", errors.New("invalid company_id filter"), fiber.StatusBadRequest},
		{"correction guard", errors.New("only completed verifications can be corrected"), fiber.StatusBadRequest},
		{"unexpected", errors.New("database exploded"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error {
				return respondError(ctx, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
