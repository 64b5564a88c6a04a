package serverutils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"agegate-admin-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

type stubResolver struct {
	admins map[uuid.UUID]*entity.Admin
}

func (r *stubResolver) Resolve(_ context.Context, adminId uuid.UUID) (*entity.Admin, error) {
	admin, ok := r.admins[adminId]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}

func newStubResolver(admins ...*entity.Admin) *stubResolver {
	r := &stubResolver{admins: make(map[uuid.UUID]*entity.Admin)}
	for _, a := range admins {
		r.admins[a.Id] = a
	}
	return r
}

func signToken(t *testing.T, adminId uuid.UUID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"admin_id": adminId.String(),
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newTestApp(resolver AdminResolver, required entity.AdminRole) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{AuthRequired(testSecret, resolver)}
	if required != "" {
		handlers = append(handlers, RequireRole(required))
	}
	handlers = append(handlers, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"admin_id": AdminIdFromCtx(ctx).String(),
			"role":     string(AdminRoleFromCtx(ctx)),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func knownAdmin(role entity.AdminRole) *entity.Admin {
	return &entity.Admin{Id: uuid.New(), Role: role}
}

func TestAuthRequiredMissingToken(t *testing.T) {
	app := newTestApp(newStubResolver(), "")

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleSupport)
	app := newTestApp(newStubResolver(admin), "")
	token := signToken(t, admin.Id, "support")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthRequiredQueryToken(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleSupport)
	app := newTestApp(newStubResolver(admin), "")
	token := signToken(t, admin.Id, "support")

	req := httptest.NewRequest("GET", "/protected?token="+token, nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleAdmin)
	app := newTestApp(newStubResolver(admin), "")
	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// A well-signed token naming an admin that no longer exists must not
// pass the guard, whatever role the token claims.
func TestAuthRequiredRejectsUnresolvableAdmin(t *testing.T) {
	app := newTestApp(newStubResolver(), entity.AdminRoleSupport)
	token := signToken(t, uuid.New(), "super_admin")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// The effective role is the stored one: a token minted before a
// demotion cannot keep the old privileges.
func TestAuthRequiredUsesStoredRoleOverClaim(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleSupport)
	app := newTestApp(newStubResolver(admin), entity.AdminRoleSuperAdmin)
	token := signToken(t, admin.Id, "super_admin")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleRejectsLowerRank(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleAdmin)
	app := newTestApp(newStubResolver(admin), entity.AdminRoleSuperAdmin)
	token := signToken(t, admin.Id, "admin")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAcceptsHigherRank(t *testing.T) {
	admin := knownAdmin(entity.AdminRoleSuperAdmin)
	app := newTestApp(newStubResolver(admin), entity.AdminRoleAdmin)
	token := signToken(t, admin.Id, "super_admin")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsUnknownRole(t *testing.T) {
	admin := knownAdmin(entity.AdminRole("intern"))
	app := newTestApp(newStubResolver(admin), entity.AdminRoleSupport)
	token := signToken(t, admin.Id, "intern")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
