package serverutils

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"agegate-admin-be/internal/entity"
)

const (
	LocalsAdminId   = "admin_id"
	LocalsAdminRole = "admin_role"
)

// AdminResolver loads the admin record behind a token. Implementations
// memoize lookups so the guard does not hit the database on every request.
type AdminResolver interface {
	Resolve(ctx context.Context, adminId uuid.UUID) (*entity.Admin, error)
}

// AuthRequired validates the Bearer token, resolves the admin record it
// names, and stores the identity in the request locals. The role comes
// from the resolved row, not the token, so demotions and deletions take
// effect within the resolver's cache window instead of the token TTL.
// The token may also arrive via the "token" query parameter for
// websocket upgrades.
func AuthRequired(jwtSecret string, resolver AdminResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenString := ctx.Query("token")
		if tokenString == "" {
			authHeader := ctx.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return ctx.Status(fiber.StatusUnauthorized).
					JSON(ErrorResponse(fiber.StatusUnauthorized, "missing or malformed token"))
			}
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid or expired token"))
		}

		adminIdStr, _ := claims["admin_id"].(string)
		adminId, err := uuid.Parse(adminIdStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid token claims"))
		}

		admin, err := resolver.Resolve(ctx.Context(), adminId)
		if err != nil || admin == nil {
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid or expired session"))
		}

		ctx.Locals(LocalsAdminId, admin.Id)
		ctx.Locals(LocalsAdminRole, admin.Role)
		return ctx.Next()
	}
}

// RequireRole rejects requests whose authenticated admin ranks below the
// required role. It must run after AuthRequired.
func RequireRole(required entity.AdminRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals(LocalsAdminRole).(entity.AdminRole)
		if !ok || !role.AtLeast(required) {
			return ctx.Status(fiber.StatusForbidden).
				JSON(ErrorResponse(fiber.StatusForbidden, "insufficient permissions"))
		}
		return ctx.Next()
	}
}

// AdminIdFromCtx returns the authenticated admin id set by AuthRequired.
func AdminIdFromCtx(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(LocalsAdminId).(uuid.UUID)
	return id
}

// AdminRoleFromCtx returns the authenticated admin role set by AuthRequired.
func AdminRoleFromCtx(ctx *fiber.Ctx) entity.AdminRole {
	role, _ := ctx.Locals(LocalsAdminRole).(entity.AdminRole)
	return role
}
