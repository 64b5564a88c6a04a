package service

import (
	"context"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/contract"

	"github.com/google/uuid"
)

// logAdminAction writes an audit row for a privileged mutation. Audit
// failures are logged and swallowed: they never fail the mutation.
func logAdminAction(
	ctx context.Context,
	repo contract.AdminRepository,
	sysLogger logger.ILogger,
	adminId uuid.UUID,
	action, entityType, entityId string,
	details map[string]interface{},
	ipAddress, userAgent string,
) {
	log := &entity.AdminActionLog{
		Id:         uuid.New(),
		AdminId:    adminId,
		Action:     action,
		EntityType: entityType,
		EntityId:   &entityId,
		Details:    details,
		IpAddress:  ipAddress,
		UserAgent:  userAgent,
		CreatedAt:  time.Now(),
	}
	if err := repo.CreateActionLog(ctx, log); err != nil {
		sysLogger.Warn("Audit", "Failed to write action log", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}
