package service

import (
	"context"
	"errors"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	GetCategory(ctx context.Context, category string) ([]*dto.SettingResponse, error)
	GetKey(ctx context.Context, category, key string) (*dto.SettingResponse, error)
	SaveKey(ctx context.Context, category, key string, req *dto.SaveSettingRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.SettingResponse, error)
	ListAudits(ctx context.Context, req *dto.SettingsAuditListRequest) (*dto.PaginatedResponse[*dto.SettingsAuditResponse], error)
}

// DefaultSettingValue returns the built-in value served when a setting
// has never been written. Unknown pairs have no default.
func DefaultSettingValue(category, key string) map[string]interface{} {
	switch {
	case category == entity.SettingCategoryPricing && key == entity.SettingKeyVerificationMethods:
		return map[string]interface{}{
			"bankid":     float64(20),
			"mojeid":     float64(15),
			"ocr":        float64(10),
			"facescan":   float64(5),
			"revalidate": float64(2),
		}
	case category == entity.SettingCategoryLimits && key == entity.SettingKeyApiRateLimits:
		return map[string]interface{}{
			"requests_per_minute": float64(60),
			"requests_per_hour":   float64(1000),
			"requests_per_day":    float64(10000),
		}
	case category == entity.SettingCategoryNotifications && key == entity.SettingKeyEmailNotifications:
		return map[string]interface{}{
			"error_alerts":  true,
			"daily_summary": true,
			"recipients":    []interface{}{},
		}
	case category == entity.SettingCategoryServices && key == "bankid",
		category == entity.SettingCategoryServices && key == "mojeid":
		return map[string]interface{}{
			"environment":    "sandbox",
			"timeout":        float64(30),
			"retry_attempts": float64(3),
		}
	case category == entity.SettingCategoryServices && key == "ocr":
		return map[string]interface{}{
			"min_confidence":  0.8,
			"max_file_size":   float64(5242880),
			"allowed_formats": []interface{}{"jpg", "jpeg", "png"},
		}
	case category == entity.SettingCategoryServices && key == "facescan":
		return map[string]interface{}{
			"min_confidence": 0.9,
			"min_face_size":  float64(100),
			"max_faces":      float64(1),
		}
	case category == entity.SettingCategoryBilling && key == entity.SettingKeyCompanyDetails:
		return map[string]interface{}{
			"name":         "",
			"address":      "",
			"ico":          "",
			"dic":          "",
			"bank_account": "",
		}
	case category == entity.SettingCategoryBilling && key == entity.SettingKeyInvoiceSettings:
		return map[string]interface{}{
			"number_format": "YYYY/NNNNN",
			"vat_rate":      float64(21),
			"due_days":      float64(14),
		}
	}
	return nil
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	changeBus  *changefeed.Bus
	sysLogger  logger.ILogger
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, changeBus *changefeed.Bus, sysLogger logger.ILogger) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		changeBus:  changeBus,
		sysLogger:  sysLogger,
	}
}

func settingToResponse(s *entity.SystemSetting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Id:          s.Id,
		Category:    s.Category,
		Key:         s.Key,
		Description: s.Description,
		Value:       s.Value,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (s *settingsService) GetCategory(ctx context.Context, category string) ([]*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SettingRepository().FindAll(ctx,
		specification.BySettingCategory{Category: category},
		specification.OrderBy{Field: "key", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SettingResponse, len(settings))
	for i, setting := range settings {
		items[i] = settingToResponse(setting)
	}
	return items, nil
}

// GetKey serves the stored value, falling back to the built-in default
// for pairs that were never written.
func (s *settingsService) GetKey(ctx context.Context, category, key string) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.SettingRepository().FindOne(ctx, specification.BySettingKey{Category: category, Key: key})
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return settingToResponse(setting), nil
	}

	def := DefaultSettingValue(category, key)
	if def == nil {
		return nil, errors.New("setting not found")
	}
	return &dto.SettingResponse{
		Category: category,
		Key:      key,
		Value:    def,
	}, nil
}

// SaveKey replaces the stored value wholesale and records a best-effort
// audit entry: a failed audit write never rolls back the setting.
func (s *settingsService) SaveKey(ctx context.Context, category, key string, req *dto.SaveSettingRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SettingRepository()

	existing, err := repo.FindOne(ctx, specification.BySettingKey{Category: category, Key: key})
	if err != nil {
		return nil, err
	}

	var oldValue map[string]interface{}
	action := "create"
	setting := &entity.SystemSetting{
		Id:        uuid.New(),
		Category:  category,
		Key:       key,
		Value:     req.Value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if existing != nil {
		oldValue = existing.Value
		action = "update"
		setting.Id = existing.Id
		setting.Description = existing.Description
		setting.CreatedAt = existing.CreatedAt
	}

	if err := repo.Save(ctx, setting); err != nil {
		return nil, err
	}

	audit := &entity.SettingsAuditLog{
		Id:        uuid.New(),
		SettingId: &setting.Id,
		UserId:    &actorId,
		Action:    action,
		OldValue:  oldValue,
		NewValue:  req.Value,
		CreatedAt: time.Now(),
	}
	if err := repo.CreateAudit(ctx, audit); err != nil {
		s.sysLogger.Warn("Settings", "Failed to write settings audit", map[string]interface{}{
			"category": category,
			"key":      key,
			"error":    err.Error(),
		})
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "save_setting", "system_setting", setting.Id.String(), map[string]interface{}{
		"category": category,
		"key":      key,
	}, ipAddress, userAgent)

	resp := settingToResponse(setting)
	if err := s.changeBus.Publish(changefeed.TableSystemSettings, changefeed.ActionUpdated, changefeed.Row(resp)); err != nil {
		s.sysLogger.Warn("Settings", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}

func (s *settingsService) ListAudits(ctx context.Context, req *dto.SettingsAuditListRequest) (*dto.PaginatedResponse[*dto.SettingsAuditResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	audits, err := uow.SettingRepository().FindAudits(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SettingsAuditResponse, len(audits))
	for i, audit := range audits {
		items[i] = &dto.SettingsAuditResponse{
			Id:        audit.Id,
			SettingId: audit.SettingId,
			UserId:    audit.UserId,
			Action:    audit.Action,
			OldValue:  audit.OldValue,
			NewValue:  audit.NewValue,
			CreatedAt: audit.CreatedAt,
		}
	}

	return &dto.PaginatedResponse[*dto.SettingsAuditResponse]{Items: items, Total: int64(len(items)), Page: page, Limit: limit}, nil
}
