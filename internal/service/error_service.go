package service

import (
	"context"
	"errors"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/pkg/mailer"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IErrorService interface {
	List(ctx context.Context, req *dto.ErrorListRequest) (*dto.PaginatedResponse[*dto.ErrorResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ErrorResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateErrorStatusRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.ErrorResponse, error)
	Ingest(ctx context.Context, apiKey string, req *dto.IngestErrorRequest) (*dto.ErrorResponse, error)
}

type errorService struct {
	uowFactory      unitofwork.RepositoryFactory
	settingsService ISettingsService
	emailService    mailer.IEmailService
	changeBus       *changefeed.Bus
	sysLogger       logger.ILogger
}

func NewErrorService(
	uowFactory unitofwork.RepositoryFactory,
	settingsService ISettingsService,
	emailService mailer.IEmailService,
	changeBus *changefeed.Bus,
	sysLogger logger.ILogger,
) IErrorService {
	return &errorService{
		uowFactory:      uowFactory,
		settingsService: settingsService,
		emailService:    emailService,
		changeBus:       changeBus,
		sysLogger:       sysLogger,
	}
}

func errorToResponse(e *entity.ErrorRecord, shopName *string) *dto.ErrorResponse {
	return &dto.ErrorResponse{
		Id:             e.Id,
		ShopId:         e.ShopId,
		ShopName:       shopName,
		VerificationId: e.VerificationId,
		Source:         e.Source,
		ErrorType:      e.ErrorType,
		ErrorMessage:   e.ErrorMessage,
		ErrorDetails:   e.ErrorDetails,
		Status:         string(e.Status),
		ResolutionNote: e.ResolutionNote,
		ResolvedBy:     e.ResolvedBy,
		ResolvedAt:     e.ResolvedAt,
		CreatedAt:      e.CreatedAt,
	}
}

func (s *errorService) publishChange(action changefeed.Action, record *entity.ErrorRecord) {
	if err := s.changeBus.Publish(changefeed.TableErrors, action, changefeed.Row(errorToResponse(record, nil))); err != nil {
		s.sysLogger.Warn("Error", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *errorService) List(ctx context.Context, req *dto.ErrorListRequest) (*dto.PaginatedResponse[*dto.ErrorResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ErrorRepository()

	countSpecs := []specification.Specification{}
	listSpecs := []specification.Specification{}
	addBoth := func(spec specification.Specification) {
		countSpecs = append(countSpecs, spec)
		listSpecs = append(listSpecs, spec)
	}

	if req.Search != "" {
		countSpecs = append(countSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"error_message", "error_type"}})
		listSpecs = append(listSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"errors.error_message", "errors.error_type", "shops.name"}})
	}
	if req.Status != "" {
		addBoth(specification.Filter("errors.status", req.Status))
	}
	if req.Source != "" {
		addBoth(specification.Filter("errors.source", req.Source))
	}

	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs = append(listSpecs,
		specification.OrderBy{Field: "errors.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	records, err := repo.FindAllWithShop(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ErrorResponse, len(records))
	for i, record := range records {
		items[i] = errorToResponse(&record.ErrorRecord, record.ShopName)
	}

	return &dto.PaginatedResponse[*dto.ErrorResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *errorService) Get(ctx context.Context, id uuid.UUID) (*dto.ErrorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.ErrorRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("error record not found")
	}

	var shopName *string
	if record.ShopId != nil {
		if shop, serr := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: *record.ShopId}); serr == nil && shop != nil {
			shopName = &shop.Name
		}
	}

	return errorToResponse(record, shopName), nil
}

// UpdateStatus moves the record to any triage state. Resolving stamps
// the resolver; leaving the resolved state clears the resolution fields.
func (s *errorService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateErrorStatusRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.ErrorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ErrorRepository()

	record, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("error record not found")
	}

	previous := record.Status
	record.Status = entity.ErrorStatus(req.Status)

	if record.Status == entity.ErrorStatusResolved {
		now := time.Now()
		record.ResolutionNote = &req.ResolutionNote
		record.ResolvedBy = &actorId
		record.ResolvedAt = &now
	} else {
		record.ResolutionNote = nil
		record.ResolvedBy = nil
		record.ResolvedAt = nil
	}

	if err := repo.Update(ctx, record); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "update_error_status", "error", id.String(), map[string]interface{}{
		"previous_status": string(previous),
		"new_status":      req.Status,
	}, ipAddress, userAgent)
	s.publishChange(changefeed.ActionUpdated, record)

	return errorToResponse(record, nil), nil
}

// Ingest accepts an error report authenticated by a shop API key.
func (s *errorService) Ingest(ctx context.Context, apiKey string, req *dto.IngestErrorRequest) (*dto.ErrorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByApiKey{ApiKey: apiKey})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("invalid api key")
	}

	record := &entity.ErrorRecord{
		Id:             uuid.New(),
		ShopId:         &shop.Id,
		VerificationId: req.VerificationId,
		Source:         req.Source,
		ErrorType:      req.ErrorType,
		ErrorMessage:   req.ErrorMessage,
		ErrorDetails:   req.ErrorDetails,
		Status:         entity.ErrorStatusOpen,
		CreatedAt:      time.Now(),
	}
	if err := uow.ErrorRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	s.sysLogger.Error("Ingest", "Error reported by shop", map[string]interface{}{
		"shop_id":    shop.Id,
		"source":     req.Source,
		"error_type": req.ErrorType,
	})
	s.publishChange(changefeed.ActionInserted, record)
	s.maybeSendAlert(ctx, record)

	return errorToResponse(record, &shop.Name), nil
}

// maybeSendAlert emails the configured recipients when error alerts are
// enabled. Mail failures never affect ingestion.
func (s *errorService) maybeSendAlert(ctx context.Context, record *entity.ErrorRecord) {
	setting, err := s.settingsService.GetKey(ctx, entity.SettingCategoryNotifications, entity.SettingKeyEmailNotifications)
	if err != nil {
		return
	}
	enabled, _ := setting.Value["error_alerts"].(bool)
	if !enabled {
		return
	}

	rawRecipients, _ := setting.Value["recipients"].([]interface{})
	recipients := make([]string, 0, len(rawRecipients))
	for _, r := range rawRecipients {
		if email, ok := r.(string); ok && email != "" {
			recipients = append(recipients, email)
		}
	}
	if len(recipients) == 0 {
		return
	}

	go func() {
		if err := s.emailService.SendErrorAlert(recipients, record.Source, record.ErrorType, record.ErrorMessage); err != nil {
			s.sysLogger.Warn("Error", "Failed to send error alert", map[string]interface{}{"error": err.Error()})
		}
	}()
}
