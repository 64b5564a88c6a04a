package service

import (
	"context"
	"errors"
	"time"

	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	List(ctx context.Context, req *dto.AdminListRequest) (*dto.PaginatedResponse[*dto.AdminResponse], error)
	Create(ctx context.Context, req *dto.CreateAdminRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.AdminResponse, error)
	ListActionLogs(ctx context.Context, req *dto.ActionLogListRequest) (*dto.PaginatedResponse[*dto.ActionLogResponse], error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogById(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func (s *adminService) List(ctx context.Context, req *dto.AdminListRequest) (*dto.PaginatedResponse[*dto.AdminResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AdminRepository()

	specs := []specification.Specification{}
	if req.Search != "" {
		specs = append(specs, specification.SearchILike{Query: req.Search, Columns: []string{"name", "email"}})
	}
	if req.Role != "" {
		specs = append(specs, specification.ByRole{Role: req.Role})
	}

	total, err := repo.Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	admins, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminResponse, len(admins))
	for i, admin := range admins {
		items[i] = AdminToResponse(admin)
	}

	return &dto.PaginatedResponse[*dto.AdminResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AdminRepository()

	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("admin already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	admin := &entity.Admin{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         entity.AdminRole(req.Role),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logAdminAction(ctx, repo, s.sysLogger, actorId, "create_admin", "admin", admin.Id.String(), map[string]interface{}{
		"email": admin.Email,
		"role":  string(admin.Role),
	}, ipAddress, userAgent)
	s.sysLogger.Info("Admin", "Admin account created", map[string]interface{}{"admin_id": admin.Id, "role": admin.Role})

	return AdminToResponse(admin), nil
}

func (s *adminService) ListActionLogs(ctx context.Context, req *dto.ActionLogListRequest) (*dto.PaginatedResponse[*dto.ActionLogResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AdminRepository()

	specs := []specification.Specification{}
	if req.AdminId != "" {
		adminId, err := uuid.Parse(req.AdminId)
		if err != nil {
			return nil, errors.New("invalid admin_id filter")
		}
		specs = append(specs, specification.Filter("admin_id", adminId))
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	logs, err := repo.FindActionLogs(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ActionLogResponse, len(logs))
	for i, log := range logs {
		items[i] = &dto.ActionLogResponse{
			Id:         log.Id,
			AdminId:    log.AdminId,
			Action:     log.Action,
			EntityType: log.EntityType,
			EntityId:   log.EntityId,
			Details:    log.Details,
			IpAddress:  log.IpAddress,
			UserAgent:  log.UserAgent,
			CreatedAt:  log.CreatedAt,
		}
	}

	return &dto.PaginatedResponse[*dto.ActionLogResponse]{Items: items, Total: int64(len(items)), Page: page, Limit: limit}, nil
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.sysLogger.GetLogs(level, limit, offset)
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*logger.LogEntry, error) {
	return s.sysLogger.GetLogById(id)
}
