package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ICompanyService interface {
	List(ctx context.Context, req *dto.CompanyListRequest) (*dto.PaginatedResponse[*dto.CompanyResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CompanyDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCompanyRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error)
	Approve(ctx context.Context, id uuid.UUID, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error)
	Reject(ctx context.Context, id uuid.UUID, req *dto.RejectCompanyRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error)
	AdjustCredit(ctx context.Context, id uuid.UUID, req *dto.CreditAdjustmentRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.TransactionResponse, error)
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
	changeBus  *changefeed.Bus
	sysLogger  logger.ILogger
}

func NewCompanyService(uowFactory unitofwork.RepositoryFactory, changeBus *changefeed.Bus, sysLogger logger.ILogger) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
		changeBus:  changeBus,
		sysLogger:  sysLogger,
	}
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Id:              c.Id,
		Name:            c.Name,
		Ico:             c.Ico,
		Dic:             c.Dic,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		ContactPerson:   c.ContactPerson,
		Status:          string(c.Status),
		ApprovedBy:      c.ApprovedBy,
		ApprovedAt:      c.ApprovedAt,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
	}
}

func (s *companyService) publishChange(action changefeed.Action, company *entity.Company) {
	if err := s.changeBus.Publish(changefeed.TableCompanies, action, changefeed.Row(companyToResponse(company))); err != nil {
		s.sysLogger.Warn("Company", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *companyService) List(ctx context.Context, req *dto.CompanyListRequest) (*dto.PaginatedResponse[*dto.CompanyResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()

	specs := []specification.Specification{}
	if req.Search != "" {
		specs = append(specs, specification.SearchILike{Query: req.Search, Columns: []string{"name", "ico", "email"}})
	}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	total, err := repo.Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	companies, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyResponse, len(companies))
	for i, c := range companies {
		items[i] = companyToResponse(c)
	}

	return &dto.PaginatedResponse[*dto.CompanyResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *companyService) Get(ctx context.Context, id uuid.UUID) (*dto.CompanyDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	balance, err := uow.WalletRepository().BalanceFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CompanyDetailResponse{
		CompanyResponse: *companyToResponse(company),
		Balance:         balance,
	}, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCompanyRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()

	company, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Ico != "" {
		company.Ico = req.Ico
	}
	if req.Dic != "" {
		company.Dic = req.Dic
	}
	if req.Email != "" {
		company.Email = req.Email
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.ContactPerson != "" {
		company.ContactPerson = req.ContactPerson
	}

	if err := repo.Update(ctx, company); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "update_company", "company", id.String(), nil, ipAddress, userAgent)
	s.publishChange(changefeed.ActionUpdated, company)

	return companyToResponse(company), nil
}

func (s *companyService) Approve(ctx context.Context, id uuid.UUID, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()

	company, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}
	if company.Status != entity.CompanyStatusPending {
		return nil, fmt.Errorf("company is already %s", company.Status)
	}

	now := time.Now()
	company.Status = entity.CompanyStatusApproved
	company.ApprovedBy = &actorId
	company.ApprovedAt = &now
	company.RejectionReason = nil

	if err := repo.Update(ctx, company); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "approve_company", "company", id.String(), nil, ipAddress, userAgent)
	s.sysLogger.Info("Company", "Company approved", map[string]interface{}{"company_id": id, "approved_by": actorId})
	s.publishChange(changefeed.ActionUpdated, company)

	return companyToResponse(company), nil
}

func (s *companyService) Reject(ctx context.Context, id uuid.UUID, req *dto.RejectCompanyRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CompanyRepository()

	company, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}
	if company.Status != entity.CompanyStatusPending {
		return nil, fmt.Errorf("company is already %s", company.Status)
	}

	company.Status = entity.CompanyStatusRejected
	company.RejectionReason = &req.Reason
	company.ApprovedBy = nil
	company.ApprovedAt = nil

	if err := repo.Update(ctx, company); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "reject_company", "company", id.String(), map[string]interface{}{
		"reason": req.Reason,
	}, ipAddress, userAgent)
	s.publishChange(changefeed.ActionUpdated, company)

	return companyToResponse(company), nil
}

// AdjustCredit books a manual balance adjustment as a completed wallet
// transaction. The balance itself stays derived from the ledger.
func (s *companyService) AdjustCredit(ctx context.Context, id uuid.UUID, req *dto.CreditAdjustmentRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.TransactionResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("amount must be positive")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	tx := &entity.WalletTransaction{
		Id:          uuid.New(),
		CompanyId:   id,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Status:      entity.TransactionStatusCompleted,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.WalletRepository().Create(ctx, tx); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "adjust_credit", "wallet_transaction", tx.Id.String(), map[string]interface{}{
		"company_id": id.String(),
		"type":       req.Type,
		"amount":     req.Amount.String(),
	}, ipAddress, userAgent)

	resp := &dto.TransactionResponse{
		Id:            tx.Id,
		CompanyId:     tx.CompanyId,
		CompanyName:   company.Name,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Status:        string(tx.Status),
		Description:   tx.Description,
		InvoiceNumber: tx.InvoiceNumber,
		CreatedAt:     tx.CreatedAt,
	}
	if err := s.changeBus.Publish(changefeed.TableWalletTransactions, changefeed.ActionInserted, changefeed.Row(resp)); err != nil {
		s.sysLogger.Warn("Company", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}
