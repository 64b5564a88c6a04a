package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/invoice"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IWalletService interface {
	List(ctx context.Context, req *dto.TransactionListRequest) (*dto.PaginatedResponse[*dto.TransactionResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	BuildInvoice(ctx context.Context, id uuid.UUID) (*bytes.Buffer, string, error)
}

type walletService struct {
	uowFactory      unitofwork.RepositoryFactory
	settingsService ISettingsService
	generator       *invoice.Generator
	sysLogger       logger.ILogger
}

func NewWalletService(
	uowFactory unitofwork.RepositoryFactory,
	settingsService ISettingsService,
	generator *invoice.Generator,
	sysLogger logger.ILogger,
) IWalletService {
	return &walletService{
		uowFactory:      uowFactory,
		settingsService: settingsService,
		generator:       generator,
		sysLogger:       sysLogger,
	}
}

// dateRangeSpecs converts optional YYYY-MM-DD bounds into created_at
// specifications. The upper bound is inclusive of the named day.
func dateRangeSpecs(from, to, column string) ([]specification.Specification, error) {
	specs := []specification.Specification{}
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, errors.New("invalid date_from filter")
		}
		specs = append(specs, specification.CreatedAfter{After: t, Column: column})
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, errors.New("invalid date_to filter")
		}
		specs = append(specs, specification.CreatedBefore{Before: t.AddDate(0, 0, 1), Column: column})
	}
	return specs, nil
}

func transactionToResponse(t *entity.WalletTransaction, companyName string) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		Id:            t.Id,
		CompanyId:     t.CompanyId,
		CompanyName:   companyName,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Status:        string(t.Status),
		Description:   t.Description,
		InvoiceNumber: t.InvoiceNumber,
		CreatedAt:     t.CreatedAt,
	}
}

func (s *walletService) List(ctx context.Context, req *dto.TransactionListRequest) (*dto.PaginatedResponse[*dto.TransactionResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WalletRepository()

	countSpecs := []specification.Specification{}
	listSpecs := []specification.Specification{}
	addBoth := func(spec specification.Specification) {
		countSpecs = append(countSpecs, spec)
		listSpecs = append(listSpecs, spec)
	}

	if req.Search != "" {
		countSpecs = append(countSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"description", "invoice_number"}})
		listSpecs = append(listSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"wallet_transactions.description", "wallet_transactions.invoice_number", "companies.name"}})
	}
	if req.Type != "" {
		addBoth(specification.Filter("wallet_transactions.type", req.Type))
	}
	if req.Status != "" {
		addBoth(specification.Filter("wallet_transactions.status", req.Status))
	}
	if req.CompanyId != "" {
		companyId, err := uuid.Parse(req.CompanyId)
		if err != nil {
			return nil, errors.New("invalid company_id filter")
		}
		addBoth(specification.Filter("wallet_transactions.company_id", companyId))
	}
	dateSpecs, err := dateRangeSpecs(req.DateFrom, req.DateTo, "wallet_transactions.created_at")
	if err != nil {
		return nil, err
	}
	for _, spec := range dateSpecs {
		addBoth(spec)
	}

	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs = append(listSpecs,
		specification.OrderBy{Field: "wallet_transactions.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	txs, err := repo.FindAllWithCompany(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = transactionToResponse(&tx.WalletTransaction, tx.CompanyName)
	}

	return &dto.PaginatedResponse[*dto.TransactionResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *walletService) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tx, err := uow.WalletRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errors.New("transaction not found")
	}

	companyName := ""
	if company, cerr := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: tx.CompanyId}); cerr == nil && company != nil {
		companyName = company.Name
	}

	return transactionToResponse(tx, companyName), nil
}

// BuildInvoice renders the xlsx invoice for a transaction that carries
// an invoice number. Returns the workbook and a download filename.
func (s *walletService) BuildInvoice(ctx context.Context, id uuid.UUID) (*bytes.Buffer, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tx, err := uow.WalletRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, "", err
	}
	if tx == nil {
		return nil, "", errors.New("transaction not found")
	}
	if tx.InvoiceNumber == nil {
		return nil, "", errors.New("invoice not found")
	}

	companyName := ""
	if company, cerr := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: tx.CompanyId}); cerr == nil && company != nil {
		companyName = company.Name
	}

	supplier := s.supplierDetails(ctx)
	opts := s.invoiceOptions(ctx)

	item := &entity.TransactionListItem{
		WalletTransaction: *tx,
		CompanyName:       companyName,
	}
	buf, err := s.generator.Build(item, supplier, opts)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.xlsx", *tx.InvoiceNumber)
	return buf, filename, nil
}

func (s *walletService) supplierDetails(ctx context.Context) invoice.SupplierDetails {
	details := invoice.SupplierDetails{}
	setting, err := s.settingsService.GetKey(ctx, entity.SettingCategoryBilling, entity.SettingKeyCompanyDetails)
	if err != nil {
		return details
	}
	details.Name, _ = setting.Value["name"].(string)
	details.Address, _ = setting.Value["address"].(string)
	details.Ico, _ = setting.Value["ico"].(string)
	details.Dic, _ = setting.Value["dic"].(string)
	details.BankAccount, _ = setting.Value["bank_account"].(string)
	return details
}

func (s *walletService) invoiceOptions(ctx context.Context) invoice.Options {
	opts := invoice.Options{
		VatRate: decimal.NewFromInt(21),
		DueDays: 14,
	}
	setting, err := s.settingsService.GetKey(ctx, entity.SettingCategoryBilling, entity.SettingKeyInvoiceSettings)
	if err != nil {
		return opts
	}
	if vat, ok := setting.Value["vat_rate"].(float64); ok {
		opts.VatRate = decimal.NewFromFloat(vat)
	}
	if due, ok := setting.Value["due_days"].(float64); ok {
		opts.DueDays = int(due)
	}
	return opts
}
