package service

import (
	"context"
	"errors"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IVerificationService interface {
	List(ctx context.Context, req *dto.VerificationListRequest) (*dto.PaginatedResponse[*dto.VerificationResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VerificationResponse, error)
	Correct(ctx context.Context, id uuid.UUID, req *dto.CorrectVerificationRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.VerificationResponse, error)
}

type verificationService struct {
	uowFactory unitofwork.RepositoryFactory
	changeBus  *changefeed.Bus
	sysLogger  logger.ILogger
}

func NewVerificationService(uowFactory unitofwork.RepositoryFactory, changeBus *changefeed.Bus, sysLogger logger.ILogger) IVerificationService {
	return &verificationService{
		uowFactory: uowFactory,
		changeBus:  changeBus,
		sysLogger:  sysLogger,
	}
}

func verificationToResponse(v *entity.Verification, shopName, companyName string) *dto.VerificationResponse {
	return &dto.VerificationResponse{
		Id:           v.Id,
		ShopId:       v.ShopId,
		ShopName:     shopName,
		CompanyName:  companyName,
		SessionId:    v.SessionId,
		Method:       v.Method,
		Status:       string(v.Status),
		Result:       string(v.Result),
		Price:        v.Price,
		ErrorMessage: v.ErrorMessage,
		Metadata:     v.Metadata,
		CreatedAt:    v.CreatedAt,
		CompletedAt:  v.CompletedAt,
	}
}

func (s *verificationService) List(ctx context.Context, req *dto.VerificationListRequest) (*dto.PaginatedResponse[*dto.VerificationResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.VerificationRepository()

	countSpecs := []specification.Specification{}
	listSpecs := []specification.Specification{}
	addBoth := func(spec specification.Specification) {
		countSpecs = append(countSpecs, spec)
		listSpecs = append(listSpecs, spec)
	}

	if req.Search != "" {
		countSpecs = append(countSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"session_id"}})
		listSpecs = append(listSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"verifications.session_id", "shops.name"}})
	}
	if req.Status != "" {
		addBoth(specification.Filter("verifications.status", req.Status))
	}
	if req.Result != "" {
		addBoth(specification.Filter("verifications.result", req.Result))
	}
	if req.Method != "" {
		addBoth(specification.Filter("verifications.method", req.Method))
	}
	if req.ShopId != "" {
		shopId, err := uuid.Parse(req.ShopId)
		if err != nil {
			return nil, errors.New("invalid shop_id filter")
		}
		addBoth(specification.Filter("verifications.shop_id", shopId))
	}

	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs = append(listSpecs,
		specification.OrderBy{Field: "verifications.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	verifications, err := repo.FindAllWithShop(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VerificationResponse, len(verifications))
	for i, v := range verifications {
		items[i] = verificationToResponse(&v.Verification, v.ShopName, v.CompanyName)
	}

	return &dto.PaginatedResponse[*dto.VerificationResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *verificationService) Get(ctx context.Context, id uuid.UUID) (*dto.VerificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	verification, err := uow.VerificationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if verification == nil {
		return nil, errors.New("verification not found")
	}

	shopName := ""
	companyName := ""
	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: verification.ShopId})
	if err == nil && shop != nil {
		shopName = shop.Name
		if company, cerr := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: shop.CompanyId}); cerr == nil && company != nil {
			companyName = company.Name
		}
	}

	return verificationToResponse(verification, shopName, companyName), nil
}

// Correct flips the stored result of a completed verification after a
// manual review. Pending verifications cannot be corrected.
func (s *verificationService) Correct(ctx context.Context, id uuid.UUID, req *dto.CorrectVerificationRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.VerificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.VerificationRepository()

	verification, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if verification == nil {
		return nil, errors.New("verification not found")
	}
	if verification.Status != entity.VerificationStatusCompleted {
		return nil, errors.New("only completed verifications can be corrected")
	}

	previous := verification.Result
	verification.Result = entity.VerificationResult(req.Result)

	if err := repo.Update(ctx, verification); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "correct_verification", "verification", id.String(), map[string]interface{}{
		"previous_result": string(previous),
		"new_result":      req.Result,
		"note":            req.Note,
	}, ipAddress, userAgent)

	resp := verificationToResponse(verification, "", "")
	if err := s.changeBus.Publish(changefeed.TableVerifications, changefeed.ActionUpdated, changefeed.Row(resp)); err != nil {
		s.sysLogger.Warn("Verification", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}
