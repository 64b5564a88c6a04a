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
	"agegate-admin-be/pkg/utils"

	"github.com/google/uuid"
)

type IShopService interface {
	List(ctx context.Context, req *dto.ShopListRequest) (*dto.PaginatedResponse[*dto.ShopResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateShopRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.ShopResponse, error)
	RegenerateApiKey(ctx context.Context, id uuid.UUID, actorId uuid.UUID, ipAddress, userAgent string) (*dto.RegenerateApiKeyResponse, error)
	GetCustomization(ctx context.Context, shopId uuid.UUID) (*dto.CustomizationResponse, error)
	SaveCustomization(ctx context.Context, shopId uuid.UUID, req *dto.SaveCustomizationRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CustomizationResponse, error)
}

type shopService struct {
	uowFactory unitofwork.RepositoryFactory
	changeBus  *changefeed.Bus
	sysLogger  logger.ILogger
}

func NewShopService(uowFactory unitofwork.RepositoryFactory, changeBus *changefeed.Bus, sysLogger logger.ILogger) IShopService {
	return &shopService{
		uowFactory: uowFactory,
		changeBus:  changeBus,
		sysLogger:  sysLogger,
	}
}

func shopToResponse(s *entity.Shop, companyName string) *dto.ShopResponse {
	methods := s.VerificationMethods
	if methods == nil {
		methods = []string{}
	}
	return &dto.ShopResponse{
		Id:                  s.Id,
		CompanyId:           s.CompanyId,
		CompanyName:         companyName,
		Name:                s.Name,
		Url:                 s.Url,
		Sector:              s.Sector,
		IntegrationType:     s.IntegrationType,
		PricingPlan:         s.PricingPlan,
		VerificationMethods: methods,
		Status:              string(s.Status),
		ApiKey:              s.ApiKey,
		CreatedAt:           s.CreatedAt,
	}
}

func customizationToResponse(c *entity.Customization) *dto.CustomizationResponse {
	methods := c.VerificationMethods
	if methods == nil {
		methods = []string{}
	}
	return &dto.CustomizationResponse{
		Id:                  c.Id,
		ShopId:              c.ShopId,
		LogoUrl:             c.LogoUrl,
		PrimaryColor:        c.PrimaryColor,
		SecondaryColor:      c.SecondaryColor,
		Font:                c.Font,
		ButtonStyle:         c.ButtonStyle,
		VerificationMethods: methods,
		FailureAction:       string(c.FailureAction),
		FailureRedirect:     c.FailureRedirect,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (s *shopService) publishShopChange(shop *entity.Shop, companyName string) {
	if err := s.changeBus.Publish(changefeed.TableShops, changefeed.ActionUpdated, changefeed.Row(shopToResponse(shop, companyName))); err != nil {
		s.sysLogger.Warn("Shop", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *shopService) List(ctx context.Context, req *dto.ShopListRequest) (*dto.PaginatedResponse[*dto.ShopResponse], error) {
	page, limit := normalizePaging(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ShopRepository()

	countSpecs := []specification.Specification{}
	listSpecs := []specification.Specification{}
	if req.Search != "" {
		countSpecs = append(countSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"shops.name", "shops.url"}})
		listSpecs = append(listSpecs, specification.SearchILike{Query: req.Search, Columns: []string{"shops.name", "shops.url", "companies.name"}})
	}
	if req.Status != "" {
		countSpecs = append(countSpecs, specification.Filter("shops.status", req.Status))
		listSpecs = append(listSpecs, specification.Filter("shops.status", req.Status))
	}
	if req.CompanyId != "" {
		companyId, err := uuid.Parse(req.CompanyId)
		if err != nil {
			return nil, errors.New("invalid company_id filter")
		}
		countSpecs = append(countSpecs, specification.Filter("shops.company_id", companyId))
		listSpecs = append(listSpecs, specification.Filter("shops.company_id", companyId))
	}

	total, err := repo.Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs = append(listSpecs,
		specification.OrderBy{Field: "shops.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	shops, err := repo.FindAllWithCompany(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ShopResponse, len(shops))
	for i, shop := range shops {
		items[i] = shopToResponse(&shop.Shop, shop.CompanyName)
	}

	return &dto.PaginatedResponse[*dto.ShopResponse]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *shopService) Get(ctx context.Context, id uuid.UUID) (*dto.ShopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop not found")
	}

	companyName := ""
	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: shop.CompanyId})
	if err == nil && company != nil {
		companyName = company.Name
	}

	return shopToResponse(shop, companyName), nil
}

func (s *shopService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateShopRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.ShopResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ShopRepository()

	shop, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop not found")
	}

	if req.Name != "" {
		shop.Name = req.Name
	}
	if req.Url != "" {
		shop.Url = req.Url
	}
	if req.Sector != "" {
		shop.Sector = req.Sector
	}
	if req.IntegrationType != "" {
		shop.IntegrationType = req.IntegrationType
	}
	if req.PricingPlan != "" {
		shop.PricingPlan = req.PricingPlan
	}
	if req.VerificationMethods != nil {
		shop.VerificationMethods = req.VerificationMethods
	}
	if req.Status != "" {
		shop.Status = entity.ShopStatus(req.Status)
	}

	if err := repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "update_shop", "shop", id.String(), nil, ipAddress, userAgent)
	s.publishShopChange(shop, "")

	return shopToResponse(shop, ""), nil
}

// RegenerateApiKey replaces the shop key immediately; the old key stops
// working as soon as the row is written.
func (s *shopService) RegenerateApiKey(ctx context.Context, id uuid.UUID, actorId uuid.UUID, ipAddress, userAgent string) (*dto.RegenerateApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ShopRepository()

	shop, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop not found")
	}

	key, err := utils.GenerateApiKey()
	if err != nil {
		return nil, err
	}
	shop.ApiKey = key

	if err := repo.Update(ctx, shop); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "regenerate_api_key", "shop", id.String(), nil, ipAddress, userAgent)
	s.sysLogger.Info("Shop", "API key regenerated", map[string]interface{}{"shop_id": id})
	s.publishShopChange(shop, "")

	return &dto.RegenerateApiKeyResponse{ApiKey: key}, nil
}

func (s *shopService) GetCustomization(ctx context.Context, shopId uuid.UUID) (*dto.CustomizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ShopRepository()

	shop, err := repo.FindOne(ctx, specification.ByID{ID: shopId})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop not found")
	}

	customization, err := repo.FindCustomization(ctx, shopId)
	if err != nil {
		return nil, err
	}
	if customization == nil {
		return nil, errors.New("customization not found")
	}

	return customizationToResponse(customization), nil
}

func (s *shopService) SaveCustomization(ctx context.Context, shopId uuid.UUID, req *dto.SaveCustomizationRequest, actorId uuid.UUID, ipAddress, userAgent string) (*dto.CustomizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ShopRepository()

	shop, err := repo.FindOne(ctx, specification.ByID{ID: shopId})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, errors.New("shop not found")
	}

	failureRedirect := req.FailureRedirect
	if entity.FailureAction(req.FailureAction) == entity.FailureActionBlock {
		failureRedirect = nil
	}

	customization := &entity.Customization{
		Id:                  uuid.New(),
		ShopId:              shopId,
		LogoUrl:             req.LogoUrl,
		PrimaryColor:        req.PrimaryColor,
		SecondaryColor:      req.SecondaryColor,
		Font:                req.Font,
		ButtonStyle:         req.ButtonStyle,
		VerificationMethods: req.VerificationMethods,
		FailureAction:       entity.FailureAction(req.FailureAction),
		FailureRedirect:     failureRedirect,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if err := repo.SaveCustomization(ctx, customization); err != nil {
		return nil, err
	}

	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, actorId, "save_customization", "customization", customization.Id.String(), map[string]interface{}{
		"shop_id": shopId.String(),
	}, ipAddress, userAgent)

	resp := customizationToResponse(customization)
	if err := s.changeBus.Publish(changefeed.TableCustomizations, changefeed.ActionUpdated, changefeed.Row(resp)); err != nil {
		s.sysLogger.Warn("Shop", "Failed to publish change event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}
