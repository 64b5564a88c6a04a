package service

import (
	"context"
	"math"
	"time"

	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	Overview(ctx context.Context, days int) ([]*dto.DailyCountResponse, error)
	TopCompanies(ctx context.Context, limit int) ([]*dto.TopCompanyResponse, error)
	RecentVerifications(ctx context.Context, limit int) ([]*dto.VerificationResponse, error)
}

// TrendDelta is the month-over-month change in percent. A zero previous
// month reads as exactly +100 when anything happened this month, 0
// otherwise.
func TrendDelta(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return math.Round(float64(current-previous)/float64(previous)*1000) / 10
}

// SuccessRate is succeeded/total in percent with one decimal; an empty
// total reads as 0.
func SuccessRate(succeeded, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(succeeded)/float64(total)*1000) / 10
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func monthWindow(now time.Time) (currentStart, previousStart time.Time) {
	currentStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart = currentStart.AddDate(0, -1, 0)
	return currentStart, previousStart
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	currentStart, previousStart := monthWindow(now)

	totalCompanies, err := uow.CompanyRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingCompanies, err := uow.CompanyRepository().CountByStatus(ctx, string(entity.CompanyStatusPending))
	if err != nil {
		return nil, err
	}

	totalShops, err := uow.ShopRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeShops, err := uow.ShopRepository().Count(ctx, specification.ByStatus{Status: string(entity.ShopStatusActive)})
	if err != nil {
		return nil, err
	}

	verificationRepo := uow.VerificationRepository()
	currentMonth, err := verificationRepo.CountBetween(ctx, currentStart, now)
	if err != nil {
		return nil, err
	}
	previousMonth, err := verificationRepo.CountBetween(ctx, previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	completedTotal, succeeded, err := verificationRepo.CountCompletedBetween(ctx, currentStart, now)
	if err != nil {
		return nil, err
	}

	openErrors, err := uow.ErrorRepository().Count(ctx, specification.ByStatus{Status: string(entity.ErrorStatusOpen)})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalCompanies:     totalCompanies,
		PendingCompanies:   pendingCompanies,
		TotalShops:         totalShops,
		ActiveShops:        activeShops,
		VerificationsMonth: currentMonth,
		VerificationsTrend: TrendDelta(currentMonth, previousMonth),
		SuccessRate:        SuccessRate(succeeded, completedTotal),
		OpenErrors:         openErrors,
	}, nil
}

// Overview returns the daily verification counts for the trailing
// window, zero-filled so every day has a point.
func (s *dashboardService) Overview(ctx context.Context, days int) ([]*dto.DailyCountResponse, error) {
	if days < 1 || days > 90 {
		days = 30
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))

	counts, err := uow.VerificationRepository().DailyCounts(ctx, from)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDate[c.Date] = c.Count
	}

	series := make([]*dto.DailyCountResponse, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = &dto.DailyCountResponse{Date: date, Count: byDate[date]}
	}
	return series, nil
}

func (s *dashboardService) TopCompanies(ctx context.Context, limit int) ([]*dto.TopCompanyResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	currentStart, _ := monthWindow(time.Now())

	stats, err := uow.VerificationRepository().TopCompanies(ctx, currentStart, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TopCompanyResponse, len(stats))
	for i, stat := range stats {
		items[i] = &dto.TopCompanyResponse{
			CompanyId:         stat.CompanyId,
			CompanyName:       stat.CompanyName,
			VerificationCount: stat.VerificationCount,
			SuccessRate:       stat.SuccessRate,
		}
	}
	return items, nil
}

func (s *dashboardService) RecentVerifications(ctx context.Context, limit int) ([]*dto.VerificationResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	verifications, err := uow.VerificationRepository().FindAllWithShop(ctx,
		specification.OrderBy{Field: "verifications.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VerificationResponse, len(verifications))
	for i, v := range verifications {
		items[i] = verificationToResponse(&v.Verification, v.ShopName, v.CompanyName)
	}
	return items, nil
}
