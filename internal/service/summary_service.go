package service

import (
	"context"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/pkg/mailer"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/robfig/cron/v3"
)

// ISummaryService emails the previous day's verification digest to the
// configured recipients every morning.
type ISummaryService interface {
	Start() error
	Stop()
	SendDailySummary(ctx context.Context) error
}

type summaryService struct {
	uowFactory      unitofwork.RepositoryFactory
	settingsService ISettingsService
	emailService    mailer.IEmailService
	sysLogger       logger.ILogger
	scheduler       *cron.Cron
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	settingsService ISettingsService,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:      uowFactory,
		settingsService: settingsService,
		emailService:    emailService,
		sysLogger:       sysLogger,
		scheduler:       cron.New(),
	}
}

func (s *summaryService) Start() error {
	_, err := s.scheduler.AddFunc("0 7 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.SendDailySummary(ctx); err != nil {
			s.sysLogger.Error("Summary", "Daily summary failed", map[string]interface{}{"error": err.Error()})
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *summaryService) Stop() {
	s.scheduler.Stop()
}

func (s *summaryService) SendDailySummary(ctx context.Context) error {
	setting, err := s.settingsService.GetKey(ctx, entity.SettingCategoryNotifications, entity.SettingKeyEmailNotifications)
	if err != nil {
		return err
	}
	enabled, _ := setting.Value["daily_summary"].(bool)
	if !enabled {
		return nil
	}

	rawRecipients, _ := setting.Value["recipients"].([]interface{})
	recipients := make([]string, 0, len(rawRecipients))
	for _, r := range rawRecipients {
		if email, ok := r.(string); ok && email != "" {
			recipients = append(recipients, email)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	verifications, err := uow.VerificationRepository().CountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}
	completedTotal, succeeded, err := uow.VerificationRepository().CountCompletedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}
	newErrors, err := uow.ErrorRepository().Count(ctx,
		specification.CreatedAfter{After: dayStart},
		specification.CreatedBefore{Before: dayEnd},
	)
	if err != nil {
		return err
	}

	date := dayStart.Format("2006-01-02")
	if err := s.emailService.SendDailySummary(recipients, date, verifications, newErrors, SuccessRate(succeeded, completedTotal)); err != nil {
		return err
	}

	s.sysLogger.Info("Summary", "Daily summary sent", map[string]interface{}{
		"date":       date,
		"recipients": len(recipients),
	})
	return nil
}
