package service

import (
	"context"
	"testing"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/repository/contract"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeErrorRepo struct {
	record  *entity.ErrorRecord
	updated *entity.ErrorRecord
}

func (r *fakeErrorRepo) Create(ctx context.Context, record *entity.ErrorRecord) error {
	return nil
}

func (r *fakeErrorRepo) Update(ctx context.Context, record *entity.ErrorRecord) error {
	stored := *record
	r.updated = &stored
	return nil
}

func (r *fakeErrorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ErrorRecord, error) {
	if r.record == nil {
		return nil, nil
	}
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok && byId.ID != r.record.Id {
			return nil, nil
		}
	}
	stored := *r.record
	return &stored, nil
}

func (r *fakeErrorRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorRecord, error) {
	return nil, nil
}

func (r *fakeErrorRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeErrorRepo) FindAllWithShop(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorListItem, error) {
	return nil, nil
}

type fakeAdminRepo struct {
	actionLogs []*entity.AdminActionLog
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.Admin) error { return nil }
func (r *fakeAdminRepo) Update(ctx context.Context, admin *entity.Admin) error { return nil }

func (r *fakeAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	return nil, nil
}

func (r *fakeAdminRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error) {
	return nil, nil
}

func (r *fakeAdminRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeAdminRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (r *fakeAdminRepo) CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error {
	r.actionLogs = append(r.actionLogs, log)
	return nil
}

func (r *fakeAdminRepo) FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error) {
	return nil, nil
}

func (r *fakeAdminRepo) CreateLoginAttempt(ctx context.Context, attempt *entity.AdminLoginAttempt) error {
	return nil
}

func (r *fakeAdminRepo) CountFailedAttemptsSince(ctx context.Context, email string, since time.Time) (int64, error) {
	return 0, nil
}

type fakeUnitOfWork struct {
	errors *fakeErrorRepo
	admins *fakeAdminRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) AdminRepository() contract.AdminRepository     { return u.admins }
func (u *fakeUnitOfWork) CompanyRepository() contract.CompanyRepository { return nil }
func (u *fakeUnitOfWork) ShopRepository() contract.ShopRepository       { return nil }
func (u *fakeUnitOfWork) VerificationRepository() contract.VerificationRepository {
	return nil
}
func (u *fakeUnitOfWork) WalletRepository() contract.WalletRepository   { return nil }
func (u *fakeUnitOfWork) ErrorRepository() contract.ErrorRepository     { return u.errors }
func (u *fakeUnitOfWork) SettingRepository() contract.SettingRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func (noopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func newErrorServiceFixture(record *entity.ErrorRecord) (IErrorService, *fakeErrorRepo, *fakeAdminRepo) {
	errors := &fakeErrorRepo{record: record}
	admins := &fakeAdminRepo{}
	uow := &fakeUnitOfWork{errors: errors, admins: admins}
	bus := changefeed.NewBus(gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}))
	svc := NewErrorService(fakeUowFactory{uow: uow}, nil, nil, bus, noopLogger{})
	return svc, errors, admins
}

func TestUpdateErrorStatusResolvedStampsResolution(t *testing.T) {
	record := &entity.ErrorRecord{
		Id:           uuid.New(),
		Source:       "eshop",
		ErrorType:    "timeout",
		ErrorMessage: "gateway timeout",
		Status:       entity.ErrorStatusInvestigating,
		CreatedAt:    time.Now(),
	}
	svc, repo, admins := newErrorServiceFixture(record)
	actorId := uuid.New()

	resp, err := svc.UpdateStatus(context.Background(), record.Id, &dto.UpdateErrorStatusRequest{
		Status:         "resolved",
		ResolutionNote: "provider restored, retried the batch",
	}, actorId, "127.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
	assert.NotNil(t, resp.ResolutionNote)
	assert.Equal(t, "provider restored, retried the batch", *resp.ResolutionNote)
	assert.NotNil(t, resp.ResolvedBy)
	assert.Equal(t, actorId, *resp.ResolvedBy)
	assert.NotNil(t, resp.ResolvedAt)

	assert.NotNil(t, repo.updated)
	assert.Equal(t, entity.ErrorStatusResolved, repo.updated.Status)
	assert.NotNil(t, repo.updated.ResolvedAt)

	assert.Len(t, admins.actionLogs, 1)
	assert.Equal(t, "update_error_status", admins.actionLogs[0].Action)
}

func TestUpdateErrorStatusReopenClearsResolution(t *testing.T) {
	note := "provider restored"
	resolver := uuid.New()
	resolvedAt := time.Now().Add(-time.Hour)
	record := &entity.ErrorRecord{
		Id:             uuid.New(),
		Source:         "server",
		ErrorType:      "validation",
		ErrorMessage:   "bad payload",
		Status:         entity.ErrorStatusResolved,
		ResolutionNote: &note,
		ResolvedBy:     &resolver,
		ResolvedAt:     &resolvedAt,
		CreatedAt:      time.Now().Add(-2 * time.Hour),
	}
	svc, repo, _ := newErrorServiceFixture(record)

	resp, err := svc.UpdateStatus(context.Background(), record.Id, &dto.UpdateErrorStatusRequest{
		Status: "investigating",
	}, uuid.New(), "127.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, "investigating", resp.Status)
	assert.Nil(t, resp.ResolutionNote)
	assert.Nil(t, resp.ResolvedBy)
	assert.Nil(t, resp.ResolvedAt)

	assert.NotNil(t, repo.updated)
	assert.Nil(t, repo.updated.ResolutionNote)
	assert.Nil(t, repo.updated.ResolvedBy)
	assert.Nil(t, repo.updated.ResolvedAt)
}

func TestUpdateErrorStatusUnknownRecord(t *testing.T) {
	svc, repo, _ := newErrorServiceFixture(&entity.ErrorRecord{
		Id:     uuid.New(),
		Status: entity.ErrorStatusOpen,
	})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateErrorStatusRequest{
		Status: "investigating",
	}, uuid.New(), "127.0.0.1", "test-agent")

	assert.EqualError(t, err, "error record not found")
	assert.Nil(t, repo.updated)
}
