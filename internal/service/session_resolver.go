package service

import (
	"context"
	"errors"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// ISessionResolver resolves the authenticated admin record from its id.
// Lookups are memoized for a short window so repeated calls within one
// burst of requests hit the database once.
type ISessionResolver interface {
	Resolve(ctx context.Context, adminId uuid.UUID) (*entity.Admin, error)
	Invalidate(adminId uuid.UUID)
}

type sessionResolver struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

const sessionCacheTTL = 30 * time.Second

func NewSessionResolver(uowFactory unitofwork.RepositoryFactory) ISessionResolver {
	return &sessionResolver{
		uowFactory: uowFactory,
		cache:      gocache.New(sessionCacheTTL, time.Minute),
	}
}

func (s *sessionResolver) Resolve(ctx context.Context, adminId uuid.UUID) (*entity.Admin, error) {
	key := adminId.String()
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*entity.Admin), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, errors.New("admin not found")
	}

	s.cache.Set(key, admin, sessionCacheTTL)
	return admin, nil
}

// Invalidate drops the cached record after a mutation (role change,
// last login update).
func (s *sessionResolver) Invalidate(adminId uuid.UUID) {
	s.cache.Delete(adminId.String())
}
