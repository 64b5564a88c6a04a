package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agegate-admin-be/internal/config"
	"agegate-admin-be/internal/dto"
	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/pkg/ratelimit"
	"agegate-admin-be/internal/repository/specification"
	"agegate-admin-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, adminId uuid.UUID, ipAddress, userAgent string) error
	Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error)
}

type authService struct {
	uowFactory      unitofwork.RepositoryFactory
	sessionResolver ISessionResolver
	limiter         *ratelimit.RedisLimiter
	cfg             *config.Config
	sysLogger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessionResolver ISessionResolver,
	limiter *ratelimit.RedisLimiter,
	cfg *config.Config,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:      uowFactory,
		sessionResolver: sessionResolver,
		limiter:         limiter,
		cfg:             cfg,
		sysLogger:       sysLogger,
	}
}

func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		Id:          admin.Id,
		UserId:      admin.UserId,
		Name:        admin.Name,
		Email:       admin.Email,
		Role:        string(admin.Role),
		LastLoginAt: admin.LastLoginAt,
		CreatedAt:   admin.CreatedAt,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	// Fast path throttle: fixed window per email+ip in Redis.
	allowed, err := s.limiter.Allow(ctx, req.Email+":"+ipAddress)
	if err != nil {
		s.sysLogger.Warn("Auth", "Rate limiter unavailable", map[string]interface{}{"error": err.Error()})
	}
	if !allowed {
		return nil, errors.New("too many login attempts")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	adminRepo := uow.AdminRepository()

	// Durable throttle backed by the login attempts table.
	windowStart := time.Now().Add(-time.Duration(s.cfg.Auth.LoginWindowSecs) * time.Second)
	failed, err := adminRepo.CountFailedAttemptsSince(ctx, req.Email, windowStart)
	if err != nil {
		return nil, err
	}
	if failed >= int64(s.cfg.Auth.LoginMaxAttempts) {
		return nil, errors.New("too many login attempts")
	}

	admin, err := adminRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	recordAttempt := func(success bool) {
		attempt := &entity.AdminLoginAttempt{
			Id:        uuid.New(),
			Email:     req.Email,
			IpAddress: ipAddress,
			Success:   success,
			CreatedAt: time.Now(),
		}
		if err := adminRepo.CreateLoginAttempt(ctx, attempt); err != nil {
			s.sysLogger.Warn("Auth", "Failed to record login attempt", map[string]interface{}{"error": err.Error()})
		}
	}

	if admin == nil || admin.PasswordHash == nil {
		recordAttempt(false)
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte(req.Password)); err != nil {
		recordAttempt(false)
		return nil, errors.New("invalid credentials")
	}

	recordAttempt(true)

	now := time.Now()
	if err := adminRepo.TouchLastLogin(ctx, admin.Id, now); err != nil {
		s.sysLogger.Warn("Auth", "Failed to update last login", map[string]interface{}{"error": err.Error()})
	}
	admin.LastLoginAt = &now
	s.sessionResolver.Invalidate(admin.Id)

	token, err := s.issueToken(admin)
	if err != nil {
		return nil, err
	}

	logAdminAction(ctx, adminRepo, s.sysLogger, admin.Id, "login", "admin", admin.Id.String(), nil, ipAddress, userAgent)
	s.sysLogger.Info("Auth", "Admin logged in", map[string]interface{}{"admin_id": admin.Id, "email": admin.Email})

	return &dto.LoginResponse{
		Token: token,
		Admin: *AdminToResponse(admin),
	}, nil
}

func (s *authService) issueToken(admin *entity.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"role":     string(admin.Role),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) Logout(ctx context.Context, adminId uuid.UUID, ipAddress, userAgent string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logAdminAction(ctx, uow.AdminRepository(), s.sysLogger, adminId, "logout", "admin", adminId.String(), nil, ipAddress, userAgent)
	s.sessionResolver.Invalidate(adminId)
	return nil
}

func (s *authService) Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := s.sessionResolver.Resolve(ctx, adminId)
	if err != nil {
		return nil, err
	}
	return AdminToResponse(admin), nil
}
