package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saasboard/internal/common"
	"saasboard/internal/logger"
	"saasboard/internal/metrics"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errInvalidToken = errors.New("invalid token")

// AuthService handles credential checks and session tokens
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*models.LoginResponse, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
	CurrentUser(ctx context.Context, actor common.Identity) (*models.CurrentUser, error)
}

// LoginRequest represents the login payload
type LoginRequest struct {
	TenantSubdomain string `json:"tenantSubdomain" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	UserID   uuid.UUID `json:"userId"`
	TenantID uuid.UUID `json:"tenantId"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) Identity() common.Identity {
	return common.Identity{UserID: c.UserID, TenantID: c.TenantID, Role: c.Role}
}

// TokenConfig controls how session tokens are signed
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type authService struct {
	store    repositories.Store
	throttle LoginThrottle
	metrics  *metrics.Metrics

	jwtSecret []byte
	issuer    string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService creates a new authentication service. throttle may be nil.
func NewAuthService(store repositories.Store, cfg TokenConfig, throttle LoginThrottle, m *metrics.Metrics) AuthService {
	if throttle == nil {
		throttle = noopLoginThrottle{}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &authService{
		store:     store,
		throttle:  throttle,
		metrics:   m,
		jwtSecret: []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		tokenTTL:  cfg.TTL,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*models.LoginResponse, error) {
	req.TenantSubdomain = strings.ToLower(strings.TrimSpace(req.TenantSubdomain))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	if s.throttle.Blocked(ctx, req.TenantSubdomain, req.Email) {
		s.metrics.RecordLogin(metrics.LoginThrottled)
		return nil, common.NewTooManyRequests("Too many failed login attempts, try again later")
	}

	tenant, err := s.store.Tenants().GetBySubdomain(ctx, req.TenantSubdomain)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.metrics.RecordLogin(metrics.LoginTenantNotFound)
			return nil, common.NewNotFound("Tenant")
		}
		return nil, common.NewInternal("Login failed", err)
	}
	if !tenant.IsActive() {
		s.metrics.RecordLogin(metrics.LoginTenantInactive)
		return nil, common.NewForbidden("Tenant is not active")
	}

	user, err := s.store.Users().GetByEmail(ctx, tenant.ID, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, s.rejectCredentials(ctx, req)
		}
		return nil, common.NewInternal("Login failed", err)
	}
	if !user.IsActive {
		s.metrics.RecordLogin(metrics.LoginUserInactive)
		return nil, common.NewForbidden("User account is inactive")
	}

	ok, err := checkPassword(user.PasswordHash, req.Password)
	if err != nil {
		logger.FromContext(ctx).Error("stored password hash is unreadable",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, s.rejectCredentials(ctx, req)
	}
	if !ok {
		return nil, s.rejectCredentials(ctx, req)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, common.NewInternal("Login failed", err)
	}

	s.throttle.Reset(ctx, req.TenantSubdomain, req.Email)
	s.metrics.RecordLogin(metrics.LoginSuccess)
	logger.FromContext(ctx).Info("user logged in",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()),
	)

	return &models.LoginResponse{
		User:      user.Public(),
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *authService) rejectCredentials(ctx context.Context, req LoginRequest) error {
	s.throttle.RecordFailure(ctx, req.TenantSubdomain, req.Email)
	s.metrics.RecordLogin(metrics.LoginInvalid)
	return common.NewUnauthorized("Invalid credentials")
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := TokenClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm, issuer and expiry.
func (s *authService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errInvalidToken
	}
	return claims, nil
}

func (s *authService) CurrentUser(ctx context.Context, actor common.Identity) (*models.CurrentUser, error) {
	user, err := s.store.Users().GetByID(ctx, actor.TenantID, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFound("User")
		}
		return nil, common.NewInternal("Failed to load user", err)
	}

	tenant, err := s.store.Tenants().GetByID(ctx, actor.TenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFound("Tenant")
		}
		return nil, common.NewInternal("Failed to load tenant", err)
	}

	return &models.CurrentUser{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		IsActive: user.IsActive,
		Tenant: models.TenantSummary{
			ID:               tenant.ID,
			Name:             tenant.Name,
			Subdomain:        tenant.Subdomain,
			SubscriptionPlan: tenant.SubscriptionPlan,
			MaxUsers:         tenant.MaxUsers,
			MaxProjects:      tenant.MaxProjects,
		},
	}, nil
}
