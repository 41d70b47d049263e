package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"bloom-be/internal/config"
	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/pkg/mailer"
	"bloom-be/internal/repository/specification"
	"bloom-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)

	// IssueTokens mints a token pair for an already-authenticated user.
	// The OAuth flow uses this after provider verification.
	IssueTokens(ctx context.Context, user *entity.User, ipAddress, userAgent string) (*dto.TokenPairResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	cfg          *config.Config
	log          logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, cfg *config.Config, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		cfg:          cfg,
		log:          log,
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *authService) signAccessToken(user *entity.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.AccessTokenTTLMin) * time.Minute)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *authService) issueTokenPair(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, ipAddress, userAgent string) (*dto.TokenPairResponse, error) {
	access, expiresAt, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshRaw, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	refresh := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(refreshRaw),
		ExpiresAt: time.Now().AddDate(0, 0, s.cfg.Auth.RefreshTokenTTLDay),
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateRefreshToken(ctx, refresh); err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refreshRaw,
		ExpiresAt:    expiresAt,
	}, nil
}

func userToResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Locale:    user.Locale,
		CreatedAt: user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	locale := req.Locale
	if locale == "" {
		locale = s.cfg.App.DefaultLocale
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleMember,
		Status:       entity.UserStatusActive,
		Locale:       locale,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// New members start with an empty profile in the incomplete state.
	profile := &entity.Profile{
		Id:        uuid.New(),
		UserId:    user.Id,
		Status:    entity.ProfileStatusIncomplete,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokenPair(ctx, uow, user, "", "")
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("AuthService", "User registered", map[string]interface{}{"user_id": user.Id.String()})

	// Best effort; registration never fails over a mail problem.
	go func(email, name string) {
		if err := s.emailService.SendWelcome(email, name); err != nil {
			s.log.Warn("AuthService", "Failed to send welcome email", map[string]interface{}{"error": err.Error()})
		}
	}(user.Email, user.FullName)

	return &dto.AuthResponse{User: userToResponse(user), Tokens: *tokens}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("account blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	tokens, err := s.issueTokenPair(ctx, uow, user, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: userToResponse(user), Tokens: *tokens}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken, ipAddress, userAgent string) (*dto.TokenPairResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(refreshToken)})
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, errors.New("invalid refresh token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.UserStatusBlocked {
		return nil, errors.New("invalid refresh token")
	}

	// Rotate: revoke the presented token, issue a fresh pair.
	if err := uow.UserRepository().RevokeRefreshToken(ctx, stored.TokenHash); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, uow, user, ipAddress, userAgent)
}

func (s *authService) IssueTokens(ctx context.Context, user *entity.User, ipAddress, userAgent string) (*dto.TokenPairResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.issueTokenPair(ctx, uow, user, ipAddress, userAgent)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	resp := userToResponse(user)
	return &resp, nil
}
