package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bloom-be/internal/config"
	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/specification"
	"bloom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory  unitofwork.RepositoryFactory
	authService IAuthService
	googleConf  *oauth2.Config
	cfg         *config.Config
	log         logger.ILogger
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, authService IAuthService, cfg *config.Config, log logger.ILogger) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.Auth.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:  uowFactory,
		authService: authService,
		googleConf:  conf,
		cfg:         cfg,
		log:         log,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %v", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}
	if !googleUser.VerifiedEmail {
		return nil, errors.New("google account email is not verified")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Existing provider link means a returning user.
	link, err := uow.UserRepository().FindUserProvider(ctx, "google", googleUser.ID)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	if link != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: link.UserId})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, errors.New("linked user not found")
		}
	} else {
		// Match by email, or create a fresh member with an empty profile.
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
		if err != nil {
			return nil, err
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if user == nil {
			user = &entity.User{
				Id:        uuid.New(),
				Email:     googleUser.Email,
				FullName:  googleUser.Name,
				Role:      entity.UserRoleMember,
				Status:    entity.UserStatusActive,
				Locale:    s.cfg.App.DefaultLocale,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := uow.UserRepository().Create(ctx, user); err != nil {
				return nil, err
			}

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
		}

		if err := uow.UserRepository().SaveUserProvider(ctx, &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   "google",
			ProviderUserId: googleUser.ID,
			AvatarURL:      googleUser.Picture,
			CreatedAt:      time.Now(),
		}); err != nil {
			return nil, err
		}

		if err := uow.Commit(); err != nil {
			return nil, err
		}
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("account blocked")
	}

	s.log.Info("OAuthService", "Google sign-in", map[string]interface{}{"user_id": user.Id.String()})

	tokens, err := s.authService.IssueTokens(ctx, user, "", "oauth-google")
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: userToResponse(user), Tokens: *tokens}, nil
}
