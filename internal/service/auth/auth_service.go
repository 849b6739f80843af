package auth

import (
	"context"
	"errors"

	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/domain/dto"
	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/openair/aqimon/internal/pkg/store"
	"github.com/openair/aqimon/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

type LoginResult struct {
	User      *domain.User
	AuthToken string
}

// SignupUser creates an account with default settings. Duplicate
// usernames come back as a conflict coded error, not a failure.
func (svc *Service) SignupUser(ctx context.Context, request *dto.SignupRequest) (*LoginResult, error) {
	if _, err := svc.store.GetUserByUsername(ctx, request.Username); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrUsernameTaken
		}
		return nil, err
	}

	hash, salt := utils.HashPassword(request.Password)
	user := &domain.User{
		Username:     request.Username,
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Username: user.Username})
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AuthToken: authToken}, nil
}

// LoginUser verifies credentials and issues an auth token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (svc *Service) LoginUser(ctx context.Context, request *dto.LoginRequest) (*LoginResult, error) {
	user, err := svc.store.GetUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(request.Password, user.PasswordSalt, user.PasswordHash) {
		return nil, constants.ErrInvalidCredentials
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Username: user.Username})
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AuthToken: authToken}, nil
}
