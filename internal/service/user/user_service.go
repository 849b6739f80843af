package user

import (
	"context"

	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/domain/dto"
	"github.com/openair/aqimon/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return svc.store.GetUserByUsername(ctx, username)
}

func (svc *Service) GetSettings(ctx context.Context, username string) (*domain.Settings, error) {
	return svc.store.GetSettings(ctx, username)
}

func (svc *Service) SaveSettings(ctx context.Context, username string, request *dto.SettingsRequest) (*domain.Settings, error) {
	settings := &domain.Settings{
		Username:       username,
		EmailNotify:    request.EmailNotify,
		SMSNotify:      request.SMSNotify,
		AlertThreshold: request.AlertThreshold,
		Theme:          request.Theme,
		Language:       request.Language,
		ChartType:      request.ChartType,
		ShowGrid:       request.ShowGrid,
	}

	defaults := domain.DefaultSettings(username)
	if settings.Theme == "" {
		settings.Theme = defaults.Theme
	}
	if settings.Language == "" {
		settings.Language = defaults.Language
	}
	if settings.ChartType == "" {
		settings.ChartType = defaults.ChartType
	}

	if err := svc.store.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
