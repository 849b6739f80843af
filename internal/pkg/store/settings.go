package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/pkg/constants"
)

var settingsColumns = []string{"username", "email_notify", "sms_notify", "alert_threshold", "theme", "language", "chart_type", "show_grid"}

func (s *store) GetSettings(ctx context.Context, username string) (*domain.Settings, error) {
	query := builder().Select(settingsColumns...).
		From(tableSettings).
		Where(sq.Eq{"username": username})

	var selected domain.Settings
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	query := builder().Update(tableSettings).
		Set("email_notify", settings.EmailNotify).
		Set("sms_notify", settings.SMSNotify).
		Set("alert_threshold", settings.AlertThreshold).
		Set("theme", settings.Theme).
		Set("language", settings.Language).
		Set("chart_type", settings.ChartType).
		Set("show_grid", settings.ShowGrid).
		Where(sq.Eq{"username": settings.Username})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		// No settings row means the user never signed up.
		return constants.ErrDBNotFound
	}

	return nil
}
