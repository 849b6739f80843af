package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/pkg/constants"
)

var userColumns = []string{"id", "username", "email", "phone", "password_hash", "password_salt", "created_at"}

// CreateUser inserts the user row and its default settings row. The
// username is the natural key; a concurrent signup loses the race at the
// unique constraint, not at the service pre-check, so the violation is
// mapped here.
func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:6]...).
		Values(user.Username, user.Email, user.Phone, user.PasswordHash, user.PasswordSalt).
		Suffix("RETURNING id, created_at")

	if err := s.pool.Getx(ctx, user, query); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return constants.ErrUsernameTaken
		}
		return wrapErr(err)
	}

	defaults := domain.DefaultSettings(user.Username)
	settingsQuery := builder().Insert(tableSettings).
		Columns(settingsColumns...).
		Values(defaults.Username, defaults.EmailNotify, defaults.SMSNotify, defaults.AlertThreshold,
			defaults.Theme, defaults.Language, defaults.ChartType, defaults.ShowGrid).
		Suffix("on conflict (username) do nothing")

	if _, err := s.pool.Execx(ctx, settingsQuery); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"username": username})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
