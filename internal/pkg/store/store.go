package store

import (
	"context"

	"github.com/openair/aqimon/internal/domain"
	"github.com/openair/aqimon/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	GetSettings(ctx context.Context, username string) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings *domain.Settings) error

	AppendHistory(ctx context.Context, record *domain.HistoryRecord) error
	ListHistory(ctx context.Context, opts ListHistoryOpts) ([]*domain.HistoryRecord, error)
	GetHistoryStats(ctx context.Context, username string) (*domain.HistoryStats, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
