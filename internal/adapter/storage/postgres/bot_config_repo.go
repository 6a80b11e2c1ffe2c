package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipbot/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BotConfigRepo implements ports.BotConfigRepository. The table holds a
// single operator-managed row.
type BotConfigRepo struct {
	pool Pool
}

// NewBotConfigRepo creates a new BotConfigRepo.
func NewBotConfigRepo(pool Pool) *BotConfigRepo {
	return &BotConfigRepo{pool: pool}
}

// Get reads the operational configuration row.
func (r *BotConfigRepo) Get(ctx context.Context) (*domain.BotConfig, error) {
	query := `SELECT tip_timeout_days, tips_enabled FROM bot_config LIMIT 1`

	cfg := &domain.BotConfig{}
	err := r.pool.QueryRow(ctx, query).Scan(&cfg.TipTimeoutDays, &cfg.TipsEnabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bot config: %w", err)
	}
	return cfg, nil
}
