package service

import (
	"context"
	"fmt"
	"time"

	"tipbot/internal/core/domain"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"

	"github.com/rs/zerolog"
)

const configCacheTTL = time.Minute

// ConfigService implements ports.ConfigProvider. It reads the
// operational config document through a short-lived cache so every tip
// invocation gets a consistent snapshot without hammering the store.
type ConfigService struct {
	repo  ports.BotConfigRepository
	cache ports.ConfigCache
	log   zerolog.Logger
}

// NewConfigService creates a new ConfigService.
func NewConfigService(repo ports.BotConfigRepository, cache ports.ConfigCache, log zerolog.Logger) *ConfigService {
	return &ConfigService{repo: repo, cache: cache, log: log}
}

// Snapshot returns the current operational configuration.
func (s *ConfigService) Snapshot(ctx context.Context) (*domain.BotConfig, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("config cache read failed, falling through to store")
		}
		if cached != nil {
			return cached, nil
		}
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("load operational config: %w", err))
	}
	if cfg == nil {
		return nil, apperror.NotFound("operational config")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cfg, configCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache operational config")
		}
	}

	return cfg, nil
}
