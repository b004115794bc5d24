package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/db"
)

const statsCacheKey = "campushub:stats:dashboard"

// StatsService aggregates dashboard counters. Results are cached in redis
// for a short TTL; a cold or unreachable cache just means hitting postgres.
type StatsService struct {
	userRepo        *repositories.UserRepository
	placementRepo   *repositories.PlacementRepository
	applicationRepo *repositories.ApplicationRepository
	cache           *db.Redis
	cacheTTL        time.Duration
	logger          zerolog.Logger
}

// NewStatsService creates a new stats service instance
func NewStatsService(
	userRepo *repositories.UserRepository,
	placementRepo *repositories.PlacementRepository,
	applicationRepo *repositories.ApplicationRepository,
	cache *db.Redis,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *StatsService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &StatsService{
		userRepo:        userRepo,
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		logger:          logger,
	}
}

// Dashboard returns user, placement and application counters.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	placementsByActive, err := s.placementRepo.CountByActive(ctx)
	if err != nil {
		return nil, err
	}
	applicationsByStatus, err := s.applicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		UsersByRole:          usersByRole,
		PlacementsByActive:   placementsByActive,
		ApplicationsByStatus: applicationsByStatus,
	}
	s.toCache(ctx, stats)
	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) *models.DashboardStats {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug().Err(err).Msg("Stats cache read failed")
		}
		return nil
	}
	var stats models.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *StatsService) toCache(ctx context.Context, stats *models.DashboardStats) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, statsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug().Err(err).Msg("Stats cache write failed")
	}
}
