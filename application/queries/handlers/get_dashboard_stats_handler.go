package handlers

import (
	"context"
	"time"

	"clubgraph/application/ports"
	"clubgraph/application/queries"
	"clubgraph/infrastructure/cache"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// GetDashboardStatsHandler serves the admin dashboard aggregates
type GetDashboardStatsHandler struct {
	clubRepo ports.ClubRepository
	connRepo ports.ConnectionRepository
	cache    *cache.Service
	ttl      time.Duration
	logger   *zap.Logger
}

// NewGetDashboardStatsHandler creates a new dashboard stats handler
func NewGetDashboardStatsHandler(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheSvc *cache.Service,
	ttl time.Duration,
	logger *zap.Logger,
) *GetDashboardStatsHandler {
	return &GetDashboardStatsHandler{
		clubRepo: clubRepo,
		connRepo: connRepo,
		cache:    cacheSvc,
		ttl:      ttl,
		logger:   logger,
	}
}

// Handle executes the dashboard stats query
func (h *GetDashboardStatsHandler) Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (*queries.DashboardStatsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := dashboardStatsKey()

	var cached queries.DashboardStatsResult
	if h.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	allClubs, err := h.clubRepo.FindAll(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch clubs for dashboard stats", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to build dashboard stats")
	}

	allConns, err := h.connRepo.FindAll(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch connections for dashboard stats", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to build dashboard stats")
	}

	result := &queries.DashboardStatsResult{
		TotalClubs:        len(allClubs),
		TotalConnections:  len(allConns),
		ClubsByLeague:     make(map[string]int),
		ConnectionsByType: make(map[string]int),
	}

	for _, club := range allClubs {
		result.ClubsByLeague[string(club.League)]++
		if club.IsActive {
			result.ActiveClubs++
		}
		if club.IsVerified {
			result.VerifiedClubs++
		}
		if club.IsFeatured {
			result.FeaturedClubs++
		}
	}

	strengthSum := 0
	for _, conn := range allConns {
		result.ConnectionsByType[string(conn.Type)]++
		strengthSum += conn.Strength
		if conn.IsVerified {
			result.VerifiedConnections++
		}
	}
	if len(allConns) > 0 {
		result.AverageStrength = float64(strengthSum) / float64(len(allConns))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = h.cache.SetJSON(ctx, key, result, h.ttl)

	return result, nil
}
