// Package handlers implements the read-side query handlers. Every
// cached handler follows the same shape: validate the request, derive a
// deterministic cache key, read through the cache, and on a miss fetch
// from the backing store, shape the response, and populate the cache.
package handlers

import (
	"context"
	"time"

	"clubgraph/application/ports"
	"clubgraph/application/queries"
	"clubgraph/domain/clubs"
	"clubgraph/infrastructure/cache"
	"clubgraph/pkg/common"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// ListClubsHandler serves the filtered, paginated club list
type ListClubsHandler struct {
	clubRepo ports.ClubRepository
	cache    *cache.Service
	ttl      time.Duration
	logger   *zap.Logger
}

// NewListClubsHandler creates a new club list handler
func NewListClubsHandler(clubRepo ports.ClubRepository, cacheSvc *cache.Service, ttl time.Duration, logger *zap.Logger) *ListClubsHandler {
	return &ListClubsHandler{
		clubRepo: clubRepo,
		cache:    cacheSvc,
		ttl:      ttl,
		logger:   logger,
	}
}

// Handle executes the club list query
func (h *ListClubsHandler) Handle(ctx context.Context, query queries.ListClubsQuery) (*queries.ListClubsResult, error) {
	query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := listClubsKey(query)

	var cached queries.ListClubsResult
	if h.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	filter := ports.ClubFilter{
		Search:        query.Search,
		League:        clubs.League(query.League),
		City:          query.City,
		Country:       query.Country,
		IsActive:      query.IsActive,
		IsVerified:    query.IsVerified,
		IsFeatured:    query.IsFeatured,
		FoundedAfter:  query.FoundedAfter,
		FoundedBefore: query.FoundedBefore,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
		Offset:        (query.Page - 1) * query.PageSize,
		Limit:         query.PageSize,
	}

	items, total, err := h.clubRepo.FindPage(ctx, filter)
	if err != nil {
		h.logger.Error("Failed to fetch clubs page",
			zap.String("cacheKey", key),
			zap.Error(err),
		)
		return nil, pkgerrors.Wrap(err, "failed to list clubs")
	}

	result := shapeClubList(items, total, query.Page, query.PageSize)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// A failed cache write is logged inside the service; the response is
	// already computed, so the request still succeeds.
	_ = h.cache.SetJSON(ctx, key, result, h.ttl)

	return result, nil
}

func shapeClubList(items []*clubs.Club, total, page, pageSize int) *queries.ListClubsResult {
	views := make([]queries.ClubView, 0, len(items))
	for _, club := range items {
		views = append(views, queries.NewClubView(club))
	}

	totalPages := common.CalculateTotalPages(total, pageSize)
	return &queries.ListClubsResult{
		Items:       views,
		TotalCount:  total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
