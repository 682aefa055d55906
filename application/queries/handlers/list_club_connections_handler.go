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

// ListClubConnectionsHandler serves the connections touching one club
type ListClubConnectionsHandler struct {
	clubRepo ports.ClubRepository
	connRepo ports.ConnectionRepository
	cache    *cache.Service
	ttl      time.Duration
	logger   *zap.Logger
}

// NewListClubConnectionsHandler creates a new connection list handler
func NewListClubConnectionsHandler(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheSvc *cache.Service,
	ttl time.Duration,
	logger *zap.Logger,
) *ListClubConnectionsHandler {
	return &ListClubConnectionsHandler{
		clubRepo: clubRepo,
		connRepo: connRepo,
		cache:    cacheSvc,
		ttl:      ttl,
		logger:   logger,
	}
}

// Handle executes the connection list query
func (h *ListClubConnectionsHandler) Handle(ctx context.Context, query queries.ListClubConnectionsQuery) (*queries.ListConnectionsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := listClubConnectionsKey(query)

	var cached queries.ListConnectionsResult
	if h.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	// Distinguish "club has no connections" from "club does not exist".
	if _, err := h.clubRepo.FindByID(ctx, query.ClubID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(err, "failed to load club")
	}

	filter := ports.ConnectionFilter{
		ClubID: query.ClubID,
		Type:   clubs.ConnectionType(query.Type),
		Offset: (query.Page - 1) * query.PageSize,
		Limit:  query.PageSize,
	}

	items, total, err := h.connRepo.FindPage(ctx, filter)
	if err != nil {
		h.logger.Error("Failed to fetch connections page",
			zap.String("clubID", query.ClubID),
			zap.String("cacheKey", key),
			zap.Error(err),
		)
		return nil, pkgerrors.Wrap(err, "failed to list connections")
	}

	views := make([]queries.ConnectionView, 0, len(items))
	for _, conn := range items {
		views = append(views, queries.NewConnectionView(conn))
	}

	totalPages := common.CalculateTotalPages(total, query.PageSize)
	result := &queries.ListConnectionsResult{
		Items:       views,
		TotalCount:  total,
		Page:        query.Page,
		PageSize:    query.PageSize,
		TotalPages:  totalPages,
		HasNextPage: query.Page < totalPages,
		HasPrevPage: query.Page > 1,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = h.cache.SetJSON(ctx, key, result, h.ttl)

	return result, nil
}
