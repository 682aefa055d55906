package handlers

import (
	"context"

	"clubgraph/application/ports"
	"clubgraph/application/queries"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// GetClubHandler serves a single club by ID
type GetClubHandler struct {
	clubRepo ports.ClubRepository
	logger   *zap.Logger
}

// NewGetClubHandler creates a new club detail handler
func NewGetClubHandler(clubRepo ports.ClubRepository, logger *zap.Logger) *GetClubHandler {
	return &GetClubHandler{clubRepo: clubRepo, logger: logger}
}

// Handle executes the club detail query
func (h *GetClubHandler) Handle(ctx context.Context, query queries.GetClubQuery) (*queries.ClubView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	club, err := h.clubRepo.FindByID(ctx, query.ClubID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		h.logger.Error("Failed to fetch club",
			zap.String("clubID", query.ClubID),
			zap.Error(err),
		)
		return nil, pkgerrors.Wrap(err, "failed to get club")
	}

	view := queries.NewClubView(club)
	return &view, nil
}
