package handlers

import (
	"context"

	"clubgraph/application/commands"
	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// CreateClubHandler persists a new club
type CreateClubHandler struct {
	clubRepo  ports.ClubRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCreateClubHandler creates a new club creation handler
func NewCreateClubHandler(
	clubRepo ports.ClubRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *CreateClubHandler {
	return &CreateClubHandler{
		clubRepo:  clubRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the create club command
func (h *CreateClubHandler) Handle(ctx context.Context, cmd commands.CreateClubCommand) error {
	club, err := clubs.NewClub(cmd.Name, clubs.League(cmd.League), cmd.City, cmd.Country, cmd.FoundedYear)
	if err != nil {
		return err
	}

	club.ID = cmd.ClubID
	club.ShortName = cmd.ShortName
	club.Stadium = cmd.Stadium
	club.CrestURL = cmd.CrestURL
	club.IsVerified = cmd.IsVerified
	club.IsFeatured = cmd.IsFeatured
	if cmd.IsActive != nil {
		club.IsActive = *cmd.IsActive
	}

	if err := h.clubRepo.Save(ctx, club); err != nil {
		return pkgerrors.Wrap(err, "failed to create club")
	}

	h.publishMutation(ctx, "club", club.ID, "created")
	invalidateNamespaces(ctx, h.cache, h.logger, clubMutationNamespaces)

	h.logger.Info("Club created",
		zap.String("clubID", club.ID),
		zap.String("name", club.Name),
	)
	return nil
}

func (h *CreateClubHandler) publishMutation(ctx context.Context, entityType, entityID, action string) {
	if err := h.publisher.PublishMutation(ctx, entityType, entityID, action); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("entityType", entityType),
			zap.String("entityID", entityID),
			zap.Error(err),
		)
	}
}

// UpdateClubHandler applies a partial club update
type UpdateClubHandler struct {
	clubRepo  ports.ClubRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdateClubHandler creates a new club update handler
func NewUpdateClubHandler(
	clubRepo ports.ClubRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *UpdateClubHandler {
	return &UpdateClubHandler{
		clubRepo:  clubRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the update club command
func (h *UpdateClubHandler) Handle(ctx context.Context, cmd commands.UpdateClubCommand) error {
	club, err := h.clubRepo.FindByID(ctx, cmd.ClubID)
	if err != nil {
		return err
	}

	if cmd.Name != nil {
		if err := club.Rename(*cmd.Name); err != nil {
			return err
		}
	}
	if cmd.ShortName != nil {
		club.ShortName = *cmd.ShortName
	}
	if cmd.League != nil {
		league := clubs.League(*cmd.League)
		if !league.IsValid() {
			return pkgerrors.NewValidationError("unknown league: " + *cmd.League)
		}
		club.League = league
	}
	if cmd.City != nil {
		club.City = *cmd.City
	}
	if cmd.Country != nil {
		club.Country = *cmd.Country
	}
	if cmd.FoundedYear != nil {
		club.FoundedYear = *cmd.FoundedYear
	}
	if cmd.Stadium != nil {
		club.Stadium = *cmd.Stadium
	}
	if cmd.CrestURL != nil {
		club.CrestURL = *cmd.CrestURL
	}
	if cmd.IsActive != nil {
		club.IsActive = *cmd.IsActive
	}
	if cmd.IsVerified != nil {
		club.IsVerified = *cmd.IsVerified
	}
	if cmd.IsFeatured != nil {
		club.IsFeatured = *cmd.IsFeatured
	}
	club.Touch()

	if err := h.clubRepo.Save(ctx, club); err != nil {
		return pkgerrors.Wrap(err, "failed to update club")
	}

	if err := h.publisher.PublishMutation(ctx, "club", club.ID, "updated"); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("clubID", club.ID),
			zap.Error(err),
		)
	}
	invalidateNamespaces(ctx, h.cache, h.logger, clubMutationNamespaces)

	return nil
}

// DeleteClubHandler removes a club and its connections
type DeleteClubHandler struct {
	clubRepo  ports.ClubRepository
	connRepo  ports.ConnectionRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeleteClubHandler creates a new club deletion handler
func NewDeleteClubHandler(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DeleteClubHandler {
	return &DeleteClubHandler{
		clubRepo:  clubRepo,
		connRepo:  connRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the delete club command. The club's connections are
// removed first so the graph never references a missing club.
func (h *DeleteClubHandler) Handle(ctx context.Context, cmd commands.DeleteClubCommand) error {
	if _, err := h.clubRepo.FindByID(ctx, cmd.ClubID); err != nil {
		return err
	}

	conns, err := h.connRepo.FindForClub(ctx, cmd.ClubID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load club connections")
	}
	for _, conn := range conns {
		if err := h.connRepo.Delete(ctx, conn.ID); err != nil {
			return pkgerrors.Wrap(err, "failed to delete club connection")
		}
	}

	if err := h.clubRepo.Delete(ctx, cmd.ClubID); err != nil {
		return pkgerrors.Wrap(err, "failed to delete club")
	}

	if err := h.publisher.PublishMutation(ctx, "club", cmd.ClubID, "deleted"); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("clubID", cmd.ClubID),
			zap.Error(err),
		)
	}
	invalidateNamespaces(ctx, h.cache, h.logger, clubMutationNamespaces)

	h.logger.Info("Club deleted",
		zap.String("clubID", cmd.ClubID),
		zap.Int("connectionsRemoved", len(conns)),
	)
	return nil
}
