package handlers

import (
	"context"

	"clubgraph/application/commands"
	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// CreateConnectionHandler persists a new club connection
type CreateConnectionHandler struct {
	clubRepo  ports.ClubRepository
	connRepo  ports.ConnectionRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCreateConnectionHandler creates a new connection creation handler
func NewCreateConnectionHandler(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *CreateConnectionHandler {
	return &CreateConnectionHandler{
		clubRepo:  clubRepo,
		connRepo:  connRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the create connection command. Both endpoints must
// exist; a dangling reference is reported as not-found.
func (h *CreateConnectionHandler) Handle(ctx context.Context, cmd commands.CreateConnectionCommand) error {
	if _, err := h.clubRepo.FindByID(ctx, cmd.SourceClubID); err != nil {
		return err
	}
	if _, err := h.clubRepo.FindByID(ctx, cmd.TargetClubID); err != nil {
		return err
	}

	conn, err := clubs.NewConnection(
		cmd.SourceClubID,
		cmd.TargetClubID,
		clubs.ConnectionType(cmd.Type),
		cmd.Strength,
		cmd.ReliabilityScore,
	)
	if err != nil {
		return err
	}
	conn.ID = cmd.ConnectionID
	conn.IsVerified = cmd.IsVerified
	conn.Notes = cmd.Notes

	if err := h.connRepo.Save(ctx, conn); err != nil {
		return pkgerrors.Wrap(err, "failed to create connection")
	}

	if err := h.publisher.PublishMutation(ctx, "connection", conn.ID, "created"); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("connectionID", conn.ID),
			zap.Error(err),
		)
	}
	invalidateNamespaces(ctx, h.cache, h.logger, connectionMutationNamespaces)

	h.logger.Info("Connection created",
		zap.String("connectionID", conn.ID),
		zap.String("sourceClubID", conn.SourceClubID),
		zap.String("targetClubID", conn.TargetClubID),
		zap.String("type", string(conn.Type)),
	)
	return nil
}

// UpdateConnectionHandler applies a partial connection update
type UpdateConnectionHandler struct {
	connRepo  ports.ConnectionRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewUpdateConnectionHandler creates a new connection update handler
func NewUpdateConnectionHandler(
	connRepo ports.ConnectionRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *UpdateConnectionHandler {
	return &UpdateConnectionHandler{
		connRepo:  connRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the update connection command
func (h *UpdateConnectionHandler) Handle(ctx context.Context, cmd commands.UpdateConnectionCommand) error {
	conn, err := h.connRepo.FindByID(ctx, cmd.ConnectionID)
	if err != nil {
		return err
	}

	if cmd.Type != nil {
		connType := clubs.ConnectionType(*cmd.Type)
		if !connType.IsValid() {
			return pkgerrors.NewValidationError("unknown connection type: " + *cmd.Type)
		}
		conn.Type = connType
	}
	if cmd.Strength != nil {
		conn.Strength = *cmd.Strength
	}
	if cmd.ReliabilityScore != nil {
		conn.ReliabilityScore = *cmd.ReliabilityScore
	}
	if cmd.IsVerified != nil {
		conn.IsVerified = *cmd.IsVerified
	}
	if cmd.Notes != nil {
		conn.Notes = *cmd.Notes
	}
	conn.Touch()

	if err := h.connRepo.Save(ctx, conn); err != nil {
		return pkgerrors.Wrap(err, "failed to update connection")
	}

	if err := h.publisher.PublishMutation(ctx, "connection", conn.ID, "updated"); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("connectionID", conn.ID),
			zap.Error(err),
		)
	}
	invalidateNamespaces(ctx, h.cache, h.logger, connectionMutationNamespaces)

	return nil
}

// DeleteConnectionHandler removes a connection
type DeleteConnectionHandler struct {
	connRepo  ports.ConnectionRepository
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeleteConnectionHandler creates a new connection deletion handler
func NewDeleteConnectionHandler(
	connRepo ports.ConnectionRepository,
	cacheInv ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DeleteConnectionHandler {
	return &DeleteConnectionHandler{
		connRepo:  connRepo,
		cache:     cacheInv,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the delete connection command
func (h *DeleteConnectionHandler) Handle(ctx context.Context, cmd commands.DeleteConnectionCommand) error {
	if _, err := h.connRepo.FindByID(ctx, cmd.ConnectionID); err != nil {
		return err
	}

	if err := h.connRepo.Delete(ctx, cmd.ConnectionID); err != nil {
		return pkgerrors.Wrap(err, "failed to delete connection")
	}

	if err := h.publisher.PublishMutation(ctx, "connection", cmd.ConnectionID, "deleted"); err != nil {
		h.logger.Error("Failed to publish mutation event",
			zap.String("connectionID", cmd.ConnectionID),
			zap.Error(err),
		)
	}
	invalidateNamespaces(ctx, h.cache, h.logger, connectionMutationNamespaces)

	return nil
}
