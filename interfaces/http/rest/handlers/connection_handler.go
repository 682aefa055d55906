package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clubgraph/application/commands"
	"clubgraph/application/commands/bus"
	"clubgraph/pkg/common"
)

// ConnectionHandler handles connection mutation requests.
type ConnectionHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(commandBus *bus.CommandBus, logger *zap.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// CreateConnectionRequest is the request body for creating a connection.
type CreateConnectionRequest struct {
	SourceClubID     string  `json:"source_club_id"`
	TargetClubID     string  `json:"target_club_id"`
	Type             string  `json:"type"`
	Strength         int     `json:"strength"`
	ReliabilityScore float64 `json:"reliability_score"`
	IsVerified       bool    `json:"is_verified"`
	Notes            string  `json:"notes,omitempty"`
}

// UpdateConnectionRequest is the request body for updating a connection.
type UpdateConnectionRequest struct {
	Type             *string  `json:"type,omitempty"`
	Strength         *int     `json:"strength,omitempty"`
	ReliabilityScore *float64 `json:"reliability_score,omitempty"`
	IsVerified       *bool    `json:"is_verified,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// CreateConnection handles POST /connections
func (h *ConnectionHandler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req CreateConnectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	connectionID := uuid.New().String()

	cmd := commands.CreateConnectionCommand{
		ConnectionID:     connectionID,
		SourceClubID:     req.SourceClubID,
		TargetClubID:     req.TargetClubID,
		Type:             req.Type,
		Strength:         req.Strength,
		ReliabilityScore: req.ReliabilityScore,
		IsVerified:       req.IsVerified,
		Notes:            req.Notes,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create connection",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"id":      connectionID,
		"message": "Connection created successfully",
	})
}

// UpdateConnection handles PUT /connections/{connectionID}
func (h *ConnectionHandler) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	connectionID := chi.URLParam(r, "connectionID")

	var req UpdateConnectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateConnectionCommand{
		ConnectionID:     connectionID,
		Type:             req.Type,
		Strength:         req.Strength,
		ReliabilityScore: req.ReliabilityScore,
		IsVerified:       req.IsVerified,
		Notes:            req.Notes,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update connection",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"id":      connectionID,
		"message": "Connection updated successfully",
	})
}

// DeleteConnection handles DELETE /connections/{connectionID}
func (h *ConnectionHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	connectionID := chi.URLParam(r, "connectionID")

	cmd := commands.DeleteConnectionCommand{ConnectionID: connectionID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete connection",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"id":      connectionID,
		"message": "Connection deleted successfully",
	})
}
