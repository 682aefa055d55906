package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clubgraph/application/commands"
	"clubgraph/application/commands/bus"
	"clubgraph/application/queries"
	querybus "clubgraph/application/queries/bus"
	"clubgraph/pkg/common"
)

const maxBodyBytes = 1 << 20

// ClubHandler handles club CRUD and listing requests.
type ClubHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewClubHandler creates a new club handler
func NewClubHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *ClubHandler {
	return &ClubHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateClubRequest is the request body for creating a club.
type CreateClubRequest struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	League      string `json:"league"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Stadium     string `json:"stadium,omitempty"`
	CrestURL    string `json:"crest_url,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsVerified  bool   `json:"is_verified"`
	IsFeatured  bool   `json:"is_featured"`
}

// UpdateClubRequest is the request body for updating a club. Absent
// fields leave the stored value unchanged.
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	ShortName   *string `json:"short_name,omitempty"`
	League      *string `json:"league,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Stadium     *string `json:"stadium,omitempty"`
	CrestURL    *string `json:"crest_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
}

// ListClubs handles GET /clubs
func (h *ClubHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pagination := common.ExtractPaginationParams(r)

	query := queries.ListClubsQuery{
		Search:        q.Get("search"),
		League:        q.Get("league"),
		City:          q.Get("city"),
		Country:       q.Get("country"),
		IsActive:      queryBoolPtr(r, "is_active"),
		IsVerified:    queryBoolPtr(r, "is_verified"),
		IsFeatured:    queryBoolPtr(r, "is_featured"),
		FoundedAfter:  queryInt(r, "founded_after"),
		FoundedBefore: queryInt(r, "founded_before"),
		SortBy:        q.Get("sort_by"),
		SortOrder:     q.Get("sort_order"),
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to list clubs", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetClub handles GET /clubs/{clubID}
func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetClubQuery{ClubID: clubID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// CreateClub handles POST /clubs
func (h *ClubHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req CreateClubRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	clubID := uuid.New().String()

	cmd := commands.CreateClubCommand{
		ClubID:      clubID,
		Name:        req.Name,
		ShortName:   req.ShortName,
		League:      req.League,
		City:        req.City,
		Country:     req.Country,
		FoundedYear: req.FoundedYear,
		Stadium:     req.Stadium,
		CrestURL:    req.CrestURL,
		IsActive:    req.IsActive,
		IsVerified:  req.IsVerified,
		IsFeatured:  req.IsFeatured,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create club", zap.String("clubID", clubID), zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"id":      clubID,
		"message": "Club created successfully",
	})
}

// UpdateClub handles PUT /clubs/{clubID}
func (h *ClubHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")

	var req UpdateClubRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateClubCommand{
		ClubID:      clubID,
		Name:        req.Name,
		ShortName:   req.ShortName,
		League:      req.League,
		City:        req.City,
		Country:     req.Country,
		FoundedYear: req.FoundedYear,
		Stadium:     req.Stadium,
		CrestURL:    req.CrestURL,
		IsActive:    req.IsActive,
		IsVerified:  req.IsVerified,
		IsFeatured:  req.IsFeatured,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update club", zap.String("clubID", clubID), zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"id":      clubID,
		"message": "Club updated successfully",
	})
}

// DeleteClub handles DELETE /clubs/{clubID}
func (h *ClubHandler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")

	if err := h.commandBus.Send(r.Context(), commands.DeleteClubCommand{ClubID: clubID}); err != nil {
		h.logger.Error("Failed to delete club", zap.String("clubID", clubID), zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"id":      clubID,
		"message": "Club deleted successfully",
	})
}

// ListClubConnections handles GET /clubs/{clubID}/connections
func (h *ClubHandler) ListClubConnections(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	pagination := common.ExtractPaginationParams(r)

	query := queries.ListClubConnectionsQuery{
		ClubID:   clubID,
		Type:     r.URL.Query().Get("type"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
