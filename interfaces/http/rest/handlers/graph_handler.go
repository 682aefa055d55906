package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"clubgraph/application/queries"
	querybus "clubgraph/application/queries/bus"
	"clubgraph/pkg/common"
)

// GraphHandler serves the visualization and dashboard read models.
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetGraphData handles GET /graph-data
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := queries.GetGraphDataQuery{
		League:          q.Get("league"),
		ConnectionType:  q.Get("connection_type"),
		MinStrength:     queryInt(r, "min_strength"),
		IncludeIsolated: queryBool(r, "include_isolated"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to build graph data", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetDashboardStats handles GET /dashboard-stats
func (h *GraphHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetDashboardStatsQuery{})
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
