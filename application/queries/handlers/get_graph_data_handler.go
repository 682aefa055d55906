package handlers

import (
	"context"
	"time"

	"clubgraph/application/ports"
	"clubgraph/application/queries"
	"clubgraph/domain/clubs"
	"clubgraph/infrastructure/cache"
	pkgerrors "clubgraph/pkg/errors"

	"go.uber.org/zap"
)

// Node sizing: a club's rendered size grows with its connection count
// and is clamped so hubs do not dwarf the rest of the graph.
const (
	baseNodeSize = 20
	nodeSizeStep = 5
	maxNodeSize  = 60
)

// fallbackColor is used for any league or connection type missing from
// the lookup tables.
const fallbackColor = "#9e9e9e"

var leagueColors = map[clubs.League]string{
	clubs.LeaguePremierLeague: "#3d195b",
	clubs.LeagueLaLiga:        "#ee8707",
	clubs.LeagueSerieA:        "#008fd7",
	clubs.LeagueBundesliga:    "#d20515",
	clubs.LeagueLigue1:        "#dae025",
	clubs.LeagueOther:         "#607d8b",
}

var connectionTypeColors = map[clubs.ConnectionType]string{
	clubs.ConnectionRivalry:        "#e53935",
	clubs.ConnectionFriendship:     "#43a047",
	clubs.ConnectionPartnership:    "#1e88e5",
	clubs.ConnectionOwnership:      "#8e24aa",
	clubs.ConnectionPlayerTransfer: "#fb8c00",
	clubs.ConnectionSharedStadium:  "#00897b",
}

// GetGraphDataHandler shapes the club graph for visualization
type GetGraphDataHandler struct {
	clubRepo ports.ClubRepository
	connRepo ports.ConnectionRepository
	cache    *cache.Service
	ttl      time.Duration
	logger   *zap.Logger
}

// NewGetGraphDataHandler creates a new graph data handler
func NewGetGraphDataHandler(
	clubRepo ports.ClubRepository,
	connRepo ports.ConnectionRepository,
	cacheSvc *cache.Service,
	ttl time.Duration,
	logger *zap.Logger,
) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		clubRepo: clubRepo,
		connRepo: connRepo,
		cache:    cacheSvc,
		ttl:      ttl,
		logger:   logger,
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := graphDataKey(query)

	var cached queries.GetGraphDataResult
	if h.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	allClubs, err := h.clubRepo.FindAll(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch clubs for graph data", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to build graph data")
	}

	allConns, err := h.connRepo.FindAll(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch connections for graph data", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to build graph data")
	}

	result := shapeGraph(allClubs, allConns, query)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = h.cache.SetJSON(ctx, key, result, h.ttl)

	h.logger.Debug("Graph data assembled",
		zap.String("cacheKey", key),
		zap.Int("nodeCount", result.Metadata.NodeCount),
		zap.Int("edgeCount", result.Metadata.EdgeCount),
	)
	return result, nil
}

// shapeGraph turns raw clubs and connections into the visualization
// payload: filter nodes, keep only edges whose endpoints both survive,
// count connections per node, optionally drop isolated nodes, then
// derive sizes, colors and distributions.
func shapeGraph(allClubs []*clubs.Club, allConns []*clubs.Connection, query queries.GetGraphDataQuery) *queries.GetGraphDataResult {
	surviving := make(map[string]*clubs.Club, len(allClubs))
	for _, club := range allClubs {
		if query.League != "" && club.League != clubs.League(query.League) {
			continue
		}
		surviving[club.ID] = club
	}

	edges := make([]queries.GraphEdge, 0, len(allConns))
	counts := make(map[string]int, len(surviving))
	typeDist := make(map[string]int)
	for _, conn := range allConns {
		if query.ConnectionType != "" && conn.Type != clubs.ConnectionType(query.ConnectionType) {
			continue
		}
		if query.MinStrength > 0 && conn.Strength < query.MinStrength {
			continue
		}
		if _, ok := surviving[conn.SourceClubID]; !ok {
			continue
		}
		if _, ok := surviving[conn.TargetClubID]; !ok {
			continue
		}

		counts[conn.SourceClubID]++
		counts[conn.TargetClubID]++
		typeDist[string(conn.Type)]++
		edges = append(edges, queries.GraphEdge{
			ID:               conn.ID,
			SourceID:         conn.SourceClubID,
			TargetID:         conn.TargetClubID,
			Type:             string(conn.Type),
			Color:            connectionTypeColor(conn.Type),
			Strength:         conn.Strength,
			ReliabilityScore: conn.ReliabilityScore,
			IsVerified:       conn.IsVerified,
		})
	}

	nodes := make([]queries.GraphNode, 0, len(surviving))
	leagueDist := make(map[string]int)
	for _, club := range allClubs {
		c, ok := surviving[club.ID]
		if !ok {
			continue
		}
		count := counts[c.ID]
		if count == 0 && !query.IncludeIsolated {
			continue
		}
		leagueDist[string(c.League)]++
		nodes = append(nodes, queries.GraphNode{
			ID:              c.ID,
			Label:           c.Name,
			League:          string(c.League),
			Color:           leagueColor(c.League),
			ConnectionCount: count,
			Size:            nodeSize(count),
			IsVerified:      c.IsVerified,
		})
	}

	return &queries.GetGraphDataResult{
		Nodes: nodes,
		Edges: edges,
		Metadata: queries.GraphMetadata{
			NodeCount:          len(nodes),
			EdgeCount:          len(edges),
			LeagueDistribution: leagueDist,
			TypeDistribution:   typeDist,
		},
	}
}

func nodeSize(connectionCount int) int {
	size := baseNodeSize + connectionCount*nodeSizeStep
	if size > maxNodeSize {
		return maxNodeSize
	}
	return size
}

func leagueColor(league clubs.League) string {
	if color, ok := leagueColors[league]; ok {
		return color
	}
	return fallbackColor
}

func connectionTypeColor(connType clubs.ConnectionType) string {
	if color, ok := connectionTypeColors[connType]; ok {
		return color
	}
	return fallbackColor
}
