package queries

import "clubgraph/pkg/utils"

// GetGraphDataQuery shapes the club graph for visualization
type GetGraphDataQuery struct {
	League          string `json:"league,omitempty" validate:"omitempty,oneof=premier-league la-liga serie-a bundesliga ligue-1 other"`
	ConnectionType  string `json:"connection_type,omitempty" validate:"omitempty,oneof=rivalry friendship partnership ownership player-transfer shared-stadium"`
	MinStrength     int    `json:"min_strength,omitempty" validate:"omitempty,gte=1,lte=10"`
	IncludeIsolated bool   `json:"include_isolated"`
}

// Validate checks the declarative rules
func (q GetGraphDataQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GraphNode is a club rendered as a graph vertex
type GraphNode struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	League          string `json:"league"`
	Color           string `json:"color"`
	ConnectionCount int    `json:"connection_count"`
	Size            int    `json:"size"`
	IsVerified      bool   `json:"is_verified"`
}

// GraphEdge is a connection rendered as a graph edge
type GraphEdge struct {
	ID               string  `json:"id"`
	SourceID         string  `json:"source_id"`
	TargetID         string  `json:"target_id"`
	Type             string  `json:"type"`
	Color            string  `json:"color"`
	Strength         int     `json:"strength"`
	ReliabilityScore float64 `json:"reliability_score"`
	IsVerified       bool    `json:"is_verified"`
}

// GraphMetadata carries counts and distributions for the rendered graph
type GraphMetadata struct {
	NodeCount          int            `json:"node_count"`
	EdgeCount          int            `json:"edge_count"`
	LeagueDistribution map[string]int `json:"league_distribution"`
	TypeDistribution   map[string]int `json:"type_distribution"`
}

// GetGraphDataResult is the graph visualization payload
type GetGraphDataResult struct {
	Nodes    []GraphNode   `json:"nodes"`
	Edges    []GraphEdge   `json:"edges"`
	Metadata GraphMetadata `json:"metadata"`
}
