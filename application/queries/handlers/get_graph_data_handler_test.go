package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clubgraph/application/queries"
	"clubgraph/domain/clubs"
	"clubgraph/tests/fixtures"
	"clubgraph/tests/mocks"
)

// threeClubGraph returns clubs A, B, C where A-B are connected and C is
// isolated.
func threeClubGraph() ([]*clubs.Club, []*clubs.Connection) {
	a := fixtures.NewClubBuilder().WithID("club-a").WithName("Alpha FC").Build()
	b := fixtures.NewClubBuilder().WithID("club-b").WithName("Beta FC").WithLeague(clubs.LeagueLaLiga).Build()
	c := fixtures.NewClubBuilder().WithID("club-c").WithName("Gamma FC").Build()

	conn := fixtures.NewConnectionBuilder().
		WithID("conn-ab").
		WithEndpoints("club-a", "club-b").
		WithType(clubs.ConnectionRivalry).
		WithStrength(7).
		Build()

	return []*clubs.Club{a, b, c}, []*clubs.Connection{conn}
}

func newGraphHandler(t *testing.T, allClubs []*clubs.Club, allConns []*clubs.Connection) (*GetGraphDataHandler, *mocks.MockClubRepository, *mocks.MockConnectionRepository) {
	t.Helper()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	mockClubs.On("FindAll", context.Background()).Return(allClubs, nil)
	mockConns.On("FindAll", context.Background()).Return(allConns, nil)
	handler := NewGetGraphDataHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())
	return handler, mockClubs, mockConns
}

func TestGetGraphDataHandler_DropsIsolatedNodesByDefault(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, _, _ := newGraphHandler(t, allClubs, allConns)

	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Metadata.NodeCount)
	assert.Equal(t, 1, result.Metadata.EdgeCount)
	for _, node := range result.Nodes {
		assert.NotEqual(t, "club-c", node.ID)
		assert.Equal(t, 1, node.ConnectionCount)
	}
}

func TestGetGraphDataHandler_IncludesIsolatedNodesOnRequest(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, _, _ := newGraphHandler(t, allClubs, allConns)

	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{IncludeIsolated: true})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Metadata.NodeCount)

	var isolated *queries.GraphNode
	for i := range result.Nodes {
		if result.Nodes[i].ID == "club-c" {
			isolated = &result.Nodes[i]
		}
	}
	require.NotNil(t, isolated)
	assert.Equal(t, 0, isolated.ConnectionCount)
	assert.Equal(t, 20, isolated.Size)
}

func TestGetGraphDataHandler_LeagueFilterDropsEdgesWithFilteredEndpoint(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, _, _ := newGraphHandler(t, allClubs, allConns)

	// club-b is La Liga; filtering to Premier League removes it, and the
	// A-B edge must go with it, leaving A isolated.
	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{League: "premier-league"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Metadata.EdgeCount)
	assert.Equal(t, 0, result.Metadata.NodeCount)

	withIsolated, err := handler.Handle(ctx, queries.GetGraphDataQuery{League: "premier-league", IncludeIsolated: true})
	require.NoError(t, err)
	assert.Equal(t, 2, withIsolated.Metadata.NodeCount)
}

func TestGetGraphDataHandler_MinStrengthFilter(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, _, _ := newGraphHandler(t, allClubs, allConns)

	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{MinStrength: 8})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Metadata.EdgeCount)
}

func TestGetGraphDataHandler_NodeSizeGrowsAndClamps(t *testing.T) {
	assert.Equal(t, 20, nodeSize(0))
	assert.Equal(t, 25, nodeSize(1))
	assert.Equal(t, 45, nodeSize(5))
	assert.Equal(t, 60, nodeSize(8))
	assert.Equal(t, 60, nodeSize(100))
}

func TestGetGraphDataHandler_ColorsWithFallback(t *testing.T) {
	assert.Equal(t, "#3d195b", leagueColor(clubs.LeaguePremierLeague))
	assert.Equal(t, fallbackColor, leagueColor(clubs.League("unknown")))
	assert.Equal(t, "#e53935", connectionTypeColor(clubs.ConnectionRivalry))
	assert.Equal(t, fallbackColor, connectionTypeColor(clubs.ConnectionType("unknown")))
}

func TestGetGraphDataHandler_Distributions(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, _, _ := newGraphHandler(t, allClubs, allConns)

	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"premier-league": 1, "la-liga": 1}, result.Metadata.LeagueDistribution)
	assert.Equal(t, map[string]int{"rivalry": 1}, result.Metadata.TypeDistribution)
}

func TestGetGraphDataHandler_SecondCallServedFromCache(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, mockClubs, mockConns := newGraphHandler(t, allClubs, allConns)

	_, err := handler.Handle(ctx, queries.GetGraphDataQuery{})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, queries.GetGraphDataQuery{})
	require.NoError(t, err)

	mockClubs.AssertNumberOfCalls(t, "FindAll", 1)
	mockConns.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestGetGraphDataHandler_DistinctFiltersMissSeparately(t *testing.T) {
	ctx := context.Background()
	allClubs, allConns := threeClubGraph()
	handler, mockClubs, _ := newGraphHandler(t, allClubs, allConns)

	_, err := handler.Handle(ctx, queries.GetGraphDataQuery{})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, queries.GetGraphDataQuery{IncludeIsolated: true})
	require.NoError(t, err)

	mockClubs.AssertNumberOfCalls(t, "FindAll", 2)
}

func TestGetGraphDataHandler_RejectsInvalidFilter(t *testing.T) {
	ctx := context.Background()
	handler, mockClubs, _ := newGraphHandler(t, nil, nil)

	_, err := handler.Handle(ctx, queries.GetGraphDataQuery{League: "martian-league"})
	require.Error(t, err)

	_, err = handler.Handle(ctx, queries.GetGraphDataQuery{MinStrength: 11})
	require.Error(t, err)

	mockClubs.AssertNotCalled(t, "FindAll", ctx)
}
