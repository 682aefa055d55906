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

func TestGetDashboardStatsHandler_Aggregates(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewGetDashboardStatsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	allClubs := []*clubs.Club{
		fixtures.NewClubBuilder().WithVerified(true).WithFeatured(true).Build(),
		fixtures.NewClubBuilder().WithLeague(clubs.LeagueLaLiga).WithActive(false).Build(),
		fixtures.NewClubBuilder().WithLeague(clubs.LeagueLaLiga).WithVerified(true).Build(),
	}
	allConns := []*clubs.Connection{
		fixtures.NewConnectionBuilder().WithStrength(4).WithVerified(true).Build(),
		fixtures.NewConnectionBuilder().WithStrength(8).WithType(clubs.ConnectionPartnership).Build(),
	}

	mockClubs.On("FindAll", ctx).Return(allClubs, nil)
	mockConns.On("FindAll", ctx).Return(allConns, nil)

	result, err := handler.Handle(ctx, queries.GetDashboardStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalClubs)
	assert.Equal(t, 2, result.ActiveClubs)
	assert.Equal(t, 2, result.VerifiedClubs)
	assert.Equal(t, 1, result.FeaturedClubs)
	assert.Equal(t, 2, result.TotalConnections)
	assert.Equal(t, 1, result.VerifiedConnections)
	assert.Equal(t, map[string]int{"premier-league": 1, "la-liga": 2}, result.ClubsByLeague)
	assert.Equal(t, map[string]int{"rivalry": 1, "partnership": 1}, result.ConnectionsByType)
	assert.InDelta(t, 6.0, result.AverageStrength, 0.001)
}

func TestGetDashboardStatsHandler_EmptyStore(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewGetDashboardStatsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	mockClubs.On("FindAll", ctx).Return([]*clubs.Club{}, nil)
	mockConns.On("FindAll", ctx).Return([]*clubs.Connection{}, nil)

	result, err := handler.Handle(ctx, queries.GetDashboardStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalClubs)
	assert.Equal(t, 0, result.TotalConnections)
	assert.Zero(t, result.AverageStrength)
}

func TestGetDashboardStatsHandler_SecondCallServedFromCache(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewGetDashboardStatsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	mockClubs.On("FindAll", ctx).Return([]*clubs.Club{}, nil).Once()
	mockConns.On("FindAll", ctx).Return([]*clubs.Connection{}, nil).Once()

	_, err := handler.Handle(ctx, queries.GetDashboardStatsQuery{})
	require.NoError(t, err)
	_, err = handler.Handle(ctx, queries.GetDashboardStatsQuery{})
	require.NoError(t, err)

	mockClubs.AssertNumberOfCalls(t, "FindAll", 1)
}
