package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clubgraph/application/ports"
	"clubgraph/application/queries"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"
	"clubgraph/tests/fixtures"
	"clubgraph/tests/mocks"
)

const testClubID = "7d3f9a52-8f3c-4f7e-9b1a-2c5d8e4f6a70"

func TestListClubConnectionsHandler_Success(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	club := fixtures.NewClubBuilder().WithID(testClubID).Build()
	conns := []*clubs.Connection{
		fixtures.NewConnectionBuilder().WithEndpoints(testClubID, "other").Build(),
		fixtures.NewConnectionBuilder().WithEndpoints("another", testClubID).Build(),
	}

	mockClubs.On("FindByID", ctx, testClubID).Return(club, nil)
	mockConns.On("FindPage", ctx, mock.MatchedBy(func(f ports.ConnectionFilter) bool {
		return f.ClubID == testClubID && f.Offset == 0 && f.Limit == 20
	})).Return(conns, 2, nil)

	result, err := handler.Handle(ctx, queries.ListClubConnectionsQuery{ClubID: testClubID, Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	mockClubs.AssertExpectations(t)
	mockConns.AssertExpectations(t)
}

func TestListClubConnectionsHandler_EmptyListForExistingClub(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	mockClubs.On("FindByID", ctx, testClubID).Return(fixtures.NewClubBuilder().WithID(testClubID).Build(), nil)
	mockConns.On("FindPage", ctx, mock.Anything).Return([]*clubs.Connection{}, 0, nil)

	result, err := handler.Handle(ctx, queries.ListClubConnectionsQuery{ClubID: testClubID, Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalCount)
}

func TestListClubConnectionsHandler_UnknownClubIsNotFound(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	mockClubs.On("FindByID", ctx, testClubID).Return(nil, pkgerrors.NewNotFoundError("club"))

	_, err := handler.Handle(ctx, queries.ListClubConnectionsQuery{ClubID: testClubID, Page: 1, PageSize: 20})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	mockConns.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything)
}

func TestListClubConnectionsHandler_ZeroPageFailsBeforeStore(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	_, err := handler.Handle(ctx, queries.ListClubConnectionsQuery{ClubID: testClubID, Page: 0, PageSize: 20})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	mockClubs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockConns.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything)
}

func TestListClubConnectionsHandler_RejectsMalformedClubID(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	_, err := handler.Handle(ctx, queries.ListClubConnectionsQuery{ClubID: "not-a-uuid", Page: 1, PageSize: 20})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	mockClubs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestListClubConnectionsHandler_SecondCallServedFromCache(t *testing.T) {
	ctx := context.Background()
	mockClubs := new(mocks.MockClubRepository)
	mockConns := new(mocks.MockConnectionRepository)
	handler := NewListClubConnectionsHandler(mockClubs, mockConns, newTestCache(t), time.Minute, zap.NewNop())

	mockClubs.On("FindByID", ctx, testClubID).Return(fixtures.NewClubBuilder().WithID(testClubID).Build(), nil).Once()
	mockConns.On("FindPage", ctx, mock.Anything).Return([]*clubs.Connection{}, 0, nil).Once()

	query := queries.ListClubConnectionsQuery{ClubID: testClubID, Type: "rivalry", Page: 1, PageSize: 20}

	_, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	_, err = handler.Handle(ctx, query)
	require.NoError(t, err)

	mockConns.AssertNumberOfCalls(t, "FindPage", 1)
}
