package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clubgraph/application/commands"
	"clubgraph/domain/clubs"
	"clubgraph/infrastructure/cache"
	pkgerrors "clubgraph/pkg/errors"
	"clubgraph/tests/fixtures"
	"clubgraph/tests/mocks"
)

// expectInvalidation registers RemoveByPattern expectations for every
// namespace a mutation is supposed to flush.
func expectInvalidation(inv *mocks.MockCacheInvalidator, namespaces []string) {
	for _, ns := range namespaces {
		inv.On("RemoveByPattern", mock.Anything, cache.PatternFor(ns)).Return(1, nil)
	}
}

func validCreateClubCommand() commands.CreateClubCommand {
	return commands.CreateClubCommand{
		ClubID:      uuid.New().String(),
		Name:        "Arsenal",
		League:      "premier-league",
		City:        "London",
		Country:     "England",
		FoundedYear: 1886,
	}
}

func TestCreateClubHandler_SavesPublishesAndInvalidates(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewCreateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	cmd := validCreateClubCommand()

	clubRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *clubs.Club) bool {
		return c.ID == cmd.ClubID && c.Name == "Arsenal" && c.IsActive
	})).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", cmd.ClubID, "created").Return(nil)
	expectInvalidation(inv, clubMutationNamespaces)

	err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	clubRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	inv.AssertExpectations(t)
	inv.AssertNumberOfCalls(t, "RemoveByPattern", len(clubMutationNamespaces))
}

func TestCreateClubHandler_InactiveOverride(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewCreateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	inactive := false
	cmd := validCreateClubCommand()
	cmd.IsActive = &inactive

	clubRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *clubs.Club) bool {
		return !c.IsActive
	})).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", cmd.ClubID, "created").Return(nil)
	expectInvalidation(inv, clubMutationNamespaces)

	require.NoError(t, handler.Handle(context.Background(), cmd))
	clubRepo.AssertExpectations(t)
}

func TestCreateClubHandler_SaveFailureSkipsSideEffects(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewCreateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	clubRepo.On("Save", mock.Anything, mock.Anything).
		Return(pkgerrors.NewDatabaseError("save club", errors.New("boom")))

	err := handler.Handle(context.Background(), validCreateClubCommand())
	require.Error(t, err)

	publisher.AssertNotCalled(t, "PublishMutation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	inv.AssertNotCalled(t, "RemoveByPattern", mock.Anything, mock.Anything)
}

func TestCreateClubHandler_PublishFailureDoesNotFailCommand(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewCreateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	cmd := validCreateClubCommand()
	clubRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", cmd.ClubID, "created").
		Return(errors.New("event bus unreachable"))
	expectInvalidation(inv, clubMutationNamespaces)

	require.NoError(t, handler.Handle(context.Background(), cmd))
	inv.AssertNumberOfCalls(t, "RemoveByPattern", len(clubMutationNamespaces))
}

func TestCreateClubHandler_InvalidationFailureDoesNotFailCommand(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewCreateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	cmd := validCreateClubCommand()
	clubRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", cmd.ClubID, "created").Return(nil)
	inv.On("RemoveByPattern", mock.Anything, mock.Anything).
		Return(0, pkgerrors.NewCacheError("remove by pattern", errors.New("scan failed")))

	require.NoError(t, handler.Handle(context.Background(), cmd))
	inv.AssertNumberOfCalls(t, "RemoveByPattern", len(clubMutationNamespaces))
}

func TestUpdateClubHandler_AppliesPartialUpdate(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewUpdateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	existing := fixtures.NewClubBuilder().WithName("Woolwich Arsenal").Build()
	before := existing.UpdatedAt

	newName := "Arsenal"
	verified := true
	cmd := commands.UpdateClubCommand{
		ClubID:     existing.ID,
		Name:       &newName,
		IsVerified: &verified,
	}

	clubRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	clubRepo.On("Save", mock.Anything, mock.MatchedBy(func(c *clubs.Club) bool {
		return c.Name == "Arsenal" && c.IsVerified && c.City == "London" && c.UpdatedAt.After(before)
	})).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", existing.ID, "updated").Return(nil)
	expectInvalidation(inv, clubMutationNamespaces)

	require.NoError(t, handler.Handle(context.Background(), cmd))
	clubRepo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestUpdateClubHandler_UnknownLeagueRejected(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewUpdateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	existing := fixtures.NewClubBuilder().Build()
	bogus := "moon-league"
	cmd := commands.UpdateClubCommand{ClubID: existing.ID, League: &bogus}

	clubRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	err := handler.Handle(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	clubRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	inv.AssertNotCalled(t, "RemoveByPattern", mock.Anything, mock.Anything)
}

func TestUpdateClubHandler_MissingClub(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewUpdateClubHandler(clubRepo, inv, publisher, zap.NewNop())

	id := uuid.New().String()
	clubRepo.On("FindByID", mock.Anything, id).Return(nil, pkgerrors.NewNotFoundError("club"))

	err := handler.Handle(context.Background(), commands.UpdateClubCommand{ClubID: id})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	inv.AssertNotCalled(t, "RemoveByPattern", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishMutation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteClubHandler_RemovesConnectionsFirst(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	connRepo := new(mocks.MockConnectionRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewDeleteClubHandler(clubRepo, connRepo, inv, publisher, zap.NewNop())

	club := fixtures.NewClubBuilder().Build()
	connA := fixtures.NewConnectionBuilder().WithEndpoints(club.ID, uuid.New().String()).Build()
	connB := fixtures.NewConnectionBuilder().WithEndpoints(uuid.New().String(), club.ID).Build()

	clubRepo.On("FindByID", mock.Anything, club.ID).Return(club, nil)
	connRepo.On("FindForClub", mock.Anything, club.ID).Return([]*clubs.Connection{connA, connB}, nil)
	connRepo.On("Delete", mock.Anything, connA.ID).Return(nil)
	connRepo.On("Delete", mock.Anything, connB.ID).Return(nil)
	clubRepo.On("Delete", mock.Anything, club.ID).Return(nil)
	publisher.On("PublishMutation", mock.Anything, "club", club.ID, "deleted").Return(nil)
	expectInvalidation(inv, clubMutationNamespaces)

	require.NoError(t, handler.Handle(context.Background(), commands.DeleteClubCommand{ClubID: club.ID}))
	connRepo.AssertNumberOfCalls(t, "Delete", 2)
	clubRepo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestDeleteClubHandler_ConnectionDeleteFailureAborts(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	connRepo := new(mocks.MockConnectionRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewDeleteClubHandler(clubRepo, connRepo, inv, publisher, zap.NewNop())

	club := fixtures.NewClubBuilder().Build()
	conn := fixtures.NewConnectionBuilder().WithEndpoints(club.ID, uuid.New().String()).Build()

	clubRepo.On("FindByID", mock.Anything, club.ID).Return(club, nil)
	connRepo.On("FindForClub", mock.Anything, club.ID).Return([]*clubs.Connection{conn}, nil)
	connRepo.On("Delete", mock.Anything, conn.ID).
		Return(pkgerrors.NewDatabaseError("delete connection", errors.New("boom")))

	err := handler.Handle(context.Background(), commands.DeleteClubCommand{ClubID: club.ID})
	require.Error(t, err)
	clubRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishMutation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	inv.AssertNotCalled(t, "RemoveByPattern", mock.Anything, mock.Anything)
}

func TestDeleteClubHandler_MissingClub(t *testing.T) {
	clubRepo := new(mocks.MockClubRepository)
	connRepo := new(mocks.MockConnectionRepository)
	inv := new(mocks.MockCacheInvalidator)
	publisher := new(mocks.MockEventPublisher)
	handler := NewDeleteClubHandler(clubRepo, connRepo, inv, publisher, zap.NewNop())

	id := uuid.New().String()
	clubRepo.On("FindByID", mock.Anything, id).Return(nil, pkgerrors.NewNotFoundError("club"))

	err := handler.Handle(context.Background(), commands.DeleteClubCommand{ClubID: id})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	connRepo.AssertNotCalled(t, "FindForClub", mock.Anything, mock.Anything)
}
