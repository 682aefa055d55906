// Package mocks provides testify mock implementations of the
// application ports for handler-level unit tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
)

// MockClubRepository is a testify mock for ports.ClubRepository.
type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) FindPage(ctx context.Context, filter ports.ClubFilter) ([]*clubs.Club, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*clubs.Club), args.Int(1), args.Error(2)
}

func (m *MockClubRepository) FindByID(ctx context.Context, id string) (*clubs.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clubs.Club), args.Error(1)
}

func (m *MockClubRepository) FindAll(ctx context.Context) ([]*clubs.Club, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clubs.Club), args.Error(1)
}

func (m *MockClubRepository) Save(ctx context.Context, club *clubs.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConnectionRepository is a testify mock for ports.ConnectionRepository.
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) FindPage(ctx context.Context, filter ports.ConnectionFilter) ([]*clubs.Connection, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*clubs.Connection), args.Int(1), args.Error(2)
}

func (m *MockConnectionRepository) FindForClub(ctx context.Context, clubID string) ([]*clubs.Connection, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clubs.Connection), args.Error(1)
}

func (m *MockConnectionRepository) FindByID(ctx context.Context, id string) (*clubs.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clubs.Connection), args.Error(1)
}

func (m *MockConnectionRepository) FindAll(ctx context.Context) ([]*clubs.Connection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clubs.Connection), args.Error(1)
}

func (m *MockConnectionRepository) Save(ctx context.Context, conn *clubs.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockConnectionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheInvalidator is a testify mock for ports.CacheInvalidator.
type MockCacheInvalidator struct {
	mock.Mock
}

func (m *MockCacheInvalidator) RemoveByPattern(ctx context.Context, pattern string) (int, error) {
	args := m.Called(ctx, pattern)
	return args.Int(0), args.Error(1)
}

// MockEventPublisher is a testify mock for ports.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishMutation(ctx context.Context, entityType, entityID, action string) error {
	args := m.Called(ctx, entityType, entityID, action)
	return args.Error(0)
}
