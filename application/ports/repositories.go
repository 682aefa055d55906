// Package ports defines the persistence boundaries the application layer
// depends on. Implementations live under infrastructure/persistence.
package ports

import (
	"context"

	"clubgraph/domain/clubs"
)

// ClubFilter narrows a paged club fetch. All fields are optional; the
// zero value matches everything. Pointer booleans are tri-state so
// "unset" and "false" stay distinct.
type ClubFilter struct {
	Search        string
	League        clubs.League
	City          string
	Country       string
	IsActive      *bool
	IsVerified    *bool
	IsFeatured    *bool
	FoundedAfter  int
	FoundedBefore int
	SortBy        string
	SortOrder     string
	Offset        int
	Limit         int
}

// ConnectionFilter narrows a paged connection fetch.
type ConnectionFilter struct {
	ClubID string
	Type   clubs.ConnectionType
	Offset int
	Limit  int
}

// ClubRepository is the backing store for clubs. Reads are
// consistent-read only; no transactionality is assumed.
type ClubRepository interface {
	// FindPage returns one page of clubs matching the filter plus the
	// total match count before pagination.
	FindPage(ctx context.Context, filter ClubFilter) ([]*clubs.Club, int, error)

	// FindByID returns the club or a not-found error.
	FindByID(ctx context.Context, id string) (*clubs.Club, error)

	// FindAll returns every club; used by graph and dashboard shaping.
	FindAll(ctx context.Context) ([]*clubs.Club, error)

	Save(ctx context.Context, club *clubs.Club) error
	Delete(ctx context.Context, id string) error
}

// ConnectionRepository is the backing store for club connections.
type ConnectionRepository interface {
	// FindPage returns one page of connections matching the filter plus
	// the total match count before pagination.
	FindPage(ctx context.Context, filter ConnectionFilter) ([]*clubs.Connection, int, error)

	// FindForClub returns every connection touching the club.
	FindForClub(ctx context.Context, clubID string) ([]*clubs.Connection, error)

	// FindByID returns the connection or a not-found error.
	FindByID(ctx context.Context, id string) (*clubs.Connection, error)

	// FindAll returns every connection; used by graph and dashboard shaping.
	FindAll(ctx context.Context) ([]*clubs.Connection, error)

	Save(ctx context.Context, conn *clubs.Connection) error
	Delete(ctx context.Context, id string) error
}

// CacheInvalidator is the slice of the cache the command side needs:
// bulk eviction by key pattern after a mutation.
type CacheInvalidator interface {
	RemoveByPattern(ctx context.Context, pattern string) (int, error)
}

// EventPublisher publishes mutation events for downstream consumers.
type EventPublisher interface {
	PublishMutation(ctx context.Context, entityType, entityID, action string) error
}
