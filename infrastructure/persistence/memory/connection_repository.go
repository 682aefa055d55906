package memory

import (
	"context"
	"sort"
	"sync"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"
)

// ConnectionRepository is a mutex-guarded, map-backed connection store
type ConnectionRepository struct {
	mu    sync.RWMutex
	items map[string]*clubs.Connection
}

// NewConnectionRepository creates an empty in-memory connection repository
func NewConnectionRepository() *ConnectionRepository {
	return &ConnectionRepository{items: make(map[string]*clubs.Connection)}
}

// FindPage returns one page of connections matching the filter plus the
// total match count
func (r *ConnectionRepository) FindPage(ctx context.Context, filter ports.ConnectionFilter) ([]*clubs.Connection, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	matched := make([]*clubs.Connection, 0, len(r.items))
	for _, conn := range r.items {
		if filter.ClubID != "" && !conn.Involves(filter.ClubID) {
			continue
		}
		if filter.Type != "" && conn.Type != filter.Type {
			continue
		}
		matched = append(matched, copyConnection(conn))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return matched[start:end], total, nil
}

// FindForClub returns every connection touching the club
func (r *ConnectionRepository) FindForClub(ctx context.Context, clubID string) ([]*clubs.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*clubs.Connection, 0)
	for _, conn := range r.items {
		if conn.Involves(clubID) {
			matched = append(matched, copyConnection(conn))
		}
	}
	return matched, nil
}

// FindByID returns the connection or a not-found error
func (r *ConnectionRepository) FindByID(ctx context.Context, id string) (*clubs.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.items[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("connection")
	}
	return copyConnection(conn), nil
}

// FindAll returns every connection
func (r *ConnectionRepository) FindAll(ctx context.Context) ([]*clubs.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*clubs.Connection, 0, len(r.items))
	for _, conn := range r.items {
		all = append(all, copyConnection(conn))
	}
	return all, nil
}

// Save inserts or replaces a connection
func (r *ConnectionRepository) Save(ctx context.Context, conn *clubs.Connection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[conn.ID] = copyConnection(conn)
	return nil
}

// Delete removes a connection; deleting an absent one is a not-found error
func (r *ConnectionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return pkgerrors.NewNotFoundError("connection")
	}
	delete(r.items, id)
	return nil
}

func copyConnection(c *clubs.Connection) *clubs.Connection {
	dup := *c
	return &dup
}
