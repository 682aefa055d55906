// Package traced decorates the repository ports with X-Ray subsegments
// so every backing-store fetch shows up in the service trace.
package traced

import (
	"context"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	"clubgraph/pkg/observability"
)

// ClubRepository wraps a ports.ClubRepository with tracing.
type ClubRepository struct {
	inner  ports.ClubRepository
	tracer *observability.Tracer
}

// NewClubRepository decorates inner. A nil tracer disables tracing and
// the decorator degrades to plain delegation.
func NewClubRepository(inner ports.ClubRepository, tracer *observability.Tracer) *ClubRepository {
	return &ClubRepository{inner: inner, tracer: tracer}
}

func (r *ClubRepository) FindPage(ctx context.Context, filter ports.ClubFilter) ([]*clubs.Club, int, error) {
	var (
		items []*clubs.Club
		total int
	)
	err := r.tracer.TraceFunction(ctx, "club-repository.find-page", func(ctx context.Context) error {
		var err error
		items, total, err = r.inner.FindPage(ctx, filter)
		return err
	})
	return items, total, err
}

func (r *ClubRepository) FindByID(ctx context.Context, id string) (*clubs.Club, error) {
	var club *clubs.Club
	err := r.tracer.TraceFunction(ctx, "club-repository.find-by-id", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "club_id", id)
		var err error
		club, err = r.inner.FindByID(ctx, id)
		return err
	})
	return club, err
}

func (r *ClubRepository) FindAll(ctx context.Context) ([]*clubs.Club, error) {
	var items []*clubs.Club
	err := r.tracer.TraceFunction(ctx, "club-repository.find-all", func(ctx context.Context) error {
		var err error
		items, err = r.inner.FindAll(ctx)
		return err
	})
	return items, err
}

func (r *ClubRepository) Save(ctx context.Context, club *clubs.Club) error {
	return r.tracer.TraceFunction(ctx, "club-repository.save", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "club_id", club.ID)
		return r.inner.Save(ctx, club)
	})
}

func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	return r.tracer.TraceFunction(ctx, "club-repository.delete", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "club_id", id)
		return r.inner.Delete(ctx, id)
	})
}

// ConnectionRepository wraps a ports.ConnectionRepository with tracing.
type ConnectionRepository struct {
	inner  ports.ConnectionRepository
	tracer *observability.Tracer
}

// NewConnectionRepository decorates inner. A nil tracer disables
// tracing and the decorator degrades to plain delegation.
func NewConnectionRepository(inner ports.ConnectionRepository, tracer *observability.Tracer) *ConnectionRepository {
	return &ConnectionRepository{inner: inner, tracer: tracer}
}

func (r *ConnectionRepository) FindPage(ctx context.Context, filter ports.ConnectionFilter) ([]*clubs.Connection, int, error) {
	var (
		items []*clubs.Connection
		total int
	)
	err := r.tracer.TraceFunction(ctx, "connection-repository.find-page", func(ctx context.Context) error {
		var err error
		items, total, err = r.inner.FindPage(ctx, filter)
		return err
	})
	return items, total, err
}

func (r *ConnectionRepository) FindForClub(ctx context.Context, clubID string) ([]*clubs.Connection, error) {
	var items []*clubs.Connection
	err := r.tracer.TraceFunction(ctx, "connection-repository.find-for-club", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "club_id", clubID)
		var err error
		items, err = r.inner.FindForClub(ctx, clubID)
		return err
	})
	return items, err
}

func (r *ConnectionRepository) FindByID(ctx context.Context, id string) (*clubs.Connection, error) {
	var conn *clubs.Connection
	err := r.tracer.TraceFunction(ctx, "connection-repository.find-by-id", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "connection_id", id)
		var err error
		conn, err = r.inner.FindByID(ctx, id)
		return err
	})
	return conn, err
}

func (r *ConnectionRepository) FindAll(ctx context.Context) ([]*clubs.Connection, error) {
	var items []*clubs.Connection
	err := r.tracer.TraceFunction(ctx, "connection-repository.find-all", func(ctx context.Context) error {
		var err error
		items, err = r.inner.FindAll(ctx)
		return err
	})
	return items, err
}

func (r *ConnectionRepository) Save(ctx context.Context, conn *clubs.Connection) error {
	return r.tracer.TraceFunction(ctx, "connection-repository.save", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "connection_id", conn.ID)
		return r.inner.Save(ctx, conn)
	})
}

func (r *ConnectionRepository) Delete(ctx context.Context, id string) error {
	return r.tracer.TraceFunction(ctx, "connection-repository.delete", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "connection_id", id)
		return r.inner.Delete(ctx, id)
	})
}
