// Package fixtures provides test data builders for domain entities.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"clubgraph/domain/clubs"
)

// ClubBuilder assembles test clubs with sensible defaults.
type ClubBuilder struct {
	club clubs.Club
}

// NewClubBuilder starts a builder for an active Premier League club.
func NewClubBuilder() *ClubBuilder {
	now := time.Now()
	return &ClubBuilder{
		club: clubs.Club{
			ID:          uuid.New().String(),
			Name:        "Test FC",
			League:      clubs.LeaguePremierLeague,
			City:        "London",
			Country:     "England",
			FoundedYear: 1900,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func (b *ClubBuilder) WithID(id string) *ClubBuilder {
	b.club.ID = id
	return b
}

func (b *ClubBuilder) WithName(name string) *ClubBuilder {
	b.club.Name = name
	return b
}

func (b *ClubBuilder) WithLeague(league clubs.League) *ClubBuilder {
	b.club.League = league
	return b
}

func (b *ClubBuilder) WithCity(city string) *ClubBuilder {
	b.club.City = city
	return b
}

func (b *ClubBuilder) WithCountry(country string) *ClubBuilder {
	b.club.Country = country
	return b
}

func (b *ClubBuilder) WithFoundedYear(year int) *ClubBuilder {
	b.club.FoundedYear = year
	return b
}

func (b *ClubBuilder) WithActive(active bool) *ClubBuilder {
	b.club.IsActive = active
	return b
}

func (b *ClubBuilder) WithVerified(verified bool) *ClubBuilder {
	b.club.IsVerified = verified
	return b
}

func (b *ClubBuilder) WithFeatured(featured bool) *ClubBuilder {
	b.club.IsFeatured = featured
	return b
}

// Build returns a copy of the assembled club.
func (b *ClubBuilder) Build() *clubs.Club {
	club := b.club
	return &club
}

// ConnectionBuilder assembles test connections with sensible defaults.
type ConnectionBuilder struct {
	conn clubs.Connection
}

// NewConnectionBuilder starts a builder for a rivalry of middling strength.
func NewConnectionBuilder() *ConnectionBuilder {
	now := time.Now()
	return &ConnectionBuilder{
		conn: clubs.Connection{
			ID:               uuid.New().String(),
			SourceClubID:     uuid.New().String(),
			TargetClubID:     uuid.New().String(),
			Type:             clubs.ConnectionRivalry,
			Strength:         5,
			ReliabilityScore: 0.8,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
}

func (b *ConnectionBuilder) WithID(id string) *ConnectionBuilder {
	b.conn.ID = id
	return b
}

func (b *ConnectionBuilder) WithEndpoints(source, target string) *ConnectionBuilder {
	b.conn.SourceClubID = source
	b.conn.TargetClubID = target
	return b
}

func (b *ConnectionBuilder) WithType(t clubs.ConnectionType) *ConnectionBuilder {
	b.conn.Type = t
	return b
}

func (b *ConnectionBuilder) WithStrength(strength int) *ConnectionBuilder {
	b.conn.Strength = strength
	return b
}

func (b *ConnectionBuilder) WithReliability(score float64) *ConnectionBuilder {
	b.conn.ReliabilityScore = score
	return b
}

func (b *ConnectionBuilder) WithVerified(verified bool) *ConnectionBuilder {
	b.conn.IsVerified = verified
	return b
}

// Build returns a copy of the assembled connection.
func (b *ConnectionBuilder) Build() *clubs.Connection {
	conn := b.conn
	return &conn
}
