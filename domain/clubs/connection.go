package clubs

import (
	"time"

	pkgerrors "clubgraph/pkg/errors"

	"github.com/google/uuid"
)

// ConnectionType defines the kind of relationship between two clubs
type ConnectionType string

const (
	ConnectionRivalry        ConnectionType = "rivalry"
	ConnectionFriendship     ConnectionType = "friendship"
	ConnectionPartnership    ConnectionType = "partnership"
	ConnectionOwnership      ConnectionType = "ownership"
	ConnectionPlayerTransfer ConnectionType = "player-transfer"
	ConnectionSharedStadium  ConnectionType = "shared-stadium"
)

// ConnectionTypes lists every valid connection type.
var ConnectionTypes = []ConnectionType{
	ConnectionRivalry,
	ConnectionFriendship,
	ConnectionPartnership,
	ConnectionOwnership,
	ConnectionPlayerTransfer,
	ConnectionSharedStadium,
}

// IsValid reports whether the connection type is a known value
func (t ConnectionType) IsValid() bool {
	for _, known := range ConnectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Connection is a typed, directed relationship between two clubs.
// ReliabilityScore and IsVerified are supplied by the caller at write
// time; nothing in this service computes them.
type Connection struct {
	ID               string
	SourceClubID     string
	TargetClubID     string
	Type             ConnectionType
	Strength         int
	ReliabilityScore float64
	IsVerified       bool
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewConnection creates a connection with business rule validation
func NewConnection(sourceID, targetID string, connType ConnectionType, strength int, reliability float64) (*Connection, error) {
	if sourceID == "" || targetID == "" {
		return nil, pkgerrors.NewValidationError("connection endpoints cannot be empty")
	}
	if sourceID == targetID {
		return nil, pkgerrors.NewValidationError("a club cannot be connected to itself")
	}
	if !connType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown connection type: " + string(connType))
	}
	if strength < 1 || strength > 10 {
		return nil, pkgerrors.NewValidationError("connection strength must be between 1 and 10")
	}
	if reliability < 0 || reliability > 1 {
		return nil, pkgerrors.NewValidationError("reliability score must be between 0 and 1")
	}

	now := time.Now()
	return &Connection{
		ID:               uuid.New().String(),
		SourceClubID:     sourceID,
		TargetClubID:     targetID,
		Type:             connType,
		Strength:         strength,
		ReliabilityScore: reliability,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Touch bumps the update timestamp after a mutation
func (c *Connection) Touch() {
	c.UpdatedAt = time.Now()
}

// Involves reports whether the connection touches the given club
func (c *Connection) Involves(clubID string) bool {
	return c.SourceClubID == clubID || c.TargetClubID == clubID
}
