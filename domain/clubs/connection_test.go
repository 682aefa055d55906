package clubs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "clubgraph/pkg/errors"
)

func TestNewConnection(t *testing.T) {
	conn, err := NewConnection("club-a", "club-b", ConnectionRivalry, 7, 0.9)
	require.NoError(t, err)

	assert.NotEmpty(t, conn.ID)
	assert.Equal(t, "club-a", conn.SourceClubID)
	assert.Equal(t, "club-b", conn.TargetClubID)
	assert.Equal(t, ConnectionRivalry, conn.Type)
	assert.Equal(t, 7, conn.Strength)
	assert.InDelta(t, 0.9, conn.ReliabilityScore, 0.0001)
}

func TestNewConnectionValidation(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		target      string
		connType    ConnectionType
		strength    int
		reliability float64
	}{
		{"empty source", "", "club-b", ConnectionRivalry, 5, 0.5},
		{"empty target", "club-a", "", ConnectionRivalry, 5, 0.5},
		{"self loop", "club-a", "club-a", ConnectionRivalry, 5, 0.5},
		{"unknown type", "club-a", "club-b", ConnectionType("telepathy"), 5, 0.5},
		{"strength too low", "club-a", "club-b", ConnectionRivalry, 0, 0.5},
		{"strength too high", "club-a", "club-b", ConnectionRivalry, 11, 0.5},
		{"reliability negative", "club-a", "club-b", ConnectionRivalry, 5, -0.1},
		{"reliability above one", "club-a", "club-b", ConnectionRivalry, 5, 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConnection(tt.source, tt.target, tt.connType, tt.strength, tt.reliability)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
		})
	}
}

func TestConnectionTypeIsValid(t *testing.T) {
	for _, connType := range ConnectionTypes {
		assert.True(t, connType.IsValid(), string(connType))
	}
	assert.False(t, ConnectionType("telepathy").IsValid())
}

func TestConnectionInvolves(t *testing.T) {
	conn, err := NewConnection("club-a", "club-b", ConnectionFriendship, 5, 0.5)
	require.NoError(t, err)

	assert.True(t, conn.Involves("club-a"))
	assert.True(t, conn.Involves("club-b"))
	assert.False(t, conn.Involves("club-c"))
}
