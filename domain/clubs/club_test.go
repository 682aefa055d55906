package clubs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "clubgraph/pkg/errors"
)

func TestNewClub(t *testing.T) {
	club, err := NewClub("  Arsenal  ", LeaguePremierLeague, " London ", "England", 1886)
	require.NoError(t, err)

	assert.NotEmpty(t, club.ID)
	assert.Equal(t, "Arsenal", club.Name, "name is trimmed")
	assert.Equal(t, "London", club.City)
	assert.True(t, club.IsActive, "new clubs start active")
	assert.False(t, club.IsVerified)
	assert.False(t, club.CreatedAt.IsZero())
	assert.Equal(t, club.CreatedAt, club.UpdatedAt)
}

func TestNewClubValidation(t *testing.T) {
	tests := []struct {
		name        string
		clubName    string
		league      League
		foundedYear int
	}{
		{"empty name", "", LeaguePremierLeague, 1900},
		{"whitespace name", "   ", LeaguePremierLeague, 1900},
		{"unknown league", "Arsenal", League("superleague"), 1900},
		{"founded too early", "Arsenal", LeaguePremierLeague, 1750},
		{"founded in the future", "Arsenal", LeaguePremierLeague, 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClub(tt.clubName, tt.league, "London", "England", tt.foundedYear)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
		})
	}
}

func TestNewClubZeroFoundedYearAllowed(t *testing.T) {
	club, err := NewClub("Arsenal", LeaguePremierLeague, "London", "England", 0)
	require.NoError(t, err)
	assert.Zero(t, club.FoundedYear)
}

func TestLeagueIsValid(t *testing.T) {
	for _, league := range Leagues {
		assert.True(t, league.IsValid(), string(league))
	}
	assert.False(t, League("superleague").IsValid())
	assert.False(t, League("").IsValid())
}

func TestClubRename(t *testing.T) {
	club, err := NewClub("Woolwich Arsenal", LeaguePremierLeague, "London", "England", 1886)
	require.NoError(t, err)
	before := club.UpdatedAt

	require.NoError(t, club.Rename("  Arsenal "))
	assert.Equal(t, "Arsenal", club.Name)
	assert.False(t, club.UpdatedAt.Before(before))

	err = club.Rename("   ")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "Arsenal", club.Name, "failed rename leaves the name alone")
}
