package clubs

import (
	"strings"
	"time"

	pkgerrors "clubgraph/pkg/errors"

	"github.com/google/uuid"
)

// League identifies the competition a club belongs to
type League string

const (
	LeaguePremierLeague League = "premier-league"
	LeagueLaLiga        League = "la-liga"
	LeagueSerieA        League = "serie-a"
	LeagueBundesliga    League = "bundesliga"
	LeagueLigue1        League = "ligue-1"
	LeagueOther         League = "other"
)

// Leagues lists every valid league value in display order.
var Leagues = []League{
	LeaguePremierLeague,
	LeagueLaLiga,
	LeagueSerieA,
	LeagueBundesliga,
	LeagueLigue1,
	LeagueOther,
}

// IsValid reports whether the league is a known value
func (l League) IsValid() bool {
	for _, known := range Leagues {
		if l == known {
			return true
		}
	}
	return false
}

// Club represents a football club managed through the admin UI
type Club struct {
	ID          string
	Name        string
	ShortName   string
	League      League
	City        string
	Country     string
	FoundedYear int
	Stadium     string
	CrestURL    string
	IsActive    bool
	IsVerified  bool
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewClub creates a club with business rule validation
func NewClub(name string, league League, city, country string, foundedYear int) (*Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.NewValidationError("club name cannot be empty")
	}
	if !league.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown league: " + string(league))
	}
	if foundedYear != 0 && (foundedYear < 1800 || foundedYear > time.Now().Year()) {
		return nil, pkgerrors.NewValidationError("founded year is out of range")
	}

	now := time.Now()
	return &Club{
		ID:          uuid.New().String(),
		Name:        name,
		League:      league,
		City:        strings.TrimSpace(city),
		Country:     strings.TrimSpace(country),
		FoundedYear: foundedYear,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Touch bumps the update timestamp after a mutation
func (c *Club) Touch() {
	c.UpdatedAt = time.Now()
}

// Rename changes the club name, rejecting empty values
func (c *Club) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return pkgerrors.NewValidationError("club name cannot be empty")
	}
	c.Name = name
	c.Touch()
	return nil
}
