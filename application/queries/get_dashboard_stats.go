package queries

// GetDashboardStatsQuery has no parameters; the dashboard aggregates
// are global, so the derived cache key is the bare namespace.
type GetDashboardStatsQuery struct{}

// Validate is trivially satisfied
func (q GetDashboardStatsQuery) Validate() error {
	return nil
}

// DashboardStatsResult is the admin dashboard aggregate payload
type DashboardStatsResult struct {
	TotalClubs          int            `json:"total_clubs"`
	ActiveClubs         int            `json:"active_clubs"`
	VerifiedClubs       int            `json:"verified_clubs"`
	FeaturedClubs       int            `json:"featured_clubs"`
	TotalConnections    int            `json:"total_connections"`
	VerifiedConnections int            `json:"verified_connections"`
	ClubsByLeague       map[string]int `json:"clubs_by_league"`
	ConnectionsByType   map[string]int `json:"connections_by_type"`
	AverageStrength     float64        `json:"average_strength"`
}
