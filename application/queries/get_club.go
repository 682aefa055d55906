package queries

import "clubgraph/pkg/utils"

// GetClubQuery fetches a single club by ID. Not cached: single-item
// reads are cheap and a stale detail view is worse than a stale list.
type GetClubQuery struct {
	ClubID string `json:"club_id" validate:"required,uuid"`
}

// Validate checks the declarative rules
func (q GetClubQuery) Validate() error {
	return utils.ValidateStruct(q)
}
