package queries

import (
	"clubgraph/domain/clubs"
	"clubgraph/pkg/utils"
)

// ListClubConnectionsQuery lists the connections touching one club.
// Page and PageSize must be explicit; the HTTP layer supplies defaults
// for absent parameters.
type ListClubConnectionsQuery struct {
	ClubID   string `json:"club_id" validate:"required,uuid"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=rivalry friendship partnership ownership player-transfer shared-stadium"`
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"page_size" validate:"gte=1,lte=100"`
}

// Validate checks the declarative rules
func (q ListClubConnectionsQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ConnectionView is the response shape for a single connection
type ConnectionView struct {
	ID               string  `json:"id"`
	SourceClubID     string  `json:"source_club_id"`
	TargetClubID     string  `json:"target_club_id"`
	Type             string  `json:"type"`
	Strength         int     `json:"strength"`
	ReliabilityScore float64 `json:"reliability_score"`
	IsVerified       bool    `json:"is_verified"`
	Notes            string  `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ListConnectionsResult is the paginated connection list payload
type ListConnectionsResult struct {
	Items       []ConnectionView `json:"items"`
	TotalCount  int              `json:"total_count"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalPages  int              `json:"total_pages"`
	HasNextPage bool             `json:"has_next_page"`
	HasPrevPage bool             `json:"has_prev_page"`
}

// NewConnectionView maps a domain connection onto its response shape
func NewConnectionView(c *clubs.Connection) ConnectionView {
	return ConnectionView{
		ID:               c.ID,
		SourceClubID:     c.SourceClubID,
		TargetClubID:     c.TargetClubID,
		Type:             string(c.Type),
		Strength:         c.Strength,
		ReliabilityScore: c.ReliabilityScore,
		IsVerified:       c.IsVerified,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:        c.UpdatedAt.UTC().Format(timeLayout),
	}
}
