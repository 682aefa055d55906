package queries

import (
	"strings"

	"clubgraph/domain/clubs"
	"clubgraph/pkg/utils"
)

// ListClubsQuery is the filtered, paginated club search. All filter
// fields are optional; Page and PageSize must be explicit so that an
// out-of-range value is rejected rather than silently rewritten. The
// HTTP layer supplies pagination defaults for absent parameters.
type ListClubsQuery struct {
	Search        string `json:"search,omitempty" validate:"omitempty,max=100"`
	League        string `json:"league,omitempty" validate:"omitempty,oneof=premier-league la-liga serie-a bundesliga ligue-1 other"`
	City          string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country       string `json:"country,omitempty" validate:"omitempty,max=100"`
	IsActive      *bool  `json:"is_active,omitempty"`
	IsVerified    *bool  `json:"is_verified,omitempty"`
	IsFeatured    *bool  `json:"is_featured,omitempty"`
	FoundedAfter  int    `json:"founded_after,omitempty" validate:"omitempty,gte=1800"`
	FoundedBefore int    `json:"founded_before,omitempty" validate:"omitempty,gte=1800"`
	SortBy        string `json:"sort_by,omitempty" validate:"omitempty,oneof=name founded_year created_at updated_at"`
	SortOrder     string `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
	Page          int    `json:"page" validate:"gte=1"`
	PageSize      int    `json:"page_size" validate:"gte=1,lte=100"`
}

// Normalize applies sort defaults and trims free-text fields so
// equivalent requests derive equal cache keys. Pagination is left
// untouched: a zero Page or PageSize must reach Validate and fail.
func (q *ListClubsQuery) Normalize() {
	if q.SortBy == "" {
		q.SortBy = "name"
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
	q.Search = strings.TrimSpace(q.Search)
	q.City = strings.TrimSpace(q.City)
	q.Country = strings.TrimSpace(q.Country)
}

// Validate checks the declarative rules plus the date-range ordering
func (q ListClubsQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return err
	}
	if q.FoundedAfter != 0 && q.FoundedBefore != 0 && q.FoundedBefore < q.FoundedAfter {
		return errFoundedRange()
	}
	return nil
}

// ClubView is the response shape for a single club
type ClubView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	League      string `json:"league"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Stadium     string `json:"stadium,omitempty"`
	CrestURL    string `json:"crest_url,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsVerified  bool   `json:"is_verified"`
	IsFeatured  bool   `json:"is_featured"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ListClubsResult is the paginated club list payload
type ListClubsResult struct {
	Items       []ClubView `json:"items"`
	TotalCount  int        `json:"total_count"`
	Page        int        `json:"page"`
	PageSize    int        `json:"page_size"`
	TotalPages  int        `json:"total_pages"`
	HasNextPage bool       `json:"has_next_page"`
	HasPrevPage bool       `json:"has_prev_page"`
}

// NewClubView maps a domain club onto its response shape
func NewClubView(c *clubs.Club) ClubView {
	return ClubView{
		ID:          c.ID,
		Name:        c.Name,
		ShortName:   c.ShortName,
		League:      string(c.League),
		City:        c.City,
		Country:     c.Country,
		FoundedYear: c.FoundedYear,
		Stadium:     c.Stadium,
		CrestURL:    c.CrestURL,
		IsActive:    c.IsActive,
		IsVerified:  c.IsVerified,
		IsFeatured:  c.IsFeatured,
		CreatedAt:   c.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:   c.UpdatedAt.UTC().Format(timeLayout),
	}
}
