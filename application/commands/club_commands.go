// Package commands defines the write-side requests. Each command
// validates itself; handlers own persistence, event publication, and
// cache invalidation.
package commands

import "clubgraph/pkg/utils"

// CreateClubCommand creates a new club. ClubID is assigned by the
// caller so the HTTP layer can return it without waiting on the store.
type CreateClubCommand struct {
	ClubID      string `json:"club_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ShortName   string `json:"short_name,omitempty" validate:"omitempty,max=50"`
	League      string `json:"league" validate:"required,oneof=premier-league la-liga serie-a bundesliga ligue-1 other"`
	City        string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country     string `json:"country,omitempty" validate:"omitempty,max=100"`
	FoundedYear int    `json:"founded_year,omitempty" validate:"omitempty,gte=1800"`
	Stadium     string `json:"stadium,omitempty" validate:"omitempty,max=200"`
	CrestURL    string `json:"crest_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsVerified  bool   `json:"is_verified"`
	IsFeatured  bool   `json:"is_featured"`
}

// Validate checks the declarative rules
func (c CreateClubCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// UpdateClubCommand applies a partial update; nil fields are untouched
type UpdateClubCommand struct {
	ClubID      string  `json:"club_id" validate:"required,uuid"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ShortName   *string `json:"short_name,omitempty" validate:"omitempty,max=50"`
	League      *string `json:"league,omitempty" validate:"omitempty,oneof=premier-league la-liga serie-a bundesliga ligue-1 other"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=100"`
	FoundedYear *int    `json:"founded_year,omitempty" validate:"omitempty,gte=1800"`
	Stadium     *string `json:"stadium,omitempty" validate:"omitempty,max=200"`
	CrestURL    *string `json:"crest_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsVerified  *bool   `json:"is_verified,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
}

// Validate checks the declarative rules
func (c UpdateClubCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteClubCommand removes a club and its connections
type DeleteClubCommand struct {
	ClubID string `json:"club_id" validate:"required,uuid"`
}

// Validate checks the declarative rules
func (c DeleteClubCommand) Validate() error {
	return utils.ValidateStruct(c)
}
