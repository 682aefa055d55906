package commands

import (
	pkgerrors "clubgraph/pkg/errors"
	"clubgraph/pkg/utils"
)

// CreateConnectionCommand creates a typed relationship between two clubs
type CreateConnectionCommand struct {
	ConnectionID     string  `json:"connection_id" validate:"required,uuid"`
	SourceClubID     string  `json:"source_club_id" validate:"required,uuid"`
	TargetClubID     string  `json:"target_club_id" validate:"required,uuid"`
	Type             string  `json:"type" validate:"required,oneof=rivalry friendship partnership ownership player-transfer shared-stadium"`
	Strength         int     `json:"strength" validate:"gte=1,lte=10"`
	ReliabilityScore float64 `json:"reliability_score" validate:"gte=0,lte=1"`
	IsVerified       bool    `json:"is_verified"`
	Notes            string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Validate checks the declarative rules plus endpoint distinctness
func (c CreateConnectionCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}
	if c.SourceClubID == c.TargetClubID {
		return pkgerrors.NewValidationError("a club cannot be connected to itself")
	}
	return nil
}

// UpdateConnectionCommand applies a partial update; nil fields are untouched
type UpdateConnectionCommand struct {
	ConnectionID     string   `json:"connection_id" validate:"required,uuid"`
	Type             *string  `json:"type,omitempty" validate:"omitempty,oneof=rivalry friendship partnership ownership player-transfer shared-stadium"`
	Strength         *int     `json:"strength,omitempty" validate:"omitempty,gte=1,lte=10"`
	ReliabilityScore *float64 `json:"reliability_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsVerified       *bool    `json:"is_verified,omitempty"`
	Notes            *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Validate checks the declarative rules
func (c UpdateConnectionCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteConnectionCommand removes a connection
type DeleteConnectionCommand struct {
	ConnectionID string `json:"connection_id" validate:"required,uuid"`
}

// Validate checks the declarative rules
func (c DeleteConnectionCommand) Validate() error {
	return utils.ValidateStruct(c)
}
