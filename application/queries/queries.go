// Package queries defines the read-side request and response shapes.
// Each query validates itself; handlers own caching and shaping.
package queries

import (
	"time"

	pkgerrors "clubgraph/pkg/errors"
)

const timeLayout = time.RFC3339

func errFoundedRange() error {
	return pkgerrors.NewValidationError("request validation failed").WithFields([]pkgerrors.FieldError{
		{Field: "founded_before", Message: "founded_before must not be before founded_after"},
	})
}
