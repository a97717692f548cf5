package validation

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

// Practical upper bounds beyond which the partitioning squeezes rooms
// below livable sizes. Exceeding them is a warning, not an error.
const (
	maxComfortableBedrooms  = 8
	maxComfortableBathrooms = 5
)

// ValidateSchema performs schema validation on a home specification.
// It checks structural correctness before any geometry is computed;
// an invalid report means no scene may be produced.
func ValidateSchema(s *spec.Specification) *Report {
	r := NewReport()

	validateArea(s, r)
	validateRoomCounts(s, r)

	return r
}

func validateArea(s *spec.Specification, r *Report) {
	if s.Area <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("area %.1f must be greater than 0", s.Area),
			SpecPath:    "area",
			ActualValue: s.Area,
			Expected:    "> 0",
		})
	}
}

func validateRoomCounts(s *spec.Specification, r *Report) {
	if s.Bedrooms < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("bedrooms %d must be at least 1", s.Bedrooms),
			SpecPath:    "bedrooms",
			ActualValue: s.Bedrooms,
			Expected:    ">= 1",
		})
	}
	if s.Bathrooms < 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("bathrooms %d must be at least 1", s.Bathrooms),
			SpecPath:    "bathrooms",
			ActualValue: s.Bathrooms,
			Expected:    ">= 1",
		})
	}

	if s.Bedrooms > maxComfortableBedrooms {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%d bedrooms will produce very narrow rooms", s.Bedrooms),
			SpecPath:    "bedrooms",
			ActualValue: s.Bedrooms,
			Expected:    fmt.Sprintf("<= %d", maxComfortableBedrooms),
			Suggestions: []string{"increase area or reduce bedroom count"},
		})
	}
	if s.Bathrooms > maxComfortableBathrooms {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%d bathrooms will overlap the private wing margin", s.Bathrooms),
			SpecPath:    "bathrooms",
			ActualValue: s.Bathrooms,
			Expected:    fmt.Sprintf("<= %d", maxComfortableBathrooms),
		})
	}
}
