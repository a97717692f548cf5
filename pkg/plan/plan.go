// Package plan wires the layout stages into one pipeline: validate the
// specification, solve the footprint, partition zones, furnish fixtures,
// place openings, and assemble the drawable scene.
package plan

import (
	"errors"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/scene"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// ErrInvalidSpec is returned when the specification fails schema
// validation. The accompanying report carries the individual findings.
var ErrInvalidSpec = errors.New("specification failed validation")

// Generate runs the full pipeline for one specification. On schema
// errors it returns a nil scene, the validation report, and
// ErrInvalidSpec. Otherwise the report aggregates warnings from every
// stage and the scene is complete and ordered.
func Generate(s *spec.Specification) (*scene.Scene, *validation.Report, error) {
	report := validation.ValidateSchema(s)
	if !report.Valid {
		return nil, report, ErrInvalidSpec
	}

	fp := footprint.Solve(s.Area)

	zones, undersized, zoneReport := layout.Partition(fp, s)
	report.Merge(zoneReport)

	fixtures, clamped, fixtureReport := layout.Furnish(zones)
	report.Merge(fixtureReport)

	openings := layout.PlaceOpenings(fp, zones)

	degenerate := append(undersized, clamped...)
	sc := scene.Assemble(s, fp, zones, fixtures, openings, degenerate)

	report.Merge(scene.Validate(sc))

	return sc, report, nil
}
