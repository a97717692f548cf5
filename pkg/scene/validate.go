package scene

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/geo"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// Validate performs structural validation on an assembled scene.
// It checks primitive integrity, draw ordering, group index consistency,
// and fixture containment within owner zones.
func Validate(sc *Scene) *validation.Report {
	r := validation.NewReport()

	if sc == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene is nil",
		})
		return r
	}

	validatePrimitiveIDs(sc, r)
	validateDrawOrder(sc, r)
	validateGroupIndices(sc, r)
	validateContainment(sc, r)

	return r
}

func validatePrimitiveIDs(sc *Scene, r *validation.Report) {
	seen := make(map[string]int, len(sc.Primitives))
	for i, p := range sc.Primitives {
		if p.ID == "" {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("primitive at index %d has empty ID", i),
				SpecPath: fmt.Sprintf("primitives[%d].id", i),
				Expected: "non-empty string",
			})
			continue
		}
		if prev, exists := seen[p.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate primitive ID %q at indices %d and %d", p.ID, prev, i),
				SpecPath:    fmt.Sprintf("primitives[%d].id", i),
				ActualValue: p.ID,
			})
		}
		seen[p.ID] = i
	}
}

func validateDrawOrder(sc *Scene, r *validation.Report) {
	prev := -1
	for i, p := range sc.Primitives {
		layer, ok := drawOrder[p.Type]
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("primitive %q has unknown type %q", p.ID, p.Type),
				SpecPath:    fmt.Sprintf("primitives[%d].type", i),
				ActualValue: string(p.Type),
			})
			continue
		}
		if layer < prev {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("primitive %q (type %s) drawn after a higher layer", p.ID, p.Type),
				SpecPath:    fmt.Sprintf("primitives[%d]", i),
				ActualValue: string(p.Type),
				Expected:    "zones, fixtures, openings, labels in that order",
			})
		}
		prev = layer
	}
}

func validateGroupIndices(sc *Scene, r *validation.Report) {
	ids := make(map[string]bool, len(sc.Primitives))
	for _, p := range sc.Primitives {
		ids[p.ID] = true
	}

	checkGroup := func(groupType, groupName string, members []string) {
		for _, id := range members {
			if !ids[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("group %s.%s references non-existent primitive %q", groupType, groupName, id),
					SpecPath:    fmt.Sprintf("groups.%s.%s", groupType, groupName),
					ActualValue: id,
					Expected:    "existing primitive ID",
				})
			}
		}
	}

	for name, members := range sc.Groups.Zones {
		checkGroup("zones", name, members)
	}
	for name, members := range sc.Groups.Types {
		checkGroup("types", string(name), members)
	}
}

// validateContainment checks that each fixture primitive stays inside
// its owner zone's interior margin, and each zone inside the envelope.
func validateContainment(sc *Scene, r *validation.Report) {
	zoneRects := make(map[string]geo.Rect)
	var envelope geo.Rect
	for _, p := range sc.Primitives {
		if p.Type != PrimitiveZone {
			continue
		}
		if p.ID == "envelope" {
			envelope = p.Rect
			continue
		}
		zoneRects[p.ID] = p.Rect
	}

	if !envelope.IsEmpty() {
		for id, rect := range zoneRects {
			if !envelope.ContainsRect(rect) {
				r.AddWarning(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("zone %q extends beyond the envelope", id),
					SpecPath:    fmt.Sprintf("primitives.%s", id),
					ActualValue: fmt.Sprintf("%+v", rect),
				})
			}
		}
	}

	for _, p := range sc.Primitives {
		if p.Type != PrimitiveFixture {
			continue
		}
		zoneRect, ok := zoneRects[p.Zone]
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("fixture %q references unknown zone %q", p.ID, p.Zone),
				SpecPath:    fmt.Sprintf("primitives.%s.zone", p.ID),
				ActualValue: p.Zone,
			})
			continue
		}

		bounds := p.Rect
		if p.Shape == ShapeCircle {
			bounds = p.Circle.Bounds()
		}
		interior := zoneRect.Inset(layout.FixtureClearance)
		if interior.IsEmpty() {
			interior = zoneRect
		}
		if !interior.ContainsRect(bounds) {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("fixture %q escapes the interior margin of zone %q", p.ID, p.Zone),
				SpecPath:    fmt.Sprintf("primitives.%s", p.ID),
				ActualValue: fmt.Sprintf("%+v", bounds),
			})
		}
	}
}
