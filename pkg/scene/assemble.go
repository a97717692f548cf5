package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/geo"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

// Label placement offsets relative to the footprint envelope.
const (
	titleOffset   = 5.0
	summaryOffset = 6.0
	zoneLabelDrop = 2.0
)

// Assemble concatenates the layout outputs into one ordered scene:
// the envelope and zones first, then fixtures, then openings, then text
// labels. Assembly is a pure function of its inputs; identical inputs
// produce identical scenes.
func Assemble(
	s *spec.Specification,
	fp footprint.Footprint,
	zones []layout.Zone,
	fixtures []layout.Fixture,
	openings []layout.Opening,
	degenerate []string,
) *Scene {
	sc := NewScene()
	bounds := fp.Bounds()

	sc.add(Primitive{
		ID:    "envelope",
		Type:  PrimitiveZone,
		Shape: ShapeRect,
		Rect:  bounds,
		Style: Style{Stroke: "wall", Fill: "floor", StrokeWidth: 4},
	})

	assembleZones(sc, zones)
	assembleFixtures(sc, fixtures)
	assembleOpenings(sc, openings)
	assembleLabels(sc, s, fp, zones, fixtures)

	sc.Metadata = Metadata{
		Title:           titleFor(s),
		Summary:         summaryFor(s, fp),
		Area:            s.Area,
		Width:           fp.Width,
		Height:          fp.Height,
		Bedrooms:        s.Bedrooms,
		Bathrooms:       s.Bathrooms,
		Style:           s.Style,
		DegenerateZones: normalizeIDs(degenerate),
	}

	return sc
}

func assembleZones(sc *Scene, zones []layout.Zone) {
	for _, z := range zones {
		sc.add(Primitive{
			ID:    z.ID,
			Type:  PrimitiveZone,
			Shape: ShapeRect,
			Rect:  z.Rect,
			Style: Style{Stroke: "zone-" + string(z.Kind), Fill: "room-" + string(z.Kind), StrokeWidth: 2.5},
			Zone:  z.ID,
		})
	}
}

func assembleFixtures(sc *Scene, fixtures []layout.Fixture) {
	for _, f := range fixtures {
		p := Primitive{
			ID:    f.ID,
			Type:  PrimitiveFixture,
			Style: Style{Stroke: f.Style, Fill: f.Style, StrokeWidth: 2},
			Zone:  f.ZoneID,
		}
		switch f.Shape {
		case layout.ShapeCircle:
			p.Shape = ShapeCircle
			p.Circle = f.Circle
		default:
			p.Shape = ShapeRect
			p.Rect = f.Rect
		}
		sc.add(p)
	}
}

func assembleOpenings(sc *Scene, openings []layout.Opening) {
	for _, o := range openings {
		p := Primitive{
			ID:    o.ID,
			Shape: ShapeRect,
			Rect:  o.Rect,
			Zone:  o.ZoneID,
		}
		switch o.Kind {
		case layout.OpeningDoor:
			p.Type = PrimitiveDoor
			p.Style = Style{Stroke: "door", Fill: "door", StrokeWidth: 2}
		case layout.OpeningWindow:
			p.Type = PrimitiveWindow
			p.Style = Style{Stroke: "window", Fill: "glass", StrokeWidth: 2}
		}
		sc.add(p)
	}
}

func assembleLabels(
	sc *Scene,
	s *spec.Specification,
	fp footprint.Footprint,
	zones []layout.Zone,
	fixtures []layout.Fixture,
) {
	bounds := fp.Bounds()

	for _, z := range zones {
		sc.add(Primitive{
			ID:    z.ID + "_label",
			Type:  PrimitiveLabel,
			Shape: ShapeText,
			At:    geo.Pt(z.Rect.Center().X, z.Rect.MaxY()-zoneLabelDrop),
			Text:  z.Label,
			Style: Style{Fill: "ink"},
			Zone:  z.ID,
		})
	}

	for _, f := range fixtures {
		if f.Label == "" {
			continue
		}
		sc.add(Primitive{
			ID:    f.ID + "_label",
			Type:  PrimitiveLabel,
			Shape: ShapeText,
			At:    f.Bounds().Center(),
			Text:  f.Label,
			Style: Style{Fill: "ink-small"},
			Zone:  f.ZoneID,
		})
	}

	sc.add(Primitive{
		ID:    "title",
		Type:  PrimitiveLabel,
		Shape: ShapeText,
		At:    geo.Pt(bounds.Center().X, bounds.MaxY()+titleOffset),
		Text:  titleFor(s),
		Style: Style{Fill: "ink-title"},
	})
	sc.add(Primitive{
		ID:    "summary",
		Type:  PrimitiveLabel,
		Shape: ShapeText,
		At:    geo.Pt(bounds.Center().X, bounds.Y-summaryOffset),
		Text:  summaryFor(s, fp),
		Style: Style{Fill: "ink"},
	})
}

func titleFor(s *spec.Specification) string {
	style := strings.ToUpper(strings.TrimSpace(s.Style))
	if style == "" {
		return "HOME - COMPLETE FLOOR PLAN"
	}
	return style + " HOME - COMPLETE FLOOR PLAN"
}

func summaryFor(s *spec.Specification, fp footprint.Footprint) string {
	return fmt.Sprintf(
		"Total Area: %.0f sq ft | Width: %.1fm | Length: %.1fm | Bedrooms: %d | Bathrooms: %d",
		s.Area, fp.Width, fp.Height, s.Bedrooms, s.Bathrooms,
	)
}

// normalizeIDs sorts and dedupes a degenerate-zone id list so metadata
// is stable regardless of accumulation order.
func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
