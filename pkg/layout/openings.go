package layout

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/geo"
)

// OpeningKind distinguishes doors from windows.
type OpeningKind string

const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// Opening is a door or window primitive on the footprint perimeter.
// ZoneID is set for doors (the zone served); Wall is set for windows
// (the exterior wall segment: left, right, or front).
type Opening struct {
	ID     string      `json:"id"`
	Kind   OpeningKind `json:"kind"`
	Rect   geo.Rect    `json:"rect"`
	ZoneID string      `json:"zone_id,omitempty"`
	Wall   string      `json:"wall,omitempty"`
}

// PlaceOpenings emits the main entry door and the exterior windows.
//
// The door sits at the midpoint of the boundary between the living zone
// and the footprint's bottom edge. Windows go at fixed offsets along the
// left, right, and front exterior walls, independent of the interior
// layout; an offset that falls past the wall extent is skipped, so at
// most six windows are emitted. This is exterior-only placement, not a
// per-room window guarantee.
func PlaceOpenings(fp footprint.Footprint, zones []Zone) []Opening {
	bounds := fp.Bounds()
	var openings []Opening

	for _, z := range zones {
		if z.Kind != ZoneLiving {
			continue
		}
		mid := z.Rect.MidBottom()
		openings = append(openings, Opening{
			ID:     "door_main",
			Kind:   OpeningDoor,
			Rect:   geo.R(mid.X-DoorWidth/2, bounds.Y, DoorWidth, DoorDepth),
			ZoneID: z.ID,
		})
		break
	}

	type windowSpot struct {
		wall   string
		center geo.Point
		extent float64 // wall length the offset must fit within
		offset float64
	}
	spots := []windowSpot{
		{"left", geo.Pt(bounds.X, bounds.Y+windowSideOffsetA), bounds.H, windowSideOffsetA},
		{"left", geo.Pt(bounds.X, bounds.Y+windowSideOffsetB), bounds.H, windowSideOffsetB},
		{"right", geo.Pt(bounds.MaxX(), bounds.Y+windowSideOffsetA), bounds.H, windowSideOffsetA},
		{"right", geo.Pt(bounds.MaxX(), bounds.Y+windowSideOffsetB), bounds.H, windowSideOffsetB},
		{"front", geo.Pt(bounds.X+windowFrontOffsetA, bounds.Y), bounds.W, windowFrontOffsetA},
		{"front", geo.Pt(bounds.X+windowFrontOffsetB, bounds.Y), bounds.W, windowFrontOffsetB},
	}

	n := 0
	for _, s := range spots {
		if s.offset+WindowSize > s.extent {
			continue
		}
		n++
		openings = append(openings, Opening{
			ID:   fmt.Sprintf("window_%d", n),
			Kind: OpeningWindow,
			Rect: geo.R(
				s.center.X-WindowSize/2,
				s.center.Y-WindowSize/2,
				WindowSize,
				WindowSize,
			),
			Wall: s.wall,
		})
	}

	return openings
}
