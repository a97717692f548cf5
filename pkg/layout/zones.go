package layout

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/geo"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// ZoneKind identifies the room type of a zone.
type ZoneKind string

const (
	ZoneLiving   ZoneKind = "living"
	ZoneKitchen  ZoneKind = "kitchen"
	ZoneBedroom  ZoneKind = "bedroom"
	ZoneBathroom ZoneKind = "bathroom"
)

// Zone is a named rectangular region representing one room. Zones are
// created by Partition and read-only afterward.
type Zone struct {
	ID    string   `json:"id"`
	Kind  ZoneKind `json:"kind"`
	Index int      `json:"index"`
	Rect  geo.Rect `json:"rect"`
	Label string   `json:"label"`
}

// Interior returns the region fixtures must stay within.
func (z Zone) Interior() geo.Rect {
	return z.Rect.Inset(FixtureClearance)
}

// Partition subdivides the footprint into the required zones.
//
// The footprint height splits into a bottom service band (living left,
// kitchen right) and a private band above it. The private band's left
// half stacks equal-height bedrooms top-to-bottom; the right half stacks
// bathrooms from the band top downward using a biased per-unit height,
// so bathrooms run larger than an even split and a tall stack may sink
// into the band margin. That overlap is flagged, never fatal.
//
// Exactly 2 + bedrooms + bathrooms zones are returned, in the order
// living, kitchen, bedrooms, bathrooms. The second return value lists
// the ids of zones below comfortable minimums.
func Partition(fp footprint.Footprint, s *spec.Specification) ([]Zone, []string, *validation.Report) {
	r := validation.NewReport()
	bounds := fp.Bounds()

	serviceH := bounds.H / ServiceBandDivisor
	privateH := bounds.H - serviceH
	privateY := bounds.Y + serviceH
	privateTop := bounds.MaxY()
	halfW := bounds.W / 2

	zones := make([]Zone, 0, 2+s.Bedrooms+s.Bathrooms)

	living := Zone{
		ID:    "living",
		Kind:  ZoneLiving,
		Rect:  geo.R(bounds.X, bounds.Y, halfW, serviceH).Inset(ZoneInset),
		Label: "LIVING ROOM / HALL",
	}
	kitchen := Zone{
		ID:    "kitchen",
		Kind:  ZoneKitchen,
		Rect:  geo.R(bounds.X+halfW, bounds.Y, bounds.W-halfW, serviceH).Inset(ZoneInset),
		Label: "KITCHEN",
	}
	zones = append(zones, living, kitchen)

	// Bedroom column: equal-height cells, index 0 on top.
	bedH := privateH / float64(s.Bedrooms)
	for i := 0; i < s.Bedrooms; i++ {
		cellY := privateTop - float64(i+1)*bedH
		zones = append(zones, Zone{
			ID:    fmt.Sprintf("bedroom_%d", i+1),
			Kind:  ZoneBedroom,
			Index: i,
			Rect:  geo.R(bounds.X, cellY, halfW, bedH).Inset(ZoneInset),
			Label: fmt.Sprintf("BEDROOM %d", i+1),
		})
	}

	// Bathroom column: biased cell height, stacked downward from an
	// initial offset below the band top.
	bathH := privateH / (float64(s.Bathrooms) + BathroomBias)
	firstBottom := privateTop - privateH/(float64(s.Bathrooms)+BathroomStackOffset)
	for i := 0; i < s.Bathrooms; i++ {
		cellY := firstBottom - float64(i)*bathH
		z := Zone{
			ID:    fmt.Sprintf("bathroom_%d", i+1),
			Kind:  ZoneBathroom,
			Index: i,
			Rect:  geo.R(bounds.X+halfW, cellY, bounds.W-halfW, bathH).Inset(ZoneInset),
			Label: fmt.Sprintf("BATHROOM %d", i+1),
		}
		zones = append(zones, z)

		if cellY < privateY {
			r.AddWarning(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("zone %s overlaps the private wing margin by %.1f units", z.ID, privateY-cellY),
				SpecPath:    "bathrooms",
				ActualValue: z.ID,
			})
		}
	}

	degenerate := flagUndersized(zones, r)
	return zones, degenerate, r
}

// flagUndersized records zones whose rect falls below the comfortable
// minimum on either side.
func flagUndersized(zones []Zone, r *validation.Report) []string {
	var ids []string
	for _, z := range zones {
		if z.Rect.W >= MinComfortableDim && z.Rect.H >= MinComfortableDim {
			continue
		}
		ids = append(ids, z.ID)
		r.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("zone %s is %.1f x %.1f, below comfortable minimum %.0f", z.ID, z.Rect.W, z.Rect.H, MinComfortableDim),
			SpecPath:    fmt.Sprintf("zones.%s", z.ID),
			ActualValue: fmt.Sprintf("%.1f x %.1f", z.Rect.W, z.Rect.H),
			Expected:    fmt.Sprintf(">= %.0f on each side", MinComfortableDim),
		})
	}
	return ids
}
