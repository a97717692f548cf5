package layout

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/geo"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// Shape identifies a fixture's geometric primitive.
type Shape string

const (
	ShapeRect   Shape = "rect"
	ShapeCircle Shape = "circle"
)

// Fixture is a drawable furniture or built-in primitive placed inside a
// zone. Rect is set for rectangular fixtures, Circle for circular ones.
// Style is a semantic material token resolved by the rendering backend.
type Fixture struct {
	ID     string     `json:"id"`
	ZoneID string     `json:"zone_id"`
	Shape  Shape      `json:"shape"`
	Rect   geo.Rect   `json:"rect,omitempty"`
	Circle geo.Circle `json:"circle,omitempty"`
	Label  string     `json:"label,omitempty"`
	Style  string     `json:"style"`
}

// Bounds returns the fixture's axis-aligned bounding box.
func (f Fixture) Bounds() geo.Rect {
	if f.Shape == ShapeCircle {
		return f.Circle.Bounds()
	}
	return f.Rect
}

// Furnish produces the fixture catalogue for every zone. Fixture sizes
// are constants relative to the zone's corner, so furniture keeps the
// same absolute size across footprint sizes. Fixtures that would spill
// past the zone interior are clamped into it, never dropped; clamped
// zones are returned as degenerate along with a warning per zone.
func Furnish(zones []Zone) ([]Fixture, []string, *validation.Report) {
	r := validation.NewReport()
	var fixtures []Fixture
	var degenerate []string

	for _, z := range zones {
		zf, clamped := furnishZone(z)
		fixtures = append(fixtures, zf...)
		if clamped {
			degenerate = append(degenerate, z.ID)
			r.AddWarning(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("zone %s is too small for its fixture template; fixtures were clamped", z.ID),
				SpecPath:    fmt.Sprintf("zones.%s", z.ID),
				ActualValue: fmt.Sprintf("%.1f x %.1f", z.Rect.W, z.Rect.H),
			})
		}
	}

	return fixtures, degenerate, r
}

func furnishZone(z Zone) ([]Fixture, bool) {
	switch z.Kind {
	case ZoneLiving:
		return livingFixtures(z)
	case ZoneKitchen:
		return kitchenFixtures(z)
	case ZoneBedroom:
		return bedroomFixtures(z)
	case ZoneBathroom:
		return bathroomFixtures(z)
	}
	return nil, false
}

// clampRegion returns the region fixtures are clamped into. A zone too
// small to hold any clearance falls back to its own rect so clamping
// still has a positive target.
func clampRegion(z Zone) geo.Rect {
	in := z.Interior()
	if in.IsEmpty() {
		return z.Rect
	}
	return in
}

// place clamps a rectangular fixture into the zone interior and appends it.
func place(fs []Fixture, interior geo.Rect, clamped *bool, f Fixture) []Fixture {
	rect, adjusted := interior.Clamp(f.Rect)
	if adjusted {
		*clamped = true
	}
	f.Rect = rect
	return append(fs, f)
}

// placeCircle clamps a circular fixture into the zone interior and appends it.
func placeCircle(fs []Fixture, interior geo.Rect, clamped *bool, f Fixture) []Fixture {
	c := f.Circle
	if 2*c.Radius > interior.W || 2*c.Radius > interior.H {
		c.Radius = min(interior.W, interior.H) / 2
		*clamped = true
	}
	bounds, adjusted := interior.Clamp(c.Bounds())
	if adjusted {
		*clamped = true
	}
	c.Center = bounds.Center()
	f.Circle = c
	return append(fs, f)
}

func livingFixtures(z Zone) ([]Fixture, bool) {
	in := clampRegion(z)
	rx, ry := z.Rect.X, z.Rect.Y
	clamped := false
	var fs []Fixture

	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_sofa", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+2, ry+1, 8, 3), Label: "SOFA", Style: "fabric",
	})
	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_coffee_table", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+2, ry+5, 8, 2), Label: "TABLE", Style: "timber",
	})
	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_tv_unit", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+2, ry+8, 8, 2.5), Label: "TV UNIT", Style: "slate",
	})

	dining := Fixture{
		ID: z.ID + "_dining_table", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+11, ry+2, 6, 5), Label: "DINING", Style: "timber",
	}
	fs = place(fs, in, &clamped, dining)
	center := fs[len(fs)-1].Rect.Center()

	// Four chairs at fixed angular offsets around the dining table.
	chairOffsets := []geo.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1.5}, {X: 0, Y: -1.5}}
	for i, off := range chairOffsets {
		pos := center.Add(off.Scale(1.5))
		fs = place(fs, in, &clamped, Fixture{
			ID: fmt.Sprintf("%s_chair_%d", z.ID, i+1), ZoneID: z.ID, Shape: ShapeRect,
			Rect: geo.R(pos.X-0.5, pos.Y-0.5, 1, 1), Style: "fabric",
		})
	}

	return fs, clamped
}

func kitchenFixtures(z Zone) ([]Fixture, bool) {
	in := clampRegion(z)
	rx, ry := z.Rect.X, z.Rect.Y
	clamped := false
	var fs []Fixture

	stove := Fixture{
		ID: z.ID + "_stove", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+2, ry+1, 3, 3), Label: "STOVE", Style: "steel",
	}
	fs = place(fs, in, &clamped, stove)
	stoveRect := fs[len(fs)-1].Rect

	// Four burners in a 2x2 grid, positioned off the clamped stove so
	// they track it when the template shifts.
	for i := 0; i < 4; i++ {
		fs = placeCircle(fs, in, &clamped, Fixture{
			ID: fmt.Sprintf("%s_burner_%d", z.ID, i+1), ZoneID: z.ID, Shape: ShapeCircle,
			Circle: geo.Circle{
				Center: geo.Pt(
					stoveRect.X+0.75+float64(i%2)*1.5,
					stoveRect.Y+0.75+float64(i/2)*1.5,
				),
				Radius: 0.4,
			},
			Style: "steel-dark",
		})
	}

	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_fridge", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+6, ry+1, 3, 3), Label: "FRIDGE", Style: "appliance",
	})

	counter := Fixture{
		ID: z.ID + "_counter", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+10, ry+1, 4, 3), Style: "stone",
	}
	fs = place(fs, in, &clamped, counter)
	counterRect := fs[len(fs)-1].Rect

	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_sink", ZoneID: z.ID, Shape: ShapeRect,
		Rect:  geo.R(counterRect.X+1, counterRect.Y+0.5, 2, 1.5),
		Label: "SINK", Style: "porcelain",
	})

	for j := 0; j < 2; j++ {
		fs = place(fs, in, &clamped, Fixture{
			ID: fmt.Sprintf("%s_cabinet_%d", z.ID, j+1), ZoneID: z.ID, Shape: ShapeRect,
			Rect: geo.R(rx+2+float64(j)*4.5, ry+4.5, 3, 2), Style: "timber-light",
		})
	}

	return fs, clamped
}

func bedroomFixtures(z Zone) ([]Fixture, bool) {
	in := clampRegion(z)
	rx, ry := z.Rect.X, z.Rect.Y
	clamped := false
	var fs []Fixture

	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_bed", ZoneID: z.ID, Shape: ShapeRect,
		Rect:  geo.R(rx+2, ry+2, 6, 4),
		Label: fmt.Sprintf("BED %d", z.Index+1), Style: "linen",
	})
	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_wardrobe", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+9, ry+2, 3, 4), Label: "W", Style: "timber",
	})

	// Master-bedroom bias: only the first bedroom gets a desk.
	if z.Index == 0 {
		fs = place(fs, in, &clamped, Fixture{
			ID: z.ID + "_desk", ZoneID: z.ID, Shape: ShapeRect,
			Rect: geo.R(rx+13, ry+2, 3, 2), Label: "DESK", Style: "timber",
		})
	}

	return fs, clamped
}

func bathroomFixtures(z Zone) ([]Fixture, bool) {
	in := clampRegion(z)
	rx, ry := z.Rect.X, z.Rect.Y
	clamped := false
	var fs []Fixture

	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_tub", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+2, ry+1, 4, 2.5), Label: "TUB", Style: "porcelain",
	})
	fs = placeCircle(fs, in, &clamped, Fixture{
		ID: z.ID + "_toilet", ZoneID: z.ID, Shape: ShapeCircle,
		Circle: geo.Circle{Center: geo.Pt(rx+8, ry+2), Radius: 0.8},
		Label:  "T", Style: "porcelain",
	})
	fs = place(fs, in, &clamped, Fixture{
		ID: z.ID + "_sink", ZoneID: z.ID, Shape: ShapeRect,
		Rect: geo.R(rx+10, ry+1, 3, 2), Label: "SINK", Style: "appliance",
	})

	return fs, clamped
}
