package scene

import (
	"github.com/ChicagoDave/homeplanner/pkg/geo"
)

// PrimitiveType identifies the kind of primitive. Types also define the
// fixed draw order: zones, then fixtures, then openings, then labels.
type PrimitiveType string

const (
	PrimitiveZone    PrimitiveType = "zone"
	PrimitiveFixture PrimitiveType = "fixture"
	PrimitiveDoor    PrimitiveType = "door"
	PrimitiveWindow  PrimitiveType = "window"
	PrimitiveLabel   PrimitiveType = "label"
)

// drawOrder maps each primitive type to its layer index. Later layers
// draw on top of earlier ones.
var drawOrder = map[PrimitiveType]int{
	PrimitiveZone:    0,
	PrimitiveFixture: 1,
	PrimitiveDoor:    2,
	PrimitiveWindow:  2,
	PrimitiveLabel:   3,
}

// ShapeType identifies the primitive's geometry.
type ShapeType string

const (
	ShapeRect   ShapeType = "rect"
	ShapeCircle ShapeType = "circle"
	ShapeText   ShapeType = "text"
)

// Style holds semantic stroke/fill tokens for the rendering backend.
// Tokens name materials or roles, never concrete colors.
type Style struct {
	Stroke      string  `json:"stroke,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// Primitive is a single drawable element. Rect is set for rect shapes,
// Circle for circles, and At/Text for text labels. Zone back-references
// the owning zone id where one exists; the Scene owns every primitive.
type Primitive struct {
	ID     string        `json:"id"`
	Type   PrimitiveType `json:"type"`
	Shape  ShapeType     `json:"shape"`
	Rect   geo.Rect      `json:"rect,omitempty"`
	Circle geo.Circle    `json:"circle,omitempty"`
	At     geo.Point     `json:"at,omitempty"`
	Text   string        `json:"text,omitempty"`
	Style  Style         `json:"style"`
	Zone   string        `json:"zone,omitempty"`
}

// Metadata holds scene-level summary data.
type Metadata struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Area            float64  `json:"area"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	Style           string   `json:"style"`
	DegenerateZones []string `json:"degenerate_zones,omitempty"`
}

// Groups organizes primitive IDs for fast filtering.
type Groups struct {
	Zones map[string][]string        `json:"zones"`
	Types map[PrimitiveType][]string `json:"types"`
}

// Scene is the complete ordered output of one layout run. A Scene is
// produced fresh per request and shares no state with any other.
type Scene struct {
	Metadata   Metadata    `json:"metadata"`
	Primitives []Primitive `json:"primitives"`
	Groups     Groups      `json:"groups"`
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		Primitives: []Primitive{},
		Groups: Groups{
			Zones: make(map[string][]string),
			Types: make(map[PrimitiveType][]string),
		},
	}
}

// add appends a primitive and updates the group indices.
func (sc *Scene) add(p Primitive) {
	sc.Primitives = append(sc.Primitives, p)
	if p.Zone != "" {
		sc.Groups.Zones[p.Zone] = append(sc.Groups.Zones[p.Zone], p.ID)
	}
	sc.Groups.Types[p.Type] = append(sc.Groups.Types[p.Type], p.ID)
}
