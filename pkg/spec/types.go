package spec

// Specification is the top-level input for a residential floor plan.
// Area is in square feet; counts are whole rooms. Style is a display
// label only and never influences geometry.
type Specification struct {
	Area      float64 `yaml:"area" json:"area"`
	Bedrooms  int     `yaml:"bedrooms" json:"bedrooms"`
	Bathrooms int     `yaml:"bathrooms" json:"bathrooms"`
	Style     string  `yaml:"style" json:"style"`
}
