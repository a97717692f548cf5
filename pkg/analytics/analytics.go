// Package analytics derives area and comfort metrics from a partitioned
// layout. Metrics feed the cost estimator and the report endpoints.
package analytics

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// Comfort thresholds for analytical validation.
const (
	minAreaPerBedroom  = 250.0 // sq ft of total area per bedroom
	minUsableRatio     = 0.55  // usable interior / footprint
	maxBathroomsPerBed = 1.5
)

// ZoneMetrics holds the per-zone area breakdown in canvas units.
type ZoneMetrics struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Area   float64 `json:"area"`
	Usable float64 `json:"usable"`
	Share  float64 `json:"share"`
}

// Metrics is the resolved analytical output for one layout.
type Metrics struct {
	FootprintArea   float64       `json:"footprint_area"`
	ZoneArea        float64       `json:"zone_area"`
	UsableArea      float64       `json:"usable_area"`
	CirculationArea float64       `json:"circulation_area"`
	UsableRatio     float64       `json:"usable_ratio"`
	AreaPerBedroom  float64       `json:"area_per_bedroom"`
	Zones           []ZoneMetrics `json:"zones"`
}

// Resolve computes area metrics for a partitioned footprint and runs
// analytical validation against the comfort thresholds. Findings are
// warnings; a cramped home is still a home.
func Resolve(s *spec.Specification, fp footprint.Footprint, zones []layout.Zone) (*Metrics, *validation.Report) {
	report := validation.NewReport()
	bounds := fp.Bounds()

	m := &Metrics{
		FootprintArea: bounds.Area(),
		Zones:         make([]ZoneMetrics, 0, len(zones)),
	}

	for _, z := range zones {
		zm := ZoneMetrics{
			ID:     z.ID,
			Kind:   string(z.Kind),
			Area:   z.Rect.Area(),
			Usable: z.Interior().Area(),
		}
		if m.FootprintArea > 0 {
			zm.Share = zm.Area / m.FootprintArea
		}
		m.ZoneArea += zm.Area
		m.UsableArea += zm.Usable
		m.Zones = append(m.Zones, zm)
	}

	m.CirculationArea = m.FootprintArea - m.ZoneArea
	if m.FootprintArea > 0 {
		m.UsableRatio = m.UsableArea / m.FootprintArea
	}
	if s.Bedrooms > 0 {
		m.AreaPerBedroom = s.Area / float64(s.Bedrooms)
	}

	validateAnalytical(s, m, report)

	return m, report
}

func validateAnalytical(s *spec.Specification, m *Metrics, report *validation.Report) {
	if s.Bedrooms > 0 && m.AreaPerBedroom < minAreaPerBedroom {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("only %.0f sq ft per bedroom; rooms will be cramped", m.AreaPerBedroom),
			SpecPath:    "bedrooms",
			ActualValue: m.AreaPerBedroom,
			Expected:    fmt.Sprintf(">= %.0f sq ft per bedroom", minAreaPerBedroom),
			Suggestions: []string{"increase total area", "reduce bedroom count"},
		})
	}

	if m.UsableRatio > 0 && m.UsableRatio < minUsableRatio {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("usable interior is only %.0f%% of the footprint", m.UsableRatio*100),
			SpecPath:    "area",
			ActualValue: m.UsableRatio,
			Expected:    fmt.Sprintf(">= %.0f%%", minUsableRatio*100),
		})
	}

	if s.Bedrooms > 0 {
		ratio := float64(s.Bathrooms) / float64(s.Bedrooms)
		if ratio > maxBathroomsPerBed {
			report.AddInfo(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("%.1f bathrooms per bedroom is unusually high", ratio),
				SpecPath:    "bathrooms",
				ActualValue: ratio,
			})
		}
	}
}
