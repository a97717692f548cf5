// Package cost estimates construction cost from a specification and its
// resolved area metrics.
package cost

import (
	"math"
	"strings"

	"github.com/ChicagoDave/homeplanner/pkg/analytics"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

// Breakdown itemizes costs by category.
type Breakdown struct {
	Foundation float64 `json:"foundation"`
	Framing    float64 `json:"framing"`
	Finishes   float64 `json:"finishes"`
	Kitchen    float64 `json:"kitchen"`
	Bathrooms  float64 `json:"bathrooms"`
	Bedrooms   float64 `json:"bedrooms"`
	Openings   float64 `json:"openings"`
	Total      float64 `json:"total"`
}

// Report is the complete cost output.
type Report struct {
	Breakdown Breakdown `json:"breakdown"`

	Summary struct {
		TotalConstruction float64 `json:"total_construction"`
		PerSqFt           float64 `json:"per_sq_ft"`
		StyleFactor       float64 `json:"style_factor"`
		AnnualDebtService float64 `json:"annual_debt_service"`
		MonthlyPayment    float64 `json:"monthly_payment"`
	} `json:"summary"`
}

// Estimate computes an aggregate construction estimate. Room interiors
// take the full finish rate; circulation area takes the reduced rate.
// Door and window counts come from the layout: one entry door, up to
// six windows.
func Estimate(s *spec.Specification, m *analytics.Metrics, doors, windows int) *Report {
	report := &Report{}
	factor := styleFactor(s.Style)

	// Canvas areas scale to square feet through the footprint total.
	roomShare, circShare := 1.0, 0.0
	if m != nil && m.FootprintArea > 0 {
		roomShare = m.ZoneArea / m.FootprintArea
		circShare = m.CirculationArea / m.FootprintArea
	}
	finishes := s.Area*roomShare*FinishCostPerSqFt*factor +
		s.Area*circShare*CirculationCostPerSqFt*factor

	b := Breakdown{
		Foundation: s.Area * FoundationCostPerSqFt,
		Framing:    s.Area * FramingCostPerSqFt,
		Finishes:   finishes,
		Kitchen:    KitchenAllowance,
		Bathrooms:  float64(s.Bathrooms) * BathroomCost,
		Bedrooms:   float64(s.Bedrooms) * BedroomCost,
		Openings:   float64(doors)*DoorCost + float64(windows)*WindowCost,
	}
	b.Total = b.Foundation + b.Framing + b.Finishes + b.Kitchen + b.Bathrooms + b.Bedrooms + b.Openings
	report.Breakdown = b

	report.Summary.TotalConstruction = b.Total
	if s.Area > 0 {
		report.Summary.PerSqFt = b.Total / s.Area
	}
	report.Summary.StyleFactor = factor
	report.Summary.AnnualDebtService = computeAnnualDebtService(b.Total, MortgageRate, MortgageTermYears)
	report.Summary.MonthlyPayment = report.Summary.AnnualDebtService / 12.0

	return report
}

func styleFactor(style string) float64 {
	if f, ok := styleFactors[strings.ToLower(strings.TrimSpace(style))]; ok {
		return f
	}
	return 1.0
}

// computeAnnualDebtService uses the standard annuity formula.
// P * r(1+r)^n / ((1+r)^n - 1)
// At 0% interest, returns principal / term.
func computeAnnualDebtService(principal, rate float64, termYears int) float64 {
	if termYears <= 0 {
		return 0
	}
	if rate <= 0 {
		return principal / float64(termYears)
	}
	n := float64(termYears)
	factor := math.Pow(1+rate, n)
	return principal * rate * factor / (factor - 1)
}
