package cost

import (
	"math"
	"testing"

	"github.com/ChicagoDave/homeplanner/pkg/analytics"
	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

func estimateFor(t *testing.T, s *spec.Specification) *Report {
	t.Helper()
	fp := footprint.Solve(s.Area)
	zones, _, _ := layout.Partition(fp, s)
	m, _ := analytics.Resolve(s, fp, zones)
	openings := layout.PlaceOpenings(fp, zones)
	doors, windows := 0, 0
	for _, o := range openings {
		switch o.Kind {
		case layout.OpeningDoor:
			doors++
		case layout.OpeningWindow:
			windows++
		}
	}
	return Estimate(s, m, doors, windows)
}

func TestEstimateBreakdownSums(t *testing.T) {
	r := estimateFor(t, &spec.Specification{Area: 2000, Bedrooms: 3, Bathrooms: 2, Style: "Modern"})
	b := r.Breakdown

	want := b.Foundation + b.Framing + b.Finishes + b.Kitchen + b.Bathrooms + b.Bedrooms + b.Openings
	if math.Abs(b.Total-want) > 1e-6 {
		t.Errorf("total %v does not equal sum of categories %v", b.Total, want)
	}
	for name, v := range map[string]float64{
		"foundation": b.Foundation, "framing": b.Framing, "finishes": b.Finishes,
		"kitchen": b.Kitchen, "bathrooms": b.Bathrooms, "bedrooms": b.Bedrooms,
		"openings": b.Openings,
	} {
		if v <= 0 {
			t.Errorf("category %s is not positive: %v", name, v)
		}
	}
}

func TestEstimateScalesWithArea(t *testing.T) {
	small := estimateFor(t, &spec.Specification{Area: 1200, Bedrooms: 2, Bathrooms: 1})
	large := estimateFor(t, &spec.Specification{Area: 3000, Bedrooms: 2, Bathrooms: 1})
	if large.Breakdown.Total <= small.Breakdown.Total {
		t.Errorf("larger home cheaper: %v <= %v", large.Breakdown.Total, small.Breakdown.Total)
	}
}

func TestEstimateStyleFactor(t *testing.T) {
	tests := []struct {
		style string
		want  float64
	}{
		{"Modern", 1.20},
		{"victorian", 1.25},
		{"RANCH", 1.00},
		{"brutalist", 1.00},
		{"", 1.00},
	}
	for _, tt := range tests {
		if got := styleFactor(tt.style); got != tt.want {
			t.Errorf("styleFactor(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestEstimateRoomCountsMatter(t *testing.T) {
	r := estimateFor(t, &spec.Specification{Area: 2000, Bedrooms: 4, Bathrooms: 3})
	if want := 4 * BedroomCost; r.Breakdown.Bedrooms != want {
		t.Errorf("bedrooms = %v, want %v", r.Breakdown.Bedrooms, want)
	}
	if want := 3 * BathroomCost; r.Breakdown.Bathrooms != want {
		t.Errorf("bathrooms = %v, want %v", r.Breakdown.Bathrooms, want)
	}
}

func TestComputeAnnualDebtService(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		term      int
		want      float64
		tol       float64
	}{
		{"zero term", 100000, 0.05, 0, 0, 0},
		{"zero rate", 120000, 0, 30, 4000, 1e-9},
		{"standard mortgage", 100000, 0.065, 30, 7657.74, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeAnnualDebtService(tt.principal, tt.rate, tt.term)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateMonthlyPayment(t *testing.T) {
	r := estimateFor(t, &spec.Specification{Area: 2000, Bedrooms: 3, Bathrooms: 2})
	want := r.Summary.AnnualDebtService / 12
	if math.Abs(r.Summary.MonthlyPayment-want) > 1e-9 {
		t.Errorf("monthly payment = %v, want %v", r.Summary.MonthlyPayment, want)
	}
	if r.Summary.PerSqFt <= 0 {
		t.Error("per-sq-ft cost not positive")
	}
}
