package main

import (
	"fmt"

	"github.com/ChicagoDave/homeplanner/pkg/cost"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printCostReport(r *cost.Report) {
	fmt.Println("Construction Cost Estimate")
	fmt.Println("==========================")
	fmt.Println()

	rows := []struct {
		label string
		value float64
	}{
		{"Foundation", r.Breakdown.Foundation},
		{"Framing", r.Breakdown.Framing},
		{"Finishes", r.Breakdown.Finishes},
		{"Kitchen", r.Breakdown.Kitchen},
		{"Bathrooms", r.Breakdown.Bathrooms},
		{"Bedrooms", r.Breakdown.Bedrooms},
		{"Openings", r.Breakdown.Openings},
		{"TOTAL", r.Breakdown.Total},
	}
	for _, row := range rows {
		fmt.Printf("  %-12s $%s\n", row.label, formatMoney(row.value))
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Cost per sq ft:       $%.0f\n", r.Summary.PerSqFt)
	fmt.Printf("  Style factor:         %.2f\n", r.Summary.StyleFactor)
	fmt.Printf("  Annual debt service:  $%s\n", formatMoney(r.Summary.AnnualDebtService))
	fmt.Printf("  Monthly payment:      $%s\n", formatMoney(r.Summary.MonthlyPayment))
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
