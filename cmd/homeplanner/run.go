package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ChicagoDave/homeplanner/pkg/analytics"
	"github.com/ChicagoDave/homeplanner/pkg/config"
	"github.com/ChicagoDave/homeplanner/pkg/cost"
	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/layout"
	"github.com/ChicagoDave/homeplanner/pkg/plan"
	"github.com/ChicagoDave/homeplanner/pkg/render"
	"github.com/ChicagoDave/homeplanner/pkg/scene"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
	"github.com/ChicagoDave/homeplanner/pkg/suggest"
	"github.com/ChicagoDave/homeplanner/pkg/validation"
)

// loadSpec reads a home spec from a file, or from home.yaml when given
// a project directory.
func loadSpec(path string) (*spec.Specification, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	if info.IsDir() {
		return spec.LoadProject(path)
	}
	return spec.Load(path)
}

// loadAndValidate loads the spec and runs schema validation.
func loadAndValidate(path string) (*spec.Specification, *validation.Report, error) {
	homeSpec, err := loadSpec(path)
	if err != nil {
		return nil, nil, err
	}
	return homeSpec, validation.ValidateSchema(homeSpec), nil
}

func runValidate(path string) error {
	homeSpec, schemaReport, err := loadAndValidate(path)
	if err != nil {
		return err
	}

	if schemaReport.Valid {
		fp := footprint.Solve(homeSpec.Area)
		zones, _, zoneReport := layout.Partition(fp, homeSpec)
		schemaReport.Merge(zoneReport)

		_, analyticsReport := analytics.Resolve(homeSpec, fp, zones)
		schemaReport.Merge(analyticsReport)
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runCost(path string) error {
	homeSpec, schemaReport, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors; fix before computing cost")
	}

	fp := footprint.Solve(homeSpec.Area)
	zones, _, _ := layout.Partition(fp, homeSpec)
	metrics, analyticsReport := analytics.Resolve(homeSpec, fp, zones)

	openings := layout.PlaceOpenings(fp, zones)
	doors, windows := countOpenings(openings)

	printCostReport(cost.Estimate(homeSpec, metrics, doors, windows))

	if len(analyticsReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(analyticsReport)
	}
	return nil
}

func runPlan(path string) error {
	homeSpec, err := loadSpec(path)
	if err != nil {
		return err
	}

	sc, report, err := plan.Generate(homeSpec)
	if err != nil {
		printValidationReport(report)
		return err
	}

	fp := footprint.Solve(homeSpec.Area)
	zones, _, _ := layout.Partition(fp, homeSpec)
	metrics, analyticsReport := analytics.Resolve(homeSpec, fp, zones)
	report.Merge(analyticsReport)

	doors := len(sc.Groups.Types[scene.PrimitiveDoor])
	windows := len(sc.Groups.Types[scene.PrimitiveWindow])

	output := map[string]any{
		"scene":      sc,
		"validation": report,
		"metrics":    metrics,
		"cost":       cost.Estimate(homeSpec, metrics, doors, windows),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runRender(path, output string) error {
	homeSpec, err := loadSpec(path)
	if err != nil {
		return err
	}

	sc, report, err := plan.Generate(homeSpec)
	if err != nil {
		printValidationReport(report)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := render.New().Render(sc, f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}

func runSuggest(ctx context.Context, cfg *config.Config, topicArg, path string) error {
	topic, err := suggest.ParseTopic(topicArg)
	if err != nil {
		return err
	}

	homeSpec, schemaReport, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors")
	}

	client := suggest.NewClient(cfg.Suggest)
	if err := client.CheckConnection(ctx); err != nil {
		return err
	}

	prompt, err := suggest.BuildPrompt(topic, homeSpec)
	if err != nil {
		return err
	}
	text, err := client.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func countOpenings(openings []layout.Opening) (doors, windows int) {
	for _, o := range openings {
		switch o.Kind {
		case layout.OpeningDoor:
			doors++
		case layout.OpeningWindow:
			windows++
		}
	}
	return doors, windows
}
