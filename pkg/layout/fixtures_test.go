package layout

import (
	"strings"
	"testing"

	"github.com/ChicagoDave/homeplanner/pkg/footprint"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

func furnishDefault(t *testing.T) ([]Zone, []Fixture) {
	t.Helper()
	s := defaultSpec()
	zones, _, _ := Partition(footprint.Solve(s.Area), s)
	fixtures, _, _ := Furnish(zones)
	return zones, fixtures
}

func TestFurnishContainment(t *testing.T) {
	zones, fixtures := furnishDefault(t)
	interiors := map[string]Zone{}
	for _, z := range zones {
		interiors[z.ID] = z
	}
	for _, f := range fixtures {
		z, ok := interiors[f.ZoneID]
		if !ok {
			t.Errorf("fixture %s references unknown zone %q", f.ID, f.ZoneID)
			continue
		}
		if !z.Interior().ContainsRect(f.Bounds()) {
			t.Errorf("fixture %s bounds %+v escape interior of zone %s (%+v)",
				f.ID, f.Bounds(), z.ID, z.Interior())
		}
	}
}

func TestFurnishCatalogue(t *testing.T) {
	_, fixtures := furnishDefault(t)
	byID := map[string]Fixture{}
	for _, f := range fixtures {
		if _, dup := byID[f.ID]; dup {
			t.Errorf("duplicate fixture id %q", f.ID)
		}
		byID[f.ID] = f
	}

	// Living: sofa, coffee table, TV, dining, 4 chairs.
	for _, id := range []string{
		"living_sofa", "living_coffee_table", "living_tv_unit", "living_dining_table",
		"living_chair_1", "living_chair_2", "living_chair_3", "living_chair_4",
	} {
		if _, ok := byID[id]; !ok {
			t.Errorf("missing living fixture %q", id)
		}
	}

	// Kitchen: stove with 4 burners, fridge, counter + sink, 2 cabinets.
	for _, id := range []string{
		"kitchen_stove", "kitchen_burner_1", "kitchen_burner_4",
		"kitchen_fridge", "kitchen_counter", "kitchen_sink",
		"kitchen_cabinet_1", "kitchen_cabinet_2",
	} {
		if _, ok := byID[id]; !ok {
			t.Errorf("missing kitchen fixture %q", id)
		}
	}

	// Bathrooms: tub, circular toilet, sink.
	for _, id := range []string{"bathroom_1_tub", "bathroom_1_toilet", "bathroom_2_sink"} {
		if _, ok := byID[id]; !ok {
			t.Errorf("missing bathroom fixture %q", id)
		}
	}
	if f := byID["bathroom_1_toilet"]; f.Shape != ShapeCircle {
		t.Errorf("toilet shape = %q, want circle", f.Shape)
	}
}

func TestFurnishMasterBedroomBias(t *testing.T) {
	_, fixtures := furnishDefault(t)
	deskZones := map[string]bool{}
	for _, f := range fixtures {
		if strings.HasSuffix(f.ID, "_desk") {
			deskZones[f.ZoneID] = true
		}
	}
	if len(deskZones) != 1 || !deskZones["bedroom_1"] {
		t.Errorf("desk zones = %v, want exactly bedroom_1", deskZones)
	}
}

func TestFurnishBedLabels(t *testing.T) {
	_, fixtures := furnishDefault(t)
	labels := map[string]string{}
	for _, f := range fixtures {
		if strings.HasSuffix(f.ID, "_bed") {
			labels[f.ZoneID] = f.Label
		}
	}
	want := map[string]string{"bedroom_1": "BED 1", "bedroom_2": "BED 2", "bedroom_3": "BED 3"}
	for zone, label := range want {
		if labels[zone] != label {
			t.Errorf("bed label in %s = %q, want %q", zone, labels[zone], label)
		}
	}
}

func TestFurnishClampsInsteadOfDropping(t *testing.T) {
	// A crowded bathroom stack yields zones smaller than the template;
	// every fixture must survive, clamped into the interior.
	s := &spec.Specification{Area: 900, Bedrooms: 2, Bathrooms: 5}
	zones, _, _ := Partition(footprint.Solve(s.Area), s)
	fixtures, degenerate, r := Furnish(zones)

	perZone := map[string]int{}
	for _, f := range fixtures {
		perZone[f.ZoneID]++
	}
	for _, z := range zones {
		if z.Kind == ZoneBathroom && perZone[z.ID] != 3 {
			t.Errorf("zone %s has %d fixtures, want 3 (tub, toilet, sink)", z.ID, perZone[z.ID])
		}
	}
	if len(degenerate) == 0 {
		t.Error("expected clamped zones to be reported degenerate")
	}
	if !r.Valid {
		t.Error("clamping must produce warnings, not errors")
	}

	interiors := map[string]Zone{}
	for _, z := range zones {
		interiors[z.ID] = z
	}
	for _, f := range fixtures {
		if !interiors[f.ZoneID].Interior().ContainsRect(f.Bounds()) {
			t.Errorf("clamped fixture %s still escapes zone %s", f.ID, f.ZoneID)
		}
	}
}

func TestFurnishDeterminism(t *testing.T) {
	s := defaultSpec()
	zones, _, _ := Partition(footprint.Solve(s.Area), s)
	a, _, _ := Furnish(zones)
	b, _, _ := Furnish(zones)
	if len(a) != len(b) {
		t.Fatalf("fixture counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("fixture %d differs between runs", i)
		}
	}
}
