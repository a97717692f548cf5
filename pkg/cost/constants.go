package cost

// Baseline unit costs for residential construction estimation.
const (
	FoundationCostPerSqFt  = 12.0
	FramingCostPerSqFt     = 38.0
	FinishCostPerSqFt      = 55.0
	CirculationCostPerSqFt = 28.0
	KitchenAllowance       = 22000.0
	BathroomCost           = 9500.0
	BedroomCost            = 4500.0
	DoorCost               = 1800.0
	WindowCost             = 650.0

	MortgageRate      = 0.065
	MortgageTermYears = 30
)

// styleFactors scales the finish cost by architectural style. Unknown
// styles fall back to 1.0.
var styleFactors = map[string]float64{
	"modern":       1.20,
	"contemporary": 1.15,
	"colonial":     1.10,
	"victorian":    1.25,
	"craftsman":    1.12,
	"ranch":        1.00,
	"cottage":      0.95,
	"compact":      0.90,
}
