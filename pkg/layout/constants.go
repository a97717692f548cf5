package layout

// Partitioning constants. The subdivision rule is stated once here so it
// can be tested in isolation rather than scattered through the drawing
// code.
const (
	// ServiceBandDivisor sets the height of the bottom service band
	// (living + kitchen) as footprint height / divisor.
	ServiceBandDivisor = 2.5

	// ZoneInset shrinks every zone cell so adjacent zones never share a
	// coincident rendered edge while staying logically adjacent.
	ZoneInset = 1.0

	// FixtureClearance shrinks a zone's rect to the interior region that
	// fixtures must stay within.
	FixtureClearance = 1.0

	// BathroomBias enlarges bathroom cells: per-unit stack height is
	// privateHeight / (count + BathroomBias) instead of an even split.
	BathroomBias = 1.5

	// BathroomStackOffset positions the first bathroom's bottom edge at
	// privateHeight / (count + BathroomStackOffset) below the band top.
	BathroomStackOffset = 1.0

	// MinComfortableDim is the smallest zone side length considered
	// livable. Smaller zones still lay out but are flagged degenerate.
	MinComfortableDim = 6.0
)

// Opening constants.
const (
	DoorWidth  = 2.0
	DoorDepth  = 0.5
	WindowSize = 0.6

	// Window offsets along the exterior walls, measured from the
	// footprint origin corner. Side-wall offsets run up the wall; front
	// offsets run along the bottom edge.
	windowSideOffsetA  = 15.0
	windowSideOffsetB  = 35.0
	windowFrontOffsetA = 20.0
	windowFrontOffsetB = 40.0
)
