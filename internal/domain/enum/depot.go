package enum

// Depot identifies one of the two fixed physical stock locations.
// DepotA is the main shop floor and acts as the adjustment sink whenever
// the split and the canonical quantity disagree; DepotB is the reserve store.
type Depot string

const (
	DepotA Depot = "A"
	DepotB Depot = "B"
)
