package model

// PricePoint is a single day of the simulated price path.
// Day numbering starts at 1 and is contiguous; points are created once
// by the simulator and never mutated downstream.
type PricePoint struct {
	Day   int
	Price float64
}
