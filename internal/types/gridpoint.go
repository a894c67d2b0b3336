package types

// GridPoint is a coordinate plus its position in an NxN analysis grid.
// Row 0 is the northernmost row, column 0 the westernmost column.
type GridPoint struct {
	Coords Coords `json:"coords"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
