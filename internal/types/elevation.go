package types

// ElevationRecord is a single elevation reading for a coordinate
type ElevationRecord struct {
	Source string  `json:"source"`
	Meters float64 `json:"meters"`
	Err    string  `json:"error,omitempty"`
}

// TerrainRecord holds contour elevations from the Mapbox terrain tileset
type TerrainRecord struct {
	Source            string    `json:"source"`
	ContourElevations []float64 `json:"contour_elevations,omitempty"`
	Err               string    `json:"error,omitempty"`
}
