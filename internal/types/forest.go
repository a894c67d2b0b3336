package types

// ForestRecord holds tree cover data for a coordinate
type ForestRecord struct {
	Source          string   `json:"source"`
	TreeCover       float64  `json:"tree_cover"` // percent
	DominantSpecies []string `json:"dominant_species,omitempty"`
	ElevationMeters float64  `json:"elevation_meters"`
	Status          string   `json:"status,omitempty"`
	Err             string   `json:"error,omitempty"`
}

// TreeSpeciesRecord describes the likely tree community at a coordinate,
// with known mushroom associations per species from a static lookup table
type TreeSpeciesRecord struct {
	Source               string              `json:"source"`
	Ecoregion            string              `json:"ecoregion,omitempty"`
	ForestType           string              `json:"forest_type,omitempty"`
	DominantSpecies      []string            `json:"dominant_species,omitempty"`
	CommonSpecies        []string            `json:"common_species,omitempty"`
	Understory           []string            `json:"understory,omitempty"`
	MushroomAssociations map[string][]string `json:"mushroom_associations,omitempty"`
	ElevationMeters      float64             `json:"elevation_meters"`
	Status               string              `json:"status,omitempty"`
	Err                  string              `json:"error,omitempty"`
}
