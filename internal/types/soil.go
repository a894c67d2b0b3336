package types

// Data source identifiers carried on every record so the prompt can name
// which API produced (or failed to produce) a section.
const (
	SourceOpenEPI       = "OpenEPI"
	SourceSoilGrids     = "SoilGrids"
	SourceOpenMeteo     = "Open-Meteo"
	SourceOpenElevation = "Open-Elevation"
	SourceOpenTopoData  = "OpenTopoData"
	SourceMapbox        = "Mapbox"
	SourceNominatim     = "OpenStreetMap"
	SourceEcoModel      = "USFS ecological model"
)

// SoilClassProbability is one candidate soil class with its probability in percent
type SoilClassProbability struct {
	SoilType    string  `json:"soil_type"`
	Probability float64 `json:"probability"`
}

// SoilRecord is a soil classification for a coordinate from one soil API
type SoilRecord struct {
	Source         string                 `json:"source"`
	Classification string                 `json:"classification,omitempty"`
	Probabilities  []SoilClassProbability `json:"probabilities,omitempty"`
	Err            string                 `json:"error,omitempty"`
}

// SoilPropertyDepth holds statistical values for one depth interval.
// Values are keyed by statistic name (mean, Q0.05, ...), already converted
// to target units.
type SoilPropertyDepth struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
}

// SoilPropertyLayer is one measured soil property (pH, bulk density, ...)
type SoilPropertyLayer struct {
	Name   string              `json:"name"`
	Unit   string              `json:"unit,omitempty"`
	Depths []SoilPropertyDepth `json:"depths"`
}

// SoilPropertiesRecord holds per-depth soil property measurements
type SoilPropertiesRecord struct {
	Source string              `json:"source"`
	Layers []SoilPropertyLayer `json:"layers,omitempty"`
	Err    string              `json:"error,omitempty"`
}
