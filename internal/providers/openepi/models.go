package openepi

// SoilTypeAPIResponse is the GeoJSON feature returned by /soil/type
type SoilTypeAPIResponse struct {
	Type       string             `json:"type"`
	Properties SoilTypeProperties `json:"properties"`
}

// SoilTypeProperties holds the classification and its candidate classes
type SoilTypeProperties struct {
	MostProbableSoilType string                `json:"most_probable_soil_type"`
	Probabilities        []SoilTypeProbability `json:"probabilities"`
}

// SoilTypeProbability is one candidate soil class with its probability
type SoilTypeProbability struct {
	SoilType    string  `json:"soil_type"`
	Probability float64 `json:"probability"`
}

// SoilPropertyAPIResponse is the GeoJSON feature returned by /soil/property
type SoilPropertyAPIResponse struct {
	Type       string                 `json:"type"`
	Properties SoilPropertyProperties `json:"properties"`
}

// SoilPropertyProperties wraps the requested property layers
type SoilPropertyProperties struct {
	Layers []SoilPropertyLayer `json:"layers"`
}

// SoilPropertyLayer is one soil property with per-depth statistics
type SoilPropertyLayer struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	UnitMeasure struct {
		ConversionFactor float64 `json:"conversion_factor"`
		MappedUnits      string  `json:"mapped_units"`
		TargetUnits      string  `json:"target_units"`
	} `json:"unit_measure"`
	Depths []struct {
		Label  string             `json:"label"`
		Values map[string]float64 `json:"values"`
	} `json:"depths"`
}
