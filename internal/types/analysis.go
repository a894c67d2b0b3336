package types

// AnalysisResult aggregates whatever records were requested for one point.
// A nil record means the source was not requested; a non-nil record with Err
// set means it was requested but unavailable. The aggregator never fabricates
// data for a source that failed.
type AnalysisResult struct {
	Point     GridPoint             `json:"point"`
	Location  *LocationRecord       `json:"location,omitempty"`
	OpenEPI   *SoilRecord           `json:"openepi_soil,omitempty"`
	SoilGrids *SoilRecord           `json:"soilgrids,omitempty"`
	SoilProps *SoilPropertiesRecord `json:"soil_properties,omitempty"`
	Elevation *ElevationRecord      `json:"elevation,omitempty"`
	Topo      *ElevationRecord      `json:"topo,omitempty"`
	Terrain   *TerrainRecord        `json:"terrain,omitempty"`
	Forest    *ForestRecord         `json:"forest,omitempty"`
	Trees     *TreeSpeciesRecord    `json:"trees,omitempty"`
	Weather   *WeatherRecord        `json:"weather,omitempty"`
}
