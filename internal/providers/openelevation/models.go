package openelevation

// LookupAPIResponse is the Open-Elevation lookup response
type LookupAPIResponse struct {
	Results []LookupResult `json:"results"`
}

// LookupResult is one elevation reading
type LookupResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}
