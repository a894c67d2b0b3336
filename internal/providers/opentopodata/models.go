package opentopodata

// LookupAPIResponse is the OpenTopoData lookup response for the
// Copernicus DEM 30m dataset
type LookupAPIResponse struct {
	Status  string         `json:"status"`
	Results []LookupResult `json:"results"`
}

// LookupResult is one elevation reading
type LookupResult struct {
	Elevation float64 `json:"elevation"`
	Location  struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Dataset string `json:"dataset"`
}
