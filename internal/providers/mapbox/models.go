package mapbox

// TilequeryAPIResponse is the Terrain v2 tilequery response, a GeoJSON
// feature collection of contour features near the queried point
type TilequeryAPIResponse struct {
	Type     string             `json:"type"`
	Features []TilequeryFeature `json:"features"`
}

// TilequeryFeature is one contour feature
type TilequeryFeature struct {
	Type       string              `json:"type"`
	Properties TilequeryProperties `json:"properties"`
}

// TilequeryProperties carries the contour elevation in meters
type TilequeryProperties struct {
	Ele   float64 `json:"ele"`
	Index int     `json:"index"`
}
