package openmeteo

// ElevationAPIResponse is the /v1/elevation response
type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}

// DailyHistoryAPIResponse is the /v1/forecast response restricted to the
// daily aggregates this application requests.
type DailyHistoryAPIResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone"`
	Daily     DailyHistoryData `json:"daily"`
}

// DailyHistoryData holds the per-day series. Entries are pointers because
// the API returns null for days it has no data for.
type DailyHistoryData struct {
	Time              []string   `json:"time"`
	Temperature2MMax  []*float64 `json:"temperature_2m_max"`
	Temperature2MMin  []*float64 `json:"temperature_2m_min"`
	Temperature2MMean []*float64 `json:"temperature_2m_mean"`
	PrecipitationSum  []*float64 `json:"precipitation_sum"`
	RainSum           []*float64 `json:"rain_sum"`
	SnowfallSum       []*float64 `json:"snowfall_sum"`
}
