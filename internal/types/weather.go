package types

// WeatherRecord summarizes recent daily weather for a coordinate.
// Temperatures are in Celsius, precipitation in millimeters, snowfall in
// centimeters, matching the Open-Meteo daily units.
type WeatherRecord struct {
	Source          string  `json:"source"`
	Days            int     `json:"days"`
	AvgTemp         float64 `json:"avg_temp"`
	MinTemp         float64 `json:"min_temp"`
	MaxTemp         float64 `json:"max_temp"`
	TotalPrecip     float64 `json:"total_precip"`
	AvgDailyPrecip  float64 `json:"avg_daily_precip"`
	TotalRain       float64 `json:"total_rain"`
	RainyDays       int     `json:"rainy_days"`
	TotalSnow       float64 `json:"total_snow"`
	SnowyDays       int     `json:"snowy_days"`
	Timezone        string  `json:"timezone,omitempty"`
	HasTemperature  bool    `json:"has_temperature"`
	HasPrecip       bool    `json:"has_precip"`

	// Monthly holds one summary per calendar month in the window, in
	// chronological order.
	Monthly []MonthlySummary `json:"monthly,omitempty"`

	Err string `json:"error,omitempty"`
}

// MonthlySummary aggregates the daily series for one calendar month.
// Temperatures are averaged, precipitation is totaled. Nil means the month
// had no valid readings for that series.
type MonthlySummary struct {
	Month       string   `json:"month"` // YYYY-MM
	AvgMaxTemp  *float64 `json:"avg_max_temp,omitempty"`
	AvgMinTemp  *float64 `json:"avg_min_temp,omitempty"`
	AvgTemp     *float64 `json:"avg_temp,omitempty"`
	TotalPrecip *float64 `json:"total_precip,omitempty"`
	TotalRain   *float64 `json:"total_rain,omitempty"`
	TotalSnow   *float64 `json:"total_snow,omitempty"`
}
