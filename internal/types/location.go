package types

// LocationRecord contains human-readable location metadata from reverse geocoding
type LocationRecord struct {
	Source      string `json:"source"`
	DisplayName string `json:"display_name,omitempty"`
	County      string `json:"county,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	LandUse     string `json:"land_use,omitempty"`
	LandType    string `json:"land_type,omitempty"`
	Err         string `json:"error,omitempty"`
}
