package types

import "testing"

func TestCoords_InRange(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{name: "valid", lat: 45.3311, lon: -121.7113, want: true},
		{name: "boundary values", lat: 90, lon: -180, want: true},
		{name: "latitude too large", lat: 90.1, lon: 0, want: false},
		{name: "latitude too small", lat: -90.1, lon: 0, want: false},
		{name: "longitude too large", lat: 0, lon: 180.1, want: false},
		{name: "longitude too small", lat: 0, lon: -180.1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCoords(tt.lat, tt.lon).InRange(); got != tt.want {
				t.Errorf("InRange() = %v, want %v", got, tt.want)
			}
		})
	}
}
