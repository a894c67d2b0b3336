package location

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/JoeLorenzoMontano/shroomie/internal/providers/nominatim"
)

type mockGeocoder struct {
	results []nominatim.SearchResult
	err     error
	calls   int
}

func (m *mockGeocoder) Search(query string) ([]nominatim.SearchResult, error) {
	m.calls++
	return m.results, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_FromCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr error
	}{
		{
			name: "valid coordinates",
			lat:  45.3311,
			lon:  -121.7113,
		},
		{
			name:    "latitude too large",
			lat:     90.1,
			lon:     0,
			wantErr: ErrInvalidLatitude,
		},
		{
			name:    "latitude too small",
			lat:     -90.1,
			lon:     0,
			wantErr: ErrInvalidLatitude,
		},
		{
			name:    "longitude too large",
			lat:     0,
			lon:     180.1,
			wantErr: ErrInvalidLongitude,
		},
		{
			name:    "longitude too small",
			lat:     0,
			lon:     -180.1,
			wantErr: ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocoder{}
			service := NewServiceWithGeocoder(geocoder, testLogger())

			got, err := service.FromCoordinates(tt.lat, tt.lon)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FromCoordinates() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromCoordinates() unexpected error = %v", err)
			}
			if got.Latitude != tt.lat || got.Longitude != tt.lon {
				t.Errorf("FromCoordinates() = %v, want (%v, %v)", got, tt.lat, tt.lon)
			}
			// Explicit coordinates must never trigger a geocoding call
			if geocoder.calls != 0 {
				t.Errorf("geocoder called %d times, want 0", geocoder.calls)
			}
		})
	}
}

func TestLocationService_FromName(t *testing.T) {
	tests := []struct {
		name        string
		results     []nominatim.SearchResult
		geocodeErr  error
		wantLat     float64
		wantLon     float64
		wantErr     bool
		wantErrIs   error
		errContains string
	}{
		{
			name: "first match wins",
			results: []nominatim.SearchResult{
				{Lat: "45.3311", Lon: "-121.7113", DisplayName: "Government Camp, Oregon"},
				{Lat: "39.9936", Lon: "-105.0897", DisplayName: "Government Camp Road"},
			},
			wantLat: 45.3311,
			wantLon: -121.7113,
		},
		{
			name:      "no matches",
			results:   nil,
			wantErr:   true,
			wantErrIs: ErrLocationNotFound,
		},
		{
			name:        "geocoder failure",
			geocodeErr:  errors.New("connection refused"),
			wantErr:     true,
			errContains: "failed to geocode",
		},
		{
			name: "unparseable coordinates",
			results: []nominatim.SearchResult{
				{Lat: "not-a-number", Lon: "-121.7113"},
			},
			wantErr:     true,
			errContains: "could not extract coordinates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &mockGeocoder{results: tt.results, err: tt.geocodeErr}
			service := NewServiceWithGeocoder(geocoder, testLogger())

			got, err := service.FromName("Government Camp, OR")

			if tt.wantErr {
				if err == nil {
					t.Fatal("FromName() expected error but got none")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Errorf("FromName() error = %v, want %v", err, tt.wantErrIs)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("FromName() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromName() unexpected error = %v", err)
			}
			if got.Latitude != tt.wantLat || got.Longitude != tt.wantLon {
				t.Errorf("FromName() = %v, want (%v, %v)", got, tt.wantLat, tt.wantLon)
			}
		})
	}
}
