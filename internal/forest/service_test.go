package forest

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openmeteo"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/opentopodata"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

type mockDEM struct {
	resp  *opentopodata.LookupAPIResponse
	err   error
	calls int
}

func (m *mockDEM) GetElevation(lat, lon float64) (*opentopodata.LookupAPIResponse, error) {
	m.calls++
	return m.resp, m.err
}

type mockFallback struct {
	resp  *openmeteo.ElevationAPIResponse
	err   error
	calls int
}

func (m *mockFallback) GetElevation(lat, lon float64) (*openmeteo.ElevationAPIResponse, error) {
	m.calls++
	return m.resp, m.err
}

func demResponse(elevation float64) *opentopodata.LookupAPIResponse {
	return &opentopodata.LookupAPIResponse{
		Results: []opentopodata.LookupResult{{Elevation: elevation}},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForestService_ElevationFallback(t *testing.T) {
	dem := &mockDEM{err: errors.New("dataset offline")}
	fallback := &mockFallback{resp: &openmeteo.ElevationAPIResponse{Elevation: []float64{950}}}
	service := NewServiceWithProviders(dem, fallback, testLogger())

	record := service.EstimateCover(types.NewCoords(45.3, -122.0))

	if dem.calls != 1 {
		t.Errorf("DEM called %d times, want 1", dem.calls)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback called %d times, want 1", fallback.calls)
	}
	if record.ElevationMeters != 950 {
		t.Errorf("ElevationMeters = %v, want 950", record.ElevationMeters)
	}
}

func TestForestService_EstimateCover(t *testing.T) {
	tests := []struct {
		name         string
		lat          float64
		lon          float64
		elevation    float64
		wantCover    float64
		wantDominant bool
	}{
		{
			name:         "coastal zone",
			lat:          45.5,
			lon:          -123.9,
			elevation:    50,
			wantCover:    70,
			wantDominant: true,
		},
		{
			name:         "lower montane",
			lat:          45.3,
			lon:          -122.0,
			elevation:    500,
			wantCover:    80,
			wantDominant: true,
		},
		{
			name:         "mid montane",
			lat:          45.3,
			lon:          -121.7,
			elevation:    1400,
			wantCover:    70,
			wantDominant: true,
		},
		{
			name:         "subalpine",
			lat:          45.37,
			lon:          -121.7,
			elevation:    2100,
			wantCover:    30,
			wantDominant: true,
		},
		{
			name:      "outside modeled region",
			lat:       51.0,
			lon:       -0.1,
			elevation: 100,
			wantCover: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dem := &mockDEM{resp: demResponse(tt.elevation)}
			service := NewServiceWithProviders(dem, &mockFallback{}, testLogger())

			record := service.EstimateCover(types.NewCoords(tt.lat, tt.lon))

			if record.TreeCover != tt.wantCover {
				t.Errorf("TreeCover = %v, want %v", record.TreeCover, tt.wantCover)
			}
			if tt.wantDominant && len(record.DominantSpecies) == 0 {
				t.Error("expected dominant species for modeled zone")
			}
			if record.ElevationMeters != tt.elevation {
				t.Errorf("ElevationMeters = %v, want %v", record.ElevationMeters, tt.elevation)
			}
		})
	}
}

func TestForestService_TreeSpecies(t *testing.T) {
	tests := []struct {
		name          string
		lat           float64
		lon           float64
		elevation     float64
		wantEcoregion string
		wantSpecies   string
	}{
		{
			name:          "western Oregon coastal",
			lat:           45.5,
			lon:           -123.9,
			elevation:     100,
			wantEcoregion: "Pacific Northwest Coastal Forest",
			wantSpecies:   "Sitka Spruce",
		},
		{
			name:          "western Oregon lower montane",
			lat:           44.5,
			lon:           -122.5,
			elevation:     600,
			wantEcoregion: "Western Cascades Lower Montane Forest",
			wantSpecies:   "Douglas Fir",
		},
		{
			name:          "eastern Oregon",
			lat:           44.5,
			lon:           -118.5,
			elevation:     900,
			wantEcoregion: "Blue Mountains Forest",
			wantSpecies:   "Ponderosa Pine",
		},
		{
			name:          "outside dataset",
			lat:           51.0,
			lon:           -0.1,
			elevation:     100,
			wantEcoregion: "Unknown/General Temperate Forest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dem := &mockDEM{resp: demResponse(tt.elevation)}
			service := NewServiceWithProviders(dem, &mockFallback{}, testLogger())

			record := service.TreeSpecies(types.NewCoords(tt.lat, tt.lon))

			if record.Ecoregion != tt.wantEcoregion {
				t.Errorf("Ecoregion = %q, want %q", record.Ecoregion, tt.wantEcoregion)
			}
			if tt.wantSpecies != "" {
				found := false
				for _, s := range record.DominantSpecies {
					if s == tt.wantSpecies {
						found = true
					}
				}
				if !found {
					t.Errorf("DominantSpecies = %v, want it to contain %q", record.DominantSpecies, tt.wantSpecies)
				}
			}
		})
	}
}

func TestForestService_MushroomAssociations(t *testing.T) {
	dem := &mockDEM{resp: demResponse(600)}
	service := NewServiceWithProviders(dem, &mockFallback{}, testLogger())

	record := service.TreeSpecies(types.NewCoords(44.5, -122.5))

	if len(record.MushroomAssociations) == 0 {
		t.Fatal("expected mushroom associations for a forested zone")
	}
	partners, ok := record.MushroomAssociations["Douglas Fir"]
	if !ok {
		t.Fatal("expected associations for Douglas Fir")
	}
	found := false
	for _, p := range partners {
		if p == "Chanterelle" {
			found = true
		}
	}
	if !found {
		t.Errorf("Douglas Fir partners = %v, want them to contain Chanterelle", partners)
	}
}
