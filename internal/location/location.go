package location

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/JoeLorenzoMontano/shroomie/internal/providers/nominatim"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Validation and resolution errors. These are fatal: resolution failures
// abort an analysis before any data-source call is made.
var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrLocationNotFound = errors.New("no coordinates found for this location")
)

// Service resolves user input into a single validated coordinate.
// It never guesses: explicit coordinates pass through unchanged, free-text
// names are geocoded to the first match or fail.
type Service interface {
	// FromCoordinates validates explicit coordinates without any network call
	FromCoordinates(latitude, longitude float64) (types.Coords, error)
	// FromName geocodes a free-text place name
	FromName(name string) (types.Coords, error)
}

// Geocoder defines the interface for the geocoding provider
type Geocoder interface {
	Search(query string) ([]nominatim.SearchResult, error)
}

type locationService struct {
	geocoder Geocoder
	logger   *slog.Logger
}

// NewService creates a location service backed by Nominatim
func NewService(userAgent string, logger *slog.Logger) Service {
	return NewServiceWithGeocoder(nominatim.NewClient(userAgent), logger)
}

// NewServiceWithGeocoder creates a location service with a custom geocoder.
// This is useful for testing with a mock provider.
func NewServiceWithGeocoder(geocoder Geocoder, logger *slog.Logger) Service {
	return &locationService{
		geocoder: geocoder,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) FromCoordinates(latitude, longitude float64) (types.Coords, error) {
	coords := types.NewCoords(latitude, longitude)
	if !coords.InRange() {
		if latitude < -90 || latitude > 90 {
			return types.Coords{}, ErrInvalidLatitude
		}
		return types.Coords{}, ErrInvalidLongitude
	}
	return coords, nil
}

func (s *locationService) FromName(name string) (types.Coords, error) {
	results, err := s.geocoder.Search(name)
	if err != nil {
		return types.Coords{}, fmt.Errorf("failed to geocode %q: %w", name, err)
	}
	if len(results) == 0 {
		return types.Coords{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	// Nominatim orders matches by relevance, take the first
	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("could not extract coordinates from geocoding result: %w", err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("could not extract coordinates from geocoding result: %w", err)
	}

	s.logger.Info("geocoded location",
		"query", name,
		"display_name", first.DisplayName,
		"latitude", lat,
		"longitude", lon,
	)

	return s.FromCoordinates(lat, lon)
}
