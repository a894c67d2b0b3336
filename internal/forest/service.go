package forest

import (
	"log/slog"

	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openmeteo"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/opentopodata"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Service estimates tree cover and tree species for a coordinate from an
// elevation reading plus the regional ecological model. The Global Forest
// Watch API sits behind an auth wall, so cover is modeled rather than
// fetched; the elevation itself still comes from a DEM API.
type Service interface {
	EstimateCover(coords types.Coords) *types.ForestRecord
	TreeSpecies(coords types.Coords) *types.TreeSpeciesRecord
}

// DEMProvider is the primary elevation source (Copernicus DEM via OpenTopoData)
type DEMProvider interface {
	GetElevation(latitude, longitude float64) (*opentopodata.LookupAPIResponse, error)
}

// FallbackElevationProvider is tried when the DEM lookup fails
type FallbackElevationProvider interface {
	GetElevation(latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

type forestService struct {
	dem      DEMProvider
	fallback FallbackElevationProvider
	logger   *slog.Logger
}

// NewService creates a forest service with real elevation providers
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProviders(opentopodata.NewClient(), openmeteo.NewElevationClient(), logger)
}

// NewServiceWithProviders creates a forest service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(dem DEMProvider, fallback FallbackElevationProvider, logger *slog.Logger) Service {
	return &forestService{
		dem:      dem,
		fallback: fallback,
		logger:   logger.With("component", "forest-service"),
	}
}

// elevation resolves the point elevation, degrading to 0 when both sources
// fail. A missing elevation only coarsens the zone estimate, it is not fatal.
func (s *forestService) elevation(coords types.Coords) float64 {
	if resp, err := s.dem.GetElevation(coords.Latitude, coords.Longitude); err == nil && len(resp.Results) > 0 {
		return resp.Results[0].Elevation
	} else if err != nil {
		s.logger.Debug("DEM elevation lookup failed, trying fallback", "error", err)
	}

	if resp, err := s.fallback.GetElevation(coords.Latitude, coords.Longitude); err == nil && len(resp.Elevation) > 0 {
		return resp.Elevation[0]
	} else if err != nil {
		s.logger.Debug("fallback elevation lookup failed", "error", err)
	}

	return 0
}

func (s *forestService) EstimateCover(coords types.Coords) *types.ForestRecord {
	elev := s.elevation(coords)

	record := &types.ForestRecord{
		Source:          types.SourceEcoModel,
		ElevationMeters: elev,
		Status:          "Estimated based on elevation and region",
	}

	// Oregon coast and western Cascades
	if coords.Latitude >= 45.0 && coords.Latitude <= 46.5 &&
		coords.Longitude >= -124.5 && coords.Longitude <= -121.5 {
		switch {
		case elev < 100: // coastal
			record.TreeCover = 70
			record.DominantSpecies = coastalZone.DominantSpecies
		case elev < 800: // low mountains
			record.TreeCover = 80
			record.DominantSpecies = lowerMontaneZone.DominantSpecies
		case elev < 1800: // mid mountains
			record.TreeCover = 70
			record.DominantSpecies = midMontaneZone.DominantSpecies
		default: // high mountains
			record.TreeCover = 30
			record.DominantSpecies = subalpineZone.DominantSpecies
		}
	}

	return record
}

func (s *forestService) TreeSpecies(coords types.Coords) *types.TreeSpeciesRecord {
	elev := s.elevation(coords)

	record := &types.TreeSpeciesRecord{
		Source:          types.SourceEcoModel,
		ElevationMeters: elev,
	}

	var zone speciesZone
	switch {
	// Oregon Coast Range and Western Cascades
	case coords.Latitude >= 43.0 && coords.Latitude <= 46.5 &&
		coords.Longitude >= -124.5 && coords.Longitude <= -121.5:
		switch {
		case elev < 150:
			zone = coastalZone
		case elev < 1000:
			zone = lowerMontaneZone
		case elev < 1500:
			zone = midMontaneZone
		default:
			zone = subalpineZone
		}
	// Eastern Oregon
	case coords.Latitude >= 42.0 && coords.Latitude <= 46.0 &&
		coords.Longitude >= -121.5 && coords.Longitude <= -117.0:
		if elev < 1200 {
			zone = blueMountainsZone
		} else {
			zone = blueMountainsSubalpineZone
		}
	default:
		record.Ecoregion = "Unknown/General Temperate Forest"
		record.Status = "Location outside of detailed dataset region"
		return record
	}

	record.Ecoregion = zone.Ecoregion
	record.ForestType = zone.ForestType
	record.DominantSpecies = zone.DominantSpecies
	record.CommonSpecies = zone.CommonSpecies
	record.Understory = zone.Understory

	associations := make(map[string][]string)
	for _, species := range append(append([]string{}, zone.DominantSpecies...), zone.CommonSpecies...) {
		if partners := mushroomAssociations(species); partners != nil {
			associations[species] = partners
		}
	}
	if len(associations) > 0 {
		record.MushroomAssociations = associations
	}

	return record
}
