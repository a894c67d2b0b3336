package analysis

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/JoeLorenzoMontano/shroomie/internal/config"
	"github.com/JoeLorenzoMontano/shroomie/internal/forest"
	"github.com/JoeLorenzoMontano/shroomie/internal/grid"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/mapbox"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/nominatim"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openelevation"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openepi"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openmeteo"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/soilgrids"
	"github.com/JoeLorenzoMontano/shroomie/internal/timezone"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Sources selects which data sources to query. An unselected source is never
// invoked, not even to record an error.
type Sources struct {
	OSM       bool
	SoilGrids bool
	OpenEPI   bool
	SoilProps bool
	Elevation bool
	Topo      bool
	Forest    bool
	Trees     bool
	Weather   bool
}

// None reports whether no source is selected
func (s Sources) None() bool {
	return s == Sources{}
}

// AllSources selects every data source, the default when nothing is requested
func AllSources() Sources {
	return Sources{
		OSM:       true,
		SoilGrids: true,
		OpenEPI:   true,
		SoilProps: true,
		Elevation: true,
		Topo:      true,
		Forest:    true,
		Trees:     true,
		Weather:   true,
	}
}

// Options tunes the selected sources
type Options struct {
	TopK          int      // candidate soil classes from OpenEPI, 0 for default
	NumberClasses int      // candidate classes from SoilGrids
	Depths        []string // soil property depth intervals
	Properties    []string // soil property codes
	Values        []string // soil property statistics
	WeatherMonths int      // months of weather history
}

// Request describes one analysis run: a center point and, optionally, a grid
// of surrounding points.
type Request struct {
	Center       types.Coords
	Sources      Sources
	Options      Options
	Grid         bool
	GridSize     int
	GridDistance float64 // miles
}

// Service aggregates environmental data for one coordinate or a grid of them
type Service interface {
	Analyze(req Request) ([]types.AnalysisResult, error)
}

// Consumer-side provider interfaces so tests can substitute mocks.

type ReverseGeocoder interface {
	Reverse(latitude, longitude float64) (*nominatim.ReverseAPIResponse, error)
}

type SoilTypeProvider interface {
	GetSoilType(latitude, longitude float64, topK int) (*openepi.SoilTypeAPIResponse, error)
}

type SoilPropertiesProvider interface {
	GetSoilProperties(latitude, longitude float64, depths, properties, values []string) (*openepi.SoilPropertyAPIResponse, error)
}

type SoilClassificationProvider interface {
	GetClassification(latitude, longitude float64, numberClasses int) (*soilgrids.ClassificationAPIResponse, error)
}

type ElevationProvider interface {
	GetElevation(latitude, longitude float64) (*openelevation.LookupAPIResponse, error)
}

type TopoProvider interface {
	GetElevation(latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

type TerrainProvider interface {
	GetTerrain(latitude, longitude float64) (*mapbox.TilequeryAPIResponse, error)
}

type WeatherProvider interface {
	GetDailyHistory(latitude, longitude float64, pastDays int, timezone string) (*openmeteo.DailyHistoryAPIResponse, error)
}

// Providers bundles everything the aggregator can query. Terrain may be nil
// when no Mapbox token is configured; Timezone may be nil in tests.
type Providers struct {
	Reverse   ReverseGeocoder
	SoilType  SoilTypeProvider
	SoilProps SoilPropertiesProvider
	SoilClass SoilClassificationProvider
	Elevation ElevationProvider
	Topo      TopoProvider
	Terrain   TerrainProvider
	Weather   WeatherProvider
	Forest    forest.Service
	Timezone  timezone.Service
}

type analysisService struct {
	providers Providers
	cfg       *config.Config
	logger    *slog.Logger
}

// NewService creates an analysis service with real provider clients
func NewService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	providers := Providers{
		Reverse:   nominatim.NewClient(cfg.NominatimUserAgent()),
		SoilType:  openepi.NewClient(),
		SoilProps: openepi.NewClient(),
		SoilClass: soilgrids.NewClient(),
		Elevation: openelevation.NewClient(),
		Topo:      openmeteo.NewElevationClient(),
		Weather:   openmeteo.NewHistoryClient(cfg.Keys.OpenMeteoAPIKey),
		Forest:    forest.NewService(logger),
		Timezone:  tzSvc,
	}
	if cfg.Keys.MapboxToken != "" {
		providers.Terrain = mapbox.NewClient(cfg.Keys.MapboxToken)
	}

	return NewServiceWithProviders(providers, cfg, logger), nil
}

// NewServiceWithProviders creates an analysis service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(providers Providers, cfg *config.Config, logger *slog.Logger) Service {
	return &analysisService{
		providers: providers,
		cfg:       cfg,
		logger:    logger.With("component", "analysis-service"),
	}
}

// Analyze aggregates the requested sources for the center point or for each
// grid point. Points are independent, so they are processed by a bounded
// worker pool; results come back in row-major grid order regardless of
// completion order.
func (s *analysisService) Analyze(req Request) ([]types.AnalysisResult, error) {
	var points []types.GridPoint
	if req.Grid {
		var err error
		points, err = grid.Points(req.Center, req.GridSize, req.GridDistance)
		if err != nil {
			return nil, err
		}
		s.logger.Info("generated analysis grid",
			"size", req.GridSize,
			"distance_miles", req.GridDistance,
			"points", len(points),
		)
	} else {
		points = []types.GridPoint{{Coords: req.Center}}
	}

	sources := req.Sources
	if sources.None() {
		// Foraging defaults: query everything
		sources = AllSources()
	}

	concurrency := s.cfg.App.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]types.AnalysisResult, len(points))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, pt := range points {
		wg.Add(1)
		go func(i int, pt types.GridPoint) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.analyzePoint(pt, sources, req.Options)
		}(i, pt)
	}
	wg.Wait()

	return results, nil
}

// analyzePoint queries each requested source for one point. Source calls are
// independent and write disjoint fields, so they run in parallel with no
// locking. A failing source yields an error-tagged record, never an abort.
func (s *analysisService) analyzePoint(pt types.GridPoint, sources Sources, opts Options) types.AnalysisResult {
	result := types.AnalysisResult{Point: pt}
	lat, lon := pt.Coords.Latitude, pt.Coords.Longitude

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	if sources.OSM {
		run(func() {
			resp, err := s.providers.Reverse.Reverse(lat, lon)
			result.Location = mapLocation(resp, err)
		})
	}
	if sources.OpenEPI {
		run(func() {
			resp, err := s.providers.SoilType.GetSoilType(lat, lon, opts.TopK)
			result.OpenEPI = mapSoilType(resp, err)
		})
	}
	if sources.SoilGrids {
		numberClasses := opts.NumberClasses
		if numberClasses <= 0 {
			numberClasses = 5
		}
		run(func() {
			resp, err := s.providers.SoilClass.GetClassification(lat, lon, numberClasses)
			result.SoilGrids = mapSoilClassification(resp, err)
		})
	}
	if sources.SoilProps {
		depths, properties, values := soilPropertyDefaults(opts)
		run(func() {
			resp, err := s.providers.SoilProps.GetSoilProperties(lat, lon, depths, properties, values)
			result.SoilProps = mapSoilProperties(resp, err)
		})
	}
	if sources.Elevation {
		run(func() {
			resp, err := s.providers.Elevation.GetElevation(lat, lon)
			result.Elevation = mapOpenElevation(resp, err)
		})
	}
	if sources.Topo {
		run(func() {
			resp, err := s.providers.Topo.GetElevation(lat, lon)
			result.Topo = mapOpenMeteoElevation(resp, err)
		})
		if s.providers.Terrain != nil {
			run(func() {
				resp, err := s.providers.Terrain.GetTerrain(lat, lon)
				result.Terrain = mapTerrain(resp, err)
			})
		}
	}
	if sources.Forest {
		run(func() {
			result.Forest = s.providers.Forest.EstimateCover(pt.Coords)
		})
	}
	if sources.Trees {
		run(func() {
			result.Trees = s.providers.Forest.TreeSpecies(pt.Coords)
		})
	}
	if sources.Weather {
		months := opts.WeatherMonths
		if months <= 0 {
			months = s.cfg.App.WeatherMonths
		}
		run(func() {
			tz := "auto"
			if s.providers.Timezone != nil {
				if name, err := s.providers.Timezone.GetTimezone(lat, lon); err == nil {
					tz = name
				} else {
					s.logger.Debug("timezone lookup failed, using auto", "error", err)
				}
			}
			resp, err := s.providers.Weather.GetDailyHistory(lat, lon, 30*months, tz)
			result.Weather = mapWeatherHistory(resp, err)
		})
	}

	wg.Wait()
	return result
}

func soilPropertyDefaults(opts Options) (depths, properties, values []string) {
	depths, properties, values = opts.Depths, opts.Properties, opts.Values
	if len(depths) == 0 {
		depths = []string{"0-5cm"}
	}
	if len(properties) == 0 {
		properties = []string{"bdod", "phh2o"}
	}
	if len(values) == 0 {
		values = []string{"mean", "Q0.05"}
	}
	return depths, properties, values
}
