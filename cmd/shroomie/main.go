package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/JoeLorenzoMontano/shroomie/internal/analysis"
	"github.com/JoeLorenzoMontano/shroomie/internal/config"
	"github.com/JoeLorenzoMontano/shroomie/internal/location"
	"github.com/JoeLorenzoMontano/shroomie/internal/mapgen"
	"github.com/JoeLorenzoMontano/shroomie/internal/prompt"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"

	"github.com/spf13/pflag"
)

type cliFlags struct {
	lat          float64
	lon          float64
	locationName string
	labelName    string

	osm            bool
	soilGrids      bool
	openEPI        bool
	soilProperties bool
	topo           bool
	elevation      bool
	forest         bool
	trees          bool
	weather        bool
	all            bool

	topK          int
	numberClasses int
	depths        []string
	properties    []string
	values        []string
	months        int

	promptOut    bool
	mushroomType string

	grid         bool
	gridSize     int
	gridDistance float64

	mapOut    bool
	mapOutput string
	mapZoom   int
}

func parseFlags() *cliFlags {
	f := &cliFlags{}

	pflag.Float64Var(&f.lat, "lat", 0, "latitude in decimal degrees")
	pflag.Float64Var(&f.lon, "lon", 0, "longitude in decimal degrees")
	pflag.StringVar(&f.locationName, "location", "", "place name to geocode instead of --lat/--lon")
	pflag.StringVar(&f.labelName, "location-name", "", "label for the location in the generated prompt")

	pflag.BoolVar(&f.osm, "osm", false, "include reverse-geocoded location details")
	pflag.BoolVar(&f.soilGrids, "soilgrids", false, "include SoilGrids soil classification")
	pflag.BoolVar(&f.openEPI, "openepi", false, "include OpenEPI soil type")
	pflag.BoolVar(&f.soilProperties, "soil-properties", false, "include OpenEPI soil properties")
	pflag.BoolVar(&f.topo, "topo", false, "include Open-Meteo elevation (and Mapbox terrain when a token is set)")
	pflag.BoolVar(&f.elevation, "elevation", false, "include Open-Elevation elevation")
	pflag.BoolVar(&f.forest, "forest", false, "include estimated tree cover")
	pflag.BoolVar(&f.trees, "trees", false, "include tree species and mushroom associations")
	pflag.BoolVar(&f.weather, "weather", false, "include recent weather history")
	pflag.BoolVar(&f.all, "all", false, "include every data source")

	pflag.IntVar(&f.topK, "top-k", 0, "number of candidate soil types from OpenEPI")
	pflag.IntVar(&f.numberClasses, "number-classes", 0, "number of candidate classes from SoilGrids")
	pflag.StringSliceVar(&f.depths, "depths", nil, "soil property depth intervals, e.g. 0-5cm")
	pflag.StringSliceVar(&f.properties, "properties", nil, "soil property codes, e.g. bdod,phh2o")
	pflag.StringSliceVar(&f.values, "values", nil, "soil property statistics, e.g. mean,Q0.05")
	pflag.IntVar(&f.months, "months", 0, "months of weather history")

	pflag.BoolVar(&f.promptOut, "prompt", false, "print an LLM prompt instead of raw JSON")
	pflag.StringVar(&f.mushroomType, "mushroom-type", "", "target mushroom species for the prompt")

	pflag.BoolVar(&f.grid, "grid", false, "analyze a grid of points around the location")
	pflag.IntVar(&f.gridSize, "grid-size", 0, "grid dimension (N x N)")
	pflag.Float64Var(&f.gridDistance, "grid-distance", 0, "miles between adjacent grid points")

	pflag.BoolVar(&f.mapOut, "map", false, "write an interactive map of the analyzed points")
	pflag.StringVar(&f.mapOutput, "map-output", "", "map output file path")
	pflag.IntVar(&f.mapZoom, "map-zoom", 0, "initial map zoom level")

	pflag.Parse()
	return f
}

func (f *cliFlags) sources() analysis.Sources {
	if f.all {
		return analysis.AllSources()
	}
	return analysis.Sources{
		OSM:       f.osm,
		SoilGrids: f.soilGrids,
		OpenEPI:   f.openEPI,
		SoilProps: f.soilProperties,
		Elevation: f.elevation,
		Topo:      f.topo,
		Forest:    f.forest,
		Trees:     f.trees,
		Weather:   f.weather,
	}
}

// defaultRun reports whether no source or output flags were given. A default
// run queries everything and prints the raw sections followed by the prompt.
func (f *cliFlags) defaultRun() bool {
	return !f.promptOut && f.sources().None()
}

func main() {
	flags := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	locationSvc := location.NewService(cfg.NominatimUserAgent(), logger)

	// Resolve the center point
	var center types.Coords
	if flags.locationName != "" {
		center, err = locationSvc.FromName(flags.locationName)
	} else if pflag.Lookup("lat").Changed && pflag.Lookup("lon").Changed {
		center, err = locationSvc.FromCoordinates(flags.lat, flags.lon)
	} else {
		fmt.Fprintln(os.Stderr, "either --lat/--lon or --location is required")
		pflag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	analysisSvc, err := analysis.NewService(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gridSize := flags.gridSize
	if gridSize <= 0 {
		gridSize = cfg.App.GridSize
	}
	gridDistance := flags.gridDistance
	if gridDistance <= 0 {
		gridDistance = cfg.App.GridDistance
	}

	results, err := analysisSvc.Analyze(analysis.Request{
		Center:  center,
		Sources: flags.sources(),
		Options: analysis.Options{
			TopK:          flags.topK,
			NumberClasses: flags.numberClasses,
			Depths:        flags.depths,
			Properties:    flags.properties,
			Values:        flags.values,
			WeatherMonths: flags.months,
		},
		Grid:         flags.grid,
		GridSize:     gridSize,
		GridDistance: gridDistance,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !flags.promptOut {
		printResults(results)
	}
	if flags.promptOut || flags.defaultRun() {
		fmt.Print(prompt.Generate(results, prompt.Options{
			MushroomType: flags.mushroomType,
			LocationName: flags.labelName,
		}))
	}

	if flags.mapOut {
		if err := writeMap(results, center, flags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// printResults prints each result as labeled blocks of indented JSON, one
// section per populated data source.
func printResults(results []types.AnalysisResult) {
	for i, r := range results {
		if len(results) > 1 {
			fmt.Printf("=== Point %d/%d (Row %d, Col %d) ===\n", i+1, len(results), r.Point.Row, r.Point.Col)
		}
		fmt.Printf("Coordinates: %v, %v\n", r.Point.Coords.Latitude, r.Point.Coords.Longitude)

		if r.Location != nil {
			printSection("Location", r.Location)
		}
		if r.OpenEPI != nil {
			printSection("OpenEPI Soil Type", r.OpenEPI)
		}
		if r.SoilGrids != nil {
			printSection("SoilGrids Classification", r.SoilGrids)
		}
		if r.SoilProps != nil {
			printSection("Soil Properties", r.SoilProps)
		}
		if r.Elevation != nil {
			printSection("Elevation (Open-Elevation)", r.Elevation)
		}
		if r.Topo != nil {
			printSection("Elevation (Open-Meteo)", r.Topo)
		}
		if r.Terrain != nil {
			printSection("Terrain (Mapbox)", r.Terrain)
		}
		if r.Forest != nil {
			printSection("Forest Cover", r.Forest)
		}
		if r.Trees != nil {
			printSection("Tree Species", r.Trees)
		}
		if r.Weather != nil {
			printSection("Weather", r.Weather)
		}
		fmt.Println()
	}
}

func printSection(label string, record any) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Printf("%s: error: %v\n", label, err)
		return
	}
	fmt.Printf("%s:\n%s\n", label, data)
}

func writeMap(results []types.AnalysisResult, center types.Coords, flags *cliFlags) error {
	var html string
	var err error
	output := flags.mapOutput

	if flags.grid {
		html, err = mapgen.GenerateGrid(results, center, flags.mapZoom)
		if output == "" {
			output = mapgen.DefaultGridOutputFile
		}
	} else {
		html, err = mapgen.Generate(results[0], flags.mapZoom)
		if output == "" {
			output = mapgen.DefaultOutputFile
		}
	}
	if err != nil {
		return err
	}

	if err := mapgen.WriteFile(output, html); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Map written to %s\n", output)
	return nil
}
