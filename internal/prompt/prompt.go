package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Options controls prompt framing. Date defaults to the current day; tests
// pin it so generation is fully deterministic.
type Options struct {
	MushroomType string
	LocationName string
	Date         time.Time
}

// Generate renders aggregated analysis results into an LLM prompt. It is a
// pure function of its inputs: no network calls, byte-identical output for
// identical input. Requested sections that failed render as
// "unavailable: <reason>" so the reader knows a dimension is missing;
// sections that were never requested are omitted entirely.
func Generate(results []types.AnalysisResult, opts Options) string {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("2006-01-02"))

	gridMode := len(results) > 1
	for i, result := range results {
		if gridMode {
			if i > 0 {
				b.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")
			}
			fmt.Fprintf(&b, "%s Point %d/%d (Row %d, Col %d) %s\n\n",
				strings.Repeat("=", 20), i+1, len(results),
				result.Point.Row, result.Point.Col,
				strings.Repeat("=", 20))
		}
		writePoint(&b, result, opts)
	}

	b.WriteString("\n")
	b.WriteString(closingInstruction(opts.MushroomType, gridMode))
	b.WriteString("\n")

	return b.String()
}

func writePoint(b *strings.Builder, r types.AnalysisResult, opts Options) {
	fmt.Fprintf(b, "Location Coordinates: Latitude %v, Longitude %v\n",
		r.Point.Coords.Latitude, r.Point.Coords.Longitude)

	switch {
	case r.Location != nil && r.Location.Err != "":
		fmt.Fprintf(b, "Location: unavailable: %s\n", r.Location.Err)
	case r.Location != nil && r.Location.DisplayName != "":
		fmt.Fprintf(b, "Location: %s\n", r.Location.DisplayName)
	case opts.LocationName != "":
		fmt.Fprintf(b, "Location Name: %s\n", opts.LocationName)
	}

	if opts.MushroomType != "" {
		fmt.Fprintf(b, "Target Mushroom: %s\n", opts.MushroomType)
	}

	writeTerrain(b, r)
	writeWeather(b, r.Weather)
	writeSoil(b, r)
}

func writeTerrain(b *strings.Builder, r types.AnalysisResult) {
	hasLand := r.Location != nil && r.Location.Err == "" &&
		(r.Location.LandUse != "" || r.Location.LandType != "")
	if r.Topo == nil && r.Elevation == nil && r.Terrain == nil &&
		r.Forest == nil && r.Trees == nil && !hasLand {
		return
	}

	b.WriteString("\nTerrain Information:\n")

	// Open-Meteo elevation is preferred, Open-Elevation is the fallback
	elevationAdded := false
	if r.Topo != nil {
		if r.Topo.Err == "" {
			fmt.Fprintf(b, "- Elevation (Open-Meteo): %v meters\n", r.Topo.Meters)
			elevationAdded = true
		} else {
			fmt.Fprintf(b, "- Elevation (Open-Meteo): unavailable: %s\n", r.Topo.Err)
		}
	}
	if !elevationAdded && r.Elevation != nil {
		if r.Elevation.Err == "" {
			fmt.Fprintf(b, "- Elevation (Open-Elevation): %v meters\n", r.Elevation.Meters)
		} else {
			fmt.Fprintf(b, "- Elevation (Open-Elevation): unavailable: %s\n", r.Elevation.Err)
		}
	}

	if r.Terrain != nil {
		if r.Terrain.Err == "" && len(r.Terrain.ContourElevations) > 0 {
			fmt.Fprintf(b, "- Contour Elevation (Mapbox): %v meters\n", maxFloat(r.Terrain.ContourElevations))
		} else if r.Terrain.Err != "" {
			fmt.Fprintf(b, "- Contour Elevation (Mapbox): unavailable: %s\n", r.Terrain.Err)
		}
	}

	if r.Forest != nil {
		if r.Forest.Err != "" {
			fmt.Fprintf(b, "- Tree Cover: unavailable: %s\n", r.Forest.Err)
		} else {
			fmt.Fprintf(b, "- Tree Cover: %v%%\n", r.Forest.TreeCover)
			if r.Forest.Status != "" {
				fmt.Fprintf(b, "  (Note: %s)\n", r.Forest.Status)
			}
			if len(r.Forest.DominantSpecies) > 0 {
				b.WriteString("- Dominant Tree Species (estimated):\n")
				for _, species := range r.Forest.DominantSpecies {
					fmt.Fprintf(b, "  * %s\n", species)
				}
			}
		}
	}

	if r.Trees != nil {
		writeTreeSpecies(b, r.Trees)
	}

	if r.Location != nil && r.Location.Err == "" {
		if r.Location.LandUse != "" {
			fmt.Fprintf(b, "- Land Use: %s\n", r.Location.LandUse)
		} else if r.Location.LandType != "" {
			fmt.Fprintf(b, "- Land Type: %s\n", r.Location.LandType)
		}
	}
}

func writeTreeSpecies(b *strings.Builder, trees *types.TreeSpeciesRecord) {
	if trees.Err != "" {
		fmt.Fprintf(b, "- Tree Species: unavailable: %s\n", trees.Err)
		return
	}

	if trees.Ecoregion != "" {
		fmt.Fprintf(b, "- Ecoregion: %s\n", trees.Ecoregion)
	}
	if trees.ForestType != "" {
		fmt.Fprintf(b, "- Forest Type: %s\n", trees.ForestType)
	}
	writeSpeciesList(b, "- Dominant Tree Species:", trees.DominantSpecies)
	writeSpeciesList(b, "- Common Tree Species:", trees.CommonSpecies)
	writeSpeciesList(b, "- Understory Vegetation:", trees.Understory)

	if len(trees.MushroomAssociations) > 0 {
		b.WriteString("\nMushroom-Tree Associations:\n")
		species := make([]string, 0, len(trees.MushroomAssociations))
		for s := range trees.MushroomAssociations {
			species = append(species, s)
		}
		sort.Strings(species)
		for _, s := range species {
			fmt.Fprintf(b, "- %s: %s\n", s, strings.Join(trees.MushroomAssociations[s], ", "))
		}
	}
}

func writeSpeciesList(b *strings.Builder, header string, species []string) {
	if len(species) == 0 {
		return
	}
	b.WriteString(header + "\n")
	for _, s := range species {
		fmt.Fprintf(b, "  * %s\n", s)
	}
}

func writeWeather(b *strings.Builder, w *types.WeatherRecord) {
	if w == nil {
		return
	}

	b.WriteString("\nRecent Weather Data:\n")
	if w.Err != "" {
		fmt.Fprintf(b, "- Weather: unavailable: %s\n", w.Err)
		return
	}

	if w.HasTemperature {
		fmt.Fprintf(b, "- Average Temperature: %.1f°C\n", w.AvgTemp)
		fmt.Fprintf(b, "- Minimum Temperature: %.1f°C\n", w.MinTemp)
		fmt.Fprintf(b, "- Maximum Temperature: %.1f°C\n", w.MaxTemp)
	}
	if w.HasPrecip {
		fmt.Fprintf(b, "- Total Precipitation: %.1f mm\n", w.TotalPrecip)
		fmt.Fprintf(b, "- Average Daily Precipitation: %.1f mm\n", w.AvgDailyPrecip)
	}
	if w.TotalRain > 0 {
		fmt.Fprintf(b, "- Total Rainfall: %.1f mm over %d days\n", w.TotalRain, w.RainyDays)
	}
	if w.TotalSnow > 0 {
		fmt.Fprintf(b, "- Total Snowfall: %.1f cm over %d days\n", w.TotalSnow, w.SnowyDays)
	}
}

func writeSoil(b *strings.Builder, r types.AnalysisResult) {
	if r.OpenEPI == nil && r.SoilGrids == nil && r.SoilProps == nil {
		return
	}

	b.WriteString("\nSoil Information:\n")

	if r.OpenEPI != nil {
		writeSoilClassification(b, r.OpenEPI, "OpenEPI")
	}
	if r.SoilGrids != nil {
		writeSoilClassification(b, r.SoilGrids, "SoilGrids")
	}
	if r.SoilProps != nil {
		writeSoilProperties(b, r.SoilProps)
	}
}

func writeSoilClassification(b *strings.Builder, soil *types.SoilRecord, label string) {
	if soil.Err != "" {
		fmt.Fprintf(b, "- Primary Soil Type (%s): unavailable: %s\n", label, soil.Err)
		return
	}

	fmt.Fprintf(b, "- Primary Soil Type (%s): %s\n", label, soil.Classification)
	if len(soil.Probabilities) > 0 {
		fmt.Fprintf(b, "- Soil Type Probabilities (%s):\n", label)
		for _, p := range soil.Probabilities {
			fmt.Fprintf(b, "  * %s: %v%%\n", p.SoilType, p.Probability)
		}
	}
}

func writeSoilProperties(b *strings.Builder, props *types.SoilPropertiesRecord) {
	if props.Err != "" {
		fmt.Fprintf(b, "- Soil Properties: unavailable: %s\n", props.Err)
		return
	}

	b.WriteString("- Soil Properties:\n")
	for _, layer := range props.Layers {
		fmt.Fprintf(b, "  * %s", layer.Name)
		if layer.Unit != "" {
			fmt.Fprintf(b, " (%s)", layer.Unit)
		}
		b.WriteString(":\n")

		for _, depth := range layer.Depths {
			fmt.Fprintf(b, "    - %s: ", depth.Label)

			// Sort statistic names so output is stable across runs
			stats := make([]string, 0, len(depth.Values))
			for stat := range depth.Values {
				stats = append(stats, stat)
			}
			sort.Strings(stats)

			parts := make([]string, 0, len(stats))
			for _, stat := range stats {
				parts = append(parts, fmt.Sprintf("%s=%.1f", stat, depth.Values[stat]))
			}
			b.WriteString(strings.Join(parts, ", "))
			b.WriteString("\n")
		}
	}
}

func closingInstruction(mushroomType string, gridMode bool) string {
	var b strings.Builder
	if mushroomType != "" {
		fmt.Fprintf(&b, "Based on the soil, terrain, and weather information above, please evaluate the suitability of this location for growing %s mushrooms. Consider the soil types, elevation, tree cover, temperature, precipitation, and soil moisture patterns, and how these factors might affect mushroom growth. Provide specific recommendations for cultivation techniques that would be appropriate for these environmental conditions.", mushroomType)
	} else {
		b.WriteString("Based on the soil, terrain, and weather information above, please provide an analysis of what mushroom species might grow well in this environment. Consider soil types, elevation, tree cover, temperature, precipitation patterns, and explain why certain mushrooms would thrive in these conditions.")
	}
	if gridMode {
		b.WriteString(" The points above form a grid around a central location; also compare the points by their row and column labels and summarize which areas of the grid look most promising and why.")
	}
	return b.String()
}

func maxFloat(values []float64) float64 {
	result := values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result
}
