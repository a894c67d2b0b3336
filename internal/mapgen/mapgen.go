package mapgen

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Renders analysis results onto a self-contained Leaflet map, the same kind
// of single-file HTML artifact folium produces. Marker popups carry a short
// summary of the point's soil data.

const (
	DefaultZoom           = 10
	DefaultOutputFile     = "location_map.html"
	DefaultGridOutputFile = "grid_location_map.html"
)

type marker struct {
	Lat     float64
	Lon     float64
	Popup   string
	Tooltip string
	Center  bool
}

type page struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   []marker
	Boundary  [][2]float64
}

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
	maxZoom: 19,
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{range .Markers}}
L.marker([{{.Lat}}, {{.Lon}}]{{if .Center}}, {zIndexOffset: 1000}{{end}}).addTo(map)
	.bindPopup({{.Popup}}, {maxWidth: 300})
	.bindTooltip({{.Tooltip}});
{{end}}
{{if .Boundary}}
L.polygon({{.Boundary}}, {color: 'green', weight: 1, fill: false}).addTo(map);
{{end}}
</script>
</body>
</html>
`))

// Generate renders a single-point map with a popup summarizing the result
func Generate(result types.AnalysisResult, zoom int) (string, error) {
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	p := page{
		Title:     "Location Map",
		CenterLat: result.Point.Coords.Latitude,
		CenterLon: result.Point.Coords.Longitude,
		Zoom:      zoom,
		Markers: []marker{{
			Lat:     result.Point.Coords.Latitude,
			Lon:     result.Point.Coords.Longitude,
			Popup:   popupContent(result),
			Tooltip: "Click for soil data",
			Center:  true,
		}},
	}

	return render(p)
}

// GenerateGrid renders every grid point with a row/column tooltip and a
// boundary around the sampled area
func GenerateGrid(results []types.AnalysisResult, center types.Coords, zoom int) (string, error) {
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	p := page{
		Title:     "Grid Analysis Map",
		CenterLat: center.Latitude,
		CenterLon: center.Longitude,
		Zoom:      zoom,
	}

	minLat, maxLat := center.Latitude, center.Latitude
	minLon, maxLon := center.Longitude, center.Longitude
	for _, r := range results {
		lat, lon := r.Point.Coords.Latitude, r.Point.Coords.Longitude
		isCenter := lat == center.Latitude && lon == center.Longitude
		tooltip := fmt.Sprintf("Row %d, Col %d", r.Point.Row, r.Point.Col)
		if isCenter {
			tooltip = "Center, " + tooltip
		}
		p.Markers = append(p.Markers, marker{
			Lat:     lat,
			Lon:     lon,
			Popup:   popupContent(r),
			Tooltip: tooltip,
			Center:  isCenter,
		})
		minLat, maxLat = min(minLat, lat), max(maxLat, lat)
		minLon, maxLon = min(minLon, lon), max(maxLon, lon)
	}

	p.Boundary = [][2]float64{
		{maxLat, minLon},
		{maxLat, maxLon},
		{minLat, maxLon},
		{minLat, minLon},
	}

	return render(p)
}

// WriteFile writes a generated map to disk
func WriteFile(path, html string) error {
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write map file: %w", err)
	}
	return nil
}

func render(p page) (string, error) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, p); err != nil {
		return "", fmt.Errorf("failed to render map template: %w", err)
	}
	return b.String(), nil
}

// popupContent builds the marker popup. Lines are joined with <br>; the
// template's JS string escaping keeps any user-influenced content inert.
func popupContent(r types.AnalysisResult) string {
	lines := []string{
		fmt.Sprintf("Coordinates: %v, %v", r.Point.Coords.Latitude, r.Point.Coords.Longitude),
	}

	if r.Location != nil && r.Location.Err == "" && r.Location.DisplayName != "" {
		lines = append(lines, r.Location.DisplayName)
	}

	if r.SoilGrids != nil && r.SoilGrids.Err == "" {
		lines = append(lines, fmt.Sprintf("Soil Type (SoilGrids): %s", r.SoilGrids.Classification))
	}
	if r.OpenEPI != nil && r.OpenEPI.Err == "" {
		lines = append(lines, fmt.Sprintf("Soil Type (OpenEPI): %s", r.OpenEPI.Classification))
	}

	if r.SoilProps != nil && r.SoilProps.Err == "" {
		lines = append(lines, "Soil Properties:")
		for _, layer := range r.SoilProps.Layers {
			name := layer.Name
			if layer.Unit != "" {
				name = fmt.Sprintf("%s (%s)", name, layer.Unit)
			}
			for _, depth := range layer.Depths {
				lines = append(lines, fmt.Sprintf("%s %s: %d values", name, depth.Label, len(depth.Values)))
			}
		}
	}

	return strings.Join(lines, "<br>")
}
