package mapgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

func pointResult(lat, lon float64, row, col int) types.AnalysisResult {
	return types.AnalysisResult{
		Point: types.GridPoint{Coords: types.NewCoords(lat, lon), Row: row, Col: col},
		SoilGrids: &types.SoilRecord{
			Source:         types.SourceSoilGrids,
			Classification: "Andosols",
		},
	}
}

func TestGenerate(t *testing.T) {
	html, err := Generate(pointResult(45.3311, -121.7113, 0, 0), 12)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}

	for _, want := range []string{
		"leaflet",
		"L.map('map')",
		"L.marker(",
		"45.3311",
		"-121.7113",
		"Andosols",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("map HTML missing %q", want)
		}
	}
	if !strings.Contains(html, " 12 ") {
		t.Error("map HTML missing requested zoom level")
	}
	// Single point maps have no grid boundary
	if strings.Contains(html, "L.polygon") {
		t.Error("single point map should not draw a boundary")
	}
}

func TestGenerate_DefaultZoom(t *testing.T) {
	html, err := Generate(pointResult(45.0, -123.0, 0, 0), 0)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}
	if !strings.Contains(html, " 10 ") {
		t.Error("zoom 0 should fall back to the default zoom")
	}
}

func TestGenerateGrid(t *testing.T) {
	center := types.NewCoords(45.0, -123.0)
	results := []types.AnalysisResult{
		pointResult(45.014, -123.020, 0, 0),
		pointResult(45.014, -122.980, 0, 1),
		pointResult(44.986, -123.020, 1, 0),
		pointResult(44.986, -122.980, 1, 1),
	}

	html, err := GenerateGrid(results, center, 11)
	if err != nil {
		t.Fatalf("GenerateGrid() unexpected error = %v", err)
	}

	if got := strings.Count(html, "L.marker("); got != 4 {
		t.Errorf("map HTML has %d markers, want 4", got)
	}
	for _, want := range []string{
		"Row 0, Col 0",
		"Row 1, Col 1",
		"L.polygon",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("map HTML missing %q", want)
		}
	}
}

func TestGenerateGrid_HighlightsCenter(t *testing.T) {
	center := types.NewCoords(45.0, -123.0)
	results := []types.AnalysisResult{
		pointResult(45.014, -123.0, 0, 0),
		pointResult(45.0, -123.0, 1, 0),
		pointResult(44.986, -123.0, 2, 0),
	}

	html, err := GenerateGrid(results, center, 0)
	if err != nil {
		t.Fatalf("GenerateGrid() unexpected error = %v", err)
	}
	if !strings.Contains(html, "Center, Row 1, Col 0") {
		t.Error("map HTML missing center marker tooltip")
	}
	if !strings.Contains(html, "zIndexOffset") {
		t.Error("center marker should be raised above the others")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.html")

	html, err := Generate(pointResult(45.0, -123.0, 0, 0), 0)
	if err != nil {
		t.Fatalf("Generate() unexpected error = %v", err)
	}
	if err := WriteFile(path, html); err != nil {
		t.Fatalf("WriteFile() unexpected error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading map file: %v", err)
	}
	if string(data) != html {
		t.Error("written file differs from generated HTML")
	}
}
