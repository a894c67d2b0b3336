//go:build integration

package openepi

import (
	"encoding/json"
	"testing"
)

func TestClient_GetSoilType_Integration(t *testing.T) {
	// Test coordinates: Mt. Hood National Forest area
	lat := 45.3311
	lon := -121.7113

	client := NewClient()

	t.Logf("Making API call to OpenEPI Soil Type API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetSoilType(lat, lon, 3)
	if err != nil {
		t.Fatalf("Failed to get soil type: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	// Verify response structure
	if resp == nil {
		t.Fatal("Response is nil")
	}

	if resp.Properties.MostProbableSoilType == "" {
		t.Fatal("Most probable soil type is empty")
	}

	t.Logf("Soil type: %s", resp.Properties.MostProbableSoilType)

	if len(resp.Properties.Probabilities) == 0 {
		t.Error("Expected candidate probabilities with top_k=3")
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestClient_GetSoilProperties_Integration(t *testing.T) {
	lat := 45.3311
	lon := -121.7113

	client := NewClient()

	t.Logf("Making API call to OpenEPI Soil Property API...")

	resp, err := client.GetSoilProperties(lat, lon,
		[]string{"0-5cm"}, []string{"bdod", "phh2o"}, []string{"mean"})
	if err != nil {
		t.Fatalf("Failed to get soil properties: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp == nil {
		t.Fatal("Response is nil")
	}

	if len(resp.Properties.Layers) == 0 {
		t.Fatal("No property layers returned")
	}

	for _, layer := range resp.Properties.Layers {
		t.Logf("Layer: %s (%s)", layer.Name, layer.UnitMeasure.TargetUnits)
	}

	t.Log("✓ API call successful, response structure valid")
}
