//go:build integration

package nominatim

import (
	"encoding/json"
	"testing"
)

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: Government Camp, OR
	lat := 45.3311
	lon := -121.7113

	client := NewClient("ShroomieApp/1.0 (integration test)")

	t.Logf("Making API call to Nominatim reverse geocoding...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(lat, lon)
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp == nil {
		t.Fatal("Response is nil")
	}

	if resp.DisplayName == "" {
		t.Fatal("Display name is empty")
	}

	t.Logf("Display name: %s", resp.DisplayName)

	if resp.Address.State != "Oregon" {
		t.Errorf("State = %q, want Oregon", resp.Address.State)
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestClient_Search_Integration(t *testing.T) {
	client := NewClient("ShroomieApp/1.0 (integration test)")

	t.Logf("Making API call to Nominatim search...")

	results, err := client.Search("Government Camp, Oregon")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("No search results")
	}

	t.Logf("First result: %s (%s, %s)", results[0].DisplayName, results[0].Lat, results[0].Lon)

	t.Log("✓ API call successful, response structure valid")
}
