package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openepi"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openmeteo"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestMapWeatherHistory(t *testing.T) {
	resp := &openmeteo.DailyHistoryAPIResponse{
		Timezone: "America/Los_Angeles",
		Daily: openmeteo.DailyHistoryData{
			Time:              []string{"2026-08-01", "2026-08-02", "2026-08-03"},
			Temperature2MMean: []*float64{floatPtr(10), nil, floatPtr(20)},
			Temperature2MMin:  []*float64{floatPtr(5), nil, floatPtr(3)},
			Temperature2MMax:  []*float64{floatPtr(18), nil, floatPtr(26)},
			PrecipitationSum:  []*float64{floatPtr(4), floatPtr(0), floatPtr(2)},
			RainSum:           []*float64{floatPtr(4), floatPtr(0), floatPtr(2)},
			SnowfallSum:       []*float64{floatPtr(0), floatPtr(0), floatPtr(0)},
		},
	}

	record := mapWeatherHistory(resp, nil)

	if record.Err != "" {
		t.Fatalf("unexpected error: %s", record.Err)
	}
	if record.Days != 3 {
		t.Errorf("Days = %d, want 3", record.Days)
	}
	if record.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q, want America/Los_Angeles", record.Timezone)
	}

	// Nil days are excluded from every aggregate
	if !record.HasTemperature || record.AvgTemp != 15 {
		t.Errorf("AvgTemp = %v (has=%v), want 15", record.AvgTemp, record.HasTemperature)
	}
	if record.MinTemp != 3 {
		t.Errorf("MinTemp = %v, want 3", record.MinTemp)
	}
	if record.MaxTemp != 26 {
		t.Errorf("MaxTemp = %v, want 26", record.MaxTemp)
	}

	if !record.HasPrecip || record.TotalPrecip != 6 {
		t.Errorf("TotalPrecip = %v (has=%v), want 6", record.TotalPrecip, record.HasPrecip)
	}
	if record.AvgDailyPrecip != 2 {
		t.Errorf("AvgDailyPrecip = %v, want 2", record.AvgDailyPrecip)
	}
	if record.TotalRain != 6 || record.RainyDays != 2 {
		t.Errorf("TotalRain = %v over %d days, want 6 over 2", record.TotalRain, record.RainyDays)
	}
	if record.SnowyDays != 0 {
		t.Errorf("SnowyDays = %d, want 0", record.SnowyDays)
	}
}

func TestMapWeatherHistory_MonthlySummaries(t *testing.T) {
	resp := &openmeteo.DailyHistoryAPIResponse{
		Daily: openmeteo.DailyHistoryData{
			Time:              []string{"2026-07-30", "2026-07-31", "2026-08-01", "2026-08-02"},
			Temperature2MMean: []*float64{floatPtr(20), floatPtr(22), floatPtr(14), nil},
			Temperature2MMin:  []*float64{floatPtr(12), floatPtr(14), floatPtr(6), nil},
			Temperature2MMax:  []*float64{floatPtr(28), floatPtr(30), floatPtr(21), nil},
			PrecipitationSum:  []*float64{floatPtr(0), floatPtr(1), floatPtr(3), floatPtr(5)},
			RainSum:           []*float64{floatPtr(0), floatPtr(1), floatPtr(3), floatPtr(5)},
			SnowfallSum:       []*float64{nil, nil, nil, nil},
		},
	}

	record := mapWeatherHistory(resp, nil)

	if record.Err != "" {
		t.Fatalf("unexpected error: %s", record.Err)
	}
	if len(record.Monthly) != 2 {
		t.Fatalf("Monthly = %d summaries, want 2", len(record.Monthly))
	}

	// Months stay in chronological order
	july, august := record.Monthly[0], record.Monthly[1]
	if july.Month != "2026-07" || august.Month != "2026-08" {
		t.Fatalf("months = %q, %q, want 2026-07, 2026-08", july.Month, august.Month)
	}

	// Temperatures are averaged per month, precipitation is totaled
	if july.AvgTemp == nil || *july.AvgTemp != 21 {
		t.Errorf("July AvgTemp = %v, want 21", july.AvgTemp)
	}
	if july.AvgMaxTemp == nil || *july.AvgMaxTemp != 29 {
		t.Errorf("July AvgMaxTemp = %v, want 29", july.AvgMaxTemp)
	}
	if july.TotalPrecip == nil || *july.TotalPrecip != 1 {
		t.Errorf("July TotalPrecip = %v, want 1", july.TotalPrecip)
	}

	// Nil days are excluded from the August temperature average
	if august.AvgTemp == nil || *august.AvgTemp != 14 {
		t.Errorf("August AvgTemp = %v, want 14", august.AvgTemp)
	}
	if august.TotalRain == nil || *august.TotalRain != 8 {
		t.Errorf("August TotalRain = %v, want 8", august.TotalRain)
	}

	// A series with no valid readings stays nil rather than reporting zero
	if july.TotalSnow != nil || august.TotalSnow != nil {
		t.Error("snow summaries should be nil when every day is nil")
	}
}

func TestMapWeatherHistory_Errors(t *testing.T) {
	record := mapWeatherHistory(nil, errors.New("fetch returned status 503"))
	if record == nil {
		t.Fatal("record is nil")
	}
	if record.Err != "fetch returned status 503" {
		t.Errorf("Err = %q, want the provider error", record.Err)
	}

	empty := mapWeatherHistory(&openmeteo.DailyHistoryAPIResponse{}, nil)
	if empty.Err == "" {
		t.Error("empty response should be tagged as an error")
	}
}

func TestMapSoilProperties_UnitConversion(t *testing.T) {
	resp := &openepi.SoilPropertyAPIResponse{
		Properties: openepi.SoilPropertyProperties{
			Layers: []openepi.SoilPropertyLayer{
				{
					Code: "phh2o",
					Name: "pH water",
					UnitMeasure: struct {
						ConversionFactor float64 `json:"conversion_factor"`
						MappedUnits      string  `json:"mapped_units"`
						TargetUnits      string  `json:"target_units"`
					}{
						ConversionFactor: 10,
						TargetUnits:      "pH",
					},
					Depths: []struct {
						Label  string             `json:"label"`
						Values map[string]float64 `json:"values"`
					}{
						{Label: "0-5cm", Values: map[string]float64{"mean": 55}},
					},
				},
			},
		},
	}

	record := mapSoilProperties(resp, nil)

	if record.Err != "" {
		t.Fatalf("unexpected error: %s", record.Err)
	}
	if len(record.Layers) != 1 {
		t.Fatalf("Layers = %d, want 1", len(record.Layers))
	}

	layer := record.Layers[0]
	if layer.Name != "pH water" || layer.Unit != "pH" {
		t.Errorf("layer = %q (%q), want pH water (pH)", layer.Name, layer.Unit)
	}
	got := layer.Depths[0].Values["mean"]
	if math.Abs(got-5.5) > 1e-9 {
		t.Errorf("converted mean = %v, want 5.5", got)
	}
}

func TestMapSoilType(t *testing.T) {
	resp := &openepi.SoilTypeAPIResponse{
		Properties: openepi.SoilTypeProperties{
			MostProbableSoilType: "Cambisols",
			Probabilities: []openepi.SoilTypeProbability{
				{SoilType: "Cambisols", Probability: 47},
				{SoilType: "Podzols", Probability: 26},
			},
		},
	}

	record := mapSoilType(resp, nil)

	if record.Err != "" {
		t.Fatalf("unexpected error: %s", record.Err)
	}
	if record.Source != types.SourceOpenEPI {
		t.Errorf("Source = %q, want %q", record.Source, types.SourceOpenEPI)
	}
	if record.Classification != "Cambisols" {
		t.Errorf("Classification = %q, want Cambisols", record.Classification)
	}
	if len(record.Probabilities) != 2 || record.Probabilities[1].SoilType != "Podzols" {
		t.Errorf("Probabilities = %v, want both candidates in order", record.Probabilities)
	}

	missing := mapSoilType(&openepi.SoilTypeAPIResponse{}, nil)
	if missing.Err == "" {
		t.Error("response without a soil type should be tagged as an error")
	}
}
