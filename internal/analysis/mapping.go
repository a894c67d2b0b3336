package analysis

import (
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/mapbox"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/nominatim"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openelevation"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openepi"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/openmeteo"
	"github.com/JoeLorenzoMontano/shroomie/internal/providers/soilgrids"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"
)

// Translation from raw provider responses into domain records. Every mapper
// follows the same contract: a failed or empty response becomes a record with
// Err set, never a nil record and never a fabricated value.

func mapLocation(resp *nominatim.ReverseAPIResponse, err error) *types.LocationRecord {
	record := &types.LocationRecord{Source: types.SourceNominatim}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || resp.DisplayName == "" {
		record.Err = "no location name found"
		return record
	}

	record.DisplayName = resp.DisplayName
	record.County = resp.Address.County
	record.State = resp.Address.State
	record.Country = resp.Address.Country
	record.CountryCode = resp.Address.CountryCode
	record.LandUse = resp.Address.LandUse
	if record.LandUse == "" {
		record.LandUse = resp.Address.Leisure
	}
	record.LandType = resp.Address.Natural
	return record
}

func mapSoilType(resp *openepi.SoilTypeAPIResponse, err error) *types.SoilRecord {
	record := &types.SoilRecord{Source: types.SourceOpenEPI}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || resp.Properties.MostProbableSoilType == "" {
		record.Err = "response contained no soil type"
		return record
	}

	record.Classification = resp.Properties.MostProbableSoilType
	for _, p := range resp.Properties.Probabilities {
		record.Probabilities = append(record.Probabilities, types.SoilClassProbability{
			SoilType:    p.SoilType,
			Probability: p.Probability,
		})
	}
	return record
}

func mapSoilClassification(resp *soilgrids.ClassificationAPIResponse, err error) *types.SoilRecord {
	record := &types.SoilRecord{Source: types.SourceSoilGrids}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || resp.WrbClassName == "" {
		record.Err = "response contained no WRB class"
		return record
	}

	record.Classification = resp.WrbClassName
	for _, p := range resp.WrbClassProbability {
		record.Probabilities = append(record.Probabilities, types.SoilClassProbability{
			SoilType:    p.ClassName,
			Probability: p.Probability,
		})
	}
	return record
}

func mapSoilProperties(resp *openepi.SoilPropertyAPIResponse, err error) *types.SoilPropertiesRecord {
	record := &types.SoilPropertiesRecord{Source: types.SourceOpenEPI}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || len(resp.Properties.Layers) == 0 {
		record.Err = "response contained no property layers"
		return record
	}

	for _, layer := range resp.Properties.Layers {
		name := layer.Name
		if name == "" {
			name = layer.Code
		}

		mapped := types.SoilPropertyLayer{
			Name: name,
			Unit: layer.UnitMeasure.TargetUnits,
		}

		// Values arrive in mapped units; divide by the conversion factor to
		// get target units, matching how the API documents its layers.
		conversion := layer.UnitMeasure.ConversionFactor
		for _, depth := range layer.Depths {
			values := make(map[string]float64, len(depth.Values))
			for stat, value := range depth.Values {
				if conversion != 0 && conversion != 1 {
					values[stat] = value / conversion
				} else {
					values[stat] = value
				}
			}
			mapped.Depths = append(mapped.Depths, types.SoilPropertyDepth{
				Label:  depth.Label,
				Values: values,
			})
		}

		record.Layers = append(record.Layers, mapped)
	}
	return record
}

func mapOpenElevation(resp *openelevation.LookupAPIResponse, err error) *types.ElevationRecord {
	record := &types.ElevationRecord{Source: types.SourceOpenElevation}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || len(resp.Results) == 0 {
		record.Err = "no elevation data found"
		return record
	}

	record.Meters = resp.Results[0].Elevation
	return record
}

func mapOpenMeteoElevation(resp *openmeteo.ElevationAPIResponse, err error) *types.ElevationRecord {
	record := &types.ElevationRecord{Source: types.SourceOpenMeteo}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || len(resp.Elevation) == 0 {
		record.Err = "no elevation data found"
		return record
	}

	record.Meters = resp.Elevation[0]
	return record
}

func mapTerrain(resp *mapbox.TilequeryAPIResponse, err error) *types.TerrainRecord {
	record := &types.TerrainRecord{Source: types.SourceMapbox}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || len(resp.Features) == 0 {
		record.Err = "no contour features near point"
		return record
	}

	for _, f := range resp.Features {
		record.ContourElevations = append(record.ContourElevations, f.Properties.Ele)
	}
	return record
}

func mapWeatherHistory(resp *openmeteo.DailyHistoryAPIResponse, err error) *types.WeatherRecord {
	record := &types.WeatherRecord{Source: types.SourceOpenMeteo}
	if err != nil {
		record.Err = err.Error()
		return record
	}
	if resp == nil || len(resp.Daily.Time) == 0 {
		record.Err = "response contained no daily data"
		return record
	}

	record.Days = len(resp.Daily.Time)
	record.Timezone = resp.Timezone

	if mean, ok := average(resp.Daily.Temperature2MMean); ok {
		record.AvgTemp = mean
		record.HasTemperature = true
	}
	if minimum, ok := minOf(resp.Daily.Temperature2MMin); ok {
		record.MinTemp = minimum
	}
	if maximum, ok := maxOf(resp.Daily.Temperature2MMax); ok {
		record.MaxTemp = maximum
	}

	if total, n := sumValid(resp.Daily.PrecipitationSum); n > 0 {
		record.TotalPrecip = total
		record.AvgDailyPrecip = total / float64(n)
		record.HasPrecip = true
	}
	if total, n := sumValid(resp.Daily.RainSum); n > 0 {
		record.TotalRain = total
		record.RainyDays = daysAbove(resp.Daily.RainSum, 0.1)
	}
	if total, n := sumValid(resp.Daily.SnowfallSum); n > 0 {
		record.TotalSnow = total
		record.SnowyDays = daysAbove(resp.Daily.SnowfallSum, 0.1)
	}

	record.Monthly = monthlySummaries(resp.Daily)

	return record
}

// monthlySummaries buckets the daily series by calendar month. The API
// returns days in chronological order, so encounter order of the YYYY-MM
// keys is already chronological.
func monthlySummaries(daily openmeteo.DailyHistoryData) []types.MonthlySummary {
	type bucket struct {
		maxTemp, minTemp, meanTemp []*float64
		precip, rain, snow         []*float64
	}

	buckets := make(map[string]*bucket)
	var months []string
	for i, day := range daily.Time {
		if len(day) < 7 {
			continue
		}
		key := day[:7]
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			months = append(months, key)
		}
		b.maxTemp = append(b.maxTemp, valueAt(daily.Temperature2MMax, i))
		b.minTemp = append(b.minTemp, valueAt(daily.Temperature2MMin, i))
		b.meanTemp = append(b.meanTemp, valueAt(daily.Temperature2MMean, i))
		b.precip = append(b.precip, valueAt(daily.PrecipitationSum, i))
		b.rain = append(b.rain, valueAt(daily.RainSum, i))
		b.snow = append(b.snow, valueAt(daily.SnowfallSum, i))
	}

	summaries := make([]types.MonthlySummary, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		s := types.MonthlySummary{Month: month}
		if v, ok := average(b.maxTemp); ok {
			s.AvgMaxTemp = &v
		}
		if v, ok := average(b.minTemp); ok {
			s.AvgMinTemp = &v
		}
		if v, ok := average(b.meanTemp); ok {
			s.AvgTemp = &v
		}
		if total, n := sumValid(b.precip); n > 0 {
			s.TotalPrecip = &total
		}
		if total, n := sumValid(b.rain); n > 0 {
			s.TotalRain = &total
		}
		if total, n := sumValid(b.snow); n > 0 {
			s.TotalSnow = &total
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// valueAt tolerates series shorter than the time axis
func valueAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

// average returns the mean of the non-nil values
func average(values []*float64) (float64, bool) {
	var sum float64
	var count int
	for _, v := range values {
		if v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func minOf(values []*float64) (float64, bool) {
	var result float64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || *v < result {
			result = *v
			found = true
		}
	}
	return result, found
}

func maxOf(values []*float64) (float64, bool) {
	var result float64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || *v > result {
			result = *v
			found = true
		}
	}
	return result, found
}

// sumValid totals the non-nil values and returns how many there were
func sumValid(values []*float64) (float64, int) {
	var sum float64
	var count int
	for _, v := range values {
		if v != nil {
			sum += *v
			count++
		}
	}
	return sum, count
}

func daysAbove(values []*float64, threshold float64) int {
	var count int
	for _, v := range values {
		if v != nil && *v > threshold {
			count++
		}
	}
	return count
}
