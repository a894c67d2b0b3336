package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/JoeLorenzoMontano/shroomie/internal/analysis"
	"github.com/JoeLorenzoMontano/shroomie/internal/grid"
	"github.com/JoeLorenzoMontano/shroomie/internal/location"
	"github.com/JoeLorenzoMontano/shroomie/internal/mapgen"
	"github.com/JoeLorenzoMontano/shroomie/internal/prompt"
	"github.com/JoeLorenzoMontano/shroomie/internal/types"

	"github.com/gin-gonic/gin"
)

// AnalyzeInput defines the request body for the analyze endpoint. Either
// explicit coordinates or a free-text location must be provided.
type AnalyzeInput struct {
	Latitude     *float64 `json:"lat" example:"45.3311"`                   // Latitude in decimal degrees
	Longitude    *float64 `json:"lon" example:"-121.7113"`                 // Longitude in decimal degrees
	Location     string   `json:"location" example:"Government Camp, OR"`  // Free-text place name, used when lat/lon are absent
	MushroomType string   `json:"mushroom_type" example:"chanterelle"`     // Target species for the generated prompt
	Months       int      `json:"months" example:"3"`                      // Months of weather history
	Grid         bool     `json:"grid" example:"true"`                     // Analyze a grid of points around the location
	GridSize     int      `json:"grid-size" example:"3"`                   // Grid dimension (N x N)
	GridDistance float64  `json:"grid-distance" example:"2"`               // Miles between adjacent grid points
	Map          bool     `json:"map" example:"false"`                     // Include a rendered Leaflet map in the response
}

// AnalyzeResponse represents the response for the analyze endpoint
type AnalyzeResponse struct {
	Output         string  `json:"output"`             // Generated analysis prompt
	MapHTML        string  `json:"map_html,omitempty"` // Rendered Leaflet map, present when requested
	ProcessingTime float64 `json:"processing_time"`    // Wall time in seconds
	Error          string  `json:"error,omitempty"`    // Error message for failed requests
}

// handleAnalyze godoc
// @Summary Analyze a location for mushroom foraging
// @Description Aggregate soil, terrain, forest, and weather data for a coordinate or place name and return an LLM-ready analysis prompt
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body AnalyzeInput true "Analysis request"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} AnalyzeResponse
// @Failure 404 {object} AnalyzeResponse
// @Failure 500 {object} AnalyzeResponse
// @Router /analyze [post]
func (app *App) handleAnalyze(c *gin.Context) {
	start := time.Now()

	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, AnalyzeResponse{
			Error:          err.Error(),
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}

	// Resolve the center point
	var center types.Coords
	var err error
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		center, err = app.locationService.FromCoordinates(*input.Latitude, *input.Longitude)
	case input.Location != "":
		center, err = app.locationService.FromName(input.Location)
	default:
		c.JSON(http.StatusBadRequest, AnalyzeResponse{
			Error:          "either lat/lon or location is required",
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, location.ErrInvalidLatitude), errors.Is(err, location.ErrInvalidLongitude):
			status = http.StatusBadRequest
		case errors.Is(err, location.ErrLocationNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, AnalyzeResponse{
			Error:          err.Error(),
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}

	gridSize := input.GridSize
	if gridSize <= 0 {
		gridSize = app.cfg.App.GridSize
	}
	gridDistance := input.GridDistance
	if gridDistance <= 0 {
		gridDistance = app.cfg.App.GridDistance
	}

	req := analysis.Request{
		Center:       center,
		Options:      analysis.Options{WeatherMonths: input.Months},
		Grid:         input.Grid,
		GridSize:     gridSize,
		GridDistance: gridDistance,
	}

	results, err := app.analysisService.Analyze(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, grid.ErrInvalidSize) || errors.Is(err, grid.ErrInvalidDistance) {
			status = http.StatusBadRequest
		}
		app.logger.Error("analysis failed",
			"latitude", center.Latitude,
			"longitude", center.Longitude,
			"error", err,
		)
		c.JSON(status, AnalyzeResponse{
			Error:          err.Error(),
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}

	output := prompt.Generate(results, prompt.Options{
		MushroomType: input.MushroomType,
		LocationName: input.Location,
	})

	resp := AnalyzeResponse{Output: output}
	if input.Map {
		var html string
		if input.Grid {
			html, err = mapgen.GenerateGrid(results, center, 0)
		} else {
			html, err = mapgen.Generate(results[0], 0)
		}
		if err != nil {
			app.logger.Error("map generation failed", "error", err)
		} else {
			resp.MapHTML = html
		}
	}

	resp.ProcessingTime = time.Since(start).Seconds()
	c.JSON(http.StatusOK, resp)
}
