package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=45.54&longitude=-123.42&daily=temperature_2m_max,temperature_2m_min,temperature_2m_mean,precipitation_sum,rain_sum,snowfall_sum&past_days=90&timezone=America/Los_Angeles
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// The forecast endpoint serves at most this many past days
	MaxPastDays = 92
)

type HistoryClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewHistoryClient creates a client for recent daily weather history.
// apiKey may be empty; the free Open-Meteo tier does not require one.
func NewHistoryClient(apiKey string) *HistoryClient {
	return &HistoryClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		apiKey:     apiKey,
	}
}

// GetDailyHistory fetches daily temperature and precipitation aggregates for
// the past pastDays days (capped at MaxPastDays) in the given IANA timezone.
func (c *HistoryClient) GetDailyHistory(latitude, longitude float64, pastDays int, timezone string) (*DailyHistoryAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	if pastDays > MaxPastDays {
		pastDays = MaxPastDays
	}

	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"temperature_2m_mean",
		"precipitation_sum",
		"rain_sum",
		"snowfall_sum",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("past_days", strconv.Itoa(pastDays))
	q.Set("timezone", timezone)
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp DailyHistoryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
