package openepi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://developer.openepi.io/data-catalog/soil
// Sample requests:
// - https://api.openepi.io/soil/type?lat=45.1451&lon=-123.7521&top_k=3
// - https://api.openepi.io/soil/property?lat=45.1451&lon=-123.7521&depths=0-5cm&properties=phh2o&values=mean
const (
	baseSoilTypeURL     = "https://api.openepi.io/soil/type"
	baseSoilPropertyURL = "https://api.openepi.io/soil/property"
)

type Client struct {
	httpClient      *http.Client
	soilTypeURL     string
	soilPropertyURL string
}

func NewClient() *Client {
	return &Client{
		httpClient:      &http.Client{},
		soilTypeURL:     baseSoilTypeURL,
		soilPropertyURL: baseSoilPropertyURL,
	}
}

// GetSoilType fetches the most probable soil type for a coordinate.
// topK > 0 requests that many candidate classes with probabilities.
func (c *Client) GetSoilType(latitude, longitude float64, topK int) (*SoilTypeAPIResponse, error) {
	u, err := url.Parse(c.soilTypeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	if topK > 0 {
		q.Set("top_k", strconv.Itoa(topK))
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

	var apiResp SoilTypeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// GetSoilProperties fetches per-depth soil property statistics.
// depths, properties and values are sent as repeated query parameters.
func (c *Client) GetSoilProperties(latitude, longitude float64, depths, properties, values []string) (*SoilPropertyAPIResponse, error) {
	u, err := url.Parse(c.soilPropertyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	for _, d := range depths {
		q.Add("depths", d)
	}
	for _, p := range properties {
		q.Add("properties", p)
	}
	for _, v := range values {
		q.Add("values", v)
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

	var apiResp SoilPropertyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
