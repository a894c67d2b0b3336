package soilgrids

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://rest.isric.org/soilgrids/v2.0/docs
// Sample request: https://rest.isric.org/soilgrids/v2.0/classification/query?lat=45.54&lon=-123.42&number_classes=5
const (
	baseClassificationURL = "https://rest.isric.org/soilgrids/v2.0/classification/query"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseClassificationURL,
	}
}

// GetClassification fetches the WRB soil classification for a coordinate
// with up to numberClasses candidate classes.
func (c *Client) GetClassification(latitude, longitude float64, numberClasses int) (*ClassificationAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("number_classes", strconv.Itoa(numberClasses))
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

	var apiResp ClassificationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
