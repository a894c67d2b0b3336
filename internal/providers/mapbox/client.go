package mapbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://docs.mapbox.com/api/maps/tilequery/
// Sample request: https://api.mapbox.com/v4/mapbox.mapbox-terrain-v2/tilequery/{lon},{lat}.json?layers=contour&access_token=...
const (
	baseTilequeryURL = "https://api.mapbox.com/v4/mapbox.mapbox-terrain-v2/tilequery"
)

// ErrNoToken is returned before any request when no access token is configured
var ErrNoToken = errors.New("no access token provided for Mapbox, set MAPBOX_TOKEN")

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseTilequeryURL,
		token:      token,
	}
}

// GetTerrain queries the contour layer of the terrain tileset around a coordinate
func (c *Client) GetTerrain(latitude, longitude float64) (*TilequeryAPIResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	u, err := url.Parse(fmt.Sprintf("%s/%f,%f.json", c.baseURL, longitude, latitude))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("layers", "contour")
	q.Set("access_token", c.token)
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

	var apiResp TilequeryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
