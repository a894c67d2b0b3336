package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Overview/
// Sample requests:
// - https://nominatim.openstreetmap.org/reverse?lat=45.54&lon=-123.42&format=json
// - https://nominatim.openstreetmap.org/search?q=Tillamook+Forest&format=json
const (
	baseReverseURL = "https://nominatim.openstreetmap.org/reverse"
	baseSearchURL  = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	httpClient *http.Client
	reverseURL string
	searchURL  string
	userAgent  string
}

// NewClient creates a Nominatim client. The user agent identifies the
// application per the Nominatim usage policy.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{},
		reverseURL: baseReverseURL,
		searchURL:  baseSearchURL,
		userAgent:  userAgent,
	}
}

func (c *Client) get(u string, out any) error {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Reverse looks up location metadata for a coordinate
func (c *Client) Reverse(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.reverseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp ReverseAPIResponse
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

// Search geocodes a free-text place name. Results are ordered by relevance;
// an empty slice means Nominatim found no match.
func (c *Client) Search(query string) ([]SearchResult, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	var apiResp []SearchResult
	if err := c.get(u.String(), &apiResp); err != nil {
		return nil, err
	}

	return apiResp, nil
}
