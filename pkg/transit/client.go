package transit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"kvvtracker/pkg/logger"
)

var baseURL = "https://kvvapi.fuadserver.uk/api"

// Client interacts with the KVV departure API
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// get performs a single GET request. No retries: a failed lookup is shown
// to the user as-is and the next search starts from scratch.
func (c *Client) get(reqURL string) (*http.Response, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "kvvtracker/1.0")

	logger.Debug("requesting", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", "url", reqURL, "error", err.Error())
		return nil, err
	}
	return resp, nil
}

// SearchStops looks up transit stops matching a free-text name query.
// The API returns candidates in relevance order; no re-ranking happens here.
func (c *Client) SearchStops(query string) ([]Stop, error) {
	reqURL := fmt.Sprintf("%s/stops/search?q=%s", baseURL, url.QueryEscape(query))

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search stops: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var stops []Stop
	if err := json.NewDecoder(resp.Body).Decode(&stops); err != nil {
		return nil, fmt.Errorf("failed to decode stop search JSON: %w", err)
	}

	return stops, nil
}

// FetchDepartures gets the upcoming departures for a specific stop ID.
func (c *Client) FetchDepartures(stopID string) ([]Departure, error) {
	reqURL := fmt.Sprintf("%s/stops/%s", baseURL, url.PathEscape(stopID))

	resp, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var deps []Departure
	if err := json.NewDecoder(resp.Body).Decode(&deps); err != nil {
		return nil, fmt.Errorf("failed to decode departures JSON: %w", err)
	}

	return deps, nil
}
