package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/transit"
)

const DefaultBaseURL = "https://api-v3.mbta.com/"

const userAgent = "nexttrain/1.0"

type Config struct {
	BaseURL    string
	APIKey     string
	RouteTypes []int
	Timeout    time.Duration
}

type Client struct {
	baseURL    *url.URL
	apiKey     string
	routeTypes []int

	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	routeTypes := config.RouteTypes
	if len(routeTypes) == 0 {
		routeTypes = []int{transit.RouteTypeHeavyRail, transit.RouteTypeLightRail}
	}

	return &Client{
		baseURL:    parsed,
		apiKey:     config.APIKey,
		routeTypes: routeTypes,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

type response struct {
	Data json.RawMessage `json:"data"`
}

// FetchData performs one GET against the API and returns the data member of
// the response. Any status other than 200 yields a nil payload and no error.
func (c *Client) FetchData(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	requestURL, err := c.baseURL.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", path, err)
	}

	query := requestURL.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	requestURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.api+json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("Length", time.Since(start).String()).
		Msg("MBTA API request")

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("MBTA API returned no data")
		return nil, nil
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return body.Data, nil
}

func (c *Client) fetchResources(ctx context.Context, path string, params map[string]string) ([]transit.Resource, error) {
	data, err := c.FetchData(ctx, path, params)
	if err != nil {
		return nil, err
	}

	return transit.DecodeResources(data)
}

// RailRoutes lists every route of the configured route types in one call
func (c *Client) RailRoutes(ctx context.Context) ([]transit.Resource, error) {
	return c.fetchResources(ctx, "routes", map[string]string{
		"filter[type]": c.RouteTypeFilter(),
	})
}

func (c *Client) StopsForRoute(ctx context.Context, routeID string) ([]transit.Resource, error) {
	return c.fetchResources(ctx, "stops", map[string]string{
		"filter[route]": routeID,
	})
}

func (c *Client) Predictions(ctx context.Context, stopID string, routeID string) ([]transit.Resource, error) {
	return c.fetchResources(ctx, "predictions", map[string]string{
		"filter[stop]":  stopID,
		"filter[route]": routeID,
	})
}

// RouteTypeFilter renders the route types as the comma-joined filter value
func (c *Client) RouteTypeFilter() string {
	types := make([]string, 0, len(c.routeTypes))
	for _, routeType := range c.routeTypes {
		types = append(types, strconv.Itoa(routeType))
	}

	return strings.Join(types, ",")
}
