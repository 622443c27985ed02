package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"delivery-track/internal/config"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/mylogger"
)

const requestTimeout = 10 * time.Second

// Client talks to an OSRM-compatible routing engine. Coordinates on the
// wire are lon,lat in both directions.
type Client struct {
	baseURL string
	profile string
	http    *http.Client
	mylog   mylogger.Logger
}

func NewClient(cfg *config.Routingconfig, mylog mylogger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: cfg.Profile,
		http:    &http.Client{Timeout: requestTimeout},
		mylog:   mylog,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry model.LineString `json:"geometry"`
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
	} `json:"routes"`
}

// Plan requests a route through the given [lon, lat] waypoints and returns
// the primary alternative.
func (c *Client) Plan(ctx context.Context, points [][]float64) (dto.RoutePlan, error) {
	if len(points) < 2 {
		return dto.RoutePlan{}, fmt.Errorf("route needs at least two points")
	}

	coords := make([]string, 0, len(points))
	for _, p := range points {
		if len(p) != 2 {
			return dto.RoutePlan{}, fmt.Errorf("waypoint must be a lon,lat pair")
		}
		coords = append(coords, fmt.Sprintf("%f,%f", p[0], p[1]))
	}

	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		c.baseURL, c.profile, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dto.RoutePlan{}, fmt.Errorf("build routing request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return dto.RoutePlan{}, fmt.Errorf("call routing engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.RoutePlan{}, fmt.Errorf("routing engine returned %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return dto.RoutePlan{}, fmt.Errorf("decode routing response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return dto.RoutePlan{}, fmt.Errorf("routing engine rejected request: %s", body.Code)
	}

	route := body.Routes[0]
	return dto.RoutePlan{
		Geometry:        route.Geometry,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}
