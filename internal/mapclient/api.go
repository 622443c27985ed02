// Package mapclient is the programmatic counterpart of the dashboard map
// view: a typed REST client, a relay session with reconnect, a marker store
// and the click-capture interaction machine.
package mapclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
)

type apiError struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// RESTClient issues the dashboard API calls one at a time; the map view
// never has two mutations in flight.
type RESTClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Token returns the bearer token captured by Login.
func (c *RESTClient) Token() string {
	return c.token
}

func (c *RESTClient) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return dto.AuthResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

func (c *RESTClient) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return dto.AuthResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

func (c *RESTClient) ListPlaces(ctx context.Context) ([]model.Place, error) {
	var out []model.Place
	err := c.do(ctx, http.MethodGet, "/places", nil, &out)
	return out, err
}

func (c *RESTClient) CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (model.Place, error) {
	var out model.Place
	err := c.do(ctx, http.MethodPost, "/places", req, &out)
	return out, err
}

func (c *RESTClient) UpdatePlace(ctx context.Context, id string, req dto.UpdatePlaceRequest) (model.Place, error) {
	var out model.Place
	err := c.do(ctx, http.MethodPut, "/places/"+id, req, &out)
	return out, err
}

func (c *RESTClient) DeletePlace(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/places/"+id, nil, nil)
}

func (c *RESTClient) ListClients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	err := c.do(ctx, http.MethodGet, "/clients", nil, &out)
	return out, err
}

func (c *RESTClient) CreateClient(ctx context.Context, req dto.CreateClientRequest) (model.Client, error) {
	var out model.Client
	err := c.do(ctx, http.MethodPost, "/clients", req, &out)
	return out, err
}

func (c *RESTClient) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (model.Client, error) {
	var out model.Client
	err := c.do(ctx, http.MethodPut, "/clients/"+id, req, &out)
	return out, err
}

func (c *RESTClient) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil)
}

func (c *RESTClient) ListDeliveries(ctx context.Context) ([]model.DeliveryDetails, error) {
	var out []model.DeliveryDetails
	err := c.do(ctx, http.MethodGet, "/deliveries", nil, &out)
	return out, err
}

func (c *RESTClient) CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest) (model.Delivery, error) {
	var out model.Delivery
	err := c.do(ctx, http.MethodPost, "/deliveries", req, &out)
	return out, err
}

func (c *RESTClient) UpdateDelivery(ctx context.Context, id string, req dto.UpdateDeliveryRequest) (model.Delivery, error) {
	var out model.Delivery
	err := c.do(ctx, http.MethodPut, "/deliveries/"+id, req, &out)
	return out, err
}

func (c *RESTClient) DeleteDelivery(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/deliveries/"+id, nil, nil)
}

func (c *RESTClient) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	var out []model.Driver
	err := c.do(ctx, http.MethodGet, "/drivers", nil, &out)
	return out, err
}

func (c *RESTClient) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (model.Driver, error) {
	var out model.Driver
	err := c.do(ctx, http.MethodPost, "/drivers", req, &out)
	return out, err
}

func (c *RESTClient) UpdateDriver(ctx context.Context, id string, req dto.UpdateDriverRequest) (model.Driver, error) {
	var out model.Driver
	err := c.do(ctx, http.MethodPut, "/drivers/"+id, req, &out)
	return out, err
}

func (c *RESTClient) DeleteDriver(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/drivers/"+id, nil, nil)
}

func (c *RESTClient) ListZones(ctx context.Context) ([]model.Zone, error) {
	var out []model.Zone
	err := c.do(ctx, http.MethodGet, "/zones", nil, &out)
	return out, err
}

func (c *RESTClient) CreateZone(ctx context.Context, req dto.CreateZoneRequest) (model.Zone, error) {
	var out model.Zone
	err := c.do(ctx, http.MethodPost, "/zones", req, &out)
	return out, err
}

func (c *RESTClient) UpdateZone(ctx context.Context, id string, req dto.UpdateZoneRequest) (model.Zone, error) {
	var out model.Zone
	err := c.do(ctx, http.MethodPut, "/zones/"+id, req, &out)
	return out, err
}

func (c *RESTClient) DeleteZone(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/zones/"+id, nil, nil)
}

func (c *RESTClient) ListChanges(ctx context.Context) ([]model.ChangeEntry, error) {
	var out []model.ChangeEntry
	err := c.do(ctx, http.MethodGet, "/logs", nil, &out)
	return out, err
}

func (c *RESTClient) PlanRoute(ctx context.Context, req dto.RouteRequest) (dto.RoutePlan, error) {
	var out dto.RoutePlan
	err := c.do(ctx, http.MethodPost, "/routes/plan", req, &out)
	return out, err
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Code: resp.StatusCode, Message: resp.Status}
		json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
