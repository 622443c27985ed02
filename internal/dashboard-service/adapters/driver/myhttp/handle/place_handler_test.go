package handle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
	"delivery-track/internal/mylogger"
)

type stubAuth struct{}

func (stubAuth) Register(context.Context, dto.RegisterRequest) (dto.AuthResponse, error) {
	return dto.AuthResponse{}, nil
}

func (stubAuth) Login(context.Context, dto.LoginRequest) (dto.AuthResponse, error) {
	return dto.AuthResponse{}, nil
}

func (stubAuth) ValidateToken(token string) (string, error) {
	if token != "good" {
		return "", myerrors.ErrInvalidToken
	}
	return "user-1", nil
}

type stubPlaceService struct {
	lastUserID string
	lastUpdate string
}

func (s *stubPlaceService) List(_ context.Context, userID string) ([]model.Place, error) {
	s.lastUserID = userID
	return []model.Place{{ID: "p1", Name: "Depot", UserID: userID}}, nil
}

func (s *stubPlaceService) Create(_ context.Context, userID string, req dto.CreatePlaceRequest) (model.Place, error) {
	// Mirrors the real service: geometry is checked past the schema layer.
	if err := req.Location.Validate(); err != nil {
		return model.Place{}, err
	}
	s.lastUserID = userID
	return model.Place{ID: "p1", Name: req.Name, Location: req.Location, UserID: userID}, nil
}

func (s *stubPlaceService) Update(_ context.Context, id, userID string, req dto.UpdatePlaceRequest) (model.Place, error) {
	s.lastUpdate = id
	if id == "missing" {
		return model.Place{}, myerrors.ErrNotFound
	}
	return model.Place{ID: id, UserID: userID}, nil
}

func (s *stubPlaceService) Delete(_ context.Context, id, userID string) error {
	if id == "missing" {
		return myerrors.ErrNotFound
	}
	return nil
}

func newPlaceMux(t *testing.T) (*http.ServeMux, *stubPlaceService) {
	t.Helper()
	log, _ := mylogger.New(mylogger.LevelError)
	svc := &stubPlaceService{}
	handler := NewPlaceHandler(svc, log)

	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Auth(stubAuth{}, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /places", guard(handler.List))
	mux.HandleFunc("POST /places", guard(handler.Create))
	mux.HandleFunc("PUT /places/{place_id}", guard(handler.Update))
	mux.HandleFunc("DELETE /places/{place_id}", guard(handler.Delete))
	return mux, svc
}

func doJSON(mux *http.ServeMux, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreatePlace(t *testing.T) {
	mux, svc := newPlaceMux(t)

	rec := doJSON(mux, http.MethodPost, "/places", "good",
		`{"name":"Depot","location":{"type":"Point","coordinates":[76.9,43.2]}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", svc.lastUserID)
	assert.Contains(t, rec.Body.String(), `"Depot"`)
}

func TestCreatePlaceValidation(t *testing.T) {
	mux, _ := newPlaceMux(t)

	t.Run("missing name", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/places", "good",
			`{"location":{"type":"Point","coordinates":[76.9,43.2]}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/places", "good", `{"name":"Depot","bogus":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/places", "good", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed point", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/places", "good",
			`{"name":"Depot","location":{"type":"Point","coordinates":[76.9]}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong geometry type", func(t *testing.T) {
		rec := doJSON(mux, http.MethodPost, "/places", "good",
			`{"name":"Depot","location":{"type":"Polygon","coordinates":[76.9,43.2]}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlaceRoutesRequireAuth(t *testing.T) {
	mux, _ := newPlaceMux(t)

	rec := doJSON(mux, http.MethodGet, "/places", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(mux, http.MethodGet, "/places", "forged", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePlacePathValue(t *testing.T) {
	mux, svc := newPlaceMux(t)

	rec := doJSON(mux, http.MethodPut, "/places/p42", "good", `{"name":"New name"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p42", svc.lastUpdate)
}

func TestUpdatePlaceNotFound(t *testing.T) {
	mux, _ := newPlaceMux(t)

	rec := doJSON(mux, http.MethodPut, "/places/missing", "good", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","code":404}`, rec.Body.String())
}

func TestDeletePlace(t *testing.T) {
	mux, _ := newPlaceMux(t)

	rec := doJSON(mux, http.MethodDelete, "/places/p1", "good", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "place deleted")

	rec = doJSON(mux, http.MethodDelete, "/places/missing", "good", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
