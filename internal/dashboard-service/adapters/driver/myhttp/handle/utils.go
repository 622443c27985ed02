package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"delivery-track/internal/dashboard-service/core/domain/model"
	"delivery-track/internal/dashboard-service/core/myerrors"
)

func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]any{"error": message, "code": status})
}

// serviceError maps a core error onto the wire. Anything unrecognized is a
// 500 with a generic message so internals never leak to the caller.
func serviceError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, myerrors.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, myerrors.ErrEmailRegistered):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, myerrors.ErrUnknownEmail), errors.Is(err, myerrors.ErrPasswordUnknown):
		jsonError(w, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, myerrors.ErrUnknownClient),
		errors.Is(err, myerrors.ErrRingTooShort),
		errors.Is(err, myerrors.ErrInvalidToken),
		errors.Is(err, model.ErrBadGeometryType),
		errors.Is(err, model.ErrBadCoordinates):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &validationErrs):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, myerrors.ErrRoutingUpstream):
		jsonError(w, http.StatusBadGateway, "route planning unavailable")
	default:
		jsonError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
