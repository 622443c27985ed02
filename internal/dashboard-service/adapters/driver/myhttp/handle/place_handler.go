package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type PlaceHandler struct {
	places ports.IPlaceService
	mylog  mylogger.Logger
}

func NewPlaceHandler(places ports.IPlaceService, mylog mylogger.Logger) *PlaceHandler {
	return &PlaceHandler{places: places, mylog: mylog}
}

func (ph *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := ph.places.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, places)
}

func (ph *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlaceRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	place, err := ph.places.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, place)
}

func (ph *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePlaceRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	place, err := ph.places.Update(r.Context(), r.PathValue("place_id"), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, place)
}

func (ph *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ph.places.Delete(r.Context(), r.PathValue("place_id"), middleware.UserID(r)); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, dto.MessageResponse{Message: "place deleted"})
}
