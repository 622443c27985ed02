package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type ZoneHandler struct {
	zones ports.IZoneService
	mylog mylogger.Logger
}

func NewZoneHandler(zones ports.IZoneService, mylog mylogger.Logger) *ZoneHandler {
	return &ZoneHandler{zones: zones, mylog: mylog}
}

func (zh *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	zones, err := zh.zones.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, zones)
}

func (zh *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateZoneRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	zone, err := zh.zones.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, zone)
}

func (zh *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateZoneRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	zone, err := zh.zones.Update(r.Context(), r.PathValue("zone_id"), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, zone)
}

func (zh *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := zh.zones.Delete(r.Context(), r.PathValue("zone_id"), middleware.UserID(r)); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, dto.MessageResponse{Message: "zone deleted"})
}
