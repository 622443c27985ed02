package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type DriverHandler struct {
	drivers ports.IDriverService
	mylog   mylogger.Logger
}

func NewDriverHandler(drivers ports.IDriverService, mylog mylogger.Logger) *DriverHandler {
	return &DriverHandler{drivers: drivers, mylog: mylog}
}

func (dh *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := dh.drivers.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, drivers)
}

func (dh *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDriverRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	driver, err := dh.drivers.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, driver)
}

// Update merges the provided fields; when the location changes the service
// also announces the new position to the live relay.
func (dh *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDriverRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	driver, err := dh.drivers.Update(r.Context(), r.PathValue("driver_id"), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, driver)
}

func (dh *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := dh.drivers.Delete(r.Context(), r.PathValue("driver_id"), middleware.UserID(r)); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, dto.MessageResponse{Message: "driver deleted"})
}
