package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type DeliveryHandler struct {
	deliveries ports.IDeliveryService
	mylog      mylogger.Logger
}

func NewDeliveryHandler(deliveries ports.IDeliveryService, mylog mylogger.Logger) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries, mylog: mylog}
}

// List returns deliveries with their client and driver resolved inline, so
// the dashboard renders a row without extra round trips.
func (dh *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	deliveries, err := dh.deliveries.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, deliveries)
}

func (dh *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	delivery, err := dh.deliveries.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, delivery)
}

func (dh *DeliveryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDeliveryRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	delivery, err := dh.deliveries.Update(r.Context(), r.PathValue("delivery_id"), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, delivery)
}

func (dh *DeliveryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := dh.deliveries.Delete(r.Context(), r.PathValue("delivery_id"), middleware.UserID(r)); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, dto.MessageResponse{Message: "delivery deleted"})
}
