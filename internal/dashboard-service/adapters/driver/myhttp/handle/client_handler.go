package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type ClientHandler struct {
	clients ports.IClientService
	mylog   mylogger.Logger
}

func NewClientHandler(clients ports.IClientService, mylog mylogger.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, mylog: mylog}
}

func (ch *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := ch.clients.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, clients)
}

func (ch *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	client, err := ch.clients.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, client)
}

func (ch *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateClientRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	client, err := ch.clients.Update(r.Context(), r.PathValue("client_id"), middleware.UserID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, client)
}

func (ch *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ch.clients.Delete(r.Context(), r.PathValue("client_id"), middleware.UserID(r)); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, dto.MessageResponse{Message: "client deleted"})
}
