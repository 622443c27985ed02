package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type AuthHandler struct {
	auth  ports.IAuthService
	mylog mylogger.Logger
}

func NewAuthHandler(auth ports.IAuthService, mylog mylogger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, mylog: mylog}
}

func (ah *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	resp, err := ah.auth.Register(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, resp)
}

func (ah *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	resp, err := ah.auth.Login(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}
