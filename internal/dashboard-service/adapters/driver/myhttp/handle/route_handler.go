package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/core/domain/dto"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type RouteHandler struct {
	routes ports.IRouteService
	mylog  mylogger.Logger
}

func NewRouteHandler(routes ports.IRouteService, mylog mylogger.Logger) *RouteHandler {
	return &RouteHandler{routes: routes, mylog: mylog}
}

// Plan proxies a waypoint list to the external routing engine and returns
// the computed path. Upstream failures surface as 502.
func (rh *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		serviceError(w, err)
		return
	}

	plan, err := rh.routes.Plan(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, plan)
}
