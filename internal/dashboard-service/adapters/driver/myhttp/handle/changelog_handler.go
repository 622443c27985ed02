package handle

import (
	"net/http"

	"delivery-track/internal/dashboard-service/adapters/driver/myhttp/middleware"
	"delivery-track/internal/dashboard-service/core/ports"
	"delivery-track/internal/mylogger"
)

type ChangeLogHandler struct {
	changeLog ports.IChangeLogService
	mylog     mylogger.Logger
}

func NewChangeLogHandler(changeLog ports.IChangeLogService, mylog mylogger.Logger) *ChangeLogHandler {
	return &ChangeLogHandler{changeLog: changeLog, mylog: mylog}
}

func (clh *ChangeLogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := clh.changeLog.List(r.Context(), middleware.UserID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, entries)
}
