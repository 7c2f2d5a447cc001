package misc

import (
	"net/http"
	"time"

	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
)

const ServiceName = "fittrack"

type Handler struct {
	versionInfo string
	startedAt   time.Time
	now         func() time.Time
}

func NewHandler(versionInfo string, startedAt time.Time, now func() time.Time) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		startedAt:   startedAt,
		now:         now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET", "OPTIONS").Name("version")
}

type serviceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, serviceInfo{
		Service: ServiceName,
		Version: handler.version(),
		Uptime:  handler.now().Sub(handler.startedAt).Truncate(time.Second).String(),
	})
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, handler.version(), http.StatusOK)
}

func (handler *Handler) version() string {
	if handler.versionInfo == "" {
		return "unknown"
	}
	return handler.versionInfo
}
