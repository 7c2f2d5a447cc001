package diagnostics

import (
	"net/http"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	checker *Checker
}

func NewHandler(checker *Checker) *Handler {
	return &Handler{
		checker: checker,
	}
}

// HandleCheck always answers 200, failures are part of the report.
func (handler *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	report := handler.checker.Run(r.Context())
	if !report.Connection.Success {
		log.Warnf("diagnostics: database connection failed: %s", report.Connection.Error)
	}
	pkg.WriteJSONResponseOK(w, report)
}
