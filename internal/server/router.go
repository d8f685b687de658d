package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
)

// NewRouter wires the vehicle routes around store
func NewRouter(store *Store) *mux.Router {
	h := Vehicles{Store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/vehicles", h.ListHandler).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id}", h.UpdateHandler).Methods(http.MethodPatch)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logging.LogHTTPRequest(r.Method, r.URL.String(), zap.String("remote_addr", r.RemoteAddr))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logging.LogHTTPResponse(r.Method, r.URL.String(), rec.status,
			zap.Duration("duration", time.Since(start)),
		)
	})
}
