package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

// maxPatchBytes bounds a PATCH body
const maxPatchBytes = 64 << 10

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// Vehicles holds the vehicle handlers
type Vehicles struct {
	Store *Store
}

// ListHandler returns every vehicle
func (h Vehicles) ListHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.List())
}

// UpdateHandler merges person and estimatedDate into one vehicle
func (h Vehicles) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch vehicle.Patch
	dec := json.NewDecoder(io.LimitReader(r.Body, maxPatchBytes))
	if err := dec.Decode(&patch); err != nil {
		errorStatus(w, http.StatusBadRequest, "failed to decode patch", err)
		return
	}

	updated, err := h.Store.Update(id, patch)
	switch {
	case errors.Is(err, ErrNotFound):
		errorStatus(w, http.StatusNotFound, "vehicle not found", err)
		return
	case errors.Is(err, ErrInvalidDate):
		errorStatus(w, http.StatusBadRequest, "invalid estimatedDate", err)
		return
	case err != nil:
		errorStatus(w, http.StatusInternalServerError, "failed to update vehicle", err)
		return
	}

	logging.Info("Vehicle updated",
		zap.String("vehicle_id", id),
		zap.String("person", updated.Person),
		zap.String("estimated_date", updated.EstimatedDate),
	)
	writeJSON(w, http.StatusOK, updated)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"alive": true}`)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		errorStatus(w, http.StatusInternalServerError, "failed to marshal response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func errorStatus(w http.ResponseWriter, status int, message string, err error) {
	logging.Warn(message, zap.Int("status", status), zap.Error(err))

	b, _ := json.Marshal(ErrorResponse{Error: message + ": " + err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
