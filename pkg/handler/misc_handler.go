// Handler for miscellaneous endpoints such as health check

package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Version   string    `json:"version,omitempty"`
	History   bool      `json:"history"`
	Timestamp time.Time `json:"timestamp"`
}

func (dbctx *DBContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Version:   dbctx.Version,
		History:   dbctx.historyEnabled(),
		Timestamp: time.Now(),
	}

	if dbctx.historyEnabled() {
		if err := dbctx.DB.PingContext(r.Context()); err != nil {
			response.Health = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// Envelope shared by the JSON API
type APIResponse struct {
	Success bool        `json:"success"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, APIResponse{Success: true, Payload: payload})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: false, Error: message})
}
