package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
)

type statusResponse struct {
	Version       string           `json:"version"`
	Commit        string           `json:"commit"`
	BuildDate     string           `json:"build_date"`
	Time          time.Time        `json:"time"`
	LastKeyCheck  *models.KeyCheck `json:"last_key_check,omitempty"`
	DownEndpoints []string         `json:"down_endpoints"`
}

func (h *handlers) status(w http.ResponseWriter, _ *http.Request) {
	response := statusResponse{
		Version:       h.buildInfo.Version,
		Commit:        h.buildInfo.Commit,
		BuildDate:     h.buildInfo.Date,
		Time:          h.timeNow(),
		DownEndpoints: []string{},
	}

	check, ok := h.cache.LastKeyCheck()
	if ok {
		response.LastKeyCheck = &check
		response.DownEndpoints = check.DownEndpoints()
	}

	writeJSON(w, h.logger, response)
}

func writeJSON(w http.ResponseWriter, logger Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.Error("encoding response: " + err.Error())
	}
}

func (h *handlers) check(w http.ResponseWriter, r *http.Request) {
	start := h.timeNow()
	err := h.forceChecker.ForceCheck(r.Context())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	duration := h.timeNow().Sub(start)
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte("key checked successfully in " + duration.String()))
}
