package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
)

type errJSONWrapper struct {
	Error string `json:"error"`
}

func httpError(w http.ResponseWriter, status int, errString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if errString == "" {
		errString = http.StatusText(status)
	}
	body := errJSONWrapper{Error: errString}
	_ = json.NewEncoder(w).Encode(body)
}

// apiErrorStatus maps an error returned by the API client to
// the HTTP status to respond with.
func apiErrorStatus(err error) (status int) {
	switch {
	case errors.Is(err, cactive.ErrNicknameNotValid),
		errors.Is(err, cactive.ErrUUIDNotValid),
		errors.Is(err, cactive.ErrFilterNotValid):
		return http.StatusBadRequest
	case errors.Is(err, cactive.ErrPlayerNotFound),
		errors.Is(err, cactive.ErrPunishmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, cactive.ErrRateLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, cactive.ErrEndpointDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
