package cactive

import (
	"errors"
	"strconv"
)

// Sentinel errors the client can return, to be tested
// for with errors.Is.
var (
	ErrBaseURLNotValid    = errors.New("base URL is not valid")
	ErrRateNotValid       = errors.New("rate limit setting is not valid")
	ErrNicknameNotSet     = errors.New("nickname is not set")
	ErrUUIDNotSet         = errors.New("uuid is not set")
	ErrPunishmentIDNotSet = errors.New("punishment id is not set")
	ErrFilterNotValid     = errors.New("staff filter is not valid")

	ErrRequestFailed      = errors.New("api request failed")
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrNoDataInResponse   = errors.New("no data in response")
	ErrNoErrorsInResponse = errors.New("no errors in unsuccessful response")

	ErrKeyNotValid        = errors.New("api key is not valid")
	ErrKeyInactive        = errors.New("api key is inactive")
	ErrRateLimitReached   = errors.New("rate limit reached")
	ErrNicknameNotValid   = errors.New("nickname is not valid")
	ErrUUIDNotValid       = errors.New("uuid is not valid")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPunishmentNotFound = errors.New("punishment not found")
	ErrEndpointDisabled   = errors.New("endpoint is disabled")
	ErrAPIInternal        = errors.New("api internal error")
	ErrUnknownErrorType   = errors.New("unknown error type")
)

// Error is a single error returned by the API, or produced
// by the client for transport and decoding failures.
type Error struct {
	// Type is one of the error code strings documented
	// in the README, for example "invalid-api-key".
	Type string `json:"type"`
	// Code is an HTTP-like numeric code, such as 403.
	Code uint16 `json:"code"`
	// Message is a human readable description.
	Message string `json:"message"`
	// Internal is true when the error was produced by this
	// client instead of being received from the API.
	Internal bool `json:"internal"`
}

func (e *Error) Error() (s string) {
	s = e.Type + " (code " + strconv.FormatUint(uint64(e.Code), 10) + "): " + e.Message
	if e.Internal {
		s += " (client side)"
	}
	return s
}

// Unwrap returns the sentinel error matching the error
// type string, so errors.Is works on wrapped errors.
func (e *Error) Unwrap() error {
	sentinel, known := typeToSentinel[e.Type]
	if !known {
		return ErrUnknownErrorType
	}
	return sentinel
}

func newTransportError(err error) *Error {
	return &Error{
		Type:     TypeFailedAPIRequest,
		Code:     500, //nolint:gomnd
		Message:  err.Error(),
		Internal: true,
	}
}

// joinErrors converts API errors received in a response
// envelope into a single Go error.
func joinErrors(apiErrors []Error) (err error) {
	errs := make([]error, len(apiErrors))
	for i := range apiErrors {
		apiError := apiErrors[i]
		apiError.Internal = false
		errs[i] = &apiError
	}
	return errors.Join(errs...)
}
