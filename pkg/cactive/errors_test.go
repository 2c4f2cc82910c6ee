package cactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err        *Error
		message    string
		errWrapped error
	}{
		"api error": {
			err: &Error{
				Type:    TypeInvalidAPIKey,
				Code:    403,
				Message: "the key provided is not valid",
			},
			message:    "invalid-api-key (code 403): the key provided is not valid",
			errWrapped: ErrKeyNotValid,
		},
		"internal error": {
			err: &Error{
				Type:     TypeFailedAPIRequest,
				Code:     500,
				Message:  "connection refused",
				Internal: true,
			},
			message:    "failed-api-request (code 500): connection refused (client side)",
			errWrapped: ErrRequestFailed,
		},
		"unknown type": {
			err: &Error{
				Type:    "something-new",
				Code:    418,
				Message: "great disturbance in the API",
			},
			message:    "something-new (code 418): great disturbance in the API",
			errWrapped: ErrUnknownErrorType,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.EqualError(t, testCase.err, testCase.message)
			assert.ErrorIs(t, testCase.err, testCase.errWrapped)
		})
	}
}

func Test_ErrorTypes_AllMapped(t *testing.T) {
	t.Parallel()

	for _, errorType := range ErrorTypes() {
		_, known := typeToSentinel[errorType]
		assert.Truef(t, known, "error type %s has no sentinel", errorType)
	}
	assert.Len(t, typeToSentinel, len(ErrorTypes()))
}

func Test_joinErrors(t *testing.T) {
	t.Parallel()

	apiErrors := []Error{
		{Type: TypeInvalidUUID, Code: 400, Message: "bad uuid"},
		{Type: TypePlayerNotFound, Code: 404, Message: "no such player"},
	}

	err := joinErrors(apiErrors)

	assert.ErrorIs(t, err, ErrUUIDNotValid)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.False(t, errors.Is(err, ErrPunishmentNotFound))
	assert.EqualError(t, err,
		"invalid-uuid (code 400): bad uuid\n"+
			"player-not-found (code 404): no such player")
}
