package healthchecksio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Ping(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uuid           string
		state          State
		expectedPath   string
		responseStatus int
		errWrapped     error
		errMessage     string
	}{
		"no uuid is a no-op": {
			state: Fail,
		},
		"ok state": {
			uuid:           "abc",
			state:          Ok,
			expectedPath:   "/abc",
			responseStatus: http.StatusOK,
		},
		"fail state": {
			uuid:           "abc",
			state:          Fail,
			expectedPath:   "/abc/fail",
			responseStatus: http.StatusOK,
		},
		"exit code state": {
			uuid:           "abc",
			state:          Exit1,
			expectedPath:   "/abc/1",
			responseStatus: http.StatusOK,
		},
		"bad status code": {
			uuid:           "abc",
			state:          Ok,
			expectedPath:   "/abc",
			responseStatus: http.StatusNotFound,
			errWrapped:     ErrStatusCode,
			errMessage:     "bad status code: 404 404 Not Found",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			requested := false
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					requested = true
					assert.Equal(t, testCase.expectedPath, r.URL.Path)
					w.WriteHeader(testCase.responseStatus)
				}))
			t.Cleanup(server.Close)

			client := New(server.Client(), server.URL, testCase.uuid)

			err := client.Ping(context.Background(), testCase.state)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			require.Equal(t, testCase.uuid != "", requested)
		})
	}
}
