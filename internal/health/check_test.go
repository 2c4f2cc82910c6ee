package health

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/stretchr/testify/assert"
)

type testKeyCheckGetter struct {
	check models.KeyCheck
	ok    bool
}

func (g *testKeyCheckGetter) LastKeyCheck() (models.KeyCheck, bool) {
	return g.check, g.ok
}

type testLookupIPer struct {
	host string
	ips  []net.IP
	err  error
}

func (l *testLookupIPer) LookupIP(_ context.Context, _, host string) (
	[]net.IP, error) {
	l.host = host
	return l.ips, l.err
}

func Test_MakeIsHealthy(t *testing.T) {
	t.Parallel()

	errLookup := errors.New("no such host")

	testCases := map[string]struct {
		db           *testKeyCheckGetter
		resolver     *testLookupIPer
		apiURL       string
		expectedHost string
		errMessage   string
	}{
		"healthy with no check yet": {
			db:           &testKeyCheckGetter{},
			resolver:     &testLookupIPer{ips: []net.IP{{127, 0, 0, 1}}},
			apiURL:       "https://hypixel.cactive.network/api/v3",
			expectedHost: "hypixel.cactive.network",
		},
		"healthy with successful check": {
			db: &testKeyCheckGetter{
				check: models.KeyCheck{Time: time.Unix(1000, 0), Success: true},
				ok:    true,
			},
			resolver:     &testLookupIPer{ips: []net.IP{{127, 0, 0, 1}}},
			apiURL:       "https://hypixel.cactive.network/api/v3",
			expectedHost: "hypixel.cactive.network",
		},
		"failed key check": {
			db: &testKeyCheckGetter{
				check: models.KeyCheck{
					Time:    time.Unix(1000, 0),
					Message: "api request failed",
				},
				ok: true,
			},
			resolver:   &testLookupIPer{ips: []net.IP{{127, 0, 0, 1}}},
			apiURL:     "https://hypixel.cactive.network/api/v3",
			errMessage: "last key check failed: api request failed",
		},
		"lookup failure": {
			db:           &testKeyCheckGetter{},
			resolver:     &testLookupIPer{err: errLookup},
			apiURL:       "https://test.example.com/api/v3",
			expectedHost: "test.example.com",
			errMessage:   "resolving test.example.com: no such host",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			isHealthy := MakeIsHealthy(testCase.db, testCase.resolver, testCase.apiURL)

			err := isHealthy()

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			if testCase.expectedHost != "" {
				assert.Equal(t, testCase.expectedHost, testCase.resolver.host)
			}
		})
	}
}
