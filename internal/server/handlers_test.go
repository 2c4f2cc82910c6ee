package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/internal/models"
	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPIClient struct {
	history    []cactive.NicknameHistory
	historyErr error
	playerData cactive.PlayerData
	playerErr  error
	staff      []cactive.StaffMember
	staffErr   error
	punishment cactive.PunishmentData
	punishErr  error
	keyData    cactive.KeyData
	keyErr     error
	calls      int
}

func (c *testAPIClient) NicknameHistory(_ context.Context, _ string) (
	[]cactive.NicknameHistory, error) {
	c.calls++
	return c.history, c.historyErr
}

func (c *testAPIClient) PlayerData(_ context.Context, _ string) (
	cactive.PlayerData, error) {
	c.calls++
	return c.playerData, c.playerErr
}

func (c *testAPIClient) StaffTracker(_ context.Context, _ cactive.StaffFilter) (
	[]cactive.StaffMember, error) {
	c.calls++
	return c.staff, c.staffErr
}

func (c *testAPIClient) PunishmentData(_ context.Context, _ string) (
	cactive.PunishmentData, error) {
	c.calls++
	return c.punishment, c.punishErr
}

func (c *testAPIClient) KeyData(_ context.Context) (cactive.KeyData, error) {
	c.calls++
	return c.keyData, c.keyErr
}

type testCache struct {
	responses map[string]json.RawMessage
	lastCheck *models.KeyCheck
}

func (c *testCache) key(endpoint, query string) string {
	return endpoint + "|" + query
}

func (c *testCache) GetResponse(endpoint, query string,
	_ time.Duration, _ time.Time) (json.RawMessage, bool) {
	response, ok := c.responses[c.key(endpoint, query)]
	return response, ok
}

func (c *testCache) StoreResponse(endpoint, query string,
	response json.RawMessage, _ time.Time) error {
	if c.responses == nil {
		c.responses = make(map[string]json.RawMessage)
	}
	c.responses[c.key(endpoint, query)] = response
	return nil
}

func (c *testCache) LastKeyCheck() (models.KeyCheck, bool) {
	if c.lastCheck == nil {
		return models.KeyCheck{}, false
	}
	return *c.lastCheck, true
}

type testForceChecker struct {
	err error
}

func (f *testForceChecker) ForceCheck(_ context.Context) error {
	return f.err
}

type testLogger struct{}

func (l *testLogger) Debug(_ string) {}
func (l *testLogger) Info(_ string)  {}
func (l *testLogger) Warn(_ string)  {}
func (l *testLogger) Error(_ string) {}

func newTestHandler(client APIClient, cache Cache,
	forceChecker ForceChecker) http.Handler {
	return newHandler(Settings{
		Address:      ":8000",
		RootURL:      "/",
		CacheMaxAge:  time.Minute,
		Client:       client,
		Cache:        cache,
		ForceChecker: forceChecker,
		BuildInfo: models.BuildInformation{
			Version: "0.1.0",
			Commit:  "abcdef1",
			Date:    "2024-01-02",
		},
		Logger: &testLogger{},
	})
}

func Test_handlers_nicknameHistory(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		target     string
		client     *testAPIClient
		cache      *testCache
		status     int
		body       string
		finalCalls int
	}{
		"missing nickname": {
			target: "/api/v1/nickname-history",
			client: &testAPIClient{},
			cache:  &testCache{},
			status: http.StatusBadRequest,
			body:   `{"error":"nickname is required"}` + "\n",
		},
		"success": {
			target: "/api/v1/nickname-history?nickname=Technoblade",
			client: &testAPIClient{
				history: []cactive.NicknameHistory{
					{UUID: "b876ec32-e396-476b-a115-8438d83c67d4", Nickname: "Technoblade"},
				},
			},
			cache: &testCache{},
			status: http.StatusOK,
			body: `[{"uuid":"b876ec32-e396-476b-a115-8438d83c67d4",` +
				`"nickname":"Technoblade","active":false,"created_at":"","voided_at":""}]`,
			finalCalls: 1,
		},
		"cached": {
			target: "/api/v1/nickname-history?nickname=Technoblade",
			client: &testAPIClient{},
			cache: &testCache{
				responses: map[string]json.RawMessage{
					"nickname-history|Technoblade": json.RawMessage(`[{"nickname":"Technoblade"}]`),
				},
			},
			status:     http.StatusOK,
			body:       `[{"nickname":"Technoblade"}]`,
			finalCalls: 0,
		},
		"player not found": {
			target: "/api/v1/nickname-history?nickname=xx",
			client: &testAPIClient{
				historyErr: &cactive.Error{
					Type:    cactive.TypePlayerNotFound,
					Code:    404,
					Message: "player not found",
				},
			},
			cache:      &testCache{},
			status:     http.StatusNotFound,
			body:       `{"error":"player-not-found (code 404): player not found"}` + "\n",
			finalCalls: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newTestHandler(testCase.client, testCase.cache,
				&testForceChecker{})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			response, err := server.Client().Get(server.URL + testCase.target)
			require.NoError(t, err)
			t.Cleanup(func() { _ = response.Body.Close() })

			assert.Equal(t, testCase.status, response.StatusCode)
			body, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.body, string(body))
			assert.Equal(t, testCase.finalCalls, testCase.client.calls)
		})
	}
}

func Test_handlers_staffTracker(t *testing.T) {
	t.Parallel()

	client := &testAPIClient{
		staff: []cactive.StaffMember{},
	}
	cache := &testCache{}
	handler := newTestHandler(client, cache, &testForceChecker{})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	response, err := server.Client().Get(server.URL +
		"/api/v1/staff-tracker?filter=banana")
	require.NoError(t, err)
	_ = response.Body.Close()
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	// empty filter defaults to all
	response, err = server.Client().Get(server.URL + "/api/v1/staff-tracker")
	require.NoError(t, err)
	_ = response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)

	// the response was cached under the resolved filter
	_, ok := cache.GetResponse("staff-tracker", "all", time.Minute, time.Now())
	assert.True(t, ok)
}

func Test_handlers_status(t *testing.T) {
	t.Parallel()

	cache := &testCache{
		lastCheck: &models.KeyCheck{
			Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Success: true,
			KeyData: cactive.KeyData{
				Key:    "testkey",
				Valid:  true,
				Active: true,
				Endpoints: []cactive.KeyEndpoint{
					{ID: "nickname-history", Version: 3, Status: true},
					{ID: "player-data", Version: 3, Status: false},
				},
			},
		},
	}
	handler := newTestHandler(&testAPIClient{}, cache, &testForceChecker{})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	response, err := server.Client().Get(server.URL + "/api/v1/status")
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })

	require.Equal(t, http.StatusOK, response.StatusCode)

	var status statusResponse
	err = json.NewDecoder(response.Body).Decode(&status)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", status.Version)
	require.NotNil(t, status.LastKeyCheck)
	assert.True(t, status.LastKeyCheck.Success)
	assert.Equal(t, []string{"player-data"}, status.DownEndpoints)
}

func Test_handlers_check(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(&testAPIClient{}, &testCache{},
		&testForceChecker{})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	response, err := server.Client().Post(server.URL+"/api/v1/check",
		"", nil)
	require.NoError(t, err)
	_ = response.Body.Close()
	assert.Equal(t, http.StatusAccepted, response.StatusCode)
}
