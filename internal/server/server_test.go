package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"

	"baladiya/pkg/types"

	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	srv           *httptest.Server
	users         *fakeUserStore
	requests      *fakeRequestStore
	reports       *fakeReportStore
	announcements *fakeAnnouncementStore
	sessions      *fakeSessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		Environment:      "test",
		CookieName:       "baladiya_session",
		SessionMaxAgeSec: 3600,
		CookieHashKey:    base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
		CookieBlockKey:   base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
		ReportDailyLimit: 10,
	}

	env := &testEnv{
		users:         newFakeUserStore(),
		requests:      newFakeRequestStore(),
		reports:       newFakeReportStore(),
		announcements: newFakeAnnouncementStore(),
		sessions:      newFakeSessionStore(),
	}

	svc, err := New(config, logger, env.users, env.requests, env.reports, env.announcements, env.sessions, nil)
	require.NoError(t, err)

	env.srv = httptest.NewServer(svc.Handler())
	t.Cleanup(env.srv.Close)

	return env
}

// browser returns an http client with its own cookie jar, one session
// per caller.
func (e *testEnv) browser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{Jar: jar}
}

func (e *testEnv) doJSON(t *testing.T, c *http.Client, method, path string, body any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, payload
}

func (e *testEnv) register(t *testing.T, c *http.Client, fullName, cin, password string, role types.Role) *types.User {
	t.Helper()

	status, payload := e.doJSON(t, c, http.MethodPost, "/api/register", map[string]any{
		"fullName": fullName,
		"cin":      cin,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %s", cin, payload)

	var user types.User
	require.NoError(t, json.Unmarshal(payload, &user))

	return &user
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func decodeMessage(t *testing.T, payload []byte) (message, field string) {
	t.Helper()

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(payload, &body))

	return body.Message, body.Field
}
