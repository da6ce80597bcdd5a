package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/config"
	"github.com/Zachkp/pillar-dev/internal/store"
)

func newAdminServer(t *testing.T) (*Server, *gin.Engine, *store.Store) {
	t.Helper()
	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	s, engine := newTestServer(t, WithStore(st), WithSubmitter(st))
	return s, engine, st
}

func login(t *testing.T, engine *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(engine, "/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusFound, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("admin cookie not set")
	return nil
}

func adminGet(engine *gin.Engine, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return do(engine, req)
}

func TestAdminRoutesAbsentWithoutStore(t *testing.T) {
	_, engine := newTestServer(t)

	w := get(engine, "/admin/login")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRequiresLogin(t *testing.T) {
	_, engine, _ := newAdminServer(t)

	w := adminGet(engine, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminGet(engine, "/admin/export/stats", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w = adminGet(engine, "/admin/api/stats", &http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	_, engine, _ := newAdminServer(t)

	w := postForm(engine, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminLoginNotConfigured(t *testing.T) {
	st, err := store.OpenMemory()
	require.NoError(t, err)
	defer st.Close()

	cfg := testConfig()
	cfg.Admin = config.AdminConfig{}
	s, err := New(cfg, zap.NewNop(), WithStore(st))
	require.NoError(t, err)

	w := postForm(s.Engine(), "/admin/login", url.Values{"username": {""}, "password": {""}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminStatsAndMessages(t *testing.T) {
	s, engine, _ := newAdminServer(t)

	get(engine, "/")
	w := postJSON(engine, "/api/contact", validContact)
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["id"].(string)
	s.Wait()

	cookie := login(t, engine)

	w = adminGet(engine, "/admin/api/stats", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.EqualValues(t, 2, stats["total_visitors"])
	assert.EqualValues(t, 1, stats["total_messages"])

	w = adminGet(engine, "/admin/api/messages?limit=10", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode(t, w)["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, id, messages[0].(map[string]any)["id"])

	w = adminGet(engine, "/admin/api/messages?limit=zero", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/messages/"+id, nil)
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, do(engine, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/admin/api/messages/"+id, nil)
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusNotFound, do(engine, req).Code)
}

func TestAdminExportAndCleanup(t *testing.T) {
	s, engine, st := newAdminServer(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, st.RecordVisit(t.Context(), store.Visitor{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, st.RecordVisit(t.Context(), store.Visitor{HashedIP: "new", Path: "/", Timestamp: now.AddDate(0, 0, -1)}))

	cookie := login(t, engine)

	w := adminGet(engine, "/admin/export/stats", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment"))

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(cookie)
	w = do(engine, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["removed"])
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	_, engine, _ := newAdminServer(t)

	w := get(engine, "/admin/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, adminCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
