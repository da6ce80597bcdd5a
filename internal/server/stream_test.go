package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/pillar-dev/internal/content"
	"github.com/Zachkp/pillar-dev/internal/motion"
)

func TestTaglineStream(t *testing.T) {
	_, engine := newTestServer(t)

	w := get(engine, "/api/hero/tagline?seed=42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	body := w.Body.String()
	frames := motion.NewDecoder(content.Tagline).Ticks() - 1
	assert.Equal(t, frames, strings.Count(body, "event:frame\n"))
	assert.Equal(t, 1, strings.Count(body, "event:done\n"))
	assert.True(t, strings.HasSuffix(body, "event:done\ndata:"+content.Tagline+"\n\n"))
}

func TestTaglineStreamSeeded(t *testing.T) {
	_, engine := newTestServer(t)

	a := get(engine, "/api/hero/tagline?seed=7").Body.String()
	b := get(engine, "/api/hero/tagline?seed=7").Body.String()
	assert.Equal(t, a, b)
}

func TestTaglineStreamBadSeed(t *testing.T) {
	_, engine := newTestServer(t)

	w := get(engine, "/api/hero/tagline?seed=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func dialViewport(t *testing.T) *websocket.Conn {
	t.Helper()
	_, engine := newTestServer(t)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/viewport"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func TestViewportRevealOnce(t *testing.T) {
	conn := dialViewport(t)

	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: "skills", Ratio: 0.4}))
	var u motion.Update
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, motion.Update{Type: motion.UpdateReveal, Section: "skills"}, u)

	// A second crossing and a below-threshold ratio must not reveal again;
	// the next message is the progress answer to the scroll event.
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: "skills", Ratio: 0.9}))
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: "contact", Ratio: 0.1}))
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventScroll, ScrollY: 150, Top: 0, Height: 100, Viewport: 100}))

	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, motion.UpdateProgress, u.Type)
	assert.InDelta(t, 50.0, u.Progress, 1e-9)
	assert.True(t, u.Scrolled)
}

func TestViewportTimelineItems(t *testing.T) {
	conn := dialViewport(t)

	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: motion.TimelineSection, Item: 2, Ratio: 0.25}))
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: "unknown", Ratio: 1}))
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: motion.TimelineSection, Item: 2, Ratio: 0.35}))

	var u motion.Update
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, motion.Update{Type: motion.UpdateReveal, Section: motion.TimelineSection, Item: 2}, u)
}

func TestViewportIgnoresMalformedMessages(t *testing.T) {
	conn := dialViewport(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	require.NoError(t, conn.WriteJSON(motion.Event{Type: motion.EventIntersect, Section: "hero", Ratio: 1}))

	var u motion.Update
	require.NoError(t, conn.ReadJSON(&u))
	assert.Equal(t, "hero", u.Section)
}
