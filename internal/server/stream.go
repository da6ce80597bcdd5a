package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/content"
	"github.com/Zachkp/pillar-dev/internal/motion"
)

const maxViewportMessage = 1024

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleTagline streams the hero decode effect as server-sent events: one
// "frame" event per tick and a final "done" event carrying the tagline.
func (s *Server) handleTagline(c *gin.Context) {
	var opts []motion.DecoderOption
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.writeError(c, apperr.NewValidation("seed must be a non-negative integer", "seed"))
			return
		}
		opts = append(opts, motion.WithSeed(seed))
	}
	dec := motion.NewDecoder(content.Tagline, opts...)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	err := dec.Run(c.Request.Context(), s.cfg.Effects.DecodeInterval, func(frame string, done bool) error {
		event := "frame"
		if done {
			event = "done"
		}
		c.SSEvent(event, frame)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		s.logger.Debug("Tagline stream ended early", zap.Error(err))
	}
}

// handleViewport runs one motion.Session for the lifetime of the socket.
func (s *Server) handleViewport(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxViewportMessage)

	session := motion.NewSession(content.SectionIDs(), timelineItemIDs())
	s.logger.Debug("Viewport session opened")
	defer func() {
		s.logger.Debug("Viewport session closed", zap.Float64("progress", session.Progress()))
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("Websocket read failed", zap.Error(err))
			}
			return
		}

		var ev motion.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			continue
		}
		for _, u := range session.Handle(ev) {
			if err := conn.WriteJSON(u); err != nil {
				s.logger.Warn("Websocket write failed", zap.Error(err))
				return
			}
		}
	}
}

func timelineItemIDs() []int {
	items := content.Experiences()
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
