package server

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/store"
)

const adminCookie = "admin_token"

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/healthz",
	"/ws/",
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("Request", fields...)
			return
		}
		logger.Debug("Request", fields...)
	}
}

// hashIP hashes an address with the per-process salt so visits can be
// counted without storing the address itself.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !trackable(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v := store.Visitor{
			HashedIP:  s.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		}
		s.tracked.Go(func() {
			if err := s.store.RecordVisit(context.Background(), v); err != nil {
				s.logger.Error("Error recording visitor", zap.Error(err))
			}
		})
		c.Next()
	}
}

func trackable(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
