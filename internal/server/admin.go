package server

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/view"
)

const adminCookieMaxAge = 3600 * 24

func (s *Server) adminConfigured() bool {
	return s.cfg.Admin.Username != "" && s.cfg.Admin.Password != ""
}

func (s *Server) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
	return userOK && passOK
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		renderHTML(c, http.StatusOK, view.AdminLogin(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.adminConfigured() {
			s.logger.Warn("Admin login attempted but ADMIN_USERNAME/ADMIN_PASSWORD are not set")
			renderHTML(c, http.StatusServiceUnavailable, view.AdminLogin("Admin access is not configured"))
			return
		}

		if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Warn("Failed admin login attempt", zap.String("from", s.hashIP(c.ClientIP())))
			renderHTML(c, http.StatusUnauthorized, view.AdminLogin("Invalid credentials"))
			return
		}

		secure := c.Request.TLS != nil
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, adminCookieMaxAge, "/admin", "", secure, true)
		s.logger.Info("Admin login successful", zap.String("from", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/api/stats")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.logger.Info("Admin logout", zap.String("from", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			s.writeError(c, apperr.NewBackend("loading statistics", err))
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/api/messages", func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit <= 0 {
			s.writeError(c, apperr.NewValidation("limit must be a positive number", "limit"))
			return
		}
		messages, err := s.store.Messages(c.Request.Context(), limit)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages})
	})

	admin.DELETE("/api/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		if err := s.store.DeleteMessage(c.Request.Context(), id); err != nil {
			s.writeError(c, err)
			return
		}
		s.logger.Info("Message deleted by admin", zap.String("message_id", id))
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.cleanupVisitors(c.Request.Context())
		if err != nil {
			s.writeError(c, apperr.NewBackend("cleaning up visitor data", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			s.writeError(c, apperr.NewBackend("loading statistics", err))
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Info("Admin stats exported", zap.String("by", s.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}
