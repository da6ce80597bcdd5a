// Package server exposes the site over HTTP with gin: the rendered page, the
// JSON API, the tagline stream, the viewport socket and the admin area.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/config"
	"github.com/Zachkp/pillar-dev/internal/contact"
	"github.com/Zachkp/pillar-dev/internal/store"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	store     *store.Store
	submitter contact.Submitter
	now       func() time.Time

	adminToken  string
	hashingSalt string

	formsMu sync.Mutex
	forms   map[string]*contact.Form

	// background visitor writes, joined on shutdown
	tracked conc.WaitGroup
}

type Option func(*Server)

// WithStore enables visitor tracking and the admin area.
func WithStore(st *store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// WithSubmitter sets where contact submissions go. The default simulates
// delivery with the configured delay.
func WithSubmitter(sub contact.Submitter) Option {
	return func(s *Server) {
		s.submitter = sub
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generating admin token: %w", err)
	}
	salt, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		submitter:   contact.Simulated{Delay: cfg.Contact.Delay},
		now:         time.Now,
		adminToken:  token,
		hashingSalt: salt,
		forms:       make(map[string]*contact.Form),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Engine builds the gin engine with every route registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	if s.store != nil {
		r.Use(s.visitorTracking())
	}

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/", s.handleIndex)
	r.POST("/contact", s.handleContactForm)
	r.GET("/privacy", s.handlePrivacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws/viewport", s.handleViewport)

	api := r.Group("/api")
	{
		api.GET("/projects", s.handleProjects)
		api.GET("/projects/:id", s.handleProject)
		api.GET("/experience", s.handleExperience)
		api.GET("/skills", s.handleSkills)
		api.GET("/hero/tagline", s.handleTagline)
		api.GET("/timeline/progress", s.handleTimelineProgress)
		api.POST("/contact", s.handleContactAPI)
	}

	if s.store != nil {
		s.setupAdminRoutes(r)
	}

	return r
}

// Run serves until ctx is cancelled, then drains connections and waits for
// pending visitor writes.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.store != nil {
		s.tracked.Go(func() { s.cleanupVisitors(context.Background()) })
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("contact_mode", s.cfg.Contact.Mode),
			zap.Bool("admin", s.store != nil))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.tracked.Wait()
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// Wait blocks until background visitor writes have finished.
func (s *Server) Wait() {
	s.tracked.Wait()
}

func (s *Server) cleanupVisitors(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(0, -s.cfg.Database.RetentionMonths, 0)
	removed, err := s.store.CleanupVisitors(ctx, cutoff)
	if err != nil {
		s.logger.Error("Error cleaning up old visitor data", zap.Error(err))
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("Privacy cleanup",
			zap.Int64("removed", removed),
			zap.Int("retention_months", s.cfg.Database.RetentionMonths))
	}
	return removed, nil
}
