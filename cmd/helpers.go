package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/config"
	"github.com/Zachkp/pillar-dev/internal/contact"
	"github.com/Zachkp/pillar-dev/internal/logging"
	"github.com/Zachkp/pillar-dev/internal/mail"
	"github.com/Zachkp/pillar-dev/internal/store"
)

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, logger, nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Database.Path, err)
	}
	return st, nil
}

// buildSubmitter wires the contact backend for the configured mode: the
// simulated delay, or the database followed by an SMTP notification when
// credentials are present.
func buildSubmitter(cfg *config.Config, st *store.Store, logger *zap.Logger) contact.Submitter {
	if !cfg.StoreEnabled() || st == nil {
		return contact.Simulated{Delay: cfg.Contact.Delay}
	}
	chain := contact.Chain{st}
	if cfg.SMTP.Enabled() {
		chain = append(chain, mail.NewMailer(cfg.SMTP, logger))
	} else {
		logger.Warn("SMTP credentials not configured, contact messages are stored only")
	}
	return chain
}
