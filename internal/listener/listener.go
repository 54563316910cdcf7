// Package listener runs the mail-driven intake loop: fetch unseen messages,
// pick out invoice emails, run every spreadsheet attachment through the
// parsing pipeline and drop the exports in the output directory.
package listener

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"acuity/internal/config"
	"acuity/internal/connectors"
	gmailconnector "acuity/internal/connectors/gmail"
	imapconnector "acuity/internal/connectors/imap"
	"acuity/internal/parser"
	"acuity/internal/storage"
)

type Service struct {
	db     *storage.DB
	cfg    config.Config
	parser *parser.Parser
	log    *slog.Logger
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{
		db:     db,
		cfg:    cfg,
		parser: parser.New(parser.Options{MaxItems: cfg.ParseMaxItems}),
		log:    slog.Default().With("component", "listener"),
	}
}

func (s *Service) Run(ctx context.Context) error {
	interval := time.Duration(s.cfg.MailListenerIntervalSec) * time.Second
	for {
		if err := s.runCycle(); err != nil {
			s.log.Error("cycle failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

func (s *Service) runCycle() error {
	provider := strings.ToLower(strings.TrimSpace(s.cfg.MailListenerProvider))
	conn, err := s.makeConnector(provider)
	if err != nil {
		return err
	}

	intake := connectors.NewIntakeService(s.db, s.cfg.RawMailDir, conn)
	fetched, err := intake.FetchAndStore(s.cfg.MailListenerLabel, s.cfg.MailListenerFetchMax)
	if err != nil {
		return err
	}

	processed, err := s.ProcessPending(s.cfg.MailListenerBatch, provider)
	if err != nil {
		return err
	}

	s.log.Info("cycle done",
		"provider", provider,
		"fetched", fetched.Fetched,
		"stored", fetched.Stored,
		"processed", processed,
	)
	return nil
}

// ProcessPending parses all fetched-but-unprocessed emails, up to limit.
func (s *Service) ProcessPending(limit int, provider string) (int, error) {
	pending, err := s.db.ListEmailsByStatus("fetched", limit)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, email := range pending {
		if provider != "" && email.Provider != provider {
			continue
		}
		if err := s.ProcessEmail(email); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

func (s *Service) makeConnector(provider string) (connectors.MailConnector, error) {
	switch provider {
	case "gmail":
		return gmailconnector.NewConnector(s.cfg)
	case "imap":
		return imapconnector.NewConnector(s.cfg)
	default:
		return nil, fmt.Errorf("unsupported listener provider: %s", provider)
	}
}
