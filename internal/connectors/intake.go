package connectors

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"acuity/internal"
	"acuity/internal/storage"
)

// IntakeService pulls messages from a connector and lands them in the ledger,
// keeping the raw .eml on disk keyed by content hash so refetches are no-ops.
type IntakeService struct {
	db         *storage.DB
	rawMailDir string
	connector  MailConnector
}

type IntakeResult struct {
	Fetched int
	Stored  int
}

func NewIntakeService(db *storage.DB, rawMailDir string, connector MailConnector) *IntakeService {
	return &IntakeService{db: db, rawMailDir: rawMailDir, connector: connector}
}

func (s *IntakeService) FetchAndStore(label string, max int) (IntakeResult, error) {
	messages, err := s.connector.FetchInbox(label, max)
	if err != nil {
		return IntakeResult{}, err
	}

	stored := 0
	for _, msg := range messages {
		if _, err := s.store(msg); err != nil {
			return IntakeResult{}, err
		}
		stored++
	}
	return IntakeResult{Fetched: len(messages), Stored: stored}, nil
}

func (s *IntakeService) store(msg internal.FetchedMailMessage) (internal.EmailRow, error) {
	sum := sha256.Sum256(msg.Raw)
	hash := hex.EncodeToString(sum[:])

	if err := os.MkdirAll(s.rawMailDir, 0o755); err != nil {
		return internal.EmailRow{}, err
	}
	rawPath := filepath.Join(s.rawMailDir, hash+".eml")
	if _, err := os.Stat(rawPath); os.IsNotExist(err) {
		if err := os.WriteFile(rawPath, msg.Raw, 0o644); err != nil {
			return internal.EmailRow{}, err
		}
	}

	return s.db.UpsertEmail(msg, hash, rawPath)
}
