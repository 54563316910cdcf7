package listener

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"

	"acuity/internal"
	"acuity/internal/export"
	"acuity/internal/parser"
	"acuity/internal/source"
)

// ProcessEmail reads one stored message, decides whether it is an invoice
// email and parses every spreadsheet attachment. The email ends in status
// processed, skipped or failed; per-attachment outcomes land in the ledger.
func (s *Service) ProcessEmail(email internal.EmailRow) error {
	start := time.Now()

	raw, err := os.ReadFile(email.RawRef)
	if err != nil {
		return err
	}
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		_ = s.db.UpdateEmailStatus(email.ID, "failed")
		return err
	}

	names := make([]string, 0, len(env.Attachments))
	for _, att := range env.Attachments {
		names = append(names, att.FileName)
	}

	subject := env.GetHeader("Subject")
	if strings.TrimSpace(subject) == "" {
		subject = email.Subject
	}
	detect := parser.DetectInvoiceEmail(subject, env.Text, names)
	if err := s.db.ClearAttachments(email.ID); err != nil {
		return err
	}

	if !detect.IsInvoice {
		_ = s.db.UpdateEmailStatus(email.ID, "skipped")
		_ = s.db.InsertRun(traceID(), email.ID, timings(start), map[string]int{"attachments": 0, "items": 0, "issues": 0})
		s.log.Info("email skipped", "emailId", email.ID, "score", detect.Score)
		return nil
	}

	itemTotal, issueTotal, parsedCount := 0, 0, 0
	for _, att := range env.Attachments {
		src, ok := source.FromAttachment(att.FileName, att.Content)
		if !ok {
			continue
		}
		row := s.parseAttachment(email, att.FileName, src)
		if _, err := s.db.InsertAttachment(row); err != nil {
			return err
		}
		if row.Status == "parsed" {
			parsedCount++
			itemTotal += row.ItemCount
			issueTotal += row.IssueCount
		}
	}

	status := "processed"
	if parsedCount == 0 {
		status = "failed"
	}
	if err := s.db.UpdateEmailStatus(email.ID, status); err != nil {
		return err
	}
	_ = s.db.InsertRun(traceID(), email.ID, timings(start), map[string]int{
		"attachments": parsedCount,
		"items":       itemTotal,
		"issues":      issueTotal,
	})

	s.log.Info("email processed", "emailId", email.ID, "attachments", parsedCount, "items", itemTotal)
	return nil
}

func (s *Service) parseAttachment(email internal.EmailRow, filename string, src source.Source) internal.AttachmentRow {
	row := internal.AttachmentRow{EmailID: email.ID, Filename: filename}

	result := s.parser.Parse(src, s.cfg.MailListenerAggregate)
	if !result.Success {
		row.Status = "failed"
		return row
	}

	exportDir := filepath.Join(s.cfg.OutputDir, "listener", fmt.Sprintf("%d_%s", email.ID, sanitizeName(filename)))
	if err := s.writeExports(exportDir, result); err != nil {
		s.log.Error("export failed", "emailId", email.ID, "attachment", filename, "error", err)
		row.Status = "export_failed"
		return row
	}

	row.Status = "parsed"
	row.ItemCount = len(result.Items)
	row.IssueCount = len(result.Errors)
	row.ExportRef = exportDir
	return row
}

func (s *Service) writeExports(dir string, result internal.ParseResult) error {
	if err := export.WriteXLSXFile(result, filepath.Join(dir, "invoice.xlsx")); err != nil {
		return err
	}

	blob, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "result.json"), blob, 0o644); err != nil {
		return err
	}

	if s.cfg.MailListenerExportCSV {
		f, err := os.Create(filepath.Join(dir, "invoice.csv"))
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteCSV(f, result.Items)
	}
	return nil
}

func timings(start time.Time) map[string]float64 {
	return map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func sanitizeName(input string) string {
	repl := strings.NewReplacer("<", "_", ">", "_", ":", "_", "/", "_", "\\", "_", "|", "_", "?", "_", "*", "_", " ", "_")
	out := repl.Replace(input)
	if len(out) > 120 {
		out = out[:120]
	}
	return out
}
