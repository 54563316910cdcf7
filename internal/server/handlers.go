package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"acuity/internal"
	"acuity/internal/export"
	"acuity/internal/logging"
)

func logFromRequest(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleParse accepts a multipart invoice upload and returns the full parse
// envelope. The row loop runs on its own goroutine; the handler only awaits
// the whole result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".xls", ".xlsx", ".html", ".htm":
	default:
		writeError(w, http.StatusBadRequest, "only .xls, .xlsx and .html files are supported")
		return
	}

	tmpPath, err := s.saveUpload(file, ext)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(tmpPath)

	aggregate := strings.EqualFold(r.FormValue("aggregate"), "true")
	select {
	case result := <-s.parser.ParseFileAsync(r.Context(), tmpPath, aggregate):
		writeJSON(w, http.StatusOK, result)
	case <-r.Context().Done():
	}
}

func (s *Server) saveUpload(file io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(s.cfg.UploadDir, "upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

type exportRequest struct {
	Items    []internal.LineItem      `json:"items"`
	Metadata internal.InvoiceMetadata `json:"metadata"`
	Summary  internal.ParseSummary    `json:"summary"`
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExport(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="acuity_invoice.csv"`)
	if err := export.WriteCSV(w, req.Items); err != nil {
		logFromRequest(r).Error("csv export failed", "error", err)
	}
}

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExport(w, r)
	if !ok {
		return
	}

	f := export.BuildWorkbook(internal.ParseResult{
		Items:    req.Items,
		Metadata: req.Metadata,
		Summary:  req.Summary,
	})
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="acuity_invoice.xlsx"`)
	if _, err := f.WriteTo(w); err != nil {
		logFromRequest(r).Error("excel export failed", "error", err)
	}
}

func decodeExport(w http.ResponseWriter, r *http.Request) (exportRequest, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return exportRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
