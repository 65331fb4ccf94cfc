package web

// handlers_import.go implements the import API.
//
// The split of failure surfaces follows the pipeline's error taxonomy:
// request-level errors (bad kind, empty payload, malformed JSON) come
// back as 400 with an error object and no row counts; a processed run
// always comes back as 200 with the full report, even when success is
// false. Panics are caught by the Recoverer middleware and surface as
// a generic 500.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mklatt/assetbase/internal/importer"
	"github.com/mklatt/assetbase/internal/logging"
)

// importRequest is the JSON request body for import and preview.
type importRequest struct {
	Kind       string `json:"kind"`
	HasHeaders bool   `json:"hasHeaders"`
	SkipErrors bool   `json:"skipErrors"`
	Notes      string `json:"notes"`
	Payload    string `json:"payload"`
}

// decodeImportRequest reads and bounds the request body.
func (s *Server) decodeImportRequest(w http.ResponseWriter, r *http.Request) (importer.Request, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxPayloadBytes)

	var in importRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return importer.Request{}, false
	}

	return importer.Request{
		Kind:       importer.Kind(strings.ToLower(strings.TrimSpace(in.Kind))),
		HasHeaders: in.HasHeaders,
		SkipErrors: in.SkipErrors,
		Notes:      in.Notes,
		Payload:    in.Payload,
	}, true
}

// handleImport runs a bulk import and responds with its report.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeImportRequest(w, r)
	if !ok {
		return
	}

	report, err := s.service.Run(r.Context(), req)
	if err != nil {
		s.respondRunError(w, r, err)
		return
	}

	writeJSON(w, report)
}

// handlePreview analyzes a payload without persisting anything.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeImportRequest(w, r)
	if !ok {
		return
	}

	report, err := s.service.Preview(req)
	if err != nil {
		s.respondRunError(w, r, err)
		return
	}

	writeJSON(w, report)
}

// respondRunError maps pipeline errors onto the HTTP surface.
func (s *Server) respondRunError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, importer.ErrInvalidKind) || errors.Is(err, importer.ErrEmptyPayload) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logging.FromContext(r.Context()).Error("import request failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// handleListKinds lists the supported import kinds and their columns.
func (s *Server) handleListKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, importer.Kinds())
}

// handleDownloadTemplate returns the canonical header line for a kind.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	kind := importer.Kind(strings.ToLower(strings.TrimSpace(chi.URLParam(r, "kind"))))

	columns, ok := importer.Columns(kind)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown import kind: "+string(kind))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+string(kind)+`_template.csv"`)
	if _, err := w.Write([]byte(strings.Join(columns, ",") + "\n")); err != nil {
		logging.FromContext(r.Context()).Error("template write failed", "error", err)
	}
}
