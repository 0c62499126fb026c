package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andrewarz/resumeforge/internal/ingestion"
	"github.com/andrewarz/resumeforge/internal/parser"
	"github.com/andrewarz/resumeforge/internal/rendering"
)

// ParseRequest is the body accepted by the parse and render endpoints.
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleParse parses the posted resume text and returns the structured
// record. Parsing is total over content, so the only client errors are
// malformed JSON and a missing text field.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}

	rec := parser.Parse(ingestion.NormalizeLineEndings(req.Text))
	writeJSON(w, http.StatusOK, rec)
}

// handleRender parses the posted resume text and responds with the
// rendered HTML document.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}

	rec := parser.Parse(ingestion.NormalizeLineEndings(req.Text))
	html, err := rendering.RenderHTML(rec, "")
	if err != nil {
		s.logger.Error().Err(err).Msg("render failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render resume"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// decodeParseRequest decodes and validates the request body, writing the
// error response itself when the body is unusable.
func (s *Server) decodeParseRequest(w http.ResponseWriter, r *http.Request) (*ParseRequest, bool) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return nil, false
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
