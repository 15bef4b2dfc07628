package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/format-analyzer/internal/batch"
	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/types"
)

// handleSuggest returns the best format for the content.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req types.ContentRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.analyzer.SuggestFormat(req.Content, req.Title))
}

// handleAnalyze returns scores and raw signals.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.ContentRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.analyzer.AnalyzeContent(req.Content, req.Title))
}

// handleValidate checks content against a named format.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if !s.analyzer.KnowsFormat(req.Format) {
		s.writeError(w, &ErrValidation{Field: "format", Message: fmt.Sprintf("unknown format %q", req.Format)})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.analyzer.ValidateFormatContent(req.Content, req.Format, req.Title))
}

// handleWeights lists weights for every format.
func (s *Server) handleWeights(w http.ResponseWriter, _ *http.Request) {
	resp, err := s.analyzer.FormatSignalWeights("")
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleFormatWeights lists weights for one format.
func (s *Server) handleFormatWeights(w http.ResponseWriter, r *http.Request) {
	resp, err := s.analyzer.FormatSignalWeights(r.PathValue("format"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleFormats lists the format registry.
func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.FormatsResponse{Formats: formats.Sorted()})
}

// handleBatch suggests formats for up to MaxBatchDocuments documents.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	for i, doc := range req.Documents {
		if doc.Format != "" && !s.analyzer.KnowsFormat(doc.Format) {
			s.writeError(w, &ErrValidation{
				Field:   fmt.Sprintf("documents[%d].format", i),
				Message: fmt.Sprintf("unknown format %q", doc.Format),
			})
			return
		}
	}

	results, err := batch.Run(r.Context(), s.analyzer, req.Documents, batch.Options{Workers: s.workers})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.BatchResponse{Results: results, Scan: batch.Scan(results)})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-limited JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &ErrBodyTooLarge{Limit: maxErr.Limit}
		case errors.Is(err, io.EOF):
			return &ErrInvalidBody{Cause: errors.New("empty body")}
		default:
			return &ErrInvalidBody{Cause: err}
		}
	}
	if dec.More() {
		return &ErrInvalidBody{Cause: errors.New("unexpected data after JSON object")}
	}

	if err := s.validator.Struct(dst); err != nil {
		return extractValidationErrors(err)
	}
	return nil
}

// extractValidationErrors converts validator errors to an ErrValidation.
func extractValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: jsonFieldPath(ve.Namespace()), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// jsonFieldPath turns "BatchRequest.Documents[0].Content" into
// "documents[0].content".
func jsonFieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.ToLower(ns)
}
