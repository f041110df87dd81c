// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"

	"police-assistant/internal/assistant"
	"police-assistant/internal/common/config"
	stderrors "police-assistant/internal/common/errors"
	"police-assistant/internal/common/logger"
	"police-assistant/internal/models"
	"police-assistant/internal/records"
)

// defaultSessionID is used when a client sends no session id; such
// clients share one anonymous session, which matches a single-user
// deployment.
const defaultSessionID = "default"

// Server exposes the assistant over a small JSON API.
type Server struct {
	svc        *assistant.Service
	caseSearch records.CaseSearcher
	cfg        config.ServerConfig
	log        logger.Logger
	mux        *http.ServeMux
}

func New(svc *assistant.Service, caseSearch records.CaseSearcher, cfg config.ServerConfig, log logger.Logger) *Server {
	s := &Server{
		svc:        svc,
		caseSearch: caseSearch,
		cfg:        cfg,
		log:        log.WithFields(map[string]interface{}{"component": "server"}),
		mux:        http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/chat", s.handleChat)
	s.mux.HandleFunc("/api/session/clear", s.handleClearSession)
	s.mux.HandleFunc("/api/complaints", s.handleComplaints)
	s.mux.HandleFunc("/api/cases/search", s.handleCaseSearch)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.mux,
		ReadTimeout:  config.GetDuration(s.cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(s.cfg.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", map[string]interface{}{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
	Language  string `json:"language"`
}

type chatResponse struct {
	SessionID  string          `json:"sessionId"`
	Reply      string          `json:"reply"`
	Intent     models.Intent   `json:"intent"`
	Confidence float64         `json:"confidence"`
	Entities   models.Entities `json:"entities"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req chatRequest
	if !s.decodeValidated(w, r, chatRequestSchema, &req) {
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}
	lang := models.Language(req.Language)
	if !lang.Valid() {
		lang = models.LangEnglish
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.GetDuration(s.cfg.RequestTimeout))
		defer cancel()
	}

	reply := s.svc.Respond(ctx, sessionID, req.Text, lang)
	s.writeJSON(w, http.StatusOK, chatResponse{
		SessionID:  sessionID,
		Reply:      reply.Text,
		Intent:     reply.Intent,
		Confidence: reply.Confidence,
		Entities:   reply.Entities,
		Timestamp:  time.Now().UTC(),
	})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req struct {
		SessionID string `json:"sessionId"`
	}
	if !s.decodeValidated(w, r, clearSessionRequestSchema, &req) {
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	s.svc.ClearSession(r.Context(), req.SessionID)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared", "sessionId": req.SessionID})
}

type complaintRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Language    string `json:"language"`
}

func (s *Server) handleComplaints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req complaintRequest
	if !s.decodeValidated(w, r, complaintRequestSchema, &req) {
		return
	}
	lang := models.Language(req.Language)
	if !lang.Valid() {
		lang = models.LangEnglish
	}

	rec, err := s.svc.FileComplaint(r.Context(), models.ComplaintCategory(req.Category), req.Description, req.Location, req.Contact, lang)
	if err != nil {
		s.writeStandardError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleCaseSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	hits, err := s.caseSearch.Search(r.Context(), query)
	if err != nil {
		s.writeStandardError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"query": query, "results": hits})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeValidated reads the body, checks it against schema, and decodes
// it into dst. Returns false after writing the error response.
func (s *Server) decodeValidated(w http.ResponseWriter, r *http.Request, schema string, dst interface{}) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "unreadable request body")
		return false
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return false
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		s.writeError(w, http.StatusBadRequest, strings.Join(issues, "; "))
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func (s *Server) writeStandardError(w http.ResponseWriter, err error) {
	var stdErr *stderrors.StandardError
	if errors.As(err, &stdErr) {
		s.writeJSON(w, stderrors.HTTPStatus(stdErr.Code), map[string]interface{}{
			"error":   stdErr.Message,
			"code":    stdErr.Code,
			"details": stdErr.Details,
		})
		return
	}
	s.log.Error("unclassified handler error", map[string]interface{}{"error": err.Error()})
	s.writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("response encode failed", map[string]interface{}{"error": err.Error()})
	}
}
