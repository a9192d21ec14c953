package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"guestbook/logger"
	"guestbook/metrics"
	"guestbook/models"

	"github.com/google/uuid"
)

const (
	thankYouMsg     = "Thank you for signing the guestbook!"
	genericErrorMsg = "Something went wrong. Please try again later."
)

// Repository abstracts submission persistence & retrieval.
type Repository interface {
	InsertSubmission(ctx context.Context, sub models.Submission) error
	RecentSubmissions(ctx context.Context, limit int64) ([]models.Submission, error)
}

type Server struct {
	mux       *http.ServeMux
	hub       *Hub
	repo      Repository
	listLimit int64
}

func NewServer(r Repository, listLimit int64) *Server {
	s := &Server{mux: http.NewServeMux(), hub: NewHub(), repo: r, listLimit: listLimit}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.withRequestID(s.handleGuestbook))
	s.mux.HandleFunc("/live", s.handleLive)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// withRequestID tags each request with a uuid for log correlation.
func (s *Server) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request",
			logger.FieldKV("request_id", uuid.NewString()),
			logger.FieldKV("method", r.Method),
			logger.FieldKV("path", r.URL.Path))
		next(w, r)
	}
}

// allowCORS opens the endpoint to all origins.
func allowCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
}

func (s *Server) handleGuestbook(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	allowCORS(w)
	switch r.Method {
	case http.MethodPost:
		s.handleSubmit(w, r)
	case http.MethodGet:
		s.handleList(w, r)
	case http.MethodOptions:
		// CORS preflight: headers only, no body, no store access.
		w.WriteHeader(http.StatusNoContent)
	default:
		logger.Warn("method not allowed", logger.FieldKV("method", r.Method))
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := ValidateSubmitRequest(r); err != nil {
		logger.Warn("submission rejected", logger.FieldKV("reason", err.Error()))
		metrics.IncValidationFailure()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sub := models.Submission{
		Name:      strings.TrimSpace(r.PostForm.Get("name")),
		Message:   strings.TrimSpace(r.PostForm.Get("message")),
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.InsertSubmission(r.Context(), sub); err != nil {
		logger.Error("insert submission failed", err)
		metrics.IncStoreError()
		http.Error(w, genericErrorMsg, http.StatusInternalServerError)
		return
	}
	metrics.IncSubmissionAccepted()
	s.hub.Broadcast(sub)
	logger.Info("submission stored", logger.FieldKV("name_len", len(sub.Name)), logger.FieldKV("message_len", len(sub.Message)))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, thankYouMsg)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	subs, err := s.repo.RecentSubmissions(r.Context(), s.listLimit)
	if err != nil {
		logger.Error("fetch submissions failed", err)
		metrics.IncStoreError()
		http.Error(w, genericErrorMsg, http.StatusInternalServerError)
		return
	}
	metrics.IncListRender()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, RenderPage(subs))
}
