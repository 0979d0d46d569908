// Package server exposes a session over a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/zakazai/querysim/internal/export"
	"github.com/zakazai/querysim/internal/session"
	"github.com/zakazai/querysim/internal/types"
)

// Server handles API requests for a single session
type Server struct {
	session *session.Session
	logger  *types.Logger
}

// New creates a server; a nil logger means types.GlobalLogger
func New(s *session.Session, logger *types.Logger) *Server {
	if logger == nil {
		logger = types.GlobalLogger
	}
	return &Server{session: s, logger: logger}
}

// Router builds the API routes
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/datasets", s.handleListDatasets).Methods("GET")
	r.HandleFunc("/api/datasets/select", s.handleSelectDataset).Methods("POST")
	r.HandleFunc("/api/query", s.handleQuery).Methods("POST")
	r.HandleFunc("/api/history", s.handleListHistory).Methods("GET")
	r.HandleFunc("/api/history", s.handleClearHistory).Methods("DELETE")
	r.HandleFunc("/api/history/{id}", s.handleDeleteHistory).Methods("DELETE")
	r.HandleFunc("/api/saved", s.handleListSaved).Methods("GET")
	r.HandleFunc("/api/saved", s.handleSaveQuery).Methods("POST")
	r.HandleFunc("/api/saved/{id}", s.handleDeleteSaved).Methods("DELETE")
	r.HandleFunc("/api/stats", s.handleStats).Methods("GET")
	r.HandleFunc("/api/export/{format}", s.handleExport).Methods("GET")

	r.Use(s.logRequests)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps session errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrEmptyQuery), errors.Is(err, session.ErrEmptyName):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrUnknownDataset),
		errors.Is(err, session.ErrNoData):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type datasetSummary struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Columns       []string `json:"columns"`
	RowCount      int      `json:"rowCount"`
	SampleQueries []string `json:"sampleQueries"`
	Selected      bool     `json:"selected"`
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	selected := s.session.Selected().Name
	var out []datasetSummary
	for _, ds := range s.session.Datasets() {
		out = append(out, datasetSummary{
			Name:          ds.Name,
			Description:   ds.Description,
			Columns:       ds.Columns,
			RowCount:      len(ds.Rows),
			SampleQueries: ds.SampleQueries,
			Selected:      ds.Name == selected,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSelectDataset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	ds, err := s.session.SelectDataset(req.Name)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// QueryRequest is the body of POST /api/query
type QueryRequest struct {
	Query            string `json:"query"`
	Confirmed        bool   `json:"confirmed"`
	ConfirmationText string `json:"confirmationText"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	res, err := s.session.Run(req.Query, session.Confirmation{
		Confirmed: req.Confirmed,
		Text:      req.ConfirmationText,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.History())
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.session.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.session.DeleteHistory(mux.Vars(r)["id"]); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.SavedQueries())
}

func (s *Server) handleSaveQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	saved, err := s.session.SaveQuery(req.Name, req.Query)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	if err := s.session.DeleteSaved(mux.Vars(r)["id"]); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Stats())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Render fully before writing headers so a failure can still report an error.
	var buf bytes.Buffer
	if err := s.session.Export(&buf, format); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
