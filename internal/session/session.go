// Package session holds the per-user state around the interpreter: the
// selected dataset, the last result, query history, saved queries and stats.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zakazai/querysim/internal/export"
	"github.com/zakazai/querysim/internal/interpreter"
	"github.com/zakazai/querysim/internal/types"
)

// DefaultHistoryLimit is how many history entries are retained
const DefaultHistoryLimit = 20

// DefaultDataset is selected when the catalog has it
const DefaultDataset = "employees"

var (
	ErrEmptyQuery           = errors.New("query is empty")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNoData               = errors.New("no data to export")
	ErrEmptyName            = errors.New("name is required")
	ErrUnknownDataset       = errors.New("unknown dataset")
	ErrNotFound             = errors.New("not found")
)

// HistoryEntry records one executed query
type HistoryEntry struct {
	ID              string    `json:"id"`
	Query           string    `json:"query"`
	Timestamp       time.Time `json:"timestamp"`
	ExecutionTimeMs int       `json:"executionTime"`
	RowCount        int       `json:"rowCount"`
}

// SavedQuery is a named query kept for reuse
type SavedQuery struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Query   string    `json:"query"`
	SavedAt time.Time `json:"savedAt"`
}

// Stats summarizes the session
type Stats struct {
	Dataset        string `json:"dataset"`
	TotalRows      int    `json:"totalRows"`
	QueryCount     int    `json:"queryCount"`
	AvgExecutionMs int    `json:"avgExecutionTime"`
}

// Session is safe for concurrent use. Queries run outside the lock, so a slow
// query does not block history or stats reads.
type Session struct {
	interp       *interpreter.Interpreter
	historyLimit int
	now          func() time.Time
	newID        func() string
	logger       *types.Logger

	mu        sync.Mutex
	selected  *types.Dataset
	current   *types.Result
	history   []HistoryEntry
	saved     []SavedQuery
	totalRows int
}

// Option configures a Session
type Option func(*Session)

// WithHistoryLimit caps the retained history; non-positive values keep the default
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

// WithLogger sets the logger; defaults to types.GlobalLogger
func WithLogger(l *types.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session over an interpreter
func New(interp *interpreter.Interpreter, opts ...Option) *Session {
	s := &Session{
		interp:       interp,
		historyLimit: DefaultHistoryLimit,
		now:          time.Now,
		newID:        uuid.NewString,
		logger:       types.GlobalLogger,
	}
	for _, opt := range opts {
		opt(s)
	}

	c := interp.Catalog()
	s.selected = c.Get(DefaultDataset)
	if s.selected == nil {
		s.selected = c.First()
	}
	return s
}

// Run executes query unless it is blank or needs a confirmation it lacks
func (s *Session) Run(query string, confirm Confirmation) (*types.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if kind := Classify(query); !confirm.Satisfies(kind) {
		return nil, fmt.Errorf("%w: %s query", ErrConfirmationRequired, kind)
	}

	res := s.interp.Execute(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = res
	entry := HistoryEntry{
		ID:              s.newID(),
		Query:           query,
		Timestamp:       s.now(),
		ExecutionTimeMs: res.ExecutionTimeMs,
		RowCount:        res.RowCount,
	}
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
	s.totalRows += len(res.Rows)

	s.logger.Info("%s query finished in %dms (%d rows)", res.Operation, res.ExecutionTimeMs, res.RowCount)
	return res, nil
}

// Current returns the last result, or nil before any query ran
func (s *Session) Current() *types.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// History returns executed queries, most recent first
func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// DeleteHistory removes one history entry
func (s *Session) DeleteHistory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.history {
		if entry.ID == id {
			s.history = append(s.history[:i], s.history[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("history entry %s: %w", id, ErrNotFound)
}

// ClearHistory drops every history entry
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// SaveQuery stores query under name
func (s *Session) SaveQuery(name, query string) (SavedQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SavedQuery{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	saved := SavedQuery{ID: s.newID(), Name: name, Query: query, SavedAt: s.now()}
	s.saved = append([]SavedQuery{saved}, s.saved...)
	return saved, nil
}

// SavedQueries returns saved queries, newest first
func (s *Session) SavedQueries() []SavedQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SavedQuery, len(s.saved))
	copy(out, s.saved)
	return out
}

// DeleteSaved removes one saved query
func (s *Session) DeleteSaved(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.saved {
		if q.ID == id {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("saved query %s: %w", id, ErrNotFound)
}

// Datasets lists the catalog
func (s *Session) Datasets() []*types.Dataset {
	return s.interp.Catalog().Datasets()
}

// Selected returns the selected dataset
func (s *Session) Selected() *types.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// SelectDataset changes the selected dataset
func (s *Session) SelectDataset(name string) (*types.Dataset, error) {
	ds := s.interp.Catalog().Get(name)
	if ds == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ds
	return ds, nil
}

// SampleQueries returns the selected dataset's sample queries
func (s *Session) SampleQueries() []string {
	ds := s.Selected()
	out := make([]string, len(ds.SampleQueries))
	copy(out, ds.SampleQueries)
	return out
}

// Stats summarizes the retained history
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Dataset:    s.selected.Name,
		TotalRows:  s.totalRows,
		QueryCount: len(s.history),
	}
	if len(s.history) > 0 {
		sum := 0
		for _, entry := range s.history {
			sum += entry.ExecutionTimeMs
		}
		st.AvgExecutionMs = int(math.Round(float64(sum) / float64(len(s.history))))
	}
	return st
}

// Export writes the current result to w
func (s *Session) Export(w io.Writer, f export.Format) error {
	res := s.Current()
	if res == nil || len(res.Rows) == 0 {
		return ErrNoData
	}
	return export.Write(w, f, res)
}

// ExportFile writes the current result into dir and returns the file path
func (s *Session) ExportFile(dir string, f export.Format) (string, error) {
	res := s.Current()
	if res == nil || len(res.Rows) == 0 {
		return "", ErrNoData
	}
	return export.WriteFile(dir, f, res)
}
