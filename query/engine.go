package query

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/storage"
)

// Engine answers free-text queries against a loaded conference program using
// the local heuristic pipeline: keyword extraction, per-session relevance
// matching, result projection, and summary generation.
type Engine struct {
	repo    storage.ProgramRepository
	pool    *ants.Pool
	monitor QueryMonitor
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for the session scan.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}

		if e.pool != nil {
			e.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithMonitor sets a monitor receiving pipeline callbacks.
// Default is a no-op monitor.
func WithMonitor(monitor QueryMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// NewEngine creates a new query engine over the given program repository.
func NewEngine(repo storage.ProgramRepository, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		repo:    repo,
		pool:    pool,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Close releases the scan worker pool.
func (e *Engine) Close() error {
	e.pool.Release()
	return nil
}

// Search runs the full pipeline for one query and returns the assembled
// response. Returns ErrCorpusUnavailable if no program has been loaded.
// Matched sessions appear in the response in corpus order: the per-session
// predicate runs concurrently but results are collected positionally, so the
// parallel scan has no observable effect on output.
func (e *Engine) Search(ctx context.Context, query string) (*core.QueryResponse, error) {
	loaded, err := e.repo.Loaded(ctx)
	if err != nil {
		return nil, err
	}
	if !loaded {
		return nil, ErrCorpusUnavailable
	}

	e.monitor.Start(query)

	normalized := Normalize(query)
	keywords := ExtractKeywords(query)
	e.monitor.KeywordsExtracted(keywords)

	var sessions []*core.Session
	if err := e.repo.ScanSessions(ctx, func(session *core.Session) error {
		sessions = append(sessions, session)
		return nil
	}); err != nil {
		if errors.Is(err, storage.ErrNotLoaded) {
			return nil, ErrCorpusUnavailable
		}
		return nil, err
	}

	rules := make([]MatchRule, len(sessions))
	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			rules[i] = MatchSession(sessions[i], keywords, normalized)
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded); run inline.
			task()
		}
	}
	wg.Wait()

	results := make([]core.SearchResult, 0, len(sessions))
	for i, session := range sessions {
		if rules[i] == RuleNone {
			continue
		}
		e.monitor.SessionMatched(session, rules[i])
		results = append(results, ProjectSession(session))
	}

	summary, contextual := Summarize(results, query)
	response := &core.QueryResponse{
		Query:             query,
		Summary:           summary,
		ContextualSummary: contextual,
		Results:           results,
	}

	e.monitor.Finish(response)
	e.logger.Debug("query processed",
		"query", query,
		"keywords", len(keywords),
		"sessions", len(sessions),
		"matches", len(results))

	return response, nil
}

// Overview returns the corpus-level accounting of the loaded program.
// Returns ErrCorpusUnavailable if no program has been loaded.
func (e *Engine) Overview(ctx context.Context) (core.Overview, error) {
	overview, err := e.repo.Overview(ctx)
	if errors.Is(err, storage.ErrNotLoaded) {
		return core.Overview{}, ErrCorpusUnavailable
	}
	return overview, err
}
