// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package confsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/poiesic/confsearch/ai"
	"github.com/poiesic/confsearch/ai/openai"
	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/query"
	"github.com/poiesic/confsearch/storage"
	"github.com/poiesic/confsearch/storage/badger"
)

// Service is the top-level entry point: it owns the corpus store, the local
// query engine, and the optional delegated resolver, and routes each query to
// whichever resolution path is configured.
type Service struct {
	backend  *badger.Backend
	repo     storage.ProgramRepository
	engine   *query.Engine
	resolver ai.Resolver
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	filePath   string
	aiConfig   *ai.Config
	resolver   ai.Resolver
	logger     *slog.Logger
	engineOpts []query.Option
}

// WithDatabasePath stores the corpus on disk at the given directory instead
// of in memory. An on-disk corpus survives process restarts, so large
// programs are loaded once and reopened many times.
func WithDatabasePath(filePath string) ServiceOption {
	return func(o *serviceOptions) {
		o.filePath = filePath
	}
}

// WithAIConfig configures delegated query resolution. When the config
// carries a token, queries bypass the local heuristic pipeline entirely and
// go to the external model; without a token the config is ignored.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithResolver injects a specific resolver implementation, taking precedence
// over WithAIConfig.
func WithResolver(resolver ai.Resolver) ServiceOption {
	return func(o *serviceOptions) {
		o.resolver = resolver
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// WithPoolSize sets the worker pool size of the local query engine.
func WithPoolSize(size int) ServiceOption {
	return func(o *serviceOptions) {
		o.engineOpts = append(o.engineOpts, query.WithPoolSize(size))
	}
}

// New creates a Service. By default the corpus lives in memory and queries
// run on the local heuristic pipeline.
func New(opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(options.filePath, options.filePath == "")
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewProgramRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	engine, err := query.NewEngine(repo,
		append([]query.Option{query.WithLogger(options.logger)}, options.engineOpts...)...)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	resolver := options.resolver
	if resolver == nil && options.aiConfig != nil && options.aiConfig.Enabled() {
		resolver, err = openai.NewResolver(options.aiConfig)
		if err != nil {
			engine.Close()
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:  backend,
		repo:     repo,
		engine:   engine,
		resolver: resolver,
		logger:   options.logger,
	}, nil
}

// Close releases the engine and the corpus store.
func (s *Service) Close() error {
	if err := s.engine.Close(); err != nil {
		s.logger.Error("error closing query engine", "err", err)
	}
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing program repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// LoadProgram parses a conference program from JSON, validates it, and
// replaces the stored corpus with it.
func (s *Service) LoadProgram(ctx context.Context, r io.Reader) error {
	var program core.Conference
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&program); err != nil {
		return fmt.Errorf("parsing program: %w", err)
	}

	if err := s.repo.PutProgram(ctx, &program); err != nil {
		return err
	}

	s.logger.Info("program loaded",
		"conference", program.ConferenceName,
		"days", len(program.Days),
		"sessions", program.SessionCount(),
		"papers", program.PaperCount())
	return nil
}

// LoadProgramFile loads a conference program from a JSON file on disk.
func (s *Service) LoadProgramFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening program file: %w", err)
	}
	defer f.Close()

	return s.LoadProgram(ctx, f)
}

// Search answers one query. With a delegated resolver configured the whole
// pipeline is the resolver's; otherwise the local heuristic engine answers.
// Returns query.ErrCorpusUnavailable when no program has been loaded.
func (s *Service) Search(ctx context.Context, q string) (*core.QueryResponse, error) {
	if s.resolver == nil {
		return s.engine.Search(ctx, q)
	}

	program, err := s.repo.GetProgram(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotLoaded) {
			return nil, query.ErrCorpusUnavailable
		}
		return nil, err
	}

	return s.resolver.Resolve(ctx, q, program)
}

// Overview returns the corpus-level accounting of the loaded program.
func (s *Service) Overview(ctx context.Context) (core.Overview, error) {
	return s.engine.Overview(ctx)
}

// Repository exposes the underlying program repository for direct record
// access.
func (s *Service) Repository() storage.ProgramRepository {
	return s.repo
}
