package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/confsearch/core"
)

// Resolver is a test double for ai.Resolver.
// It allows custom behavior injection via a function field.
type Resolver struct {
	// ResolveFunc is called by Resolve if set.
	// If nil, a minimal well-formed response is returned.
	ResolveFunc func(ctx context.Context, query string, program *core.Conference) (*core.QueryResponse, error)

	callCount int
}

// NewResolver creates a mock resolver with default behavior.
// Note: Returns concrete type to allow behavior injection and call-count
// assertions.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the injected behavior's response, or a minimal empty
// result set mentioning the query.
func (m *Resolver) Resolve(ctx context.Context, query string, program *core.Conference) (*core.QueryResponse, error) {
	m.callCount++

	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, query, program)
	}

	return &core.QueryResponse{
		Query:             query,
		Summary:           fmt.Sprintf("No sessions or papers found matching \"%s\".", query),
		ContextualSummary: "No additional context available as no matching results were found.",
		Results:           []core.SearchResult{},
	}, nil
}

// CallCount returns the number of times Resolve was called.
func (m *Resolver) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *Resolver) Reset() {
	m.callCount = 0
	m.ResolveFunc = nil
}
