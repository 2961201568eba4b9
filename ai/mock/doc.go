// Package mock provides test double implementations of the ai interfaces.
//
// The mocks allow tests to exercise delegated query resolution without an
// external language-model service and with controlled, deterministic
// behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	resolver := mock.NewResolver()
//	response, err := resolver.Resolve(ctx, "poster sessions", program)
//
//	// Custom behavior injection
//	resolver.ResolveFunc = func(ctx context.Context, query string, program *core.Conference) (*core.QueryResponse, error) {
//	    return &core.QueryResponse{Query: query, Summary: "canned"}, nil
//	}
//
//	// Check call counts
//	count := resolver.CallCount()
package mock
