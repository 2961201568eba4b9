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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/confsearch/ai"
	"github.com/poiesic/confsearch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Resolver implements ai.Resolver using OpenAI-compatible chat APIs.
// Upstream failures never propagate to the caller: every exchange yields a
// well-formed response, degrading to an explanatory summary with empty
// results when the service or its output is unusable.
type Resolver struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newResolver is an internal constructor that returns the concrete type.
func newResolver(config *ai.Config) (*Resolver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// "none" satisfies local OpenAI-compatible services that don't require
	// authentication
	token := config.Token
	if token == "" {
		token = "none"
	}
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-resolver"),
	}, nil
}

// NewResolver creates a resolver using the provided configuration.
//
// Returns ai.Resolver interface to enforce abstraction.
func NewResolver(config *ai.Config) (ai.Resolver, error) {
	return newResolver(config)
}

// Resolve hands the query and the full program to the model and parses the
// structured response. The returned error is always nil for service-level
// failures; callers receive a fallback response instead.
func (r *Resolver) Resolve(ctx context.Context, query string, program *core.Conference) (*core.QueryResponse, error) {
	programJSON, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return nil, err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserMessage(string(programJSON), query)),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content,
		llms.WithTemperature(r.config.Temperature),
		llms.WithMaxTokens(r.config.MaxTokens),
		llms.WithJSONMode())
	if err != nil {
		r.logger.Error("chat completion failed", "err", err)
		return serviceFallback(query, err), nil
	}

	if len(response.Choices) < 1 {
		r.logger.Error("no choices returned from model")
		return serviceFallback(query, nil), nil
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	// Try to repair common JSON issues
	responseText = repairJSON(responseText)

	var parsed core.QueryResponse
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		r.logger.Warn("error parsing resolver response",
			"response", responseText,
			"err", err)
		return parseFallback(query), nil
	}

	r.finalize(&parsed, query)
	return &parsed, nil
}

// finalize fills required fields the model may have omitted and logs
// suspicious result sets.
func (r *Resolver) finalize(response *core.QueryResponse, query string) {
	if response.Query == "" {
		response.Query = query
	}
	if response.Summary == "" {
		response.Summary = "Search completed."
	}
	if response.ContextualSummary == "" {
		response.ContextualSummary = "Additional context not available."
	}
	if response.Results == nil {
		response.Results = []core.SearchResult{}
	}

	seen := make(map[string]bool, len(response.Results))
	for _, result := range response.Results {
		if seen[result.SessionID] {
			r.logger.Warn("duplicate session id in resolver response",
				"session_id", result.SessionID)
		}
		seen[result.SessionID] = true
	}

	r.logger.Debug("query resolved",
		"query", query,
		"results", len(response.Results))
}

// parseFallback is returned when the model's output is not valid JSON.
func parseFallback(query string) *core.QueryResponse {
	return &core.QueryResponse{
		Query:             query,
		Summary:           "Sorry, I encountered an error processing your query. Please try rephrasing your question.",
		ContextualSummary: "The system experienced a parsing error while processing the conference data.",
		Results:           []core.SearchResult{},
	}
}

// serviceFallback is returned when the service call itself fails. Known
// OpenAI error codes get specific guidance.
func serviceFallback(query string, err error) *core.QueryResponse {
	summary := "Sorry, I'm unable to process your query at the moment."
	if err != nil {
		message := err.Error()
		switch {
		case strings.Contains(message, "invalid_api_key"):
			summary = "Invalid API key. Please check your OpenAI API key and try again."
		case strings.Contains(message, "insufficient_quota"):
			summary = "API quota exceeded. Please check your OpenAI account billing."
		case strings.Contains(message, "rate_limit_exceeded"):
			summary = "Rate limit exceeded. Please wait a moment and try again."
		}
	}

	return &core.QueryResponse{
		Query:             query,
		Summary:           summary,
		ContextualSummary: "Please verify your API key configuration and try again.",
		Results:           []core.SearchResult{},
	}
}
