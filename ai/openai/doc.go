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


// Package openai implements delegated query resolution using OpenAI-compatible APIs.
//
// This package implements the ai.Resolver interface using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM). The model receives the full conference program
// and the raw query, and assembles the entire response itself.
//
// Service and parsing failures never reach the caller as errors: the resolver
// returns a well-formed response with an explanatory summary and empty
// results instead, so a broken upstream degrades the answer, not the system.
//
// # Usage
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	    ai.WithToken(os.Getenv("OPENAI_API_KEY")),
//	)
//
//	resolver, err := openai.NewResolver(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	response, err := resolver.Resolve(ctx, "poster sessions about SAR", program)
package openai
