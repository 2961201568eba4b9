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


// Package ai defines the delegated query resolution abstraction.
//
// The local heuristic pipeline in package query answers queries without any
// external service. This package defines the alternative: a Resolver that
// hands the query and the full program to a language model and returns
// whatever response it assembles. The facade selects between the two based
// on configuration; the rest of the system depends only on the abstractions
// here, never on a concrete provider.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewResolver) return INTERFACE types to enforce
// abstraction and prevent accidental coupling to concrete implementations.
// Test utility constructors (mock.NewResolver) return CONCRETE types to
// enable behavior injection via function fields and call-count assertions.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithToken(os.Getenv("OPENAI_API_KEY")))
//	resolver, err := openai.NewResolver(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	response, err := resolver.Resolve(ctx, "poster sessions about SAR", program)
package ai
