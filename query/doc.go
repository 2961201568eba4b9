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


// Package query implements the local heuristic query pipeline.
//
// The Engine type orchestrates four stages over a loaded conference program:
//   - Keyword extraction with stop-word and length filtering
//   - Per-session relevance matching (phrase, category, weekday, and
//     keyword-overlap rules, in that precedence order)
//   - Projection of matched sessions into the public result shape
//   - Short and contextual summary generation
//
// Matching is session-granular: once a session matches, all of its papers
// are included in the result. All matches are equally relevant; results are
// returned in corpus order.
package query
