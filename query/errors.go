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


package query

import "errors"

var (
	// ErrCorpusUnavailable is returned when a query arrives before a
	// conference program has been loaded. It is surfaced to the caller and
	// never retried internally.
	ErrCorpusUnavailable = errors.New("conference corpus not loaded")

	// ErrRepositoryRequired is returned when a program repository is not provided.
	ErrRepositoryRequired = errors.New("program repository required")
)
