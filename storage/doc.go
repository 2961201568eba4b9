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


// Package storage provides the corpus storage abstraction for confsearch.
//
// The ProgramRepository interface decouples the query engine from the
// storage implementation. A conference program is loaded once via PutProgram
// and is read-only afterwards; repositories must support concurrent readers.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.ProgramRepository interface to
// enforce abstraction and keep consumers decoupled from BadgerDB specifics:
//
//	repo, err := badger.NewProgramRepository(backend)  // returns storage.ProgramRepository
//
// # Usage
//
// Create an on-disk repository:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	repo, err := badger.NewProgramRepository(backend)
//	defer repo.Close()
//
// Use in tests (or for plain load-once process lifetimes) with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	defer backend.Close()
//
// # Ordering
//
// Session records are keyed by their (day, position) indices with big-endian
// encoding, so lexicographic key iteration yields corpus order. ScanSessions
// relies on this to give the query engine a stable, order-preserving scan.
package storage
