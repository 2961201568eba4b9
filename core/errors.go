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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidConference indicates a Conference failed validation.
	ErrInvalidConference = errors.New("invalid conference program")

	// ErrEmptyConferenceName indicates the ConferenceName field is empty.
	ErrEmptyConferenceName = errors.New("conference name cannot be empty")

	// ErrInvalidSession indicates a Session failed validation.
	ErrInvalidSession = errors.New("invalid session")

	// ErrEmptySessionID indicates the SessionIDInternal field is empty.
	ErrEmptySessionID = errors.New("session id cannot be empty")

	// ErrEmptySessionTitle indicates the session Title field is empty.
	ErrEmptySessionTitle = errors.New("session title cannot be empty")

	// ErrDuplicateSessionID indicates a session id appears more than once in the corpus.
	ErrDuplicateSessionID = errors.New("duplicate session id")

	// ErrInvalidPaper indicates a Paper failed validation.
	ErrInvalidPaper = errors.New("invalid paper")

	// ErrEmptyPaperID indicates the PaperIDInternal field is empty.
	ErrEmptyPaperID = errors.New("paper id cannot be empty")

	// ErrEmptyPaperTitle indicates the paper Title field is empty.
	ErrEmptyPaperTitle = errors.New("paper title cannot be empty")

	// ErrDuplicatePaperID indicates a paper id appears more than once in the corpus.
	ErrDuplicatePaperID = errors.New("duplicate paper id")
)
