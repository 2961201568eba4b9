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

import "fmt"

// ValidateConference validates a full conference program according to domain rules.
//
// Validation rules:
//   - ConferenceName must not be empty
//   - Every session must have a non-empty id and title
//   - Session ids must be unique across the whole corpus, not just within a day
//   - Every paper must have a non-empty id and title
//   - Paper ids must be unique across the whole corpus
//
// NOT validated:
//   - Schedule fields (the program uses free-text dates and times)
//   - Authors and affiliations (papers without authors are legal)
func ValidateConference(conference *Conference) error {
	if conference == nil {
		return fmt.Errorf("%w: conference is nil", ErrInvalidConference)
	}

	if conference.ConferenceName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConference, ErrEmptyConferenceName)
	}

	sessionIDs := make(map[string]bool)
	paperIDs := make(map[string]bool)

	for _, day := range conference.Days {
		for i := range day.Sessions {
			session := &day.Sessions[i]
			if err := ValidateSession(session); err != nil {
				return err
			}
			if sessionIDs[session.SessionIDInternal] {
				return fmt.Errorf("%w: %w: %q", ErrInvalidConference, ErrDuplicateSessionID, session.SessionIDInternal)
			}
			sessionIDs[session.SessionIDInternal] = true

			for j := range session.Papers {
				paper := &session.Papers[j]
				if paperIDs[paper.PaperIDInternal] {
					return fmt.Errorf("%w: %w: %q", ErrInvalidConference, ErrDuplicatePaperID, paper.PaperIDInternal)
				}
				paperIDs[paper.PaperIDInternal] = true
			}
		}
	}

	return nil
}

// ValidateSession validates a single session and its papers.
func ValidateSession(session *Session) error {
	if session == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}

	if session.SessionIDInternal == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrEmptySessionID)
	}

	if session.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrEmptySessionTitle)
	}

	for i := range session.Papers {
		if err := ValidatePaper(&session.Papers[i]); err != nil {
			return fmt.Errorf("%w: session %q: %w", ErrInvalidSession, session.SessionIDInternal, err)
		}
	}

	return nil
}

// ValidatePaper validates a single paper.
func ValidatePaper(paper *Paper) error {
	if paper == nil {
		return fmt.Errorf("%w: paper is nil", ErrInvalidPaper)
	}

	if paper.PaperIDInternal == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyPaperID)
	}

	if paper.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPaper, ErrEmptyPaperTitle)
	}

	return nil
}
