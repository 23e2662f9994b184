package reconcile

import (
	"context"
	"fmt"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/models"
)

// State tracks an exception-editing session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateEditing
	StatePersisting
	StateError
)

// Session owns the two snapshots of an editing pass: the records as last
// fetched from the server (original) and the records as currently edited
// (current). Edits only ever touch current; the diff against original is
// computed once, when the user confirms.
type Session struct {
	state    State
	original []models.ExceptionDate
	current  []models.ExceptionDate
	lastErr  error
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

func (s *Session) State() State { return s.state }

// Err returns the persistence error from the last failed Done call.
func (s *Session) Err() error { return s.lastErr }

// Current returns the edited snapshot.
func (s *Session) Current() []models.ExceptionDate { return s.current }

// BeginLoad marks the session as waiting on the exception fetch.
func (s *Session) BeginLoad() {
	s.state = StateLoading
}

// Loaded installs the fetched records and returns to the ready state.
func (s *Session) Loaded(records []models.ExceptionDate) {
	s.current = append([]models.ExceptionDate(nil), records...)
	s.state = StateSuccess
}

// BeginEdit snapshots the then-current records as the diff baseline. All
// mutations from here on apply only to the editable copy.
func (s *Session) BeginEdit() {
	s.original = append([]models.ExceptionDate(nil), s.current...)
	s.state = StateEditing
}

// editable reports whether local mutations are allowed. A failed persist
// leaves the session editable so the user can fix and retry.
func (s *Session) editable() bool {
	return s.state == StateEditing || s.state == StateError
}

// Add appends a record to the edited snapshot.
func (s *Session) Add(record models.ExceptionDate) {
	if !s.editable() {
		return
	}
	s.current = append(s.current, record)
}

// Remove drops every record for the given date from the edited snapshot.
func (s *Session) Remove(date string) {
	if !s.editable() {
		return
	}
	kept := s.current[:0]
	for _, record := range s.current {
		if record.Date != date {
			kept = append(kept, record)
		}
	}
	s.current = kept
}

// Update replaces the record for the given date in the edited snapshot.
func (s *Session) Update(record models.ExceptionDate) {
	if !s.editable() {
		return
	}
	for i := range s.current {
		if s.current[i].Date == record.Date {
			s.current[i] = record
			return
		}
	}
}

// Done confirms the edit: it dedupes the edited snapshot, diffs it against
// the baseline, and issues the persistence calls sequentially. On success
// the session returns to the ready state; on failure it stays editable so
// the user can retry, with Err holding the batch error. Either way the
// caller must re-fetch authoritative server state before trusting the local
// snapshot again.
func (s *Session) Done(ctx context.Context, repo Repository, weekly *availability.Week) error {
	if !s.editable() {
		return fmt.Errorf("no editing session in progress")
	}

	s.current = Dedupe(s.current)
	change := Reconcile(s.original, s.current)
	if change.Empty() {
		s.state = StateSuccess
		s.lastErr = nil
		return nil
	}

	s.state = StatePersisting
	if err := Persist(ctx, repo, change, weekly); err != nil {
		s.state = StateError
		s.lastErr = err
		return err
	}

	s.state = StateSuccess
	s.lastErr = nil
	return nil
}
