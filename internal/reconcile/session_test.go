package reconcile

import (
	"context"
	"fmt"
	"testing"

	"github.com/meetly-app/meetly-cli/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession()
	if session.State() != StateIdle {
		t.Fatalf("new session state = %v, want idle", session.State())
	}

	session.BeginLoad()
	if session.State() != StateLoading {
		t.Errorf("state after BeginLoad = %v, want loading", session.State())
	}

	session.Loaded([]models.ExceptionDate{exception("1", "2024-03-01", nil, nil, false)})
	if session.State() != StateSuccess {
		t.Errorf("state after Loaded = %v, want success", session.State())
	}

	session.BeginEdit()
	if session.State() != StateEditing {
		t.Errorf("state after BeginEdit = %v, want editing", session.State())
	}
}

func TestSessionMutationsRequireEditing(t *testing.T) {
	session := NewSession()
	session.BeginLoad()
	session.Loaded(nil)

	// Not editing yet: mutations are ignored.
	session.Add(exception("", "2024-03-05", nil, nil, false))
	if len(session.Current()) != 0 {
		t.Error("Add before BeginEdit should be ignored")
	}

	session.BeginEdit()
	session.Add(exception("", "2024-03-05", nil, nil, false))
	if len(session.Current()) != 1 {
		t.Error("Add during editing should apply")
	}
}

func TestSessionRemoveAndUpdate(t *testing.T) {
	session := NewSession()
	session.BeginLoad()
	session.Loaded([]models.ExceptionDate{
		exception("1", "2024-03-01", nil, nil, false),
		exception("2", "2024-03-02", strPtr("09:00"), strPtr("12:00"), true),
	})
	session.BeginEdit()

	session.Remove("2024-03-01")
	if got := session.Current(); len(got) != 1 || got[0].Date != "2024-03-02" {
		t.Errorf("after Remove, current = %+v", got)
	}

	session.Update(exception("", "2024-03-02", strPtr("10:00"), strPtr("12:00"), true))
	if got := session.Current()[0]; *got.StartTime != "10:00" {
		t.Errorf("after Update, start = %q, want 10:00", *got.StartTime)
	}
}

func TestSessionDoneEmptyDiff(t *testing.T) {
	records := []models.ExceptionDate{exception("1", "2024-03-01", nil, nil, false)}

	session := NewSession()
	session.BeginLoad()
	session.Loaded(records)
	session.BeginEdit()

	repo := newFakeRepo()
	if err := session.Done(context.Background(), repo, nil); err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	if len(repo.calls) != 0 {
		t.Errorf("no-op edit should issue no calls, got %v", repo.calls)
	}
	if session.State() != StateSuccess {
		t.Errorf("state = %v, want success", session.State())
	}
}

func TestSessionDonePersistsDiff(t *testing.T) {
	session := NewSession()
	session.BeginLoad()
	session.Loaded([]models.ExceptionDate{exception("srv-1", "2024-03-01", nil, nil, false)})
	session.BeginEdit()

	session.Remove("2024-03-01")
	session.Add(exception("", "2024-03-08", nil, nil, true))

	repo := newFakeRepo()
	if err := session.Done(context.Background(), repo, nil); err != nil {
		t.Fatalf("Done failed: %v", err)
	}

	if len(repo.added) != 1 || repo.added[0].Date != "2024-03-08" {
		t.Errorf("added = %+v, want only 2024-03-08", repo.added)
	}
	if len(repo.deletedIDs) != 1 || repo.deletedIDs[0] != "srv-1" {
		t.Errorf("deletedIDs = %v, want [srv-1]", repo.deletedIDs)
	}
}

func TestSessionDoneDedupesBeforeDiff(t *testing.T) {
	session := NewSession()
	session.BeginLoad()
	session.Loaded(nil)
	session.BeginEdit()

	// The same exception added twice must persist once.
	record := exception("", "2024-03-08", nil, nil, true)
	session.Add(record)
	session.Add(record)

	repo := newFakeRepo()
	if err := session.Done(context.Background(), repo, nil); err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	if len(repo.added) != 1 {
		t.Errorf("duplicate add persisted %d times, want 1: %+v", len(repo.added), repo.added)
	}
}

func TestSessionStaysEditableAfterFailure(t *testing.T) {
	session := NewSession()
	session.BeginLoad()
	session.Loaded(nil)
	session.BeginEdit()
	session.Add(exception("", "2024-03-08", nil, nil, true))

	repo := newFakeRepo()
	repo.addErr["2024-03-08"] = fmt.Errorf("backend down")

	if err := session.Done(context.Background(), repo, nil); err == nil {
		t.Fatal("expected Done to report the failure")
	}
	if session.State() != StateError {
		t.Fatalf("state = %v, want error", session.State())
	}
	if session.Err() == nil {
		t.Error("Err should hold the batch error")
	}

	// The user can keep editing and retry.
	session.Remove("2024-03-08")
	if len(session.Current()) != 0 {
		t.Error("session should remain editable after a failed persist")
	}

	repo2 := newFakeRepo()
	if err := session.Done(context.Background(), repo2, nil); err != nil {
		t.Fatalf("retry after fixing should succeed: %v", err)
	}
	if session.Err() != nil {
		t.Error("Err should clear after a successful retry")
	}
}

func TestSessionDoneWithoutEditing(t *testing.T) {
	session := NewSession()
	if err := session.Done(context.Background(), newFakeRepo(), nil); err == nil {
		t.Error("Done without an editing session should fail")
	}
}
