package reconcile

import (
	"testing"

	"github.com/meetly-app/meetly-cli/internal/models"
)

func strPtr(s string) *string { return &s }

func exception(id, date string, start, end *string, available bool) models.ExceptionDate {
	return models.ExceptionDate{
		ID:          id,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: available,
	}
}

func TestReconcileNoChanges(t *testing.T) {
	records := []models.ExceptionDate{
		exception("1", "2024-03-01", nil, nil, false),
		exception("2", "2024-03-02", strPtr("09:00"), strPtr("12:00"), true),
	}

	change := Reconcile(records, records)
	if !change.Empty() {
		t.Errorf("identical snapshots should produce an empty change, got %+v", change)
	}
}

func TestReconcileAdds(t *testing.T) {
	original := []models.ExceptionDate{
		exception("1", "2024-03-01", nil, nil, false),
	}
	added := exception("", "2024-03-05", nil, nil, false)
	current := append(append([]models.ExceptionDate{}, original...), added)

	change := Reconcile(original, current)

	if len(change.ToAdd) != 1 || change.ToAdd[0].Date != "2024-03-05" {
		t.Errorf("ToAdd = %+v, want the new 2024-03-05 record", change.ToAdd)
	}
	if len(change.ToRemove) != 0 || len(change.ToUpdate) != 0 {
		t.Errorf("unexpected removals/updates: %+v", change)
	}
}

func TestReconcileRemovals(t *testing.T) {
	original := []models.ExceptionDate{
		exception("1", "2024-03-01", nil, nil, false),
		exception("2", "2024-03-02", nil, nil, false),
	}
	current := original[:1]

	change := Reconcile(original, current)

	if len(change.ToRemove) != 1 || change.ToRemove[0].Date != "2024-03-02" {
		t.Errorf("ToRemove = %+v, want the dropped 2024-03-02 record", change.ToRemove)
	}
	if len(change.ToAdd) != 0 || len(change.ToUpdate) != 0 {
		t.Errorf("unexpected adds/updates: %+v", change)
	}
}

func TestReconcileFieldChangeBecomesUpdate(t *testing.T) {
	original := []models.ExceptionDate{
		exception("srv-7", "2024-03-01", strPtr("09:00"), strPtr("12:00"), true),
	}
	current := []models.ExceptionDate{
		exception("", "2024-03-01", strPtr("10:00"), strPtr("12:00"), true),
	}

	change := Reconcile(original, current)

	if len(change.ToUpdate) != 1 {
		t.Fatalf("ToUpdate = %+v, want one record", change.ToUpdate)
	}
	updated := change.ToUpdate[0]
	if updated.ID != "srv-7" {
		t.Errorf("update should carry the existing server id, got %q", updated.ID)
	}
	if *updated.StartTime != "10:00" {
		t.Errorf("update should carry the edited fields, got start %q", *updated.StartTime)
	}
	if len(change.ToAdd) != 0 || len(change.ToRemove) != 0 {
		t.Errorf("a field change must not become add+remove: %+v", change)
	}
}

func TestReconcileFullDayVsTimedDiffer(t *testing.T) {
	original := []models.ExceptionDate{
		exception("1", "2024-03-01", nil, nil, false),
	}
	current := []models.ExceptionDate{
		exception("", "2024-03-01", strPtr("09:00"), strPtr("12:00"), false),
	}

	change := Reconcile(original, current)
	if len(change.ToUpdate) != 1 {
		t.Errorf("full-day to timed should be an update, got %+v", change)
	}
}

func TestReconcileOrderInsensitive(t *testing.T) {
	a := exception("1", "2024-03-01", nil, nil, false)
	b := exception("2", "2024-03-02", strPtr("09:00"), strPtr("12:00"), true)

	change := Reconcile(
		[]models.ExceptionDate{a, b},
		[]models.ExceptionDate{b, a},
	)
	if !change.Empty() {
		t.Errorf("reordering must not produce changes, got %+v", change)
	}
}

func TestDedupe(t *testing.T) {
	full := exception("", "2024-03-01", nil, nil, false)
	timed := exception("", "2024-03-01", strPtr("09:00"), strPtr("12:00"), false)

	t.Run("collapses identical records", func(t *testing.T) {
		out := Dedupe([]models.ExceptionDate{full, full, full})
		if len(out) != 1 {
			t.Errorf("got %d records, want 1", len(out))
		}
	})

	t.Run("keeps records differing in any key field", func(t *testing.T) {
		available := full
		available.IsAvailable = true

		out := Dedupe([]models.ExceptionDate{full, timed, available})
		if len(out) != 3 {
			t.Errorf("got %d records, want 3", len(out))
		}
	})

	t.Run("keeps first occurrence in order", func(t *testing.T) {
		other := exception("", "2024-03-09", nil, nil, true)
		out := Dedupe([]models.ExceptionDate{full, other, full})
		if len(out) != 2 {
			t.Fatalf("got %d records, want 2", len(out))
		}
		if out[0].Date != "2024-03-01" || out[1].Date != "2024-03-09" {
			t.Errorf("order not preserved: %+v", out)
		}
	})

	t.Run("pointer identity does not matter", func(t *testing.T) {
		// Same times behind distinct pointers still collapse.
		first := exception("", "2024-03-01", strPtr("09:00"), strPtr("12:00"), false)
		second := exception("", "2024-03-01", strPtr("09:00"), strPtr("12:00"), false)

		out := Dedupe([]models.ExceptionDate{first, second})
		if len(out) != 1 {
			t.Errorf("got %d records, want 1", len(out))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if out := Dedupe(nil); len(out) != 0 {
			t.Errorf("got %+v, want empty", out)
		}
	})
}
