package reorder

import (
	"testing"

	"tripdeck/internal/models"
)

func day(items ...models.ItineraryItem) []models.ItineraryItem {
	return items
}

func item(id, start, end string) models.ItineraryItem {
	return models.ItineraryItem{ID: id, StartTime: start, EndTime: end, Activity: id}
}

func TestMove_SamePositionIsNoOp(t *testing.T) {
	items := day(item("a", "09:00", "10:00"), item("b", "10:00", "11:00"))

	result := Move(items, "a", 0)

	if result.Changed {
		t.Fatal("expected no-op for same-position move")
	}
	if len(result.Items) != 2 || result.Items[0].ID != "a" || result.Items[1].ID != "b" {
		t.Error("expected list unchanged")
	}
}

func TestMove_UnknownItemIsNoOp(t *testing.T) {
	items := day(item("a", "09:00", "10:00"))

	result := Move(items, "zzz", 0)

	if result.Changed {
		t.Fatal("expected no-op for unknown item id")
	}
}

func TestMove_PreservesRelativeOrder(t *testing.T) {
	items := day(
		item("a", "08:00", "09:00"),
		item("b", "09:00", "10:00"),
		item("c", "10:00", "11:00"),
		item("d", "11:00", "12:00"),
	)

	result := Move(items, "d", 1)

	if !result.Changed {
		t.Fatal("expected move to apply")
	}
	want := []string{"a", "d", "b", "c"}
	for i, id := range want {
		if result.Items[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, result.Items[i].ID, id)
		}
	}
}

func TestMove_ConflictBetweenNeighbors(t *testing.T) {
	// Predecessor ends 10:00, successor starts 11:00, moved item declares
	// 09:30–10:30: conflict, proposal snaps to the predecessor boundary.
	items := day(
		item("pred", "09:00", "10:00"),
		item("succ", "11:00", "12:00"),
		item("moved", "09:30", "10:30"),
	)

	result := Move(items, "moved", 1)

	if !result.Changed {
		t.Fatal("expected move to apply")
	}
	if result.Proposal == nil {
		t.Fatal("expected a conflict proposal")
	}
	if result.Proposal.NewStart != "10:00" || result.Proposal.NewEnd != "11:00" {
		t.Errorf("proposal = %s–%s, want 10:00–11:00", result.Proposal.NewStart, result.Proposal.NewEnd)
	}
}

func TestMove_NoConflictAtListHead(t *testing.T) {
	// Moving to the front with a later successor: missing predecessor is
	// unbounded low, so no spurious conflict.
	items := day(
		item("first", "12:00", "13:00"),
		item("early", "08:00", "09:00"),
	)

	result := Move(items, "early", 0)

	if !result.Changed {
		t.Fatal("expected move to apply")
	}
	if result.Proposal != nil {
		t.Errorf("expected no conflict, got proposal %v", result.Proposal)
	}
}

func TestMove_NoConflictAtListTail(t *testing.T) {
	items := day(
		item("late", "20:00", "21:00"),
		item("a", "09:00", "10:00"),
		item("b", "10:00", "11:00"),
	)

	result := Move(items, "late", 2)

	if !result.Changed {
		t.Fatal("expected move to apply")
	}
	if result.Proposal != nil {
		t.Errorf("expected no conflict at list tail, got %v", result.Proposal)
	}
}

func TestMove_TooLateClampsBackFromSuccessor(t *testing.T) {
	// Item declared 14:00–15:00 moved before a successor starting 11:00:
	// starts at/after the successor, clamp to nStart - duration.
	items := day(
		item("moved", "14:00", "15:00"),
		item("succ", "11:00", "12:00"),
	)

	result := Move(items, "succ", 0)
	if result.Proposal != nil {
		t.Fatalf("control move should not conflict, got %v", result.Proposal)
	}

	items = day(
		item("succ", "11:00", "12:00"),
		item("moved", "14:00", "15:00"),
	)
	result = Move(items, "moved", 0)

	if result.Proposal == nil {
		t.Fatal("expected conflict for item starting after its successor")
	}
	if result.Proposal.NewStart != "10:00" || result.Proposal.NewEnd != "11:00" {
		t.Errorf("proposal = %s–%s, want 10:00–11:00", result.Proposal.NewStart, result.Proposal.NewEnd)
	}
}

func TestMove_PredecessorBoundaryWinsTies(t *testing.T) {
	// The gap between neighbors is shorter than the item: after clamping the
	// window still overlaps the successor, so the predecessor boundary wins.
	items := day(
		item("pred", "09:00", "10:00"),
		item("succ", "10:30", "12:00"),
		item("moved", "07:00", "09:00"), // 2h duration, gap is 30m
	)

	result := Move(items, "moved", 1)

	if result.Proposal == nil {
		t.Fatal("expected conflict proposal")
	}
	if result.Proposal.NewStart != "10:00" || result.Proposal.NewEnd != "12:00" {
		t.Errorf("proposal = %s–%s, want 10:00–12:00", result.Proposal.NewStart, result.Proposal.NewEnd)
	}
}

func TestMove_StartAtSuccessorStartConflicts(t *testing.T) {
	// The interval is half-open: starting exactly when the successor starts
	// is a conflict.
	items := day(
		item("succ", "11:00", "12:00"),
		item("moved", "11:00", "11:30"),
	)

	result := Move(items, "moved", 0)

	if result.Proposal == nil {
		t.Fatal("expected conflict when start equals successor start")
	}
	if result.Proposal.NewStart != "10:30" || result.Proposal.NewEnd != "11:00" {
		t.Errorf("proposal = %s–%s, want 10:30–11:00", result.Proposal.NewStart, result.Proposal.NewEnd)
	}
}

func TestMove_PredecessorWithoutEndUsesStart(t *testing.T) {
	items := day(
		item("pred", "10:00", ""),
		item("succ", "12:00", "13:00"),
		item("moved", "09:00", "10:00"),
	)

	result := Move(items, "moved", 1)

	if result.Proposal == nil {
		t.Fatal("expected conflict against predecessor start")
	}
	if result.Proposal.NewStart != "10:00" || result.Proposal.NewEnd != "11:00" {
		t.Errorf("proposal = %s–%s, want 10:00–11:00", result.Proposal.NewStart, result.Proposal.NewEnd)
	}
}

func TestMove_SingleItemDay(t *testing.T) {
	items := day(item("only", "09:00", "10:00"))

	result := Move(items, "only", 0)

	if result.Changed {
		t.Error("single-item move to its own position must be a no-op")
	}
}
