package store

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"tripdeck/internal/models"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := NewDiskvKV(dir)
	if err != nil {
		t.Fatalf("NewDiskvKV failed: %v", err)
	}
	st, err := Open(kv)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return st, dir
}

func TestOpen_SeedsDefaultOnFirstRun(t *testing.T) {
	st, _ := openTestStore(t)

	days := st.Days()
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	if days[0].ID != "day1" || days[0].DayLabel != "Day 1" {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if st.Currency() != DefaultCurrency {
		t.Errorf("currency = %q, want %q", st.Currency(), DefaultCurrency)
	}
}

func TestOpen_RoundTripsThroughBackend(t *testing.T) {
	dir := t.TempDir()
	kv, _ := NewDiskvKV(dir)
	st, err := Open(kv)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	item := models.ItineraryItem{ID: "roundtrip", StartTime: "07:15", Activity: "Ferry"}
	if err := st.UpsertItem("day1", item); err != nil {
		t.Fatalf("UpsertItem failed: %v", err)
	}
	if err := st.SetCurrency("USD"); err != nil {
		t.Fatalf("SetCurrency failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	kv2, _ := NewDiskvKV(dir)
	st2, err := Open(kv2)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if _, _, ok := st2.FindItem("roundtrip"); !ok {
		t.Error("item lost across reopen")
	}
	if st2.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", st2.Currency())
	}
}

func TestOpen_MalformedDocumentKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	kv, _ := NewDiskvKV(dir)
	if err := kv.Set(KeySchedule, []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	st, err := Open(kv)
	if err != nil {
		t.Fatalf("Open must not fail on malformed document: %v", err)
	}
	if len(st.Days()) != 4 {
		t.Error("expected seeded default after malformed document")
	}
}

func TestUpsertItem_InsertsAndResorts(t *testing.T) {
	st, _ := openTestStore(t)

	item := models.ItineraryItem{ID: "new", StartTime: "08:30", EndTime: "09:00", Activity: "Bakery run"}
	if err := st.UpsertItem("day2", item); err != nil {
		t.Fatalf("UpsertItem failed: %v", err)
	}

	d, _ := st.Day("day2")
	if d.Items[0].ID != "new" {
		t.Errorf("expected new 08:30 item first, got %s", d.Items[0].ID)
	}
	if !sort.SliceIsSorted(d.Items, func(i, j int) bool {
		return d.Items[i].StartTime < d.Items[j].StartTime
	}) {
		t.Error("day not sorted by start time after upsert")
	}
}

func TestUpsertItem_ReplacesInPlace(t *testing.T) {
	st, _ := openTestStore(t)

	d, _ := st.Day("day2")
	before := len(d.Items)
	edited := d.Items[0].Clone()
	edited.Activity = "Brunch instead"
	edited.LastEditedBy = "Mike"

	if err := st.UpsertItem("day2", edited); err != nil {
		t.Fatalf("UpsertItem failed: %v", err)
	}

	d, _ = st.Day("day2")
	if len(d.Items) != before {
		t.Fatalf("item count changed on replace: %d != %d", len(d.Items), before)
	}
	got, _, _ := st.FindItem(edited.ID)
	if got.Activity != "Brunch instead" || got.LastEditedBy != "Mike" {
		t.Errorf("replacement not applied: %+v", got)
	}
}

func TestUpsertItem_SortSurvivesRepeatedUpserts(t *testing.T) {
	st, _ := openTestStore(t)

	for _, start := range []string{"23:00", "06:00", "12:45"} {
		item := models.ItineraryItem{ID: "x-" + start, StartTime: start, Activity: "x"}
		if err := st.UpsertItem("day1", item); err != nil {
			t.Fatalf("UpsertItem failed: %v", err)
		}
		d, _ := st.Day("day1")
		if !sort.SliceIsSorted(d.Items, func(i, j int) bool {
			return d.Items[i].StartTime < d.Items[j].StartTime
		}) {
			t.Fatalf("day unsorted after inserting %s", start)
		}
	}
}

func TestUpsertItem_UnknownDayIsNoOp(t *testing.T) {
	st, _ := openTestStore(t)
	before := st.Days()

	if err := st.UpsertItem("day99", models.ItineraryItem{ID: "ghost", StartTime: "09:00"}); err != nil {
		t.Fatalf("UpsertItem failed: %v", err)
	}

	if _, _, ok := st.FindItem("ghost"); ok {
		t.Error("item must not appear under an unknown day")
	}
	if len(st.Days()) != len(before) {
		t.Error("day count changed")
	}
}

func TestDeleteItem(t *testing.T) {
	st, _ := openTestStore(t)

	d, _ := st.Day("day1")
	victim := d.Items[2].ID
	before := len(d.Items)

	if err := st.DeleteItem("day1", victim); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}

	d, _ = st.Day("day1")
	if len(d.Items) != before-1 {
		t.Fatalf("got %d items, want %d", len(d.Items), before-1)
	}
	if _, _, ok := st.FindItem(victim); ok {
		t.Error("deleted item still present")
	}

	// Unknown ids are silent no-ops.
	if err := st.DeleteItem("day1", "no-such-item"); err != nil {
		t.Errorf("unknown item delete errored: %v", err)
	}
	if err := st.DeleteItem("day99", victim); err != nil {
		t.Errorf("unknown day delete errored: %v", err)
	}
}

func TestSetItemCosts_CrossDayLookup(t *testing.T) {
	st, _ := openTestStore(t)

	costs := []models.CostDetail{
		{ID: "c1", Item: "Ramen set", Amount: 1200, Payer: "Mike"},
	}
	// d3-lunch lives on day3; lookup is by item id alone.
	if err := st.SetItemCosts("d3-lunch", costs); err != nil {
		t.Fatalf("SetItemCosts failed: %v", err)
	}

	got, dayID, ok := st.FindItem("d3-lunch")
	if !ok || dayID != "day3" {
		t.Fatalf("FindItem(d3-lunch) = %v, %v", dayID, ok)
	}
	if len(got.Costs) != 1 || got.Costs[0].Item != "Ramen set" {
		t.Errorf("costs not replaced: %+v", got.Costs)
	}

	// Replacement is wholesale.
	if err := st.SetItemCosts("d3-lunch", nil); err != nil {
		t.Fatalf("SetItemCosts(nil) failed: %v", err)
	}
	got, _, _ = st.FindItem("d3-lunch")
	if len(got.Costs) != 0 {
		t.Errorf("expected empty cost list, got %+v", got.Costs)
	}
}

func TestDeleteCostFromItem_RequiresSession(t *testing.T) {
	st, _ := openTestStore(t)
	costs := []models.CostDetail{
		{ID: "c1", Item: "Ticket", Amount: 9000, Payer: "A"},
		{ID: "c2", Item: "Lightstick", Amount: 4500, Payer: "B"},
		{ID: "c3", Item: "Drinks", Amount: 700, Payer: "A"},
	}
	if err := st.SetItemCosts("d1-concert", costs); err != nil {
		t.Fatalf("SetItemCosts failed: %v", err)
	}

	if err := st.DeleteCostFromItem("", "d1-concert", "c2"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	if err := st.DeleteCostFromItem("Mike", "d1-concert", "c2"); err != nil {
		t.Fatalf("DeleteCostFromItem failed: %v", err)
	}
	got, _, _ := st.FindItem("d1-concert")
	if len(got.Costs) != 2 {
		t.Fatalf("got %d costs, want 2", len(got.Costs))
	}
	// Exactly c2 removed, order of the rest intact.
	if got.Costs[0].ID != "c1" || got.Costs[1].ID != "c3" {
		t.Errorf("remaining costs wrong: %+v", got.Costs)
	}
}

func TestReset(t *testing.T) {
	st, _ := openTestStore(t)

	if err := st.DeleteItem("day1", "d1-lunch"); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if err := st.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, _, ok := st.FindItem("d1-lunch"); !ok {
		t.Error("reset did not restore the seeded schedule")
	}
}

func TestSetCurrency_RejectsUnknown(t *testing.T) {
	st, _ := openTestStore(t)

	if err := st.SetCurrency("EUR"); err == nil {
		t.Error("expected error for unsupported currency")
	}
	if st.Currency() != DefaultCurrency {
		t.Error("currency changed despite rejection")
	}
}

func TestMutationsAreCopyOnWrite(t *testing.T) {
	st, _ := openTestStore(t)

	snapshot := st.Days()
	before := len(snapshot[0].Items)
	if err := st.DeleteItem("day1", snapshot[0].Items[0].ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if len(snapshot[0].Items) != before {
		t.Error("a previously returned snapshot was mutated")
	}
}

func TestSQLiteKVBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripdeck.db")
	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV failed: %v", err)
	}

	if _, err := kv.Get(KeyUser); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := kv.Set(KeyUser, []byte("Mike")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(KeyUser, []byte("Coups")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	val, err := kv.Get(KeyUser)
	if err != nil || string(val) != "Coups" {
		t.Errorf("Get = %q, %v", val, err)
	}
	if err := kv.Delete(KeyUser); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := kv.Get(KeyUser); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
