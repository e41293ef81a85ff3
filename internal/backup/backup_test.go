package backup

import (
	"os"
	"path/filepath"
	"testing"

	"tripdeck/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := store.NewDiskvKV(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewDiskvKV: %v", err)
	}
	st, err := store.Open(kv)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, filepath.Join(dir, "data")
}

func TestCreateAndList(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path = %q, want %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("snapshot is empty")
	}
}

func TestListEmptyWithoutDir(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}
}

func TestCreateSameMinuteGetsUniqueName(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	first, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := m.Create()
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if first == second {
		t.Fatalf("both snapshots wrote to %s", first)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	item, dayID, ok := st.FindItem("d1-lunch")
	if !ok {
		t.Fatal("seed item d1-lunch missing")
	}

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := st.DeleteItem(dayID, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, _, ok := st.FindItem("d1-lunch"); ok {
		t.Fatal("item still present after delete")
	}

	if err := m.Restore(path); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, _, ok := st.FindItem("d1-lunch"); !ok {
		t.Fatal("item not restored from snapshot")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(bad); err == nil {
		t.Fatal("expected error restoring malformed snapshot")
	}
}

func TestRotateKeepsMaxBackups(t *testing.T) {
	st, dataPath := newTestStore(t)
	m := NewManager(st, dataPath)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < MaxBackups+5; i++ {
		name := filepath.Join(m.BackupDir(), BackupFilePrefix+"20250101-00"+string(rune('a'+i))+BackupFileSuffix)
		if err := os.WriteFile(name, []byte("[]"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Fatalf("rotation kept %d backups, max is %d", len(backups), MaxBackups)
	}
}
