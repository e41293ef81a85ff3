package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tripdeck/internal/store"
)

const (
	// MaxBackups is the maximum number of snapshots to keep.
	MaxBackups = 14
	// BackupDirName is the name of the backup directory.
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for snapshot files.
	BackupFilePrefix = "tripdeck-"
	// BackupFileSuffix is the suffix for snapshot files.
	BackupFileSuffix = ".json"
)

// Info describes one snapshot file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes and restores schedule snapshots. Snapshots are plain JSON
// schedule documents, so they stay readable when the store backend changes.
type Manager struct {
	store     *store.Store
	backupDir string
}

// NewManager places the backup directory next to the data path.
func NewManager(st *store.Store, dataPath string) *Manager {
	return &Manager{
		store:     st,
		backupDir: filepath.Join(filepath.Dir(dataPath), BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a new snapshot and rotates old ones.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := m.store.Snapshot()
	if err != nil {
		return "", err
	}

	path, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}
	return path, nil
}

// uniquePath picks a timestamped filename, falling back to second precision
// and then a counter when snapshots land in the same minute.
func (m *Manager) uniquePath() (string, error) {
	now := time.Now()
	path := m.pathFor(now.Format("20060102-1504"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := now.Format("20060102-150405")
	path = m.pathFor(stamp)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot filename")
		}
		path = m.pathFor(fmt.Sprintf("%s-%d", stamp, counter))
	}
}

func (m *Manager) pathFor(stamp string) string {
	return filepath.Join(m.backupDir, BackupFilePrefix+stamp+BackupFileSuffix)
}

// List returns all snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore replaces the live schedule with the named snapshot. The current
// state is snapshotted first so a bad restore can itself be undone.
func (m *Manager) Restore(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if _, err := m.create(true); err != nil {
		return fmt.Errorf("failed to save pre-restore snapshot: %w", err)
	}

	return m.store.RestoreSnapshot(data)
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", old.Path, err)
		}
	}
	return nil
}
