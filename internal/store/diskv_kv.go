package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV persists each key as a file under a base directory. This is the
// default backend.
type DiskvKV struct {
	d *diskv.Diskv
}

// NewDiskvKV opens (creating if needed) a diskv-backed store rooted at dir.
func NewDiskvKV(dir string) (*DiskvKV, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &DiskvKV{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (k *DiskvKV) Get(key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (k *DiskvKV) Set(key string, value []byte) error {
	return k.d.Write(key, value)
}

func (k *DiskvKV) Delete(key string) error {
	if !k.d.Has(key) {
		return nil
	}
	return k.d.Erase(key)
}

func (k *DiskvKV) Close() error {
	return nil
}

// BasePath returns the directory backing this store.
func (k *DiskvKV) BasePath() string {
	return k.d.BasePath
}

var _ KV = (*DiskvKV)(nil)

// DefaultDataDir is where the diskv backend lives unless overridden.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tripdeck-data"
	}
	return filepath.Join(home, ".config", "tripdeck", "data")
}
