//go:build darwin

package storage

import (
	"os"
	"path/filepath"
)

func platformConfigDefault() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "genesis")
}

func platformDataDefault() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "genesis")
}

func platformCacheDefault() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "Caches", "genesis")
}

func platformStateDefault() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "genesis", "state")
}
