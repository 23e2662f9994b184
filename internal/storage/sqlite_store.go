package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/meetly-app/meetly-cli/internal/storage/sqlite"
)

// NewSQLiteStore creates a snapshot cache backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandPath(path))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
