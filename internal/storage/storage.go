package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/daydial/internal/constants"
	"github.com/julianstephens/daydial/internal/storage/memory"
	"github.com/julianstephens/daydial/internal/storage/postgres"
	"github.com/julianstephens/daydial/internal/storage/sqlite"
)

// IsPostgres reports whether config is a PostgreSQL connection URL.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, in URL or key=value form.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}
	for _, pair := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(pair, "=")
		if ok && strings.EqualFold(strings.TrimSpace(key), "password") {
			return true
		}
	}
	return false
}

// ExpandPath resolves a leading ~ in a SQLite path.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// New selects a provider from the --config value: ":memory:" for an
// in-process store, a postgres:// URL for PostgreSQL, anything else is a
// SQLite file path.
func New(config string) Provider {
	switch {
	case config == constants.MemoryConfigPath:
		return memory.New()
	case IsPostgres(config):
		return postgres.New(config)
	default:
		return sqlite.NewStore(ExpandPath(config))
	}
}
