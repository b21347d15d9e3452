package storage

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrNotFound is returned when an item or log reference does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned on an owner mismatch for an item-scoped
	// operation.
	ErrForbidden = errors.New("forbidden")
)

// IsPostgresConnString reports whether config names a PostgreSQL database
// rather than a sqlite file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected; credentials belong in the OS keyring,
// the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil || u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
