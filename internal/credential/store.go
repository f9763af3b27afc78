package credential

import "errors"

// ErrNotFound is returned by Get when no credential is stored. Absence means
// the client is unauthenticated.
var ErrNotFound = errors.New("no credential stored")

// Store keeps at most one bearer token per client session. Set persists the
// token across process runs; Clear is idempotent and is the only way the
// client transitions back to unauthenticated. Implementations must not log
// or otherwise expose the token.
type Store interface {
	Set(token string) error
	Get() (string, error)
	Clear() error
}

// Truncate returns a short prefix of a token safe to include in diagnostics.
func Truncate(token string) string {
	const n = 10
	if len(token) <= n {
		return token
	}
	return token[:n] + "..."
}
