package types

import "errors"

// Config holds the parameters for opening a retail store database.
type Config struct {
	// DBPath is the path of the SQLite database file. The file and its
	// parent directory are created on first open.
	DBPath string `json:"db_path" yaml:"db_path"`

	// BusyTimeoutMS bounds how long a writer waits on a locked database
	// before failing with a transient error. Zero selects the default.
	BusyTimeoutMS int `json:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// DefaultBusyTimeoutMS is applied when Config.BusyTimeoutMS is zero.
const DefaultBusyTimeoutMS = 5000

// ErrDBPathEmpty is returned by Validate when no database path is set.
var ErrDBPathEmpty = errors.New("db path must not be empty")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}

// BusyTimeout returns the configured busy timeout in milliseconds,
// falling back to DefaultBusyTimeoutMS.
func (c Config) BusyTimeout() int {
	if c.BusyTimeoutMS <= 0 {
		return DefaultBusyTimeoutMS
	}
	return c.BusyTimeoutMS
}
