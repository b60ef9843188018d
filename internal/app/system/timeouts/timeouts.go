// internal/app/system/timeouts/timeouts.go

// Package timeouts centralizes the context deadlines used for database
// work in handlers and background refreshes, so individual call sites do
// not invent their own numbers.
//
//   - Ping: connectivity checks (health endpoint)
//   - Short: single-document reads
//   - Medium: list queries and full roster rebuilds
//   - Long: multi-service write batches (team saves)
package timeouts

import (
	"sync"
	"time"
)

// Defaults, used unless Configure is called at startup.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Configure overrides the defaults. Zero values leave the current
// setting unchanged.
func Configure(pingT, shortT, mediumT, longT time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if pingT > 0 {
		ping = pingT
	}
	if shortT > 0 {
		short = shortT
	}
	if mediumT > 0 {
		medium = mediumT
	}
	if longT > 0 {
		long = longT
	}
}

// Ping returns the health-check timeout.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and roster rebuilds.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for write batches.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}
