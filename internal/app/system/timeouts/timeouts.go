// Package timeouts provides centralized timeout values for handler
// operations. Every store call made from an HTTP handler runs under
// context.WithTimeout with one of these values, so a slow database
// cannot pin request goroutines indefinitely.
package timeouts

import "time"

const (
	// Ping covers health checks and connectivity verification.
	ping = 2 * time.Second
	// Short covers single-document reads: get by email, exists checks.
	short = 5 * time.Second
	// Medium covers list queries and writes.
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-document operations.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and writes.
func Medium() time.Duration { return medium }
