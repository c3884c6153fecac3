// Package lifecycle holds shared constants for application start/stop
// coordination.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
