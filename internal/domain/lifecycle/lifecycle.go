// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as connection pings and
// graceful server shutdown.
const DefaultTimeout = 10 * time.Second
