// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as server shutdown and DB ping.
const DefaultTimeout = 10 * time.Second
