// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup database ping.
const DefaultTimeout = 10 * time.Second
