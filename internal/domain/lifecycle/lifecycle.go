// Package lifecycle holds shared values for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of infrastructure components.
const DefaultTimeout = 10 * time.Second
