package settlement

import "time"

// Retry policy for transient conflicts. The whole unit of work is
// retried from the locked read, never a partial step.
const (
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 25 * time.Millisecond
)
