package port_platform

import "time"

// Clock abstracts wall-clock time so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}
