package port_platform

import "github.com/google/uuid"

// IDGenerator supplies the random component of transfer and history
// identifiers.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
