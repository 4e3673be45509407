package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the actor referenced by every ledger row. Users are never
// deleted once they have acted.
type User struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
