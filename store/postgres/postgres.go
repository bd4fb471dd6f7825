// store/postgres/postgres.go - Remote relational backend
//
// Each contract operation translates into a query against the backing
// Postgres tables. The adapter maintains created_at/updated_at itself; the
// backend only stores them. Remote failures are wrapped as BackendError
// without interpreting driver-specific codes. No client-side transaction or
// optimistic-locking scheme exists beyond single-statement atomicity, so
// concurrent updates of one record resolve last-write-wins.
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"projectflow/store"
)

// Store is a Postgres-backed implementation of store.Store.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func newID() string {
	return uuid.NewString()
}

// now returns the adapter-side timestamp. Postgres keeps microseconds, so
// truncate up front and a reread returns the exact value that was written.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// wrap converts a gorm error into the shared taxonomy.
func wrap(op, entity, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.NotFound(entity, id)
	}
	return store.Backend(op, err)
}
