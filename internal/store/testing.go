package store

import "time"

// NewTestDB opens an in-memory database whose timestamps come from now.
// This is only intended for use in tests.
func NewTestDB(now func() time.Time) (*DB, error) {
	db, err := OpenMemory()
	if err != nil {
		return nil, err
	}
	if now != nil {
		db.now = now
	}
	return db, nil
}
