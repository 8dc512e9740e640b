package scoredb

import "bytes"

//go:generate mockgen -source=storage.go -destination=storage_mock_test.go -package=scoredb

// storage represents an ordered key-value storage backend (Bolt, LevelDB,
// in-memory). All state lives in a single ordered key space; namespacing is
// done by View on top of it.
type storage interface {
	// BeginTx starts a new transaction. At most one writable transaction is
	// open at any time.
	BeginTx(writable bool) (storageTx, error)
	// Close closes the storage.
	Close() error
}

// storageTx represents a storage transaction.
type storageTx interface {
	// Writable returns true if this is a writable transaction.
	Writable() bool

	// Get retrieves a value by key. Returns nil if not found. The returned
	// slice is owned by the caller. An empty stored value is returned as a
	// non-nil empty slice.
	Get(key []byte) ([]byte, error)

	// Put stores a key-value pair.
	Put(key, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key []byte) error

	// Cursor returns a cursor for iteration. The cursor must be closed.
	Cursor() storageCursor

	// Commit commits the transaction.
	Commit() error

	// Rollback aborts the transaction. It should be safe to call multiple times.
	Rollback() error
}

// storageCursor iterates over the sorted key space.
type storageCursor interface {
	// First moves to the first key-value pair.
	First() (key, value []byte)

	// Seek moves to the first key >= seek.
	Seek(seek []byte) (key, value []byte)

	// Next moves to the next key-value pair.
	Next() (key, value []byte)

	// Close releases the cursor.
	Close()
}

// hasPrefix reports whether any key starting with prefix exists.
func hasPrefix(stx storageTx, prefix []byte) bool {
	c := stx.Cursor()
	defer c.Close()
	k, _ := c.Seek(prefix)
	return k != nil && bytes.HasPrefix(k, prefix)
}
