package scoredb

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	lvlstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

// levelDBStorage keeps the key space in LevelDB. Writable transactions map
// onto leveldb.Transaction (which already excludes concurrent writers), read
// transactions onto snapshots.
type levelDBStorage struct {
	ldb *leveldb.DB
}

func openLevelDBStorage(path string, isTesting bool) (storage, error) {
	o := &opt.Options{}
	if isTesting {
		o.NoSync = true
	}
	ldb, err := leveldb.OpenFile(path, o)
	if err != nil {
		return nil, fmt.Errorf("leveldb: %w", err)
	}
	return &levelDBStorage{ldb: ldb}, nil
}

// newMemLevelDBStorage runs LevelDB on its in-memory file system.
func newMemLevelDBStorage() (storage, error) {
	ldb, err := leveldb.Open(lvlstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("leveldb: %w", err)
	}
	return &levelDBStorage{ldb: ldb}, nil
}

func (s *levelDBStorage) BeginTx(writable bool) (storageTx, error) {
	if writable {
		ltx, err := s.ldb.OpenTransaction()
		if err != nil {
			return nil, levelDBErr(err)
		}
		return &levelDBWriteTx{ltx: ltx}, nil
	}
	snap, err := s.ldb.GetSnapshot()
	if err != nil {
		return nil, levelDBErr(err)
	}
	return &levelDBReadTx{snap: snap}, nil
}

func (s *levelDBStorage) Close() error {
	return s.ldb.Close()
}

func levelDBErr(err error) error {
	if errors.Is(err, leveldb.ErrClosed) {
		return ErrStorageClosed
	}
	return fmt.Errorf("leveldb: %w", err)
}

func levelDBGet(v []byte, err error) ([]byte, error) {
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, levelDBErr(err)
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

type levelDBWriteTx struct {
	ltx    *leveldb.Transaction
	closed bool
}

func (tx *levelDBWriteTx) Writable() bool { return true }

func (tx *levelDBWriteTx) Get(key []byte) ([]byte, error) {
	return levelDBGet(tx.ltx.Get(key, nil))
}

func (tx *levelDBWriteTx) Put(key, value []byte) error {
	return tx.ltx.Put(key, value, nil)
}

func (tx *levelDBWriteTx) Delete(key []byte) error {
	return tx.ltx.Delete(key, nil)
}

func (tx *levelDBWriteTx) Cursor() storageCursor {
	return &levelDBCursor{it: tx.ltx.NewIterator(nil, nil)}
}

func (tx *levelDBWriteTx) Commit() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	if err := tx.ltx.Commit(); err != nil {
		tx.ltx.Discard()
		return err
	}
	return nil
}

func (tx *levelDBWriteTx) Rollback() error {
	if tx.closed {
		return nil
	}
	tx.closed = true
	tx.ltx.Discard()
	return nil
}

type levelDBReadTx struct {
	snap *leveldb.Snapshot
}

func (tx *levelDBReadTx) Writable() bool { return false }

func (tx *levelDBReadTx) Get(key []byte) ([]byte, error) {
	return levelDBGet(tx.snap.Get(key, nil))
}

func (tx *levelDBReadTx) Put(key, value []byte) error { return ErrTxNotWritable }

func (tx *levelDBReadTx) Delete(key []byte) error { return ErrTxNotWritable }

func (tx *levelDBReadTx) Cursor() storageCursor {
	return &levelDBCursor{it: tx.snap.NewIterator(nil, nil)}
}

func (tx *levelDBReadTx) Commit() error { return ErrTxNotWritable }

// Rollback releases the snapshot; Snapshot.Release is idempotent.
func (tx *levelDBReadTx) Rollback() error {
	tx.snap.Release()
	return nil
}

type levelDBCursor struct {
	it iterator.Iterator
}

func (c *levelDBCursor) at(ok bool) ([]byte, []byte) {
	if !ok {
		return nil, nil
	}
	return c.it.Key(), c.it.Value()
}

func (c *levelDBCursor) First() ([]byte, []byte) { return c.at(c.it.First()) }

func (c *levelDBCursor) Seek(seek []byte) ([]byte, []byte) { return c.at(c.it.Seek(seek)) }

func (c *levelDBCursor) Next() ([]byte, []byte) { return c.at(c.it.Next()) }

func (c *levelDBCursor) Close() { c.it.Release() }
