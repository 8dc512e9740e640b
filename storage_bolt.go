package scoredb

import (
	"bytes"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// boltStateBucket holds the whole key space; Bolt needs at least one bucket.
var boltStateBucket = []byte("state")

type boltStorage struct {
	bdb *bbolt.DB
}

func openBoltStorage(path string, isTesting bool, mmapSize int) (storage, error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if isTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.InitialMmapSize = 1024 * 1024 * 1024
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if mmapSize != 0 {
		bopt.InitialMmapSize = mmapSize
	}

	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("bolt: %w", err)
	}
	err = bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(boltStateBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("bolt: creating state bucket: %w", err)
	}
	return &boltStorage{bdb: bdb}, nil
}

func (s *boltStorage) BeginTx(writable bool) (storageTx, error) {
	btx, err := s.bdb.Begin(writable)
	if err != nil {
		if err == bbolt.ErrDatabaseNotOpen {
			return nil, ErrStorageClosed
		}
		return nil, err
	}
	return &boltStorageTx{btx: btx, b: btx.Bucket(boltStateBucket)}, nil
}

func (s *boltStorage) Close() error {
	return s.bdb.Close()
}

type boltStorageTx struct {
	btx *bbolt.Tx
	b   *bbolt.Bucket
}

func (tx *boltStorageTx) Writable() bool { return tx.btx.Writable() }

// Get goes through a cursor because Bucket.Get cannot tell an empty value
// from a missing key.
func (tx *boltStorageTx) Get(key []byte) ([]byte, error) {
	k, v := tx.b.Cursor().Seek(key)
	if k == nil || !bytes.Equal(k, key) {
		return nil, nil
	}
	return append(make([]byte, 0, len(v)), v...), nil
}

func (tx *boltStorageTx) Put(key, value []byte) error {
	if !tx.btx.Writable() {
		return ErrTxNotWritable
	}
	if value == nil {
		value = []byte{}
	}
	return tx.b.Put(key, value)
}

func (tx *boltStorageTx) Delete(key []byte) error {
	if !tx.btx.Writable() {
		return ErrTxNotWritable
	}
	return tx.b.Delete(key)
}

func (tx *boltStorageTx) Cursor() storageCursor { return boltCursor{c: tx.b.Cursor()} }

func (tx *boltStorageTx) Commit() error { return tx.btx.Commit() }

func (tx *boltStorageTx) Rollback() error {
	err := tx.btx.Rollback()
	if err == bbolt.ErrTxClosed {
		return nil
	}
	return err
}

type boltCursor struct {
	c *bbolt.Cursor
}

func (c boltCursor) First() ([]byte, []byte) { return c.c.First() }

func (c boltCursor) Seek(seek []byte) ([]byte, []byte) { return c.c.Seek(seek) }

func (c boltCursor) Next() ([]byte, []byte) { return c.c.Next() }

func (c boltCursor) Close() {}
