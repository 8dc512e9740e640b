package scoredb

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

// Tx is the isolation boundary containers run in. A writable Tx is the unit
// that commits or aborts as a whole, which covers multi-key updates such as
// an ArrayDB element plus its length.
type Tx struct {
	db  *DB
	stx storageTx

	startTime time.Time
	stack     []byte
	done      bool

	memo map[string]any

	changeHandler func(chg *Change)
}

func (db *DB) newTx(stx storageTx) *Tx {
	tx := &Tx{
		db:        db,
		stx:       stx,
		startTime: time.Now(),
	}
	if trackTxns {
		tx.stack = debug.Stack()
	}
	return tx
}

func (tx *Tx) DB() *DB {
	return tx.db
}

func (tx *Tx) IsWritable() bool {
	return tx.stx.Writable()
}

// OnChange installs a handler called after every successful put or delete
// made through this transaction.
func (tx *Tx) OnChange(f func(chg *Change)) {
	tx.changeHandler = f
}

// Score returns the root view of the state owned by the given contract.
// Containers opened directly on it get a container-tagged region.
func (tx *Tx) Score(owner Address) *View {
	return newRootView(tx, owner)
}

func (tx *Tx) Commit() error {
	if tx.done {
		return fmt.Errorf("scoredb: commit: tx already closed")
	}
	if !tx.IsWritable() {
		// the tx stays open; Close still releases it
		return fmt.Errorf("scoredb: commit: %w", ErrTxNotWritable)
	}
	tx.done = true
	err := tx.stx.Commit()
	if err != nil {
		if rerr := tx.stx.Rollback(); rerr != nil {
			tx.db.logger.Warn("rollback after failed commit", zap.Error(rerr))
		}
	}
	tx.release()
	if err != nil {
		return fmt.Errorf("scoredb: commit: %w", err)
	}
	return nil
}

// Close rolls back the transaction unless it has been committed. Safe to
// call multiple times.
func (tx *Tx) Close() {
	if tx.done {
		return
	}
	tx.done = true
	if err := tx.stx.Rollback(); err != nil {
		tx.db.logger.Warn("rollback failed", zap.Error(err))
	}
	tx.release()
}

func (tx *Tx) release() {
	if trackTxns {
		tx.db.removeTx(tx)
	}
	if tx.IsWritable() {
		tx.db.WriterCount.Add(-1)
	} else {
		tx.db.ReaderCount.Add(-1)
	}
	tx.memo = nil
}

func (tx *Tx) get(key []byte) ([]byte, error) {
	tx.db.ReadCount.Add(1)
	return tx.stx.Get(key)
}

func (tx *Tx) put(key, value []byte) error {
	if !tx.IsWritable() {
		return ErrTxNotWritable
	}
	tx.db.WriteCount.Add(1)
	err := tx.stx.Put(key, value)
	if err != nil {
		return err
	}
	tx.notify(OpPut, key, value)
	return nil
}

func (tx *Tx) delete(key []byte) error {
	if !tx.IsWritable() {
		return ErrTxNotWritable
	}
	tx.db.WriteCount.Add(1)
	err := tx.stx.Delete(key)
	if err != nil {
		return err
	}
	tx.notify(OpDelete, key, nil)
	return nil
}

func (tx *Tx) GetMemo(key string) (any, bool) {
	v, found := tx.memo[key]
	return v, found
}

func (tx *Tx) Memo(key string, f func() (any, error)) (any, error) {
	v, found := tx.memo[key]
	if found {
		if e, ok := v.(error); ok {
			return nil, e
		}
		return v, nil
	}

	if tx.memo == nil {
		tx.memo = make(map[string]any)
	}

	v, err := f()
	if err != nil {
		tx.memo[key] = err
	} else {
		tx.memo[key] = v
	}
	return v, err
}

func Memo[T any](tx *Tx, key string, f func() (T, error)) (T, error) {
	v, err := tx.Memo(key, func() (any, error) {
		return f()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
