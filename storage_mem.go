package scoredb

import (
	"bytes"
	"slices"
	"sort"
	"sync"
)

type memStorage struct {
	mu     sync.Mutex
	cond   *sync.Cond
	data   *memKeySpace
	closed bool
	writer bool
}

// newMemStorage returns a transient in-memory storage, used for tests and
// for throwaway execution contexts.
func newMemStorage() storage {
	s := &memStorage{data: &memKeySpace{}}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *memStorage) BeginTx(writable bool) (storageTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStorageClosed
	}
	if writable {
		for s.writer && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			return nil, ErrStorageClosed
		}
		s.writer = true
	}

	// Snapshot the entire key space for transactional isolation (simplicity over efficiency).
	return &memTx{
		writable: writable,
		base:     s,
		data:     s.data.clone(),
	}, nil
}

func (s *memStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.data = nil
	if s.cond != nil {
		s.cond.Broadcast()
	}
	return nil
}

type memTx struct {
	base     *memStorage
	writable bool
	data     *memKeySpace
	closed   bool
}

func (tx *memTx) Writable() bool { return tx.writable }

func (tx *memTx) closeLocked() {
	if tx.closed {
		return
	}
	tx.closed = true
	if tx.writable {
		tx.base.writer = false
		tx.base.cond.Broadcast()
	}
}

func (tx *memTx) Get(key []byte) ([]byte, error) {
	if tx.closed {
		panic("tx is closed")
	}
	i, ok := tx.data.find(key)
	if !ok {
		return nil, nil
	}
	return slices.Clone(tx.data.items[i].value), nil
}

func (tx *memTx) Put(key, value []byte) error {
	if tx.closed {
		panic("tx is closed")
	}
	if !tx.writable {
		return ErrTxNotWritable
	}
	key = slices.Clone(key)
	value = append(make([]byte, 0, len(value)), value...)

	i, ok := tx.data.find(key)
	if ok {
		tx.data.items[i].value = value
		return nil
	}
	tx.data.items = slices.Insert(tx.data.items, i, memKV{key: key, value: value})
	return nil
}

func (tx *memTx) Delete(key []byte) error {
	if tx.closed {
		panic("tx is closed")
	}
	if !tx.writable {
		return ErrTxNotWritable
	}
	i, ok := tx.data.find(key)
	if !ok {
		return nil
	}
	tx.data.items = slices.Delete(tx.data.items, i, i+1)
	return nil
}

func (tx *memTx) Cursor() storageCursor {
	return &memCursor{data: tx.data, pos: -1}
}

func (tx *memTx) Commit() error {
	if tx.closed {
		return nil
	}
	if !tx.writable {
		return ErrTxNotWritable
	}
	tx.base.mu.Lock()
	defer tx.base.mu.Unlock()
	if tx.base.closed {
		tx.closeLocked()
		return ErrStorageClosed
	}
	tx.base.data = tx.data
	tx.closeLocked()
	return nil
}

func (tx *memTx) Rollback() error {
	tx.base.mu.Lock()
	defer tx.base.mu.Unlock()
	tx.closeLocked()
	return nil
}

type memKeySpace struct {
	items []memKV // sorted by key
}

func (ks *memKeySpace) clone() *memKeySpace {
	out := &memKeySpace{items: make([]memKV, len(ks.items))}
	for i, kv := range ks.items {
		out.items[i] = memKV{
			key:   slices.Clone(kv.key),
			value: slices.Clone(kv.value),
		}
	}
	return out
}

func (ks *memKeySpace) find(key []byte) (idx int, ok bool) {
	items := ks.items
	i := sort.Search(len(items), func(i int) bool {
		return bytes.Compare(items[i].key, key) >= 0
	})
	if i < len(items) && bytes.Equal(items[i].key, key) {
		return i, true
	}
	return i, false
}

type memKV struct {
	key   []byte
	value []byte
}

type memCursor struct {
	data *memKeySpace
	pos  int
}

func (c *memCursor) at() ([]byte, []byte) {
	if c.pos < 0 || c.pos >= len(c.data.items) {
		return nil, nil
	}
	kv := c.data.items[c.pos]
	return kv.key, kv.value
}

func (c *memCursor) First() ([]byte, []byte) {
	c.pos = 0
	return c.at()
}

func (c *memCursor) Seek(seek []byte) ([]byte, []byte) {
	c.pos, _ = c.data.find(seek)
	return c.at()
}

func (c *memCursor) Next() ([]byte, []byte) {
	if c.pos < 0 {
		return c.First()
	}
	c.pos++
	return c.at()
}

func (c *memCursor) Close() {}

