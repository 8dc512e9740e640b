package scoredb

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const trackTxns = true

type Backend string

const (
	MemoryBackend  Backend = "memory"
	BoltBackend    Backend = "bolt"
	LevelDBBackend Backend = "leveldb"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(s)); b {
	case MemoryBackend, BoltBackend, LevelDBBackend:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", s)
	}
}

type DB struct {
	st      storage
	backend Backend
	path    string
	logger  *zap.Logger

	writeScheme Scheme
	fixedScheme bool

	ReaderCount atomic.Int64
	WriterCount atomic.Int64
	ReadCount   atomic.Uint64
	WriteCount  atomic.Uint64

	txns     []*Tx
	txnsLock sync.Mutex
}

type Options struct {
	Backend Backend
	Path    string

	// WriteScheme encodes regions that hold no data yet. Defaults to SchemeV2.
	WriteScheme Scheme
	// FixedScheme skips resolution against existing data and always uses
	// WriteScheme.
	FixedScheme bool

	Logger    *zap.Logger
	IsTesting bool
	MmapSize  int
}

func Open(opt Options) (*DB, error) {
	if opt.Backend == "" {
		opt.Backend = MemoryBackend
	}
	if opt.WriteScheme == schemeUnresolved {
		opt.WriteScheme = DefaultWriteScheme
	} else if !opt.WriteScheme.valid() {
		return nil, fmt.Errorf("scoredb: invalid write scheme: %v", opt.WriteScheme)
	}
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var st storage
	var err error
	switch opt.Backend {
	case MemoryBackend:
		st = newMemStorage()
	case BoltBackend:
		st, err = openBoltStorage(opt.Path, opt.IsTesting, opt.MmapSize)
	case LevelDBBackend:
		if opt.Path == "" {
			st, err = newMemLevelDBStorage()
		} else {
			st, err = openLevelDBStorage(opt.Path, opt.IsTesting)
		}
	default:
		return nil, fmt.Errorf("scoredb: unknown storage backend %q", opt.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("scoredb: %w", err)
	}

	db := newDB(st, opt, logger)
	logger.Info("state store opened",
		zap.String("backend", string(opt.Backend)),
		zap.String("path", opt.Path),
		zap.Stringer("write_scheme", opt.WriteScheme),
		zap.Bool("fixed_scheme", opt.FixedScheme))
	return db, nil
}

func newDB(st storage, opt Options, logger *zap.Logger) *DB {
	return &DB{
		st:          st,
		backend:     opt.Backend,
		path:        opt.Path,
		logger:      logger,
		writeScheme: opt.WriteScheme,
		fixedScheme: opt.FixedScheme,
	}
}

func (db *DB) Logger() *zap.Logger {
	return db.logger
}

func (db *DB) WriteScheme() Scheme {
	return db.writeScheme
}

func (db *DB) Close() error {
	err := db.st.Close()
	if err != nil {
		return fmt.Errorf("scoredb: closing: %w", err)
	}
	db.logger.Info("state store closed", zap.String("backend", string(db.backend)))
	return nil
}

// Update runs f in a writable transaction and commits it if f succeeds.
func (db *DB) Update(f func(tx *Tx) error) error {
	tx, err := db.BeginUpdate()
	if err != nil {
		return err
	}
	defer tx.Close()
	err = db.safelyCall(f, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// View runs f in a read-only transaction.
func (db *DB) View(f func(tx *Tx) error) error {
	tx, err := db.BeginRead()
	if err != nil {
		return err
	}
	defer tx.Close()
	return db.safelyCall(f, tx)
}

func (db *DB) BeginRead() (*Tx, error) {
	return db.begin(false)
}

func (db *DB) BeginUpdate() (*Tx, error) {
	return db.begin(true)
}

func (db *DB) begin(writable bool) (*Tx, error) {
	stx, err := db.st.BeginTx(writable)
	if err != nil {
		return nil, fmt.Errorf("scoredb: begin (writable=%v): %w", writable, err)
	}
	tx := db.newTx(stx)
	if writable {
		db.WriterCount.Add(1)
	} else {
		db.ReaderCount.Add(1)
	}
	if trackTxns {
		db.addTx(tx)
	}
	return tx, nil
}

type panicked struct {
	reason interface{}
	stack  string
}

func (p panicked) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", p.reason, p.stack)
}

func (db *DB) safelyCall(fn func(*Tx) error, tx *Tx) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicked{p, string(debug.Stack())}
			db.logger.Error("transaction panicked", zap.Any("reason", p), zap.Bool("writable", tx.IsWritable()))
		}
	}()
	return fn(tx)
}

func (db *DB) addTx(tx *Tx) {
	db.txnsLock.Lock()
	defer db.txnsLock.Unlock()
	db.txns = append(db.txns, tx)
}

func (db *DB) removeTx(tx *Tx) {
	db.txnsLock.Lock()
	defer db.txnsLock.Unlock()

	found := -1
	for i, t := range db.txns {
		if t == tx {
			found = i
			break
		}
	}
	if found < 0 {
		panic("tx not found in list")
	}

	n := len(db.txns)
	db.txns[found] = db.txns[n-1]
	db.txns[n-1] = nil // ensure it gets collected
	db.txns = db.txns[:n-1]
}

func (db *DB) DescribeOpenTxns() string {
	if !trackTxns {
		return "OPEN TX TRACKING DISABLED"
	}

	db.txnsLock.Lock()
	txns := slices.Clone(db.txns)
	db.txnsLock.Unlock()

	if len(txns) == 0 {
		return "NO OPEN TRANSACTIONS"
	}

	slices.SortFunc(txns, func(a, b *Tx) int {
		return a.startTime.Compare(b.startTime)
	})

	now := time.Now()

	var buf strings.Builder
	fmt.Fprintf(&buf, "%d OPEN TRANSACTIONS:\n", len(txns))
	for _, tx := range txns {
		ms := now.Sub(tx.startTime).Milliseconds()
		if ms < 100 {
			fmt.Fprintf(&buf, "\n---\nopen for %d ms (writable=%v)\n", ms, tx.IsWritable())
		} else {
			fmt.Fprintf(&buf, "\n---\nopen for %d ms (writable=%v):\n%s", ms, tx.IsWritable(), tx.stack)
		}
	}

	return buf.String()
}
