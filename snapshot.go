package scoredb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"go.uber.org/zap"
)

// Export writes every key of the store to w as a snappy-compressed stream of
// msgpack records, reading from a single snapshot. It returns the number of
// entries written.
func (db *DB) Export(w io.Writer) (int, error) {
	var n int
	err := db.View(func(tx *Tx) error {
		var err error
		n, err = tx.Export(w)
		return err
	})
	return n, err
}

func (tx *Tx) Export(w io.Writer) (int, error) {
	sw := snappy.NewBufferedWriter(w)
	rw := newRecordWriter(sw)

	err := rw.write(&snapshotHeader{
		Magic:       snapshotMagic,
		Version:     snapshotVersion,
		WriteScheme: tx.db.writeScheme,
	})
	if err != nil {
		return 0, err
	}

	var n int
	c := tx.stx.Cursor()
	defer c.Close()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		err := rw.write(&snapshotEntry{Key: k, Value: v})
		if err != nil {
			return n, fmt.Errorf("scoredb: export: %w", err)
		}
		n++
	}
	if err := sw.Close(); err != nil {
		return n, fmt.Errorf("scoredb: export: %w", err)
	}
	tx.db.logger.Info("snapshot exported", zap.Int("entries", n))
	return n, nil
}

// Import loads a stream produced by Export in one writable transaction.
// Existing keys not present in the stream are kept.
func (db *DB) Import(r io.Reader) (int, error) {
	var n int
	err := db.Update(func(tx *Tx) error {
		var err error
		n, err = tx.Import(r)
		return err
	})
	return n, err
}

func (tx *Tx) Import(r io.Reader) (int, error) {
	rr := newRecordReader(snappy.NewReader(r))

	var hdr snapshotHeader
	if err := rr.read(&hdr); err != nil {
		return 0, fmt.Errorf("scoredb: import: header: %w", err)
	}
	if hdr.Magic != snapshotMagic {
		return 0, fmt.Errorf("scoredb: import: not a snapshot (magic %q)", hdr.Magic)
	}
	if hdr.Version != snapshotVersion {
		return 0, fmt.Errorf("scoredb: import: unsupported snapshot version %d", hdr.Version)
	}

	var n int
	var prev []byte
	for {
		var e snapshotEntry
		err := rr.read(&e)
		if err == io.EOF {
			break
		} else if err != nil {
			return n, fmt.Errorf("scoredb: import: entry %d: %w", n, err)
		}
		if prev != nil && bytes.Compare(prev, e.Key) >= 0 {
			return n, fmt.Errorf("scoredb: import: entry %d: %w", n, dataErrf(e.Key, 0, nil, "key out of order"))
		}
		if e.Value == nil {
			e.Value = []byte{}
		}
		if err := tx.put(e.Key, e.Value); err != nil {
			return n, fmt.Errorf("scoredb: import: entry %d: %w", n, err)
		}
		prev = e.Key
		n++
	}
	tx.db.logger.Info("snapshot imported", zap.Int("entries", n), zap.Stringer("source_scheme", hdr.WriteScheme))
	return n, nil
}
