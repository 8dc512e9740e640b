package scoredb

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	snapshotMagic   = "scoredb-snapshot"
	snapshotVersion = 1
)

type snapshotHeader struct {
	Magic       string `msgpack:"magic"`
	Version     int    `msgpack:"ver"`
	WriteScheme Scheme `msgpack:"scheme"`
}

type snapshotEntry struct {
	Key   []byte `msgpack:"k"`
	Value []byte `msgpack:"v"`
}

type recordWriter struct {
	enc *msgpack.Encoder
}

func newRecordWriter(w io.Writer) *recordWriter {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return &recordWriter{enc}
}

func (rw *recordWriter) write(rec any) error {
	if err := rw.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode %T using MsgPack: %w", rec, err)
	}
	return nil
}

type recordReader struct {
	dec *msgpack.Decoder
}

func newRecordReader(r io.Reader) *recordReader {
	return &recordReader{msgpack.NewDecoder(r)}
}

// read decodes the next record into rec. It returns io.EOF only at a record
// boundary.
func (rr *recordReader) read(rec any) error {
	err := rr.dec.Decode(rec)
	if errors.Is(err, io.EOF) {
		return io.EOF
	} else if err != nil {
		return fmt.Errorf("failed to decode msgpack into %T: %w", rec, err)
	}
	return nil
}
