package scoredb

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type DumpFlags uint64

const (
	DumpKeys = DumpFlags(1 << iota)
	DumpValues
	DumpDecoded
	DumpStats

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

var dumpSep1 = strings.Repeat("=", 80)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump writes the raw key space, optionally limited to keys starting with
// prefix. With DumpDecoded, keys that parse as a sequence of V2 frames are
// shown split into their parts.
func (tx *Tx) Dump(w io.Writer, prefix []byte, f DumpFlags) error {
	var keys, size int

	c := tx.stx.Cursor()
	defer c.Close()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		keys++
		size += len(k) + len(v)
		if !f.Contains(DumpKeys) {
			continue
		}
		var buf strings.Builder
		buf.WriteString(hexstr(k))
		if f.Contains(DumpDecoded) {
			if parts, ok := splitFramesV2(k); ok {
				buf.WriteString(" v2")
				for _, p := range parts {
					buf.WriteByte('/')
					buf.WriteString(loggableBytes(p))
				}
			}
		}
		if f.Contains(DumpValues) {
			buf.WriteString(" = ")
			buf.WriteString(hexstr(v))
		}
		buf.WriteByte('\n')
		if _, err := io.WriteString(w, buf.String()); err != nil {
			return err
		}
	}

	if f.Contains(DumpStats) {
		_, err := fmt.Fprintf(w, "%s\n%d keys, %d bytes\n", dumpSep1, keys, size)
		return err
	}
	return nil
}

// splitFramesV2 splits a physical key made entirely of V2 frames.
func splitFramesV2(b []byte) ([][]byte, bool) {
	var parts [][]byte
	for len(b) > 0 {
		payload, rest, err := SplitFrameV2(b)
		if err != nil {
			return nil, false
		}
		parts = append(parts, payload)
		b = rest
	}
	return parts, true
}

func loggableBytes(b []byte) string {
	if utf8.Valid(b) && isPrintable(b) {
		return strconv.Quote(string(b))
	}
	return "0x" + hexstr(b)
}

func isPrintable(b []byte) bool {
	for _, r := range string(b) {
		if !strconv.IsPrint(r) {
			return false
		}
	}
	return true
}
