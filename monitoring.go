package scoredb

import "fmt"

type Stats struct {
	Backend Backend

	Readers int64
	Writers int64

	Reads  uint64
	Writes uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: readers=%d writers=%d reads=%d writes=%d", s.Backend, s.Readers, s.Writers, s.Reads, s.Writes)
}

// Stats returns the counters of open transactions and of reads and writes
// made through them since Open.
func (db *DB) Stats() Stats {
	return Stats{
		Backend: db.backend,
		Readers: db.ReaderCount.Load(),
		Writers: db.WriterCount.Load(),
		Reads:   db.ReadCount.Load(),
		Writes:  db.WriteCount.Load(),
	}
}
