package scoredb

import (
	"fmt"
	"iter"
	"math"
	"math/big"
)

// arraySizeKey holds the length of an ArrayDB. Under V2 it is the region
// prefix itself, which no framed index can produce.
var arraySizeKey = Candidates{
	V1: [][]byte{[]byte("size")},
	V2: [][]byte{{}},
}

// ArrayDB is an ordered, length-tracked list of values.
//
// The length is read once when the ArrayDB is opened and written on every
// Put and Pop. Indices [0, Len()) are present, everything past them absent.
type ArrayDB[V Value] struct {
	db   *View
	key  []byte
	size int
}

func NewArrayDB[V Value](varKey any, db *View) (*ArrayDB[V], error) {
	prefix, err := regionCandidates(db.IsRoot(), arrayTag, varKey)
	if err != nil {
		return nil, err
	}
	a := &ArrayDB[V]{
		db:  db.SubView(prefix),
		key: prefix.V1[len(prefix.V1)-1],
	}
	raw, err := a.db.Get(arraySizeKey)
	if err != nil {
		return nil, a.errf(err, "reading size")
	}
	size := BytesToInt(raw)
	if size.Sign() < 0 || !size.IsInt64() || size.Int64() > math.MaxInt {
		return nil, a.errf(dataErrf(raw, 0, nil, "invalid array size"), "reading size")
	}
	a.size = int(size.Int64())
	return a, nil
}

func (a *ArrayDB[V]) errf(err error, format string, args ...any) error {
	return containerErrf(arrayTag, a.key, err, format, args...)
}

// Len returns the cached length.
func (a *ArrayDB[V]) Len() int {
	return a.size
}

// Put appends v.
func (a *ArrayDB[V]) Put(v V) error {
	size := a.size
	if err := a.put(size, v); err != nil {
		return err
	}
	return a.setSize(size + 1)
}

// Pop removes and returns the last element. ok is false, and nothing is
// written, when the array is empty.
func (a *ArrayDB[V]) Pop() (v V, ok bool, err error) {
	size := a.size
	if size == 0 {
		return v, false, nil
	}

	index := size - 1
	v, err = a.get(index)
	if err != nil {
		return v, false, err
	}
	kc := indexCandidates(index)
	if err := a.db.Delete(kc); err != nil {
		return v, false, a.errf(err, "deleting [%d]", index)
	}
	if err := a.setSize(index); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Get returns the element at index. Negative indices count from the end.
func (a *ArrayDB[V]) Get(index int) (V, error) {
	i, err := a.normalize(index)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.get(i)
}

// At is Get for an index of any integer type, including *big.Int.
// Non-integers fail with ErrInvalidIndex.
func (a *ArrayDB[V]) At(index any) (V, error) {
	i, err := a.intIndex(index)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.Get(i)
}

// Set overwrites an existing element; the length does not change.
func (a *ArrayDB[V]) Set(index int, v V) error {
	i, err := a.normalize(index)
	if err != nil {
		return err
	}
	return a.put(i, v)
}

// All iterates over the elements present when iteration starts, in index
// order. A read error is yielded once with a zero value and ends the
// iteration.
func (a *ArrayDB[V]) All() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		size := a.size
		for i := 0; i < size; i++ {
			v, err := a.get(i)
			if err != nil {
				var zero V
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Values reads every element.
func (a *ArrayDB[V]) Values() ([]V, error) {
	size := a.size
	result := make([]V, 0, size)
	for i := 0; i < size; i++ {
		v, err := a.get(i)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Contains scans the array for an element equal to v.
func (a *ArrayDB[V]) Contains(v V) (bool, error) {
	size := a.size
	for i := 0; i < size; i++ {
		e, err := a.get(i)
		if err != nil {
			return false, err
		}
		if valuesEqual(e, v) {
			return true, nil
		}
	}
	return false, nil
}

func (a *ArrayDB[V]) normalize(index int) (int, error) {
	size := a.size
	if index < 0 {
		index += size
	}
	if 0 <= index && index < size {
		return index, nil
	}
	return 0, a.errf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}

func (a *ArrayDB[V]) intIndex(index any) (int, error) {
	n, ok := integerOf(index)
	if !ok {
		return 0, a.errf(ErrInvalidIndex, "not an integer: %T", index)
	}
	if !n.IsInt64() || n.Int64() > math.MaxInt || n.Int64() < math.MinInt {
		return 0, a.errf(ErrIndexOutOfRange, "index %v, size %d", n, a.size)
	}
	return int(n.Int64()), nil
}

func (a *ArrayDB[V]) get(index int) (V, error) {
	raw, err := a.db.Get(indexCandidates(index))
	if err != nil {
		var zero V
		return zero, a.errf(err, "reading [%d]", index)
	}
	return DecodeValue[V](raw), nil
}

func (a *ArrayDB[V]) put(index int, v V) error {
	raw, err := encodeTypedValue(v)
	if err != nil {
		return a.errf(err, "[%d]", index)
	}
	if err := a.db.Put(indexCandidates(index), raw); err != nil {
		return a.errf(err, "writing [%d]", index)
	}
	return nil
}

func (a *ArrayDB[V]) setSize(size int) error {
	if err := a.db.Put(arraySizeKey, int64ToBytes(int64(size))); err != nil {
		return a.errf(err, "writing size %d", size)
	}
	a.size = size
	return nil
}

func indexCandidates(index int) Candidates {
	raw := IntToBytes(big.NewInt(int64(index)))
	return Candidates{
		V1: [][]byte{raw},
		V2: [][]byte{FrameV2(raw)},
	}
}

func (a *ArrayDB[V]) String() string {
	return fmt.Sprintf("ArrayDB(%q, size=%d)", a.key, a.size)
}
