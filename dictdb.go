package scoredb

import "fmt"

// DictDB maps logical keys to values. A DictDB of depth N > 1 holds DictDBs
// of depth N-1; only depth 1 stores values.
//
// Keys cannot be enumerated.
type DictDB[V Value] struct {
	db    *View
	key   []byte
	depth int
}

func NewDictDB[V Value](varKey any, db *View, depth int) (*DictDB[V], error) {
	prefix, err := regionCandidates(db.IsRoot(), dictTag, varKey)
	if err != nil {
		return nil, err
	}
	key := prefix.V1[len(prefix.V1)-1]
	if depth < 1 {
		return nil, containerErrf(dictTag, key, ErrInvalidContainerAccess, "depth %d", depth)
	}
	return &DictDB[V]{
		db:    db.SubView(prefix),
		key:   key,
		depth: depth,
	}, nil
}

func (d *DictDB[V]) errf(err error, format string, args ...any) error {
	return containerErrf(dictTag, d.key, err, format, args...)
}

func (d *DictDB[V]) Depth() int {
	return d.depth
}

func (d *DictDB[V]) requireLeaf(op string) error {
	if d.depth != 1 {
		return d.errf(ErrInvalidContainerAccess, "%s at depth %d", op, d.depth)
	}
	return nil
}

func (d *DictDB[V]) Set(key any, v V) error {
	if err := d.requireLeaf("set"); err != nil {
		return err
	}
	kc, err := KeyCandidates(key)
	if err != nil {
		return d.errf(err, "set")
	}
	raw, err := encodeTypedValue(v)
	if err != nil {
		return d.errf(err, "set %q", kc.V1[0])
	}
	if err := d.db.Put(kc, raw); err != nil {
		return d.errf(err, "writing %q", kc.V1[0])
	}
	return nil
}

// Get returns the value stored under key, or the zero value of V.
func (d *DictDB[V]) Get(key any) (V, error) {
	var zero V
	if err := d.requireLeaf("get"); err != nil {
		return zero, err
	}
	kc, err := KeyCandidates(key)
	if err != nil {
		return zero, d.errf(err, "get")
	}
	raw, err := d.db.Get(kc)
	if err != nil {
		return zero, d.errf(err, "reading %q", kc.V1[0])
	}
	return DecodeValue[V](raw), nil
}

// Sub descends into the nested DictDB under key. It never reads data, so it
// succeeds whether or not anything is stored below key.
func (d *DictDB[V]) Sub(key any) (*DictDB[V], error) {
	if d.depth == 1 {
		return nil, d.errf(ErrInvalidContainerAccess, "sub at depth 1")
	}
	return NewDictDB[V](key, d.db, d.depth-1)
}

func (d *DictDB[V]) Remove(key any) error {
	if err := d.requireLeaf("remove"); err != nil {
		return err
	}
	kc, err := KeyCandidates(key)
	if err != nil {
		return d.errf(err, "remove")
	}
	if err := d.db.Delete(kc); err != nil {
		return d.errf(err, "deleting %q", kc.V1[0])
	}
	return nil
}

// Contains reports whether a value is physically stored under key. Empty
// values are never stored as absent, so a present key with a zero value is
// still reported.
func (d *DictDB[V]) Contains(key any) (bool, error) {
	kc, err := KeyCandidates(key)
	if err != nil {
		return false, d.errf(err, "contains")
	}
	raw, err := d.db.Get(kc)
	if err != nil {
		return false, d.errf(err, "reading %q", kc.V1[0])
	}
	return raw != nil, nil
}

// Keys always fails: a DictDB has no enumeration primitive.
func (d *DictDB[V]) Keys() ([]any, error) {
	return nil, d.errf(ErrInvalidContainerAccess, "iteration not supported")
}

func (d *DictDB[V]) String() string {
	return fmt.Sprintf("DictDB(%q, depth=%d)", d.key, d.depth)
}
