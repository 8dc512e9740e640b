package scoredb

import "fmt"

// VarDB is a single named value. All VarDBs of an owner live in one shared
// region and differ only by key.
type VarDB[V Value] struct {
	db  *View
	kc  Candidates
	key []byte
}

func NewVarDB[V Value](varKey any, db *View) (*VarDB[V], error) {
	prefix, err := regionCandidates(db.IsRoot(), varTag, nil)
	if err != nil {
		return nil, err
	}
	kc, err := KeyCandidates(varKey)
	if err != nil {
		return nil, containerErrf(varTag, nil, err, "")
	}
	return &VarDB[V]{
		db:  db.SubView(prefix),
		kc:  kc,
		key: kc.V1[0],
	}, nil
}

func (v *VarDB[V]) Set(value V) error {
	raw, err := encodeTypedValue(value)
	if err != nil {
		return containerErrf(varTag, v.key, err, "set")
	}
	if err := v.db.Put(v.kc, raw); err != nil {
		return containerErrf(varTag, v.key, err, "writing")
	}
	return nil
}

// Get returns the stored value, or the zero value of V if unset.
func (v *VarDB[V]) Get() (V, error) {
	raw, err := v.db.Get(v.kc)
	if err != nil {
		var zero V
		return zero, containerErrf(varTag, v.key, err, "reading")
	}
	return DecodeValue[V](raw), nil
}

func (v *VarDB[V]) Remove() error {
	if err := v.db.Delete(v.kc); err != nil {
		return containerErrf(varTag, v.key, err, "deleting")
	}
	return nil
}

func (v *VarDB[V]) String() string {
	return fmt.Sprintf("VarDB(%q)", v.key)
}
