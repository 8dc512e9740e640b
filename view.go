package scoredb

import (
	"slices"

	"go.uber.org/zap"
)

// View is a namespaced handle on the state of one owner. Every operation
// takes Candidates and prepends the view's prefix for the scheme the view
// resolved to.
//
// A root view (Tx.Score) is not resolved itself; regions opened under it
// resolve once, on creation, and their sub-views inherit the result:
//
//  1. the first candidate (V1, then V2) whose region already holds data wins;
//  2. otherwise the DB's write scheme is used.
//
// With Options.FixedScheme, step 1 is skipped.
type View struct {
	tx     *Tx
	owner  Address
	root   bool
	scheme Scheme
	prefix [2][]byte // indexed by scheme-1
}

func newRootView(tx *Tx, owner Address) *View {
	ob := owner.Bytes()
	return &View{
		tx:    tx,
		owner: owner,
		root:  true,
		prefix: [2][]byte{
			SchemeV1.appendPrefix(nil, [][]byte{ob}),
			SchemeV2.appendPrefix(nil, [][]byte{FrameV2(ob)}),
		},
	}
}

func (v *View) Tx() *Tx {
	return v.tx
}

func (v *View) Owner() Address {
	return v.owner
}

// IsRoot is true for the owner's top-level view, under which containers add
// their container tag to the region.
func (v *View) IsRoot() bool {
	return v.root
}

// Scheme returns the resolved scheme, or 0 for a root view.
func (v *View) Scheme() Scheme {
	return v.scheme
}

func (v *View) prefixFor(s Scheme) []byte {
	return slices.Clip(v.prefix[s-1])
}

// SubView opens the region named by c under this view.
func (v *View) SubView(c Candidates) *View {
	s := v.resolveRegion(c)
	sub := &View{tx: v.tx, owner: v.owner, scheme: s}
	sub.prefix[s-1] = s.appendPrefix(v.prefixFor(s), c.path(s))
	return sub
}

func (v *View) Get(c Candidates) ([]byte, error) {
	key, err := v.physicalKey(c)
	if err != nil {
		return nil, err
	}
	return v.tx.get(key)
}

func (v *View) Put(c Candidates, value []byte) error {
	key, err := v.physicalKey(c)
	if err != nil {
		return err
	}
	return v.tx.put(key, value)
}

func (v *View) Delete(c Candidates) error {
	key, err := v.physicalKey(c)
	if err != nil {
		return err
	}
	return v.tx.delete(key)
}

func (v *View) physicalKey(c Candidates) ([]byte, error) {
	s, err := v.resolveKey(c)
	if err != nil {
		return nil, err
	}
	return s.appendKey(v.prefixFor(s), c.path(s)), nil
}

func (v *View) resolveRegion(c Candidates) Scheme {
	if v.scheme != schemeUnresolved {
		return v.scheme
	}
	db := v.tx.db
	if db.fixedScheme {
		return db.writeScheme
	}
	p1 := SchemeV1.appendPrefix(v.prefixFor(SchemeV1), c.V1)
	p2 := SchemeV2.appendPrefix(v.prefixFor(SchemeV2), c.V2)

	s, _ := Memo(v.tx, "region:"+string(p2), func() (Scheme, error) {
		s := db.writeScheme
		if hasPrefix(v.tx.stx, p1) {
			s = SchemeV1
		} else if hasPrefix(v.tx.stx, p2) {
			s = SchemeV2
		}
		db.logger.Debug("region scheme resolved",
			zap.Stringer("owner", v.owner),
			zap.Stringer("scheme", s),
			hexField("v1", p1),
			hexField("v2", p2))
		return s, nil
	})
	return s
}

// resolveKey applies the region rule to a single key on a root view, using
// exact key presence instead of a prefix match.
func (v *View) resolveKey(c Candidates) (Scheme, error) {
	if v.scheme != schemeUnresolved {
		return v.scheme, nil
	}
	db := v.tx.db
	if db.fixedScheme {
		return db.writeScheme, nil
	}
	k1 := SchemeV1.appendKey(v.prefixFor(SchemeV1), c.V1)
	k2 := SchemeV2.appendKey(v.prefixFor(SchemeV2), c.V2)

	return Memo(v.tx, "key:"+string(k2), func() (Scheme, error) {
		if raw, err := v.tx.stx.Get(k1); err != nil {
			return 0, err
		} else if raw != nil {
			return SchemeV1, nil
		}
		if raw, err := v.tx.stx.Get(k2); err != nil {
			return 0, err
		} else if raw != nil {
			return SchemeV2, nil
		}
		return db.writeScheme, nil
	})
}
