package scoredb

import (
	"fmt"
	"reflect"
)

// maxNestingDepth bounds PutToDB recursion; a self-referencing map fails
// instead of overflowing the stack.
const maxNestingDepth = 32

// PutToDB writes a map, slice or array wholesale under dbKey. Nested maps and
// lists become nested regions keyed by map key or list index; everything else
// is stored as a value. Unlike DictDB and ArrayDB, no container tag is added
// and no length is stored.
func PutToDB(db *View, dbKey any, container any) error {
	kc, err := KeyCandidates(dbKey)
	if err != nil {
		return err
	}
	v := unwrapInterface(reflect.ValueOf(container))
	if !v.IsValid() || shapeOf(v.Type()) == shapeLeaf {
		return fmt.Errorf("%w: %T is not a map, slice or array", ErrInvalidValue, container)
	}
	return putNested(db.SubView(kc), v, 1)
}

func putNested(db *View, v reflect.Value, depth int) error {
	if depth > maxNestingDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels", ErrInvalidValue, maxNestingDepth)
	}
	switch shapeOf(v.Type()) {
	case shapeMap:
		iter := v.MapRange()
		for iter.Next() {
			if err := putNestedEntry(db, iter.Key().Interface(), iter.Value(), depth); err != nil {
				return err
			}
		}
	case shapeList:
		for i := range v.Len() {
			if err := putNestedEntry(db, i, v.Index(i), depth); err != nil {
				return err
			}
		}
	default:
		panic(fmt.Errorf("putNested: unexpected leaf %v", v.Type()))
	}
	return nil
}

func putNestedEntry(db *View, key any, elem reflect.Value, depth int) error {
	kc, err := KeyCandidates(key)
	if err != nil {
		return err
	}
	elem = unwrapInterface(elem)
	if elem.IsValid() && shapeOf(elem.Type()) != shapeLeaf {
		return putNested(db.SubView(kc), elem, depth+1)
	}

	raw, err := EncodeValue(leafInterface(elem))
	if err != nil {
		return fmt.Errorf("%q: %w", kc.V1[0], err)
	}
	return db.Put(kc, raw)
}

func leafInterface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Slice && v.Type() != bytesType {
		return v.Convert(bytesType).Interface()
	}
	return v.Interface()
}

// GetFromDB reads one value stored by PutToDB. path lists the keys below
// dbKey, outermost first, and must not be empty.
func GetFromDB[V Value](db *View, dbKey any, path ...any) (V, error) {
	var zero V
	if len(path) == 0 {
		return zero, fmt.Errorf("%w: empty path", ErrInvalidKey)
	}
	kc, err := KeyCandidates(dbKey)
	if err != nil {
		return zero, err
	}
	sub := db.SubView(kc)

	last := len(path) - 1
	for _, key := range path[:last] {
		kc, err := KeyCandidates(key)
		if err != nil {
			return zero, err
		}
		sub = sub.SubView(kc)
	}

	kc, err = KeyCandidates(path[last])
	if err != nil {
		return zero, err
	}
	raw, err := sub.Get(kc)
	if err != nil {
		return zero, err
	}
	return DecodeValue[V](raw), nil
}
