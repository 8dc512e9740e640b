package scoredb

import (
	"reflect"
	"sync"
)

type shape int

const (
	shapeLeaf shape = iota
	shapeMap
	shapeList
)

var shapeCache sync.Map

var bytesType = reflect.TypeFor[[]byte]()

// shapeOf classifies a value for wholesale storage. Byte slices are leaves,
// not lists.
func shapeOf(typ reflect.Type) shape {
	if v, ok := shapeCache.Load(typ); ok {
		return v.(shape)
	}
	s := shapeOfWithoutCache(typ)
	actual, _ := shapeCache.LoadOrStore(typ, s)
	return actual.(shape)
}

func shapeOfWithoutCache(typ reflect.Type) shape {
	switch typ.Kind() {
	case reflect.Map:
		return shapeMap
	case reflect.Slice:
		if typ.ConvertibleTo(bytesType) && typ.Elem().Kind() == reflect.Uint8 {
			return shapeLeaf
		}
		return shapeList
	case reflect.Array:
		return shapeList
	default:
		return shapeLeaf
	}
}

// unwrapInterface looks through interface values such as the elements of
// a map[string]any.
func unwrapInterface(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
