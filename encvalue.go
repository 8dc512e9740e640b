package scoredb

import (
	"bytes"
	"fmt"
	"math/big"
)

// Value is the closed set of element types a container can hold.
// int, int64 and *big.Int are all the logical Integer and share one encoding.
// Decoding into int or int64 truncates wider stored integers; *big.Int is lossless.
type Value interface {
	int | int64 | *big.Int | string | Address | []byte | bool
}

// EncodeValue encodes a logical value. Booleans are stored as the integers
// 1 and 0; everything else uses the key encoding.
func EncodeValue(value any) ([]byte, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return int64ToBytes(1), nil
		}
		return int64ToBytes(0), nil
	case []byte:
		// nil is what DecodeValue returns for an absent value
		if v == nil {
			return []byte{}, nil
		}
		return v, nil
	case nil:
		return nil, fmt.Errorf("%w: value is nil", ErrInvalidValue)
	}
	raw, err := EncodeKey(value)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode %T: %v", ErrInvalidValue, value, err)
	}
	return raw, nil
}

// DecodeValue reinterprets raw as V. A nil raw (nothing stored) yields the
// zero value of V: 0, "", false, a zero Address or nil bytes.
//
// Nothing checks that raw was produced for V; the caller has to know.
func DecodeValue[V Value](raw []byte) V {
	var result V
	switch p := any(&result).(type) {
	case *int:
		*p = int(BytesToInt(raw).Int64())
	case *int64:
		*p = BytesToInt(raw).Int64()
	case **big.Int:
		*p = BytesToInt(raw)
	case *string:
		*p = string(raw)
	case *bool:
		*p = BytesToInt(raw).Sign() != 0
	case *Address:
		if raw != nil {
			*p, _ = AddressFromBytes(raw)
		}
	case *[]byte:
		*p = raw
	}
	return result
}

func encodeTypedValue[V Value](v V) ([]byte, error) {
	return EncodeValue(any(v))
}

// valuesEqual compares two decoded values of the same container type.
func valuesEqual[V Value](a, b V) bool {
	switch x := any(a).(type) {
	case []byte:
		return bytes.Equal(x, any(b).([]byte))
	case *big.Int:
		y := any(b).(*big.Int)
		if x == nil || y == nil {
			return x == y
		}
		return x.Cmp(y) == 0
	default:
		return any(a) == any(b)
	}
}
