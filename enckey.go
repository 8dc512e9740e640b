package scoredb

import (
	"fmt"
	"math/big"
)

// EncodeKey returns the scheme V1 encoding of a logical key: integers as
// minimal two's-complement bytes, strings as UTF-8, addresses in their byte
// form and byte slices as is.
//
// V1 keys are not self-delimiting; see FrameV2 for the V2 form.
func EncodeKey(key any) ([]byte, error) {
	switch k := key.(type) {
	case nil:
		return nil, fmt.Errorf("%w: key is nil", ErrInvalidKey)
	case []byte:
		if k == nil {
			return nil, fmt.Errorf("%w: key is nil", ErrInvalidKey)
		}
		return k, nil
	case string:
		return []byte(k), nil
	case Address:
		return k.Bytes(), nil
	case *Address:
		if k == nil {
			return nil, fmt.Errorf("%w: key is nil", ErrInvalidKey)
		}
		return k.Bytes(), nil
	case *big.Int:
		if k == nil {
			return nil, fmt.Errorf("%w: key is nil", ErrInvalidKey)
		}
		return IntToBytes(k), nil
	}
	if v, ok := integerOf(key); ok {
		return IntToBytes(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, key)
}

func encodeKeyV2(key any) ([]byte, error) {
	raw, err := EncodeKey(key)
	if err != nil {
		return nil, err
	}
	return FrameV2(raw), nil
}

// integerOf converts any built-in Go integer kind. bool is deliberately not
// an integer here.
func integerOf(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}
