package scoredb

import "math/big"

var bigOne = big.NewInt(1)

// IntToBytes returns the shortest big-endian two's-complement representation
// of v. Zero encodes as a single 0x00 byte.
func IntToBytes(v *big.Int) []byte {
	if v.Sign() >= 0 {
		n := intByteLen(v)
		return v.FillBytes(make([]byte, n))
	}

	// -v-1 has the same bits as v with every bit inverted
	m := new(big.Int).Neg(v)
	m.Sub(m, bigOne)
	n := intByteLen(m)
	buf := m.FillBytes(make([]byte, n))
	for i := range buf {
		buf[i] = ^buf[i]
	}
	return buf
}

// BytesToInt decodes two's-complement big-endian bytes. Empty input decodes
// as zero.
func BytesToInt(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	if b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	v := new(big.Int).SetBytes(inv)
	v.Add(v, bigOne)
	return v.Neg(v)
}

// intByteLen is the number of bytes needed to hold a non-negative v
// together with a clear sign bit.
func intByteLen(v *big.Int) int {
	return (v.BitLen() + 8) / 8
}

func int64ToBytes(v int64) []byte {
	return IntToBytes(big.NewInt(v))
}
