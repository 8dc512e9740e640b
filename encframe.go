package scoredb

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// FrameV2 wraps b into a self-delimiting length-prefixed frame (the RLP
// byte string encoding):
//
//   - a single byte below 0x80 is its own frame;
//   - 0..55 bytes get a 0x80+len prefix;
//   - longer payloads get 0xb7+len(len) followed by the big-endian length.
//
// Frames can be concatenated and split apart again, which is what makes V2
// keys safe to join into a single physical key.
func FrameV2(b []byte) []byte {
	framed, err := rlp.EncodeToBytes(b)
	if err != nil {
		panic(fmt.Errorf("rlp: encoding %d bytes: %w", len(b), err)) // cannot happen for a byte slice
	}
	return framed
}

// SplitFrameV2 decodes the first frame of b, returning its payload and the
// remaining bytes.
func SplitFrameV2(b []byte) (payload, rest []byte, err error) {
	payload, rest, err = rlp.SplitString(b)
	if err != nil {
		return nil, nil, dataErrf(b, 0, err, "invalid V2 frame")
	}
	return payload, rest, nil
}
