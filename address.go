package scoredb

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	addressBodySize     = common.AddressLength
	contractAddressFlag = 0x01

	eoaAddressPrefix      = "hx"
	contractAddressPrefix = "cx"
)

// Address is an account address: a 20-byte body plus a flag telling contract
// accounts apart from externally owned ones.
//
// The byte form of an externally owned address is its body; a contract
// address is the 0x01 flag byte followed by the body.
type Address struct {
	Body     common.Address
	Contract bool
}

func EOAAddress(body common.Address) Address {
	return Address{Body: body}
}

func ContractAddress(body common.Address) Address {
	return Address{Body: body, Contract: true}
}

// ParseAddress parses the "hx…" or "cx…" textual form.
func ParseAddress(s string) (Address, error) {
	var contract bool
	switch {
	case strings.HasPrefix(s, eoaAddressPrefix):
	case strings.HasPrefix(s, contractAddressPrefix):
		contract = true
	default:
		return Address{}, fmt.Errorf("invalid address %q: must start with hx or cx", s)
	}
	body := s[2:]
	if len(body) != 2*addressBodySize {
		return Address{}, fmt.Errorf("invalid address %q: want %d hex digits, got %d", s, 2*addressBodySize, len(body))
	}
	raw, err := hex.DecodeString(body)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return Address{Body: common.BytesToAddress(raw), Contract: contract}, nil
}

// AddressFromBytes is the inverse of Address.Bytes.
func AddressFromBytes(b []byte) (Address, error) {
	switch len(b) {
	case addressBodySize:
		return Address{Body: common.BytesToAddress(b)}, nil
	case addressBodySize + 1:
		if b[0] != contractAddressFlag {
			return Address{}, dataErrf(b, 0, nil, "invalid address: unknown prefix byte %02x", b[0])
		}
		return Address{Body: common.BytesToAddress(b[1:]), Contract: true}, nil
	default:
		return Address{}, dataErrf(b, 0, nil, "invalid address: %d bytes", len(b))
	}
}

func (a Address) Bytes() []byte {
	if a.Contract {
		buf := make([]byte, 0, addressBodySize+1)
		buf = append(buf, contractAddressFlag)
		return append(buf, a.Body[:]...)
	}
	return append([]byte(nil), a.Body[:]...)
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	if a.Contract {
		return contractAddressPrefix + hex.EncodeToString(a.Body[:])
	}
	return eoaAddressPrefix + hex.EncodeToString(a.Body[:])
}
