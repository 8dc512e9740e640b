package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/andreyvit/scoredb"
	"github.com/urfave/cli/v2"
)

var typeFlag = cli.StringFlag{
	Name:    "type",
	Aliases: []string{"t"},
	Usage:   "value type: int, str, addr, bytes or bool",
	Value:   "str",
}

// parseKey interprets a command-line key: hx…/cx… is an address, 0x… hex
// bytes, a decimal number an integer, anything else a string. Prefix a key
// with "s:" to force a string.
func parseKey(s string) any {
	if rest, ok := strings.CutPrefix(s, "s:"); ok {
		return rest
	}
	if a, err := scoredb.ParseAddress(s); err == nil {
		return a
	}
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		if b, err := hex.DecodeString(rest); err == nil {
			return b
		}
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n
	}
	return s
}

func parseKeys(args []string) []any {
	keys := make([]any, len(args))
	for i, s := range args {
		keys[i] = parseKey(s)
	}
	return keys
}

// parseValue encodes s as a value of the named type.
func parseValue(typ, s string) ([]byte, error) {
	var v any
	switch typ {
	case "int":
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		v = n
	case "str":
		v = s
	case "addr":
		a, err := scoredb.ParseAddress(s)
		if err != nil {
			return nil, err
		}
		v = a
	case "bytes":
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytes %q: %w", s, err)
		}
		v = b
	case "bool":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		v = b
	default:
		return nil, fmt.Errorf("unknown value type %q", typ)
	}
	return scoredb.EncodeValue(v)
}

func formatValue(typ string, raw []byte) (string, error) {
	switch typ {
	case "int":
		return scoredb.DecodeValue[*big.Int](raw).String(), nil
	case "str":
		return strconv.Quote(scoredb.DecodeValue[string](raw)), nil
	case "addr":
		if raw == nil {
			return "<none>", nil
		}
		a, err := scoredb.AddressFromBytes(raw)
		if err != nil {
			return "", err
		}
		return a.String(), nil
	case "bytes":
		if raw == nil {
			return "<none>", nil
		}
		return "0x" + hex.EncodeToString(raw), nil
	case "bool":
		return strconv.FormatBool(scoredb.DecodeValue[bool](raw)), nil
	default:
		return "", fmt.Errorf("unknown value type %q", typ)
	}
}
