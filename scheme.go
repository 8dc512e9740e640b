package scoredb

import (
	"fmt"
	"strings"
)

// Scheme selects one of the two physical key encodings.
type Scheme int

const (
	// SchemeV1 is the legacy encoding: raw key bytes joined by '|'. It is not
	// self-delimiting, so keys containing the separator can alias.
	SchemeV1 Scheme = 1
	// SchemeV2 concatenates FrameV2-framed keys.
	SchemeV2 Scheme = 2

	schemeUnresolved Scheme = 0

	DefaultWriteScheme = SchemeV2

	v1Separator = '|'
)

func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "1":
		return SchemeV1, nil
	case "v2", "2":
		return SchemeV2, nil
	default:
		return schemeUnresolved, fmt.Errorf("invalid key scheme %q", s)
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeV1:
		return "v1"
	case SchemeV2:
		return "v2"
	case schemeUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("invalid scheme %d", int(s))
	}
}

func (s Scheme) valid() bool {
	return s == SchemeV1 || s == SchemeV2
}

// appendKey appends a leaf key built from path to prefix.
func (s Scheme) appendKey(buf []byte, path [][]byte) []byte {
	for i, part := range path {
		if s == SchemeV1 && i > 0 {
			buf = append(buf, v1Separator)
		}
		buf = append(buf, part...)
	}
	return buf
}

// appendPrefix appends a region prefix built from path to prefix. Under V1
// the region is terminated by a separator so that the region and its
// entries stay distinguishable.
func (s Scheme) appendPrefix(buf []byte, path [][]byte) []byte {
	buf = s.appendKey(buf, path)
	if s == SchemeV1 {
		buf = append(buf, v1Separator)
	}
	return buf
}
