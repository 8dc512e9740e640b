package scoredb

import "fmt"

type containerTag byte

const (
	arrayTag containerTag = 0x00
	dictTag  containerTag = 0x01
	varTag   containerTag = 0x02
)

func (tag containerTag) String() string {
	switch tag {
	case arrayTag:
		return "ArrayDB"
	case dictTag:
		return "DictDB"
	case varTag:
		return "VarDB"
	default:
		return fmt.Sprintf("container(0x%02x)", byte(tag))
	}
}

// Candidates is a pair of key paths, one per scheme, naming the same logical
// location. A View picks whichever matches its resolved scheme.
type Candidates struct {
	V1 [][]byte
	V2 [][]byte
}

func (c Candidates) path(s Scheme) [][]byte {
	if s == SchemeV1 {
		return c.V1
	}
	return c.V2
}

// KeyCandidates encodes a single logical key under both schemes.
func KeyCandidates(key any) (Candidates, error) {
	raw, err := EncodeKey(key)
	if err != nil {
		return Candidates{}, err
	}
	return Candidates{
		V1: [][]byte{raw},
		V2: [][]byte{FrameV2(raw)},
	}, nil
}

// regionCandidates builds the region of a container with the given tag and
// key under a parent view.
//
// The container tag only appears directly under an owner root. Scalars are
// the exception: every VarDB of an owner shares one tag-only region, and
// individual scalars are keys inside it.
func regionCandidates(parentIsRoot bool, tag containerTag, key any) (Candidates, error) {
	switch tag {
	case arrayTag, dictTag:
		kc, err := KeyCandidates(key)
		if err != nil {
			return Candidates{}, containerErrf(tag, nil, err, "region key")
		}
		if !parentIsRoot {
			return kc, nil
		}
		t := []byte{byte(tag)}
		return Candidates{
			V1: [][]byte{t, kc.V1[0]},
			V2: [][]byte{t, kc.V2[0]},
		}, nil
	case varTag:
		t := []byte{byte(tag)}
		return Candidates{V1: [][]byte{t}, V2: [][]byte{t}}, nil
	default:
		return Candidates{}, containerErrf(tag, nil, ErrUnsupportedContainerType, "")
	}
}
