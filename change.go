package scoredb

import "fmt"

type (
	// Change describes one physical write made through a Tx.
	Change struct {
		op    Op
		key   []byte
		value []byte
	}

	Op int
)

const (
	OpNone   Op = 0
	OpPut    Op = 1
	OpDelete Op = 2
)

func (chg *Change) Op() Op {
	return chg.op
}

// Key is the full physical key, including the owner and region prefixes.
func (chg *Change) Key() []byte {
	return chg.key
}

// Value is nil for deletions.
func (chg *Change) Value() []byte {
	return chg.value
}

func (chg *Change) String() string {
	if chg.op == OpDelete {
		return fmt.Sprintf("%v %s", chg.op, hexstr(chg.key))
	}
	return fmt.Sprintf("%v %s = %s", chg.op, hexstr(chg.key), hexstr(chg.value))
}

func (tx *Tx) notify(op Op, key, value []byte) {
	if tx.changeHandler == nil {
		return
	}
	tx.changeHandler(&Change{op: op, key: key, value: value})
}

func (v Op) String() string {
	switch v {
	case OpNone:
		return "none"
	case OpPut:
		return "put"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("invalid op %d", int(v))
	}
}
