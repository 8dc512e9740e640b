package scoredb

import (
	"strings"
	"testing"
)

func TestOp_String(t *testing.T) {
	if OpPut.String() != "put" || OpDelete.String() != "delete" || OpNone.String() != "none" {
		t.Fatalf("unexpected Op.String values")
	}
	if got := Op(999).String(); got == "put" || got == "delete" || got == "none" {
		t.Fatalf("unexpected Op(999).String() = %q", got)
	}
}

func TestTx_OnChange_PutAndDelete(t *testing.T) {
	db := setup(t, MemoryBackend)

	var got []*Change
	err := db.Update(func(tx *Tx) error {
		tx.OnChange(func(chg *Change) {
			got = append(got, chg)
		})

		v, err := NewVarDB[string]("name", tx.Score(score1))
		if err != nil {
			return err
		}
		if err := v.Set("foo"); err != nil {
			return err
		}
		return v.Remove()
	})
	if err != nil {
		t.Fatalf("Update = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d changes, wanted 2", len(got))
	}
	wantKey := cat(ownerPrefixV2(score1), x("02"), FrameV2([]byte("name")))
	if got[0].Op() != OpPut || !bytesEq(got[0].Key(), wantKey) || string(got[0].Value()) != "foo" {
		t.Fatalf("change[0] = %v, wanted put %x = foo", got[0], wantKey)
	}
	if got[1].Op() != OpDelete || !bytesEq(got[1].Key(), wantKey) || got[1].Value() != nil {
		t.Fatalf("change[1] = %v, wanted delete %x", got[1], wantKey)
	}

	if s := got[0].String(); !strings.HasPrefix(s, "put ") || !strings.HasSuffix(s, " = 666f6f") {
		t.Fatalf("change[0].String() = %q", s)
	}
	if s := got[1].String(); !strings.HasPrefix(s, "delete ") || strings.Contains(s, "=") {
		t.Fatalf("change[1].String() = %q", s)
	}
}

func TestTx_OnChange_NotCalledForFailedWrites(t *testing.T) {
	db := setup(t, MemoryBackend)
	err := db.View(func(tx *Tx) error {
		tx.OnChange(func(chg *Change) {
			t.Fatalf("unexpected change %v", chg)
		})
		v, err := NewVarDB[int]("n", tx.Score(score1))
		if err != nil {
			return err
		}
		if err := v.Set(1); err == nil {
			t.Fatalf("Set in a read-only tx succeeded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View = %v", err)
	}
}

func bytesEq(a, b []byte) bool {
	return string(a) == string(b)
}
