package scoredb

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestArrayDB_Scenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, db *DB) {
		require.NoError(t, db.Update(func(tx *Tx) error {
			a, err := NewArrayDB[string]("letters", tx.Score(score1))
			require.NoError(t, err)
			require.NoError(t, a.Put("a"))
			require.NoError(t, a.Put("b"))
			require.NoError(t, a.Put("c"))
			assert.Equal(t, 3, a.Len())
			assert.Equal(t, []string{"a", "b", "c"}, must(a.Values()))
			return nil
		}))

		require.NoError(t, db.Update(func(tx *Tx) error {
			a, err := NewArrayDB[string]("letters", tx.Score(score1))
			require.NoError(t, err)
			assert.Equal(t, 3, a.Len(), "length is persisted")

			v, ok, err := a.Pop()
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "c", v)
			assert.Equal(t, 2, a.Len())
			return nil
		}))

		require.NoError(t, db.View(func(tx *Tx) error {
			a, err := NewArrayDB[string]("letters", tx.Score(score1))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, must(a.Values()))
			_, err = a.Get(2)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			return nil
		}))
	})
}

func TestArrayDB_SequenceInvariant(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		a, err := NewArrayDB[int]("seq", tx.Score(score1))
		require.NoError(t, err)

		var model []int
		ops := []int{1, 1, 1, -1, 1, -1, -1, -1, -1, 1, 1, 1, 1, -1, 1}
		for i, op := range ops {
			if op > 0 {
				require.NoError(t, a.Put(i*10))
				model = append(model, i*10)
				continue
			}
			v, ok, err := a.Pop()
			require.NoError(t, err)
			if len(model) == 0 {
				assert.False(t, ok)
				continue
			}
			assert.True(t, ok)
			assert.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		}

		assert.Equal(t, len(model), a.Len())
		for i, want := range model {
			assert.Equal(t, want, must(a.Get(i)))
		}

		reopened, err := NewArrayDB[int]("seq", tx.Score(score1))
		require.NoError(t, err)
		assert.Equal(t, len(model), reopened.Len())
		return nil
	}))
}

func TestArrayDB_NegativeIndexing(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		a, err := NewArrayDB[int64]("n", tx.Score(score1))
		require.NoError(t, err)
		for i := range 5 {
			require.NoError(t, a.Put(int64(i)))
		}

		assert.Equal(t, must(a.Get(4)), must(a.Get(-1)))
		assert.Equal(t, must(a.Get(0)), must(a.Get(-5)))
		_, err = a.Get(-6)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = a.Get(5)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		require.NoError(t, a.Set(-2, 33))
		assert.Equal(t, int64(33), must(a.Get(3)))
		assert.Equal(t, 5, a.Len(), "Set does not change the length")
		assert.ErrorIs(t, a.Set(5, 1), ErrIndexOutOfRange)
		return nil
	}))
}

func TestArrayDB_At(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		a, err := NewArrayDB[string]("at", tx.Score(score1))
		require.NoError(t, err)
		require.NoError(t, a.Put("zero"))
		require.NoError(t, a.Put("one"))

		for _, idx := range []any{1, int8(1), uint64(1), big.NewInt(1), int32(-1)} {
			v, err := a.At(idx)
			require.NoError(t, err, "index %T", idx)
			assert.Equal(t, "one", v)
		}

		for _, idx := range []any{"1", 1.0, nil, true, []byte{1}} {
			_, err := a.At(idx)
			assert.ErrorIs(t, err, ErrInvalidIndex, "index %#v", idx)
		}

		huge := new(big.Int).Lsh(big.NewInt(1), 100)
		_, err = a.At(huge)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		return nil
	}))
}

func TestArrayDB_ContainsAndAll(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		a, err := NewArrayDB[[]byte]("blobs", tx.Score(score1))
		require.NoError(t, err)
		require.NoError(t, a.Put([]byte{1}))
		require.NoError(t, a.Put([]byte{2, 3}))
		require.NoError(t, a.Put([]byte{}))

		assert.True(t, must(a.Contains([]byte{2, 3})))
		assert.True(t, must(a.Contains([]byte{})))
		assert.False(t, must(a.Contains([]byte{9})))

		var seen [][]byte
		for v, err := range a.All() {
			require.NoError(t, err)
			seen = append(seen, v)
			if len(v) == 2 {
				break
			}
		}
		assert.Equal(t, [][]byte{{1}, {2, 3}}, seen)
		return nil
	}))
}

func TestArrayDB_ValueTypes(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		root := tx.Score(score1)

		flags, err := NewArrayDB[bool]("flags", root)
		require.NoError(t, err)
		require.NoError(t, flags.Put(true))
		require.NoError(t, flags.Put(false))
		assert.Equal(t, []bool{true, false}, must(flags.Values()))
		assert.True(t, must(flags.Contains(false)))

		addrs, err := NewArrayDB[Address]("addrs", root)
		require.NoError(t, err)
		require.NoError(t, addrs.Put(user1))
		require.NoError(t, addrs.Put(score2))
		assert.Equal(t, []Address{user1, score2}, must(addrs.Values()))

		bigs, err := NewArrayDB[*big.Int]("bigs", root)
		require.NoError(t, err)
		huge, _ := new(big.Int).SetString("-99999999999999999999999", 10)
		require.NoError(t, bigs.Put(huge))
		assert.True(t, must(bigs.Contains(new(big.Int).Set(huge))))
		assert.Equal(t, 0, must(bigs.Get(0)).Cmp(huge))
		return nil
	}))
}

func TestArrayDB_DistinctKeysDoNotAlias(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.Update(func(tx *Tx) error {
		root := tx.Score(score1)
		a, err := NewArrayDB[int]("a", root)
		require.NoError(t, err)
		b, err := NewArrayDB[int]("b", root)
		require.NoError(t, err)
		for i := range 3 {
			require.NoError(t, a.Put(100+i))
		}
		require.NoError(t, b.Put(7))

		assert.Equal(t, []int{100, 101, 102}, must(a.Values()))
		assert.Equal(t, []int{7}, must(b.Values()))

		// same name, different container kind
		d, err := NewDictDB[int]("a", root, 1)
		require.NoError(t, err)
		assert.False(t, must(d.Contains(0)))
		return nil
	}))
}

func TestArrayDB_UnderNestedView(t *testing.T) {
	db := setup(t, MemoryBackend)
	var keys *[][]byte
	require.NoError(t, db.Update(func(tx *Tx) error {
		keys = recordKeys(tx)
		ns := tx.Score(score1).SubView(must(KeyCandidates("ns")))
		assert.False(t, ns.IsRoot())
		a, err := NewArrayDB[int]("a", ns)
		require.NoError(t, err)
		return a.Put(1)
	}))
	region := cat(ownerPrefixV2(score1), FrameV2([]byte("ns")), []byte("a"))
	assert.Equal(t, [][]byte{cat(region, x("00")), region}, *keys)
}

func TestArrayDB_CorruptSize(t *testing.T) {
	db := setup(t, MemoryBackend)
	region := cat(ownerPrefixV2(score1), x("00"), []byte("a"))
	require.NoError(t, db.Update(func(tx *Tx) error {
		return tx.put(region, x("ff"))
	}))
	require.NoError(t, db.View(func(tx *Tx) error {
		_, err := NewArrayDB[int]("a", tx.Score(score1))
		var de *DataError
		assert.ErrorAs(t, err, &de)
		var ce *ContainerError
		assert.ErrorAs(t, err, &ce)
		return nil
	}))
}

func TestArrayDB_InvalidKey(t *testing.T) {
	db := setup(t, MemoryBackend)
	require.NoError(t, db.View(func(tx *Tx) error {
		_, err := NewArrayDB[int](nil, tx.Score(score1))
		assert.ErrorIs(t, err, ErrInvalidKey)
		return nil
	}))
}

func newMockDB(t *testing.T) (*DB, *MockstorageTx) {
	ctrl := gomock.NewController(t)
	st := NewMockstorage(ctrl)
	stx := NewMockstorageTx(ctrl)
	st.EXPECT().BeginTx(true).Return(stx, nil)
	stx.EXPECT().Writable().Return(true).AnyTimes()
	stx.EXPECT().Rollback().Return(nil).AnyTimes()

	// no existing data anywhere
	stx.EXPECT().Cursor().DoAndReturn(func() storageCursor {
		c := NewMockstorageCursor(ctrl)
		c.EXPECT().Seek(gomock.Any()).Return(nil, nil)
		c.EXPECT().Close()
		return c
	}).AnyTimes()
	stx.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	return newDB(st, Options{WriteScheme: SchemeV2}, zap.NewNop()), stx
}

func TestArrayDB_PopEmptyDoesNotWrite(t *testing.T) {
	db, _ := newMockDB(t)

	tx, err := db.BeginUpdate()
	require.NoError(t, err)
	defer tx.Close()

	a, err := NewArrayDB[int]("a", tx.Score(score1))
	require.NoError(t, err)
	v, ok, err := a.Pop()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	// any Put or Delete would fail the mock controller
}

func TestArrayDB_PutStorageErrorKeepsLength(t *testing.T) {
	db, stx := newMockDB(t)
	diskFull := errors.New("disk full")
	stx.EXPECT().Put(gomock.Any(), gomock.Any()).Return(diskFull)

	tx, err := db.BeginUpdate()
	require.NoError(t, err)
	defer tx.Close()

	a, err := NewArrayDB[int]("a", tx.Score(score1))
	require.NoError(t, err)
	err = a.Put(1)
	assert.ErrorIs(t, err, diskFull)
	var ce *ContainerError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, arrayTag, ce.Container)
	assert.Equal(t, 0, a.Len())
}

func TestArrayDB_AllReportsReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := NewMockstorage(ctrl)
	stx := NewMockstorageTx(ctrl)
	st.EXPECT().BeginTx(false).Return(stx, nil)
	stx.EXPECT().Writable().Return(false).AnyTimes()
	stx.EXPECT().Rollback().Return(nil).AnyTimes()
	stx.EXPECT().Cursor().DoAndReturn(func() storageCursor {
		c := NewMockstorageCursor(ctrl)
		c.EXPECT().Seek(gomock.Any()).Return(nil, nil)
		c.EXPECT().Close()
		return c
	}).AnyTimes()

	ioErr := errors.New("i/o error")
	region := cat(ownerPrefixV2(score1), x("00"), FrameV2([]byte("a")))
	stx.EXPECT().Get(region).Return(x("02"), nil).AnyTimes()
	stx.EXPECT().Get(gomock.Not(region)).Return(nil, ioErr).AnyTimes()

	db := newDB(st, Options{WriteScheme: SchemeV2}, zap.NewNop())
	tx, err := db.BeginRead()
	require.NoError(t, err)
	defer tx.Close()

	a, err := NewArrayDB[int]("a", tx.Score(score1))
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	var values []int
	var errs []error
	for v, err := range a.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	assert.Empty(t, values)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ioErr)
}
