package registers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfraser/dc4/internal/bigreal"
	"github.com/wfraser/dc4/internal/registers"
	"github.com/wfraser/dc4/internal/value"
)

// realComparer lets cmp.Diff look inside bigreal.Real (whose magnitude
// and scale fields are unexported) by numeric value instead of
// panicking on the unexported fields.
var realComparer = cmp.Comparer(func(a, b *bigreal.Real) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func TestEmptyRegisterHasNoTop(t *testing.T) {
	f := registers.New()
	_, ok := f.Get('a').Top()
	assert.False(t, ok)
}

func TestSetThenTop(t *testing.T) {
	f := registers.New()
	r := f.Get('a')
	r.Set(value.Number(bigreal.FromInt64(42)))
	v, ok := r.Top()
	require.True(t, ok)
	n, _ := v.Number.Int64()
	assert.EqualValues(t, 42, n)
}

func TestPushPreservesArrayBeneath(t *testing.T) {
	f := registers.New()
	r := f.Get('a')
	r.Set(value.Number(bigreal.FromInt64(1)))
	r.ArrayStore(0, value.Number(bigreal.FromInt64(100)))

	r.Push(value.Number(bigreal.FromInt64(2)))
	assert.True(t, r.ArrayLoad(0).Number.IsZero()) // fresh empty array on the new frame

	v, ok := r.Pop()
	require.True(t, ok)
	n, _ := v.Number.Int64()
	assert.EqualValues(t, 2, n)

	// Popping back off reveals the original frame and its array.
	loaded := r.ArrayLoad(0)
	got, _ := loaded.Number.Int64()
	assert.EqualValues(t, 100, got)
}

// TestArraySnapshotSurvivesPushPop stores a multi-entry array, takes a
// full snapshot, round-trips through a save ('S') and restore ('L'),
// and diffs the snapshot against the array visible afterward -- the
// array frame underneath a push must come back byte-for-byte.
func TestArraySnapshotSurvivesPushPop(t *testing.T) {
	f := registers.New()
	r := f.Get('a')
	r.Set(value.Number(bigreal.FromInt64(1)))

	indices := []int64{0, 1, 5, 100}
	for i, idx := range indices {
		r.ArrayStore(idx, value.Number(bigreal.FromInt64(int64(i*10))))
	}
	before := make([]value.Value, len(indices))
	for i, idx := range indices {
		before[i] = r.ArrayLoad(idx)
	}

	r.Push(value.Number(bigreal.FromInt64(2)))
	r.ArrayStore(0, value.Number(bigreal.FromInt64(999))) // shadowed by the new frame
	_, ok := r.Pop()
	require.True(t, ok)

	after := make([]value.Value, len(indices))
	for i, idx := range indices {
		after[i] = r.ArrayLoad(idx)
	}

	if diff := cmp.Diff(before, after, realComparer); diff != "" {
		t.Errorf("array snapshot changed across push/pop (-before +after):\n%s", diff)
	}
}

func TestArrayLoadUnsetIsZero(t *testing.T) {
	f := registers.New()
	r := f.Get('z')
	v := r.ArrayLoad(7)
	require.True(t, v.IsNumber())
	assert.True(t, v.Number.IsZero())
}

func TestPopEmptyFails(t *testing.T) {
	f := registers.New()
	_, ok := f.Get('q').Pop()
	assert.False(t, ok)
}

func TestEveryByteIsAValidRegisterName(t *testing.T) {
	f := registers.New()
	for _, name := range []byte{0, 255, '\n', ' '} {
		f.Get(name).Set(value.Number(bigreal.One()))
		v, ok := f.Get(name).Top()
		require.True(t, ok)
		assert.True(t, v.Number.Cmp(bigreal.One()) == 0)
	}
}
