package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasov/wayfind/minheap"
)

func intLess(a, b int) bool { return a < b }

func TestPushPop_SortedOrder(t *testing.T) {
	h := minheap.New(intLess)
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Push(v)
	}
	require.Equal(t, 5, h.Len())

	for want := 1; want <= 5; want++ {
		got, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, h.Empty())
}

func TestPopPeek_Empty(t *testing.T) {
	h := minheap.New(intLess)

	_, err := h.Pop()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
	_, err = h.Peek()
	assert.ErrorIs(t, err, minheap.ErrEmptyHeap)
}

func TestDecreaseKey_MovesElementUp(t *testing.T) {
	h := minheap.New(intLess)
	h.Push(10)
	hd := h.Push(50)
	h.Push(20)

	require.NoError(t, h.DecreaseKey(hd, 5))
	assert.True(t, h.ValidateInvariant())

	got, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestDecreaseKey_RejectsLargerKey(t *testing.T) {
	h := minheap.New(intLess)
	hd := h.Push(10)

	assert.ErrorIs(t, h.DecreaseKey(hd, 10), minheap.ErrKeyNotSmaller)
	assert.ErrorIs(t, h.DecreaseKey(hd, 99), minheap.ErrKeyNotSmaller)

	// Element untouched by the rejected calls.
	got, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestHandle_StaleAfterPop(t *testing.T) {
	h := minheap.New(intLess)
	hd := h.Push(1)
	h.Push(2)

	_, err := h.Pop() // removes 1
	require.NoError(t, err)

	assert.False(t, h.Contains(hd))
	assert.ErrorIs(t, h.DecreaseKey(hd, 0), minheap.ErrStaleHandle)
}

func TestHandle_SurvivesSlotReuse(t *testing.T) {
	h := minheap.New(intLess)
	stale := h.Push(1)
	_, err := h.Pop()
	require.NoError(t, err)

	// The freed slot is reused; the old handle must stay stale and the new
	// one must stay valid.
	fresh := h.Push(2)
	assert.False(t, h.Contains(stale))
	assert.True(t, h.Contains(fresh))
	assert.ErrorIs(t, h.DecreaseKey(stale, 0), minheap.ErrStaleHandle)
	assert.NoError(t, h.DecreaseKey(fresh, 1))
}

func TestHandle_ValidAcrossReorganization(t *testing.T) {
	h := minheap.New(intLess)
	hd := h.Push(100)

	// Force the tracked element to move around the array repeatedly.
	for v := 0; v < 50; v++ {
		h.Push(v)
	}
	for i := 0; i < 25; i++ {
		_, err := h.Pop()
		require.NoError(t, err)
	}

	require.True(t, h.Contains(hd))
	require.NoError(t, h.DecreaseKey(hd, -1))

	got, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

// TestRandomized_HeapProperty drives a random mix of push / decrease-key /
// pop and checks that every pop returns the global minimum and that Len
// matches the live handle count.
func TestRandomized_HeapProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := minheap.New(intLess)

	type live struct {
		hd  minheap.Handle
		key int
	}
	var elems []live

	for step := 0; step < 2000; step++ {
		switch op := r.Intn(3); {
		case op == 0 || h.Empty():
			key := r.Intn(10000)
			elems = append(elems, live{hd: h.Push(key), key: key})
		case op == 1 && len(elems) > 0:
			i := r.Intn(len(elems))
			newKey := elems[i].key - 1 - r.Intn(100)
			if err := h.DecreaseKey(elems[i].hd, newKey); err == nil {
				elems[i].key = newKey
			}
		default:
			got, err := h.Pop()
			require.NoError(t, err)

			sort.Slice(elems, func(i, j int) bool { return elems[i].key < elems[j].key })
			assert.Equal(t, elems[0].key, got)
			elems = elems[1:]
		}

		require.Equal(t, len(elems), h.Len())
		require.True(t, h.ValidateInvariant())
	}
}

func BenchmarkPushPop(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	h := minheap.New(intLess)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(r.Intn(1 << 20))
		if i%2 == 1 {
			_, _ = h.Pop()
		}
	}
}
