package impvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitVecGrowthCurves(t *testing.T) {
	tests := []struct {
		name       string
		growth     Growth
		pushes     int
		wantChunks int
		wantCap    int
	}{
		{
			name:       "doubling 4+8+16",
			growth:     Doubling{},
			pushes:     13,
			wantChunks: 3,
			wantCap:    28,
		},
		{
			name:       "doubling exactly first chunk",
			growth:     Doubling{},
			pushes:     4,
			wantChunks: 1,
			wantCap:    4,
		},
		{
			name:       "linear 2^3 chunks",
			growth:     Linear{Exponent: 3},
			pushes:     20,
			wantChunks: 3,
			wantCap:    24,
		},
		{
			name:       "custom constant curve",
			growth:     GrowthFunc(func(chunkCount, totalCapacity int) int { return 5 }),
			pushes:     11,
			wantChunks: 3,
			wantCap:    15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplitVecWith[int](tt.growth)
			for i := 0; i < tt.pushes; i++ {
				s.Push(i)
			}
			assert.Equal(t, tt.pushes, s.Len())
			assert.Equal(t, tt.wantChunks, s.ChunkCount())
			assert.Equal(t, tt.wantCap, s.Capacity())
		})
	}
}

func TestSplitVecAddressStabilityAcrossGrowth(t *testing.T) {
	s := NewSplitVec[int]()

	const first = 10
	ptrs := make([]*int, 0, first)
	for i := 0; i < first; i++ {
		ptrs = append(ptrs, s.Push(i))
	}

	// Grow across many chunk boundaries.
	for i := first; i < 5000; i++ {
		s.Push(i)
	}

	for i, p := range ptrs {
		require.Same(t, p, s.At(i))
		assert.Equal(t, i, *p)
	}
}

func TestSplitVecGetAndAt(t *testing.T) {
	s := NewSplitVec[string]()
	s.ExtendFromSlice([]string{"a", "b", "c"})

	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = s.Get(3)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, "c", *s.At(2))
	assert.PanicsWithValue(t, msgOutOfRange, func() { s.At(3) })
}

func TestSplitVecExtendFromSliceSpansChunks(t *testing.T) {
	s := NewSplitVecWith[int](Linear{Exponent: 2}) // chunks of 4

	vals := make([]int, 11)
	for i := range vals {
		vals[i] = i * i
	}
	s.ExtendFromSlice(vals)

	assert.Equal(t, 11, s.Len())
	assert.Equal(t, 3, s.ChunkCount())
	assert.Equal(t, vals, s.ToSlice())
}

func TestSplitVecInsertRemoveAcrossChunks(t *testing.T) {
	s := NewSplitVecWith[int](Linear{Exponent: 2}) // chunks of 4
	for i := 0; i < 10; i++ {
		s.Push(i)
	}

	s.Insert(2, 100)
	assert.Equal(t, []int{0, 1, 100, 2, 3, 4, 5, 6, 7, 8, 9}, s.ToSlice())

	s.Insert(11, 200) // insert at tail is legal
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 200, *s.At(11))

	got := s.Remove(2)
	assert.Equal(t, 100, got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 200}, s.ToSlice())

	assert.PanicsWithValue(t, msgOutOfRange, func() { s.Insert(-1, 0) })
	assert.PanicsWithValue(t, msgOutOfRange, func() { s.Insert(s.Len()+1, 0) })
	assert.PanicsWithValue(t, msgOutOfRange, func() { s.Remove(s.Len()) })
}

func TestSplitVecPopTruncateClear(t *testing.T) {
	s := NewSplitVecWith[int](Linear{Exponent: 1}) // chunks of 2
	for i := 0; i < 7; i++ {
		s.Push(i)
	}

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 6, v)
	assert.Equal(t, 6, s.Len())

	// Popping across a chunk boundary drops the emptied chunk.
	chunksBefore := s.ChunkCount()
	s.Pop()
	s.Pop()
	assert.Less(t, s.ChunkCount(), chunksBefore)

	s.Truncate(2)
	assert.Equal(t, []int{0, 1}, s.ToSlice())

	s.Truncate(10) // beyond length: no-op
	assert.Equal(t, 2, s.Len())
	assert.PanicsWithValue(t, msgOutOfRange, func() { s.Truncate(-1) })

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.ChunkCount())

	_, ok = s.Pop()
	assert.False(t, ok)

	// The store is reusable after Clear.
	s.Push(42)
	assert.Equal(t, 42, *s.At(0))
}

func TestSplitVecAppendAdoptsChunks(t *testing.T) {
	a := NewSplitVec[int]()
	a.ExtendFromSlice([]int{0, 1, 2})

	b := NewSplitVec[int]()
	b.ExtendFromSlice([]int{3, 4, 5, 6})
	pInB := b.At(1)

	a.Append(b)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, a.ToSlice())
	assert.Equal(t, 0, b.Len())

	// Adoption moved chunk headers, not elements: the pointer obtained
	// from b now points into a.
	require.Same(t, pInB, a.At(4))
	idx, ok := a.IndexOf(pInB)
	require.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestSplitVecIndexOf(t *testing.T) {
	s := NewSplitVecWith[int](Linear{Exponent: 1}) // chunks of 2
	for i := 0; i < 5; i++ {
		s.Push(i)
	}

	for i := 0; i < 5; i++ {
		idx, ok := s.IndexOf(s.At(i))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	foreign := new(int)
	_, ok := s.IndexOf(foreign)
	assert.False(t, ok)

	_, ok = s.IndexOf(nil)
	assert.False(t, ok)

	other := NewSplitVec[int]()
	other.Push(0)
	_, ok = s.IndexOf(other.At(0))
	assert.False(t, ok)
}
