package impvec

// Growth decides the capacity of each new chunk a SplitVec allocates.
// A strategy only ever adds chunks; it never resizes an existing one,
// which is what keeps element addresses stable while the vector grows.
type Growth interface {
	// ChunkCapacity returns the capacity of the chunk about to be
	// allocated, given the number of chunks already allocated and the
	// total capacity they provide. The result must be at least 1.
	ChunkCapacity(chunkCount, totalCapacity int) int
}

// Doubling doubles the capacity with every new chunk: 4, 8, 16, ...
// This is the default strategy; it reaches large capacities in few chunks
// while wasting at most half of the allocated space.
type Doubling struct{}

// ChunkCapacity implements Growth.
func (Doubling) ChunkCapacity(chunkCount, totalCapacity int) int {
	return firstChunkCapacity << chunkCount
}

// Linear allocates constant-size chunks of 2^Exponent elements each.
// Total capacity grows linearly with the number of chunks, which keeps
// the worst-case wasted space bounded by a single chunk.
type Linear struct {
	// Exponent is the base-2 exponent of the chunk capacity.
	// An exponent of 5 yields chunks of 32 elements.
	Exponent uint
}

// ChunkCapacity implements Growth.
func (l Linear) ChunkCapacity(chunkCount, totalCapacity int) int {
	c := 1 << l.Exponent
	if c < 1 {
		c = 1
	}
	return c
}

// GrowthFunc adapts a plain function to the Growth interface, for custom
// growth curves.
type GrowthFunc func(chunkCount, totalCapacity int) int

// ChunkCapacity implements Growth.
func (f GrowthFunc) ChunkCapacity(chunkCount, totalCapacity int) int {
	return f(chunkCount, totalCapacity)
}

// firstChunkCapacity is the capacity of the first chunk under Doubling.
const firstChunkCapacity = 4
