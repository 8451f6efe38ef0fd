package voxels

// Word is the set of unsigned storage widths a Grid can hold.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Buffer is the narrow read/write adapter that lets binary and label code work on
// grids of any storage width.  Values are addressed by z-slice and the (x, y) offset
// within that slice.
type Buffer interface {
	Extent() Extent
	Value(z, i int) uint64
	Put(z, i int, v uint64)
}

// Grid is a 3d array of voxels stored as one contiguous slice per z-plane.
type Grid[T Word] struct {
	extent Extent
	slices [][]T
}

// NewGrid allocates a zeroed grid.
func NewGrid[T Word](extent Extent) *Grid[T] {
	g := &Grid[T]{
		extent: extent,
		slices: make([][]T, extent.Z),
	}
	area := extent.AreaXY()
	for z := range g.slices {
		g.slices[z] = make([]T, area)
	}
	return g
}

// NewGridFromData wraps raster-ordered data without copying.  The data length must
// equal the number of voxels in the extent.
func NewGridFromData[T Word](extent Extent, data []T) (*Grid[T], bool) {
	if len(data) != extent.NumVoxels() {
		return nil, false
	}
	g := &Grid[T]{
		extent: extent,
		slices: make([][]T, extent.Z),
	}
	area := extent.AreaXY()
	for z := range g.slices {
		g.slices[z] = data[z*area : (z+1)*area : (z+1)*area]
	}
	return g, true
}

// Extent returns the size of the grid.
func (g *Grid[T]) Extent() Extent {
	return g.extent
}

// Slice returns the backing array for z-plane z.
func (g *Grid[T]) Slice(z int) []T {
	return g.slices[z]
}

// At returns the voxel at (x, y, z).
func (g *Grid[T]) At(x, y, z int) T {
	return g.slices[z][y*g.extent.X+x]
}

// SetAt sets the voxel at (x, y, z).
func (g *Grid[T]) SetAt(x, y, z int, v T) {
	g.slices[z][y*g.extent.X+x] = v
}

// Value implements Buffer.
func (g *Grid[T]) Value(z, i int) uint64 {
	return uint64(g.slices[z][i])
}

// Put implements Buffer.  Values wider than T are truncated.
func (g *Grid[T]) Put(z, i int, v uint64) {
	g.slices[z][i] = T(v)
}
