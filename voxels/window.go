package voxels

// SliceWindow gives bounded access to the z-slices of a grid around a current
// z-plane.  Only the slices from z-before to z+after are resident in the window; the
// ring is indexed by z modulo the window size so advancing one plane replaces the
// oldest entry in place.
type SliceWindow[T Word] struct {
	grid   *Grid[T]
	ring   [][]T
	before int
	after  int
	z      int
}

// NewSliceWindow returns a window over grid positioned at z = 0.
func NewSliceWindow[T Word](grid *Grid[T], before, after int) *SliceWindow[T] {
	w := &SliceWindow[T]{
		grid:   grid,
		ring:   make([][]T, before+after+1),
		before: before,
		after:  after,
	}
	w.load(0)
	return w
}

func (w *SliceWindow[T]) slot(z int) int {
	return z % len(w.ring)
}

func (w *SliceWindow[T]) load(z int) {
	w.z = z
	for i := range w.ring {
		w.ring[i] = nil
	}
	for zz := z - w.before; zz <= z+w.after; zz++ {
		if zz >= 0 && zz < w.grid.extent.Z {
			w.ring[w.slot(zz)] = w.grid.slices[zz]
		}
	}
}

// Z returns the current z-plane.
func (w *SliceWindow[T]) Z() int {
	return w.z
}

// Size returns the number of slice slots held by the window.
func (w *SliceWindow[T]) Size() int {
	return len(w.ring)
}

// Shift advances the window one plane, releasing the oldest slice and bringing in
// the next one ahead.
func (w *SliceWindow[T]) Shift() {
	oldest := w.z - w.before
	if oldest >= 0 {
		w.ring[w.slot(oldest)] = nil
	}
	w.z++
	incoming := w.z + w.after
	if incoming < w.grid.extent.Z {
		w.ring[w.slot(incoming)] = w.grid.slices[incoming]
	}
}

// Slice returns the plane at the current z plus dz, or nil if that plane is outside
// the window or the volume.
func (w *SliceWindow[T]) Slice(dz int) []T {
	if dz < -w.before || dz > w.after {
		return nil
	}
	z := w.z + dz
	if z < 0 || z >= w.grid.extent.Z {
		return nil
	}
	return w.ring[w.slot(z)]
}
