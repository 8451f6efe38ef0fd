package voxels

import (
	"fmt"

	"github.com/janelia-flyem/objgraph/dvid"
)

// Extent is the size of a volume in voxels along x, y, and z.
type Extent struct {
	X, Y, Z int
}

// NewExtent returns an Extent after checking every dimension is positive.
func NewExtent(x, y, z int) (Extent, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return Extent{}, fmt.Errorf("bad extent %d x %d x %d: all dimensions must be positive", x, y, z)
	}
	return Extent{x, y, z}, nil
}

// ExtentFromSize converts a box size to an Extent.
func ExtentFromSize(size dvid.Point3d) Extent {
	return Extent{int(size[0]), int(size[1]), int(size[2])}
}

// AreaXY is the number of voxels in one z-slice.
func (e Extent) AreaXY() int {
	return e.X * e.Y
}

// NumVoxels is the total number of voxels.
func (e Extent) NumVoxels() int {
	return e.X * e.Y * e.Z
}

// Is3D returns true if there is more than one z-slice.
func (e Extent) Is3D() bool {
	return e.Z > 1
}

// OffsetSlice returns the index of (x, y) within a z-slice.
func (e Extent) OffsetSlice(x, y int) int {
	return y*e.X + x
}

// Offset returns the linear raster index of (x, y, z).
func (e Extent) Offset(x, y, z int) int {
	return z*e.X*e.Y + y*e.X + x
}

// Point returns the (x, y, z) position of a linear raster index.
func (e Extent) Point(offset int) (x, y, z int) {
	area := e.AreaXY()
	z = offset / area
	rem := offset % area
	return rem % e.X, rem / e.X, z
}

// Contains returns true if (x, y, z) is inside the volume.
func (e Extent) Contains(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < e.X && y < e.Y && z < e.Z
}

// ContainsXY is like Contains but ignores z.
func (e Extent) ContainsXY(x, y int) bool {
	return x >= 0 && y >= 0 && x < e.X && y < e.Y
}

// Box returns the extent as an inclusive box anchored at the origin.
func (e Extent) Box() dvid.Extents3d {
	return dvid.Extents3d{
		MaxPoint: dvid.Point3d{int32(e.X - 1), int32(e.Y - 1), int32(e.Z - 1)},
	}
}

func (e Extent) String() string {
	return fmt.Sprintf("%d x %d x %d", e.X, e.Y, e.Z)
}
