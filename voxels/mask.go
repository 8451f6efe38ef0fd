package voxels

import (
	"fmt"

	"github.com/janelia-flyem/objgraph/dvid"
)

// ObjectMask is a binary mask restricted to a bounding box positioned in a larger
// scene.  Voxel queries use scene (global) coordinates.
type ObjectMask struct {
	box dvid.Extents3d
	vol *BinaryVolume
}

// NewObjectMask allocates an empty 8-bit mask covering box.
func NewObjectMask(box dvid.Extents3d) (*ObjectMask, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("cannot make object mask with invalid box %s", box)
	}
	return &ObjectMask{
		box: box,
		vol: NewBinaryVolume8(ExtentFromSize(box.Size())),
	}, nil
}

// NewObjectMaskFromVolume wraps an existing binary volume whose extent must match
// the box size.
func NewObjectMaskFromVolume(box dvid.Extents3d, vol *BinaryVolume) (*ObjectMask, error) {
	if vol == nil {
		return nil, fmt.Errorf("cannot make object mask from nil volume")
	}
	if ExtentFromSize(box.Size()) != vol.Extent() {
		return nil, fmt.Errorf("box %s does not match volume extent %s", box, vol.Extent())
	}
	return &ObjectMask{box: box, vol: vol}, nil
}

// Box returns the bounding box in scene coordinates.
func (m *ObjectMask) Box() dvid.Extents3d {
	return m.box
}

// Volume returns the sub-mask, indexed relative to the box minimum corner.
func (m *ObjectMask) Volume() *BinaryVolume {
	return m.vol
}

func (m *ObjectMask) local(pt dvid.Point3d) (x, y, z int) {
	rel := pt.Sub(m.box.MinPoint)
	return int(rel[0]), int(rel[1]), int(rel[2])
}

// Contains returns true if the scene point is inside the box and set in the mask.
func (m *ObjectMask) Contains(pt dvid.Point3d) bool {
	if !m.box.Contains(pt) {
		return false
	}
	x, y, z := m.local(pt)
	return m.vol.IsOn(x, y, z)
}

// Set turns on the scene point, which must lie inside the box.
func (m *ObjectMask) Set(pt dvid.Point3d) {
	x, y, z := m.local(pt)
	m.vol.SetOn(x, y, z)
}

// NumVoxels returns the number of on voxels.
func (m *ObjectMask) NumVoxels() int {
	return m.vol.CountOn()
}

// ForEach calls fn with the scene coordinate of every on voxel in raster order.
func (m *ObjectMask) ForEach(fn func(pt dvid.Point3d)) {
	ext := m.vol.Extent()
	for z := 0; z < ext.Z; z++ {
		for y := 0; y < ext.Y; y++ {
			i := y * ext.X
			for x := 0; x < ext.X; x++ {
				if m.vol.IsOnAt(z, i+x) {
					fn(m.box.MinPoint.Add(dvid.Point3d{int32(x), int32(y), int32(z)}))
				}
			}
		}
	}
}

// IntersectionCount returns the number of scene voxels on in both masks.  If
// stopAtFirst is true, counting stops at the first shared voxel.
func (m *ObjectMask) IntersectionCount(m2 *ObjectMask, stopAtFirst bool) int {
	shared, ok := m.box.Intersect(m2.box)
	if !ok {
		return 0
	}
	var n int
	var pt dvid.Point3d
	for pt[2] = shared.MinPoint[2]; pt[2] <= shared.MaxPoint[2]; pt[2]++ {
		for pt[1] = shared.MinPoint[1]; pt[1] <= shared.MaxPoint[1]; pt[1]++ {
			for pt[0] = shared.MinPoint[0]; pt[0] <= shared.MaxPoint[0]; pt[0]++ {
				if m.Contains(pt) && m2.Contains(pt) {
					n++
					if stopAtFirst {
						return n
					}
				}
			}
		}
	}
	return n
}

// Intersects returns true if the masks share at least one on voxel.
func (m *ObjectMask) Intersects(m2 *ObjectMask) bool {
	return m.IntersectionCount(m2, true) > 0
}

func (m *ObjectMask) String() string {
	return fmt.Sprintf("object mask %s", m.box)
}
