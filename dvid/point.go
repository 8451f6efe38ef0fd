package dvid

import "fmt"

// Point3d is an ordered list of three 32-bit signed integers (x, y, z).
type Point3d [3]int32

// Add returns the element-wise sum of two points.
func (p Point3d) Add(p2 Point3d) Point3d {
	return Point3d{p[0] + p2[0], p[1] + p2[1], p[2] + p2[2]}
}

// Sub returns the element-wise difference p - p2.
func (p Point3d) Sub(p2 Point3d) Point3d {
	return Point3d{p[0] - p2[0], p[1] - p2[1], p[2] - p2[2]}
}

// AddScalar adds a value to every element.
func (p Point3d) AddScalar(value int32) Point3d {
	return Point3d{p[0] + value, p[1] + value, p[2] + value}
}

// Prod returns the product of the point elements.
func (p Point3d) Prod() int64 {
	return int64(p[0]) * int64(p[1]) * int64(p[2])
}

// SetMinimum sets the point to the minimum elements of current and passed points.
func (p *Point3d) SetMinimum(p2 Point3d) {
	if p[0] > p2[0] {
		p[0] = p2[0]
	}
	if p[1] > p2[1] {
		p[1] = p2[1]
	}
	if p[2] > p2[2] {
		p[2] = p2[2]
	}
}

// SetMaximum sets the point to the maximum elements of current and passed points.
func (p *Point3d) SetMaximum(p2 Point3d) {
	if p[0] < p2[0] {
		p[0] = p2[0]
	}
	if p[1] < p2[1] {
		p[1] = p2[1]
	}
	if p[2] < p2[2] {
		p[2] = p2[2]
	}
}

func (p Point3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// Extents3d is an axis-aligned box with inclusive minimum and maximum corners.
type Extents3d struct {
	MinPoint Point3d
	MaxPoint Point3d
}

// Size returns the number of voxels along each dimension.
func (ext Extents3d) Size() Point3d {
	return ext.MaxPoint.Sub(ext.MinPoint).AddScalar(1)
}

// NumVoxels returns the number of voxels within the box.
func (ext Extents3d) NumVoxels() int64 {
	return ext.Size().Prod()
}

// Valid returns true if the minimum corner does not exceed the maximum corner.
func (ext Extents3d) Valid() bool {
	return ext.MinPoint[0] <= ext.MaxPoint[0] &&
		ext.MinPoint[1] <= ext.MaxPoint[1] &&
		ext.MinPoint[2] <= ext.MaxPoint[2]
}

// Contains returns true if the point falls within the box.
func (ext Extents3d) Contains(pt Point3d) bool {
	for i := 0; i < 3; i++ {
		if pt[i] < ext.MinPoint[i] || pt[i] > ext.MaxPoint[i] {
			return false
		}
	}
	return true
}

// ContainsExtents returns true if the passed box lies completely within this box.
func (ext Extents3d) ContainsExtents(ext2 Extents3d) bool {
	return ext.Contains(ext2.MinPoint) && ext.Contains(ext2.MaxPoint)
}

// Intersects returns true if the two boxes share at least one voxel.
func (ext Extents3d) Intersects(ext2 Extents3d) bool {
	for i := 0; i < 3; i++ {
		if ext2.MaxPoint[i] < ext.MinPoint[i] || ext.MaxPoint[i] < ext2.MinPoint[i] {
			return false
		}
	}
	return true
}

// Intersect returns the shared box and false if the boxes do not intersect.
func (ext Extents3d) Intersect(ext2 Extents3d) (Extents3d, bool) {
	if !ext.Intersects(ext2) {
		return Extents3d{}, false
	}
	out := ext
	out.MinPoint.SetMaximum(ext2.MinPoint)
	out.MaxPoint.SetMinimum(ext2.MaxPoint)
	return out, true
}

// Extend grows the box, if necessary, to include the point.
func (ext *Extents3d) Extend(pt Point3d) {
	ext.MinPoint.SetMinimum(pt)
	ext.MaxPoint.SetMaximum(pt)
}

// Grow returns the box expanded by the given number of voxels on each side.
func (ext Extents3d) Grow(by Point3d) Extents3d {
	return Extents3d{
		MinPoint: ext.MinPoint.Sub(by),
		MaxPoint: ext.MaxPoint.Add(by),
	}
}

func (ext Extents3d) String() string {
	return fmt.Sprintf("%s-%s", ext.MinPoint, ext.MaxPoint)
}
