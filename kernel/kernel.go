/*
Package kernel counts, for a foreground voxel, the neighbors that fail a supplied
predicate.  One kernel parameterized by neighborhood, boundary policy, and predicate
serves outline detection, erosion, and touching-face counts between objects.
*/
package kernel

import (
	"fmt"

	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/voxels"
)

// BoundaryPolicy decides how neighbors outside the volume are handled.
type BoundaryPolicy int

const (
	// OutsideOff treats voxels outside the volume as off, so they always fail the
	// predicate and are counted.
	OutsideOff BoundaryPolicy = iota

	// OutsideIgnore skips voxels outside the volume.
	OutsideIgnore
)

func (p BoundaryPolicy) String() string {
	switch p {
	case OutsideOff:
		return "outside-off"
	case OutsideIgnore:
		return "outside-ignore"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Field is anything with an extent and an on/off test, e.g., a BinaryVolume.
type Field interface {
	Extent() voxels.Extent
	IsOn(x, y, z int) bool
}

// Predicate is evaluated on in-volume neighbors.  Neighbors for which it returns
// false are counted.
type Predicate func(x, y, z int) bool

// Kernel is a neighbor-predicate counter.
type Kernel struct {
	Neighborhood neighborhood.Neighborhood
	Use3D        bool
	Policy       BoundaryPolicy

	// StopAtFirst returns a count of 1 as soon as any neighbor is counted, for
	// callers that only need presence.
	StopAtFirst bool
}

// New returns a kernel without the center point.
func New(kind neighborhood.Kind, use3D bool, policy BoundaryPolicy) Kernel {
	return Kernel{
		Neighborhood: neighborhood.New(kind, false),
		Use3D:        use3D,
		Policy:       policy,
	}
}

type counter struct {
	k     Kernel
	ext   voxels.Extent
	pred  Predicate
	x, y  int
	z     int
	dz    int
	count int
}

func (c *counter) ZChange(dz int) bool {
	c.dz = dz
	nz := c.z + dz
	if nz < 0 || nz >= c.ext.Z {
		if c.k.Policy == OutsideIgnore {
			return false
		}
	}
	return true
}

func (c *counter) Process(dx, dy int) bool {
	nx, ny, nz := c.x+dx, c.y+dy, c.z+c.dz
	if !c.ext.Contains(nx, ny, nz) {
		if c.k.Policy == OutsideIgnore {
			return true
		}
		c.count++
	} else if !c.pred(nx, ny, nz) {
		c.count++
	}
	return !(c.k.StopAtFirst && c.count > 0)
}

// CountAt returns 0 if (x, y, z) is off in f, and otherwise the number of neighbors
// that fail pred.
func (k Kernel) CountAt(f Field, pred Predicate, x, y, z int) int {
	if !f.IsOn(x, y, z) {
		return 0
	}
	c := counter{k: k, ext: f.Extent(), pred: pred, x: x, y: y, z: z}
	k.Neighborhood.Visit(k.Use3D && f.Extent().Is3D(), &c)
	return c.count
}

// IsOnPredicate passes neighbors that are on in f.
func IsOnPredicate(f Field) Predicate {
	return f.IsOn
}
