/*
Package neighborhood enumerates the relative offsets that count as adjacent to a
voxel.  The same abstraction drives label merging, outline detection, touching-face
counts, and dilation.
*/
package neighborhood

import "fmt"

// Kind selects which offsets are adjacent.
type Kind int

const (
	// Small is face adjacency: 4-connected in 2d, 6-connected in 3d.
	Small Kind = iota

	// Big adds edge and corner diagonals: 8-connected in 2d, 26-connected in 3d.
	Big
)

func (k Kind) String() string {
	switch k {
	case Small:
		return "small"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts "small" or "big" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "small":
		return Small, nil
	case "big":
		return Big, nil
	default:
		return Small, fmt.Errorf("unknown neighborhood %q, expected \"small\" or \"big\"", s)
	}
}

// FromConnectivity maps a connectivity count (4, 8, 6, or 26) to a Kind and whether
// the z dimension is used.
func FromConnectivity(n int) (kind Kind, is3D bool, err error) {
	switch n {
	case 4:
		return Small, false, nil
	case 8:
		return Big, false, nil
	case 6:
		return Small, true, nil
	case 26:
		return Big, true, nil
	default:
		return Small, false, fmt.Errorf("connectivity %d is not one of 4, 8, 6, 26", n)
	}
}

// Connectivity is the inverse of FromConnectivity.
func Connectivity(kind Kind, is3D bool) int {
	switch {
	case kind == Small && !is3D:
		return 4
	case kind == Big && !is3D:
		return 8
	case kind == Small:
		return 6
	default:
		return 26
	}
}

// Visitor receives offsets plane by plane.  ZChange is called once per plane before
// any Process calls for that plane; returning false skips the plane.  Process
// returning false stops the walk.
type Visitor interface {
	ZChange(dz int) bool
	Process(dx, dy int) bool
}

// VisitorFuncs adapts a pair of functions to Visitor.  A nil ZChangeFn accepts every
// plane.
type VisitorFuncs struct {
	ZChangeFn func(dz int) bool
	ProcessFn func(dx, dy int) bool
}

func (f VisitorFuncs) ZChange(dz int) bool {
	if f.ZChangeFn == nil {
		return true
	}
	return f.ZChangeFn(dz)
}

func (f VisitorFuncs) Process(dx, dy int) bool {
	return f.ProcessFn(dx, dy)
}

// Offset is a relative position.
type Offset struct {
	DX, DY, DZ int
}

// Causal returns true if the offset precedes the origin in z-major raster order.
func (o Offset) Causal() bool {
	if o.DZ != 0 {
		return o.DZ < 0
	}
	if o.DY != 0 {
		return o.DY < 0
	}
	return o.DX < 0
}

// Neighborhood is a kind of adjacency plus whether the center point is included.
type Neighborhood struct {
	kind   Kind
	center bool
}

// New returns a neighborhood.
func New(kind Kind, includeCenter bool) Neighborhood {
	return Neighborhood{kind: kind, center: includeCenter}
}

// Kind returns the adjacency kind.
func (n Neighborhood) Kind() Kind {
	return n.kind
}

// IncludesCenter returns true if the (0,0,0) offset is visited.
func (n Neighborhood) IncludesCenter() bool {
	return n.center
}

func (n Neighborhood) planeOffsets(dz int, fn func(dx, dy int) bool) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				if dz == 0 && !n.center {
					continue
				}
			} else if dz != 0 && n.kind == Small {
				continue
			} else if n.kind == Small && dx != 0 && dy != 0 {
				continue
			}
			if !fn(dx, dy) {
				return false
			}
		}
	}
	return true
}

// Visit walks the offsets plane by plane in ascending dz, and within a plane in
// raster order.  If is3D is false only the dz = 0 plane is visited.  Returns false
// if the visitor stopped the walk.
func (n Neighborhood) Visit(is3D bool, v Visitor) bool {
	dzMin, dzMax := 0, 0
	if is3D {
		dzMin, dzMax = -1, 1
	}
	for dz := dzMin; dz <= dzMax; dz++ {
		if !v.ZChange(dz) {
			continue
		}
		if !n.planeOffsets(dz, v.Process) {
			return false
		}
	}
	return true
}

// Offsets returns every offset visited, in Visit order.
func (n Neighborhood) Offsets(is3D bool) []Offset {
	var offsets []Offset
	var curZ int
	n.Visit(is3D, VisitorFuncs{
		ZChangeFn: func(dz int) bool {
			curZ = dz
			return true
		},
		ProcessFn: func(dx, dy int) bool {
			offsets = append(offsets, Offset{dx, dy, curZ})
			return true
		},
	})
	return offsets
}

// Causal returns the offsets that precede the origin in raster order, i.e., those
// already visited by a z-major, then y, then x ascending scan.
func (n Neighborhood) Causal(is3D bool) []Offset {
	var causal []Offset
	for _, o := range n.Offsets(is3D) {
		if o.Causal() {
			causal = append(causal, o)
		}
	}
	return causal
}
