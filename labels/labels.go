package labels

import (
	"fmt"
	"math"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"

	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/unionfind"
	"github.com/janelia-flyem/objgraph/voxels"
)

// BoundingBoxWithCount accumulates the inclusive box and number of voxels of one
// final label.
type BoundingBoxWithCount struct {
	Box   dvid.Extents3d
	Count int
}

func newBoundingBoxWithCount(pt dvid.Point3d) BoundingBoxWithCount {
	return BoundingBoxWithCount{Box: dvid.Extents3d{MinPoint: pt, MaxPoint: pt}}
}

func (bb *BoundingBoxWithCount) add(pt dvid.Point3d) {
	bb.Box.Extend(pt)
	bb.Count++
}

// Labeler finds connected components.
type Labeler struct {
	// Connectivity is 4 or 8 for single-slice volumes and 6 or 26 for volumes with
	// more than one slice.
	Connectivity int

	// MinVoxels is the smallest component kept on extraction.
	MinVoxels int
}

// Labeling is a final label buffer where 0 is background and components are
// numbered 1 through len(Boxes).  Boxes[i] describes label i+1.
type Labeling struct {
	Labels *voxels.Grid[uint32]
	Boxes  []BoundingBoxWithCount
}

// NumLabels returns the number of components.
func (lb *Labeling) NumLabels() int {
	return len(lb.Boxes)
}

func (l *Labeler) check(vol *voxels.BinaryVolume) (neighborhood.Kind, bool, error) {
	if vol == nil {
		return neighborhood.Small, false, ErrNilVolume
	}
	if l.MinVoxels < 0 {
		return neighborhood.Small, false, fmt.Errorf("%w: negative minimum voxel count %d", ErrBadConfig, l.MinVoxels)
	}
	kind, is3D, err := neighborhood.FromConnectivity(l.Connectivity)
	if err != nil {
		return kind, is3D, fmt.Errorf("%w: %v", ErrBadConnectivity, err)
	}
	ext := vol.Extent()
	if ext.NumVoxels() <= 0 {
		return kind, is3D, fmt.Errorf("%w: empty volume extent %s", ErrBadConfig, ext)
	}
	if is3D && !ext.Is3D() {
		return kind, is3D, fmt.Errorf("%w: %d-connectivity needs more than one slice, volume is %s",
			ErrBadConnectivity, l.Connectivity, ext)
	}
	if !is3D && ext.Is3D() {
		return kind, is3D, fmt.Errorf("%w: %d-connectivity is 2d but volume is %s",
			ErrBadConnectivity, l.Connectivity, ext)
	}
	return kind, is3D, nil
}

// causalVisitor collects the distinct labels of already-visited neighbors of one
// voxel.  Planes are swapped in from the slice window as the neighborhood reports
// z changes.
type causalVisitor struct {
	win   *voxels.SliceWindow[uint32]
	ext   voxels.Extent
	x, y  int
	dz    int
	plane []uint32
	found [13]uint32
	n     int
}

func (v *causalVisitor) reset(x, y int) {
	v.x, v.y = x, y
	v.n = 0
}

func (v *causalVisitor) ZChange(dz int) bool {
	if dz > 0 {
		return false
	}
	v.plane = v.win.Slice(dz)
	v.dz = dz
	return v.plane != nil
}

func (v *causalVisitor) Process(dx, dy int) bool {
	// Offsets in the current plane arrive in raster order, so the first one not
	// before the voxel ends the causal set.
	if v.dz == 0 && !(neighborhood.Offset{DX: dx, DY: dy}).Causal() {
		return false
	}
	nx, ny := v.x+dx, v.y+dy
	if !v.ext.ContainsXY(nx, ny) {
		return true
	}
	label := v.plane[ny*v.ext.X+nx]
	if label == 0 {
		return true
	}
	for i := 0; i < v.n; i++ {
		if v.found[i] == label {
			return true
		}
	}
	v.found[v.n] = label
	v.n++
	return true
}

// afterProvisional, if set, sees the provisional label buffer between the passes.
var afterProvisional func(*voxels.Grid[uint32])

// label runs both passes and returns the final buffer and unfiltered boxes.
func (l *Labeler) label(vol *voxels.BinaryVolume) (lb *Labeling, err error) {
	kind, is3D, err := l.check(vol)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			lb = nil
			err = fmt.Errorf("%w: %v", ErrOperationFailed, r)
		}
	}()

	timedLog := dvid.NewTimeLog()
	ext := vol.Extent()
	labels := voxels.NewGrid[uint32](ext)
	ds := unionfind.New(ext.AreaXY())

	before := 0
	if is3D {
		before = 1
	}
	win := voxels.NewSliceWindow(labels, before, 0)
	nb := neighborhood.New(kind, false)
	visitor := &causalVisitor{win: win, ext: ext}

	// Pass 1: provisional labels.
	var next uint32
	for z := 0; z < ext.Z; z++ {
		if z > 0 {
			win.Shift()
		}
		cur := win.Slice(0)
		for y := 0; y < ext.Y; y++ {
			for x := 0; x < ext.X; x++ {
				i := y*ext.X + x
				if !vol.IsOnAt(z, i) {
					continue
				}
				visitor.reset(x, y)
				nb.Visit(is3D, visitor)
				switch visitor.n {
				case 0:
					if next == math.MaxUint32 {
						return nil, fmt.Errorf("%w: ran out of provisional labels", ErrOperationFailed)
					}
					next++
					ds.AddElement(next)
					cur[i] = next
				case 1:
					cur[i] = visitor.found[0]
				default:
					found := visitor.found[:visitor.n]
					minLabel := found[0]
					for a := 0; a < len(found); a++ {
						if found[a] < minLabel {
							minLabel = found[a]
						}
						for b := a + 1; b < len(found); b++ {
							ds.Union(found[a], found[b])
						}
					}
					cur[i] = minLabel
				}
			}
		}
	}
	timedLog.Debugf("Labeling pass 1 over %s volume: %s provisional labels", ext, humanize.Comma(int64(next)))

	if afterProvisional != nil {
		afterProvisional(labels)
	}

	// Pass 2: resolve roots and renumber contiguously.
	idOf := make([]uint32, next+1)
	var boxes []BoundingBoxWithCount
	for z := 0; z < ext.Z; z++ {
		plane := labels.Slice(z)
		for y := 0; y < ext.Y; y++ {
			for x := 0; x < ext.X; x++ {
				i := y*ext.X + x
				if plane[i] == 0 {
					continue
				}
				if plane[i] > next {
					return nil, fmt.Errorf("%w: label %d at (%d,%d,%d) was never issued", ErrOperationFailed, plane[i], x, y, z)
				}
				root := ds.Find(plane[i])
				id := idOf[root]
				pt := dvid.Point3d{int32(x), int32(y), int32(z)}
				if id == 0 {
					boxes = append(boxes, newBoundingBoxWithCount(pt))
					id = uint32(len(boxes))
					idOf[root] = id
				}
				plane[i] = id
				boxes[id-1].add(pt)
			}
		}
	}
	if dvid.LogMode() <= dvid.DebugMode {
		dvid.Debugf("Label buffer for %s volume holds %s\n", ext, humanize.Bytes(uint64(size.Of(labels.Slice(0))*ext.Z)))
	}
	timedLog.Debugf("Labeling pass 2: %s components", humanize.Comma(int64(len(boxes))))
	return &Labeling{Labels: labels, Boxes: boxes}, nil
}

// LabelBuffer labels vol and returns the final label buffer.  Components smaller
// than MinVoxels are cleared to background and the remaining labels renumbered so
// they stay contiguous.
func (l *Labeler) LabelBuffer(vol *voxels.BinaryVolume) (*Labeling, error) {
	lb, err := l.label(vol)
	if err != nil {
		return nil, err
	}
	remap := make([]uint32, len(lb.Boxes)+1)
	var kept []BoundingBoxWithCount
	for i, bb := range lb.Boxes {
		if bb.Count < l.MinVoxels {
			continue
		}
		kept = append(kept, bb)
		remap[i+1] = uint32(len(kept))
	}
	if len(kept) == len(lb.Boxes) {
		return lb, nil
	}
	ext := lb.Labels.Extent()
	for z := 0; z < ext.Z; z++ {
		plane := lb.Labels.Slice(z)
		for i, label := range plane {
			plane[i] = remap[label]
		}
	}
	dvid.Debugf("Dropped %d of %d components below %d voxels\n", len(lb.Boxes)-len(kept), len(lb.Boxes), l.MinVoxels)
	lb.Boxes = kept
	return lb, nil
}

// Label returns the connected components of vol with at least MinVoxels voxels,
// ordered by final label.
func (l *Labeler) Label(vol *voxels.BinaryVolume) ([]*voxels.ObjectMask, error) {
	lb, err := l.label(vol)
	if err != nil {
		return nil, err
	}
	timedLog := dvid.NewTimeLog()
	var objects []*voxels.ObjectMask
	for i, bb := range lb.Boxes {
		if bb.Count < l.MinVoxels {
			continue
		}
		obj, err := extract(lb.Labels, uint32(i+1), bb)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	timedLog.Debugf("Extracted %d of %d components with >= %d voxels", len(objects), len(lb.Boxes), l.MinVoxels)
	return objects, nil
}

// extract builds the mask of one label by testing buffer equality within its box.
func extract(labels *voxels.Grid[uint32], id uint32, bb BoundingBoxWithCount) (*voxels.ObjectMask, error) {
	obj, err := voxels.NewObjectMask(bb.Box)
	if err != nil {
		return nil, fmt.Errorf("%w: label %d: %v", ErrOperationFailed, id, err)
	}
	lo, hi := bb.Box.MinPoint, bb.Box.MaxPoint
	mask := obj.Volume()
	var n int
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				if labels.At(int(x), int(y), int(z)) == id {
					mask.SetOn(int(x-lo[0]), int(y-lo[1]), int(z-lo[2]))
					n++
				}
			}
		}
	}
	if n != bb.Count {
		return nil, fmt.Errorf("%w: label %d has %d voxels in its box, expected %d", ErrOperationFailed, id, n, bb.Count)
	}
	return obj, nil
}
