// Package morph grows object masks by morphological dilation.
package morph

import (
	"errors"
	"fmt"

	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/voxels"
)

// ErrDilation is wrapped by every error returned from Dilate.
var ErrDilation = errors.New("dilation failed")

// Dilate grows mask by iterations voxels using the given neighborhood kind.  The
// returned mask's box is the original box grown by iterations along x and y, and
// along z if use3D is set and the scene has more than one slice, then clipped to the
// scene.
func Dilate(mask *voxels.ObjectMask, scene voxels.Extent, use3D bool, iterations int, kind neighborhood.Kind) (*voxels.ObjectMask, error) {
	if mask == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrDilation)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrDilation, iterations)
	}
	sceneBox := scene.Box()
	if !sceneBox.ContainsExtents(mask.Box()) {
		return nil, fmt.Errorf("%w: mask box %s lies outside scene %s", ErrDilation, mask.Box(), scene)
	}
	is3D := use3D && scene.Is3D()
	grow := dvid.Point3d{1, 1, 0}
	if is3D {
		grow[2] = 1
	}
	offsets := neighborhood.New(kind, true).Offsets(is3D)

	cur := mask
	for i := 0; i < iterations; i++ {
		box, _ := cur.Box().Grow(grow).Intersect(sceneBox)
		out, err := voxels.NewObjectMask(box)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDilation, err)
		}
		cur.ForEach(func(pt dvid.Point3d) {
			for _, o := range offsets {
				q := pt.Add(dvid.Point3d{int32(o.DX), int32(o.DY), int32(o.DZ)})
				if box.Contains(q) {
					out.Set(q)
				}
			}
		})
		cur = out
	}
	return cur, nil
}
