package kernel

import (
	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/voxels"
)

// Outline returns the voxels of vol that have at least one off neighbor.
func Outline(vol *voxels.BinaryVolume, k Kernel) *voxels.BinaryVolume {
	k.StopAtFirst = true
	ext := vol.Extent()
	out := voxels.NewBinaryVolume8(ext)
	pred := IsOnPredicate(vol)
	for z := 0; z < ext.Z; z++ {
		for y := 0; y < ext.Y; y++ {
			for x := 0; x < ext.X; x++ {
				if k.CountAt(vol, pred, x, y, z) > 0 {
					out.SetOn(x, y, z)
				}
			}
		}
	}
	return out
}

// Erode returns a mask, with the same box, keeping only voxels whose neighbors are
// all on.
func Erode(mask *voxels.ObjectMask, k Kernel) (*voxels.ObjectMask, error) {
	k.StopAtFirst = true
	vol := mask.Volume()
	ext := vol.Extent()
	out, err := voxels.NewObjectMask(mask.Box())
	if err != nil {
		return nil, err
	}
	pred := IsOnPredicate(vol)
	for z := 0; z < ext.Z; z++ {
		for y := 0; y < ext.Y; y++ {
			for x := 0; x < ext.X; x++ {
				if vol.IsOn(x, y, z) && k.CountAt(vol, pred, x, y, z) == 0 {
					out.Volume().SetOn(x, y, z)
				}
			}
		}
	}
	return out, nil
}

// sceneField presents an object mask in scene coordinates.
type sceneField struct {
	scene voxels.Extent
	mask  *voxels.ObjectMask
}

func (f sceneField) Extent() voxels.Extent {
	return f.scene
}

func (f sceneField) IsOn(x, y, z int) bool {
	return f.mask.Contains(dvid.Point3d{int32(x), int32(y), int32(z)})
}

// CountTouching returns the number of (voxel, neighbor) pairs where the voxel is in
// obj and the neighbor is in other, within the scene.  With k.StopAtFirst each voxel
// of obj contributes at most 1, giving the number of obj voxels touching other.
// Neighbors outside the scene are never in other, so k.Policy should be
// OutsideIgnore.
func CountTouching(obj, other *voxels.ObjectMask, scene voxels.Extent, k Kernel) int {
	field := sceneField{scene: scene, mask: obj}
	notInOther := func(x, y, z int) bool {
		return !other.Contains(dvid.Point3d{int32(x), int32(y), int32(z)})
	}
	var total int
	obj.ForEach(func(pt dvid.Point3d) {
		x, y, z := int(pt[0]), int(pt[1]), int(pt[2])
		if !scene.Contains(x, y, z) {
			return
		}
		total += k.CountAt(field, notInOther, x, y, z)
	})
	return total
}
