package kernel

import (
	"testing"

	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/voxels"
)

// filled returns a 2d volume with the given rectangle turned on.
func filled(ext voxels.Extent, x0, y0, x1, y1 int) *voxels.BinaryVolume {
	vol := voxels.NewBinaryVolume8(ext)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			vol.SetOn(x, y, 0)
		}
	}
	return vol
}

func TestCountAtBoundaryPolicy(t *testing.T) {
	vol := filled(voxels.Extent{X: 3, Y: 3, Z: 1}, 0, 0, 2, 2)
	pred := IsOnPredicate(vol)

	off := New(neighborhood.Small, false, OutsideOff)
	ignore := New(neighborhood.Small, false, OutsideIgnore)

	tests := []struct {
		k        Kernel
		x, y     int
		expected int
	}{
		{off, 0, 0, 2},
		{off, 1, 0, 1},
		{off, 1, 1, 0},
		{ignore, 0, 0, 0},
		{ignore, 1, 0, 0},
	}
	for _, tc := range tests {
		if got := tc.k.CountAt(vol, pred, tc.x, tc.y, 0); got != tc.expected {
			t.Errorf("policy %s at (%d,%d): expected %d, got %d", tc.k.Policy, tc.x, tc.y, tc.expected, got)
		}
	}

	off.StopAtFirst = true
	if got := off.CountAt(vol, pred, 0, 0, 0); got != 1 {
		t.Errorf("expected short-circuit count of 1, got %d", got)
	}

	vol.SetOff(1, 1, 0)
	if got := off.CountAt(vol, pred, 1, 1, 0); got != 0 {
		t.Errorf("off center voxel should count 0, got %d", got)
	}
	big := New(neighborhood.Big, false, OutsideIgnore)
	if got := big.CountAt(vol, pred, 0, 0, 0); got != 1 {
		t.Errorf("big neighborhood at corner should see 1 off neighbor, got %d", got)
	}
}

func TestCountAt3D(t *testing.T) {
	ext := voxels.Extent{X: 3, Y: 3, Z: 3}
	vol := voxels.NewBinaryVolume8(ext)
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				vol.SetOn(x, y, z)
			}
		}
	}
	vol.SetOff(1, 1, 0)
	k := New(neighborhood.Small, true, OutsideIgnore)
	if got := k.CountAt(vol, IsOnPredicate(vol), 1, 1, 1); got != 1 {
		t.Errorf("expected 1 off face neighbor below center, got %d", got)
	}
	k.Use3D = false
	if got := k.CountAt(vol, IsOnPredicate(vol), 1, 1, 1); got != 0 {
		t.Errorf("2d kernel should not see plane below, got %d", got)
	}
	k = New(neighborhood.Big, true, OutsideOff)
	if got := k.CountAt(vol, IsOnPredicate(vol), 0, 1, 1); got != 10 {
		t.Errorf("expected 9 outside + 1 off neighbor, got %d", got)
	}
}

func TestOutlineAndErode(t *testing.T) {
	vol := filled(voxels.Extent{X: 5, Y: 5, Z: 1}, 0, 0, 4, 4)
	k := New(neighborhood.Small, false, OutsideOff)
	outline := Outline(vol, k)
	if n := outline.CountOn(); n != 16 {
		t.Errorf("expected 16 outline voxels, got %d", n)
	}
	if outline.IsOn(2, 2, 0) {
		t.Errorf("center voxel should not be on the outline")
	}
	k.Policy = OutsideIgnore
	if n := Outline(vol, k).CountOn(); n != 0 {
		t.Errorf("with outside ignored a full volume has no outline, got %d", n)
	}

	mask, err := voxels.NewObjectMaskFromVolume(dvid.Extents3d{MaxPoint: dvid.Point3d{4, 4, 0}}, vol)
	if err != nil {
		t.Fatalf("unable to make mask: %v", err)
	}
	eroded, err := Erode(mask, New(neighborhood.Small, false, OutsideOff))
	if err != nil {
		t.Fatalf("erode failed: %v", err)
	}
	if n := eroded.NumVoxels(); n != 9 {
		t.Errorf("expected 9 voxels after erosion, got %d", n)
	}
}

func TestCountTouching(t *testing.T) {
	scene := voxels.Extent{X: 6, Y: 4, Z: 1}
	a, _ := voxels.NewObjectMask(dvid.Extents3d{MinPoint: dvid.Point3d{0, 0, 0}, MaxPoint: dvid.Point3d{1, 1, 0}})
	b, _ := voxels.NewObjectMask(dvid.Extents3d{MinPoint: dvid.Point3d{2, 0, 0}, MaxPoint: dvid.Point3d{3, 1, 0}})
	for _, m := range []*voxels.ObjectMask{a, b} {
		box := m.Box()
		for y := box.MinPoint[1]; y <= box.MaxPoint[1]; y++ {
			for x := box.MinPoint[0]; x <= box.MaxPoint[0]; x++ {
				m.Set(dvid.Point3d{x, y, 0})
			}
		}
	}
	small := New(neighborhood.Small, false, OutsideIgnore)
	if n := CountTouching(a, b, scene, small); n != 2 {
		t.Errorf("expected 2 touching faces, got %d", n)
	}
	big := New(neighborhood.Big, false, OutsideIgnore)
	if n := CountTouching(a, b, scene, big); n != 4 {
		t.Errorf("expected 4 touching pairs with diagonals, got %d", n)
	}
	big.StopAtFirst = true
	if n := CountTouching(a, b, scene, big); n != 2 {
		t.Errorf("expected 2 touching voxels, got %d", n)
	}
}
