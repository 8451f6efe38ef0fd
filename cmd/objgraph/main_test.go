package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/janelia-flyem/objgraph/config"
	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/kernel"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/voxels"
)

func TestReadVolume16(t *testing.T) {
	ext := voxels.Extent{X: 4, Y: 2, Z: 2}
	data := make([]byte, ext.NumVoxels()*2)
	binary.LittleEndian.PutUint16(data[ext.Offset(1, 1, 0)*2:], 300)
	binary.LittleEndian.PutUint16(data[ext.Offset(3, 0, 1)*2:], 1)
	filename := filepath.Join(t.TempDir(), "vol.raw")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatalf("unable to write raw file: %v", err)
	}
	vol, err := readVolume(filename, ext, 16, voxels.DefaultBinaryValues)
	if err != nil {
		t.Fatalf("unable to read volume: %v", err)
	}
	if !vol.IsOn(1, 1, 0) || !vol.IsOn(3, 0, 1) || vol.CountOn() != 2 {
		t.Errorf("unexpected voxels in 16-bit volume, %d on", vol.CountOn())
	}
	if _, err := readVolume(filename, ext, 8, voxels.DefaultBinaryValues); err == nil {
		t.Errorf("expected size mismatch error for 8-bit read")
	}
	if _, err := readVolume(filename, ext, 12, voxels.DefaultBinaryValues); err == nil {
		t.Errorf("expected error for 12-bit voxels")
	}
}

func TestReadVolume64(t *testing.T) {
	ext := voxels.Extent{X: 3, Y: 1, Z: 1}
	data := make([]byte, ext.NumVoxels()*8)
	binary.LittleEndian.PutUint64(data[16:], 1<<40)
	filename := filepath.Join(t.TempDir(), "vol64.raw")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatalf("unable to write raw file: %v", err)
	}
	vol, err := readVolume(filename, ext, 64, voxels.DefaultBinaryValues)
	if err != nil {
		t.Fatalf("unable to read volume: %v", err)
	}
	if !vol.IsOn(2, 0, 0) || vol.CountOn() != 1 {
		t.Errorf("expected only the high 64-bit voxel on, got %d on", vol.CountOn())
	}
}

func TestRun(t *testing.T) {
	ext := voxels.Extent{X: 5, Y: 5, Z: 1}
	data := make([]byte, ext.NumVoxels())
	for _, pt := range [][2]int{{0, 0}, {1, 0}, {3, 0}, {4, 4}} {
		data[ext.Offset(pt[0], pt[1], 0)] = 255
	}
	filename := filepath.Join(t.TempDir(), "vol.raw")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatalf("unable to write raw file: %v", err)
	}
	cfg, err := config.Decode("[labeling]\nconnectivity = 4\n[graph]\nuse_3d = false\n")
	if err != nil {
		t.Fatalf("bad config: %v", err)
	}
	if err := run(cfg, []string{filename, "5", "5", "1"}); err != nil {
		t.Errorf("run failed: %v", err)
	}
	if err := run(cfg, []string{filename, "5", "x", "1"}); err == nil {
		t.Errorf("expected error for bad dimension")
	}
}

func TestSurfaceVoxels(t *testing.T) {
	obj, err := voxels.NewObjectMask(dvid.Extents3d{MinPoint: dvid.Point3d{2, 2, 0}, MaxPoint: dvid.Point3d{4, 4, 0}})
	if err != nil {
		t.Fatalf("unable to make mask: %v", err)
	}
	for y := int32(2); y <= 4; y++ {
		for x := int32(2); x <= 4; x++ {
			obj.Set(dvid.Point3d{x, y, 0})
		}
	}
	k := kernel.New(neighborhood.Small, false, kernel.OutsideOff)
	if n := surfaceVoxels(obj, k); n != 8 {
		t.Errorf("expected 8 surface voxels on a 3x3 square, got %d", n)
	}
	obj.Volume().SetOff(0, 1, 0)
	// The notch exposes the center voxel.
	if n := surfaceVoxels(obj, k); n != 8 {
		t.Errorf("expected all 8 remaining voxels on the surface, got %d", n)
	}
}
