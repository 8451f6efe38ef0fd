package voxels

import "fmt"

// BinaryValues gives the stored values written for on and off voxels.  When reading,
// any value other than Off counts as on.
type BinaryValues struct {
	Off uint64
	On  uint64
}

// DefaultBinaryValues is the usual 8-bit mask encoding.
var DefaultBinaryValues = BinaryValues{Off: 0, On: 255}

// Validate returns an error if on and off cannot be told apart.
func (bv BinaryValues) Validate() error {
	if bv.On == bv.Off {
		return fmt.Errorf("binary on value (%d) must differ from off value", bv.On)
	}
	return nil
}

// BinaryVolume is an on/off view over a Buffer of any storage width.
type BinaryVolume struct {
	buf    Buffer
	values BinaryValues
}

// NewBinaryVolume returns a binary view over an existing buffer.
func NewBinaryVolume(buf Buffer, values BinaryValues) *BinaryVolume {
	return &BinaryVolume{buf: buf, values: values}
}

// NewBinaryVolume8 allocates an all-off 8-bit binary volume.
func NewBinaryVolume8(extent Extent) *BinaryVolume {
	return &BinaryVolume{buf: NewGrid[uint8](extent), values: DefaultBinaryValues}
}

// Extent returns the size of the volume.
func (v *BinaryVolume) Extent() Extent {
	return v.buf.Extent()
}

// IsOnAt tests the voxel at offset i within z-slice z.
func (v *BinaryVolume) IsOnAt(z, i int) bool {
	return v.buf.Value(z, i) != v.values.Off
}

// IsOnOffset tests the voxel at a linear raster offset.
func (v *BinaryVolume) IsOnOffset(offset int) bool {
	area := v.buf.Extent().AreaXY()
	return v.IsOnAt(offset/area, offset%area)
}

// IsOn tests the voxel at (x, y, z), which must be inside the volume.
func (v *BinaryVolume) IsOn(x, y, z int) bool {
	return v.IsOnAt(z, v.buf.Extent().OffsetSlice(x, y))
}

// SetOn turns the voxel at (x, y, z) on.
func (v *BinaryVolume) SetOn(x, y, z int) {
	v.buf.Put(z, v.buf.Extent().OffsetSlice(x, y), v.values.On)
}

// SetOff turns the voxel at (x, y, z) off.
func (v *BinaryVolume) SetOff(x, y, z int) {
	v.buf.Put(z, v.buf.Extent().OffsetSlice(x, y), v.values.Off)
}

// CountOn returns the number of on voxels.
func (v *BinaryVolume) CountOn() int {
	ext := v.buf.Extent()
	area := ext.AreaXY()
	var n int
	for z := 0; z < ext.Z; z++ {
		for i := 0; i < area; i++ {
			if v.IsOnAt(z, i) {
				n++
			}
		}
	}
	return n
}
