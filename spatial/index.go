// Package spatial is an R-tree index of inclusive integer boxes keyed by position.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/janelia-flyem/objgraph/dvid"
)

const (
	minChildren = 25
	maxChildren = 50

	// queries are shrunk by this much on each side so boxes that only touch do not
	// match regardless of how the tree treats shared boundaries.
	queryInset = 0.25
)

type entry struct {
	id   int
	box  dvid.Extents3d
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index answers which stored boxes intersect a query box.
type Index struct {
	tree *rtreego.Rtree
	n    int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(3, minChildren, maxChildren)}
}

// voxelRect returns the half-open region [min, max+1) covered by the box, shrunk
// by inset on each side.
func voxelRect(box dvid.Extents3d, inset float64) (rtreego.Rect, error) {
	var p rtreego.Point = make([]float64, 3)
	lengths := make([]float64, 3)
	for i := 0; i < 3; i++ {
		p[i] = float64(box.MinPoint[i]) + inset
		lengths[i] = float64(box.MaxPoint[i]-box.MinPoint[i]+1) - 2*inset
	}
	return rtreego.NewRect(p, lengths)
}

// Len returns the number of stored boxes.
func (idx *Index) Len() int {
	return idx.n
}

// Insert stores box under id.  The box must be valid.
func (idx *Index) Insert(box dvid.Extents3d, id int) error {
	rect, err := voxelRect(box, 0)
	if err != nil {
		return err
	}
	idx.tree.Insert(&entry{id: id, box: box, rect: rect})
	idx.n++
	return nil
}

// Intersects returns, in ascending order, the ids of every stored box sharing at
// least one voxel with box.
func (idx *Index) Intersects(box dvid.Extents3d) ([]int, error) {
	rect, err := voxelRect(box, queryInset)
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, obj := range idx.tree.SearchIntersect(rect) {
		e := obj.(*entry)
		if e.box.Intersects(box) {
			ids = append(ids, e.id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}
