// Package unionfind is a disjoint-set over positive integer ids held in flat
// parent and rank arrays.
package unionfind

import "fmt"

// DisjointSet resolves ids to a canonical root.  Id 0 is reserved and never
// registered.
type DisjointSet struct {
	parent []uint32
	rank   []uint8
	n      int
}

// New returns a set with room for ids up to capacity without reallocation.
func New(capacity int) *DisjointSet {
	return &DisjointSet{
		parent: make([]uint32, 1, capacity+1),
		rank:   make([]uint8, 1, capacity+1),
	}
}

// Len returns the number of registered ids.
func (ds *DisjointSet) Len() int {
	return ds.n
}

// Has returns true if id has been registered.
func (ds *DisjointSet) Has(id uint32) bool {
	return id != 0 && int(id) < len(ds.parent) && ds.parent[id] != 0
}

// AddElement registers id as its own singleton set.  Ids between the largest
// registered id and this one are left unregistered.
func (ds *DisjointSet) AddElement(id uint32) {
	if id == 0 {
		panic("unionfind: id 0 is reserved")
	}
	for int(id) >= len(ds.parent) {
		ds.parent = append(ds.parent, 0)
		ds.rank = append(ds.rank, 0)
	}
	if ds.parent[id] == 0 {
		ds.parent[id] = id
		ds.n++
	}
}

func (ds *DisjointSet) mustHave(id uint32) {
	if !ds.Has(id) {
		panic(fmt.Sprintf("unionfind: id %d referenced before AddElement", id))
	}
}

// Find returns the root of id's set, compressing the path along the way.
func (ds *DisjointSet) Find(id uint32) uint32 {
	ds.mustHave(id)
	root := id
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for id != root {
		next := ds.parent[id]
		ds.parent[id] = root
		id = next
	}
	return root
}

// Union merges the sets holding a and b and returns the new root.
func (ds *DisjointSet) Union(a, b uint32) uint32 {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return ra
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
		return rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
		return ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
		return ra
	}
}
