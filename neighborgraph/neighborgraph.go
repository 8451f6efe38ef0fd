/*
Package neighborgraph builds a weighted adjacency graph over objects.  Two objects
are neighbors when a one-voxel dilation of the first overlaps the second; the edge
weight is the number of overlapping voxels.
*/
package neighborgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/janelia-flyem/objgraph/dvid"
	"github.com/janelia-flyem/objgraph/morph"
	"github.com/janelia-flyem/objgraph/neighborhood"
	"github.com/janelia-flyem/objgraph/spatial"
	"github.com/janelia-flyem/objgraph/voxels"
)

// ErrBuild is wrapped by every error from a graph build.  No partial graph is
// returned with it.
var ErrBuild = errors.New("neighbor graph build failed")

// Edge joins vertices From and To, where From is the vertex whose dilation first
// discovered the pair.
type Edge struct {
	From, To int

	// Weight is the number of voxels of To inside the dilation of From.
	Weight int

	// ReverseWeight is the number of voxels of From inside the dilation of To.  It is
	// only measured in both-directions mode and is 0 otherwise.
	ReverseWeight int
}

// Graph is an immutable weighted undirected graph whose vertices are numbered by
// their position in the input list.
type Graph[V any] struct {
	vertices []V
	g        *simple.WeightedUndirectedGraph
	edges    []Edge
	byPair   map[[2]int]int
}

func newGraph[V any](vertices []V) *Graph[V] {
	g := &Graph[V]{
		vertices: vertices,
		g:        simple.NewWeightedUndirectedGraph(0, 0),
		byPair:   make(map[[2]int]int),
	}
	for i := range vertices {
		g.g.AddNode(simple.Node(int64(i)))
	}
	return g
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func (g *Graph[V]) addEdge(i, j, weight int) {
	g.byPair[pairKey(i, j)] = len(g.edges)
	g.edges = append(g.edges, Edge{From: i, To: j, Weight: weight})
	g.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(i)), T: simple.Node(int64(j)), W: float64(weight)})
}

// NumVertices returns the number of vertices.
func (g *Graph[V]) NumVertices() int {
	return len(g.vertices)
}

// Vertex returns vertex i.
func (g *Graph[V]) Vertex(i int) V {
	return g.vertices[i]
}

// NumEdges returns the number of edges.
func (g *Graph[V]) NumEdges() int {
	return len(g.edges)
}

// Edges returns the edges in discovery order.
func (g *Graph[V]) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Edge returns the edge between i and j in either order.
func (g *Graph[V]) Edge(i, j int) (Edge, bool) {
	k, found := g.byPair[pairKey(i, j)]
	if !found {
		return Edge{}, false
	}
	return g.edges[k], true
}

// Weight returns the weight of the edge between i and j.
func (g *Graph[V]) Weight(i, j int) (int, bool) {
	e, found := g.Edge(i, j)
	return e.Weight, found
}

// Neighbors returns the vertices adjacent to i in ascending order.
func (g *Graph[V]) Neighbors(i int) []int {
	nodes := graph.NodesOf(g.g.From(int64(i)))
	out := make([]int, len(nodes))
	for k, n := range nodes {
		out[k] = int(n.ID())
	}
	sort.Ints(out)
	return out
}

// UndirectedGraph is the read-only gonum view of a Graph.
type UndirectedGraph interface {
	graph.Undirected
	graph.WeightedUndirected
}

// Undirected exposes the graph to gonum algorithms.  Node ids are vertex positions.
func (g *Graph[V]) Undirected() UndirectedGraph {
	return g.g
}

// Builder holds the settings for a graph build.
type Builder struct {
	// Kind is the neighborhood used for dilation.
	Kind neighborhood.Kind

	// BothDirections tests every candidate pair from both ends instead of skipping a
	// pair whose reverse was already tested.  The edge weight still comes from the
	// first test; the second is kept as Edge.ReverseWeight.
	BothDirections bool
}

// Build returns the neighbor graph of objects within a scene of the given extent.
// If preventIntersection is set, objects sharing any voxel are never neighbors.
// use3D dilates along z as well as x and y.
func (b Builder) Build(objects []*voxels.ObjectMask, scene voxels.Extent, preventIntersection, use3D bool) (*Graph[*voxels.ObjectMask], error) {
	return BuildMapped(b, objects, func(obj *voxels.ObjectMask) *voxels.ObjectMask { return obj },
		scene, preventIntersection, use3D)
}

// BuildMapped is like Builder.Build but with caller-supplied vertices, each mapped to
// its object by toObject.
func BuildMapped[V any](b Builder, vertices []V, toObject func(V) *voxels.ObjectMask, scene voxels.Extent, preventIntersection, use3D bool) (*Graph[V], error) {
	timedLog := dvid.NewTimeLog()
	objects := make([]*voxels.ObjectMask, len(vertices))
	idx := spatial.NewIndex()
	for i, v := range vertices {
		obj := toObject(v)
		if obj == nil {
			return nil, fmt.Errorf("%w: vertex %d has no object", ErrBuild, i)
		}
		if err := idx.Insert(obj.Box(), i); err != nil {
			return nil, fmt.Errorf("%w: indexing object %d: %v", ErrBuild, i, err)
		}
		objects[i] = obj
	}

	g := newGraph(vertices)
	tested := make(map[[2]int]struct{})
	var numTests int
	for i, obj := range objects {
		dilated, err := morph.Dilate(obj, scene, use3D, 1, b.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: object %d: %w", ErrBuild, i, err)
		}
		candidates, err := idx.Intersects(dilated.Box())
		if err != nil {
			return nil, fmt.Errorf("%w: querying neighbors of object %d: %v", ErrBuild, i, err)
		}
		for _, j := range candidates {
			if j == i {
				continue
			}
			key := pairKey(i, j)
			_, seen := tested[key]
			if seen && !b.BothDirections {
				continue
			}
			tested[key] = struct{}{}
			numTests++

			if preventIntersection && obj.Intersects(objects[j]) {
				continue
			}
			weight := dilated.IntersectionCount(objects[j], false)
			if weight == 0 {
				continue
			}
			if k, found := g.byPair[key]; found {
				g.edges[k].ReverseWeight = weight
				continue
			}
			g.addEdge(i, j, weight)
		}
	}
	timedLog.Debugf("Neighbor graph over %s objects with %d-connected dilation: %s pair tests, %s edges",
		humanize.Comma(int64(len(objects))), neighborhood.Connectivity(b.Kind, use3D && scene.Is3D()),
		humanize.Comma(int64(numTests)), humanize.Comma(int64(len(g.edges))))
	return g, nil
}
