/*
Package labels finds the connected components of a binary voxel volume.

Labeling is two passes over a label buffer the size of the volume.  The first pass
scans in z-major, then y, then x order and gives each foreground voxel the minimum
provisional label among its already-visited neighbors, registering a new label when
there are none and unioning every pair of distinct labels seen.  Neighbor lookups go
through a window holding only the current and, for 3d connectivity, the previous
z-slice.  The second pass resolves each provisional label to its disjoint-set root,
renumbers roots contiguously from 1 in order of first encounter, and accumulates a
bounding box and voxel count per final id.  Components smaller than the minimum size
are dropped only when objects are extracted, so earlier merges are never undone.
*/
package labels
