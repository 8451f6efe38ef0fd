/*
Package objgraph finds the connected objects in 3d binary voxel volumes and the
spatial neighbor graph between them.

Labeling (package labels) is a two-pass union-find over a raster scan with a bounded
window of resident z-slices.  Objects come back as bounding boxes with binary
sub-masks (package voxels).  The neighbor graph (package neighborgraph) indexes
object boxes in an R-tree (package spatial), dilates each object by one voxel
(package morph), and weights an edge by how many voxels of the other object fall in
the dilation.

Everything runs in-process, single-threaded, and deterministically; volumes are
expected to already be in memory.  The objgraph command in cmd/objgraph drives the
library over raw voxel dumps.
*/
package objgraph
