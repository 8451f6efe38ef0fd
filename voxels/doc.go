/*
Package voxels holds the raster containers shared by labeling and graph building:
a generic slice-major grid usable at any storage width, a binary view over such
a grid, a bounded window of resident z-slices, and per-object binary masks
restricted to a bounding box.
*/
package voxels
