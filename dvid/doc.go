/*
	Package dvid provides types and functions that have no other dependencies and can
	be used by all packages within objgraph: voxel points and inclusive boxes, the
	leveled logging facade with optional rotating log files, and path helpers.
*/
package dvid
