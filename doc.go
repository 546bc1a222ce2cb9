// Package lvleye measures the microstructure of random heterogeneous media:
// two-point statistics, lineal paths and clusters of 1-D, 2-D and 3-D
// images on periodic or bounded grids.
//
// What is inside?
//
//	• Ensemble averages: S2, C2, W2, collapsed W2c, lineal path L,
//	  height-height correlation and the plain mean, accumulated over
//	  any number of realisations with optional masks.
//	• Incremental cluster labelling: grow an image site by site and keep
//	  labels stable, merging components lazily.
//	• Discrete paths: Bresenham and voxel-traversal lines in up to 3-D.
//	• Dilation, relabelling and centres of clusters (periodic aware).
//
// Layout:
//
//	ndarray/    row-major N-d arrays, padding (constant / periodic)
//	topology/   ROI pad widths and rank-3 promotion
//	kernel/     structuring elements and their neighbour offsets
//	path/       voxel paths between two lattice points
//	cluster/    Labeller, Label, Dilate, RelabelMap, legacy Clusters
//	ensemble/   Ensemble accumulator, one-shot Compute* helpers, Accumulate
//	dummy/      synthetic disc images from a caller-owned rand.Rand
//	cmd/lvleye  command line front end (run, label, version)
//
// Quick example:
//
//	f, _ := ndarray.FromRows(img)                 // 0/1 image
//	e, _ := ensemble.New([]int{21, 21})            // periodic by default
//	_ = e.S2(ndarray.AsFloat64(f), ndarray.AsFloat64(f), nil, nil)
//	s2 := e.Result()                               // 21×21 probability map
//
// Realisations are independent, so large ensembles are split over goroutines
// with ensemble.Accumulate and merged buffer-wise before normalising.
//
//	go get github.com/katalvlaran/lvleye
package lvleye
