// Package cluster labels connected components ("clusters") of non-zero sites
// on 1-, 2- or 3-dimensional grids, with periodic (torus) or clamped edges.
//
// The central type is Labeller, an incremental labeller: images or single
// points may be added repeatedly and components discovered to touch are
// merged. Merges are deferred: while scanning, only a small renumbering
// table is updated; the grid itself is rewritten once per call.
//
//	lab, _ := cluster.NewLabeller([]int{4, 4})          // periodic, face neighbours
//	_ = lab.AddImage(img)                                // label every non-zero site
//	_ = lab.AddPoints([]int{5, 6})                       // grow incrementally
//	lab.Prune()                                          // compact ids to 1..k
//	labels := lab.Labels()
//
// Supporting functions cover the surrounding workflow: Label (one-shot),
// Dilate (grow labels by a kernel), RelabelMap, LabelsMap, Rename, Reorder and
// Sizes (label bookkeeping). Clusters is kept for callers of the historic
// one-shot API and is a thin layer over Labeller.
//
// A Labeller is not safe for concurrent use. Independent grids may be
// labelled concurrently by independent Labellers.
package cluster
