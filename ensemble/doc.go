// Package ensemble accumulates spatial correlation statistics of
// heterogeneous media over a fixed region of interest (ROI).
//
// An Ensemble owns three buffers with one bin per ROI cell: the first-moment
// sum, the second-moment sum and the normalisation. Every accumulation call
// (one "realisation") adds to those buffers; Result and Variance normalise on
// demand. The first successful call locks the Ensemble to its statistic:
//
//   - Mean: average (and variance) of a field; the ROI has one cell.
//   - S2: two-point probability f(x)·g(x+d).
//   - C2: two-point cluster function 1{f(x) == g(x+d)} for f(x) != 0.
//   - W2: weighted correlation w(x)·f(x+d), normalised by the weights.
//   - W2c: collapsed weighted correlation measured from cluster edges.
//   - HeightHeight: root mean square of f(x+d) - f(x).
//   - L: lineal path function along discrete lines from the centre.
//
// Fields are padded to the ROI half extent: periodic grids wrap, others are
// zero filled and the padding is excluded through the masks. Masks hold 0
// (use) or 1 (exclude); a nil mask excludes nothing.
//
// The raw buffers are linear in the realisations, so independent Ensembles
// may process disjoint realisations and be combined with Merge before
// normalising. Accumulate does exactly that over a pool of goroutines.
//
// An Ensemble is not safe for concurrent use.
package ensemble
