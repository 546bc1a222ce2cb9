package ensemble

import "errors"

var (
	// ErrROI indicates an invalid ROI shape (rank outside 1..3 or extent <= 0).
	ErrROI = errors.New("ensemble: invalid ROI shape")
	// ErrNilField indicates a nil field where data is required.
	ErrNilField = errors.New("ensemble: nil field")
	// ErrShapeMismatch indicates fields or masks of differing shapes.
	ErrShapeMismatch = errors.New("ensemble: shape mismatch")
	// ErrMaskValues indicates a mask holding values other than 0 and 1.
	ErrMaskValues = errors.New("ensemble: mask values must be 0 or 1")
	// ErrRankMismatch indicates a field whose rank differs from the ROI rank.
	ErrRankMismatch = errors.New("ensemble: field rank differs from ROI rank")
	// ErrStatisticLocked indicates a statistic other than the one the Ensemble is locked to.
	ErrStatisticLocked = errors.New("ensemble: already locked to another statistic")
	// ErrNotImplemented indicates Variance on a statistic without a variance.
	ErrNotImplemented = errors.New("ensemble: not implemented for this statistic")
	// ErrVarianceDisabled indicates Variance on an Ensemble built without variance tracking.
	ErrVarianceDisabled = errors.New("ensemble: variance tracking disabled")
	// ErrROINotScalar indicates Mean on an Ensemble whose ROI has more than one cell.
	ErrROINotScalar = errors.New("ensemble: mean requires a single-cell ROI")
	// ErrIncompatible indicates Merge of Ensembles with different ROI, flags or statistic.
	ErrIncompatible = errors.New("ensemble: incompatible ensembles")
	// ErrUnknownStatistic indicates a statistic name ParseStatistic does not know.
	ErrUnknownStatistic = errors.New("ensemble: unknown statistic")
	// ErrAxis indicates an axis outside 0..rank-1, or a pixel-size list of the wrong length.
	ErrAxis = errors.New("ensemble: axis out of range")
)
