package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvleye/cluster"
	"github.com/katalvlaran/lvleye/dummy"
	"github.com/katalvlaran/lvleye/ensemble"
	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/path"
)

// Report is the JSON document printed by `lvleye run`.
type Report struct {
	Statistic    string    `json:"statistic"`
	ROI          []int     `json:"roi"`
	Periodic     bool      `json:"periodic"`
	Realisations int       `json:"realisations"`
	Distance     []float64 `json:"distance"`
	Result       []float64 `json:"result"`
	Variance     []float64 `json:"variance,omitempty"`
}

// source yields realisation i as a binary (or label) image.
type source func(i int) (*ndarray.Array[int], error)

func newSource(cfg *RunConfig) source {
	if g := cfg.Images.Generate; g != nil {
		periodic := cfg.IsPeriodic()
		return func(i int) (*ndarray.Array[int], error) {
			rng := rand.New(rand.NewSource(g.Seed + int64(i)))
			return dummy.RandomCircles(g.Shape, rng, periodic)
		}
	}
	files := cfg.Images.Files
	return func(i int) (*ndarray.Array[int], error) {
		return readImageFile(files[i])
	}
}

// accumulator feeds one image into e according to the configured statistic.
func accumulator(stat ensemble.Statistic, mode path.Mode, periodic bool) func(e *ensemble.Ensemble, img *ndarray.Array[int]) error {
	return func(e *ensemble.Ensemble, img *ndarray.Array[int]) error {
		f := ndarray.AsFloat64(img)
		switch stat {
		case ensemble.StatMean:
			return e.Mean(f, nil)
		case ensemble.StatS2:
			return e.S2(f, f, nil, nil)
		case ensemble.StatW2:
			return e.W2(f, f, nil)
		case ensemble.StatHeightHeight:
			return e.HeightHeight(f, nil)
		case ensemble.StatL:
			return e.L(img, mode)
		case ensemble.StatC2:
			labels, err := cluster.Label(img, periodic)
			if err != nil {
				return err
			}
			return e.C2(labels, labels, nil, nil)
		case ensemble.StatW2c:
			c, err := cluster.NewClusters(img, cluster.WithPeriodic(periodic))
			if err != nil {
				return err
			}
			return e.W2c(c.Labels(), c.Centers(), f, nil, mode)
		default:
			return fmt.Errorf("statistic %v: %w", stat, ensemble.ErrUnknownStatistic)
		}
	}
}

// runStatistic accumulates the configured statistic and writes a Report.
func runStatistic(ctx context.Context, cfg *RunConfig, log *slog.Logger, w io.Writer) error {
	stat, err := ensemble.ParseStatistic(cfg.Statistic)
	if err != nil {
		return err
	}
	mode, err := path.ParseMode(cfg.PathMode)
	if err != nil {
		return err
	}
	roi := cfg.ROI
	if stat == ensemble.StatMean {
		roi = []int{1}
	}
	src := newSource(cfg)
	add := accumulator(stat, mode, cfg.IsPeriodic())

	log.Info("accumulating", "statistic", stat.String(), "roi", roi, "realisations", cfg.Count())
	opts := append(cfg.Options(), ensemble.WithLogger(log))
	e, err := ensemble.Accumulate(ctx, roi, cfg.Count(), cfg.Workers,
		func(_ context.Context, e *ensemble.Ensemble, i int) error {
			img, err := src(i)
			if err != nil {
				return err
			}
			return add(e, img)
		}, opts...)
	if err != nil {
		return err
	}

	dist, err := ensemble.Distance(roi)
	if err != nil {
		return err
	}
	rep := Report{
		Statistic:    stat.String(),
		ROI:          roi,
		Periodic:     e.Periodic(),
		Realisations: cfg.Count(),
		Distance:     dist.Data(),
		Result:       e.Result().Data(),
	}
	if stat == ensemble.StatMean || (stat == ensemble.StatHeightHeight && e.VarianceTracking()) {
		v, err := e.Variance()
		if err != nil {
			return err
		}
		rep.Variance = v.Data()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// labelImage prints the pruned cluster labels of the image in file.
func labelImage(file string, periodic bool, log *slog.Logger, w io.Writer) error {
	img, err := readImageFile(file)
	if err != nil {
		return err
	}
	labels, err := cluster.Label(img, periodic)
	if err != nil {
		return err
	}
	log.Info("labelled", "file", file, "clusters", ndarray.Max(labels))

	return writeImage(w, labels)
}
