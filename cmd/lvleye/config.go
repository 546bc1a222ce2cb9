package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvleye/ensemble"
	"github.com/katalvlaran/lvleye/path"
	"github.com/katalvlaran/lvleye/topology"
)

var (
	errNoImages     = errors.New("config: exactly one of images.generate and images.files is required")
	errBadGenerator = errors.New("config: images.generate needs a 2-D shape and count > 0")
)

// RunConfig describes one `lvleye run`: which statistic to accumulate over
// which realisations.
type RunConfig struct {
	// Statistic is one of mean, S2, C2, W2, W2c, heightheight, L.
	Statistic string `json:"statistic" yaml:"statistic"`
	ROI       []int  `json:"roi" yaml:"roi"`
	Periodic  *bool  `json:"periodic,omitempty" yaml:"periodic,omitempty"`
	Variance  *bool  `json:"variance,omitempty" yaml:"variance,omitempty"`
	PathMode  string `json:"path_mode,omitempty" yaml:"path_mode,omitempty"`
	// Workers bounds the accumulation goroutines; 0 uses GOMAXPROCS.
	Workers int          `json:"workers,omitempty" yaml:"workers,omitempty"`
	Images  ImagesConfig `json:"images" yaml:"images"`
}

// ImagesConfig selects the realisations: generated discs or text files.
type ImagesConfig struct {
	Generate *GenerateConfig `json:"generate,omitempty" yaml:"generate,omitempty"`
	Files    []string        `json:"files,omitempty" yaml:"files,omitempty"`
}

// GenerateConfig draws Count random-circle images; image i uses seed Seed+i.
type GenerateConfig struct {
	Shape []int `json:"shape" yaml:"shape"`
	Count int   `json:"count" yaml:"count"`
	Seed  int64 `json:"seed" yaml:"seed"`
}

// LoadRunConfig reads and validates a YAML run file.
func LoadRunConfig(file string) (*RunConfig, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg RunConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", file, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", file, err)
	}

	return &cfg, nil
}

// Validate checks the statistic, ROI, path mode and image source.
func (c *RunConfig) Validate() error {
	if _, err := ensemble.ParseStatistic(c.Statistic); err != nil {
		return err
	}
	if err := topology.Validate(c.ROI); err != nil {
		return fmt.Errorf("roi: %w", err)
	}
	if _, err := path.ParseMode(c.PathMode); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d < 0", c.Workers)
	}
	gen, files := c.Images.Generate, c.Images.Files
	if (gen == nil) == (len(files) == 0) {
		return errNoImages
	}
	if gen != nil && (len(gen.Shape) != 2 || gen.Count <= 0 || gen.Shape[0] <= 0 || gen.Shape[1] <= 0) {
		return errBadGenerator
	}

	return nil
}

// Count is the number of realisations the config describes.
func (c *RunConfig) Count() int {
	if c.Images.Generate != nil {
		return c.Images.Generate.Count
	}
	return len(c.Images.Files)
}

// Options translates the flags into ensemble options (both default to true).
func (c *RunConfig) Options() []ensemble.Option {
	var opts []ensemble.Option
	if c.Periodic != nil {
		opts = append(opts, ensemble.WithPeriodic(*c.Periodic))
	}
	if c.Variance != nil {
		opts = append(opts, ensemble.WithVariance(*c.Variance))
	}
	return opts
}

// IsPeriodic reports the effective periodicity.
func (c *RunConfig) IsPeriodic() bool {
	return c.Periodic == nil || *c.Periodic
}
