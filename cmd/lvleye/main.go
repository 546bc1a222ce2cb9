// Command lvleye computes spatial statistics of binary images from the
// command line.
//
// Usage:
//
//	lvleye run --config run.yaml
//	lvleye label --input image.txt [--periodic=false]
//	lvleye version
//
// A run file names the statistic, the ROI and the realisations:
//
//	statistic: S2
//	roi: [21, 21]
//	periodic: true
//	images:
//	  generate: {shape: [200, 200], count: 8, seed: 1}
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
