package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd wires the sub-commands; out receives results, errOut the logs.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string
	log := slog.New(slog.NewTextHandler(errOut, nil))

	root := &cobra.Command{
		Use:               "lvleye",
		Short:             "Spatial statistics of heterogeneous media",
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	var configFile string
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Accumulate a statistic over the realisations of a run file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadRunConfig(configFile)
			if err != nil {
				return err
			}
			return runStatistic(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}
	runCmd.Flags().StringVarP(&configFile, "config", "c", "run.yaml", "YAML run file")

	var input string
	var periodic bool
	labelCmd := &cobra.Command{
		Use:   "label",
		Short: "Print the cluster labels of a text image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return labelImage(input, periodic, log, cmd.OutOrStdout())
		},
	}
	labelCmd.Flags().StringVarP(&input, "input", "i", "", "image file, one row of integers per line")
	labelCmd.Flags().BoolVar(&periodic, "periodic", true, "wrap clusters across the image edges")
	_ = labelCmd.MarkFlagRequired("input")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lvleye", version)
		},
	}

	root.AddCommand(runCmd, labelCmd, versionCmd)
	return root
}
