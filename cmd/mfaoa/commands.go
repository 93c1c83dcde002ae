// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mfaoa/report"
)

// app carries the flag values and the logger shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	format     string
	outPath    string
	plotPath   string

	genKind   string
	genN      int
	genLayers int
	genSeed   uint64

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "mfaoa",
		Short:        "Mean-field approximate optimization: evolve, analyze and tune schedules",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML run description")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", report.FormatJSON, "report format: json or yaml")
	rootCmd.PersistentFlags().StringVarP(&a.outPath, "out", "o", "", "write output to file instead of stdout")

	evolveCmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve the spins under the configured schedule and report energy and solution",
		Args:  cobra.NoArgs,
		RunE:  a.runEvolve,
	}
	evolveCmd.Flags().StringVar(&a.plotPath, "plot", "", "render z-trajectories to this file (.svg, .png, .pdf)")

	lyapunovCmd := &cobra.Command{
		Use:     "lyapunov",
		Aliases: []string{"spectrum"},
		Short:   "Compute the Lyapunov spectrum of the evolution",
		Args:    cobra.NoArgs,
		RunE:    a.runLyapunov,
	}
	lyapunovCmd.Flags().StringVar(&a.plotPath, "plot", "", "render the spectrum to this file")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Tune the schedule to minimize the mean-field energy",
		Args:  cobra.NoArgs,
		RunE:  a.runOptimize,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a run description for one of the problem generators",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	generateCmd.Flags().StringVar(&a.genKind, "kind", "sk", "sk, maxcut, vertexcover or partition")
	generateCmd.Flags().IntVar(&a.genN, "n", 8, "number of spins (values for partition)")
	generateCmd.Flags().IntVar(&a.genLayers, "layers", 50, "number of layers p")
	generateCmd.Flags().Uint64Var(&a.genSeed, "seed", 1, "random seed")

	rootCmd.AddCommand(evolveCmd, lyapunovCmd, optimizeCmd, generateCmd)

	return rootCmd
}
