// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mfaoa/chart"
	"github.com/katalvlaran/mfaoa/config"
	"github.com/katalvlaran/mfaoa/fluctuation"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/report"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
	"github.com/katalvlaran/mfaoa/tuning"
)

var errNoConfig = errors.New("--config is required")

// load reads the run description and builds its problem and schedule.
func (a *app) load() (*config.Config, *problem.Problem, schedule.Schedule, error) {
	if a.configPath == "" {
		return nil, nil, schedule.Schedule{}, errNoConfig
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, schedule.Schedule{}, err
	}
	pr, sched, err := cfg.Build()
	if err != nil {
		return nil, nil, schedule.Schedule{}, fmt.Errorf("build problem: %w", err)
	}
	a.log.Debug("problem loaded",
		"path", a.configPath,
		"qubits", pr.NumQubits(),
		"layers", pr.NumLayers(),
		"driver", pr.Driver().Kind().String(),
		"symmetry_broken", pr.SymmetryBroken())

	return cfg, pr, sched, nil
}

// output opens --out or falls back to the command's stdout. The returned
// close func is safe to call once.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.outPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}

	return f, f.Close, nil
}

func (a *app) emit(cmd *cobra.Command, r *report.Report) error {
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	if err = report.Encode(w, r, a.format); err != nil {
		_ = closeFn()
		return err
	}

	return closeFn()
}

// readout fills the evolution section of r from a final state.
func readout(r *report.Report, pr *problem.Problem, final spin.State) error {
	energy, err := meanfield.Energy(pr, final)
	if err != nil {
		return err
	}
	sol := meanfield.Solution(final)
	cost, err := pr.Hamiltonian(sol)
	if err != nil {
		return err
	}
	r.SetEvolution(energy, sol, cost, meanfield.UpProbabilities(final))

	return nil
}

func (a *app) runEvolve(cmd *cobra.Command, _ []string) error {
	cfg, pr, sched, err := a.load()
	if err != nil {
		return err
	}
	opts := meanfield.Options{KeepHistory: a.plotPath != "", Workers: cfg.Analysis.Workers}
	hist, err := meanfield.Evolve(pr, spin.NewState(pr.NumQubits()), sched, &opts)
	if err != nil {
		return err
	}

	r := report.New(cmd.Name(), pr)
	if err = readout(r, pr, hist.Final()); err != nil {
		return err
	}
	r.SetSchedule(sched)
	a.log.Info("evolution finished", "energy", *r.Energy, "cost", *r.Cost)

	if a.plotPath != "" {
		p, perr := chart.Trajectories(hist, spin.AxisZ, "z-trajectories")
		if perr != nil {
			return perr
		}
		if perr = chart.Save(p, a.plotPath); perr != nil {
			return perr
		}
		a.log.Info("plot written", "path", a.plotPath)
	}

	return a.emit(cmd, r)
}

func (a *app) runLyapunov(cmd *cobra.Command, _ []string) error {
	cfg, pr, sched, err := a.load()
	if err != nil {
		return err
	}
	tau, opts := cfg.AnalysisOptions()
	sp, err := fluctuation.Analyze(pr, tau, sched, &opts)
	if err != nil {
		return err
	}

	r := report.New(cmd.Name(), pr)
	r.SetSpectrum(*sp)
	r.SetSchedule(sched)
	a.log.Info("spectrum computed", "exponents", sp.Len(), "max", sp.Max(), "sum", sp.Sum())

	if a.plotPath != "" {
		p, perr := chart.Spectrum(sp, "Lyapunov spectrum")
		if perr != nil {
			return perr
		}
		if perr = chart.Save(p, a.plotPath); perr != nil {
			return perr
		}
		a.log.Info("plot written", "path", a.plotPath)
	}

	return a.emit(cmd, r)
}

// runOptimize reports the best schedule found, also when interrupted; the
// interruption is still returned as the command error.
func (a *app) runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, pr, sched, err := a.load()
	if err != nil {
		return err
	}
	opts, err := cfg.TuningOptions()
	if err != nil {
		return err
	}
	opts.Logger = a.log

	res, runErr := tuning.Optimize(cmd.Context(), pr, sched, &opts)
	if res == nil {
		return runErr
	}
	if runErr != nil {
		a.log.Warn("optimization interrupted, reporting best schedule", "err", runErr)
	}

	r := report.New(cmd.Name(), pr)
	cost, err := pr.Hamiltonian(res.Solution)
	if err != nil {
		return err
	}
	r.SetEvolution(res.Energy, res.Solution, cost, res.UpProbabilities)
	r.SetSchedule(res.Schedule)
	r.Method = res.Method.String()
	r.Iterations = res.Iterations

	if err = a.emit(cmd, r); err != nil {
		return err
	}

	return runErr
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := skeleton(a.genKind, a.genN, a.genLayers, a.genSeed)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	w, closeFn, err := a.output(cmd)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		_ = closeFn()
		return fmt.Errorf("write config: %w", err)
	}

	return closeFn()
}
