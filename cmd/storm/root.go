// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arthuralsett/storm"
	"github.com/arthuralsett/storm/internal/metrics"
	"github.com/arthuralsett/storm/internal/teeio"
	"github.com/arthuralsett/storm/validate"
)

var (
	modelPath   string
	reportPath  string
	metricsAddr string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storm",
		Short: "Compute safe and almost-sure-reaching strategies for a consumption MDP",
	}
	cmd.AddCommand(newSolveCmd())
	return cmd
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve MinInitCons, Safe and SafePR for a CMDP model and validate the resulting selector",
		RunE:  runSolve,
	}
	cmd.Flags().StringVar(&modelPath, "model", "", "path to the YAML CMDP model (required)")
	cmd.Flags().StringVar(&reportPath, "out", "storm-cmdp-output.txt", "path to write the report to")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address")
	cmd.MarkFlagRequired("model")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	runID := uuid.New()

	reg := prometheus.NewRegistry()
	mtr := metrics.New(reg)
	if metricsAddr != "" {
		go func() {
			if err := metrics.Serve(metricsAddr, reg); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	m, capacity, target, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	outFile, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("run %s: creating report file: %w", runID, err)
	}
	defer outFile.Close()
	out := teeio.New(os.Stdout, outFile)

	fmt.Fprintf(out, "run = %s\n", runID)
	fmt.Fprintf(out, "capacity = %d\n", capacity)

	start := time.Now()
	result := storm.Solve(m, capacity, target)
	solveDur := time.Since(start)
	mtr.SolveSeconds.WithLabelValues("solve").Observe(solveDur.Seconds())

	showResult(out, "MinInitCons", result.MinInitCons, solveDur)
	showResult(out, "Safe", result.Safe, solveDur)
	showResult(out, "SafePR", result.SafePR, solveDur)

	fmt.Fprintln(out, "counterSelector =")
	valid, err := storm.Validate(&validate.GraphOracle{}, m, capacity, result)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	showSelector(out, result.Selector, valid)

	mtr.Runs.Inc()
	return nil
}
