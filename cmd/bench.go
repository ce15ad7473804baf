// cmd/bench.go

package main

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/ahmed-masud/monotonic-clock/pkg/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type benchReport struct {
	Session    string    `json:"session"`
	Command    []string  `json:"command"`
	Iterations int       `json:"iterations"`
	StartedAt  float64   `json:"started_at"`
	Runs       []float64 `json:"runs"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Avg        float64   `json:"avg"`
}

func benchFlags() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "run a command repeatedly and report timing statistics",
		ArgsUsage: "COMMAND [ARGS...]",
		Action:    bench,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   5,
				Usage:   "number of iterations",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the report as JSON",
			},
		},
	}
}

func bench(ctx *cli.Context) error {
	setLoggerLevel(ctx)
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("COMMAND is needed")
	}
	n := ctx.Int("count")
	if n < 1 {
		return fmt.Errorf("count must be positive")
	}
	args := ctx.Args().Slice()

	ck := clock.New()
	report := benchReport{
		Session:    uuid.New().String(),
		Command:    args,
		Iterations: n,
		StartedAt:  ck.Epoch().Seconds(),
		Runs:       make([]float64, 0, n),
	}
	logger.Debugf("bench session %s: %d x %v", report.Session, n, args)

	var total time.Duration
	for i := 0; i < n; i++ {
		cmd := exec.Command(args[0], args[1:]...)
		ck.Start()
		if err := cmd.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				return errors.Wrapf(err, "run %s", args[0])
			}
			logger.Warnf("iteration %d: %s exited with code %d",
				i+1, args[0], cmd.ProcessState.ExitCode())
		}
		elapsed := ck.Stop()
		total += elapsed
		report.Runs = append(report.Runs, elapsed.Seconds())
		logger.Debugf("iteration %d: %s", i+1, elapsed)
	}

	report.Min, report.Max = report.Runs[0], report.Runs[0]
	for _, r := range report.Runs {
		if r < report.Min {
			report.Min = r
		}
		if r > report.Max {
			report.Max = r
		}
	}
	report.Avg = (total / time.Duration(n)).Seconds()

	if ctx.Bool("json") {
		printJson(&report)
	} else {
		fmt.Printf("%d runs: min %.6fs, avg %.6fs, max %.6fs\n",
			n, report.Min, report.Avg, report.Max)
	}
	return nil
}
