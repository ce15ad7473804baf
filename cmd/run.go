// cmd/run.go

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ahmed-masud/monotonic-clock/pkg/clock"
	"github.com/ahmed-masud/monotonic-clock/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type runReport struct {
	Command  []string `json:"command"`
	ExitCode int      `json:"exit_code"`
	Real     float64  `json:"real"`
	User     float64  `json:"user,omitempty"`
	Sys      float64  `json:"sys,omitempty"`
	Time     float64  `json:"time"`
}

func runFlags() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a command and report how long it took",
		ArgsUsage: "COMMAND [ARGS...]",
		Action:    run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the report as JSON",
			},
		},
	}
}

func run(ctx *cli.Context) error {
	setLoggerLevel(ctx)
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("COMMAND is needed")
	}
	args := ctx.Args().Slice()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	ck := clock.New()
	err := cmd.Run()
	elapsed := ck.Stop()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return errors.Wrapf(err, "run %s", args[0])
		}
	}

	report := runReport{
		Command:  args,
		ExitCode: cmd.ProcessState.ExitCode(),
		Real:     elapsed.Seconds(),
		Time:     ck.TimeAsFloat(),
	}
	if ru := utils.RusageOf(cmd.ProcessState); ru != nil {
		report.User = ru.GetUtime()
		report.Sys = ru.GetStime()
	}

	if ctx.Bool("json") {
		printJson(&report)
	} else {
		logger.Debugf("epoch %s, finished at %s", ck.Epoch(), ck)
		fmt.Fprintf(os.Stderr, "real\t%.6f\nuser\t%.6f\nsys\t%.6f\n",
			report.Real, report.User, report.Sys)
	}
	if report.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", args[0], report.ExitCode)
	}
	return nil
}
