// cmd/countdown.go

package main

import (
	"fmt"
	"time"

	"github.com/ahmed-masud/monotonic-clock/pkg/clock"
	"github.com/ahmed-masud/monotonic-clock/pkg/utils"
	"github.com/urfave/cli/v2"
)

func countdownFlags() *cli.Command {
	return &cli.Command{
		Name:      "countdown",
		Usage:     "count down for the given duration",
		ArgsUsage: "DURATION (e.g. 90s, 5m)",
		Action:    countdown,
	}
}

func countdown(ctx *cli.Context) error {
	setLoggerLevel(ctx)
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("DURATION is needed")
	}
	total, err := time.ParseDuration(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("parse duration %q: %s", ctx.Args().Get(0), err)
	}
	if total <= 0 {
		return fmt.Errorf("duration must be positive")
	}

	ck := clock.New()
	progress, bar := utils.NewProgressBar("countdown", total.Milliseconds(), ctx.Bool("quiet"))
	for {
		elapsed := ck.Now()
		if elapsed >= total {
			bar.SetCurrent(total.Milliseconds())
			break
		}
		bar.SetCurrent(elapsed.Milliseconds())
		time.Sleep(50 * time.Millisecond)
	}
	progress.Wait()
	logger.Infof("%s elapsed, stopped at %s", ck.Stop(), ck)
	return nil
}
