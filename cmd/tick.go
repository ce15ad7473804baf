// cmd/tick.go

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmed-masud/monotonic-clock/pkg/clock"
	"github.com/urfave/cli/v2"
)

func tickFlags() *cli.Command {
	return &cli.Command{
		Name:   "tick",
		Usage:  "print clock readings periodically (SIGUSR1 stops, SIGUSR2 resumes)",
		Action: tick,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Value:   time.Second,
				Usage:   "time between readings",
			},
			&cli.DurationFlag{
				Name:  "for",
				Usage: "exit after this much elapsed time (0 means run until interrupted)",
			},
		},
	}
}

func tick(ctx *cli.Context) error {
	setLoggerLevel(ctx)
	interval := ctx.Duration("interval")
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	limit := ctx.Duration("for")

	ck := clock.New()
	logger.Infof("epoch %s", ck.Epoch())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1, syscall.SIGUSR2)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fmt.Printf("%s\t%s\n", ck.Now(), ck)
			if limit > 0 && ck.Now() >= limit {
				return nil
			}
		case sig := <-sigs:
			switch sig {
			case syscall.SIGUSR1:
				logger.Infof("stopped at %s", ck.Stop())
			case syscall.SIGUSR2:
				logger.Infof("resumed after %s pause", ck.Resume())
			default:
				return nil
			}
		}
	}
}
