// cmd/main.go

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ahmed-masud/monotonic-clock/pkg/utils"
	"github.com/ahmed-masud/monotonic-clock/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = utils.GetLogger("mclock")

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print only the version",
	}
	app := &cli.App{
		Name:                 "mclock",
		Usage:                "a pausable monotonic stopwatch anchored to wall-clock time",
		Version:              version.Version(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug", "v"},
				Usage:   "enable debug log",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only warning and errors",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "log to the specified file",
			},
		},
		Commands: []*cli.Command{
			runFlags(),
			benchFlags(),
			countdownFlags(),
			tickFlags(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}

func setLoggerLevel(c *cli.Context) {
	if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	}
	if logfile := c.String("log"); logfile != "" {
		utils.SetOutFile(logfile)
	}
}

func printJson(v interface{}) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatalf("json: %s", err)
	}
	fmt.Println(string(output))
}
