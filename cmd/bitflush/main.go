package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	componentKey  = "component"
	clicksKey     = "clicks"
	verboseKey    = "verbose"
	metricsKey    = "metrics"
	itersKey      = "iters"
	cpuProfileKey = "cpuprofile"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "bitflush",
		Usage: "Drive dirty-bit components on an in-memory document",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Mount a demo component and replay a click script",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  componentKey,
						Usage: "Component to mount (colorpicker, counter)",
						Value: "colorpicker",
					},
					&cli.StringFlag{
						Name:  clicksKey,
						Usage: "Comma separated bursts; join buttons clicked in one burst with +",
						Value: "yellow,yellow,red+blue",
					},
					&cli.BoolFlag{
						Name:  verboseKey,
						Usage: "Log every write, not just flushes",
					},
					&cli.BoolFlag{
						Name:  metricsKey,
						Usage: "Print collected metrics when done",
						Value: true,
					},
				},
				Action: run,
			},
			{
				Name:  "bench",
				Usage: "Measure write and flush latency",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  itersKey,
						Usage: "Bursts measured per case",
						Value: 1000,
					},
					&cli.StringFlag{
						Name:  cpuProfileKey,
						Usage: "Write a CPU profile to this file",
					},
				},
				Action: bench,
			},
		},
	}
}
