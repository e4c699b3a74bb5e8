package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func simFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "stock",
			Usage: "Replenishment order quantity Q",
			Value: 1000,
		},
		&cli.IntFlag{
			Name:  "lead-time",
			Usage: "Days between order placement and arrival",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "Simulation horizon in days (1-365)",
			Value: 30,
		},
		&cli.StringFlag{
			Name:  "scenario",
			Usage: "Demand scenario: normal, promo, holiday, economic_downturn",
			Value: "normal",
		},
		&cli.Float64Flag{
			Name:  "demand",
			Usage: "Baseline average daily demand",
			Value: 500,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Random seed for a reproducible run (0 = time-based)",
			Value: 0,
		},
	}
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "invsim",
		Usage: "Run (Q, r) inventory policy simulations from the command line",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a single simulation and print the result",
				Flags: append(simFlags(),
					&cli.StringFlag{
						Name:  "ledger-csv",
						Usage: "Write the day-by-day ledger to this CSV file",
					},
				),
				Action: runSimulation,
			},
			{
				Name:  "sweep",
				Usage: "Simulate a range of replenishment quantities and compare KPIs",
				Flags: append(simFlags(),
					&cli.IntFlag{
						Name:  "qty-min",
						Usage: "Lowest replenishment quantity to try",
						Value: 200,
					},
					&cli.IntFlag{
						Name:  "qty-max",
						Usage: "Highest replenishment quantity to try",
						Value: 2000,
					},
					&cli.IntFlag{
						Name:  "qty-step",
						Usage: "Step between quantities",
						Value: 100,
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "CSV file for the sweep results",
						Value: "sweep.csv",
					},
				),
				Action: runSweep,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
