package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/andresuchdata/invsim/internal/domain"
	"github.com/andresuchdata/invsim/internal/service"
	"github.com/urfave/cli/v2"
)

func inputFromFlags(c *cli.Context) service.SimulationInput {
	input := service.SimulationInput{
		Qty:      c.Int("stock"),
		LeadTime: c.Int("lead-time"),
		Days:     c.Int("days"),
		Scenario: c.String("scenario"),
		Demand:   c.Float64("demand"),
	}

	if seed := c.Int64("seed"); seed != 0 {
		input.Seed = &seed
	}

	return input
}

func runSimulation(c *cli.Context) error {
	svc := service.NewSimulationService(nil)

	result, err := svc.Run(context.Background(), inputFromFlags(c))
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if path := c.String("ledger-csv"); path != "" {
		if err := writeLedgerCSV(path, result.History); err != nil {
			return fmt.Errorf("failed to write ledger: %w", err)
		}
		fmt.Fprintf(c.App.Writer, "ledger written to %s\n", path)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(out))

	return nil
}

func writeLedgerCSV(path string, history []domain.DayRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "demand", "stock", "unmet", "inventory_position"}); err != nil {
		return err
	}

	for _, rec := range history {
		row := []string{
			strconv.Itoa(rec.Day),
			strconv.Itoa(rec.Demand),
			strconv.Itoa(rec.Stock),
			strconv.Itoa(rec.Unmet),
			strconv.Itoa(rec.InventoryPosition),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
