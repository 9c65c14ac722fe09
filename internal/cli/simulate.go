package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rose/internal/inventory"
	"github.com/mesh-intelligence/rose/internal/report"
	"github.com/mesh-intelligence/rose/internal/simulate"
	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the inventory for each simulated day",
		Long: `Simulate prints the inventory at the start of day 0 through --days,
advancing every item once after each day.

The inventory is the built-in sample unless --inventory names a YAML or
JSON file holding a list of {name, sell_in, quality} items.

Example:
  rose simulate --days 5
  rose simulate --inventory stock.yaml --format jsonl`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, a)
		},
	}

	cmd.Flags().Int("days", types.DefaultDays, "last day to print")
	cmd.Flags().String("format", types.DefaultFormat, "output format (text, jsonl, table)")
	cmd.Flags().String("inventory", "", "inventory file (.yaml, .yml, .json)")
	cmd.Flags().Bool("strict", false, "check item preconditions and abort on violation")

	_ = a.v.BindPFlag(cfgKeyDays, cmd.Flags().Lookup("days"))
	_ = a.v.BindPFlag(cfgKeyFormat, cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag(cfgKeyInventory, cmd.Flags().Lookup("inventory"))
	_ = a.v.BindPFlag(cfgKeyStrict, cmd.Flags().Lookup("strict"))

	return cmd
}

func runSimulate(cmd *cobra.Command, a *app) error {
	cfg, err := runConfig(a.v)
	if err != nil {
		return err
	}

	items := inventory.Sample()
	if cfg.Inventory != "" {
		items, err = inventory.Load(cfg.Inventory)
		if err != nil {
			return err
		}
		a.log.Info().Str("path", cfg.Inventory).Int("items", len(items)).Msg("inventory loaded")
	}

	if cfg.Strict {
		if err := rose.CheckAll(items); err != nil {
			return usageError{fmt.Errorf("inventory fails strict checks: %w", err)}
		}
	} else if n := inventory.Validate(items, a.log); n > 0 {
		a.log.Warn().Int("violations", n).Msg("continuing with out-of-range items")
	}

	runID := simulate.NewRunID()
	w, err := report.New(cfg.Format, cmd.OutOrStdout(), runID)
	if err != nil {
		return err
	}

	_, err = simulate.Run(cmd.Context(), rose.NewShop(items), simulate.Options{
		Days:   cfg.Days,
		Strict: cfg.Strict,
	}, w, runID, a.log)
	return err
}
