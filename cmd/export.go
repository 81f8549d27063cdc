package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/enersim/config"
	"github.com/kilianp07/enersim/core/simulation"
	"github.com/kilianp07/enersim/infra/logger"
	"github.com/kilianp07/enersim/pkg/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the table and write it to stdout",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: csv or json")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tab, err := simulation.New(cfg.Simulation, logger.NewWithLevel("export", cfg.Logging.Level)).Run()
	if err != nil {
		return fmt.Errorf("generate series: %w", err)
	}
	if err := tab.Validate(cfg.Simulation.FossilCapacityFloorGW, cfg.Simulation.RenewableCostFloor); err != nil {
		return fmt.Errorf("table invariant: %w", err)
	}
	switch exportFormat {
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), tab)
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), tab)
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
}
