// Package cmd - calculate command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"netsalary/core/pipeline"
	"netsalary/internal/config"
	"netsalary/internal/logging"
)

var (
	grossSalary int64
	taxPoints   float64
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate net salary for a gross salary",
	Long: `Apply the configured deduction rules to a gross salary and print
the resulting net salary.

With --verbose, each rule's deduction is printed before the total.

Examples:
  netsalary calculate --gross-salary 10000
  netsalary calculate --gross-salary 10000 --tax-points 3.5`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().Int64Var(&grossSalary, "gross-salary", 0, "gross salary amount")
	calculateCmd.Flags().Float64Var(&taxPoints, "tax-points", 2.25, "tax point count for the income tax credit")
	_ = calculateCmd.MarkFlagRequired("gross-salary")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	points := decimal.NewFromFloat(taxPoints)
	if !cmd.Flags().Changed("tax-points") {
		points = decimal.NewFromFloat(cfg.Calculation.TaxPoints)
	}

	pipe, err := pipeline.FromConfig(cfg, points)
	if err != nil {
		return err
	}

	result := pipe.Calculate(decimal.NewFromInt(grossSalary))

	logging.Info("------------------------------------")
	logging.Info(fmt.Sprintf("Net salary: %s", result.Net.StringFixed(2)))
	return nil
}
