// Package cmd provides the CLI commands for netsalary.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"netsalary/internal/config"
	"netsalary/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "netsalary",
	Short: "Calculate net salary from gross salary",
	Long: `netsalary computes an individual's net salary by applying progressive
income tax with tax-point credits, national insurance, health insurance,
and the mandatory pension contribution to a gross salary.

Examples:
  netsalary calculate --gross-salary 10000
  netsalary calculate --gross-salary 10000 --tax-points 3.5
  netsalary calculate --gross-salary 10000 --verbose`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.netsalary.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show the per-deduction trace")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("netsalary version 0.1.0")
	},
}
