package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchcmp/internal/config"
	"benchcmp/internal/telemetry"
)

var exit = os.Exit
var cfgFile string
var logFile string

// errUsage signals an invocation without input paths. Execute maps it to
// exit status 2 after the usage line has been printed.
var errUsage = errors.New("no input paths")

// rootCmd represents the base command; the report runs directly on it.
var rootCmd = &cobra.Command{
	Use:   "benchcmp <json...>",
	Short: "Compare benchmark results across implementations and targets",
	Long: `benchcmp reads JSON files of benchmark result records, groups them by
scenario, and prints a fixed-width comparison table per scenario with
ratio lines against a reference implementation.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runReport,
}

// Execute runs the root command and maps errors to exit codes.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			exit(2)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs (JSON) to this file")
	rootCmd.Flags().String("color", "auto", "Colorize headers and ratio lines (auto, always, never)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), logFile)
}
