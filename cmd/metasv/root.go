package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "metasv",
	Short:   "Convert structural-variant caller output to normalized intervals and VCF",
	Long:    "metasv ingests BreakDancer and Pindel reports and converts each call into a normalized interval record for downstream merging and VCF emission.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newPindel2VCFCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// initConfig reads ~/.metasv.yaml if present. Keys: sample (default
// sample name), reference.fasta (default indexed reference path).
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigFile(filepath.Join(home, ".metasv.yaml"))
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}
