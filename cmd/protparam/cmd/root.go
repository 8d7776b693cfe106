// Package cmd contains the CLI commands for protparam.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yumyai/protparam/logger"
	"go.uber.org/zap/zapcore"
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0"

// NewRootCmd builds the command tree with its own viper instance, so every
// invocation (and every test) starts from clean flags and settings.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "protparam",
		Short: "Compute physico-chemical parameters of protein sequences",
		Long: `protparam computes molecular weight, theoretical pI, amino acid and
atomic composition, extinction coefficients, instability index, aliphatic
index, GRAVY and aromaticity for protein sequences.

Example:
  protparam analyze GIVEQCCTSICSLYQLENYCN
  protparam analyze --fasta proteins.fasta --format json
  cat proteins.fasta | protparam analyze --fasta -`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	v.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newAnalyzeCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	err := NewRootCmd().Execute()
	logger.Sync()
	return err
}

// initConfig reads the optional config file and PROTPARAM_* variables,
// then sets up logging on stderr.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	v.SetEnvPrefix("PROTPARAM")
	v.AutomaticEnv()

	level := zapcore.WarnLevel
	if v.GetBool("verbose") {
		level = zapcore.DebugLevel
	}
	if err := logger.InitLogger(level); err != nil {
		fmt.Fprintln(os.Stderr, "Error setting up logger:", err)
	}
	return nil
}
