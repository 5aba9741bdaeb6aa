package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
)

var (
	logLevel  string
	maxCycles uint64
)

func init() {
	cmd.PersistentFlags().StringVar(&logLevel, "level", "error", "logging level")
	cmd.PersistentFlags().Uint64Var(&maxCycles, "max-cycles", core.DefaultMaxCycles,
		"cycle ceiling for one transaction")
	cmd.AddCommand(cmdVerify, cmdInspect)
}

var cmd = &cobra.Command{
	Use:           "cellvm",
	Short:         "verify cell transactions against the builtin guards",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cmdVerify = &cobra.Command{
	Use:   "verify <tx.bin>",
	Short: "run every script group of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		return runVerify(afero.NewOsFs(), cmd.OutOrStdout(), logger, args[0], maxCycles)
	},
}

var cmdInspect = &cobra.Command{
	Use:   "inspect <tx.bin>",
	Short: "print the script groups of a transaction without running them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		return runInspect(afero.NewOsFs(), cmd.OutOrStdout(), logger, args[0])
	},
}

func newLogger() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(logLevel))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		if code, ok := core.ExitCode(err); ok {
			os.Exit(int(code))
		}
		os.Exit(1)
	}
}
