// Package clicommon wires the shared logging flags into every stackforge
// command.
package clicommon

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/stackforge/stackforge/pkg/logging"
)

type CommonConfig struct {
	verbose bool
	jsonLog bool
}

// RegisterFlags adds the shared flags to a flag set.
func RegisterFlags(flags *pflag.FlagSet, commonCfg *CommonConfig) {
	flags.BoolVarP(&commonCfg.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&commonCfg.jsonLog, "json-log", false, "Enable JSON logging")
}

// SetupRoot registers the shared flags on the root command and installs the
// global logger around every run.
func SetupRoot(root *cobra.Command, commonCfg *CommonConfig) {
	RegisterFlags(root.PersistentFlags(), commonCfg)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logOpts := logging.LogOpts{
			Verbose: commonCfg.verbose,
		}
		if commonCfg.jsonLog {
			logOpts.Encoding = "json"
		}
		zap.ReplaceGlobals(logOpts.NewLogger())
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		zap.L().Sync() //nolint:errcheck
	}
}
