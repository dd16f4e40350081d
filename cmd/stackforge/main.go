package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackforge/stackforge/pkg/clicommon"
	"github.com/stackforge/stackforge/pkg/config"
	"github.com/stackforge/stackforge/pkg/synth"
)

var commonCfg struct {
	clicommon.CommonConfig
	showSensitive bool
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "stackforge",
		Short: "Resolve, wire, and synthesize a cloud stack from declarative properties",
	}
	clicommon.SetupRoot(rootCmd, &commonCfg.CommonConfig)

	var synthCommand = &cobra.Command{
		Use:   "synth [properties file]",
		Short: "Run the full pipeline and print the stack's output bindings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return synthCmd(args)
		},
	}
	synthCommand.Flags().BoolVar(&commonCfg.showSensitive, "show-sensitive", false, "Print sensitive output values in clear")

	var graphCommand = &cobra.Command{
		Use:   "graph [properties file]",
		Short: "Print the module construction order without synthesizing outputs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return graphCmd(args)
		},
	}

	rootCmd.AddCommand(synthCommand)
	rootCmd.AddCommand(graphCommand)

	return rootCmd
}

func run(args []string) (*synth.Result, error) {
	var (
		props config.Properties
		err   error
	)
	if len(args) > 0 {
		props, err = config.ReadProperties(args[0])
		if err != nil {
			return nil, err
		}
	}
	return synth.Run(synth.Request{
		Properties: props,
		Overrides:  config.EnvOverrides,
	})
}

func synthCmd(args []string) error {
	result, err := run(args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, b := range result.Bindings {
		value := b.Value
		if b.Sensitive && !commonCfg.showSensitive {
			value = "[sensitive]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, value, b.Description)
	}
	return w.Flush()
}

func graphCmd(args []string) error {
	result, err := run(args)
	if err != nil {
		return err
	}
	for i, name := range result.Stack.Order() {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
