// Package suitectl implements the operator CLI for the suited daemon.
package suitectl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"suited/pkg/types"
)

// Execute parses args and runs the suitectl command tree.
func Execute(args []string) error {
	root := buildRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// buildRootCmd constructs the Cobra command tree wired to the daemon client.
func buildRootCmd() *cobra.Command {
	addr := "http://localhost:8080"
	if v := os.Getenv("SUITED_URL"); v != "" {
		addr = v
	}

	root := &cobra.Command{
		Use:           "suitectl",
		Short:         "Operate a suited daemon over its HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", addr, "Base URL of the suited daemon (defaults SUITED_URL)")
	client := func() *Client { return NewClient(addr) }

	statusCmd := &cobra.Command{Use: "status", Short: "Show global coordinator status", RunE: func(cmd *cobra.Command, args []string) error {
		st, err := client().Status()
		if err != nil {
			return err
		}
		return printJSON(st)
	}}

	suitesCmd := &cobra.Command{Use: "suites", Short: "List registered suite configs", RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client().Suites()
		if err != nil {
			return err
		}
		return printJSON(out)
	}}

	showCmd := &cobra.Command{Use: "show <suite>", Short: "Show per-suite status", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		st, err := client().SuiteStatus(args[0])
		if err != nil {
			return err
		}
		return printJSON(st)
	}}

	registerCmd := &cobra.Command{Use: "register <config.json>", Short: "Register a suite config from a JSON file", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var cfg types.SuiteConfig
		if err := json.Unmarshal(b, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if err := client().Register(cfg); err != nil {
			return err
		}
		fmt.Printf("registered %s\n", cfg.Name)
		return nil
	}}

	var force bool
	loadCmd := &cobra.Command{Use: "load <suite>", Short: "Load a suite", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		st, err := client().Load(args[0], force)
		if err != nil {
			return err
		}
		return printJSON(st)
	}}
	loadCmd.Flags().BoolVar(&force, "force", false, "Reload even if the suite is already active")

	unloadCmd := &cobra.Command{Use: "unload <suite>", Short: "Unload a suite", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		if err := client().Unload(args[0]); err != nil {
			return err
		}
		fmt.Printf("unloaded %s\n", args[0])
		return nil
	}}

	checkoutCmd := &cobra.Command{Use: "checkout <suite>", Short: "Pin an active suite against eviction", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return client().Checkout(args[0])
	}}

	releaseCmd := &cobra.Command{Use: "release <suite>", Short: "Drop one checkout from a suite", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		return client().Release(args[0])
	}}

	optimizeCmd := &cobra.Command{Use: "optimize", Short: "Evict beyond-capacity suites and sweep redundant components", RunE: func(cmd *cobra.Command, args []string) error {
		report, err := client().Optimize()
		if err != nil {
			return err
		}
		return printJSON(report)
	}}

	cleanupCmd := &cobra.Command{Use: "cleanup", Short: "Unload every active suite", RunE: func(cmd *cobra.Command, args []string) error {
		report, err := client().Cleanup()
		if err != nil {
			return err
		}
		return printJSON(report)
	}}

	root.AddCommand(statusCmd, suitesCmd, showCmd, registerCmd, loadCmd, unloadCmd, checkoutCmd, releaseCmd, optimizeCmd, cleanupCmd)
	return root
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
