package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/py2cpp-go/core/internal/analyzer"
	"github.com/py2cpp-go/core/internal/config"
	"github.com/py2cpp-go/core/internal/symbol"
)

// NewAstCmd builds `pyscn ast <file> <path>`: it resolves the node
// addressed by path and dumps it and its direct children (via
// NodeQuery.Expand, spec §4.4), one per line.
func NewAstCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ast <file> <path>",
		Short: "Dump the resolved node and its children",
		Long: `ast parses a single Python file and prints the node addressed by path,
followed by its expanded children, each tagged with its own full-path
address.

Pass "module" as path to dump the whole file from its root.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAst(cmd, args[0], args[1], configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	return cmd
}

func runAst(cmd *cobra.Command, file, path, configPath string) error {
	cfg, err := config.LoadConfigWithTarget(configPath, file)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	primitives := symbol.NewPrimitives(!cfg.Strict)
	session, err := analyzer.Analyze(cmd.Context(), "__main__", source, primitives)
	if err != nil {
		return err
	}

	target, err := session.Query.By(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", target.FullPath(), target.Tag())

	children, err := session.Query.Expand(path)
	if err != nil {
		return err
	}
	for _, c := range children {
		fmt.Fprintf(out, "  %s (%s)\n", c.FullPath(), c.Tag())
	}
	return nil
}
