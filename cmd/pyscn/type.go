package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/py2cpp-go/core/internal/analyzer"
	"github.com/py2cpp-go/core/internal/config"
	"github.com/py2cpp-go/core/internal/node"
	"github.com/py2cpp-go/core/internal/symbol"
)

// NewTypeCmd builds `pyscn type <file> <path>`: it resolves the
// expression addressed by path (spec §4's full-path addressing
// scheme) within file and prints its inferred type's domain ID (spec
// §4.5.3's expression-inference engine).
func NewTypeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "type <file> <path>",
		Short: "Resolve the inferred type of one expression",
		Long: `type parses a single Python file, builds its symbol table, and resolves
the full-path-addressed expression's inferred type.

path is the dotted full-path address of the target node (e.g.
"module.function_definition[0].block.return_statement.identifier"),
the same addressing scheme "ast" prints.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runType(cmd, args[0], args[1], configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	return cmd
}

func runType(cmd *cobra.Command, file, path, configPath string) error {
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
	scope, err := node.Scope(session.Query, path)
	if err != nil {
		return err
	}

	row, err := symbol.ResultOf(session.Table, session.Query, scope, session.ModulePath, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, row.DomainID)
	return nil
}
