package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/py2cpp-go/core/app"
	"github.com/py2cpp-go/core/internal/analyzer"
	"github.com/py2cpp-go/core/internal/config"
	"github.com/py2cpp-go/core/internal/symbol"
	"github.com/py2cpp-go/core/service"
)

// NewCheckCmd builds `pyscn check <dir>`: it analyzes every Python
// module under dir concurrently (spec §5: "each session owns its own
// EntryNavigator/NodeQuery/SymbolTable"), and reports every module
// whose symbol table could not be built cleanly.
func NewCheckCmd() *cobra.Command {
	var (
		configPath string
		recursive  bool
	)

	cmd := &cobra.Command{
		Use:   "check <dir>",
		Short: "Build the symbol table for every module under a directory",
		Long: `check resolves every Python file under dir, analyzes each as an
independent module, and reports each module that could not be read,
parsed, or turned into a symbol table. Building a symbol table does not
fail on an unresolved name or a rejected operator, so SymbolUnresolved
and OperationNotAllowed are not reported by this command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], configPath, recursive)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "Recurse into subdirectories")
	return cmd
}

func runCheck(cmd *cobra.Command, dir, configPath string, recursive bool) error {
	cfg, err := config.LoadConfigWithTarget(configPath, dir)
	if err != nil {
		return err
	}

	fileReader := service.NewFileReader()
	files, err := app.ResolveFilePaths(fileReader, []string{dir}, recursive, nil, nil, false)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no Python files found under %s\n", dir)
		return nil
	}

	progress := service.NewProgressManager()
	progress.SetWriter(cmd.ErrOrStderr())
	progress.Initialize(len(files))
	defer progress.Close()

	executor := service.NewParallelExecutor()
	primitives := symbol.NewPrimitives(!cfg.Strict)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := analyzer.AnalyzeAll(ctx, executor, files, primitives)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, r := range results {
		progress.StartTask(r.File)
		progress.CompleteTask(r.File, r.Err == nil)
		if r.Err == nil {
			continue
		}
		failures++
		fmt.Fprintf(out, "FAIL %s: %v\n", r.File, r.Err)
	}

	fmt.Fprintf(out, "checked %d module(s), %d failure(s)\n", len(results), failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d modules failed to analyze", failures, len(results))
	}
	return nil
}
