package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/py2cpp-go/core/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pyscn",
	Short: "A Python-to-C++ transpiler's semantic analysis core",
	Long: `pyscn resolves a Python source file's full CST into a polymorphic AST,
builds its scoped symbol table, and answers type-inference and
structural queries against it — the EntryNavigator/NodeRegistry/
NodeQuery/SymbolTable pipeline a transpiler's code-generation stage
sits on top of.`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewTypeCmd())
	rootCmd.AddCommand(NewAstCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
