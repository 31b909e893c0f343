package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/py2cpp-go/core/internal/version"
)

// NewVersionCmd builds `pyscn version`, printing either the full
// build metadata or (with --short) just the version string, which
// scripts can capture without parsing the long form.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display pyscn's version, build commit, build date, Go version, and
platform. Pass --short to print only the version number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}
