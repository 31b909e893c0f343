// Package mcp exposes the C1-C5 query/inference pipeline as MCP tools
// for editor/agent integration (SPEC_FULL.md's MCP server section),
// grounded on the teacher's mcp/dependencies.go + mcp/tools.go, slimmed
// to the two tools this core's domain supports.
package mcp

import (
	"github.com/py2cpp-go/core/internal/config"
	"github.com/py2cpp-go/core/internal/symbol"
)

// Dependencies aggregates the shared configuration MCP handlers need.
type Dependencies struct {
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{config: cfg, configPath: configPath}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config { return d.config }

// ConfigPath returns the configured config file path (may be empty to
// trigger discovery).
func (d *Dependencies) ConfigPath() string { return d.configPath }

// Primitives builds the shared primitive-library table, honoring the
// configured strictness (spec §9's Unknown-sentinel open question).
func (d *Dependencies) Primitives() *symbol.Table {
	return symbol.NewPrimitives(!d.config.Strict)
}
