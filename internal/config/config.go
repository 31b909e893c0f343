// Package config loads the core's runtime configuration, trimmed to
// the options spec §6 names: the CST grammar/parser backend and the
// module-loader's search roots. Kept on the teacher's stack
// (spf13/viper + pelletier/go-toml/v2, with a YAML fallback), per
// SPEC_FULL.md's AMBIENT STACK section.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
)

// Config is the core's runtime configuration. Output.Directory is only
// read from and written to config files; no command and no part of the
// C1-C5 core uses it.
type Config struct {
	GrammarPath     string   `toml:"grammar_path" yaml:"grammar_path" mapstructure:"grammar_path"`
	StartRule       string   `toml:"start_rule" yaml:"start_rule" mapstructure:"start_rule"`
	ParserAlgorithm string   `toml:"parser_algorithm" yaml:"parser_algorithm" mapstructure:"parser_algorithm"`
	CacheDir        string   `toml:"cache_dir" yaml:"cache_dir" mapstructure:"cache_dir"`
	LibraryPaths    []string `toml:"library_paths" yaml:"library_paths" mapstructure:"library_paths"`
	Strict          bool     `toml:"strict" yaml:"strict" mapstructure:"strict"`

	Output struct {
		Directory string `toml:"directory" yaml:"directory" mapstructure:"directory"`
	} `toml:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfigTOML is written out by `pyscn init`.
const DefaultConfigTOML = `# pyscn configuration
# grammar_path is optional: leave empty to use the bundled tree-sitter
# Python grammar.
grammar_path = ""
start_rule = "module"
parser_algorithm = "tree-sitter"
cache_dir = ".pyscn/cache"
strict = false

# library_paths lists the root directories searched, in order, when
# resolving a dotted import to a module file.
library_paths = ["."]

[output]
directory = ".pyscn/reports"
`

// DefaultConfig returns the built-in defaults, equivalent to parsing
// DefaultConfigTOML.
func DefaultConfig() *Config {
	cfg := &Config{
		StartRule:       "module",
		ParserAlgorithm: "tree-sitter",
		CacheDir:        ".pyscn/cache",
		LibraryPaths:    []string{"."},
	}
	cfg.Output.Directory = ".pyscn/reports"
	return cfg
}

// LoadConfig reads configuration from configPath (TOML or YAML, by
// extension), falling back to discovering `.pyscn.toml`/`.pyscn.yaml`
// in the current directory, and finally to DefaultConfig when neither
// is present.
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, ".")
}

// LoadConfigWithTarget is LoadConfig, searching near targetPath when
// configPath is empty (so `pyscn check some/dir` picks up a config
// file that lives alongside the analyzed project).
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := configPath
	if path == "" {
		path = discoverConfigFile(targetPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func discoverConfigFile(targetPath string) string {
	dir := targetPath
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(targetPath)
	}
	for _, name := range []string{".pyscn.toml", ".pyscn.yaml", ".pyscn.yml"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// NewViper returns a viper instance preconfigured with this config's
// defaults and PYSCN_-prefixed environment-variable overrides layered on
// top of the file. The CLI and the MCP server load through
// LoadConfig/LoadConfigWithTarget and do not call it.
func NewViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PYSCN")
	v.AutomaticEnv()
	v.SetDefault("start_rule", "module")
	v.SetDefault("parser_algorithm", "tree-sitter")
	v.SetDefault("cache_dir", ".pyscn/cache")
	v.SetDefault("library_paths", []string{"."})
	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	return v
}
