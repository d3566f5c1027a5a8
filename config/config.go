package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hlmerscher/simplelang-go/limits"
)

// Config holds the settings of one compiler invocation.
type Config struct {
	Limits             limits.Limits `toml:"limits" yaml:"limits"`
	StrictDeclarations bool          `toml:"strict_declarations" yaml:"strict_declarations"`
	Trace              bool          `toml:"trace" yaml:"trace"`
	OutputExt          string        `toml:"output_ext" yaml:"output_ext"`
}

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// Default returns the configuration matching the reference compiler.
func Default() Config {
	return Config{
		Limits:    limits.Default(),
		OutputExt: ".asm",
	}
}

// Load reads path over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := parseContent(content, DetectFormat(path), &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Limits.MaxSymbols <= 0:
		return fmt.Errorf("limits.max_symbols must be positive, got %d", c.Limits.MaxSymbols)
	case c.Limits.MaxLines <= 0:
		return fmt.Errorf("limits.max_lines must be positive, got %d", c.Limits.MaxLines)
	case c.Limits.MaxTokenLen < 0:
		return fmt.Errorf("limits.max_token_len must not be negative, got %d", c.Limits.MaxTokenLen)
	case c.Limits.BaseAddress < 0:
		return fmt.Errorf("limits.base_address must not be negative, got %d", c.Limits.BaseAddress)
	case c.OutputExt == "":
		return fmt.Errorf("output_ext must not be empty")
	}
	return nil
}
