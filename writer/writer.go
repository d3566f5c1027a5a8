package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hlmerscher/simplelang-go/config"
	"github.com/hlmerscher/simplelang-go/symbols"
)

// Output writes one assembly line per text line.
func Output(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

type symbolMap struct {
	Symbols []symbols.Entry `toml:"symbols" yaml:"symbols"`
}

// Symbols writes the memory map of a compilation.
func Symbols(out io.Writer, entries []symbols.Entry, format config.Format) error {
	value := symbolMap{Symbols: entries}

	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encoding symbols as YAML: %w", err)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(out).Encode(value); err != nil {
			return fmt.Errorf("encoding symbols as TOML: %w", err)
		}
	}
	return nil
}
