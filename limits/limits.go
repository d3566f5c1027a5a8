package limits

import "fmt"

const (
	DefaultMaxSymbols  = 100
	DefaultMaxLines    = 1000
	DefaultMaxTokenLen = 99
	DefaultBaseAddress = 16
)

// Limits bounds a single compilation. Addresses below BaseAddress are
// reserved by the target machine.
type Limits struct {
	MaxSymbols  int `toml:"max_symbols" yaml:"max_symbols"`
	MaxLines    int `toml:"max_lines" yaml:"max_lines"`
	MaxTokenLen int `toml:"max_token_len" yaml:"max_token_len"` // 0 means unbounded
	BaseAddress int `toml:"base_address" yaml:"base_address"`
}

func Default() Limits {
	return Limits{
		MaxSymbols:  DefaultMaxSymbols,
		MaxLines:    DefaultMaxLines,
		MaxTokenLen: DefaultMaxTokenLen,
		BaseAddress: DefaultBaseAddress,
	}
}

// CapacityError reports that a compilation outgrew one of its limits.
// It is always fatal.
type CapacityError struct {
	Resource string
	Limit    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: too many %s (limit %d)", e.Resource, e.Limit)
}
