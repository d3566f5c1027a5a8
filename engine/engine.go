package engine

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/hlmerscher/simplelang-go/asm"
	"github.com/hlmerscher/simplelang-go/config"
	"github.com/hlmerscher/simplelang-go/symbols"
	"github.com/hlmerscher/simplelang-go/tokenizer"
)

// Result is the output of a successful compilation.
type Result struct {
	Lines   []string
	Symbols []symbols.Entry
}

// Compile translates SimpleLang source into assembly lines. Each call uses
// fresh state, so concurrent calls are safe as long as they do not share
// input. On error no result is returned.
func Compile(input io.Reader, cfg config.Config, opts ...tokenizer.Option) (*Result, error) {
	opts = append([]tokenizer.Option{tokenizer.WithMaxTokenLen(cfg.Limits.MaxTokenLen)}, opts...)

	listing := asm.NewListing(cfg.Limits.MaxLines)
	table := symbols.NewTable(cfg.Limits)

	c := New(tokenizer.New(input, opts...), table, asm.New(listing))
	c.Strict = cfg.StrictDeclarations

	if err := c.Program(); err != nil {
		return nil, err
	}

	return &Result{
		Lines:   listing.Lines(),
		Symbols: table.Entries(),
	}, nil
}

// expect advances and fails with a SyntaxError for ctx unless the token is
// one of types.
func (c *Compiler) expect(ctx Context, types ...tokenizer.TokenType) (tokenizer.Token, error) {
	token, err := c.tk.Advance()
	if err != nil {
		return tokenizer.EmptyToken, err
	}
	if !is(token, types...) {
		return token, syntaxError(ctx, token)
	}
	return token, nil
}

func is(token tokenizer.Token, types ...tokenizer.TokenType) bool {
	return slices.Contains(types, token.Type)
}
