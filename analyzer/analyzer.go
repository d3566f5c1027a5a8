package analyzer

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/hlmerscher/simplelang-go/tokenizer"
)

const (
	FormatText = "text"
	FormatXML  = "xml"
)

var Formats = []string{FormatText, FormatXML}

type tokensWrapper struct {
	XMLName xml.Name `xml:"tokens"`
	Tokens  []tokenizer.Token
}

// Tokens dumps every token of input, up to but excluding EOF, to out.
func Tokens(input io.Reader, out io.Writer, format string, opts ...tokenizer.Option) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown token format %q, want one of %v", format, Formats)
	}

	tk := tokenizer.New(input, opts...)
	tw := tokensWrapper{Tokens: make([]tokenizer.Token, 0)}
	for {
		token, err := tk.Advance()
		if err != nil {
			return err
		}
		if token.Type == tokenizer.EOF {
			break
		}

		tw.Tokens = append(tw.Tokens, token)
	}

	if format == FormatText {
		for _, token := range tw.Tokens {
			if _, err := fmt.Fprintln(out, token); err != nil {
				return err
			}
		}
		return nil
	}

	result, err := xml.MarshalIndent(tw, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", result)
	return err
}
