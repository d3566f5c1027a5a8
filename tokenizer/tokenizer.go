package tokenizer

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Observer is notified of every token the tokenizer scans.
type Observer func(Token)

type Option func(*Tokenizer)

// WithMaxTokenLen truncates identifier and number text to n characters.
// Zero leaves it unbounded.
func WithMaxTokenLen(n int) Option {
	return func(tk *Tokenizer) {
		tk.maxLen = n
	}
}

func WithObserver(fn Observer) Option {
	return func(tk *Tokenizer) {
		tk.observer = fn
	}
}

func New(input io.Reader, opts ...Option) *Tokenizer {
	source, ok := input.(io.RuneScanner)
	if !ok {
		source = bufio.NewReader(input)
	}

	tk := &Tokenizer{
		input:   source,
		LineNr:  1,
		Current: EmptyToken,
	}
	for _, opt := range opts {
		opt(tk)
	}
	return tk
}

type Tokenizer struct {
	input    io.RuneScanner
	maxLen   int
	observer Observer
	pending  *Token

	LineNr  int
	Current Token
}

// Advance returns the pushed-back token if one is pending, otherwise the
// next token from the input. At end of input it keeps returning EOF.
func (tk *Tokenizer) Advance() (Token, error) {
	if tk.pending != nil {
		tk.Current = *tk.pending
		tk.pending = nil
		return tk.Current, nil
	}

	token, err := tk.scan()
	if err != nil {
		return EmptyToken, err
	}
	if tk.observer != nil {
		tk.observer(token)
	}
	tk.Current = token

	return token, nil
}

// Pushback makes token the result of the next Advance. Only one token can
// be pending; pushing back a second one is a bug in the caller.
func (tk *Tokenizer) Pushback(token Token) {
	if tk.pending != nil {
		panic("tokenizer: pushback with a token already pending")
	}
	tk.pending = &token
}

func (tk *Tokenizer) scan() (Token, error) {
	c, err := tk.skipWhitespace()
	if errors.Is(err, io.EOF) {
		return Token{Type: EOF, Line: tk.LineNr}, nil
	}
	if err != nil {
		return EmptyToken, err
	}

	line := tk.LineNr
	switch {
	case isLetter(c):
		raw, err := tk.consume(c, isAlphanumeric)
		if err != nil {
			return EmptyToken, err
		}
		if typ, ok := keywords[raw]; ok {
			return Token{Type: typ, Raw: raw, Line: line}, nil
		}
		return Token{Type: IDENTIFIER, Raw: raw, Line: line}, nil

	case isDigit(c):
		raw, err := tk.consume(c, isDigit)
		if err != nil {
			return EmptyToken, err
		}
		return Token{Type: NUMBER, Raw: raw, Line: line}, nil
	}

	return tk.symbol(c, line)
}

func (tk *Tokenizer) symbol(c rune, line int) (Token, error) {
	if c == '=' {
		next, err := tk.readChar()
		if err != nil && !errors.Is(err, io.EOF) {
			return EmptyToken, err
		}
		if err == nil && next == '=' {
			return Token{Type: EQUAL, Raw: "==", Line: line}, nil
		}
		if err == nil {
			if err := tk.unreadChar(next); err != nil {
				return EmptyToken, err
			}
		}
		return Token{Type: ASSIGN, Raw: "=", Line: line}, nil
	}

	if typ, ok := punctuation[c]; ok {
		return Token{Type: typ, Raw: string(c), Line: line}, nil
	}
	return Token{Type: UNKNOWN, Raw: string(c), Line: line}, nil
}

// consume reads the rest of a lexeme starting with first. Characters past
// the length bound are read but dropped.
func (tk *Tokenizer) consume(first rune, accept func(rune) bool) (string, error) {
	var raw strings.Builder
	raw.WriteRune(first)
	n := 1

	for {
		c, err := tk.readChar()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if !accept(c) {
			if err := tk.unreadChar(c); err != nil {
				return "", err
			}
			break
		}
		if tk.maxLen == 0 || n < tk.maxLen {
			raw.WriteRune(c)
			n++
		}
	}

	return raw.String(), nil
}

func (tk *Tokenizer) skipWhitespace() (rune, error) {
	for {
		c, err := tk.readChar()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

func (tk *Tokenizer) readChar() (rune, error) {
	c, _, err := tk.input.ReadRune()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		tk.LineNr++
	}
	return c, nil
}

func (tk *Tokenizer) unreadChar(c rune) error {
	if c == '\n' {
		tk.LineNr--
	}
	return tk.input.UnreadRune()
}

func isLetter(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c rune) bool {
	return isLetter(c) || isDigit(c)
}
