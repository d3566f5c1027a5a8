package tokenizer

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type TokenType string

const (
	INT        = TokenType("TOKEN_INT")
	IDENTIFIER = TokenType("TOKEN_IDENTIFIER")
	NUMBER     = TokenType("TOKEN_NUMBER")
	ASSIGN     = TokenType("TOKEN_ASSIGN")
	PLUS       = TokenType("TOKEN_PLUS")
	MINUS      = TokenType("TOKEN_MINUS")
	IF         = TokenType("TOKEN_IF")
	EQUAL      = TokenType("TOKEN_EQUAL")
	LPAREN     = TokenType("TOKEN_LPAREN")
	RPAREN     = TokenType("TOKEN_RPAREN")
	LBRACE     = TokenType("TOKEN_LBRACE")
	RBRACE     = TokenType("TOKEN_RBRACE")
	SEMICOLON  = TokenType("TOKEN_SEMICOLON")
	EOF        = TokenType("TOKEN_EOF")
	UNKNOWN    = TokenType("TOKEN_UNKNOWN")
)

// Name is the type without its TOKEN_ prefix, as used in diagnostics.
func (tt TokenType) Name() string {
	return strings.TrimPrefix(string(tt), "TOKEN_")
}

var keywords = map[string]TokenType{
	"int": INT,
	"if":  IF,
}

var punctuation = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMICOLON,
}

// xmlElements names the element each token type is dumped as.
var xmlElements = map[TokenType]string{
	INT:        "keyword",
	IF:         "keyword",
	IDENTIFIER: "identifier",
	NUMBER:     "integerConstant",
	EOF:        "eof",
	UNKNOWN:    "unknown",
}

type Token struct {
	Type TokenType
	Raw  string
	Line int
}

var EmptyToken = Token{}

// String renders the token in trace form, e.g. Token: TOKEN_INT ('int').
func (t Token) String() string {
	return fmt.Sprintf("Token: %s ('%s')", t.Type, t.Raw)
}

// Describe renders the token for error messages.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Type.Name(), t.Raw)
}

func (t Token) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	name, ok := xmlElements[t.Type]
	if !ok {
		name = "symbol"
	}
	start.Name.Local = name
	start.Attr = append(start.Attr, xml.Attr{
		Name:  xml.Name{Local: "line"},
		Value: fmt.Sprint(t.Line),
	})
	return e.EncodeElement(fmt.Sprintf(" %s ", t.Raw), start)
}
