package engine

import (
	"fmt"

	"github.com/hlmerscher/simplelang-go/tokenizer"
)

// Context identifies the grammar point where a syntax error was detected.
type Context int

const (
	AfterInt Context = iota
	AfterDeclaration
	AfterIdentifier
	InExpression
	AfterOperator
	AfterAssignment
	IfOpen
	IfLeft
	IfEqual
	IfRight
	IfClose
	IfBodyOpen
	UnterminatedBlock
	UnexpectedToken
	Undeclared
)

var expectations = map[Context]string{
	AfterInt:          "identifier after 'int'",
	AfterDeclaration:  "';' after variable declaration",
	AfterIdentifier:   "'=' after identifier",
	InExpression:      "identifier or number in expression",
	AfterOperator:     "number or identifier after operator",
	AfterAssignment:   "';' after assignment",
	IfOpen:            "'(' after 'if'",
	IfLeft:            "identifier in if condition",
	IfEqual:           "'==' in if condition",
	IfRight:           "identifier or number in if condition",
	IfClose:           "')' after if condition",
	IfBodyOpen:        "'{' after if condition",
	UnterminatedBlock: "'}' to close if block",
	UnexpectedToken:   "statement",
	Undeclared:        "'int' declaration before use",
}

func (ctx Context) Expected() string {
	return expectations[ctx]
}

// SyntaxError is raised at the first token that does not fit the grammar.
// Compilation stops there.
type SyntaxError struct {
	Context Context
	Found   tokenizer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: expected %s, found %s", e.Found.Line, e.Context.Expected(), e.Found.Describe())
}

func syntaxError(ctx Context, found tokenizer.Token) error {
	return &SyntaxError{Context: ctx, Found: found}
}
