package engine

import (
	"github.com/hlmerscher/simplelang-go/asm"
	"github.com/hlmerscher/simplelang-go/symbols"
	"github.com/hlmerscher/simplelang-go/tokenizer"
)

// Compiler is the state of one compilation. Every production reads tokens
// from tk and emits through asmw as it goes; nothing is buffered.
type Compiler struct {
	tk      *tokenizer.Tokenizer
	symbols *symbols.Table
	asmw    *asm.Writer

	// Strict rejects identifiers that were not declared with int first.
	Strict bool
}

func New(tk *tokenizer.Tokenizer, table *symbols.Table, asmw *asm.Writer) *Compiler {
	return &Compiler{tk: tk, symbols: table, asmw: asmw}
}

// Program compiles statements until end of input.
func (c *Compiler) Program() error {
	for {
		token, err := c.tk.Advance()
		if err != nil {
			return err
		}
		if token.Type == tokenizer.EOF {
			return nil
		}
		c.tk.Pushback(token)

		if err := c.Statement(); err != nil {
			return err
		}
	}
}

func (c *Compiler) Statement() error {
	token, err := c.tk.Advance()
	if err != nil {
		return err
	}

	switch token.Type {
	case tokenizer.INT:
		return c.Declaration()
	case tokenizer.IDENTIFIER:
		return c.Assignment(token)
	case tokenizer.IF:
		return c.If()
	case tokenizer.SEMICOLON:
		return nil
	}

	return syntaxError(UnexpectedToken, token)
}

// Declaration compiles `int name;`. It only reserves an address.
func (c *Compiler) Declaration() error {
	name, err := c.expect(AfterInt, tokenizer.IDENTIFIER)
	if err != nil {
		return err
	}
	if _, err := c.symbols.Resolve(name.Raw); err != nil {
		return err
	}

	_, err = c.expect(AfterDeclaration, tokenizer.SEMICOLON)
	return err
}

// Assignment compiles `target = expression;`; target was already consumed.
func (c *Compiler) Assignment(target tokenizer.Token) error {
	if _, err := c.expect(AfterIdentifier, tokenizer.ASSIGN); err != nil {
		return err
	}
	if err := c.Expression(target); err != nil {
		return err
	}

	_, err := c.expect(AfterAssignment, tokenizer.SEMICOLON)
	return err
}

// Expression compiles `operand [(+|-) operand]` into the accumulator and
// stores it into target. The target is resolved last, after the operands.
func (c *Compiler) Expression(target tokenizer.Token) error {
	operand, err := c.expect(InExpression, tokenizer.NUMBER, tokenizer.IDENTIFIER)
	if err != nil {
		return err
	}
	if err := c.load(operand); err != nil {
		return err
	}

	op, err := c.tk.Advance()
	if err != nil {
		return err
	}
	if asm.IsArithmetic(op.Type) {
		rhs, err := c.expect(AfterOperator, tokenizer.NUMBER, tokenizer.IDENTIFIER)
		if err != nil {
			return err
		}
		if err := c.arithmetic(op.Type, rhs); err != nil {
			return err
		}
	} else {
		// belongs to the enclosing statement
		c.tk.Pushback(op)
	}

	addr, err := c.address(target)
	if err != nil {
		return err
	}
	return c.asmw.WriteStore(addr)
}

// If compiles `if (lhs == rhs) { statements }`:
//
//	LDA lhs; SUB(I) rhs; JZ Ltrue; JMP Lend; Ltrue: body; Lend:
func (c *Compiler) If() error {
	if _, err := c.expect(IfOpen, tokenizer.LPAREN); err != nil {
		return err
	}
	lhs, err := c.expect(IfLeft, tokenizer.IDENTIFIER)
	if err != nil {
		return err
	}
	if _, err := c.expect(IfEqual, tokenizer.EQUAL); err != nil {
		return err
	}
	rhs, err := c.expect(IfRight, tokenizer.IDENTIFIER, tokenizer.NUMBER)
	if err != nil {
		return err
	}
	if _, err := c.expect(IfClose, tokenizer.RPAREN); err != nil {
		return err
	}
	if _, err := c.expect(IfBodyOpen, tokenizer.LBRACE); err != nil {
		return err
	}

	labelTrue, labelEnd := c.asmw.Labels()

	if err := c.load(lhs); err != nil {
		return err
	}
	if err := c.arithmetic(tokenizer.MINUS, rhs); err != nil {
		return err
	}
	if err := c.asmw.WriteJumpIfZero(labelTrue); err != nil {
		return err
	}
	if err := c.asmw.WriteJump(labelEnd); err != nil {
		return err
	}
	if err := c.asmw.WriteLabel(labelTrue); err != nil {
		return err
	}

	if err := c.block(); err != nil {
		return err
	}

	return c.asmw.WriteLabel(labelEnd)
}

// block compiles statements up to and including the closing brace.
func (c *Compiler) block() error {
	for {
		token, err := c.tk.Advance()
		if err != nil {
			return err
		}
		if token.Type == tokenizer.RBRACE {
			return nil
		}
		if token.Type == tokenizer.EOF {
			return syntaxError(UnterminatedBlock, token)
		}
		c.tk.Pushback(token)

		if err := c.Statement(); err != nil {
			return err
		}
	}
}

func (c *Compiler) load(operand tokenizer.Token) error {
	if operand.Type == tokenizer.NUMBER {
		return c.asmw.WriteLoadImmediate(operand.Raw)
	}

	addr, err := c.address(operand)
	if err != nil {
		return err
	}
	return c.asmw.WriteLoad(addr)
}

func (c *Compiler) arithmetic(op tokenizer.TokenType, operand tokenizer.Token) error {
	if operand.Type == tokenizer.NUMBER {
		return c.asmw.WriteArithmetic(op, operand.Raw, true)
	}

	addr, err := c.address(operand)
	if err != nil {
		return err
	}
	return c.asmw.WriteArithmetic(op, addr, false)
}

// address resolves a variable reference, allocating on first use unless
// the compiler is strict.
func (c *Compiler) address(name tokenizer.Token) (int, error) {
	if c.Strict {
		if _, ok := c.symbols.Lookup(name.Raw); !ok {
			return 0, syntaxError(Undeclared, name)
		}
	}
	return c.symbols.Resolve(name.Raw)
}
