package asm

import (
	"fmt"

	"github.com/hlmerscher/simplelang-go/tokenizer"
)

// Mnemonics of the accumulator machine. Immediate forms take a literal,
// the others a memory address.
const (
	LDI  = "LDI"
	LDA  = "LDA"
	STA  = "STA"
	ADD  = "ADD"
	ADDI = "ADDI"
	SUB  = "SUB"
	SUBI = "SUBI"
	JZ   = "JZ"
	JMP  = "JMP"
)

var arithmeticOpsTable = map[tokenizer.TokenType]string{
	tokenizer.PLUS:  ADD,
	tokenizer.MINUS: SUB,
}

var immediateOpsTable = map[string]string{
	ADD: ADDI,
	SUB: SUBI,
}

// IsArithmetic reports whether the token type maps to an arithmetic instruction.
func IsArithmetic(op tokenizer.TokenType) bool {
	_, ok := arithmeticOpsTable[op]
	return ok
}

func instruction(mnemonic string, operand any) string {
	return fmt.Sprintf("%s %v", mnemonic, operand)
}

func label(n int) string {
	return fmt.Sprintf("L%d", n)
}
