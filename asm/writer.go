package asm

import (
	"fmt"

	"github.com/hlmerscher/simplelang-go/limits"
	"github.com/hlmerscher/simplelang-go/tokenizer"
)

// Sink receives emitted lines in order.
type Sink interface {
	Append(line string) error
}

// Listing is an append-only, capacity-bounded Sink.
type Listing struct {
	lines []string
	max   int
}

func NewListing(maxLines int) *Listing {
	return &Listing{max: maxLines}
}

func (l *Listing) Append(line string) error {
	if len(l.lines) >= l.max {
		return &limits.CapacityError{Resource: "lines", Limit: l.max}
	}
	l.lines = append(l.lines, line)
	return nil
}

// Lines returns a copy of everything appended so far.
func (l *Listing) Lines() []string {
	return append([]string(nil), l.lines...)
}

func (l *Listing) Len() int {
	return len(l.lines)
}

type Writer struct {
	out       Sink
	nextLabel int
}

func New(out Sink) *Writer {
	return &Writer{out: out}
}

// Labels returns two fresh consecutive labels.
func (w *Writer) Labels() (string, string) {
	first, second := label(w.nextLabel), label(w.nextLabel+1)
	w.nextLabel += 2
	return first, second
}

func (w *Writer) WriteLoadImmediate(value string) error {
	return w.out.Append(instruction(LDI, value))
}

func (w *Writer) WriteLoad(addr int) error {
	return w.out.Append(instruction(LDA, addr))
}

func (w *Writer) WriteStore(addr int) error {
	return w.out.Append(instruction(STA, addr))
}

// WriteArithmetic emits ADD/SUB against an address, or ADDI/SUBI when
// immediate is set and operand is a literal.
func (w *Writer) WriteArithmetic(op tokenizer.TokenType, operand any, immediate bool) error {
	mnemonic, ok := arithmeticOpsTable[op]
	if !ok {
		return fmt.Errorf("no arithmetic instruction for %s", op.Name())
	}
	if immediate {
		mnemonic = immediateOpsTable[mnemonic]
	}
	return w.out.Append(instruction(mnemonic, operand))
}

func (w *Writer) WriteJumpIfZero(target string) error {
	return w.out.Append(instruction(JZ, target))
}

func (w *Writer) WriteJump(target string) error {
	return w.out.Append(instruction(JMP, target))
}

func (w *Writer) WriteLabel(name string) error {
	return w.out.Append(name + ":")
}
