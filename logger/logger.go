package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hlmerscher/simplelang-go/tokenizer"
)

var (
	verbose           = false
	out     io.Writer = os.Stderr

	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

func Toggle(flag bool) {
	verbose = flag
}

func Enabled() bool {
	return verbose
}

// SetOutput redirects all logging, which goes to stderr by default.
func SetOutput(w io.Writer) {
	out = w
}

func Print(values ...any) {
	if !verbose {
		return
	}

	fmt.Fprint(out, values...)
}

func Printf(format string, values ...any) {
	if !verbose {
		return
	}

	fmt.Fprintf(out, format, values...)
}

func Println(values ...any) {
	if !verbose {
		return
	}

	fmt.Fprintln(out, values...)
}

// Trace prints one scanned token. It is meant as a tokenizer observer and
// prints regardless of the verbose flag.
func Trace(token tokenizer.Token) {
	fmt.Fprintf(out, "%s %s\n", traceStyle.Render("trace"), token)
}

// Success prints a message that is always shown.
func Success(format string, values ...any) {
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(format, values...)))
}
