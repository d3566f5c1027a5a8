package onerror

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hlmerscher/simplelang-go/engine"
	"github.com/hlmerscher/simplelang-go/limits"
)

const (
	ExitFailure  = 1
	ExitSyntax   = 2
	ExitCapacity = 3
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

func Log(err error) {
	Logf("", err)
}

// Logf reports err and terminates the process. A nil err is a no-op.
func Logf(msg string, err error) {
	if err != nil {
		fmt.Fprintf(stderr, "%s %s%s\n", errorStyle.Render(Label(err)+":"), msg, err)
		exit(ExitCode(err))
	}
}

// Label names the class of err for display.
func Label(err error) string {
	var synErr *engine.SyntaxError
	var capErr *limits.CapacityError
	switch {
	case errors.As(err, &synErr):
		return "syntax error"
	case errors.As(err, &capErr):
		return "capacity error"
	}
	return "error"
}

func ExitCode(err error) int {
	var synErr *engine.SyntaxError
	var capErr *limits.CapacityError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &synErr):
		return ExitSyntax
	case errors.As(err, &capErr):
		return ExitCapacity
	}
	return ExitFailure
}
