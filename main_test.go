package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hlmerscher/simplelang-go/engine"
	"github.com/hlmerscher/simplelang-go/logger"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.Toggle(false)
	})

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

const program = "int x; x = 5; if (x == 5) { x = x + 1; }"

const programAsm = `LDI 5
STA 16
LDA 16
SUBI 5
JZ L0
JMP L1
L0:
LDA 16
ADDI 1
STA 16
L1:
`

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sl", program)

	_, stderr, err := run(t, "compile", "-f", src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	out := filepath.Join(dir, "prog.asm")
	if got := readFile(t, out); got != programAsm {
		t.Errorf("assembly\n got: %q\nwant: %q", got, programAsm)
	}
	if !strings.Contains(stderr, "Compilation successful! Assembly written to "+out) {
		t.Errorf("missing success message in %q", stderr)
	}
}

func TestCompileDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, defaultInput, "x = 1; y = x + 2;")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if _, _, err := run(t, "compile"); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if got := readFile(t, defaultOutput); got != "LDI 1\nSTA 16\nLDA 16\nADDI 2\nSTA 17\n" {
		t.Errorf("assembly = %q", got)
	}
}

func TestCompileDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.sl", "a = 1;")
	writeSource(t, dir, "b.sl", "b = 2;")
	writeSource(t, dir, "notes.txt", "not source")

	if _, _, err := run(t, "compile", "-d", dir); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "a.asm")); got != "LDI 1\nSTA 16\n" {
		t.Errorf("a.asm = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "b.asm")); got != "LDI 2\nSTA 16\n" {
		t.Errorf("b.asm = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.asm")); !os.IsNotExist(err) {
		t.Error("non-source files must be skipped")
	}
}

func TestCompileSyntaxErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "bad.sl", "int 5;")

	_, _, err := run(t, "compile", "-f", src)
	var synErr *engine.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if !strings.Contains(err.Error(), "expected identifier") {
		t.Errorf("error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.asm")); !os.IsNotExist(err) {
		t.Error("no output should be written on error")
	}
}

func TestCompileSymbolsAndConfig(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sl", "a = 1; b = a;")
	cfgFile := writeSource(t, dir, "slc.yaml", "output_ext: .s\nlimits:\n  base_address: 100\n")
	symbols := filepath.Join(dir, "prog.sym.yaml")

	if _, _, err := run(t, "--config", cfgFile, "compile", "-f", src, "--symbols", symbols); err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "prog.s")); got != "LDI 1\nSTA 100\nLDA 100\nSTA 101\n" {
		t.Errorf("assembly = %q", got)
	}
	sym := readFile(t, symbols)
	if !strings.Contains(sym, "name: a") || !strings.Contains(sym, "address: 101") {
		t.Errorf("symbol map = %q", sym)
	}
}

func TestCompileStrictFlag(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sl", "x = 1;")

	_, _, err := run(t, "compile", "-f", src, "--strict")
	var synErr *engine.SyntaxError
	if !errors.As(err, &synErr) || synErr.Context != engine.Undeclared {
		t.Fatalf("expected an undeclared SyntaxError, got %v", err)
	}
}

func TestCompileTraceFlag(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sl", "int x;")

	_, stderr, err := run(t, "compile", "-f", src, "--trace")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "Token: TOKEN_INT ('int')") {
		t.Errorf("trace missing from %q", stderr)
	}
}

func TestCompileRejectsOutputWithDir(t *testing.T) {
	_, _, err := run(t, "compile", "-d", t.TempDir(), "-o", "x.asm")
	if err == nil {
		t.Error("expected an error for --output with --dir")
	}
}

func TestTokensCmd(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.sl", "x = 1;")

	stdout, _, err := run(t, "tokens", src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "Token: TOKEN_IDENTIFIER ('x')\n") {
		t.Errorf("tokens output = %q", stdout)
	}

	stdout, _, err = run(t, "tokens", src, "--format", "xml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "<tokens>") {
		t.Errorf("xml output = %q", stdout)
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "slc v"+Version) {
		t.Errorf("version output = %q", stdout)
	}
}

func TestOutputFilename(t *testing.T) {
	tests := map[string]string{
		"prog.sl":         "prog.asm",
		"dir/prog.sl":     "dir/prog.asm",
		"noext":           "noext.asm",
		"weird.sl.backup": "weird.sl.asm",
	}
	for in, want := range tests {
		if got := outputFilename(in, ".asm"); got != want {
			t.Errorf("outputFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
