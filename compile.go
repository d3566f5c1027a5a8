package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/simplelang-go/config"
	"github.com/hlmerscher/simplelang-go/engine"
	"github.com/hlmerscher/simplelang-go/logger"
	"github.com/hlmerscher/simplelang-go/tokenizer"
	"github.com/hlmerscher/simplelang-go/writer"
)

type compileOptions struct {
	*rootOptions
	filename    string
	dirname     string
	output      string
	symbolsFile string
	strict      bool
	trace       bool
}

func newCompileCmd(root *rootOptions) *cobra.Command {
	opts := &compileOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile SimpleLang sources to assembly",
		Long: `Compile SimpleLang sources to assembly.

Without -f or -d, input.sl is compiled to output.asm. With -f or -d each
.sl file is compiled to a sibling file with the configured output extension.
Nothing is written for a file that fails to compile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.StrictDeclarations = opts.strict
			}
			if cmd.Flags().Changed("trace") {
				cfg.Trace = opts.trace
			}
			return runCompile(opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.filename, "file", "f", "", "the SimpleLang source file")
	cmd.Flags().StringVarP(&opts.dirname, "dir", "d", "", "a directory of SimpleLang source files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "the assembly output file (single file only)")
	cmd.Flags().StringVar(&opts.symbolsFile, "symbols", "", "also write the symbol map (.toml, .yaml or .yml; single file only)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject variables used before an int declaration")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every token as it is scanned")

	return cmd
}

func runCompile(opts *compileOptions, cfg config.Config) error {
	if opts.dirname != "" && (opts.output != "" || opts.symbolsFile != "") {
		return errors.New("--output and --symbols cannot be used with --dir")
	}

	if opts.filename == "" && opts.dirname == "" {
		output := opts.output
		if output == "" {
			output = defaultOutput
		}
		return compileFile(defaultInput, output, opts.symbolsFile, cfg)
	}

	if opts.filename != "" {
		output := opts.output
		if output == "" {
			output = outputFilename(opts.filename, cfg.OutputExt)
		}
		if err := compileFile(opts.filename, output, opts.symbolsFile, cfg); err != nil {
			return err
		}
	}

	if opts.dirname != "" {
		filenames, err := dirFilenames(opts.dirname)
		if err != nil {
			return fmt.Errorf("error reading directory: %w", err)
		}
		for _, filename := range filenames {
			if err := compileFile(filename, outputFilename(filename, cfg.OutputExt), "", cfg); err != nil {
				return err
			}
		}
	}

	return nil
}

func compileFile(filename, outputFile, symbolsFile string, cfg config.Config) error {
	logger.Printf("input:\t%s\n", filename)

	sourceFile, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer sourceFile.Close()

	var opts []tokenizer.Option
	if cfg.Trace {
		opts = append(opts, tokenizer.WithObserver(logger.Trace))
	}

	result, err := engine.Compile(sourceFile, cfg, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	if err := writeToFile(outputFile, func(buf *bytes.Buffer) error {
		return writer.Output(buf, result.Lines)
	}); err != nil {
		return err
	}
	if symbolsFile != "" {
		if err := writeToFile(symbolsFile, func(buf *bytes.Buffer) error {
			return writer.Symbols(buf, result.Symbols, config.DetectFormat(symbolsFile))
		}); err != nil {
			return err
		}
	}

	logger.Success("Compilation successful! Assembly written to %s", outputFile)
	return nil
}

func writeToFile(filename string, fill func(*bytes.Buffer) error) error {
	logger.Printf("output:\t%s\n", filename)

	buf := new(bytes.Buffer)
	if err := fill(buf); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
