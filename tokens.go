package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/simplelang-go/analyzer"
	"github.com/hlmerscher/simplelang-go/tokenizer"
)

func newTokensCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a SimpleLang source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			filename := defaultInput
			if len(args) == 1 {
				filename = args[0]
			}
			sourceFile, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("error opening file: %w", err)
			}
			defer sourceFile.Close()

			return analyzer.Tokens(sourceFile, cmd.OutOrStdout(), format,
				tokenizer.WithMaxTokenLen(cfg.Limits.MaxTokenLen))
		},
	}

	cmd.Flags().StringVar(&format, "format", analyzer.FormatText,
		"output format ("+strings.Join(analyzer.Formats, "|")+")")
	return cmd
}
