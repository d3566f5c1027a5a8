package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlmerscher/simplelang-go/config"
	"github.com/hlmerscher/simplelang-go/logger"
	"github.com/hlmerscher/simplelang-go/onerror"
)

const (
	defaultInput  = "input.sl"
	defaultOutput = "output.asm"
	sourceExt     = ".sl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		onerror.Log(err)
	}
}

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "slc",
		Short: "SimpleLang compiler",
		Long: `slc translates SimpleLang source into assembly for an 8-bit
accumulator machine.

SimpleLang has integer declarations, assignment with at most one + or -,
and single-level if statements comparing with ==.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			logger.Toggle(opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(
		newCompileCmd(opts),
		newTokensCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if o.cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(o.cfgFile)
}

func dirFilenames(dirname string) ([]string, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	filenames := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), sourceExt) {
			filenames = append(filenames, filepath.Join(dirname, entry.Name()))
		}
	}

	return filenames, nil
}

func outputFilename(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}
