package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jayadeyemi/yamlsplit/internal/output"
	"github.com/jayadeyemi/yamlsplit/internal/source"
	"github.com/jayadeyemi/yamlsplit/internal/split"
)

func newRootCmd(stdin io.Reader) *cobra.Command {
	var flagLogLevel string

	root := &cobra.Command{
		Use:   "yamlsplit [file|-]",
		Short: "Split a multi-document YAML stream into numbered files",
		Long: `Split a stream of YAML documents into one file per document.

A line of "---" starts a new document and a line of "..." ends one. Documents are written
next to the input as <base>-0.<ext>, <base>-1.<ext>, ... Reading stdin (no argument or "-")
names the outputs stdin-0.yaml, stdin-1.yaml, ... in the current directory.
Existing files with those names are overwritten.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug := false
			switch flagLogLevel {
			case "info":
			case "debug":
				debug = true
			default:
				return fmt.Errorf("invalid --log-level %q: want info|debug", flagLogLevel)
			}

			arg := "-"
			if len(args) == 1 {
				arg = args[0]
			}
			src, err := source.Open(arg, stdin)
			if err != nil {
				return err
			}
			defer src.Close()

			factory := output.NewFactory(src.Base, src.Ext)
			stats, err := split.Split(src.Reader, split.OpenerFunc(func() (split.Writer, error) {
				f, err := factory.Open()
				if err != nil {
					return nil, err
				}
				return f, nil
			}))
			if debug {
				for _, name := range factory.Names() {
					log.Printf("wrote %s", name)
				}
			}
			if err != nil {
				return fmt.Errorf("split %s: %w", src.Name, err)
			}
			if debug {
				log.Printf("split %s: %d lines, %d documents", src.Name, stats.Lines, factory.Count())
			}
			return nil
		},
	}

	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: info|debug")
	return root
}

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		log.Fatal(err)
	}
}
