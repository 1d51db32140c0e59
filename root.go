package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.creack.net/gentt/parser"
	"go.creack.net/gentt/truthtable"
)

var errUsage = errors.New("expected 'gentt <EXPR>'")

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
)

type options struct {
	output  string
	color   bool
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gentt <EXPR>",
		Short: "Print the truth table of a boolean expression",
		Long: `gentt parses a boolean expression and prints its truth table.

Expressions are built from:
  0, 1           constants
  a, b1, z42     variables ([a-z][0-9]*)
  ~x             negation
  x & y          conjunction
  x | y          disjunction
  x -> y         implication
  ( x )          grouping

'&' binds tighter than '|', which binds tighter than '->'.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "", 0)
			if opts.verbose {
				logger = log.New(stderr, "gentt: ", 0)
			}
			return run(args[0], opts, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or yaml")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colorize the text table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
	return cmd
}

func run(input string, opts *options, stdout io.Writer, logger *log.Logger) error {
	if opts.output != outputText && opts.output != outputYAML {
		return fmt.Errorf("unsupported output format %q", opts.output)
	}

	expr, err := parser.Parse(input)
	if err != nil {
		return fmt.Errorf("parse %q: %w", input, err)
	}
	logger.Printf("Parsed %q as %# v.", input, pretty.Formatter(expr))

	table, err := truthtable.Build(expr)
	if err != nil {
		return fmt.Errorf("build truth table: %w", err)
	}
	logger.Printf("Evaluated %d rows over %v.", table.Len(), table.Vars())

	switch opts.output {
	case outputYAML:
		enc := yaml.NewEncoder(stdout)
		if err := enc.Encode(table); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	default:
		out := table.String()
		if opts.color {
			out = table.Render(truthtable.DefaultStyles())
		}
		if _, err := fmt.Fprintln(stdout, out); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}
