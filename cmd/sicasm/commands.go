package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ezrec/sicxe/htme"
	"github.com/ezrec/sicxe/listing"
	"github.com/ezrec/sicxe/sicxe"
	"github.com/ezrec/sicxe/templates"
)

var (
	outputPath string
	caret      bool
	format     string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble FILE",
	Short: "Assemble a source file into HTME records",
	Args:  cobra.ExactArgs(1),
	RunE:  assemble,
}

var listingCmd = &cobra.Command{
	Use:   "listing FILE",
	Short: "Print the assembled statements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return table(cmd, args[0], func(prog *sicxe.Program) *listing.Table {
			return listing.Code(prog)
		})
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols FILE",
	Short: "Print the symbol table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return table(cmd, args[0], func(prog *sicxe.Program) *listing.Table {
			return listing.Symbols(prog.Symbols)
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a source file without assembling it",
	Args:  cobra.ExactArgs(1),
	RunE:  validate,
}

var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "Print the instruction set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listing.Instructions().Write(cmd.OutOrStdout(), format)
	},
}

var templateCmd = &cobra.Command{
	Use:   "template [NAME]",
	Short: "List the sample programs, or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  template,
}

func init() {
	assembleCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Object program output")
	assembleCmd.Flags().BoolVar(&caret, "caret", false, "Separate record fields with '^' instead of blanks")

	for _, cmd := range []*cobra.Command{listingCmd, symbolsCmd, opcodesCmd} {
		cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, csv or json")
	}
}

// open opens a source file, or standard input for "-".
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// build assembles a source file. Fatal errors are returned; error
// diagnostics are returned alongside the program.
func build(path string) (prog *sicxe.Program, err error) {
	inf, err := open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = assembler().Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if derr := prog.Err(); derr != nil {
		err = fmt.Errorf("%v: %w", path, derr)
	}

	return
}

func assemble(cmd *cobra.Command, args []string) (err error) {
	prog, err := build(args[0])
	if prog == nil {
		return
	}

	out := cmd.OutOrStdout()
	if outputPath != "-" {
		ouf, cerr := os.Create(outputPath)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := ouf.Close(); cerr != nil {
				err = multierror.Append(err, cerr)
			}
		}()
		out = ouf
	}

	if werr := htme.Write(out, htme.Seq(prog), !caret); werr != nil {
		err = multierror.Append(err, werr)
	}

	return
}

func table(cmd *cobra.Command, path string, render func(*sicxe.Program) *listing.Table) (err error) {
	prog, err := build(path)
	if prog == nil {
		return
	}

	if werr := render(prog).Write(cmd.OutOrStdout(), format); werr != nil {
		err = multierror.Append(err, werr)
	}

	return
}

func validate(cmd *cobra.Command, args []string) (err error) {
	inf, err := open(args[0])
	if err != nil {
		return
	}
	defer inf.Close()

	lines, _, err := sicxe.ParseSource(inf)
	if err != nil {
		return
	}

	var merr *multierror.Error
	for _, diag := range sicxe.Validate(lines) {
		merr = multierror.Append(merr, diag)
	}

	if err = merr.ErrorOrNil(); err != nil {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v: %v statements ok\n", args[0], len(lines))
	return
}

func template(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range templates.Names() {
			fmt.Fprintln(out, name)
		}
		return
	}

	source, err := templates.Source(args[0])
	if err != nil {
		return
	}

	_, err = io.WriteString(out, source)
	return
}
