// Package main provides the CLI entry point for sheetdump.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/output"
)

// Process exit codes.
const (
	exitOK            = 0
	exitError         = 1
	exitFileNotFound  = 2
	exitSheetNotFound = 3
)

type cliOptions struct {
	sheet    string
	output   string
	format   string
	pretty   bool
	formulas bool
	password string
	limit    int
	verbose  bool
}

type printer interface {
	sheetread.Handler
	Flush() error
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return exitCode(stderr, cmd.Execute())
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}
	cmd := &cobra.Command{
		Use:   "sheetdump <input.xlsx> [sheet]",
		Short: "Print the rows of a worksheet",
		Long: `sheetdump lists the sheets of an xlsx workbook and prints every row of
one sheet (the active sheet unless a name is given) as typed cell values.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, opts *cliOptions) {
	fs.StringVarP(&opts.sheet, "sheet", "s", "", "Sheet name to read (default: active sheet)")
	fs.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&opts.format, "format", "text", "Output format: text, json")
	fs.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	fs.BoolVar(&opts.formulas, "formulas", false, "Print formula text instead of cached values")
	fs.StringVar(&opts.password, "password", "", "Password for an encrypted workbook")
	fs.IntVar(&opts.limit, "limit", 0, "Stop after this many rows (0: no limit)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug events to stderr")
}

func run(cmd *cobra.Command, args []string, opts *cliOptions) (err error) {
	inputPath := args[0]

	sheetName := opts.sheet
	if len(args) == 2 {
		if sheetName != "" && sheetName != args[1] {
			return fmt.Errorf("sheet given twice: %q and %q", args[1], sheetName)
		}
		sheetName = args[1]
	}

	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", opts.format)
	}
	if opts.limit < 0 {
		return fmt.Errorf("invalid limit: %d", opts.limit)
	}

	w := cmd.OutOrStdout()
	if opts.output != "" {
		out, cerr := os.Create(opts.output)
		if cerr != nil {
			return fmt.Errorf("failed to write output: %w", cerr)
		}
		defer func() {
			if cerr := out.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to write output: %w", cerr)
			}
		}()
		w = out
	}

	var p printer = output.NewTextPrinter(w)
	if opts.format == "json" {
		p = output.NewJSONPrinter(w, opts.pretty)
	}

	readOpts := sheetread.Options{
		SheetName: sheetName,
		Password:  opts.password,
		Formulas:  opts.formulas,
		Logger:    newLogger(cmd.ErrOrStderr(), opts.verbose),
	}

	var h sheetread.Handler = p
	if opts.limit > 0 {
		h = &limitHandler{Handler: p, limit: opts.limit}
	}

	if err := sheetread.ReadSheet(inputPath, readOpts, h); err != nil {
		return err
	}
	return p.Flush()
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// limitHandler stops the read after limit rows.
type limitHandler struct {
	sheetread.Handler
	limit int
	seen  int
}

func (h *limitHandler) Row(row models.Row) error {
	h.seen++
	if err := h.Handler.Row(row); err != nil {
		return err
	}
	if h.seen >= h.limit {
		return sheetread.ErrStop
	}
	return nil
}

// exitCode prints err for the user and maps it to a process exit code.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var re *sheetread.ReadError
	if errors.As(err, &re) {
		switch re.Kind {
		case sheetread.KindFileNotFound:
			fmt.Fprintf(w, "Error: File '%s' not found.\n", re.Path)
			fmt.Fprintln(w, "Please check the path and try again.")
			return exitFileNotFound
		case sheetread.KindSheetNotFound:
			fmt.Fprintf(w, "Error: Sheet '%s' not found in '%s'.\n", re.Sheet, re.Path)
			return exitSheetNotFound
		}
	}

	fmt.Fprintf(w, "An error occurred: %v\n", err)
	return exitError
}
