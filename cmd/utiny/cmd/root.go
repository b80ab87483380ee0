package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Exit statuses.
const (
	exitSyntax  = 1 // the program has syntax errors
	exitFailure = 2 // unreadable source, oversized tree or bad usage
)

var (
	cfgFile   string
	verbose   bool
	indent    int
	format    string
	matchExpr string
	maxNodes  int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "utiny [flags] FILE",
	Short: "Parse TINY programs and print their syntax trees",
	Long: `utiny parses a program written in the extended TINY language and
prints its syntax tree as an indented listing.

A FILE without an extension is read as FILE.tny. Syntax errors are
reported on stderr and make utiny exit with status 1. Unreadable files
and oversized trees exit with status 2.

Examples:
  utiny sample                  # parses sample.tny
  utiny --indent 4 sample.tny
  utiny --format yaml sample
  utiny --match 'Id: x$' sample
  utiny tokens sample
  utiny watch sample`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./utiny.toml or ./utiny.yaml if present)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.IntVar(&indent, "indent", 2, "spaces per tree level")
	pf.StringVar(&format, "format", "text", "output format: text or yaml")
	pf.StringVar(&matchExpr, "match", "", "print only tree lines matching this regular expression")
	pf.IntVar(&maxNodes, "max-nodes", 0, "maximum syntax tree size, 0 for unlimited")
	pf.BoolVar(&noColor, "no-color", false, "disable styled output")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return parseAndPrint(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], s)
}

// exitError carries the exit status for an error. reported is set when
// the error has already been shown to the user.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode returns the process exit status for an error from Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func printError(w io.Writer, err error) {
	var ee *exitError
	if errors.As(err, &ee) && ee.reported {
		return
	}
	st := newStyles(!noColor)
	fmt.Fprintf(w, "%s %v\n", st.render(ErrorStyle, "utiny:"), err)
}
