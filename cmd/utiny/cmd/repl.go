package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/kolkov/utiny"
)

const (
	historyFile = ".utiny_history"
	promptMain  = "tiny> "
	promptCont  = "  ... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse programs typed interactively",
	Long: `Read TINY programs from the terminal and print their syntax trees.
A program ends at the first empty line.

Commands:
  :tokens   list the tokens of the next program instead of its tree
  :quit     leave the REPL`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintf(out, "utiny %s - empty line parses, :quit exits\n", utiny.Version)
	tokens := false
	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			case ":tokens":
				tokens = true
			default:
				fmt.Fprintln(errOut, "unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if tokens {
			tokens = false
			_ = writeTokens(out, utiny.Tokenize(src), s.styles)
			continue
		}
		res, err := utiny.Parse(src, s.driverConfig())
		if err != nil {
			fmt.Fprintf(errOut, "%s %v\n", s.styles.render(ErrorStyle, "utiny:"), err)
			continue
		}
		_ = printResult(out, errOut, res, s)
	}
}

// readProgram reads lines until an empty line. A line starting with ':'
// on the first prompt is returned at once as a command. ok is false at
// end of input.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
}
