package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/utiny"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "List the tokens of FILE, one per line",
	Long: `List the tokens of FILE as "<line>: <token>", ending with EOF.
A FILE without an extension is read as FILE.tny.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := utiny.SourcePath(args[0], s.cfg.Extension)
	src, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: exitFailure, err: &utiny.SourceError{Path: path, Err: err}}
	}
	return writeTokens(cmd.OutOrStdout(), utiny.Tokenize(string(src)), s.styles)
}

func writeTokens(w io.Writer, toks []utiny.TokenInfo, st styles) error {
	for _, tok := range toks {
		line := st.render(LineNumberStyle, fmt.Sprintf("%d:", tok.Line))
		if _, err := fmt.Fprintf(w, "%s %s\n", line, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
