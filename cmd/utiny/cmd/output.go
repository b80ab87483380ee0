package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/utiny"
	"github.com/kolkov/utiny/internal/config"
)

// parseAndPrint parses the file at path, writes the tree to out and the
// diagnostics to errOut.
func parseAndPrint(out, errOut io.Writer, path string, s *settings) error {
	res, err := utiny.ParseFile(path, s.driverConfig())
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	return printResult(out, errOut, res, s)
}

func printResult(out, errOut io.Writer, res *utiny.Result, s *settings) error {
	if err := writeTree(out, res, s); err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	if !res.HadError() {
		return nil
	}
	writeDiagnostics(errOut, res.Diagnostics, s.styles)
	return &exitError{code: exitSyntax, err: res.Err(), reported: true}
}

// writeTree writes the tree in the configured format. With a match
// expression only the matching lines of the text listing are written,
// the matched part highlighted.
func writeTree(w io.Writer, res *utiny.Result, s *settings) error {
	if s.cfg.Format == config.OutputYAML {
		data, err := res.YAML()
		if err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	tree := res.Tree
	if s.match == nil {
		_, err := io.WriteString(w, tree)
		return err
	}

	var sb strings.Builder
	for _, line := range strings.SplitAfter(s.match.Lines(tree), "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		loc := s.match.FindStringIndex(text)
		if loc == nil || loc[0] == loc[1] {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(text[:loc[0]])
		sb.WriteString(s.styles.render(MatchStyle, text[loc[0]:loc[1]]))
		sb.WriteString(text[loc[1]:])
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeDiagnostics writes one line per syntax error.
func writeDiagnostics(w io.Writer, diags []utiny.Diagnostic, st styles) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", st.render(ErrorStyle, ">>>"), d.String())
	}
}

// isSyntaxError reports whether err only carries syntax diagnostics.
func isSyntaxError(err error) bool {
	var se *utiny.SyntaxError
	return errors.As(err, &se)
}
