package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/kolkov/utiny"
	"github.com/kolkov/utiny/internal/config"
	"github.com/kolkov/utiny/internal/query"
)

// execute runs the command line with args and restores the flag defaults
// afterwards.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"syntax", &exitError{code: exitSyntax, err: errors.New("x")}, 1},
		{"failure", &exitError{code: exitFailure, err: errors.New("x")}, 2},
		{"plain", errors.New("unknown flag"), 2},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	writeDiagnostics(&buf, []utiny.Diagnostic{
		{Line: 1, Column: 8, Message: "unexpected token -> reserved word: write"},
		{Line: 2, Column: 7, Message: "unexpected token -> )"},
	}, newStyles(false))
	want := ">>> syntax error at line 1: unexpected token -> reserved word: write\n" +
		">>> syntax error at line 2: unexpected token -> )\n"
	if buf.String() != want {
		t.Errorf("writeDiagnostics() = %q, want %q", buf.String(), want)
	}
}

func TestWriteTree(t *testing.T) {
	res, err := utiny.Parse("read x; if (x > 0) write x end", nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		format string
		match  string
		check  func(string) bool
	}{
		{"text", config.OutputText, "", func(s string) bool { return s == res.Tree }},
		{"match", config.OutputText, `Id: x$`, func(s string) bool { return s == "    Id: x\n    Id: x\n" }},
		{"no match", config.OutputText, `Repeat`, func(s string) bool { return s == "" }},
		{"yaml", config.OutputYAML, "", func(s string) bool { return strings.Contains(s, "kind: Read") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Format = tt.format
			s := &settings{cfg: cfg, styles: newStyles(false)}
			if tt.match != "" {
				s.match = query.MustCompile(tt.match)
			}
			var buf bytes.Buffer
			if err := writeTree(&buf, res, s); err != nil {
				t.Fatal(err)
			}
			if !tt.check(buf.String()) {
				t.Errorf("writeTree() = %q", buf.String())
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	prog := writeFile(t, dir, "prog.tny", "read x; if (x > 0) write x end")

	out, _, err := execute(t, "--no-color", filepath.Join(dir, "prog"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "Read: x\nIf\n  Op: >\n    Id: x\n    Const: 0\n  Write\n    Id: x\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}

	out, _, err = execute(t, "--no-color", "--indent", "4", "--match", "Const", prog)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "        Const: 0\n" {
		t.Errorf("filtered output = %q", out)
	}
}

func TestRootCommandSyntaxError(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "bad.tny", "write x end")

	out, errOut, err := execute(t, "--no-color", prog)
	if ExitCode(err) != exitSyntax {
		t.Fatalf("ExitCode = %d, want %d (err %v)", ExitCode(err), exitSyntax, err)
	}
	if out != "Write\n  Id: x\n" {
		t.Errorf("output = %q", out)
	}
	want := ">>> syntax error at line 1: code continues after expected end of input\n"
	if errOut != want {
		t.Errorf("stderr = %q, want %q", errOut, want)
	}
}

func TestRootCommandFailures(t *testing.T) {
	dir := t.TempDir()
	prog := writeFile(t, dir, "prog.tny", "write 1 + 2")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"--no-color", filepath.Join(dir, "missing")}, "cannot read source"},
		{"node limit", []string{"--no-color", "--max-nodes", "2", prog}, "exceeds 2 nodes"},
		{"bad indent", []string{"--no-color", "--indent", "0", prog}, "--indent must be at least 1"},
		{"bad format", []string{"--no-color", "--format", "xml", prog}, "unsupported output format"},
		{"bad pattern", []string{"--no-color", "--match", "[", prog}, "invalid --match pattern"},
		{"no file", []string{"--no-color"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := execute(t, tt.args...)
			if ExitCode(err) != exitFailure {
				t.Fatalf("ExitCode = %d, want %d (err %v)", ExitCode(err), exitFailure, err)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.want)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.src", "write 1")
	cfg := writeFile(t, dir, "utiny.toml", "indent = 3\nextension = \"src\"\n")

	out, _, err := execute(t, "--no-color", "--config", cfg, filepath.Join(dir, "prog"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "Write\n   Const: 1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestYAMLFormat(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "prog.tny", "read x")
	out, _, err := execute(t, "--no-color", "--format", "yaml", prog)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "kind: Read") || !strings.Contains(out, "name: x") {
		t.Errorf("output =\n%s", out)
	}
}

func TestTokensCommand(t *testing.T) {
	prog := writeFile(t, t.TempDir(), "prog.tny", "read x;\nx := 10")
	out, _, err := execute(t, "tokens", "--no-color", prog)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "1: reserved word: read\n1: ID, name= x\n1: ;\n2: ID, name= x\n2: =\n2: NUM, val= 10\n2: EOF\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "utiny v"+utiny.Version+"\n") {
		t.Errorf("output = %q", out)
	}
}
