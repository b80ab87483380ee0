package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestWatchRunsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tny")
	if err := os.WriteFile(path, []byte("read x"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	first := true
	w := New(path, func() error {
		calls <- struct{}{}
		if first {
			first = false
			return errors.New("syntax error")
		}
		return nil
	}, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("Run() returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never became ready")
	}

	// A sibling file must not trigger the action.
	if err := os.WriteFile(filepath.Join(dir, "other.tny"), []byte("write 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := os.WriteFile(path, []byte("write x"), 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("write %d: action not called", i+1)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "prog.tny")
	err := Watch(context.Background(), path, func() error { return nil }, quietLogger())
	if err == nil {
		t.Fatal("Watch() error = nil for a missing directory")
	}
}

func TestNewDefaultsLogger(t *testing.T) {
	w := New("a/../prog.tny", func() error { return nil }, nil)
	if w.logger == nil {
		t.Error("logger is nil")
	}
	if w.path != "prog.tny" {
		t.Errorf("path = %q, want cleaned prog.tny", w.path)
	}
}
