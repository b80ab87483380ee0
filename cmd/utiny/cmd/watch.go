package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kolkov/utiny"
	"github.com/kolkov/utiny/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-print the syntax tree whenever FILE changes",
	Long: `Parse FILE once, then watch it and parse it again each time it is
saved. Syntax errors are reported and watching continues. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := utiny.SourcePath(args[0], s.cfg.Extension)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	run := func() error {
		err := parseAndPrint(out, errOut, path, s)
		if isSyntaxError(err) {
			return nil
		}
		return err
	}
	if err := run(); err != nil {
		s.logger.Error("parse failed", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := watch.Watch(ctx, path, run, s.logger); err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	return nil
}
