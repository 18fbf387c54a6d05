package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/mandelsaver/internal/logging"
	"github.com/muurk/mandelsaver/internal/palette"
	"github.com/muurk/mandelsaver/internal/render"
	"github.com/muurk/mandelsaver/internal/terminal"
	"github.com/muurk/mandelsaver/internal/tour"
)

func runSaver(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := terminal.Stdout()
	pal := palette.Build(terminal.Supports256(os.Getenv))
	r := render.New(cmd.ErrOrStderr(), pal)

	cfg := tour.DefaultConfig()
	cfg.Width = metrics.Width

	logging.Info("Starting screensaver",
		zap.Int("width", metrics.Width()),
		zap.Int("height", metrics.Height()),
		zap.Int("palette_size", pal.Len()),
		zap.Bool("styled", r.Styled()),
		zap.String("version", cmd.Root().Version),
	)

	d := tour.NewDriver(r, cfg)
	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("render loop failed: %w", err)
	}

	logging.Info("Interrupted, shutting down",
		zap.Int64("glyphs", r.Written()),
		zap.Int("restarts", d.Restarts()),
		zap.Int("resizes", d.Resizes()),
	)

	// Leave the shell prompt on a fresh line.
	if err := r.LineBreak(); err != nil {
		return err
	}
	return r.Flush()
}
