package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alder-ui/alder/examples/counter"
	"github.com/alder-ui/alder/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		container string
		title     string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the example counter application",
		Long: `Start the live server with the example counter mounted.

Examples:
  alder serve
  alder serve --addr=:9000 --container=root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, container, title, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVarP(&container, "container", "c", "app", "Mount container DOM id")
	cmd.Flags().StringVarP(&title, "title", "t", "Alder Counter", "Shell page title")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr, container, title string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	srv, err := server.New(&server.Config{
		Address:   addr,
		Container: container,
		Title:     title,
		Logger:    logger,
	}, counter.Mount(container))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return srv.Shutdown(context.Background())
	}
}
