package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tbckr/artifact-info/internal/cli"
)

func main() {
	ctx := context.Background()

	// LevelVar lets --verbose raise the level after the logger is built.
	programLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))

	if err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr, logger, programLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	logger *slog.Logger,
	programLevel *slog.LevelVar,
) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	return cli.Execute(ctx, args[1:], stdin, stdout, stderr, logger, programLevel)
}
