// Package cmd implements the buzzd subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openbuzz/buzzd/buzz"
	"github.com/openbuzz/buzzd/internal/hiddev"
	"github.com/openbuzz/buzzd/internal/log"
)

// Listen streams decoded button events from a report source until
// interrupted or the source ends.
type Listen struct {
	Path string `arg:"" help:"Report source: hidraw node (e.g. /dev/hidraw0) or replay file" type:"path"`
}

// Run is called by Kong when the listen command is executed.
func (l *Listen) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return l.Listen(ctx, logger, rawLogger)
}

// Listen opens the source and pumps events until ctx is cancelled.
func (l *Listen) Listen(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	f, err := hiddev.Open(l.Path)
	if err != nil {
		return fmt.Errorf("open report source: %w", err)
	}
	defer f.Close()

	if id, ok := hiddev.Describe(f); ok {
		logger.Info("opened report device",
			"name", id.Name,
			"vendor", fmt.Sprintf("%04x", id.Vendor),
			"product", fmt.Sprintf("%04x", id.Product))
	} else {
		logger.Info("opened report source", "path", l.Path)
	}

	// A pending blocking read does not observe ctx; closing the source
	// unblocks it.
	go func() {
		<-ctx.Done()
		f.Close()
	}()

	stream := buzz.NewStream(f, buzz.NewDecoder(), logger, rawLogger)
	done := make(chan error, 1)
	go func() { done <- stream.Run(ctx) }()

	for e := range stream.Events() {
		logger.Info("button",
			"controller", e.Controller,
			"button", e.Button,
			"name", e.Name,
			"action", e.Action.String())
	}

	err = <-done
	if ctx.Err() != nil {
		return nil
	}
	return err
}
