package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// splitHandler sends records below errLevel to out and the rest to errOut.
// Records below LevelInfo are dropped.
type splitHandler struct {
	out      slog.Handler
	errOut   slog.Handler
	errLevel slog.Level
}

func newSplitHandler(out, errOut io.Writer) *splitHandler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return &splitHandler{
		out:      slog.NewTextHandler(out, opts),
		errOut:   slog.NewTextHandler(errOut, opts),
		errLevel: slog.LevelError,
	}
}

func (h *splitHandler) pick(level slog.Level) slog.Handler {
	if level >= h.errLevel {
		return h.errOut
	}
	return h.out
}

func (h *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.pick(r.Level).Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{out: h.out.WithAttrs(attrs), errOut: h.errOut.WithAttrs(attrs), errLevel: h.errLevel}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{out: h.out.WithGroup(name), errOut: h.errOut.WithGroup(name), errLevel: h.errLevel}
}

// setupLogger makes the split handler the default logger. With a non-empty
// logPath every record is appended to that file as well; call the returned
// func on exit to close it.
func setupLogger(logPath string) (func(), error) {
	if logPath == "" {
		slog.SetDefault(slog.New(newSplitHandler(os.Stdout, os.Stderr)))
		return func() {}, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(newSplitHandler(io.MultiWriter(os.Stdout, f), io.MultiWriter(os.Stderr, f))))
	return func() { f.Close() }, nil
}
