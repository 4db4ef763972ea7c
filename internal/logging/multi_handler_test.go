package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_FansOut(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.Info("startup complete")
	log.Error("store failure", "error", "connection refused")

	if got := a.String(); !strings.Contains(got, "startup complete") || !strings.Contains(got, "store failure") {
		t.Fatalf("info handler missing records: %q", got)
	}
	if got := b.String(); strings.Contains(got, "startup complete") {
		t.Fatalf("error handler received info record: %q", got)
	}
	if got := b.String(); !strings.Contains(got, "connection refused") {
		t.Fatalf("error handler missing error record: %q", got)
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be disabled when every handler requires error")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error must be enabled")
	}
}
