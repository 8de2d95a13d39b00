package observe_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/many"
	"github.com/lguimbarda/flux/observe"
)

func TestWithLoggingWritesOneLinePerSignal(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := observe.WithLogging[int](context.Background(), logger)
	rec := fluxtest.NewRecorder[int]()
	observe.Subscribe[int](ctx, many.FromSlice([]int{1, 2}), rec)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// 2 items + 1 completion = 3 log lines, plus 1 for subscription opened.
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "subscription opened") {
		t.Fatalf("expected an 'opened' line, got:\n%s", out)
	}
	if !strings.Contains(out, "subscription completed") {
		t.Fatalf("expected a 'completed' line, got:\n%s", out)
	}
}

func TestWithLoggingTagsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := observe.WithID(context.Background(), "fixed-id")
	ctx = observe.WithLogging[int](ctx, logger)

	rec := fluxtest.NewRecorder[int]()
	observe.Subscribe[int](ctx, many.Just(1), rec)

	if !strings.Contains(buf.String(), "fixed-id") {
		t.Fatalf("expected the fixed correlation id in the log output, got:\n%s", buf.String())
	}
}
