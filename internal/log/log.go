package log

import (
	"context"
	"io"
	"log/slog"
)

// New creates a logger writing to w. Verbose raises the level to Info,
// debug to Debug; otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose, debug bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case debug:
		level = slog.LevelDebug
	case verbose:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// ComponentHandler wraps an slog.Handler and tags every record with the
// subsystem that emitted it.
//
// Design decision: We use a handler wrapper rather than per-call attributes
// because it integrates with standard slog APIs and works with any
// underlying handler (text, JSON, etc.).
type ComponentHandler struct {
	handler   slog.Handler
	component string
}

// NewComponentHandler wraps handler so that every record carries a
// "component" attribute. If handler is nil, slog.Default().Handler() is used.
func NewComponentHandler(handler slog.Handler, component string) *ComponentHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ComponentHandler{handler: handler, component: component}
}

// Enabled delegates to the underlying handler.
func (h *ComponentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle tags the record and passes it to the underlying handler.
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	tagged := r.Clone()
	tagged.AddAttrs(slog.String("component", h.component))
	return h.handler.Handle(ctx, tagged)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ComponentHandler{handler: h.handler.WithAttrs(attrs), component: h.component}
}

// WithGroup returns a new handler with the given group name.
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{handler: h.handler.WithGroup(name), component: h.component}
}

// WithComponent returns a logger whose records are tagged with component.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return slog.New(NewComponentHandler(logger.Handler(), component))
}
