package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// filteringHandler wraps a base slog.Handler and drops records from
// packages excluded by the config.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies package filtering before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil || (h.cfg.enabledPackagesSet == nil && h.cfg.disabledPackagesSet == nil) {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg := recordPackage(r)
	if pkg != "" {
		pkgLower := strings.ToLower(pkg)
		if _, found := h.cfg.disabledPackagesSet[pkgLower]; found {
			return nil
		}
		if h.cfg.enabledPackagesSet != nil {
			if _, found := h.cfg.enabledPackagesSet[pkgLower]; !found {
				return nil
			}
		}
	}
	return h.baseHandler.Handle(ctx, r)
}

// recordPackage resolves the originating package directory name for a record.
func recordPackage(r slog.Record) string {
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			return filepath.Base(filepath.Dir(frame.File))
		}
	}
	var pkg string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
				pkg = filepath.Base(filepath.Dir(source.File))
				return false
			}
		}
		return true
	})
	return pkg
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
