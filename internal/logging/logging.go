// Package logging writes filedump diagnostics to standard error.
package logging

import (
	"errors"
	"io"
	"log/slog"

	"github.com/flarebyte/filedump/internal/dumper"
	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// New returns a logger writing to w. Colour is used only when w is a terminal.
func New(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       slog.LevelInfo,
		NoColor:     !isTerminal(w),
		ReplaceAttr: dropTime,
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Timestamps make diagnostics differ between identical runs.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// Report logs err as a single record naming the error kind and where it occurred.
func Report(logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	var (
		fae *dumper.FileAccessError
		de  *dumper.DecodingError
	)
	attrs := make([]any, 0, 12)
	switch {
	case errors.As(err, &fae):
		attrs = append(attrs, "kind", fae.Kind(), "op", fae.Op)
		if fae.Path != "" {
			attrs = append(attrs, "path", fae.Path)
		}
	case errors.As(err, &de):
		attrs = append(attrs,
			"kind", de.Kind(),
			"op", "decode",
			"path", de.Path,
			"encoding", de.Encoding,
			"offset", de.Offset,
		)
	default:
		attrs = append(attrs, "kind", "error")
	}
	attrs = append(attrs, tint.Err(err))
	logger.Error("filedump failed", attrs...)
}
