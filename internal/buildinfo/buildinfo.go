// Package buildinfo exposes version metadata for filedump. Values can be
// overridden at build time via -ldflags; cli.Version and cli.Date are used
// when the fields here are left empty.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/filedump/cli"
)

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 2)
	if c := shortCommit(Commit); c != "" {
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
