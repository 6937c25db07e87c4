package buildinfo

import (
	"testing"

	"github.com/flarebyte/filedump/cli"
)

func withBuildinfo(t *testing.T, version, commit, date, cliVersion, cliDate string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	oldCV, oldCD := cli.Version, cli.Date
	t.Cleanup(func() {
		Version, Commit, Date = oldV, oldC, oldD
		cli.Version, cli.Date = oldCV, oldCD
	})
	Version, Commit, Date = version, commit, date
	cli.Version, cli.Date = cliVersion, cliDate
}

func TestSummaryDefaultsToDev(t *testing.T) {
	withBuildinfo(t, "", "", "", "", "")
	if got := Summary(); got != "dev" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestSummaryShortensCommit(t *testing.T) {
	withBuildinfo(t, "1.2.3", "0123456789abcdef", "2026-01-01", "", "")
	want := "1.2.3 (commit=0123456, date=2026-01-01)"
	if got := Summary(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummaryFallsBackToCLIValues(t *testing.T) {
	withBuildinfo(t, "", "", "", "0.9.0", "2026-02-09")
	want := "0.9.0 (date=2026-02-09)"
	if got := Summary(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
