package main

import (
	"errors"
	"os"

	"github.com/flarebyte/filedump/cmd/filedump/root"
	"github.com/flarebyte/filedump/internal/logging"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		logging.Report(logging.New(os.Stderr), err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
