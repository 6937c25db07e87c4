package dumper

import (
	"errors"
	"fmt"
	"io/fs"
)

const (
	exitCodeFileAccess = 1
	exitCodeDecoding   = 2
)

var (
	// ErrMissingPath is wrapped when no path argument was supplied.
	ErrMissingPath = errors.New("no file path given")
	// ErrIsDirectory is wrapped when the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// FileAccessError reports a path that could not be opened or read.
// Op is one of "args", "open" or "read".
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, unwrapPathError(e.Err))
}

func (e *FileAccessError) Unwrap() error { return e.Err }
func (e *FileAccessError) Kind() string  { return "FileAccessError" }
func (e *FileAccessError) ExitCode() int { return exitCodeFileAccess }

// DecodingError reports file content that is not valid under Encoding.
// Offset is the position of the first invalid byte.
type DecodingError struct {
	Path     string
	Encoding string
	Offset   int
	Err      error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode %s: invalid %s at byte offset %d", e.Path, e.Encoding, e.Offset)
}

func (e *DecodingError) Unwrap() error { return e.Err }
func (e *DecodingError) Kind() string  { return "DecodingError" }
func (e *DecodingError) ExitCode() int { return exitCodeDecoding }

// unwrapPathError drops the op and path already carried by FileAccessError.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
