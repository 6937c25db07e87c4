// Package dumper reads a file and writes its text to an output stream.
package dumper

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding is the fixed text encoding of dumped files.
const Encoding = "UTF-8"

// Dumper writes the decoded text of files to Out.
type Dumper struct {
	Out io.Writer
}

// New returns a Dumper writing to out.
func New(out io.Writer) *Dumper {
	return &Dumper{Out: out}
}

// Dump writes the text of the file at path followed by a newline.
// Nothing is written unless the whole file was read and decoded.
func (d *Dumper) Dump(path string) error {
	text, err := ReadText(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(d.Out, text+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ReadText reads the whole file at path and decodes it as UTF-8.
func ReadText(path string) (string, error) {
	data, err := readAll(path)
	if err != nil {
		return "", err
	}
	return decode(path, data)
}

func readAll(path string) ([]byte, error) {
	if path == "" {
		return nil, &FileAccessError{Op: "args", Err: ErrMissingPath}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Op: "open", Err: ErrIsDirectory}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	return data, nil
}

func decode(path string, data []byte) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", &DecodingError{Path: path, Encoding: Encoding, Offset: n, Err: err}
	}
	return string(out), nil
}
