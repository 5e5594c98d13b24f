// Package loader reads the interpreter's starting input — stdin or a
// list of files — into the root Value every program operates on: a
// Line-level array of text lines.
package loader

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mako10k/t/internal/errs"
	"github.com/mako10k/t/internal/value"
)

// FromReader reads all lines from r into a Line-level array. A trailing
// newline does not produce a spurious empty final line.
func FromReader(r io.Reader) (value.Value, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []value.Value
	for scanner.Scan() {
		lines = append(lines, value.Text(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return value.Value{}, errs.Runtime(err, "reading input")
	}
	return value.NewArray(lines, value.Line), nil
}

// FromStdin loads the root value from os.Stdin.
func FromStdin() (value.Value, error) {
	return FromReader(os.Stdin)
}

// FromFiles concatenates one or more files, in the order given, into a
// single Line-level array; each file contributes its lines in order.
func FromFiles(paths []string) (value.Value, error) {
	var lines []value.Value
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return value.Value{}, errors.Wrapf(err, "opening %s", path)
		}
		v, err := FromReader(f)
		closeErr := f.Close()
		if err != nil {
			return value.Value{}, errors.Wrapf(err, "reading %s", path)
		}
		if closeErr != nil {
			return value.Value{}, errors.Wrapf(closeErr, "closing %s", path)
		}
		arr, _ := v.AsArray()
		lines = append(lines, arr.Elements...)
	}
	return value.NewArray(lines, value.Line), nil
}
