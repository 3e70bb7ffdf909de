// Package segy provides structured, multi-dimensional access to SEG-Y
// seismic files: flat trace and header access on any file, and line,
// gather and depth-slice addressing on files with a consistent
// inline/crossline geometry.
package segy

import (
	"errors"

	"github.com/robert-malhotra/go-segy/internal/segyfd"
)

// Common errors
var (
	// ErrNotSEGY means the file's size or binary header cannot
	// describe a valid SEG-Y layout.
	ErrNotSEGY = segyfd.ErrNotSEGY
	// ErrClosed means the file has been closed.
	ErrClosed = errors.New("file is closed")
	// ErrUnstructured means the operation requires line geometry on
	// a file opened in unstructured mode.
	ErrUnstructured = errors.New("file is unstructured")
	// ErrNotFound means a line, crossline or offset label is not in
	// the file's label set.
	ErrNotFound = errors.New("label not found")
	// ErrOutOfRange means a trace index, text header slot or depth
	// position is outside its valid bounds.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInconsistent means the geometry does not hold together: a
	// gather cell did not resolve to the expected traces for a
	// coordinate pair, or a caller-supplied layout carried duplicate
	// labels.
	ErrInconsistent = errors.New("inconsistent geometry")
	// ErrReadonly means a write was attempted on a file opened
	// read-only.
	ErrReadonly = errors.New("file is read-only")
)
