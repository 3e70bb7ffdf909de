package segy

import "github.com/robert-malhotra/go-segy/field"

// Option configures how a file is opened.
type Option func(*options)

type options struct {
	writable     bool
	unstructured bool
	ilineField   field.Tag
	xlineField   field.Tag
	offsetField  field.Tag
}

func defaultOptions() *options {
	return &options{
		ilineField:  field.Inline,
		xlineField:  field.Crossline,
		offsetField: field.Offset,
	}
}

// WithWritable opens the file read-write instead of read-only.
func WithWritable() Option {
	return func(o *options) {
		o.writable = true
	}
}

// WithUnstructured skips geometry resolution entirely; only flat trace
// and header addressing will be available. Useful for files known to
// have no consistent grid, or to avoid the header scan on very large
// files.
func WithUnstructured() Option {
	return func(o *options) {
		o.unstructured = true
	}
}

// WithInlineField sets the trace header word holding the inline
// coordinate. The default is the standard byte 189.
func WithInlineField(t field.Tag) Option {
	return func(o *options) {
		if t.Known() {
			o.ilineField = t
		}
	}
}

// WithCrosslineField sets the trace header word holding the crossline
// coordinate. The default is the standard byte 193.
func WithCrosslineField(t field.Tag) Option {
	return func(o *options) {
		if t.Known() {
			o.xlineField = t
		}
	}
}

// WithOffsetField sets the trace header word holding the offset
// coordinate. The default is the standard byte 37.
func WithOffsetField(t field.Tag) Option {
	return func(o *options) {
		if t.Known() {
			o.offsetField = t
		}
	}
}
