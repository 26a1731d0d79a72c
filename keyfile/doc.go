/*
Package keyfile fills ordered sets and maps from line-oriented text files.

A key file holds one entry per line. Leading and trailing white space is
trimmed; empty lines and lines starting with '#' are skipped. For sets a
line is a value, for maps a line is a key and a value, divided by a
separator:

	# colors
	red = #ff0000
	green = #00ff00

Files are read by a background goroutine which hands batches of lines to
the loading goroutine. The container itself is only touched by the caller's
goroutine, as ordtree containers are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package keyfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// ErrSyntax is returned for map lines lacking a separator or a key.
var ErrSyntax = errors.New("keyfile: syntax error")
