// seehuhn.de/go/barcode - EAN-13 barcodes as vector PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger provides verbose progress messages for command line tools.
// Messages are only printed if verbose output is enabled.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes verbose messages to an io.Writer.
// A nil *Logger discards all messages.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New returns a logger which writes to out.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Verbose reports whether messages are printed.
func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

// Debug prints a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.print("[DEBUG] ", format, args)
}

// Info prints an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.print("[INFO] ", format, args)
}

func (l *Logger) print(prefix, format string, args []any) {
	if !l.Verbose() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, prefix+format+"\n", args...)
}
