// Package log writes debug messages to an optional file. Messages logged
// before a destination is chosen are buffered and flushed once SetFile is
// called.
package log

import (
	"bytes"
	"log"
	"os"
	"slices"
	"sync"
)

// maxBuffered bounds what is kept while no destination is chosen. The
// oldest lines go first.
const maxBuffered = 64 << 10

type sink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	debugSink = &sink{}
	logger    = log.New(debugSink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.discard:
		return len(p), nil
	case s.file != nil:
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}

	s.buffer = append(s.buffer, p...)
	s.buffer = trimLines(s.buffer, maxBuffered)
	return len(p), nil
}

// trimLines drops the oldest whole lines of buf until it fits in limit. A
// single line longer than limit is dropped entirely.
func trimLines(buf []byte, limit int) []byte {
	if len(buf) <= limit {
		return buf
	}
	cut := len(buf) - limit
	tail := buf[cut:]
	if buf[cut-1] == '\n' {
		return slices.Clone(tail)
	}
	if i := bytes.IndexByte(tail, '\n'); i >= 0 && i+1 < len(tail) {
		return slices.Clone(tail[i+1:])
	}
	return nil
}

// SetFile directs debug output to path, creating it if needed, and flushes
// what was buffered so far. An empty path discards all output.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}

	if path == "" {
		debugSink.discard = true
		debugSink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.buffer = nil
		return err
	}

	debugSink.file = f
	debugSink.discard = false
	if len(debugSink.buffer) > 0 {
		_, _ = f.Write(debugSink.buffer)
		_ = f.Sync()
		debugSink.buffer = nil
	}
	return nil
}

// Printf logs a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Println logs a debug message.
func Println(v ...any) {
	logger.Println(v...)
}

// Close closes the log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file == nil {
		return nil
	}
	err := debugSink.file.Close()
	debugSink.file = nil
	return err
}
