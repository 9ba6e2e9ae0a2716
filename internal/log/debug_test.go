package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetSink(t *testing.T) {
	t.Helper()

	debugSink.mu.Lock()
	prevFile := debugSink.file
	prevBuffer := append([]byte(nil), debugSink.buffer...)
	prevDiscard := debugSink.discard
	debugSink.file = nil
	debugSink.buffer = nil
	debugSink.discard = false
	debugSink.mu.Unlock()

	t.Cleanup(func() {
		debugSink.mu.Lock()
		if debugSink.file != nil {
			_ = debugSink.file.Close()
		}
		debugSink.file = prevFile
		debugSink.buffer = prevBuffer
		debugSink.discard = prevDiscard
		debugSink.mu.Unlock()
	})
}

func TestBufferedMessagesAreFlushed(t *testing.T) {
	resetSink(t)

	Printf("before %s", "file")
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Println("after file")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "before file") || !strings.Contains(out, "after file") {
		t.Fatalf("expected both messages in log, got %q", out)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	resetSink(t)

	Printf("buffered")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	Printf("dropped")

	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	if len(debugSink.buffer) != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", len(debugSink.buffer))
	}
}

func TestSetFileFailureDiscards(t *testing.T) {
	resetSink(t)

	path := filepath.Join(t.TempDir(), "missing", "debug.log")
	if err := SetFile(path); err == nil {
		t.Fatalf("expected SetFile to fail for %q", path)
	}
	Printf("dropped")

	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	if !debugSink.discard || len(debugSink.buffer) != 0 {
		t.Fatalf("expected discard mode with empty buffer")
	}
}

func TestBufferIsBounded(t *testing.T) {
	resetSink(t)

	chunk := strings.Repeat("x", 1024)
	for range 2 * maxBuffered / len(chunk) {
		_, _ = debugSink.Write([]byte(chunk))
	}

	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	if len(debugSink.buffer) > maxBuffered {
		t.Fatalf("buffer grew to %d bytes", len(debugSink.buffer))
	}
}

func TestBufferDropsWholeLines(t *testing.T) {
	resetSink(t)

	line := strings.Repeat("a", 99) + "\n"
	for range maxBuffered/len(line) + 5 {
		_, _ = debugSink.Write([]byte(line))
	}
	_, _ = debugSink.Write([]byte("last\n"))

	debugSink.mu.Lock()
	buf := string(debugSink.buffer)
	debugSink.mu.Unlock()

	if len(buf) > maxBuffered {
		t.Fatalf("buffer grew to %d bytes", len(buf))
	}
	if !strings.HasPrefix(buf, line) {
		t.Fatalf("expected buffer to start on a line boundary, got %q", buf[:min(len(buf), 20)])
	}
	if !strings.HasSuffix(buf, "last\n") {
		t.Fatalf("expected newest line to be kept")
	}
}

func TestTrimLines(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"ab\ncd\n", 10, "ab\ncd\n"},
		{"ab\ncd\n", 4, "cd\n"},
		{"ab\ncd\n", 3, "cd\n"},
		{"abcdef\n", 3, ""},
	}
	for _, tt := range tests {
		if got := string(trimLines([]byte(tt.in), tt.limit)); got != tt.want {
			t.Errorf("trimLines(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}
