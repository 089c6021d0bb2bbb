package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufHooks(opts Options) (*Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(l, opts), &buf
}

func TestEvents(t *testing.T) {
	h, buf := newBufHooks(Options{})
	h.WriteFailed("/dubbo/a", errors.New("boom"))
	h.DeleteFailed("/dubbo/b", errors.New("boom"))
	h.ReadFailed("/dubbo/c", errors.New("boom"))
	h.Miss("/dubbo/d")

	out := buf.String()
	for _, want := range []string{
		"govconf.write_failed", "path=/dubbo/a",
		"govconf.delete_failed", "path=/dubbo/b",
		"govconf.read_failed", "path=/dubbo/c",
		"govconf.miss", "path=/dubbo/d",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRedact(t *testing.T) {
	h, buf := newBufHooks(Options{Redact: HashPath})
	h.WriteFailed("/secret/path", errors.New("boom"))
	if strings.Contains(buf.String(), "/secret/path") {
		t.Fatalf("path not redacted:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), HashPath("/secret/path")) {
		t.Fatalf("hashed path missing:\n%s", buf.String())
	}
}

func TestMissSampling(t *testing.T) {
	h, buf := newBufHooks(Options{MissEvery: 5})
	for i := 0; i < 10; i++ {
		h.Miss("/dubbo/k")
	}
	if n := strings.Count(buf.String(), "govconf.miss"); n != 2 {
		t.Fatalf("logged %d misses, want 2", n)
	}
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	h.WriteFailed("/p", errors.New("x"))
	h.Miss("/p")
}
