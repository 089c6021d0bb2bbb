package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/govconf"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	MissEvery uint64
	// Optional path redactor. nil logs paths as-is; use HashPath to hide them.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	missCtr atomic.Uint64
}

var _ govconf.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

// HashPath replaces a path with a short SHA-256 prefix.
func HashPath(p string) string {
	sum := sha256.Sum256([]byte(p))
	return hex.EncodeToString(sum[:8])
}

func (h *Hooks) redact(p string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(p)
	}
	return p
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) WriteFailed(path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("govconf.write_failed",
		"path", h.redact(path),
		"err", err)
}

func (h *Hooks) DeleteFailed(path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("govconf.delete_failed",
		"path", h.redact(path),
		"err", err)
}

func (h *Hooks) ReadFailed(path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("govconf.read_failed",
		"path", h.redact(path),
		"err", err)
}

func (h *Hooks) Miss(path string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("govconf.miss",
		"path", h.redact(path))
}
