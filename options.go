package showroomdocs

import (
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/verify"
)

// Option configures an Engine.
type Option func(*Engine)

// WithAssetCache shares an image cache between engines. Without it every
// engine gets its own cache with default directories.
func WithAssetCache(c *assets.Cache) Option {
	return func(e *Engine) {
		if c != nil {
			e.cache = c
		}
	}
}

// WithVerifier sets the generator for the verification code printed on
// receipts.
func WithVerifier(g *verify.Generator) Option {
	return func(e *Engine) {
		if g != nil {
			e.codes = g
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithLetterheadDir enables showroom stationery. Letterhead references
// stored on a showroom are looked up in dir.
func WithLetterheadDir(dir string) Option {
	return func(e *Engine) { e.letterheads = dir }
}

// WithClock replaces time.Now. The clock supplies the date printed when a
// record carries none.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithCompression toggles PDF stream compression (default on).
func WithCompression(on bool) Option {
	return func(e *Engine) { e.compress = on }
}

// WithCopies overrides the watermark of each copy. One copy is drawn per
// name, in order. An empty name draws a copy without watermark.
func WithCopies(names ...string) Option {
	return func(e *Engine) {
		if len(names) > 0 {
			e.copies = append([]string(nil), names...)
		}
	}
}
