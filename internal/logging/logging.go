// Package logging builds the zap loggers used by the command line tool and
// masks personal identifiers before they are logged.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns a JSON (production) or console (development) logger at the
// given level. An empty level means info.
func New(format, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// MaskCNIC hides every digit of a national identity number except the last
// four, keeping separators so the shape stays recognizable. Numbers of four
// digits or fewer are hidden completely.
func MaskCNIC(cnic string) string {
	cnic = strings.TrimSpace(cnic)
	if cnic == "" {
		return ""
	}
	digits := 0
	for _, r := range cnic {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	keep := digits - 4
	if keep <= 0 {
		keep = digits
	}
	var b strings.Builder
	seen := 0
	for _, r := range cnic {
		if r >= '0' && r <= '9' {
			seen++
			if seen <= keep {
				b.WriteByte('*')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskPhone keeps the last four characters of a phone number. Numbers of
// four characters or fewer are hidden completely.
func MaskPhone(phone string) string {
	r := []rune(strings.TrimSpace(phone))
	if len(r) == 0 {
		return ""
	}
	if len(r) <= 4 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}
