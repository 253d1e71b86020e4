// Package verify builds the public verification link for a document and
// renders it as a scannable square 2D code.
package verify

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/qr"
	"go.uber.org/zap"

	"github.com/lvillar/showroomdocs/assets"
)

// DefaultOrigin is used when no public origin is configured.
const DefaultOrigin = "http://localhost:3000"

// Symbology selects the 2D code family.
type Symbology string

const (
	QR         Symbology = "qr"
	DataMatrix Symbology = "datamatrix"
)

// ErrEmptyID is returned when a code is requested without a document id.
var ErrEmptyID = errors.New("verify: empty document id")

// BaseURL picks the origin embedded in verification links from a comma
// separated list: the first https origin wins, otherwise the first entry.
func BaseURL(origins string) string {
	var list []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			list = append(list, o)
		}
	}
	if len(list) == 0 {
		return DefaultOrigin
	}
	for _, o := range list {
		if strings.HasPrefix(strings.ToLower(o), "https://") {
			return o
		}
	}
	return list[0]
}

// Generator produces verification links and codes.
type Generator struct {
	base      string
	symbology Symbology
	size      int
	log       *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSymbology selects QR (default) or Data Matrix.
func WithSymbology(s Symbology) Option {
	return func(g *Generator) { g.symbology = s }
}

// WithSize sets the raster edge length in pixels (default 100).
func WithSize(px int) Option {
	return func(g *Generator) {
		if px > 0 {
			g.size = px
		}
	}
}

// WithLogger sets the logger for generation warnings.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator returns a Generator for the given comma separated origins.
func NewGenerator(origins string, opts ...Option) *Generator {
	g := &Generator{
		base:      BaseURL(origins),
		symbology: QR,
		size:      100,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Base returns the selected origin.
func (g *Generator) Base() string { return g.base }

// URL returns the verification link for a document id.
func (g *Generator) URL(id string) string {
	return g.base + "/verify-sale/" + url.PathEscape(id)
}

// Code renders the verification link for id as a PNG image. It returns nil
// and logs a warning when the code cannot be produced; callers omit the
// graphic in that case.
func (g *Generator) Code(id string) *assets.Image {
	img, err := g.encode(id)
	if err != nil {
		g.log.Warn("verification code generation failed", zap.String("document_id", id), zap.Error(err))
		return nil
	}
	return img
}

func (g *Generator) encode(id string) (*assets.Image, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	link := g.URL(id)

	var (
		code barcode.Barcode
		err  error
	)
	switch g.symbology {
	case QR, "":
		code, err = qr.Encode(link, qr.M, qr.Auto)
	case DataMatrix:
		code, err = datamatrix.Encode(link)
	default:
		return nil, fmt.Errorf("verify: unknown symbology %q", g.symbology)
	}
	if err != nil {
		return nil, fmt.Errorf("verify: encoding %s: %w", g.symbology, err)
	}

	scaled, err := barcode.Scale(code, g.size, g.size)
	if err != nil {
		return nil, fmt.Errorf("verify: scaling code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("verify: encoding png: %w", err)
	}
	return &assets.Image{
		Key:    "verify:" + id,
		Type:   "PNG",
		Data:   buf.Bytes(),
		Width:  g.size,
		Height: g.size,
	}, nil
}
