// Package assets resolves the static raster images a document embeds:
// showroom logos and the bundled social/contact icon set.
//
// Images are normalized once per distinct source into a format the PDF
// surface can consume directly (PNG, JPEG or GIF) and kept for the lifetime
// of the Cache. Failures never propagate: a missing or undecodable file
// yields a nil *Image and the caller omits that element.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register decoders for format sniffing
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

// Image is a decoded, surface-ready raster. The Data slice is shared between
// all readers of the cache and must not be modified.
type Image struct {
	Key    string // unique name used to register the image with a surface
	Type   string // "PNG", "JPG" or "GIF"
	Data   []byte
	Width  int
	Height int
}

// Empty reports whether img carries no usable data.
func (img *Image) Empty() bool {
	return img == nil || len(img.Data) == 0
}

// native maps decoder format names to surface image types that need no
// transcoding.
var native = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// Cache is a process-lifetime store of normalized images keyed by resolved
// file path and target size. It is safe for concurrent use; concurrent first
// requests for the same key share a single load.
type Cache struct {
	root    string
	logoDir string
	iconDir string
	log     *zap.Logger

	mu    sync.RWMutex
	items map[string]*Image
	group singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithRoot sets the directory that relative asset directories are resolved against.
func WithRoot(dir string) Option {
	return func(c *Cache) { c.root = dir }
}

// WithLogoDir sets the directory holding uploaded showroom logos.
func WithLogoDir(dir string) Option {
	return func(c *Cache) { c.logoDir = dir }
}

// WithIconDir sets the directory holding the bundled icon set.
func WithIconDir(dir string) Option {
	return func(c *Cache) { c.iconDir = dir }
}

// WithLogger sets the logger used for resolution warnings.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCache returns an empty cache. Defaults: root ".", logos under
// "uploads/logos", icons under "assets".
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		root:    ".",
		logoDir: filepath.Join("uploads", "logos"),
		iconDir: "assets",
		log:     zap.NewNop(),
		items:   make(map[string]*Image),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Logo resolves a stored logo path such as "/api/uploads/logos/acme.webp".
// Only the base name is used, so stored URLs and bare file names both work.
func (c *Cache) Logo(stored string) *Image {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return nil
	}
	name := filepath.Base(filepath.FromSlash(stored))
	if name == "." || name == string(filepath.Separator) {
		return nil
	}
	return c.Load(filepath.Join(c.dir(c.logoDir), name), 0)
}

// Load returns the image at path, transcoded when needed and scaled to a
// size x size square when size > 0. It returns nil when the file is missing
// or cannot be decoded.
func (c *Cache) Load(path string, size int) *Image {
	key := fmt.Sprintf("%s@%d", path, size)

	c.mu.RLock()
	img, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return img
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.items[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		loaded, err := c.read(key, path, size)
		if err != nil {
			if os.IsNotExist(err) {
				c.log.Debug("asset missing", zap.String("path", path))
			} else {
				c.log.Warn("asset load failed", zap.String("path", path), zap.Error(err))
			}
			return (*Image)(nil), nil
		}
		c.mu.Lock()
		c.items[key] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	return v.(*Image)
}

func (c *Cache) dir(d string) string {
	if filepath.IsAbs(d) {
		return d
	}
	return filepath.Join(c.root, d)
}

func (c *Cache) read(key, path string, size int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Normalize(key, data, size)
}

// Normalize converts raw image bytes into a surface-ready Image. PNG, JPEG
// and GIF pass through untouched unless a resize is requested; any other
// registered format (WebP, BMP, TIFF) is re-encoded as PNG.
func Normalize(key string, data []byte, size int) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: sniffing %s: %w", key, err)
	}
	if typ, ok := native[format]; ok && size <= 0 {
		return &Image{Key: key, Type: typ, Data: data, Width: cfg.Width, Height: cfg.Height}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decoding %s: %w", key, err)
	}
	if size > 0 {
		src = scale(src, size)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, fmt.Errorf("assets: encoding %s: %w", key, err)
	}
	b := src.Bounds()
	return &Image{Key: key, Type: "PNG", Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

func scale(src image.Image, size int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
