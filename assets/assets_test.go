package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return buf.Bytes()
}

func writeBMP(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage(w, h)))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestLogoPassthrough(t *testing.T) {
	root := t.TempDir()
	raw := writePNG(t, filepath.Join(root, "uploads", "logos", "acme.png"), 40, 20)

	c := NewCache(WithRoot(root))
	img := c.Logo("/api/uploads/logos/acme.png")
	require.NotNil(t, img)
	assert.Equal(t, "PNG", img.Type)
	assert.Equal(t, raw, img.Data)
	assert.Equal(t, 40, img.Width)
	assert.Equal(t, 20, img.Height)
}

func TestLogoTranscodesUnsupportedFormat(t *testing.T) {
	root := t.TempDir()
	writeBMP(t, filepath.Join(root, "uploads", "logos", "acme.bmp"), 30, 10)

	img := NewCache(WithRoot(root)).Logo("acme.bmp")
	require.NotNil(t, img)
	assert.Equal(t, "PNG", img.Type)
	assert.True(t, bytes.HasPrefix(img.Data, pngMagic))
	assert.Equal(t, 30, img.Width)
}

func TestLoadFailuresYieldNil(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "uploads", "logos", "broken.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(bad), 0o755))
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	c := NewCache(WithRoot(root), WithLogger(zap.New(core)))

	assert.Nil(t, c.Logo(""))
	assert.Nil(t, c.Logo("/api/uploads/logos/missing.png"))
	assert.Nil(t, c.Logo("broken.png"))
	assert.Zero(t, c.Len(), "failures are not cached")
	assert.Equal(t, 1, logs.FilterMessage("asset load failed").Len())
}

func TestLoadIsMemoized(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.png")
	writePNG(t, path, 8, 8)

	c := NewCache()
	first := c.Load(path, 0)
	require.NotNil(t, first)

	require.NoError(t, os.Remove(path))
	assert.Same(t, first, c.Load(path, 0), "second load must not touch the filesystem")
	assert.Equal(t, 1, c.Len())
}

func TestConcurrentFirstAccess(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.png")
	writePNG(t, path, 64, 64)

	c := NewCache()
	const n = 32
	got := make([]*Image, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Load(path, 16)
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for _, img := range got {
		assert.Same(t, got[0], img)
		assert.True(t, bytes.HasPrefix(img.Data, pngMagic))
	}
	assert.Equal(t, 1, c.Len())
}

func TestIconsResizedOnce(t *testing.T) {
	root := t.TempDir()
	// Icons are sniffed by content, so PNG bytes under a .webp name are fine.
	writePNG(t, filepath.Join(root, "assets", "facebook.webp"), 120, 120)
	writePNG(t, filepath.Join(root, "assets", "phone.webp"), 120, 120)

	c := NewCache(WithRoot(root))
	set := c.Icons()
	require.NotNil(t, set.Facebook)
	require.NotNil(t, set.Phone)
	assert.Nil(t, set.Instagram)
	assert.Equal(t, SocialIconPixels, set.Facebook.Width)
	assert.Equal(t, ContactIconPixels, set.Phone.Height)

	again := c.Icons()
	assert.Same(t, set.Facebook, again.Facebook)
	assert.Equal(t, 2, c.Len())
}

func TestEmpty(t *testing.T) {
	var img *Image
	assert.True(t, img.Empty())
	assert.True(t, (&Image{}).Empty())
	assert.False(t, (&Image{Data: []byte{1}}).Empty())
}
