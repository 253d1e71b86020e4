// Package layout provides the coordinate-based drawing primitives used by the
// document sections: a Surface abstraction over the PDF writer, a Cursor
// that threads the running vertical offset, the label/value Field, the
// Pager that decides page breaks, and a fixed-row Table.
//
// All coordinates are in points with the origin at the top-left corner of
// the page. Text is anchored at the top of its line box.
package layout

import "github.com/lvillar/showroomdocs/assets"

// LineSpacing is the ratio of line height to font size used both when
// measuring and when drawing wrapped text.
const LineSpacing = 1.15

// Font styles accepted by Surface.SetFont.
const (
	Regular    = ""
	Bold       = "B"
	Italic     = "I"
	BoldItalic = "BI"
)

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Rect paint styles.
const (
	Stroke     = "D"
	Fill       = "F"
	FillStroke = "FD"
)

// Surface is the drawing target of a render pass. One Surface belongs to
// exactly one render and is never shared between goroutines.
type Surface interface {
	PageSize() (w, h float64)
	AddPage()
	PageNo() int

	SetFont(style string, size float64)
	FontSize() float64
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	SetAlpha(alpha float64)

	// StringWidth measures s on a single line in the current font.
	StringWidth(s string) float64
	// LineCount returns the number of lines s wraps to within width w.
	// The empty string occupies zero lines.
	LineCount(s string, w float64) int
	// Write draws s wrapped within width w with its first line box at y.
	Write(x, y, w float64, s string, align Align)

	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style string)
	// Image draws img scaled into the w x h box. A failure affects only
	// this element and is returned for logging.
	Image(img *assets.Image, x, y, w, h float64) error
	// Rotate runs draw with the coordinate system rotated counter-clockwise
	// by angle degrees around (cx, cy).
	Rotate(angle, cx, cy float64, draw func())

	// Err reports a failure of the surface itself. Such failures are fatal.
	Err() error
}

// LineHeight returns the height of one text line at the given font size.
func LineHeight(size float64) float64 {
	return size * LineSpacing
}

// TextHeight measures the wrapped height of s within width w using the
// surface's current font.
func TextHeight(s Surface, text string, w float64) float64 {
	return float64(s.LineCount(text, w)) * LineHeight(s.FontSize())
}

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Palette used by every document.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Primary   = Color{0, 81, 163}    // association banner blue
	Text      = Color{26, 26, 26}    // body text
	Muted     = Color{75, 85, 99}    // secondary text
	Danger    = Color{220, 38, 38}   // Car Markaz strips
	Shade     = Color{243, 244, 246} // table header background
	Border    = Color{229, 231, 235} // rules and cell borders
	Watermark = Color{75, 85, 99}
)
