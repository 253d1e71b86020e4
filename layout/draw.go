package layout

import (
	"strings"

	"github.com/lvillar/showroomdocs/assets"
)

// SectionHeader draws an uppercase bold title with a rule under it and
// returns the height consumed.
func SectionHeader(s Surface, title string, x, y, width float64) float64 {
	s.SetFont(Bold, 10)
	s.SetTextColor(Text)
	title = strings.ToUpper(title)
	h := TextHeight(s, title, width)
	s.Write(x, y, width, title, AlignLeft)

	s.SetDrawColor(Text)
	s.SetLineWidth(0.8)
	s.Line(x, y+h+2, x+width, y+h+2)
	s.SetLineWidth(1)
	return h + 5
}

// WatermarkStyle configures the diagonal page stamp.
type WatermarkStyle struct {
	FontSize float64
	Opacity  float64
	Angle    float64 // counter-clockwise, degrees
	Color    Color
}

// DefaultWatermark is the faint diagonal stamp naming the copy.
var DefaultWatermark = WatermarkStyle{
	FontSize: 48,
	Opacity:  0.08,
	Angle:    30,
	Color:    Watermark,
}

// DrawWatermark renders text centered on the page, rotated around the
// page center, and restores full opacity.
func DrawWatermark(s Surface, text string, st WatermarkStyle) {
	if text == "" {
		return
	}
	pw, ph := s.PageSize()
	s.SetFont(Bold, st.FontSize)
	s.SetTextColor(st.Color)
	s.SetAlpha(st.Opacity)

	cx, cy := pw/2, ph/2
	tw := s.StringWidth(text)
	s.Rotate(st.Angle, cx, cy, func() {
		s.Write(cx-tw/2, cy-LineHeight(st.FontSize)/2, tw+1, text, AlignCenter)
	})
	s.SetAlpha(1)
	s.SetTextColor(Text)
}

// Fit scales an image into a box keeping its aspect ratio and returns the
// drawn size.
func Fit(img *assets.Image, boxW, boxH float64) (w, h float64) {
	if img.Empty() || img.Width <= 0 || img.Height <= 0 {
		return boxW, boxH
	}
	iw, ih := float64(img.Width), float64(img.Height)
	scale := min(boxW/iw, boxH/ih)
	return iw * scale, ih * scale
}

// OneLine flattens whitespace in s and truncates it to n characters,
// marking the cut with an ellipsis.
func OneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return strings.TrimRight(string(r[:n-1]), " ") + "…"
}

// Clip shortens text with an ellipsis until it fits width w in the current
// font.
func Clip(s Surface, text string, w float64) string {
	if s.StringWidth(text) <= w {
		return text
	}
	r := []rune(text)
	for len(r) > 0 {
		r = r[:len(r)-1]
		out := strings.TrimRight(string(r), " ") + "…"
		if s.StringWidth(out) <= w {
			return out
		}
	}
	return ""
}
