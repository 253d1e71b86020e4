// Package layouttest provides surfaces for testing drawing code: a Fake
// with deterministic font metrics and a Recorder that logs every drawing
// call made through it.
package layouttest

import (
	"fmt"
	"strings"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/layout"
)

// CharWidth is the Fake's advance of one character, as a fraction of the
// font size.
const CharWidth = 0.5

var (
	_ layout.Surface = (*Fake)(nil)
	_ layout.Surface = (*Recorder)(nil)
)

// Fake is a Surface that draws nothing. Every character is CharWidth*size
// wide and text wraps greedily at spaces.
type Fake struct {
	W, H  float64
	pages int
	size  float64
	err   error
}

// NewFake returns an A4 Fake.
func NewFake() *Fake {
	return &Fake{W: layout.A4Width, H: layout.A4Height, size: 10}
}

// Fail makes Err report err.
func (f *Fake) Fail(err error) { f.err = err }

func (f *Fake) PageSize() (float64, float64)                  { return f.W, f.H }
func (f *Fake) AddPage()                                      { f.pages++ }
func (f *Fake) PageNo() int                                   { return f.pages }
func (f *Fake) SetFont(_ string, size float64)                { f.size = size }
func (f *Fake) FontSize() float64                             { return f.size }
func (f *Fake) SetTextColor(layout.Color)                     {}
func (f *Fake) SetDrawColor(layout.Color)                     {}
func (f *Fake) SetFillColor(layout.Color)                     {}
func (f *Fake) SetLineWidth(float64)                          {}
func (f *Fake) SetAlpha(float64)                              {}
func (f *Fake) Line(_, _, _, _ float64)                       {}
func (f *Fake) Rect(_, _, _, _ float64, _ string)             {}
func (f *Fake) Write(_, _, _ float64, _ string, _ layout.Align) {}
func (f *Fake) Rotate(_, _, _ float64, draw func())           { draw() }
func (f *Fake) Err() error                                    { return f.err }

func (f *Fake) Image(img *assets.Image, _, _, _, _ float64) error {
	if img.Empty() {
		return fmt.Errorf("layouttest: empty image")
	}
	return nil
}

func (f *Fake) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * CharWidth * f.size
}

func (f *Fake) LineCount(s string, w float64) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, para := range strings.Split(s, "\n") {
		n++
		line := 0.0
		for i, word := range strings.Fields(para) {
			ww := f.StringWidth(word)
			sp := 0.0
			if i > 0 && line > 0 {
				sp = f.StringWidth(" ")
			}
			if line > 0 && line+sp+ww > w {
				n++
				line = ww
				continue
			}
			line += sp + ww
		}
	}
	return n
}

// Op is one recorded drawing call.
type Op struct {
	Page int
	Kind string // text, line, rect, image, page, alpha, rotate
	Text string
	X, Y float64
	W, H float64
}

func (o Op) String() string {
	return fmt.Sprintf("p%d %s %q %.2f,%.2f %.2fx%.2f", o.Page, o.Kind, o.Text, o.X, o.Y, o.W, o.H)
}

// Recorder wraps a Surface and records its drawing calls.
type Recorder struct {
	layout.Surface
	Ops []Op
}

// NewRecorder wraps s.
func NewRecorder(s layout.Surface) *Recorder {
	return &Recorder{Surface: s}
}

func (r *Recorder) add(op Op) {
	op.Page = r.Surface.PageNo()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) AddPage() {
	r.Surface.AddPage()
	r.add(Op{Kind: "page"})
}

func (r *Recorder) SetAlpha(a float64) {
	r.Surface.SetAlpha(a)
	r.add(Op{Kind: "alpha", W: a})
}

func (r *Recorder) Write(x, y, w float64, s string, align layout.Align) {
	r.Surface.Write(x, y, w, s, align)
	r.add(Op{Kind: "text", Text: s, X: x, Y: y, W: w, H: layout.TextHeight(r.Surface, s, w)})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Surface.Line(x1, y1, x2, y2)
	r.add(Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.Surface.Rect(x, y, w, h, style)
	r.add(Op{Kind: "rect", Text: style, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Image(img *assets.Image, x, y, w, h float64) error {
	err := r.Surface.Image(img, x, y, w, h)
	if err == nil {
		r.add(Op{Kind: "image", Text: img.Key, X: x, Y: y, W: w, H: h})
	}
	return err
}

func (r *Recorder) Rotate(angle, cx, cy float64, draw func()) {
	r.add(Op{Kind: "rotate", X: cx, Y: cy, W: angle})
	r.Surface.Rotate(angle, cx, cy, draw)
}

// Texts returns the text of every recorded text op, in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first text op whose text equals s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == "text" && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

// Pages returns the recorded ops grouped by page number.
func (r *Recorder) Pages() map[int][]Op {
	out := make(map[int][]Op)
	for _, op := range r.Ops {
		out[op.Page] = append(out[op.Page], op)
	}
	return out
}
