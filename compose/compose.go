// Package compose lays out documents as an ordered list of sections. Each
// section names itself, says whether it applies to a record, how much room
// it needs before it starts, and how to draw itself at the running cursor.
// No section draws into the footer zone: sections either fit above it,
// move to a new page or continue on one.
//
// Which sections a record gets can be asked for with Plan, without drawing.
package compose

import (
	"time"

	"go.uber.org/zap"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/layout"
)

// Page geometry shared by all layouts, in points.
const (
	Left      = 40.0
	FullWidth = 515.0
	CenterX   = Left + FullWidth/2
	// FooterZone is kept free at the bottom of the page for the footer.
	FooterZone = 70.0
)

// Where content starts: on the first page of a copy, and after a page
// break.
const (
	ReceiptTop     = 5.0
	ReceiptPageTop = 30.0
	TokenTop       = 20.0
	TokenPageTop   = 20.0
)

// Assets are resolved once per render and shared by every copy. Any of
// them may be missing; missing images are simply not drawn.
type Assets struct {
	Logo  *assets.Image
	Code  *assets.Image
	Icons assets.IconSet
}

// Context is the state of one copy being drawn.
type Context[T any] struct {
	S      layout.Surface
	Pager  *layout.Pager
	Rec    T
	Assets Assets
	Now    time.Time
	Log    *zap.Logger

	// Y is the running vertical offset on the current page.
	Y float64
}

// Section is one block of a document.
type Section[T any] struct {
	Name string
	// Reserve is the room the section needs below the cursor. When less is
	// left the section starts on a new page. Zero skips the check.
	Reserve float64
	// Fit measures the section before drawing it and starts it on a new
	// page unless all of it fits above the footer zone. Sections taller
	// than a page only get Reserve and must break themselves. Measured
	// sections set their own fonts.
	Fit bool
	// Applies reports whether the section is drawn for a record. Nil
	// means always.
	Applies func(T) bool
	Draw    func(*Context[T])
}

// Layout is an ordered list of sections.
type Layout[T any] []Section[T]

// Plan returns the names of the sections drawn for rec, in order.
func (l Layout[T]) Plan(rec T) []string {
	var names []string
	for _, s := range l {
		if s.Applies == nil || s.Applies(rec) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Draw draws every applicable section of c.Rec starting at c.Y.
func (l Layout[T]) Draw(c *Context[T]) {
	if c.Log == nil {
		c.Log = zap.NewNop()
	}
	for _, s := range l {
		if s.Applies != nil && !s.Applies(c.Rec) {
			continue
		}
		need := s.Reserve
		if s.Fit {
			_, ph := c.S.PageSize()
			if h := c.measure(s) + FooterZone; h <= ph-c.Pager.Top() {
				need = max(need, h)
			}
		}
		if need > 0 {
			c.Y = c.Pager.EnsureSpace(c.Y, need)
		}
		s.Draw(c)
	}
}

// measure returns the height of s without drawing it. The dry run has no
// pager, so nothing in it breaks.
func (c *Context[T]) measure(s Section[T]) float64 {
	dry := &Context[T]{
		S:      layout.Measure(c.S),
		Rec:    c.Rec,
		Assets: c.Assets,
		Now:    c.Now,
		Log:    zap.NewNop(),
	}
	s.Draw(dry)
	return dry.Y
}

func (c *Context[T]) header(title string) {
	c.Y += layout.SectionHeader(c.S, title, Left, c.Y, FullWidth)
}

// row draws fields side by side starting at the left margin.
func (c *Context[T]) row(gap float64, fields ...layout.Spec) {
	c.Y = layout.Cursor{X: Left, Y: c.Y}.Row(c.S, gap, fields...).Y
}

// fixedRow draws fields side by side and advances the cursor by a fixed
// step regardless of their height.
func (c *Context[T]) fixedRow(step float64, fields ...layout.Spec) {
	layout.Cursor{X: Left, Y: c.Y}.Row(c.S, 0, fields...)
	c.Y += step
}

// image draws img when present. Failures only lose the image.
func (c *Context[T]) image(name string, img *assets.Image, x, y, w, h float64) bool {
	if img.Empty() {
		return false
	}
	if err := c.S.Image(img, x, y, w, h); err != nil {
		c.Log.Warn("image omitted", zap.String("image", name), zap.Error(err))
		return false
	}
	return true
}

// text draws a single line of text.
func (c *Context[T]) text(style string, size float64, color layout.Color, x, y, w float64, s string, align layout.Align) {
	c.S.SetFont(style, size)
	c.S.SetTextColor(color)
	c.S.Write(x, y, w, s, align)
}

// ensure starts a new page unless h fits above the footer zone.
func (c *Context[T]) ensure(h float64) {
	if c.Pager != nil {
		c.Y = c.Pager.EnsureSpace(c.Y, h+FooterZone)
	}
}

// paragraph draws wrapped text at the cursor and moves the cursor below
// it. Text reaching the footer zone continues at the top of a new page.
func (c *Context[T]) paragraph(style string, size float64, color layout.Color, x, w float64, text string, align layout.Align) {
	for text != "" {
		c.S.SetFont(style, size)
		c.S.SetTextColor(color)
		head := text
		if c.Pager != nil {
			_, ph := c.S.PageSize()
			fit := int((ph - FooterZone - c.Y) / layout.LineHeight(size))
			if fit < 1 && c.Y > c.Pager.Top() {
				c.Pager.NewPage()
				c.Y = c.Pager.Top()
				continue
			}
			head, text = layout.SplitLines(c.S, text, w, max(fit, 1))
		} else {
			text = ""
		}
		h := layout.TextHeight(c.S, head, w)
		c.S.Write(x, c.Y, w, head, align)
		c.Y += h
		if text != "" {
			c.Pager.NewPage()
			c.Y = c.Pager.Top()
		}
	}
}

func field(label string, value any, offset, width, labelWidth float64, opt layout.FieldOptions) layout.Spec {
	return layout.Spec{
		Label:      label,
		Value:      value,
		Offset:     offset,
		Width:      width,
		LabelWidth: labelWidth,
		Options:    opt,
	}
}

var (
	plain     = layout.FieldOptions{}
	underline = layout.FieldOptions{Underline: true}
)
