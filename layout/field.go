package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the display format of every date on a document.
const DateLayout = "02/01/2006"

// FieldGap separates a field's label column from its value column.
const FieldGap = 5

// Stringify converts a record value to display text. Absent values
// (nil, nil pointers, zero times) become the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	case decimal.Decimal:
		return t.String()
	case *decimal.Decimal:
		if t == nil {
			return ""
		}
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// FieldOptions adjust how a Field is drawn.
type FieldOptions struct {
	Underline  bool // rule under the value column
	PlainLabel bool // labels are bold unless set
	BoldValue  bool
	Upper      bool // uppercase label and value
	Color      *Color
}

// Field draws "label" in a column of labelWidth and the value in the rest
// of width, both wrapped and top-aligned at y. It returns the height
// consumed: the taller of the two text blocks, plus the underline offset
// when one is drawn. The font size in effect is kept.
func Field(s Surface, label string, value any, x, y, width, labelWidth float64, opt FieldOptions) float64 {
	val := Stringify(value)
	if opt.Upper {
		label = strings.ToUpper(label)
		val = strings.ToUpper(val)
	}
	size := s.FontSize()
	valueX := x + labelWidth + FieldGap
	valueW := width - labelWidth - FieldGap
	if valueW < 1 {
		valueW = 1
	}

	labelStyle := Bold
	if opt.PlainLabel {
		labelStyle = Regular
	}
	valueStyle := Regular
	if opt.BoldValue {
		valueStyle = Bold
	}

	s.SetFont(labelStyle, size)
	labelH := TextHeight(s, label, labelWidth)
	s.SetFont(valueStyle, size)
	valueH := TextHeight(s, val, valueW)
	h := max(labelH, valueH)

	color := Text
	if opt.Color != nil {
		color = *opt.Color
	}
	s.SetTextColor(color)
	s.SetFont(labelStyle, size)
	s.Write(x, y, labelWidth, label, AlignLeft)
	s.SetFont(valueStyle, size)
	s.Write(valueX, y, valueW, val, AlignLeft)
	s.SetFont(Regular, size)

	if opt.Underline {
		s.SetDrawColor(Border)
		s.SetLineWidth(0.5)
		s.Line(valueX, y+h+1, x+width, y+h+1)
		s.SetLineWidth(1)
		h += 2
	}
	return h
}

// Cursor is the running drawing position of a render pass. It is a value:
// every drawing step returns the advanced cursor.
type Cursor struct {
	X, Y float64
}

// Down moves the cursor dy points down the page.
func (c Cursor) Down(dy float64) Cursor {
	c.Y += dy
	return c
}

// At moves the cursor to column x.
func (c Cursor) At(x float64) Cursor {
	c.X = x
	return c
}

// Spec describes one field in a row.
type Spec struct {
	Label      string
	Value      any
	Offset     float64 // from the cursor's X
	Width      float64
	LabelWidth float64
	Options    FieldOptions
}

// Row draws fields side by side at the cursor and returns the cursor moved
// below the tallest of them plus gap.
func (c Cursor) Row(s Surface, gap float64, fields ...Spec) Cursor {
	var h float64
	for _, f := range fields {
		h = max(h, Field(s, f.Label, f.Value, c.X+f.Offset, c.Y, f.Width, f.LabelWidth, f.Options))
	}
	return c.Down(h + gap)
}

// Split returns n fields spanning width, each with the same label width,
// separated by gutter.
func Split(width, gutter, labelWidth float64, opt FieldOptions, pairs ...[2]any) []Spec {
	if len(pairs) == 0 {
		return nil
	}
	n := float64(len(pairs))
	colW := (width - gutter*(n-1)) / n
	specs := make([]Spec, len(pairs))
	for i, p := range pairs {
		label, _ := p[0].(string)
		specs[i] = Spec{
			Label:      label,
			Value:      p[1],
			Offset:     float64(i) * (colW + gutter),
			Width:      colW,
			LabelWidth: labelWidth,
			Options:    opt,
		}
	}
	return specs
}
