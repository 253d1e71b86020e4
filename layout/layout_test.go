package layout_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/layout"
	"github.com/lvillar/showroomdocs/layout/layouttest"
	"github.com/lvillar/showroomdocs/record"
)

func TestStringify(t *testing.T) {
	d := time.Date(2024, time.March, 5, 15, 4, 0, 0, time.UTC)
	var nilTime *time.Time
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Corolla", "Corolla"},
		{"date", d, "05/03/2024"},
		{"date pointer", &d, "05/03/2024"},
		{"nil date pointer", nilTime, ""},
		{"zero date", time.Time{}, ""},
		{"record date", record.NewDate(d), "05/03/2024"},
		{"zero record date", record.Date{}, ""},
		{"int", 2019, "2019"},
		{"decimal", decimal.RequireFromString("1500.5"), "1500.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, layout.Stringify(tc.in))
		})
	}
}

func TestFieldHeightIsTallerBlock(t *testing.T) {
	s := layouttest.NewFake()
	s.SetFont(layout.Regular, 10)
	lh := layout.LineHeight(10)

	// label fits on one line, value wraps to one word per 60pt line
	value := strings.Repeat("abcdefghi ", 3)
	h := layout.Field(s, "Name:", value, 40, 100, 165, 100, layout.FieldOptions{})
	assert.InDelta(t, 3*lh, h, 1e-9)

	h = layout.Field(s, "A rather long label that wraps", "x", 40, 100, 205, 50, layout.FieldOptions{})
	assert.InDelta(t, float64(s.LineCount("A rather long label that wraps", 50))*lh, h, 1e-9)
	assert.Greater(t, h, lh)
}

func TestFieldUnderlineSpansValueColumn(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.SetFont(layout.Regular, 10)

	h := layout.Field(rec, "CNIC:", "42101-1234567-1", 40, 200, 255, 80, layout.FieldOptions{Underline: true})
	lh := layout.LineHeight(10)
	assert.InDelta(t, lh+2, h, 1e-9)

	var lines []layouttest.Op
	for _, op := range rec.Ops {
		if op.Kind == "line" {
			lines = append(lines, op)
		}
	}
	require.Len(t, lines, 1)
	assert.InDelta(t, 40+80+layout.FieldGap, lines[0].X, 1e-9)
	assert.InDelta(t, 40+255-lines[0].X, lines[0].W, 1e-9)
	assert.InDelta(t, 200+lh+1, lines[0].Y, 1e-9)
	assert.Zero(t, lines[0].H)
}

func TestFieldEmptyValue(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.SetFont(layout.Regular, 10)
	h := layout.Field(rec, "Phone:", nil, 40, 10, 200, 60, layout.FieldOptions{})
	assert.InDelta(t, layout.LineHeight(10), h, 1e-9)
	assert.Contains(t, rec.Texts(), "")
}

func TestFieldUpper(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	layout.Field(rec, "Make:", "toyota", 0, 0, 200, 60, layout.FieldOptions{Upper: true})
	assert.Equal(t, []string{"MAKE:", "TOYOTA"}, rec.Texts())
}

func TestCursorRowAdvancesByTallest(t *testing.T) {
	s := layouttest.NewFake()
	s.SetFont(layout.Regular, 10)
	lh := layout.LineHeight(10)

	c := layout.Cursor{X: 40, Y: 100}
	next := c.Row(s, 6, layout.Split(515, 15, 60, layout.FieldOptions{},
		[2]any{"Chassis:", "NZE141-1234567"},
		[2]any{"Engine:", strings.Repeat("word ", 40)},
	)...)
	assert.Equal(t, 40.0, next.X)
	assert.Greater(t, next.Y, 100+lh+6)

	next = c.Row(s, 6, layout.Split(515, 15, 60, layout.FieldOptions{},
		[2]any{"Chassis:", "A"},
		[2]any{"Engine:", "B"},
	)...)
	assert.InDelta(t, 100+lh+6, next.Y, 1e-9)
}

func TestSplit(t *testing.T) {
	specs := layout.Split(515, 15, 70, layout.FieldOptions{}, [2]any{"A", 1}, [2]any{"B", 2})
	require.Len(t, specs, 2)
	assert.Equal(t, 0.0, specs[0].Offset)
	assert.InDelta(t, 250, specs[0].Width, 1e-9)
	assert.InDelta(t, 265, specs[1].Offset, 1e-9)
	assert.Nil(t, layout.Split(515, 15, 70, layout.FieldOptions{}))
}

func TestEnsureSpace(t *testing.T) {
	s := layouttest.NewFake()
	s.AddPage()
	added := 0
	p := layout.NewPager(s, layout.DefaultTop)
	p.OnPage = func() { added++ }

	_, h := s.PageSize()
	assert.Equal(t, 300.0, p.EnsureSpace(300, 200))
	assert.Equal(t, h-200, p.EnsureSpace(h-200, 200), "exactly enough room")
	assert.Equal(t, 1, s.PageNo())

	y := p.EnsureSpace(h-199, 200)
	assert.Equal(t, float64(layout.DefaultTop), y)
	assert.Equal(t, 2, s.PageNo())
	assert.Equal(t, 1, added)

	assert.Equal(t, y, p.EnsureSpace(y, 200), "idempotent after a break")
	assert.Equal(t, 2, s.PageNo())
}

func TestEnsureSpaceOversizedReservation(t *testing.T) {
	s := layouttest.NewFake()
	s.AddPage()
	p := layout.NewPager(s, 20)
	y := p.EnsureSpace(400, 5000)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, y, p.EnsureSpace(y, 5000))
	assert.Equal(t, 2, s.PageNo())
}

func TestSectionHeader(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	h := layout.SectionHeader(rec, "Vehicle Details", 40, 50, 515)
	assert.InDelta(t, layout.LineHeight(10)+5, h, 1e-9)
	assert.Equal(t, []string{"VEHICLE DETAILS"}, rec.Texts())
}

func TestDrawWatermark(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	layout.DrawWatermark(rec, "Customer Copy", layout.DefaultWatermark)

	require.GreaterOrEqual(t, len(rec.Ops), 4)
	assert.Equal(t, "alpha", rec.Ops[0].Kind)
	assert.Equal(t, 0.08, rec.Ops[0].W)
	assert.Equal(t, "rotate", rec.Ops[1].Kind)
	assert.InDelta(t, layout.A4Width/2, rec.Ops[1].X, 1e-9)
	assert.InDelta(t, layout.A4Height/2, rec.Ops[1].Y, 1e-9)
	assert.Equal(t, "Customer Copy", rec.Ops[2].Text)
	last := rec.Ops[len(rec.Ops)-1]
	assert.Equal(t, "alpha", last.Kind)
	assert.Equal(t, 1.0, last.W)

	rec = layouttest.NewRecorder(layouttest.NewFake())
	layout.DrawWatermark(rec, "", layout.DefaultWatermark)
	assert.Empty(t, rec.Ops)
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "Shop 4, Block 7", layout.OneLine("Shop 4,\n  Block 7", 70))
	assert.Equal(t, "abcd…", layout.OneLine("abcdefgh", 5))
	assert.Equal(t, "ab…", layout.OneLine("ab cdefgh", 4))
	assert.Equal(t, "", layout.OneLine("", 5))
}

func TestFit(t *testing.T) {
	img := &assets.Image{Data: []byte{1}, Width: 400, Height: 100}
	w, h := layout.Fit(img, 180, 80)
	assert.InDelta(t, 180, w, 1e-9)
	assert.InDelta(t, 45, h, 1e-9)

	img = &assets.Image{Data: []byte{1}, Width: 100, Height: 200}
	w, h = layout.Fit(img, 180, 80)
	assert.InDelta(t, 40, w, 1e-9)
	assert.InDelta(t, 80, h, 1e-9)
}

func TestTableRows(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.AddPage()
	tb := layout.NewTable(rec).
		SetColumns(layout.Column{Width: 220}, layout.Column{Width: 140}, layout.Column{}).
		SetPosition(40, 100).
		SetWidth(515)
	tb.AddHeaderRow().Cell("Payment Method").Cell("Amount").Cell("Details")
	tb.AddRow().Cell("Cash").Cell("PKR 100").Cell("—")
	tb.AddRow().
		StyledCell("Total Amount", layout.Style(layout.Bold)).
		StyledCell("PKR 100", layout.Style(layout.Bold)).
		StyledCell("One Hundred Only", layout.Style(layout.Italic))

	y := tb.Render(nil, 0)
	assert.InDelta(t, 100+3*22, y, 1e-9)
	assert.InDelta(t, 66, tb.Height(), 1e-9)

	var widths []float64
	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Text == layout.Stroke && op.Y == 100 {
			widths = append(widths, op.W)
		}
	}
	assert.Equal(t, []float64{220, 140, 155}, widths)
}

func TestTableRowGrowsToFitText(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.AddPage()
	tb := layout.NewTable(rec).
		SetColumns(layout.Column{Width: 100}, layout.Column{Width: 60}).
		SetPosition(40, 100).
		SetRowHeight(16).
		SetPadding(3).
		SetFontSize(8)
	tb.AddRow().Cell("Cash").Cell("PKR 100")
	tb.AddRow().Cell("Cheque").Cell("No: 001234, Bank: MCB")

	// the second column wraps to two lines
	wrapped := 2*layout.LineHeight(8) + 6
	assert.InDelta(t, 16+wrapped, tb.Height(), 1e-9)
	y := tb.Render(nil, 0)
	assert.InDelta(t, 100+16+wrapped, y, 1e-9)

	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Y > 100 {
			assert.InDelta(t, wrapped, op.H, 1e-9)
		}
	}
}

func TestTableBreaksOnGrownRowHeight(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.AddPage()
	pager := layout.NewPager(rec, 30)
	_, h := rec.PageSize()

	tb := layout.NewTable(rec).SetColumns(layout.Column{Width: 60}).SetPosition(40, h-20).SetRowHeight(16).SetPadding(3)
	tb.AddRow().Cell("one two three four five six")
	y := tb.Render(pager, 0)

	assert.Equal(t, 2, rec.PageNo(), "the row is taller than the room left")
	assert.Greater(t, y, 30.0+16)
}

func TestTableRepeatsHeaderAfterBreak(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.AddPage()
	pager := layout.NewPager(rec, 30)
	_, h := rec.PageSize()

	tb := layout.NewTable(rec).SetColumns(layout.Column{Width: 100}).SetPosition(40, h-60)
	tb.AddHeaderRow().Cell("Head")
	tb.AddRow().Cell("one")
	tb.AddRow().Cell("two")
	y := tb.Render(pager, 0)

	assert.Equal(t, 2, rec.PageNo())
	pages := rec.Pages()
	var second []string
	for _, op := range pages[2] {
		if op.Kind == "text" {
			second = append(second, op.Text)
		}
	}
	assert.Equal(t, []string{"Head", "two"}, second)
	assert.InDelta(t, 30+2*22, y, 1e-9)
}

func TestMeasureDrawsNothing(t *testing.T) {
	rec := layouttest.NewRecorder(layouttest.NewFake())
	rec.AddPage()
	m := layout.Measure(rec)

	h := layout.SectionHeader(m, "Remarks", 40, 50, 515)
	assert.InDelta(t, layout.LineHeight(10)+5, h, 1e-9)
	m.AddPage()
	layout.DrawWatermark(m, "Customer Copy", layout.DefaultWatermark)
	require.NoError(t, m.Image(&assets.Image{Key: "logo"}, 0, 0, 10, 10))

	assert.Equal(t, 1, rec.PageNo())
	assert.Len(t, rec.Ops, 1, "only the page added before measuring")
	assert.Equal(t, layout.DefaultWatermark.FontSize, rec.FontSize(), "fonts pass through")
}

func TestSplitLines(t *testing.T) {
	s := layouttest.NewFake()
	s.SetFont(layout.Regular, 10)
	// 5 points per character: "aaaa bbbb" is 45 wide
	text := "aaaa bbbb cccc dddd\neeee ffff"

	head, rest := layout.SplitLines(s, text, 45, 1)
	assert.Equal(t, "aaaa bbbb", head)
	assert.Equal(t, "cccc dddd\neeee ffff", rest)

	head, rest = layout.SplitLines(s, text, 45, 3)
	assert.Equal(t, "aaaa bbbb cccc dddd\neeee ffff", head)
	assert.Empty(t, rest)

	head, rest = layout.SplitLines(s, "aaaa bbbb\n\ncccc", 45, 2)
	assert.Equal(t, "aaaa bbbb", head)
	assert.Equal(t, "cccc", rest, "breaks between the parts are dropped")

	head, rest = layout.SplitLines(s, "averyveryverylongword tail", 20, 1)
	assert.Equal(t, "averyveryverylongword", head, "always makes progress")
	assert.Equal(t, "tail", rest)

	head, rest = layout.SplitLines(s, "  ", 45, 1)
	assert.Empty(t, head)
	assert.Empty(t, rest)
}

func TestPDFSurface(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	render := func() []byte {
		p, err := layout.NewPDF(layout.WithCreationDate(created), layout.WithMetadata("Receipt", "Showroom"))
		require.NoError(t, err)
		p.AddPage()
		p.SetFont(layout.Regular, 10)
		p.Write(40, 40, 200, "Purchaser’s Signature — Karachi", layout.AlignLeft)
		p.Write(40, 80, 200, strings.Repeat("justified words ", 30), layout.AlignJustify)
		layout.DrawWatermark(p, "Showroom Copy", layout.DefaultWatermark)
		require.NoError(t, p.Err())

		var buf bytes.Buffer
		require.NoError(t, p.Output(&buf))
		return buf.Bytes()
	}
	a, b := render(), render()
	assert.True(t, bytes.HasPrefix(a, []byte("%PDF")))
	assert.Equal(t, a, b, "same input, same bytes")
}

func TestPDFLineCount(t *testing.T) {
	p, err := layout.NewPDF()
	require.NoError(t, err)
	p.AddPage()
	p.SetFont(layout.Regular, 10)
	assert.Equal(t, 0, p.LineCount("", 100))
	assert.Equal(t, 1, p.LineCount("short", 100))
	assert.Greater(t, p.LineCount(strings.Repeat("wrap me ", 40), 100), 5)
	assert.Equal(t, 1, p.LineCount("“quoted” — dash", 300))
}

func TestPDFBadImageIsIsolated(t *testing.T) {
	p, err := layout.NewPDF()
	require.NoError(t, err)
	p.AddPage()

	bad := &assets.Image{Key: "broken", Type: "PNG", Data: []byte("not a png"), Width: 1, Height: 1}
	assert.Error(t, p.Image(bad, 10, 10, 20, 20))
	assert.Error(t, p.Image(nil, 10, 10, 20, 20))
	assert.NoError(t, p.Err())

	var buf bytes.Buffer
	assert.NoError(t, p.Output(&buf))
}

func TestNewPDFRejectsBadSize(t *testing.T) {
	_, err := layout.NewPDF(layout.WithPageSize(0, 100))
	assert.Error(t, err)
}
