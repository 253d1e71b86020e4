package layout

// Column defines one table column.
type Column struct {
	Width float64 // 0 fills the remaining width
	Align Align
}

// CellStyle overrides the table defaults for a row or a cell. Nil and
// empty fields inherit.
type CellStyle struct {
	FontStyle *string
	Fill      *Color
	Text      *Color
	Align     Align
}

// Style is a convenience for a CellStyle with only the font style set.
func Style(fontStyle string) *CellStyle {
	return &CellStyle{FontStyle: &fontStyle}
}

type tableCell struct {
	text  string
	style *CellStyle
}

// TableRow is one row of a Table.
type TableRow struct {
	cells    []tableCell
	style    *CellStyle
	isHeader bool
}

// Cell appends a cell to the row.
func (r *TableRow) Cell(text string) *TableRow {
	r.cells = append(r.cells, tableCell{text: text})
	return r
}

// StyledCell appends a cell with its own style.
func (r *TableRow) StyledCell(text string, style *CellStyle) *TableRow {
	r.cells = append(r.cells, tableCell{text: text, style: style})
	return r
}

// SetStyle sets the row-level style.
func (r *TableRow) SetStyle(s *CellStyle) *TableRow {
	r.style = s
	return r
}

// Table draws bordered rows. Cell text is wrapped inside the padded cell;
// a row is as tall as its tallest cell, and never shorter than the row
// height.
type Table struct {
	s        Surface
	columns  []Column
	rows     []*TableRow
	x, y     float64
	width    float64
	rowH     float64
	padding  float64
	fontSize float64
	border   Color
	header   CellStyle
}

// NewTable creates a table drawn on s.
func NewTable(s Surface) *Table {
	headerStyle := Bold
	return &Table{
		s:        s,
		rowH:     22,
		padding:  6,
		fontSize: 8.5,
		border:   Border,
		header: CellStyle{
			FontStyle: &headerStyle,
			Fill:      &Shade,
		},
	}
}

// SetColumns sets the column definitions.
func (t *Table) SetColumns(cols ...Column) *Table {
	t.columns = cols
	return t
}

// SetPosition sets the top-left corner of the table.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x, t.y = x, y
	return t
}

// SetWidth sets the total width that fill columns share.
func (t *Table) SetWidth(w float64) *Table {
	t.width = w
	return t
}

// SetRowHeight sets the minimum height of every row.
func (t *Table) SetRowHeight(h float64) *Table {
	t.rowH = h
	return t
}

// SetPadding sets the space between a cell's border and its text.
func (t *Table) SetPadding(p float64) *Table {
	t.padding = p
	return t
}

// SetFontSize sets the cell font size.
func (t *Table) SetFontSize(size float64) *Table {
	t.fontSize = size
	return t
}

// AddHeaderRow adds a header row. Header rows are drawn first and repeated
// at the top of every page the table continues onto.
func (t *Table) AddHeaderRow() *TableRow {
	r := &TableRow{isHeader: true}
	t.rows = append(t.rows, r)
	return r
}

// AddRow adds a body row.
func (t *Table) AddRow() *TableRow {
	r := &TableRow{}
	t.rows = append(t.rows, r)
	return r
}

// Rows returns the number of rows, header rows included.
func (t *Table) Rows() int { return len(t.rows) }

// Height is the total height of all rows on one page.
func (t *Table) Height() float64 {
	widths := t.widths()
	var h float64
	for _, r := range t.rows {
		h += t.rowHeight(r, widths)
	}
	return h
}

// Render draws the table and returns the y offset below its last row.
// When pager is non-nil and a body row does not fit above bottom, a new
// page is started and the header rows are repeated.
func (t *Table) Render(pager *Pager, bottom float64) float64 {
	widths := t.widths()
	var headers, body []*TableRow
	for _, r := range t.rows {
		if r.isHeader {
			headers = append(headers, r)
		} else {
			body = append(body, r)
		}
	}

	y := t.y
	for _, r := range headers {
		y = t.renderRow(r, widths, y)
	}
	for _, r := range body {
		if pager != nil {
			if next := pager.EnsureSpace(y, t.rowHeight(r, widths)+bottom); next != y {
				y = next
				for _, hr := range headers {
					y = t.renderRow(hr, widths, y)
				}
			}
		}
		y = t.renderRow(r, widths, y)
	}
	return y
}

func (t *Table) widths() []float64 {
	widths := make([]float64, len(t.columns))
	fixed := 0.0
	fill := 0
	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			fill++
		}
	}
	if fill > 0 {
		w := max(t.width-fixed, 0) / float64(fill)
		for i, c := range t.columns {
			if c.Width == 0 {
				widths[i] = w
			}
		}
	}
	return widths
}

// rowHeight is the height of r: its tallest wrapped cell plus padding,
// at least the row height.
func (t *Table) rowHeight(r *TableRow, widths []float64) float64 {
	h := t.rowH
	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		st := t.resolve(r, cell, i)
		t.s.SetFont(*st.FontStyle, t.fontSize)
		h = max(h, TextHeight(t.s, cell.text, t.textWidth(widths[i]))+2*t.padding)
	}
	t.s.SetFont(Regular, t.fontSize)
	return h
}

func (t *Table) textWidth(w float64) float64 { return w - 2*t.padding + 2 }

func (t *Table) renderRow(r *TableRow, widths []float64, y float64) float64 {
	rh := t.rowHeight(r, widths)
	x := t.x
	for i, cell := range r.cells {
		if i >= len(widths) {
			break
		}
		w := widths[i]
		st := t.resolve(r, cell, i)

		if st.Fill != nil {
			t.s.SetFillColor(*st.Fill)
			t.s.Rect(x, y, w, rh, Fill)
		}
		t.s.SetDrawColor(t.border)
		t.s.SetLineWidth(0.5)
		t.s.Rect(x, y, w, rh, Stroke)

		t.s.SetFont(*st.FontStyle, t.fontSize)
		t.s.SetTextColor(*st.Text)
		t.s.Write(x+t.padding, y+t.padding, t.textWidth(w), cell.text, st.Align)
		x += w
	}
	t.s.SetLineWidth(1)
	t.s.SetFont(Regular, t.fontSize)
	t.s.SetTextColor(Text)
	return y + rh
}

// resolve merges column, header, row and cell styles, in increasing
// priority.
func (t *Table) resolve(r *TableRow, cell tableCell, col int) CellStyle {
	regular := Regular
	text := Text
	out := CellStyle{FontStyle: &regular, Text: &text, Align: AlignLeft}
	if col < len(t.columns) && t.columns[col].Align != "" {
		out.Align = t.columns[col].Align
	}
	if r.isHeader {
		merge(&out, &t.header)
	}
	if r.style != nil {
		merge(&out, r.style)
	}
	if cell.style != nil {
		merge(&out, cell.style)
	}
	return out
}

func merge(dst, src *CellStyle) {
	if src.FontStyle != nil {
		dst.FontStyle = src.FontStyle
	}
	if src.Fill != nil {
		dst.Fill = src.Fill
	}
	if src.Text != nil {
		dst.Text = src.Text
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
}
