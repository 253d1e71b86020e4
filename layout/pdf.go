package layout

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/showroomdocs/assets"
)

// A4 portrait in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// PDF is the Surface backed by an fpdf document. Page breaks are never
// automatic: the Pager decides them.
type PDF struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// PDFOption configures a new PDF surface.
type PDFOption func(*pdfConfig)

type pdfConfig struct {
	size     fpdf.SizeType
	compress bool
	created  time.Time
	title    string
	author   string
	margin   float64
}

// WithPageSize overrides the page size in points (default A4).
func WithPageSize(w, h float64) PDFOption {
	return func(c *pdfConfig) { c.size = fpdf.SizeType{Wd: w, Ht: h} }
}

// WithCompression toggles stream compression (default on). Uncompressed
// output is useful when inspecting documents by hand.
func WithCompression(on bool) PDFOption {
	return func(c *pdfConfig) { c.compress = on }
}

// WithCreationDate pins the document creation date so identical input
// produces identical bytes.
func WithCreationDate(t time.Time) PDFOption {
	return func(c *pdfConfig) { c.created = t }
}

// WithMetadata sets the document title and author.
func WithMetadata(title, author string) PDFOption {
	return func(c *pdfConfig) {
		c.title = title
		c.author = author
	}
}

// NewPDF creates an empty document without pages. It returns an error when
// the underlying writer could not be initialized.
func NewPDF(opts ...PDFOption) (*PDF, error) {
	cfg := pdfConfig{
		size:     fpdf.SizeType{Wd: A4Width, Ht: A4Height},
		compress: true,
		margin:   20,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size.Wd <= 0 || cfg.size.Ht <= 0 {
		return nil, fmt.Errorf("layout: invalid page size %.2fx%.2f", cfg.size.Wd, cfg.size.Ht)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           cfg.size,
	})
	pdf.SetMargins(cfg.margin, cfg.margin, cfg.margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCompression(cfg.compress)
	pdf.SetCatalogSort(true)
	if !cfg.created.IsZero() {
		pdf.SetCreationDate(cfg.created)
		pdf.SetModificationDate(cfg.created)
	}
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		pdf.SetAuthor(cfg.author, true)
	}
	pdf.SetFont("Helvetica", "", 10)
	if pdf.Err() {
		return nil, fmt.Errorf("layout: initializing pdf: %w", pdf.Error())
	}
	return &PDF{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}, nil
}

// Doc exposes the underlying writer for page-level decorations such as
// imported stationery.
func (p *PDF) Doc() *fpdf.Fpdf { return p.pdf }

// PageCount returns the number of pages added so far.
func (p *PDF) PageCount() int { return p.pdf.PageCount() }

// Output finalizes the document and writes it to w.
func (p *PDF) Output(w io.Writer) error {
	return p.pdf.Output(w)
}

func (p *PDF) PageSize() (float64, float64) { return p.pdf.GetPageSize() }
func (p *PDF) AddPage()                     { p.pdf.AddPage() }
func (p *PDF) PageNo() int                  { return p.pdf.PageNo() }

func (p *PDF) SetFont(style string, size float64) { p.pdf.SetFont("Helvetica", style, size) }

func (p *PDF) FontSize() float64 {
	pt, _ := p.pdf.GetFontSize()
	return pt
}

func (p *PDF) SetTextColor(c Color)   { p.pdf.SetTextColor(c.R, c.G, c.B) }
func (p *PDF) SetDrawColor(c Color)   { p.pdf.SetDrawColor(c.R, c.G, c.B) }
func (p *PDF) SetFillColor(c Color)   { p.pdf.SetFillColor(c.R, c.G, c.B) }
func (p *PDF) SetLineWidth(w float64) { p.pdf.SetLineWidth(w) }
func (p *PDF) SetAlpha(alpha float64) { p.pdf.SetAlpha(alpha, "Normal") }

func (p *PDF) StringWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

// lines splits s after translating it to the core font encoding. SplitLines
// works on bytes, which keeps code points above 255 away from the width
// table.
func (p *PDF) lines(s string, w float64) [][]byte {
	if s == "" {
		return nil
	}
	return p.pdf.SplitLines([]byte(p.tr(s)), w)
}

func (p *PDF) LineCount(s string, w float64) int {
	return len(p.lines(s, w))
}

func (p *PDF) Write(x, y, w float64, s string, align Align) {
	lh := LineHeight(p.FontSize())
	if align == AlignJustify {
		p.pdf.SetXY(x, y)
		p.pdf.MultiCell(w, lh, p.tr(s), "", string(align), false)
		return
	}
	for i, line := range p.lines(s, w) {
		p.pdf.SetXY(x, y+float64(i)*lh)
		p.pdf.CellFormat(w, lh, string(line), "", 0, string(align), false, 0, "")
	}
}

func (p *PDF) Line(x1, y1, x2, y2 float64) { p.pdf.Line(x1, y1, x2, y2) }

func (p *PDF) Rect(x, y, w, h float64, style string) { p.pdf.Rect(x, y, w, h, style) }

// Image registers img on first use and draws it. A registration failure is
// cleared from the writer so one bad image cannot poison the document.
func (p *PDF) Image(img *assets.Image, x, y, w, h float64) (err error) {
	if img.Empty() {
		return fmt.Errorf("layout: empty image")
	}
	if p.pdf.Err() {
		return p.pdf.Error()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout: drawing image %s: %v", img.Key, r)
		}
	}()
	opts := fpdf.ImageOptions{ImageType: img.Type}
	p.pdf.RegisterImageOptionsReader(img.Key, opts, bytes.NewReader(img.Data))
	if p.pdf.Err() {
		err = fmt.Errorf("layout: registering image %s: %w", img.Key, p.pdf.Error())
		p.pdf.ClearError()
		return err
	}
	p.pdf.ImageOptions(img.Key, x, y, w, h, false, opts, 0, "")
	return nil
}

func (p *PDF) Rotate(angle, cx, cy float64, draw func()) {
	p.pdf.TransformBegin()
	p.pdf.TransformRotate(angle, cx, cy)
	draw()
	p.pdf.TransformEnd()
}

func (p *PDF) Err() error {
	if p.pdf.Err() {
		return p.pdf.Error()
	}
	return nil
}
