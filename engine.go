// Package showroomdocs renders the legal documents of a car showroom:
// delivery and purchase orders with their payment summary and undertaking,
// and token receipts for advances paid against a car.
//
// Every document is drawn twice on consecutive pages, a customer copy and a
// showroom copy, which differ only in the watermark behind the content.
// Missing business data never fails a render; it prints as blank values.
// Only a broken drawing surface or a failing writer is reported as an error.
//
// Example:
//
//	eng := showroomdocs.New(
//	    showroomdocs.WithVerifier(verify.NewGenerator("https://docs.example.com")),
//	    showroomdocs.WithLogger(log),
//	)
//	pdf, err := eng.Render(ctx, doc)
package showroomdocs

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/compose"
	"github.com/lvillar/showroomdocs/internal/logging"
	"github.com/lvillar/showroomdocs/layout"
	"github.com/lvillar/showroomdocs/letterhead"
	"github.com/lvillar/showroomdocs/record"
	"github.com/lvillar/showroomdocs/verify"
)

// Watermarks of the two copies, in drawing order.
const (
	CustomerCopy = "Customer Copy"
	ShowroomCopy = "Showroom Copy"
)

// TokenWatermark is the stamp style of token receipts, heavier than the
// receipt stamp and printed upper case.
var TokenWatermark = layout.WatermarkStyle{
	FontSize: 50,
	Opacity:  0.12,
	Angle:    45,
	Color:    layout.Watermark,
}

// epoch is the creation date of documents whose record carries no date.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Engine renders documents. It is safe for concurrent use; the asset cache
// is the only state shared between renders.
type Engine struct {
	cache       *assets.Cache
	codes       *verify.Generator
	log         *zap.Logger
	letterheads string
	now         func() time.Time
	compress    bool
	copies      []string
}

// New returns an Engine. Without options it reads assets from the default
// directories below the working directory, links verification codes to
// verify.DefaultOrigin and logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:      zap.NewNop(),
		now:      time.Now,
		compress: true,
		copies:   []string{CustomerCopy, ShowroomCopy},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = assets.NewCache(assets.WithLogger(e.log))
	}
	if e.codes == nil {
		e.codes = verify.NewGenerator(verify.DefaultOrigin, verify.WithLogger(e.log))
	}
	return e
}

// job is one document kind bound to one record.
type job[T any] struct {
	kind     string
	id       string
	title    string
	rec      T
	layout   compose.Layout[T]
	showroom record.Showroom
	date     record.Date
	withCode bool

	top, pageTop float64
	mark         layout.WatermarkStyle
	upper        bool
}

// Render draws a delivery or purchase order and returns the PDF.
func (e *Engine) Render(ctx context.Context, d *record.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.RenderTo(ctx, &buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo draws a delivery or purchase order into w. Nothing is written
// to w unless the whole document was produced.
func (e *Engine) RenderTo(ctx context.Context, w io.Writer, d *record.Document) error {
	if d == nil {
		return newRenderError("Render", ErrNilRecord, nil)
	}
	return render(ctx, e, w, job[*record.Document]{
		kind:     "receipt",
		id:       d.ID,
		title:    d.TitleOrDefault(),
		rec:      d,
		layout:   compose.Receipt,
		showroom: d.Showroom,
		date:     d.Date,
		withCode: true,
		top:      compose.ReceiptTop,
		pageTop:  compose.ReceiptPageTop,
		mark:     layout.DefaultWatermark,
	}, func(log *zap.Logger) {
		if err := d.CheckBalance(); err != nil {
			log.Warn("balance does not match payments", zap.Error(err))
		}
		if err := d.CheckReceived(); err != nil {
			log.Warn("amount received does not match payments", zap.Error(err))
		}
		o := d.OwnerParty()
		log.Debug("rendering document",
			zap.String("title", d.TitleOrDefault()),
			zap.String("receipt_number", d.ReceiptNumber),
			zap.Int("payments", len(d.ReceivedPayments())),
			zap.String("owner_cnic", logging.MaskCNIC(o.CNIC)),
			zap.String("owner_phone", logging.MaskPhone(o.Phone)),
		)
	})
}

// RenderTokenReceipt draws a token receipt and returns the PDF.
func (e *Engine) RenderTokenReceipt(ctx context.Context, t *record.TokenReceipt) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.RenderTokenReceiptTo(ctx, &buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTokenReceiptTo draws a token receipt into w.
func (e *Engine) RenderTokenReceiptTo(ctx context.Context, w io.Writer, t *record.TokenReceipt) error {
	if t == nil {
		return newRenderError("RenderTokenReceipt", ErrNilRecord, nil)
	}
	return render(ctx, e, w, job[*record.TokenReceipt]{
		kind:     "token_receipt",
		id:       t.ID,
		title:    record.TitleTokenReceipt,
		rec:      t,
		layout:   compose.TokenReceipt,
		showroom: t.Showroom,
		date:     t.CreatedAt,
		top:      compose.TokenTop,
		pageTop:  compose.TokenPageTop,
		mark:     TokenWatermark,
		upper:    true,
	}, func(log *zap.Logger) {
		log.Debug("rendering token receipt",
			zap.String("purchaser_cnic", logging.MaskCNIC(t.Purchaser.CNIC)),
			zap.String("purchaser_phone", logging.MaskPhone(t.Purchaser.Phone)),
			zap.String("seller_cnic", logging.MaskCNIC(t.Seller.CNIC)),
			zap.String("seller_phone", logging.MaskPhone(t.Seller.Phone)),
		)
	})
}

func render[T any](ctx context.Context, e *Engine, w io.Writer, j job[T], inspect func(*zap.Logger)) error {
	start := time.Now()
	log := e.log.With(
		zap.String("render_id", uuid.NewString()),
		zap.String("kind", j.kind),
		zap.String("document_id", j.id),
	)
	if err := ctx.Err(); err != nil {
		return err
	}
	if inspect != nil {
		inspect(log)
	}

	a := e.prepare(j.showroom, j.id, j.withCode, log)

	created := epoch
	if !j.date.IsZero() {
		created = j.date.UTC()
	}
	pdf, err := layout.NewPDF(
		layout.WithCompression(e.compress),
		layout.WithCreationDate(created),
		layout.WithMetadata(j.title, j.showroom.Name),
	)
	if err != nil {
		return newRenderError("NewPDF", ErrSurface, err)
	}

	stamp := e.stationery(pdf, j.showroom, log)
	drawCopies(pdf, j, a, e.now(), log, e.copies, stamp)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := pdf.Err(); err != nil {
		return newRenderError("Draw", ErrSurface, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return newRenderError("Output", ErrOutput, err)
	}
	size := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		return newRenderError("Write", ErrOutput, err)
	}

	log.Info("document rendered",
		zap.Int("pages", pdf.PageCount()),
		zap.Int("bytes", size),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// prepare resolves the images of a document once; every copy reuses them.
func (e *Engine) prepare(s record.Showroom, id string, withCode bool, log *zap.Logger) compose.Assets {
	a := compose.Assets{
		Icons: e.cache.Icons(),
		Logo:  e.cache.Logo(s.LogoPath),
	}
	if s.LogoPath != "" && a.Logo == nil {
		log.Warn("logo unavailable", zap.String("logo", s.LogoPath))
	}
	if withCode && id != "" {
		a.Code = e.codes.Code(id)
	}
	return a
}

// stationery imports the showroom letterhead into pdf and returns the
// function stamping it on the current page, or nil without letterhead.
func (e *Engine) stationery(pdf *layout.PDF, s record.Showroom, log *zap.Logger) func() {
	if e.letterheads == "" || s.LetterheadPath == "" {
		return nil
	}
	path := letterhead.Resolve(e.letterheads, s.LetterheadPath)
	st, err := letterhead.Import(pdf.Doc(), path)
	if err != nil {
		log.Warn("letterhead omitted", zap.String("letterhead", path), zap.Error(err))
		return nil
	}
	return func() { st.Stamp(pdf.Doc()) }
}

// drawCopies draws the layout once per copy name. Each copy starts on a
// new page; every page of a copy gets the stationery (when any) and then
// the copy's watermark, below all other content.
func drawCopies[T any](s layout.Surface, j job[T], a compose.Assets, now time.Time, log *zap.Logger, copies []string, stamp func()) {
	for _, name := range copies {
		mark := name
		if j.upper {
			mark = strings.ToUpper(mark)
		}
		pager := layout.NewPager(s, j.pageTop)
		pager.OnPage = func() {
			if stamp != nil {
				stamp()
			}
			layout.DrawWatermark(s, mark, j.mark)
		}
		pager.NewPage()
		j.layout.Draw(&compose.Context[T]{
			S:      s,
			Pager:  pager,
			Rec:    j.rec,
			Assets: a,
			Now:    now,
			Log:    log.With(zap.String("copy", name)),
			Y:      j.top,
		})
	}
}
