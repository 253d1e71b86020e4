package compose

import (
	"strings"

	"github.com/lvillar/showroomdocs/layout"
	"github.com/lvillar/showroomdocs/record"
	"github.com/lvillar/showroomdocs/words"
)

var upper = layout.FieldOptions{Upper: true}

func upperWith(opt layout.FieldOptions) layout.FieldOptions {
	opt.Upper = true
	return opt
}

// TokenReceipt is the layout of the advance-payment receipt. All field
// text is printed upper case.
var TokenReceipt = Layout[*record.TokenReceipt]{
	{Name: "header", Draw: func(c *Context[*record.TokenReceipt]) {
		s := c.Rec.Showroom
		w, h := layout.Fit(c.Assets.Logo, logoW, logoH)
		if c.image("logo", c.Assets.Logo, CenterX-w/2, c.Y, w, h) {
			c.Y += logoH + 10
			return
		}
		c.text(layout.Bold, 18, layout.Black, Left, c.Y, FullWidth, s.Name, layout.AlignCenter)
		c.text(layout.Regular, 8, layout.Muted, Left, c.Y+18, FullWidth, layout.OneLine(s.Address, 70), layout.AlignCenter)
		c.Y += 50
	}},
	{Name: "title", Draw: func(c *Context[*record.TokenReceipt]) {
		drawTitle(c, c.Rec.Showroom, record.TitleTokenReceipt)
	}},
	{Name: "token", Draw: drawToken},
	{Name: "vehicle", Draw: drawTokenVehicle},
	{Name: "note", Applies: func(t *record.TokenReceipt) bool { return strings.TrimSpace(t.Note) != "" }, Draw: func(c *Context[*record.TokenReceipt]) {
		c.S.SetFont(layout.Regular, bodySize)
		c.row(15, field("Note:", c.Rec.Note, 0, FullWidth, 120, upperWith(underline)))
	}},
	{Name: "parties", Reserve: 150, Draw: drawTokenParties},
	{Name: "signatures", Reserve: 100, Draw: drawTokenSignatures},
	{Name: "footer", Reserve: FooterZone, Draw: drawTokenFooter},
}

func drawToken(c *Context[*record.TokenReceipt]) {
	t := c.Rec
	const lw = 120
	c.S.SetFont(layout.Regular, bodySize)
	c.fixedRow(22, field("Receipt Date:", t.CreatedAt, 0, 250, lw, upper))
	c.fixedRow(15, field("Token Received:", record.FormatMoney(t.AmountReceived), 0, FullWidth, lw, upperWith(layout.FieldOptions{BoldValue: true})))
	amount := "(" + strings.ToUpper(words.Int(t.AmountReceived.IntPart())) + ")"
	c.text(layout.Italic, 8, layout.Text, Left+lw+layout.FieldGap, c.Y, FullWidth-lw-layout.FieldGap, amount, layout.AlignLeft)
	c.Y += 20

	c.S.SetFont(layout.Regular, bodySize)
	c.fixedRow(25, field("Received From:", t.ReceivedFrom(), 0, FullWidth, lw, upperWith(underline)))
}

func drawTokenVehicle(c *Context[*record.TokenReceipt]) {
	t := c.Rec
	ul := upperWith(underline)
	c.S.SetFont(layout.Regular, bodySize)
	c.fixedRow(22, field("On Behalf Of Car Chassis no.:", t.ChassisNo, 0, FullWidth, 150, ul))

	c.fixedRow(22,
		field("Make:", t.Make, 0, 170, 40, ul),
		field("Model:", t.Model, 180, 160, 40, ul),
		field("Reg #:", t.RegistrationNo, 350, 165, 40, ul),
	)
	c.fixedRow(28,
		field("Year:", t.Year, 0, 170, 40, ul),
		field("Colour:", t.Colour, 180, 160, 40, ul),
	)
	c.fixedRow(28,
		field("Total Price:", record.FormatMoney(t.TotalPrice), 0, 250, 120, ul),
		field("Remaining Balance:", record.FormatMoney(t.RemainingBalance), 265, 250, 115, upperWith(layout.FieldOptions{Underline: true, BoldValue: true})),
	)
}

func drawTokenParties(c *Context[*record.TokenReceipt]) {
	const gutter = 20
	const colW = (FullWidth - gutter) / 2
	ul := upperWith(underline)

	box := func(title string, p record.Party, x float64) float64 {
		y := c.Y + layout.SectionHeader(c.S, title, x, c.Y, colW) + 10
		c.S.SetFont(layout.Regular, bodySize)
		cur := layout.Cursor{X: x, Y: y}
		cur = cur.Row(c.S, 8, field("Name:", p.Name, 0, colW, 50, ul))
		cur = cur.Row(c.S, 8, field("CNIC:", record.FormatCNIC(p.CNIC), 0, colW, 50, ul))
		cur = cur.Row(c.S, 0, field("Mobile:", p.Phone, 0, colW, 50, ul))
		return cur.Y - c.Y
	}
	hp := box("Purchaser Details", c.Rec.Purchaser, Left)
	hs := box("Seller Details", c.Rec.Seller, Left+colW+gutter)
	c.Y += max(hp, hs) + 65
}

func drawTokenSignatures(c *Context[*record.TokenReceipt]) {
	const gap = 40
	const w = (FullWidth - 2*gap) / 3
	for i, label := range []string{"Purchaser Sign", "Seller Sign", "Showroom Stamp"} {
		x := Left + float64(i)*(w+gap)
		c.S.SetDrawColor(layout.Text)
		c.S.SetLineWidth(0.5)
		c.S.Line(x, c.Y, x+w, c.Y)
		c.S.SetLineWidth(1)
		c.text(layout.Bold, bodySize, layout.Text, x, c.Y+5, w, strings.ToUpper(label), layout.AlignCenter)
	}
	c.Y += 5 + layout.LineHeight(bodySize)
}

func drawTokenFooter(c *Context[*record.TokenReceipt]) {
	s := c.Rec.Showroom
	pw, ph := c.S.PageSize()
	fy := ph - 65
	if s.IsCarMarkaz() {
		c.S.SetFillColor(layout.Danger)
		c.S.Rect(0, fy+5, pw, 20, layout.Fill)
		c.text(layout.Bold, 9, layout.White, 0, fy+11, pw, layout.OneLine(s.Address, 100), layout.AlignCenter)
		return
	}
	c.S.SetDrawColor(layout.Border)
	c.S.SetLineWidth(0.5)
	c.S.Line(Left, fy, Left+FullWidth, fy)
	c.S.SetLineWidth(1)
	c.text(layout.Regular, 7, layout.Muted, Left, fy+10, FullWidth, layout.OneLine(s.Address, 120), layout.AlignCenter)
}
