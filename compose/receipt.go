package compose

import (
	"strings"

	"github.com/lvillar/showroomdocs/layout"
	"github.com/lvillar/showroomdocs/record"
	"github.com/lvillar/showroomdocs/words"
)

// AssociationBanner is printed under the title of unbranded showrooms.
const AssociationBanner = "The Automotive Traders and Importers Association Karachi"

const (
	bodySize    = 8.5
	signLine    = "_____________________"
	emptyBio    = "_________________"
	noRemarks   = "No additional remarks."
	qrSize      = 56
	qrX, qrY    = Left, 16
	logoW       = 180
	logoH       = 55
	bannerFloor = 60
	dealerLabel = 80
	// signRoom is the blank space left above signature lines.
	signRoom = 16
)

// RemarksReserve is the least room remarks start in: the header, one
// line and the footer zone. Longer remarks continue on the next page.
const RemarksReserve = 110

// Receipt is the layout of delivery and purchase orders.
var Receipt = Layout[*record.Document]{
	{Name: "header", Draw: drawReceiptHeader},
	{Name: "title", Draw: func(c *Context[*record.Document]) {
		drawTitle(c, c.Rec.Showroom, c.Rec.TitleOrDefault())
	}},
	{Name: "vehicle", Draw: drawVehicle},
	{Name: "owner", Draw: drawOwner},
	{Name: "cplc", Applies: (*record.Document).HasCPLC, Draw: drawCPLC},
	{Name: "dealer", Reserve: 250, Fit: true, Applies: func(d *record.Document) bool { return d.ForDealers }, Draw: drawDealer},
	{Name: "signatures", Reserve: 200, Fit: true, Applies: func(d *record.Document) bool { return !d.ForDealers }, Draw: drawSignatures},
	{Name: "payments", Reserve: 150, Draw: drawPayments},
	{Name: "office", Reserve: 100, Fit: true, Draw: drawOffice},
	{Name: "undertaking", Reserve: 120, Fit: true, Applies: func(d *record.Document) bool {
		_, _, ok := Undertaking(d)
		return ok
	}, Draw: drawUndertaking},
	{Name: "remarks", Reserve: RemarksReserve, Fit: true, Draw: drawRemarks},
	{Name: "footer", Reserve: FooterZone, Draw: drawReceiptFooter},
}

func drawReceiptHeader(c *Context[*record.Document]) {
	if c.image("verification code", c.Assets.Code, qrX, qrY, qrSize, qrSize) {
		c.S.SetFont(layout.Regular, 5)
		c.S.SetTextColor(layout.Black)
		caption := "Scan me for verification"
		cx, cy := float64(qrX+qrSize+10), float64(qrY+qrSize-4)
		w := c.S.StringWidth(caption) + 1
		c.S.Rotate(90, cx, cy, func() {
			c.S.Write(cx, cy, w, caption, layout.AlignLeft)
		})
	}
	drawLogo(c, c.Rec.Showroom, true)
}

// drawLogo draws the showroom logo, or its name and address when there is
// no logo. withPhone adds the telephone line to the fallback.
func drawLogo[T any](c *Context[T], s record.Showroom, withPhone bool) {
	if s.Exists() {
		w, h := layout.Fit(c.Assets.Logo, logoW, logoH)
		if c.image("logo", c.Assets.Logo, CenterX-w/2, c.Y, w, h) {
			c.Y += logoH
			return
		}
	}
	name := s.Name
	if name == "" {
		name = "Showroom"
	}
	c.text(layout.Bold, 18, layout.Black, Left, c.Y, FullWidth, name, layout.AlignCenter)
	c.text(layout.Regular, 8, layout.Muted, Left, c.Y+18, FullWidth, layout.OneLine(s.Address, 70), layout.AlignCenter)
	if withPhone && s.Exists() && s.Phone != "" {
		c.text(layout.Regular, 8, layout.Muted, Left, c.Y+30, FullWidth, "Tel: "+s.Phone, layout.AlignCenter)
	}
	c.Y += 50
}

// drawTitle draws the document title: a red strip for Car Markaz, the title
// above the association banner for everyone else.
func drawTitle[T any](c *Context[T], s record.Showroom, title string) {
	c.Y = max(c.Y, bannerFloor)
	pw, _ := c.S.PageSize()
	if s.IsCarMarkaz() {
		c.S.SetFillColor(layout.Danger)
		c.S.Rect(0, c.Y, pw, 18, layout.Fill)
		c.text(layout.Bold, 11, layout.White, 0, c.Y+3, pw, title, layout.AlignCenter)
		c.Y += 24
		return
	}
	c.text(layout.Bold, 11, layout.Black, Left, c.Y, FullWidth, title, layout.AlignCenter)
	c.Y += 14
	c.S.SetFillColor(layout.Primary)
	c.S.Rect(Left, c.Y, FullWidth, 15, layout.Fill)
	c.text(layout.Bold, 9, layout.White, Left, c.Y+2.5, FullWidth, AssociationBanner, layout.AlignCenter)
	c.Y += 19
}

func drawVehicle(c *Context[*record.Document]) {
	d, v := c.Rec, c.Rec.Vehicle
	c.header("Vehicle Information")
	c.Y += 3
	c.S.SetFont(layout.Regular, bodySize)

	dateLabel, timeLabel := "Date of Delivery:", "Time of Delivery:"
	if d.IsPurchase() {
		dateLabel, timeLabel = "Date of Purchasing:", "Time of Purchasing:"
	}
	date := d.Date
	if date.IsZero() {
		date = record.NewDate(c.Now)
	}
	const lw = 120
	c.row(2, field(dateLabel, date, 0, 250, lw, plain), field(timeLabel, d.DeliveryTime, 265, 250, lw, plain))
	c.row(2, field("Chassis No:", v.ChassisNo, 0, 250, lw, plain), field("Engine No:", v.EngineNo, 265, 250, lw, plain))
	c.row(2, field("Registration No:", v.RegistrationNo, 0, 250, lw, plain), field("Year of Registration:", v.DateOfRegistration, 265, 250, lw, plain))
	c.row(2,
		field("Make:", v.Make, 0, 165, 45, plain),
		field("Model:", v.Model, 175, 165, 45, plain),
		field("Color:", v.Color, 350, 165, 45, plain),
	)
	c.row(4,
		field("Year of Manufacturing:", v.YearOfManufacturing, 0, 260, 120, layout.FieldOptions{BoldValue: true}),
		field("Engine Capacity:", v.EngineCapacity, 275, 230, 100, plain),
	)
}

func drawOwner(c *Context[*record.Document]) {
	o := c.Rec.OwnerParty()
	c.S.SetFont(layout.Regular, bodySize)
	const lw = 75
	c.row(3,
		field("Owner Name:", record.WithFather(o.Name, o.FatherName), 0, 250, lw, underline),
		field("Owner CNIC:", record.FormatCNIC(o.CNIC), 265, 250, lw, underline),
	)
	c.row(3,
		field("Owner Address:", o.Address, 0, 250, lw, underline),
		field("Owner Phone:", o.Phone, 265, 250, lw, underline),
	)
	if docs := strings.Join(c.Rec.DocumentDetails, ", "); docs != "" {
		c.row(5, field("Document Detail:", docs, 0, FullWidth, lw, underline))
		return
	}
	c.Y += 3
}

func drawCPLC(c *Context[*record.Document]) {
	v := c.Rec.Vehicle
	c.header("CPLC Details")
	c.Y += 3
	c.S.SetFont(layout.Regular, bodySize)
	c.row(3,
		field("CPLC Counter No:", v.CPLCVerification, 0, 200, 120, plain),
		field("CPLC Date:", v.CPLCDate, 215, 160, 70, plain),
		field("Time:", v.CPLCTime, 395, 120, 40, plain),
	)
}

func drawDealer(c *Context[*record.Document]) {
	d := c.Rec
	o, p := d.OwnerParty(), d.Purchaser
	c.header("For Car Dealers")
	c.Y += 3
	c.S.SetFont(layout.Regular, bodySize)

	const colW = (FullWidth - 15) / 2
	pair := func(gap float64, label string, left, right any) {
		c.row(gap, field(label, left, 0, colW, dealerLabel, underline), field(label, right, 265, colW, dealerLabel, underline))
	}
	pair(2, "Name:", d.Salesman(), d.PurchaserSalesmanName)
	pair(2, "Address:", o.Address, p.Address)
	pair(2, "Phone:", o.Phone, p.Phone)
	pair(2, "CNIC:", record.FormatCNIC(o.CNIC), record.FormatCNIC(p.CNIC))

	if o.FatherName != "" || p.FatherName != "" {
		var fields []layout.Spec
		if o.FatherName != "" {
			fields = append(fields, field("S/O:", o.FatherName, 0, colW, dealerLabel, underline))
		}
		if p.FatherName != "" {
			fields = append(fields, field("S/O:", p.FatherName, 265, colW, dealerLabel, underline))
		}
		c.row(2, fields...)
	}
	if !d.SellerBiometricDate.IsZero() || !d.PurchaserBiometricDate.IsZero() {
		pair(2, "Nadra Bio Date:", bioDate(d.SellerBiometricDate), bioDate(d.PurchaserBiometricDate))
	}
	c.row(2, field("Sellers Sign:", "", 0, colW, dealerLabel, underline), field("Sign:", "", 265, colW, dealerLabel, underline))
}

func bioDate(v any) string {
	if s := layout.Stringify(v); s != "" {
		return s
	}
	return emptyBio
}

// signer is one column of the standard signature block.
type signer struct {
	party    record.Party
	salesman string
	bioDate  string
	// showroom columns print the salesman when no name was entered.
	showroom bool
}

func (s signer) name() string {
	if s.showroom && s.party.Name == "" {
		return s.salesman
	}
	if s.party.Name != "" {
		return s.party.Name
	}
	return s.salesman
}

func drawSignatures(c *Context[*record.Document]) {
	d := c.Rec
	c.header("Signatures & Verification")
	c.Y += signRoom

	const purchaserX = Left + 285
	signLabel := func(label string, x float64) {
		c.S.SetFont(layout.Italic, 9)
		w := c.S.StringWidth(label)
		c.text(layout.Italic, 9, layout.Text, x, c.Y, w+1, label, layout.AlignLeft)
		c.S.SetFont(layout.Regular, 9)
		lineX := x + w + 13
		c.text(layout.Regular, 9, layout.Muted, lineX, c.Y, c.S.StringWidth(signLine)+1, signLine, layout.AlignLeft)
	}
	signLabel("Seller's Sign", Left)
	signLabel("Purchaser's Sign", purchaserX)
	c.Y += layout.LineHeight(9) + 2

	purchase := d.IsPurchase()
	seller := signer{
		party:    d.SellerParty(),
		salesman: d.Salesman(),
		bioDate:  layout.Stringify(d.SellerBiometricDate),
		showroom: !purchase,
	}
	purchaser := signer{
		party:    d.Purchaser,
		salesman: d.PurchaserSalesmanName,
		bioDate:  layout.Stringify(d.PurchaserBiometricDate),
		showroom: purchase,
	}
	c.S.SetFont(layout.Regular, bodySize)
	top := c.Y
	hs := signerColumn(c.S, seller, Left, top)
	hp := signerColumn(c.S, purchaser, purchaserX, top)
	c.Y = top + max(hs, hp)
}

func signerColumn(s layout.Surface, sg signer, x, y float64) float64 {
	const width, lw = 265, 85
	cur := layout.Cursor{X: x, Y: y}
	p := sg.party
	cur = cur.Row(s, 2, field("Name:", record.WithFather(sg.name(), p.FatherName), 0, width, lw, plain))
	cur = cur.Row(s, 2, field("Address:", p.Address, 0, width, lw, plain))
	cur = cur.Row(s, 2, field("Tel:", p.Phone, 0, width, lw, plain))
	cur = cur.Row(s, 2, field("CNIC:", record.FormatCNIC(p.CNIC), 0, width, lw, plain))
	if sg.bioDate != "" {
		cur = cur.Row(s, 2, field("Nadra Bio Date:", sg.bioDate, 0, width, lw, plain))
	}
	return cur.Y - y
}

func drawPayments(c *Context[*record.Document]) {
	d := c.Rec
	c.header("Transaction Details")
	c.Y += 3

	bold, italic := layout.Style(layout.Bold), layout.Style(layout.Italic)
	tb := layout.NewTable(c.S).
		SetColumns(layout.Column{Width: 220}, layout.Column{Width: 140}, layout.Column{}).
		SetPosition(Left, c.Y).
		SetWidth(FullWidth).
		SetRowHeight(16).
		SetPadding(3).
		SetFontSize(bodySize)
	tb.AddHeaderRow().Cell("Description").Cell("Amount").Cell("Details")

	received := d.ReceivedPayments()
	for _, p := range received {
		desc := p.Description()
		if date := layout.Stringify(p.EffectiveDate(d.Date)); date != "" {
			desc += " (" + date + ")"
		}
		tb.AddRow().Cell(desc).Cell(record.FormatMoney(p.Amount)).Cell(p.Details())
	}
	if len(received) == 0 {
		tb.AddRow().Cell("Payment").Cell("—").Cell("")
	}
	tb.AddRow().
		StyledCell("Total Amount", bold).
		StyledCell(record.FormatMoney(d.Amount), bold).
		StyledCell(words.Int(d.Amount.IntPart()), italic)
	tb.AddRow().
		StyledCell("Total Received", bold).
		StyledCell(record.FormatMoney(d.TotalReceived()), bold).
		Cell("")
	st := d.Settlement()
	tb.AddRow().
		StyledCell(st.Label, bold).
		StyledCell(record.FormatMoney(st.Amount), bold).
		Cell("")

	c.Y = tb.Render(c.Pager, FooterZone)
}

func drawOffice(c *Context[*record.Document]) {
	a := c.Rec.AgentParty()
	c.Y += 3
	c.header("FOR OFFICE USE ONLY")
	c.Y += 3
	c.S.SetFont(layout.Regular, bodySize)

	top := c.Y
	const width, lw = 265, 85
	c.row(2, field("Agent Name:", a.Name, 0, width, lw, plain))
	c.row(2, field("Address:", a.Address, 0, width, lw, plain))
	c.row(2, field("CNIC:", record.FormatCNIC(a.CNIC), 0, width, lw, plain))
	c.row(2, field("Phone:", a.Phone, 0, width, lw, plain))

	const boxW, boxH = 140, 42
	boxX := Left + FullWidth - boxW
	c.S.SetDrawColor(layout.Border)
	c.S.Rect(boxX, top, boxW, boxH, layout.Stroke)
	c.text(layout.Italic, 7, layout.Muted, boxX, top+boxH+2, boxW, "Signature / Thumb Impression", layout.AlignCenter)
	c.Y = max(c.Y, top+boxH+2+layout.LineHeight(7)+3)
}

func drawUndertaking(c *Context[*record.Document]) {
	text, sign, _ := Undertaking(c.Rec)
	c.Y += 3
	c.header("Undertaking")
	c.Y += 3

	const x, w = Left + 5, FullWidth - 10
	c.paragraph(layout.Regular, 7.5, layout.Text, x, w, text, layout.AlignJustify)
	c.Y += 4
	c.ensure(layout.LineHeight(8))
	c.text(layout.Bold, 8, layout.Text, x, c.Y, w, sign, layout.AlignLeft)
	c.Y += layout.LineHeight(8) + 3
}

func drawRemarks(c *Context[*record.Document]) {
	c.Y += 3
	c.header("Remarks")
	c.Y += 3

	remarks := strings.TrimSpace(c.Rec.Remarks)
	if remarks == "" {
		remarks = noRemarks
	}
	const x, w = Left + 5, FullWidth - 10
	c.paragraph(layout.Regular, 8, layout.Text, x, w, remarks, layout.AlignLeft)
	c.Y += 4
}
