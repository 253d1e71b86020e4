package compose

import (
	"strings"

	"github.com/lvillar/showroomdocs/assets"
	"github.com/lvillar/showroomdocs/layout"
	"github.com/lvillar/showroomdocs/record"
)

const (
	socialIcon = 28
	socialGap  = 8
	brandIcon  = 12
	brandGap   = 6
	dash       = "—"
)

func drawReceiptFooter(c *Context[*record.Document]) {
	s := c.Rec.Showroom
	if s.IsCarMarkaz() {
		drawBrandFooter(c, s)
		return
	}
	drawSocialFooter(c, s)
}

// drawBrandFooter draws the Car Markaz footer: a red strip with the
// address on the left and the owner's phone on the right.
func drawBrandFooter[T any](c *Context[T], s record.Showroom) {
	pw, ph := c.S.PageSize()
	stripY := ph - 60
	infoY := stripY + 26
	c.S.SetFillColor(layout.Danger)
	c.S.Rect(0, stripY, pw, 20, layout.Fill)

	const side = 40
	c.S.SetFont(layout.Bold, 10)
	c.S.SetTextColor(layout.Black)

	owner := strings.ToUpper(strings.TrimSpace(s.OwnerName))
	phone := layout.OneLine(s.Phone, 25)
	phoneText := phone
	if owner != "" {
		phoneText = owner + " : " + phone
	}
	phoneW := c.S.StringWidth(phoneText)
	iconW := 0.0
	if !c.Assets.Icons.Phone.Empty() {
		iconW = brandIcon + brandGap
	}
	rightX := pw - side - iconW - phoneW
	x := rightX
	if c.image("phone icon", c.Assets.Icons.Phone, x, infoY-2, brandIcon, brandIcon) {
		x += brandIcon + brandGap
	}
	c.S.SetFont(layout.Bold, 10)
	c.S.SetTextColor(layout.Black)
	c.S.Write(x, infoY, phoneW+1, phoneText, layout.AlignLeft)

	leftX := float64(side)
	if c.image("address icon", c.Assets.Icons.Address, leftX, infoY-2, brandIcon, brandIcon) {
		leftX += brandIcon + brandGap
	}
	c.S.SetFont(layout.Bold, 10)
	maxW := rightX - leftX - 15
	addr := layout.Clip(c.S, layout.OneLine(s.Address, 100), maxW)
	c.S.Write(leftX, infoY, maxW+1, addr, layout.AlignLeft)
}

// drawSocialFooter draws the address and website lines and a row of
// facebook, instagram and whatsapp handles with their icons.
func drawSocialFooter(c *Context[*record.Document], s record.Showroom) {
	_, ph := c.S.PageSize()
	footerY := ph - 20 - 48

	address := orDash(strings.ToUpper(strings.TrimSpace(s.Address)))
	website := orDash(strings.ToUpper(stripScheme(s.Social.Website)))
	fb := orDash(strings.ToUpper(stripScheme(s.Social.Facebook)))
	ig := orDash(strings.ToUpper(stripScheme(s.Social.Instagram)))
	wa := strings.TrimSpace(s.Social.WhatsApp)
	if wa == "" {
		wa = strings.TrimSpace(s.Phone)
	}
	wa = orDash(wa)

	c.text(layout.Bold, 7, layout.Black, Left, footerY, FullWidth, layout.OneLine(address, 95), layout.AlignCenter)
	c.text(layout.Bold, 7, layout.Black, Left, footerY+10, FullWidth, layout.OneLine(website, 50), layout.AlignCenter)

	socialY := footerY + 22
	iconY := socialY + 3.5 - socialIcon/2
	icons := c.Assets.Icons

	part := func(name string, icon *assets.Image, text string, x float64) {
		if c.image(name, icon, x, iconY, socialIcon, socialIcon) {
			x += socialIcon + socialGap
		}
		c.S.SetFont(layout.Regular, 7)
		c.S.SetTextColor(layout.Black)
		c.S.Write(x, socialY, c.S.StringWidth(text)+1, text, layout.AlignLeft)
	}
	width := func(icon *assets.Image, text string) float64 {
		c.S.SetFont(layout.Regular, 7)
		w := c.S.StringWidth(text)
		if !icon.Empty() {
			w += socialIcon + socialGap
		}
		return w
	}

	part("facebook icon", icons.Facebook, layout.OneLine(fb, 28), Left)

	igText := layout.OneLine(ig, 28)
	part("instagram icon", icons.Instagram, igText, CenterX-width(icons.Instagram, igText)/2)

	waText := layout.OneLine(wa, 18)
	part("whatsapp icon", icons.WhatsApp, waText, Left+FullWidth-width(icons.WhatsApp, waText))
}

func stripScheme(u string) string {
	u = strings.TrimSpace(u)
	lower := strings.ToLower(u)
	for _, p := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(u[len(p):])
		}
	}
	return u
}

func orDash(s string) string {
	if s == "" {
		return dash
	}
	return s
}
