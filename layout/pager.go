package layout

// DefaultTop is the y offset content restarts at after a page break.
const DefaultTop = 30

// Pager decides page breaks. A section asks for the vertical space it
// needs before drawing; sections are never split across pages.
type Pager struct {
	s   Surface
	top float64

	// OnPage runs after every page the pager adds, before any section
	// content is drawn on it.
	OnPage func()
}

// NewPager returns a Pager that restarts content at top on new pages.
func NewPager(s Surface, top float64) *Pager {
	return &Pager{s: s, top: top}
}

// Top returns the restart offset.
func (p *Pager) Top() float64 { return p.top }

// EnsureSpace returns y unchanged when at least reserved points remain
// below it, otherwise it adds a page and returns the top offset. A
// reservation taller than a whole page is treated as a full page, so
// calling EnsureSpace again with the returned offset never adds a page.
func (p *Pager) EnsureSpace(y, reserved float64) float64 {
	_, h := p.s.PageSize()
	reserved = min(reserved, h-p.top)
	if y <= h-reserved {
		return y
	}
	p.NewPage()
	return p.top
}

// NewPage adds a page unconditionally and runs OnPage.
func (p *Pager) NewPage() {
	p.s.AddPage()
	if p.OnPage != nil {
		p.OnPage()
	}
}
