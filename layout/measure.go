package layout

import (
	"strings"

	"github.com/lvillar/showroomdocs/assets"
)

// Measure returns a Surface that reports the metrics of s and draws
// nothing. Fonts set through it are set on s; callers measuring a block
// must set their own fonts before drawing it for real.
func Measure(s Surface) Surface { return measurer{s} }

type measurer struct{ Surface }

func (measurer) AddPage()                                 {}
func (measurer) SetTextColor(Color)                       {}
func (measurer) SetDrawColor(Color)                       {}
func (measurer) SetFillColor(Color)                       {}
func (measurer) SetLineWidth(float64)                     {}
func (measurer) SetAlpha(float64)                         {}
func (measurer) Write(_, _, _ float64, _ string, _ Align) {}
func (measurer) Line(_, _, _, _ float64)                  {}
func (measurer) Rect(_, _, _, _ float64, _ string)        {}
func (measurer) Rotate(_, _, _ float64, draw func())      { draw() }

func (measurer) Image(*assets.Image, float64, float64, float64, float64) error { return nil }

// word is a word of a text and the line breaks preceding it.
type word struct {
	text   string
	breaks int
}

func words(text string) []word {
	var out []word
	breaks := 0
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			breaks++
		}
		for _, f := range strings.Fields(para) {
			out = append(out, word{text: f, breaks: breaks})
			breaks = 0
		}
	}
	return out
}

func join(ws []word) string {
	var b strings.Builder
	for i, w := range ws {
		switch {
		case i == 0:
		case w.breaks > 0:
			b.WriteString(strings.Repeat("\n", w.breaks))
		default:
			b.WriteByte(' ')
		}
		b.WriteString(w.text)
	}
	return b.String()
}

// SplitLines splits text into the longest run of whole words that wraps
// to at most n lines within w, in the current font, and the rest. Line
// breaks between the two parts are dropped. head holds at least one word
// whenever text has any.
func SplitLines(s Surface, text string, w float64, n int) (head, rest string) {
	ws := words(text)
	if len(ws) == 0 {
		return "", ""
	}
	if all := join(ws); s.LineCount(all, w) <= n {
		return all, ""
	}
	// lo words always fit, hi words never do
	lo, hi := 1, len(ws)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.LineCount(join(ws[:mid]), w) <= n {
			lo = mid
		} else {
			hi = mid
		}
	}
	return join(ws[:lo]), join(ws[lo:])
}
