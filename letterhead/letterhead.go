// Package letterhead stamps a showroom's pre-printed stationery, the first
// page of a PDF on disk, behind every page of a generated document.
package letterhead

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// ErrNoLetterhead is returned when no stationery path is configured.
var ErrNoLetterhead = errors.New("letterhead: no stationery configured")

// Resolve maps a stored letterhead reference to a file under dir. Only the
// base name of stored is used. It returns "" when stored is empty.
func Resolve(dir, stored string) string {
	if stored == "" {
		return ""
	}
	base := filepath.Base(filepath.Clean(stored))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return filepath.Join(dir, base)
}

// Stationery is an imported letterhead page bound to one document.
type Stationery struct {
	imp  *gofpdi.Importer
	tpl  int
	w, h float64
}

// Import reads the first page of the PDF at path into pdf as a template.
// The template can only be stamped onto the document it was imported into.
// Malformed files are reported as errors, never as panics.
func Import(pdf *fpdf.Fpdf, path string) (st *Stationery, err error) {
	if path == "" {
		return nil, ErrNoLetterhead
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("letterhead: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			st = nil
			err = fmt.Errorf("letterhead: importing %s: %v", path, r)
		}
	}()

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, path, 1, "/MediaBox")
	st = &Stationery{imp: imp, tpl: tpl}
	if dims, ok := imp.GetPageSizes()[1]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			st.w, st.h = mb["w"], mb["h"]
		}
	}
	if pdf.Err() {
		return nil, fmt.Errorf("letterhead: importing %s: %w", path, pdf.Error())
	}
	return st, nil
}

// Size returns the media box of the imported page.
func (s *Stationery) Size() (w, h float64) { return s.w, s.h }

// Stamp draws the stationery stretched over the whole current page.
func (s *Stationery) Stamp(pdf *fpdf.Fpdf) {
	pw, ph := pdf.GetPageSize()
	s.imp.UseImportedTemplate(pdf, s.tpl, 0, 0, pw, ph)
}
