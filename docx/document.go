// Package docx writes a small subset of WordprocessingML: paragraphs made of
// runs with bold and point size, centered paragraphs, and decimal numbered
// lists. Documents are assembled in memory and serialized in one pass.
package docx

import (
	"bytes"
	"io"
)

// Alignment is a paragraph's horizontal justification.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignCenter
)

// StyleListNumber is the paragraph style used for numbered list items.
const StyleListNumber = "ListNumber"

// Run is a span of text with uniform formatting. Size is in points; zero
// inherits the paragraph style's size.
type Run struct {
	Text string
	Bold bool
	Size float64
}

// Paragraph is one block of runs. NumID is the numbering instance the
// paragraph belongs to, zero when it is not a list item.
type Paragraph struct {
	Style string
	NumID int
	Align Alignment
	Runs  []Run
}

// AddRun appends a run and returns the paragraph for chaining.
func (p *Paragraph) AddRun(r Run) *Paragraph {
	p.Runs = append(p.Runs, r)
	return p
}

// Text concatenates the paragraph's run text.
func (p *Paragraph) Text() string {
	var b bytes.Buffer
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Document is an ordered list of paragraphs plus the numbered lists they
// reference.
type Document struct {
	Paragraphs []*Paragraph
	lists      int
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph holding runs. A paragraph with no runs is
// an empty line.
func (d *Document) AddParagraph(runs ...Run) *Paragraph {
	p := &Paragraph{Runs: runs}
	d.Paragraphs = append(d.Paragraphs, p)
	return p
}

// NewList starts a numbering instance whose first item is numbered 1 and
// returns its id for use in AddListItem.
func (d *Document) NewList() int {
	d.lists++
	return d.lists
}

// Lists reports how many numbering instances the document uses.
func (d *Document) Lists() int {
	return d.lists
}

// AddListItem appends a numbered paragraph to list numID.
func (d *Document) AddListItem(numID int, text string) *Paragraph {
	p := d.AddParagraph(Run{Text: text})
	p.Style = StyleListNumber
	p.NumID = numID
	return p
}

// Bytes serializes the document into a .docx archive.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the document into a .docx archive written to w.
func (d *Document) Write(w io.Writer) error {
	return writePackage(w, d)
}
