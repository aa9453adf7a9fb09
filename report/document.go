package report

import (
	"fmt"

	"ship_daily_report/docx"
)

const (
	titleSize        = 16
	sectionTitleSize = 12
)

// BuildDocument lays out p as a word-processing document without
// serializing it.
func BuildDocument(p Payload) *docx.Document {
	doc := docx.New()

	title := doc.AddParagraph(docx.Run{Text: reportTitle, Bold: true, Size: titleSize})
	title.Align = docx.AlignCenter
	doc.AddParagraph()

	for _, f := range p.header() {
		doc.AddParagraph(docx.Run{Text: f.label + ":  ", Bold: true}).
			AddRun(docx.Run{Text: f.value})
	}
	doc.AddParagraph()

	for _, s := range p.sections {
		addSectionTitle(doc, s.Title)
		switch s.Mode() {
		case Bullets:
			list := doc.NewList()
			for _, it := range s.Items() {
				doc.AddListItem(list, it)
			}
		case FreeText:
			doc.AddParagraph(docx.Run{Text: s.Text()})
		}
		doc.AddParagraph()
	}

	if p.signature != "" {
		addSectionTitle(doc, signOff)
		doc.AddParagraph(docx.Run{Text: p.signature})
	}
	return doc
}

func addSectionTitle(doc *docx.Document, text string) {
	doc.AddParagraph(docx.Run{Text: text, Bold: true, Size: sectionTitleSize})
}

// RenderDocument renders p as a .docx file.
func RenderDocument(p Payload) ([]byte, error) {
	data, err := BuildDocument(p).Bytes()
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return data, nil
}
