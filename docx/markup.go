package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr      `xml:"w:sectPr"`
}

type xmlParagraph struct {
	PPr  *xmlPPr  `xml:"w:pPr,omitempty"`
	Runs []xmlRun `xml:"w:r"`
}

type xmlPPr struct {
	Style *xmlVal   `xml:"w:pStyle,omitempty"`
	NumPr *xmlNumPr `xml:"w:numPr,omitempty"`
	Jc    *xmlVal   `xml:"w:jc,omitempty"`
}

type xmlNumPr struct {
	Ilvl  xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlRPr struct {
	Bold *struct{} `xml:"w:b,omitempty"`
	Sz   *xmlVal   `xml:"w:sz,omitempty"`
	SzCs *xmlVal   `xml:"w:szCs,omitempty"`
}

type xmlSectPr struct {
	PgSz  xmlPgSz  `xml:"w:pgSz"`
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgSz struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// US Letter with one inch margins, in twentieths of a point.
var letterPage = xmlSectPr{
	PgSz:  xmlPgSz{W: "12240", H: "15840"},
	PgMar: xmlPgMar{Top: "1440", Right: "1440", Bottom: "1440", Left: "1440", Header: "720", Footer: "720", Gutter: "0"},
}

// xmlRun carries its text unsplit; MarshalXML turns line breaks and tabs
// into the w:br and w:tab elements Word expects inside a run.
type xmlRun struct {
	RPr  *xmlRPr
	Text string
}

func (r xmlRun) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.RPr != nil {
		if err := e.EncodeElement(r.RPr, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	text := strings.ReplaceAll(r.Text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := emptyElement(e, "w:br"); err != nil {
				return err
			}
		}
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				if err := emptyElement(e, "w:tab"); err != nil {
					return err
				}
			}
			if chunk == "" {
				continue
			}
			t := xml.StartElement{
				Name: xml.Name{Local: "w:t"},
				Attr: []xml.Attr{{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}},
			}
			if err := e.EncodeToken(t); err != nil {
				return err
			}
			if err := e.EncodeToken(xml.CharData(chunk)); err != nil {
				return err
			}
			if err := e.EncodeToken(t.End()); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(start.End())
}

func emptyElement(e *xml.Encoder, name string) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	if err := e.EncodeToken(el); err != nil {
		return err
	}
	return e.EncodeToken(el.End())
}

// halfPoints converts a point size to the w:sz unit.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt*2 + 0.5))
}

func (d *Document) markup() xmlDocument {
	doc := xmlDocument{NS: nsW, Body: xmlBody{SectPr: letterPage}}
	doc.Body.Paragraphs = make([]xmlParagraph, 0, len(d.Paragraphs))
	for _, p := range d.Paragraphs {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, p.markup())
	}
	return doc
}

func (p *Paragraph) markup() xmlParagraph {
	var out xmlParagraph
	var ppr xmlPPr
	hasPPr := false
	if p.Style != "" {
		ppr.Style = &xmlVal{Val: p.Style}
		hasPPr = true
	}
	if p.NumID > 0 {
		ppr.NumPr = &xmlNumPr{Ilvl: xmlVal{Val: "0"}, NumID: xmlVal{Val: strconv.Itoa(p.NumID)}}
		hasPPr = true
	}
	if p.Align == AlignCenter {
		ppr.Jc = &xmlVal{Val: "center"}
		hasPPr = true
	}
	if hasPPr {
		out.PPr = &ppr
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, r.markup())
	}
	return out
}

func (r Run) markup() xmlRun {
	out := xmlRun{Text: r.Text}
	if !r.Bold && r.Size <= 0 {
		return out
	}
	out.RPr = &xmlRPr{}
	if r.Bold {
		out.RPr.Bold = &struct{}{}
	}
	if r.Size > 0 {
		sz := halfPoints(r.Size)
		out.RPr.Sz = &xmlVal{Val: sz}
		out.RPr.SzCs = &xmlVal{Val: sz}
	}
	return out
}
