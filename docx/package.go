package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Every part carries the same timestamp so identical documents produce
// identical archives.
var partTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypes = xmlProlog + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRels = xmlProlog + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRels = xmlProlog + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const styles = xmlProlog + `<w:styles xmlns:w="` + nsW + `">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>` +
	`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="en-US"/>` +
	`</w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
	`</w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="` + StyleListNumber + `"><w:name w:val="List Number"/>` +
	`<w:basedOn w:val="Normal"/><w:pPr><w:contextualSpacing/></w:pPr></w:style>` +
	`</w:styles>`

const abstractNumbering = `<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/>` +
	`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl>` +
	`</w:abstractNum>`

// numbering declares one w:num per list, each restarting at 1, all sharing a
// single decimal definition.
func (d *Document) numbering() string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(`<w:numbering xmlns:w="` + nsW + `">`)
	b.WriteString(abstractNumbering)
	for id := 1; id <= d.lists; id++ {
		fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="0"/>`+
			`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`, id)
	}
	b.WriteString(`</w:numbering>`)
	return b.String()
}

func writeDocumentPart(w io.Writer, d *Document) error {
	if _, err := io.WriteString(w, xmlProlog); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(d.markup())
}

func staticPart(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func writePackage(w io.Writer, d *Document) error {
	parts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"[Content_Types].xml", staticPart(contentTypes)},
		{"_rels/.rels", staticPart(packageRels)},
		{"word/document.xml", func(w io.Writer) error { return writeDocumentPart(w, d) }},
		{"word/styles.xml", staticPart(styles)},
		{"word/numbering.xml", staticPart(d.numbering())},
		{"word/_rels/document.xml.rels", staticPart(documentRels)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: partTime,
		})
		if err != nil {
			return fmt.Errorf("docx: create %s: %w", part.name, err)
		}
		if err := part.write(fw); err != nil {
			return fmt.Errorf("docx: write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: close archive: %w", err)
	}
	return nil
}
