package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

// paragraphTexts walks document.xml and returns the text of each w:p, with
// w:br rendered as "\n" and w:tab as "\t".
func paragraphTexts(t *testing.T, documentXML string) []string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(documentXML))
	var out []string
	var cur *strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			require.Equal(t, nsW, el.Name.Space)
			switch el.Name.Local {
			case "p":
				cur = &strings.Builder{}
			case "t":
				inText = true
			case "br":
				cur.WriteString("\n")
			case "tab":
				cur.WriteString("\t")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				out = append(out, cur.String())
				cur = nil
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(el)
			}
		}
	}
	return out
}

func TestWriteProducesAllParts(t *testing.T) {
	d := New()
	d.AddParagraph(Run{Text: "hello"})
	data, err := d.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/_rels/document.xml.rels",
	}, names)
}

func TestParagraphFormatting(t *testing.T) {
	d := New()
	title := d.AddParagraph(Run{Text: "TITLE", Bold: true, Size: 16})
	title.Align = AlignCenter
	d.AddParagraph()
	d.AddParagraph(Run{Text: "LABEL:  ", Bold: true}, Run{Text: "value"})

	data, err := d.Bytes()
	require.NoError(t, err)
	doc := readPart(t, data, "word/document.xml")

	assert.Contains(t, doc, `<w:jc w:val="center"></w:jc>`)
	assert.Contains(t, doc, `<w:sz w:val="32"></w:sz>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">LABEL:  </w:t>`)
	assert.Equal(t, []string{"TITLE", "", "LABEL:  value"}, paragraphTexts(t, doc))
}

func TestTextIsEscapedAndBroken(t *testing.T) {
	d := New()
	d.AddParagraph(Run{Text: "a < b & c\nnext\tcol\r\nlast"})

	data, err := d.Bytes()
	require.NoError(t, err)
	doc := readPart(t, data, "word/document.xml")

	assert.Contains(t, doc, "a &lt; b &amp; c")
	assert.Equal(t, []string{"a < b & c\nnext\tcol\nlast"}, paragraphTexts(t, doc))
}

func TestListsRestartNumbering(t *testing.T) {
	d := New()
	first := d.NewList()
	d.AddListItem(first, "one")
	d.AddListItem(first, "two")
	second := d.NewList()
	d.AddListItem(second, "again")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 2, d.Lists())

	data, err := d.Bytes()
	require.NoError(t, err)

	numbering := readPart(t, data, "word/numbering.xml")
	assert.Equal(t, 2, strings.Count(numbering, `<w:startOverride w:val="1"/>`))
	assert.Contains(t, numbering, `<w:num w:numId="2">`)

	doc := readPart(t, data, "word/document.xml")
	assert.Equal(t, 2, strings.Count(doc, `<w:numId w:val="1"></w:numId>`))
	assert.Equal(t, 1, strings.Count(doc, `<w:numId w:val="2"></w:numId>`))
	assert.Equal(t, 3, strings.Count(doc, `<w:pStyle w:val="ListNumber"></w:pStyle>`))
}

func TestBytesAreDeterministic(t *testing.T) {
	build := func() []byte {
		d := New()
		d.AddParagraph(Run{Text: "same", Bold: true})
		d.AddListItem(d.NewList(), "item")
		b, err := d.Bytes()
		require.NoError(t, err)
		return b
	}
	assert.Equal(t, build(), build())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriteReportsSinkErrors(t *testing.T) {
	d := New()
	d.AddParagraph(Run{Text: strings.Repeat("x", 1<<16)})
	err := d.Write(failingWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
