package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	reportTitle   = "SHIP DAILY REPORT"
	signOff       = "V/r,"
	titleDivider  = "=================="
	lineSeparator = "\n"
)

// RenderText renders the plain-text preview of p. Section titles are
// uppercased here; the document keeps them as typed.
func RenderText(p Payload) string {
	upper := cases.Upper(language.Und)

	lines := []string{reportTitle, titleDivider, ""}
	for _, f := range p.header() {
		lines = append(lines, f.label+": "+f.value)
	}
	lines = append(lines, "")

	for _, s := range p.sections {
		lines = append(lines, upper.String(s.Title)+":")
		switch s.Mode() {
		case Bullets:
			for i, it := range s.Items() {
				lines = append(lines, strconv.Itoa(i+1)+". "+it)
			}
		case FreeText:
			lines = append(lines, s.Text())
		}
		lines = append(lines, "")
	}

	if p.signature != "" {
		lines = append(lines, signOff, p.signature, "")
	}
	return strings.Join(lines, lineSeparator)
}
