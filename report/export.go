package report

import (
	"fmt"
	"strings"
)

// Format is an export file format.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

// ParseFormat accepts "docx" or "txt".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOCX, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("report: unknown export format %q", s)
}

// ContentType returns the MIME type served with the format.
func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatText:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension without a leading dot.
func (f Format) Extension() string {
	return string(f)
}

// Filename derives the download name, e.g. "USNS_Comfort_Daily_Report.docx".
// An empty ship name becomes "Ship".
func Filename(ship string, f Format) string {
	if ship == "" {
		ship = "Ship"
	}
	return strings.ReplaceAll(ship, " ", "_") + "_Daily_Report." + f.Extension()
}

// Artifact is a rendered report ready to be offered as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders p in format f.
func Export(p Payload, f Format) (Artifact, error) {
	a := Artifact{Filename: Filename(p.ship, f), ContentType: f.ContentType()}
	switch f {
	case FormatText:
		a.Data = []byte(RenderText(p))
	case FormatDOCX:
		data, err := RenderDocument(p)
		if err != nil {
			return Artifact{}, err
		}
		a.Data = data
	default:
		return Artifact{}, fmt.Errorf("report: unknown export format %q", string(f))
	}
	return a, nil
}
