package report

import (
	"fmt"
	"strings"
)

// Mode selects how a section's content is rendered.
type Mode int

const (
	Bullets Mode = iota
	FreeText
)

func (m Mode) String() string {
	switch m {
	case Bullets:
		return "bullets"
	case FreeText:
		return "text"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the wire spelling of a mode. An empty string is Bullets.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bullets":
		return Bullets, nil
	case "text":
		return FreeText, nil
	}
	return 0, fmt.Errorf("report: unknown section mode %q", s)
}

// Body is the content of a section. It is implemented only by ItemList and
// Text, so a section holds either items or free text and never both.
type Body interface {
	Mode() Mode
	body()
}

// ItemList is the body of a Bullets section.
type ItemList []string

func (ItemList) Mode() Mode { return Bullets }
func (ItemList) body()      {}

// Text is the body of a FreeText section, rendered verbatim.
type Text string

func (Text) Mode() Mode { return FreeText }
func (Text) body()      {}

// Section is one titled block of the report.
type Section struct {
	Title string
	Body  Body
}

// BulletSection returns a Bullets section holding a copy of items.
func BulletSection(title string, items ...string) Section {
	return Section{Title: title, Body: append(ItemList(nil), items...)}
}

// TextSection returns a FreeText section.
func TextSection(title, text string) Section {
	return Section{Title: title, Body: Text(text)}
}

// Mode reports the section's mode. A section without a body is an empty
// bullet list.
func (s Section) Mode() Mode {
	if s.Body == nil {
		return Bullets
	}
	return s.Body.Mode()
}

// Items returns the trimmed, non-blank bullet items in their original order,
// or nil for a FreeText section. Both renderers number exactly this list.
func (s Section) Items() []string {
	list, ok := s.Body.(ItemList)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range list {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Text returns the free text of a FreeText section, or "" otherwise.
func (s Section) Text() string {
	t, _ := s.Body.(Text)
	return string(t)
}

func (s Section) clone() Section {
	if list, ok := s.Body.(ItemList); ok {
		s.Body = append(ItemList(nil), list...)
	}
	return s
}

// DefaultTitles are the sections offered on a fresh form, in display order.
var DefaultTitles = []string{
	"WORK SUMMARY",
	"PAINT PROGRESS",
	"DAILY ACTIVITY",
	"ITEMS OF INTEREST",
}

// DefaultSections returns the empty default sections, all in Bullets mode.
func DefaultSections() []Section {
	out := make([]Section, 0, len(DefaultTitles))
	for _, title := range DefaultTitles {
		out = append(out, BulletSection(title))
	}
	return out
}
