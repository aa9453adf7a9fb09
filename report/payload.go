// Package report turns the fields of a ship daily report into its plain-text
// and .docx renditions.
//
// A Form holds raw input. Build normalizes it into a Payload, which is
// read-only from then on; RenderText and RenderDocument consume a Payload
// and share no state.
package report

import (
	"strings"
	"time"
)

// Form is a snapshot of the raw report fields as the user entered them.
type Form struct {
	Ship      string
	Location  string
	PPE       string
	Signature string
	Start     *time.Time
	End       *time.Time
	Sections  []Section
}

// Payload is the normalized report handed to the renderers.
type Payload struct {
	ship         string
	availability string
	location     string
	ppe          string
	signature    string
	sections     []Section
}

// Build trims the string fields, derives the availability label and copies
// the sections in display order.
func Build(f Form) Payload {
	p := Payload{
		ship:         strings.TrimSpace(f.Ship),
		availability: DateRangeLabel(f.Start, f.End),
		location:     strings.TrimSpace(f.Location),
		ppe:          strings.TrimSpace(f.PPE),
		signature:    strings.TrimSpace(f.Signature),
	}
	p.sections = make([]Section, 0, len(f.Sections))
	for _, s := range f.Sections {
		p.sections = append(p.sections, s.clone())
	}
	return p
}

func (p Payload) Ship() string              { return p.ship }
func (p Payload) AvailabilityDates() string { return p.availability }
func (p Payload) Location() string          { return p.location }
func (p Payload) PPE() string               { return p.ppe }
func (p Payload) Signature() string         { return p.signature }

// Sections returns a copy of the sections in display order.
func (p Payload) Sections() []Section {
	out := make([]Section, 0, len(p.sections))
	for _, s := range p.sections {
		out = append(out, s.clone())
	}
	return out
}

type headerField struct {
	label string
	value string
}

// header lists the key/value lines printed under the title, in order.
func (p Payload) header() []headerField {
	return []headerField{
		{"SHIP", p.ship},
		{"AVAILABILITY DATES", p.availability},
		{"LOCATION", p.location},
		{"PPE", p.ppe},
	}
}
