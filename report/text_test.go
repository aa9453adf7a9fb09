package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func comfortForm() Form {
	return Form{
		Ship:     "USNS Comfort",
		Location: "Mobile, AL",
		PPE:      "J. Smith",
		Sections: []Section{
			BulletSection("WORK SUMMARY", "  ", "Weld seam A", "", "Paint hull"),
		},
	}
}

func TestRenderTextBulletsSkipBlanks(t *testing.T) {
	out := RenderText(Build(comfortForm()))
	assert.Contains(t, out, "WORK SUMMARY:\n1. Weld seam A\n2. Paint hull\n")
}

func TestRenderTextFullLayout(t *testing.T) {
	p := Build(Form{
		Ship:      "USNS Comfort",
		Start:     day(2024, time.March, 1),
		End:       day(2024, time.March, 5),
		Location:  "Alabama Shipyard",
		PPE:       "S. Destree",
		Signature: "M. McCary",
		Sections: []Section{
			BulletSection("Work Summary", "WI#0021 95%", "WI#0022 5%"),
			TextSection("Daily Activity", "  Crane lift\ncompleted.  "),
		},
	})

	want := strings.Join([]string{
		"SHIP DAILY REPORT",
		"==================",
		"",
		"SHIP: USNS Comfort",
		"AVAILABILITY DATES: March 01, 2024 – March 05, 2024",
		"LOCATION: Alabama Shipyard",
		"PPE: S. Destree",
		"",
		"WORK SUMMARY:",
		"1. WI#0021 95%",
		"2. WI#0022 5%",
		"",
		"DAILY ACTIVITY:",
		"  Crane lift\ncompleted.  ",
		"",
		"V/r,",
		"M. McCary",
		"",
	}, "\n")
	assert.Equal(t, want, RenderText(p))
}

func TestRenderTextEmptyPayload(t *testing.T) {
	want := "SHIP DAILY REPORT\n==================\n\nSHIP: \nAVAILABILITY DATES: \nLOCATION: \nPPE: \n"
	assert.Equal(t, want, RenderText(Build(Form{})))
}

func TestRenderTextDividerMatchesTitle(t *testing.T) {
	lines := strings.Split(RenderText(Build(Form{})), "\n")
	assert.Equal(t, "SHIP DAILY REPORT", lines[0])
	assert.Equal(t, strings.Repeat("=", 18), lines[1])
}

func TestRenderTextNumberingRestartsPerSection(t *testing.T) {
	p := Build(Form{Sections: []Section{
		BulletSection("A", "one", "two"),
		BulletSection("B", "", "three"),
	}})
	out := RenderText(p)
	assert.Contains(t, out, "A:\n1. one\n2. two\n\n")
	assert.True(t, strings.HasSuffix(out, "B:\n1. three\n"), out)
}

func TestRenderTextAllBlankItems(t *testing.T) {
	p := Build(Form{
		Sections:  []Section{BulletSection("PAINT PROGRESS", " ", "\t", "")},
		Signature: "M. McCary",
	})
	assert.Contains(t, RenderText(p), "PAINT PROGRESS:\n\nV/r,\n")

	p = Build(Form{Sections: []Section{BulletSection("PAINT PROGRESS", "")}})
	assert.True(t, strings.HasSuffix(RenderText(p), "PPE: \n\nPAINT PROGRESS:\n"))
}

func TestRenderTextOmitsEmptySignature(t *testing.T) {
	assert.NotContains(t, RenderText(Build(comfortForm())), "V/r,")
}

// The text preview uppercases section titles while the document keeps them
// as typed. Both behaviors are asserted so a change to either is deliberate.
func TestRenderTextUppercasesTitles(t *testing.T) {
	p := Build(Form{Sections: []Section{BulletSection("Straße work", "x")}})
	assert.Contains(t, RenderText(p), "STRASSE WORK:\n")

	doc := BuildDocument(p)
	assert.Equal(t, "Straße work", doc.Paragraphs[7].Text())
}

func TestRenderTextIsIdempotent(t *testing.T) {
	p := Build(comfortForm())
	assert.Equal(t, RenderText(p), RenderText(p))
}
