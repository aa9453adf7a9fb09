package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildNormalizesFields(t *testing.T) {
	p := Build(Form{
		Ship:      "  USNS Comfort ",
		Location:  "\tMobile, AL\n",
		PPE:       " J. Smith",
		Signature: "   ",
		Start:     day(2024, time.March, 1),
		End:       day(2024, time.March, 5),
		Sections:  []Section{TextSection("NOTES", "  as typed  ")},
	})

	assert.Equal(t, "USNS Comfort", p.Ship())
	assert.Equal(t, "Mobile, AL", p.Location())
	assert.Equal(t, "J. Smith", p.PPE())
	assert.Equal(t, "", p.Signature())
	assert.Equal(t, "March 01, 2024 – March 05, 2024", p.AvailabilityDates())
	assert.Equal(t, "  as typed  ", p.Sections()[0].Text())
}

func TestBuildInvertedDatesGiveEmptyLabel(t *testing.T) {
	p := Build(Form{Start: day(2024, time.March, 5), End: day(2024, time.March, 1)})
	assert.Equal(t, "", p.AvailabilityDates())
}

func TestPayloadIsIsolatedFromCallers(t *testing.T) {
	items := []string{"first", "second"}
	sections := []Section{{Title: "LIST", Body: ItemList(items)}}
	p := Build(Form{Sections: sections})

	items[0] = "changed"
	sections[0].Title = "RENAMED"
	assert.Equal(t, "LIST", p.Sections()[0].Title)
	assert.Equal(t, []string{"first", "second"}, p.Sections()[0].Items())

	got := p.Sections()
	got[0].Body.(ItemList)[1] = "mutated"
	assert.Equal(t, []string{"first", "second"}, p.Sections()[0].Items())
}

func TestBuildKeepsSectionOrder(t *testing.T) {
	p := Build(Form{Sections: []Section{
		BulletSection("Z LAST"),
		TextSection("A FIRST", ""),
		BulletSection("M MIDDLE"),
	}})
	var titles []string
	for _, s := range p.Sections() {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Z LAST", "A FIRST", "M MIDDLE"}, titles)
}
