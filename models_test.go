package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ship_daily_report/report"
)

func TestReportInputForm(t *testing.T) {
	in := ReportInput{
		Ship:      " USNS Comfort ",
		StartDate: "2024-03-01",
		EndDate:   "not a date",
		Sections: []SectionInput{
			{Title: "WORK SUMMARY", Items: []string{"a", " "}, Text: "ignored"},
			{Title: "NOTES", Mode: "text", Text: "free", Items: []string{"ignored"}},
		},
	}
	require.NoError(t, in.Validate())

	f, err := in.Form()
	require.NoError(t, err)
	assert.NotNil(t, f.Start)
	assert.Nil(t, f.End)
	require.Len(t, f.Sections, 2)
	assert.Equal(t, report.Bullets, f.Sections[0].Mode())
	assert.Equal(t, []string{"a"}, f.Sections[0].Items())
	assert.Equal(t, report.FreeText, f.Sections[1].Mode())
	assert.Equal(t, "free", f.Sections[1].Text())
	assert.Nil(t, f.Sections[1].Items())
}

func TestReportInputValidate(t *testing.T) {
	in := ReportInput{Sections: []SectionInput{{Title: "", Mode: "grid"}}}
	fields := validationFields(in.Validate())
	assert.Equal(t, map[string]string{
		"ReportInput.sections[0].title": "required",
		"ReportInput.sections[0].mode":  "oneof",
	}, fields)
}

func TestParseFormValuesFallsBackToDefaults(t *testing.T) {
	v := parseFormValues(url.Values{
		"ship":           {"Comfort"},
		"section_1_mode": {"text"},
		"section_1_body": {"  verbatim  "},
		"section_2_mode": {"spreadsheet"},
	})

	require.Len(t, v.Sections, len(report.DefaultTitles))
	assert.Equal(t, "PAINT PROGRESS", v.Sections[1].Title)
	assert.False(t, v.Sections[1].IsBullets())
	assert.True(t, v.Sections[2].IsBullets())

	f := v.Form()
	assert.Equal(t, "  verbatim  ", f.Sections[1].Text())
}

func TestParseFormValuesCapsSectionCount(t *testing.T) {
	v := parseFormValues(url.Values{"section_count": {"100000"}})
	assert.Len(t, v.Sections, len(report.DefaultTitles))

	v = parseFormValues(url.Values{"section_count": {"5"}, "section_4_title": {"EXTRA"}})
	require.Len(t, v.Sections, 5)
	assert.Equal(t, "EXTRA", v.Sections[4].Title)
	assert.Equal(t, 5, v.Sections[4].Number())
}

func TestFormViewSplitsBulletBody(t *testing.T) {
	v := defaultFormView()
	v.Sections[0].Body = "1) first\n\n2) second"
	f := v.Form()
	assert.Equal(t, []string{"first", "second"}, f.Sections[0].Items())
}

func TestParseFormValuesNormalizesLineEndings(t *testing.T) {
	v := parseFormValues(url.Values{
		"section_0_mode": {"text"},
		"section_0_body": {"line one\r\nline two"},
	})
	assert.Equal(t, "line one\nline two", v.Form().Sections[0].Text())
}

func TestParseFormValuesNormalizesDates(t *testing.T) {
	v := parseFormValues(url.Values{
		"start_date": {" 2024-03-01 "},
		"end_date":   {"03/05/2024"},
	})
	assert.Equal(t, "2024-03-01", v.StartDate)
	assert.Equal(t, "", v.EndDate)
	assert.NotNil(t, v.Form().Start)
	assert.Nil(t, v.Form().End)
}
