package main

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"ship_daily_report/report"
)

// maxSections bounds section_count on submitted forms.
const maxSections = 32

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ReportInput is the JSON (API) and YAML (CLI) shape of a report form.
// Dates are YYYY-MM-DD; a nil Sections list means the default sections.
type ReportInput struct {
	Ship      string         `json:"ship"       yaml:"ship"`
	StartDate string         `json:"start_date" yaml:"start_date"`
	EndDate   string         `json:"end_date"   yaml:"end_date"`
	Location  string         `json:"location"   yaml:"location"`
	PPE       string         `json:"ppe"        yaml:"ppe"`
	Signature string         `json:"signature"  yaml:"signature"`
	Sections  []SectionInput `json:"sections"   yaml:"sections" validate:"dive"`
}

type SectionInput struct {
	Title string   `json:"title" yaml:"title" validate:"required"`
	Mode  string   `json:"mode"  yaml:"mode"  validate:"omitempty,oneof=bullets text"`
	Items []string `json:"items" yaml:"items"`
	Text  string   `json:"text"  yaml:"text"`
}

// Validate checks the structural shape only; field contents are normalized
// later, never rejected.
func (in ReportInput) Validate() error {
	return validate.Struct(in)
}

// Form converts the input into a report form.
func (in ReportInput) Form() (report.Form, error) {
	f := report.Form{
		Ship:      in.Ship,
		Location:  in.Location,
		PPE:       in.PPE,
		Signature: in.Signature,
		Start:     report.ParseDate(in.StartDate),
		End:       report.ParseDate(in.EndDate),
	}
	if in.Sections == nil {
		f.Sections = report.DefaultSections()
		return f, nil
	}
	for _, s := range in.Sections {
		mode, err := report.ParseMode(s.Mode)
		if err != nil {
			return report.Form{}, err
		}
		switch mode {
		case report.Bullets:
			f.Sections = append(f.Sections, report.BulletSection(s.Title, s.Items...))
		case report.FreeText:
			f.Sections = append(f.Sections, report.TextSection(s.Title, s.Text))
		}
	}
	return f, nil
}

// validationFields flattens validator errors into field -> failed tag.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		out[ve.Namespace()] = ve.Tag()
	}
	return out
}

// sectionView is one section as shown in the HTML form. Body is the textarea
// content: one item per line in bullets mode, free text otherwise.
type sectionView struct {
	Index int
	Title string
	Mode  string
	Body  string
}

func (s sectionView) Number() int     { return s.Index + 1 }
func (s sectionView) IsBullets() bool { return s.Mode != report.FreeText.String() }

func (s sectionView) section() report.Section {
	if !s.IsBullets() {
		return report.TextSection(s.Title, s.Body)
	}
	return report.BulletSection(s.Title, report.SplitItems(s.Body)...)
}

// formView is the HTML form's state. Text fields keep the raw strings the
// user typed; dates are normalized to YYYY-MM-DD.
type formView struct {
	Ship      string
	StartDate string
	EndDate   string
	Location  string
	PPE       string
	Signature string
	Sections  []sectionView
}

func defaultFormView() formView {
	var v formView
	for i, title := range report.DefaultTitles {
		v.Sections = append(v.Sections, sectionView{Index: i, Title: title, Mode: report.Bullets.String()})
	}
	return v
}

// parseFormValues reads the fields posted by the form page. Sections
// without a posted title fall back to the default title at that position.
// Browsers submit textarea line breaks as CRLF; bodies are stored with LF.
// Dates are kept only when they parse, so the form redisplays them blank
// rather than echoing a value the report ignores.
func parseFormValues(values url.Values) formView {
	v := formView{
		Ship:      values.Get("ship"),
		StartDate: report.FormatDate(report.ParseDate(values.Get("start_date"))),
		EndDate:   report.FormatDate(report.ParseDate(values.Get("end_date"))),
		Location:  values.Get("location"),
		PPE:       values.Get("ppe"),
		Signature: values.Get("signature"),
	}

	count, err := strconv.Atoi(values.Get("section_count"))
	if err != nil || count < 0 {
		count = len(report.DefaultTitles)
	}
	count = min(count, maxSections)

	for i := 0; i < count; i++ {
		prefix := "section_" + strconv.Itoa(i) + "_"
		title := strings.TrimSpace(values.Get(prefix + "title"))
		if title == "" && i < len(report.DefaultTitles) {
			title = report.DefaultTitles[i]
		}
		if title == "" {
			continue
		}
		mode, err := report.ParseMode(values.Get(prefix + "mode"))
		if err != nil {
			mode = report.Bullets
		}
		v.Sections = append(v.Sections, sectionView{
			Index: len(v.Sections),
			Title: title,
			Mode:  mode.String(),
			Body:  strings.ReplaceAll(values.Get(prefix+"body"), "\r\n", "\n"),
		})
	}
	return v
}

// Form converts the view into a report form.
func (v formView) Form() report.Form {
	f := report.Form{
		Ship:      v.Ship,
		Location:  v.Location,
		PPE:       v.PPE,
		Signature: v.Signature,
		Start:     report.ParseDate(v.StartDate),
		End:       report.ParseDate(v.EndDate),
	}
	for _, s := range v.Sections {
		f.Sections = append(f.Sections, s.section())
	}
	return f
}

// DateWarning is shown when both dates are set but out of order.
func (v formView) DateWarning() string {
	start, end := report.ParseDate(v.StartDate), report.ParseDate(v.EndDate)
	if start != nil && end != nil && start.After(*end) {
		return "Availability start is after the end date; the dates are left off the report."
	}
	return ""
}
