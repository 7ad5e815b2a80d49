package widget

import (
	"bytes"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"anniversaries/internal/domain"
)

type PersonaRenderer interface {
	RenderPersona(rec domain.EmployeeRecord) template.HTML
}

// TitleRenderer draws the widget title. onChange is nil when the title is
// read-only.
type TitleRenderer interface {
	RenderTitle(title string, onChange func(string)) template.HTML
}

// Labels are the user-facing strings, supplied by the host.
type Labels struct {
	Loading string `json:"loading"`
	Empty   string `json:"empty"`
	SeeAll  string `json:"see_all"`
	Year    string `json:"year"`
	Years   string `json:"years"`
}

func DefaultLabels() Labels {
	return Labels{
		Loading: "Loading ...",
		Empty:   "No anniversaries found at this.",
		SeeAll:  "See all",
		Year:    "year",
		Years:   "years",
	}
}

var personaTemplate = template.Must(template.New("persona").Parse(
	`<div class="persona" data-identity="{{.Identity}}">` +
		`<span class="persona-initials">{{.Initials}}</span>` +
		`<span class="persona-details">` +
		`<span class="persona-name">{{.DisplayName}}</span>` +
		`{{if .JobTitle}}<span class="persona-job">{{.JobTitle}}</span>{{end}}` +
		`{{if .Department}}<span class="persona-department">{{.Department}}</span>{{end}}` +
		`</span></div>`,
))

var titleTemplate = template.Must(template.New("title").Parse(
	`{{if .Editable}}<form class="widget-title" method="post" action="{{.Action}}">` +
		`<input type="text" name="title" value="{{.Title}}" aria-label="Title">` +
		`</form>{{else}}<h2 class="widget-title">{{.Title}}</h2>{{end}}`,
))

// HTMLPersona renders a compact persona card.
type HTMLPersona struct{}

func (HTMLPersona) RenderPersona(rec domain.EmployeeRecord) template.HTML {
	name := rec.DisplayName
	if strings.TrimSpace(name) == "" {
		name = rec.Identity
	}

	var buf bytes.Buffer
	_ = personaTemplate.Execute(&buf, struct {
		Identity    string
		Initials    string
		DisplayName string
		JobTitle    string
		Department  string
	}{
		Identity:    rec.Identity,
		Initials:    initials(name),
		DisplayName: name,
		JobTitle:    rec.JobTitle,
		Department:  rec.Department,
	})
	return template.HTML(buf.String())
}

// HTMLTitle renders the title as a heading, or as an inline form posting to
// Action when the host allows editing.
type HTMLTitle struct {
	Action string
}

func (t HTMLTitle) RenderTitle(title string, onChange func(string)) template.HTML {
	var buf bytes.Buffer
	_ = titleTemplate.Execute(&buf, struct {
		Title    string
		Action   string
		Editable bool
	}{
		Title:    title,
		Action:   t.Action,
		Editable: onChange != nil && t.Action != "",
	})
	return template.HTML(buf.String())
}

func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		if r == utf8.RuneError || !unicode.IsLetter(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
