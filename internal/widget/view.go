package widget

import (
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"anniversaries/internal/domain"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// ViewKind is the visual state a render resolves to. Exactly one applies.
type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewError
	ViewEmpty
	ViewPopulated
)

func (k ViewKind) String() string {
	switch k {
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewPopulated:
		return "populated"
	default:
		return "loading"
	}
}

func (k ViewKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ViewKind) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, kind := range []ViewKind{ViewLoading, ViewError, ViewEmpty, ViewPopulated} {
		if kind.String() == raw {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown view kind %q", raw)
}

type Row struct {
	Identity    string            `json:"identity"`
	DisplayName string            `json:"display_name"`
	JobTitle    string            `json:"job_title"`
	Department  string            `json:"department"`
	HireDate    string            `json:"hire_date"`
	Persona     template.HTML     `json:"-"`
	Tier        domain.TenureTier `json:"tier"`
	Years       int               `json:"years"`
	Unit        string            `json:"unit"`
}

type MoreLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type View struct {
	Kind     ViewKind      `json:"kind"`
	Title    string        `json:"title"`
	TitleBar template.HTML `json:"-"`
	Message  string        `json:"message,omitempty"`
	Rows     []Row         `json:"rows"`
	MoreLink *MoreLink     `json:"more_link,omitempty"`
	Theme    Theme         `json:"theme"`
}

// snapshot is the presenter state a render is computed from.
type snapshot struct {
	state    State
	errMsg   string
	records  []domain.EmployeeRecord
	settings domain.WidgetSettings
	onTitle  func(string)
	theme    Theme
}

func project(s snapshot, now time.Time, labels Labels, persona PersonaRenderer, title TitleRenderer) View {
	v := View{
		Title: s.settings.Title,
		Rows:  make([]Row, 0),
		Theme: s.theme,
	}
	if title != nil {
		v.TitleBar = title.RenderTitle(s.settings.Title, s.onTitle)
	}

	switch s.state {
	case StateError:
		v.Kind = ViewError
		v.Message = s.errMsg
		return v
	case StateLoaded:
	default:
		v.Kind = ViewLoading
		v.Message = labels.Loading
		return v
	}

	for _, rec := range s.records {
		a, ok := domain.Annotate(rec, now, labels.Year, labels.Years)
		if !ok {
			continue
		}
		row := Row{
			Identity:    rec.Identity,
			DisplayName: rec.DisplayName,
			JobTitle:    rec.JobTitle,
			Department:  rec.Department,
			HireDate:    rec.HireDate.Format("2006-01-02"),
			Tier:        a.Tier,
			Years:       a.Years,
			Unit:        a.Unit,
		}
		if persona != nil {
			row.Persona = persona.RenderPersona(rec)
		}
		v.Rows = append(v.Rows, row)
	}

	if len(v.Rows) == 0 {
		v.Kind = ViewEmpty
		v.Message = labels.Empty
		return v
	}

	v.Kind = ViewPopulated
	if s.settings.MoreLink != "" {
		v.MoreLink = &MoreLink{URL: s.settings.MoreLink, Label: labels.SeeAll}
	}
	return v
}
