package host

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"anniversaries/internal/domain"
	"anniversaries/internal/widget"
)

var ErrWidgetNotFound = errors.New("widget not found")

type Dependencies struct {
	Fetcher widget.Fetcher
	Themes  widget.ThemeSource
	Persona widget.PersonaRenderer
	Labels  widget.Labels
	Now     func() time.Time
	Logger  *slog.Logger
	// TitleAction builds the form action used when a widget title is edited
	// in place. Nil disables in-place editing.
	TitleAction func(id string) string
}

// Host owns the mounted widget instances and their settings, standing in for
// the collaboration platform that embeds the widget.
type Host struct {
	ctx  context.Context
	deps Dependencies

	mu      sync.RWMutex
	widgets map[string]*instance
}

type instance struct {
	id        string
	presenter *widget.Presenter

	mu          sync.Mutex
	settings    domain.WidgetSettings
	activatedOn string
	nextSub     int
	subs        map[int]chan widget.View
	closed      bool
}

// New creates a host. ctx bounds every fetch the host's widgets start.
func New(ctx context.Context, deps Dependencies) *Host {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Labels == (widget.Labels{}) {
		deps.Labels = widget.DefaultLabels()
	}
	if deps.Persona == nil {
		deps.Persona = widget.HTMLPersona{}
	}
	return &Host{ctx: ctx, deps: deps, widgets: make(map[string]*instance)}
}

func (h *Host) Mount(settings domain.WidgetSettings) string {
	id := uuid.NewString()
	h.MountWithID(id, settings)
	return id
}

// MountWithID mounts a widget under a caller-chosen id, replacing any widget
// already mounted there.
func (h *Host) MountWithID(id string, settings domain.WidgetSettings) {
	inst := &instance{
		id:       id,
		settings: settings.Normalize(),
		subs:     make(map[int]chan widget.View),
	}

	var title widget.TitleRenderer = widget.HTMLTitle{}
	if h.deps.TitleAction != nil {
		title = widget.HTMLTitle{Action: h.deps.TitleAction(id)}
	}

	inst.presenter = widget.NewPresenter(widget.Dependencies{
		Fetcher:  h.deps.Fetcher,
		Persona:  h.deps.Persona,
		Title:    title,
		Themes:   h.deps.Themes,
		Labels:   h.deps.Labels,
		Now:      h.deps.Now,
		Logger:   h.deps.Logger.With(slog.String("widget_id", id)),
		OnRender: inst.broadcast,
	})

	h.mu.Lock()
	previous := h.widgets[id]
	h.widgets[id] = inst
	h.mu.Unlock()

	if previous != nil {
		previous.close()
	}

	h.activate(inst)
	h.deps.Logger.Info("widget mounted", slog.String("widget_id", id))
}

func (h *Host) Unmount(id string) error {
	h.mu.Lock()
	inst, ok := h.widgets[id]
	delete(h.widgets, id)
	h.mu.Unlock()
	if !ok {
		return ErrWidgetNotFound
	}

	inst.close()
	h.deps.Logger.Info("widget unmounted", slog.String("widget_id", id))
	return nil
}

func (h *Host) Settings(id string) (domain.WidgetSettings, error) {
	inst, err := h.get(id)
	if err != nil {
		return domain.WidgetSettings{}, err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.settings, nil
}

// UpdateSettings stores new settings and re-activates the widget when they
// differ from the current ones.
func (h *Host) UpdateSettings(id string, settings domain.WidgetSettings) (domain.WidgetSettings, error) {
	inst, err := h.get(id)
	if err != nil {
		return domain.WidgetSettings{}, err
	}

	settings = settings.Normalize()
	inst.mu.Lock()
	changed := inst.settings != settings
	inst.settings = settings
	inst.mu.Unlock()

	if changed {
		h.activate(inst)
	}
	return settings, nil
}

// UpdateTitle is the title-change callback handed to the title renderer.
func (h *Host) UpdateTitle(id, title string) error {
	inst, err := h.get(id)
	if err != nil {
		return err
	}

	inst.mu.Lock()
	inst.settings.Title = title
	inst.mu.Unlock()

	inst.presenter.SetTitle(title)
	return nil
}

func (h *Host) View(id string) (widget.View, error) {
	inst, err := h.get(id)
	if err != nil {
		return widget.View{}, err
	}
	return inst.presenter.Render(), nil
}

// Subscribe streams every re-render of a widget. The channel is closed when
// the widget is unmounted or cancel is called.
func (h *Host) Subscribe(id string) (<-chan widget.View, func(), error) {
	inst, err := h.get(id)
	if err != nil {
		return nil, nil, err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	if inst.closed {
		return nil, nil, ErrWidgetNotFound
	}

	subID := inst.nextSub
	inst.nextSub++
	ch := make(chan widget.View, 1)
	inst.subs[subID] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			inst.mu.Lock()
			defer inst.mu.Unlock()
			if c, ok := inst.subs[subID]; ok {
				delete(inst.subs, subID)
				close(c)
			}
		})
	}
	return ch, cancel, nil
}

// RefreshAll re-activates every mounted widget and returns how many there
// were.
func (h *Host) RefreshAll() int {
	h.mu.RLock()
	all := make([]*instance, 0, len(h.widgets))
	for _, inst := range h.widgets {
		all = append(all, inst)
	}
	h.mu.RUnlock()

	for _, inst := range all {
		h.activate(inst)
	}
	return len(all)
}

// RefreshStale re-activates widgets last activated on an earlier day, so
// date windows follow the calendar. It returns how many were refreshed.
func (h *Host) RefreshStale() int {
	today := h.deps.Now().Format("2006-01-02")

	h.mu.RLock()
	stale := make([]*instance, 0)
	for _, inst := range h.widgets {
		inst.mu.Lock()
		if inst.activatedOn != today {
			stale = append(stale, inst)
		}
		inst.mu.Unlock()
	}
	h.mu.RUnlock()

	for _, inst := range stale {
		h.activate(inst)
	}
	return len(stale)
}

func (h *Host) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.widgets))
	for id := range h.widgets {
		ids = append(ids, id)
	}
	return ids
}

func (h *Host) activate(inst *instance) {
	inst.mu.Lock()
	settings := inst.settings
	inst.activatedOn = h.deps.Now().Format("2006-01-02")
	inst.mu.Unlock()

	id := inst.id
	inst.presenter.Activate(h.ctx, widget.Props{
		Settings: settings,
		OnTitleChange: func(title string) {
			if err := h.UpdateTitle(id, title); err != nil {
				h.deps.Logger.Warn("title change for unmounted widget", slog.String("widget_id", id))
			}
		},
	})
}

func (h *Host) get(id string) (*instance, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	inst, ok := h.widgets[id]
	if !ok {
		return nil, ErrWidgetNotFound
	}
	return inst, nil
}

func (inst *instance) broadcast(v widget.View) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	for _, ch := range inst.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

func (inst *instance) close() {
	inst.presenter.Deactivate()

	inst.mu.Lock()
	defer inst.mu.Unlock()
	inst.closed = true
	for id, ch := range inst.subs {
		delete(inst.subs, id)
		close(ch)
	}
}
