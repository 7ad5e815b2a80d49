package widget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"anniversaries/internal/domain"
)

// Fetcher is the anniversary query the presenter drives.
type Fetcher interface {
	FetchAnniversaries(ctx context.Context, maxItems int, r domain.DateRange) ([]domain.EmployeeRecord, error)
}

// Props are the inputs a host passes on each activation.
type Props struct {
	Settings      domain.WidgetSettings
	OnTitleChange func(string)
}

type Dependencies struct {
	Fetcher Fetcher
	Persona PersonaRenderer
	Title   TitleRenderer
	Themes  ThemeSource
	Labels  Labels
	Now     func() time.Time
	Logger  *slog.Logger
	// OnRender receives every re-rendered view, in order.
	OnRender func(View)
}

// Presenter drives one widget through Idle, Loading, Error and Loaded.
// Every activation issues one fetch; only the most recent activation's
// result may change state.
type Presenter struct {
	fetcher  Fetcher
	persona  PersonaRenderer
	title    TitleRenderer
	themes   ThemeSource
	labels   Labels
	now      func() time.Time
	logger   *slog.Logger
	onRender func(View)

	mu          sync.Mutex
	seq         uint64
	state       State
	errMsg      string
	records     []domain.EmployeeRecord
	props       Props
	theme       Theme
	cancelFetch context.CancelFunc
	cancelTheme func()

	// renderMu serialises OnRender deliveries so listeners never see an
	// older view after a newer one.
	renderMu sync.Mutex
}

func NewPresenter(deps Dependencies) *Presenter {
	p := &Presenter{
		fetcher:  deps.Fetcher,
		persona:  deps.Persona,
		title:    deps.Title,
		themes:   deps.Themes,
		labels:   deps.Labels,
		now:      deps.Now,
		logger:   deps.Logger,
		onRender: deps.OnRender,
		theme:    DefaultTheme(),
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.labels == (Labels{}) {
		p.labels = DefaultLabels()
	}
	if p.themes != nil {
		p.theme = p.themes.Current()
	}
	return p
}

// Activate restarts the presenter at Loading and issues a fresh fetch with
// props. Any fetch still in flight is cancelled and its result ignored.
func (p *Presenter) Activate(ctx context.Context, props Props) uint64 {
	props.Settings = props.Settings.Normalize()

	p.mu.Lock()
	if p.cancelFetch != nil {
		p.cancelFetch()
	}
	p.seq++
	seq := p.seq
	p.props = props
	p.state = StateLoading
	p.errMsg = ""
	p.records = nil

	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancelFetch = cancel

	var themeCh <-chan Theme
	if p.themes != nil && p.cancelTheme == nil {
		themeCh, p.cancelTheme = p.themes.Subscribe()
		p.theme = p.themes.Current()
	}
	p.mu.Unlock()

	if themeCh != nil {
		go p.watchTheme(themeCh)
	}

	p.logger.DebugContext(ctx, "widget activated",
		slog.Uint64("seq", seq),
		slog.Int("max_items", props.Settings.MaxItems),
		slog.String("range", props.Settings.Range.String()),
	)

	p.notify()
	go p.fetch(fetchCtx, seq, props.Settings)
	return seq
}

// Deactivate cancels the in-flight fetch and the theme subscription and
// returns the presenter to Idle.
func (p *Presenter) Deactivate() {
	p.mu.Lock()
	if p.cancelFetch != nil {
		p.cancelFetch()
		p.cancelFetch = nil
	}
	if p.cancelTheme != nil {
		p.cancelTheme()
		p.cancelTheme = nil
	}
	p.seq++
	p.state = StateIdle
	p.errMsg = ""
	p.records = nil
	p.mu.Unlock()
}

// SetTitle updates the title shown without refetching.
func (p *Presenter) SetTitle(title string) {
	p.mu.Lock()
	p.props.Settings.Title = title
	p.mu.Unlock()
	p.notify()
}

func (p *Presenter) State() (State, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.errMsg
}

func (p *Presenter) Render() View {
	p.mu.Lock()
	s := snapshot{
		state:    p.state,
		errMsg:   p.errMsg,
		records:  p.records,
		settings: p.props.Settings,
		onTitle:  p.props.OnTitleChange,
		theme:    p.theme,
	}
	p.mu.Unlock()

	return project(s, p.now(), p.labels, p.persona, p.title)
}

func (p *Presenter) fetch(ctx context.Context, seq uint64, settings domain.WidgetSettings) {
	records, err := p.safeFetch(ctx, settings)

	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		p.logger.Debug("discarding stale anniversary fetch", slog.Uint64("seq", seq))
		return
	}
	if err != nil {
		p.state = StateError
		p.errMsg = errorMessage(err)
		p.records = nil
	} else {
		p.state = StateLoaded
		p.errMsg = ""
		p.records = records
	}
	if p.cancelFetch != nil {
		p.cancelFetch()
		p.cancelFetch = nil
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("anniversary fetch failed", slog.Uint64("seq", seq), slog.String("error", err.Error()))
	}
	p.notify()
}

func (p *Presenter) safeFetch(ctx context.Context, settings domain.WidgetSettings) (records []domain.EmployeeRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("anniversary lookup failed: %v", r)
		}
	}()

	return p.fetcher.FetchAnniversaries(ctx, settings.MaxItems, settings.Range)
}

func (p *Presenter) watchTheme(ch <-chan Theme) {
	for t := range ch {
		p.mu.Lock()
		p.theme = t
		p.mu.Unlock()
		p.notify()
	}
}

func (p *Presenter) notify() {
	if p.onRender == nil {
		return
	}
	p.renderMu.Lock()
	defer p.renderMu.Unlock()
	p.onRender(p.Render())
}

func errorMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "Unable to load anniversaries."
	}
	return msg
}
