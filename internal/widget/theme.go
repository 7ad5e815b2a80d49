package widget

import "sync"

type Palette struct {
	ThemePrimary   string `json:"theme_primary"`
	NeutralPrimary string `json:"neutral_primary"`
	NeutralLighter string `json:"neutral_lighter"`
	White          string `json:"white"`
}

type SemanticColors struct {
	BodyText       string `json:"body_text"`
	BodyDivider    string `json:"body_divider"`
	BodyBackground string `json:"body_background"`
	Link           string `json:"link"`
}

// Theme is the read-only palette the host hands to widgets.
type Theme struct {
	Palette        Palette        `json:"palette"`
	SemanticColors SemanticColors `json:"semantic_colors"`
}

func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			ThemePrimary:   "#0078d4",
			NeutralPrimary: "#323130",
			NeutralLighter: "#f3f2f1",
			White:          "#ffffff",
		},
		SemanticColors: SemanticColors{
			BodyText:       "#323130",
			BodyDivider:    "#edebe9",
			BodyBackground: "#ffffff",
			Link:           "#0078d4",
		},
	}
}

type ThemeSource interface {
	Current() Theme
	Subscribe() (<-chan Theme, func())
}

// ThemeProvider fans theme changes out to subscribers. Slow subscribers only
// ever see the latest theme.
type ThemeProvider struct {
	mu      sync.Mutex
	current Theme
	nextID  int
	subs    map[int]chan Theme
}

func NewThemeProvider(initial Theme) *ThemeProvider {
	return &ThemeProvider{current: initial, subs: make(map[int]chan Theme)}
}

func (p *ThemeProvider) Current() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe returns a channel of theme changes and a cancel func that closes
// it. Cancel is safe to call more than once.
func (p *ThemeProvider) Subscribe() (<-chan Theme, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan Theme, 1)
	p.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (p *ThemeProvider) Publish(t Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = t
	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- t
	}
}

func (p *ThemeProvider) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}
