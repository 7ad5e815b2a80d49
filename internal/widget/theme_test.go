package widget

import (
	"strings"
	"testing"

	"anniversaries/internal/domain"
)

func TestThemeProvider_LatestThemeWins(t *testing.T) {
	p := NewThemeProvider(DefaultTheme())
	ch, cancel := p.Subscribe()
	defer cancel()

	first := DefaultTheme()
	first.Palette.ThemePrimary = "#111111"
	second := DefaultTheme()
	second.Palette.ThemePrimary = "#222222"

	p.Publish(first)
	p.Publish(second)

	got := <-ch
	if got.Palette.ThemePrimary != "#222222" {
		t.Fatalf("expected latest theme, got %s", got.Palette.ThemePrimary)
	}
	if p.Current().Palette.ThemePrimary != "#222222" {
		t.Fatalf("expected current theme to be updated")
	}
}

func TestThemeProvider_CancelClosesChannelOnce(t *testing.T) {
	p := NewThemeProvider(DefaultTheme())
	ch, cancel := p.Subscribe()

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("expected channel to be closed")
	}
	if p.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", p.Subscribers())
	}

	p.Publish(DefaultTheme())
}

func TestHTMLPersona_EscapesAndShowsInitials(t *testing.T) {
	out := string(HTMLPersona{}.RenderPersona(domain.EmployeeRecord{
		Identity:    "ada@example.com",
		DisplayName: "Ada Lovelace <script>",
		JobTitle:    "Engineer",
	}))

	if strings.Contains(out, "<script>") {
		t.Fatalf("expected display name to be escaped: %s", out)
	}
	if !strings.Contains(out, `<span class="persona-initials">AL</span>`) {
		t.Fatalf("expected initials, got %s", out)
	}
	if strings.Contains(out, "persona-department") {
		t.Fatalf("did not expect empty department to render")
	}
}

func TestHTMLPersona_FallsBackToIdentity(t *testing.T) {
	out := string(HTMLPersona{}.RenderPersona(domain.EmployeeRecord{Identity: "grace@example.com"}))
	if !strings.Contains(out, `<span class="persona-name">grace@example.com</span>`) {
		t.Fatalf("expected identity as name, got %s", out)
	}
}

func TestHTMLTitle_EditableOnlyWithCallbackAndAction(t *testing.T) {
	readOnly := string(HTMLTitle{Action: "/widgets/1/title"}.RenderTitle("Milestones", nil))
	if !strings.HasPrefix(readOnly, `<h2 class="widget-title">Milestones</h2>`) {
		t.Fatalf("expected heading, got %s", readOnly)
	}

	editable := string(HTMLTitle{Action: "/widgets/1/title"}.RenderTitle("Milestones", func(string) {}))
	if !strings.Contains(editable, `action="/widgets/1/title"`) || !strings.Contains(editable, `value="Milestones"`) {
		t.Fatalf("expected edit form, got %s", editable)
	}
}
