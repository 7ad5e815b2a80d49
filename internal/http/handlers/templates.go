package handlers

import (
	"embed"
	"html/template"

	"anniversaries/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the server-rendered widget pages.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"medal": medal,
	}).ParseFS(templateFS, "templates/*.html"))
}

func medal(t domain.TenureTier) string {
	switch t {
	case domain.TierGold:
		return "🥇"
	case domain.TierSilver:
		return "🥈"
	default:
		return "🥉"
	}
}
