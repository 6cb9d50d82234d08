package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/binarylab/internal/orbit"
)

// Theme assigns colours to the bodies and the surrounding chrome.
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	COM         lipgloss.Color
	ObserverCOM lipgloss.Color
	Accent      lipgloss.Color
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
}

var (
	ThemeStellar = Theme{
		Name:        "stellar",
		Primary:     lipgloss.Color("#ffcc33"), // hot star
		Secondary:   lipgloss.Color("#66ccff"), // companion
		COM:         lipgloss.Color("#ff4466"),
		ObserverCOM: lipgloss.Color("#88ff88"),
		Accent:      lipgloss.Color("#00ffff"),
		Background:  lipgloss.Color("#0a0a12"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"),
		Secondary:   lipgloss.Color("#88ff88"),
		COM:         lipgloss.Color("#ccffcc"),
		ObserverCOM: lipgloss.Color("#00aa00"),
		Accent:      lipgloss.Color("#88ff88"),
		Background:  lipgloss.Color("#001100"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:        "minimal",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#cccccc"),
		COM:         lipgloss.Color("#0088ff"),
		ObserverCOM: lipgloss.Color("#888888"),
		Accent:      lipgloss.Color("#0088ff"),
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
	}

	CurrentTheme = ThemeStellar

	Themes = []Theme{
		ThemeStellar,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// BodyColor returns the theme colour for a body.
func (t Theme) BodyColor(id orbit.BodyID) lipgloss.Color {
	switch id {
	case orbit.BodyPrimary:
		return t.Primary
	case orbit.BodySecondary:
		return t.Secondary
	case orbit.BodyCenterOfMass:
		return t.COM
	default:
		return t.ObserverCOM
	}
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeStellar
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeStellar
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
