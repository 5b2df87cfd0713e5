package ui

import (
	"testing"

	apperrors "github.com/agbru/spiral/internal/errors"
)

var _ apperrors.ColorProvider = ThemeColors{}

func TestThemeColors(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	SetCurrentTheme(LightTheme)
	var p apperrors.ColorProvider = ThemeColors{}
	theme := LightTheme
	if p.Yellow() != theme.Warning {
		t.Errorf("Yellow() = %q, want the theme warning color %q", p.Yellow(), theme.Warning)
	}
	if p.Reset() != theme.Reset {
		t.Errorf("Reset() = %q, want %q", p.Reset(), theme.Reset)
	}
}
