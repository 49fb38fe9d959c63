package theme

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"explorer/internal/config"
	apperrors "explorer/internal/errors"
)

func TestSizeUsesConfiguredFontSize(t *testing.T) {
	th := NewCustomTheme(config.ThemeConfig{Dark: true, FontSize: 19})
	if got := th.Size(theme.SizeNameText); got != 19 {
		t.Errorf("Size(text) = %v, want 19", got)
	}

	th = NewCustomTheme(config.ThemeConfig{Dark: true})
	if got, want := th.Size(theme.SizeNameText), theme.DarkTheme().Size(theme.SizeNameText); got != want {
		t.Errorf("Size(text) without override = %v, want %v", got, want)
	}
}

func TestMissingFontFallsBack(t *testing.T) {
	th := NewCustomTheme(config.ThemeConfig{FontPath: filepath.Join(t.TempDir(), "missing.ttf")})
	if th.customFont != nil {
		t.Fatal("custom font should not be set for a missing file")
	}
	if th.Font(fyne.TextStyle{}) == nil {
		t.Error("Font should fall back to the built-in font")
	}
}

func TestLoadFont(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(p, []byte("fake font data"), 0644); err != nil {
		t.Fatal(err)
	}

	th := NewCustomTheme(config.ThemeConfig{FontPath: p})
	if th.Font(fyne.TextStyle{}) != th.customFont {
		t.Error("proportional text should use the custom font")
	}
	if th.Font(fyne.TextStyle{Monospace: true}) == th.customFont {
		t.Error("monospace text should keep the built-in font")
	}

	_, err := loadFont(filepath.Join(t.TempDir(), "nope.ttf"))
	if !apperrors.IsType(err, apperrors.ErrorTypeTheme) {
		t.Errorf("expected theme error, got %v", err)
	}
}
