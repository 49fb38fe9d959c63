package theme

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"explorer/internal/config"
	apperrors "explorer/internal/errors"
)

// CustomTheme implements fyne.Theme with configurable font settings
type CustomTheme struct {
	config     config.ThemeConfig
	customFont fyne.Resource
}

// NewCustomTheme creates a new custom theme with the given configuration
func NewCustomTheme(cfg config.ThemeConfig) *CustomTheme {
	customTheme := &CustomTheme{config: cfg}

	if cfg.FontPath != "" {
		font, err := loadFont(cfg.FontPath)
		if err != nil {
			log.Printf("%v", err)
		} else {
			customTheme.customFont = font
			log.Printf("Loaded custom font: %s", cfg.FontPath)
		}
	}

	return customTheme
}

// loadFont reads a font file into a resource
func loadFont(fontPath string) (fyne.Resource, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, apperrors.NewThemeError("load_font", "cannot read font file "+fontPath, err)
	}
	return fyne.NewStaticResource(filepath.Base(fontPath), fontData), nil
}

func (t *CustomTheme) base() fyne.Theme {
	if t.config.Dark {
		return theme.DarkTheme()
	}
	return theme.DefaultTheme()
}

// Color methods from default theme
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base().Color(name, variant)
}

// Icon methods from default theme
func (t *CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base().Icon(name)
}

// Font returns the custom font for proportional text. Text previews keep
// the built-in monospace face.
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.customFont != nil && !style.Monospace {
		return t.customFont
	}
	return t.base().Font(style)
}

// Size method with custom font size support
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.FontSize > 0 {
		return float32(t.config.FontSize)
	}
	return t.base().Size(name)
}
