package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"explorer/internal/constants"
	apperrors "explorer/internal/errors"
	"explorer/internal/fileinfo"
)

func dummyDebugPrint(format string, args ...interface{}) {}

func TestGetDefaultConfig(t *testing.T) {
	config := getDefaultConfig()

	// Test Window defaults
	if config.Window.Width != 1000 {
		t.Errorf("Expected default window width 1000, got %d", config.Window.Width)
	}
	if config.Window.Height != 650 {
		t.Errorf("Expected default window height 650, got %d", config.Window.Height)
	}
	if config.Window.PreviewSplit != 0.6 {
		t.Errorf("Expected default preview split 0.6, got %v", config.Window.PreviewSplit)
	}

	// Test Theme defaults
	if !config.Theme.Dark {
		t.Error("Expected dark theme to be true by default")
	}
	if config.Theme.FontSize != 14 {
		t.Errorf("Expected default font size 14, got %d", config.Theme.FontSize)
	}

	// Test Browser defaults
	if config.Browser.ShowHiddenFiles {
		t.Error("Expected ShowHiddenFiles to be false by default")
	}
	if config.Browser.SortKey != "nameAsc" {
		t.Errorf("Expected default sort key 'nameAsc', got '%s'", config.Browser.SortKey)
	}
	if config.Browser.Locale != "" {
		t.Errorf("Expected empty locale, got '%s'", config.Browser.Locale)
	}
	if config.Browser.Favorites == nil {
		t.Error("Expected favorites to be initialized")
	}
	if config.Browser.NavigationHistory.MaxEntries != 50 {
		t.Errorf("Expected default navigation history max entries 50, got %d", config.Browser.NavigationHistory.MaxEntries)
	}
	if config.Browser.NavigationHistory.Entries == nil {
		t.Error("Expected navigation history entries to be initialized")
	}

	// Test Preview defaults
	if config.Preview.TextLimit != 20000 {
		t.Errorf("Expected default text limit 20000, got %d", config.Preview.TextLimit)
	}
	if config.Preview.ThumbnailSize <= 0 {
		t.Errorf("Expected positive thumbnail size, got %d", config.Preview.ThumbnailSize)
	}
}

func TestMergeConfigs(t *testing.T) {
	defaultConfig := getDefaultConfig()
	fileConfig := &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
		},
		Theme: ThemeConfig{
			Dark:     false,
			FontSize: 16,
			FontPath: "/path/to/font.ttf",
		},
		Browser: BrowserConfig{
			ShowHiddenFiles: true,
			SortKey:         "sizeLargestFirst",
			Locale:          "sv",
			DisableWatch:    true,
			Favorites:       []FavoriteConfig{{Name: "Projects", Path: "/src"}},
		},
		Preview: PreviewConfig{
			TextLimit: 50000,
		},
	}

	mergeConfigs(defaultConfig, fileConfig)

	// Check merged values
	if defaultConfig.Window.Width != 1024 {
		t.Errorf("Expected merged window width 1024, got %d", defaultConfig.Window.Width)
	}
	if defaultConfig.Window.Height != 768 {
		t.Errorf("Expected merged window height 768, got %d", defaultConfig.Window.Height)
	}
	if defaultConfig.Window.PreviewSplit != 0.6 {
		t.Errorf("Expected unset preview split to keep default, got %v", defaultConfig.Window.PreviewSplit)
	}
	if defaultConfig.Theme.Dark {
		t.Error("Expected merged theme to be light (false)")
	}
	if defaultConfig.Theme.FontSize != 16 {
		t.Errorf("Expected merged font size 16, got %d", defaultConfig.Theme.FontSize)
	}
	if !defaultConfig.Browser.ShowHiddenFiles {
		t.Error("Expected merged ShowHiddenFiles to be true")
	}
	if !defaultConfig.Browser.DisableWatch {
		t.Error("Expected merged DisableWatch to be true")
	}
	if defaultConfig.Browser.SortKey != "sizeLargestFirst" {
		t.Errorf("Expected merged sort key 'sizeLargestFirst', got '%s'", defaultConfig.Browser.SortKey)
	}
	if defaultConfig.Browser.Locale != "sv" {
		t.Errorf("Expected merged locale 'sv', got '%s'", defaultConfig.Browser.Locale)
	}
	if len(defaultConfig.Browser.Favorites) != 1 || defaultConfig.Browser.Favorites[0].Path != "/src" {
		t.Errorf("Expected merged favorites [/src], got %v", defaultConfig.Browser.Favorites)
	}
	if defaultConfig.Preview.TextLimit != 50000 {
		t.Errorf("Expected merged text limit 50000, got %d", defaultConfig.Preview.TextLimit)
	}
	if defaultConfig.Preview.ThumbnailSize != 512 {
		t.Errorf("Expected unset thumbnail size to keep default 512, got %d", defaultConfig.Preview.ThumbnailSize)
	}
	if defaultConfig.Browser.NavigationHistory.MaxEntries != 50 {
		t.Errorf("Expected unset history max to keep default 50, got %d", defaultConfig.Browser.NavigationHistory.MaxEntries)
	}
}

func TestMergeConfigsRejectsInvalidValues(t *testing.T) {
	defaultConfig := getDefaultConfig()
	mergeConfigs(defaultConfig, &Config{
		Window:  WindowConfig{PreviewSplit: 1.5},
		Preview: PreviewConfig{TextLimit: -1, ThumbnailSize: -10},
	})

	if defaultConfig.Window.PreviewSplit != 0.6 {
		t.Errorf("Expected out of range split to be ignored, got %v", defaultConfig.Window.PreviewSplit)
	}
	if defaultConfig.Preview.TextLimit != 20000 {
		t.Errorf("Expected negative text limit to be ignored, got %d", defaultConfig.Preview.TextLimit)
	}
	if defaultConfig.Preview.ThumbnailSize != 512 {
		t.Errorf("Expected negative thumbnail size to be ignored, got %d", defaultConfig.Preview.ThumbnailSize)
	}
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		stored string
		want   fileinfo.SortKey
	}{
		{"nameAsc", fileinfo.SortNameAsc},
		{"nameDesc", fileinfo.SortNameDesc},
		{"dateNewestFirst", fileinfo.SortDateNewestFirst},
		{"SIZESMALLESTFIRST", fileinfo.SortSizeSmallestFirst},
		{"bogus", fileinfo.SortNameAsc},
		{"", fileinfo.SortNameAsc},
	}

	for _, tt := range tests {
		c := getDefaultConfig()
		c.Browser.SortKey = tt.stored
		if got := c.SortKey(); got != tt.want {
			t.Errorf("SortKey() with %q = %v, want %v", tt.stored, got, tt.want)
		}
	}

	c := getDefaultConfig()
	c.SetSortKey(fileinfo.SortDateOldestFirst)
	if c.Browser.SortKey != "dateOldestFirst" {
		t.Errorf("SetSortKey stored %q", c.Browser.SortKey)
	}
}

func TestLocaleTag(t *testing.T) {
	c := getDefaultConfig()
	if got := c.LocaleTag(); got != language.Und {
		t.Errorf("empty locale should be Und, got %v", got)
	}

	c.Browser.Locale = "de-DE"
	if got := c.LocaleTag(); got != language.MustParse("de-DE") {
		t.Errorf("LocaleTag() = %v, want de-DE", got)
	}

	c.Browser.Locale = "not a locale!"
	if got := c.LocaleTag(); got != language.Und {
		t.Errorf("invalid locale should be Und, got %v", got)
	}
}

func TestManagerInterface(t *testing.T) {
	var manager ManagerInterface = &Manager{
		configPath: "/tmp/test_config.json",
		debugPrint: dummyDebugPrint,
	}

	if manager == nil {
		t.Error("Manager should implement ManagerInterface")
	}
}

func TestConfigSerialization(t *testing.T) {
	config := getDefaultConfig()
	config.Browser.Favorites = []FavoriteConfig{{Name: "Home", Path: "/home/user"}}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	for _, key := range []string{`"browser"`, `"sortKey"`, `"showHiddenFiles"`, `"preview"`, `"textLimit"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled config missing %s", key)
		}
	}

	var unmarshaledConfig Config
	if err := json.Unmarshal(data, &unmarshaledConfig); err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}
	if unmarshaledConfig.Browser.Favorites[0].Path != "/home/user" {
		t.Errorf("Favorites not preserved: %v", unmarshaledConfig.Browser.Favorites)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := getConfigPath()

	if path == "" {
		t.Error("Config path should not be empty")
	}
	if !strings.HasSuffix(path, "config.json") {
		t.Errorf("Config path should end with 'config.json', got '%s'", path)
	}
	if !strings.Contains(path, "explorer") {
		t.Errorf("Config path should be under an 'explorer' directory, got '%s'", path)
	}
}

func TestManagerLoadNonExistentFile(t *testing.T) {
	manager := &Manager{
		configPath: filepath.Join(t.TempDir(), "missing", "config.json"),
		debugPrint: dummyDebugPrint,
	}

	config, err := manager.Load()
	if err != nil {
		t.Fatalf("Load should not return error for non-existent file, got: %v", err)
	}
	if config.Window.Width != 1000 {
		t.Errorf("Should return default config with width 1000, got %d", config.Window.Width)
	}
}

func TestManagerLoadInvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	manager := &Manager{configPath: configPath, debugPrint: dummyDebugPrint}

	config, err := manager.Load()
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if config != nil {
		t.Error("Expected nil config on parse error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeConfig) {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestManagerLoadPartialFileKeepsBoolDefaults(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		dark       bool
		showHidden bool
	}{
		{"keys absent", `{"theme": {"fontSize": 18}}`, constants.DarkThemeDefault, constants.DefaultShowHiddenFiles},
		{"explicit values", `{"theme": {"dark": false}, "browser": {"showHiddenFiles": true}}`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(configPath, []byte(tt.json), 0644); err != nil {
				t.Fatal(err)
			}
			manager := &Manager{configPath: configPath, debugPrint: dummyDebugPrint}

			config, err := manager.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if config.Theme.Dark != tt.dark {
				t.Errorf("Theme.Dark = %v, want %v", config.Theme.Dark, tt.dark)
			}
			if config.Browser.ShowHiddenFiles != tt.showHidden {
				t.Errorf("ShowHiddenFiles = %v, want %v", config.Browser.ShowHiddenFiles, tt.showHidden)
			}
			if config.Browser.DisableWatch {
				t.Error("Expected DisableWatch to keep its default")
			}
		})
	}
}

func TestManagerSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")
	manager := &Manager{
		configPath: configPath,
		debugPrint: dummyDebugPrint,
	}

	testConfig := getDefaultConfig()
	testConfig.Window = WindowConfig{Width: 1200, Height: 800, PreviewSplit: 0.5}
	testConfig.Theme = ThemeConfig{Dark: false, FontSize: 18}
	testConfig.Browser.ShowHiddenFiles = true
	testConfig.SetSortKey(fileinfo.SortDateNewestFirst)
	testConfig.AddToNavigationHistory("/tmp/a")

	if err := manager.Save(testConfig); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedConfig, err := manager.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loadedConfig.Window.Width != 1200 {
		t.Errorf("Expected loaded width 1200, got %d", loadedConfig.Window.Width)
	}
	if loadedConfig.Window.PreviewSplit != 0.5 {
		t.Errorf("Expected loaded split 0.5, got %v", loadedConfig.Window.PreviewSplit)
	}
	if loadedConfig.Theme.FontSize != 18 {
		t.Errorf("Expected loaded font size 18, got %d", loadedConfig.Theme.FontSize)
	}
	if !loadedConfig.Browser.ShowHiddenFiles {
		t.Error("Expected loaded ShowHiddenFiles to be true")
	}
	if loadedConfig.SortKey() != fileinfo.SortDateNewestFirst {
		t.Errorf("Expected loaded sort key dateNewestFirst, got %v", loadedConfig.SortKey())
	}
	if h := loadedConfig.GetNavigationHistory(); len(h) != 1 || h[0] != "/tmp/a" {
		t.Errorf("Expected history [/tmp/a], got %v", h)
	}
}

func TestNavigationHistory(t *testing.T) {
	c := getDefaultConfig()
	c.Browser.NavigationHistory.MaxEntries = 3

	for _, p := range []string{"/a", "/b", "/c"} {
		c.AddToNavigationHistory(p)
	}
	// revisiting moves to the front without duplicating
	c.AddToNavigationHistory("/a")
	if got := strings.Join(c.Browser.NavigationHistory.Entries, ","); got != "/a,/c,/b" {
		t.Errorf("Entries = %s, want /a,/c,/b", got)
	}

	c.AddToNavigationHistory("/d")
	if got := strings.Join(c.Browser.NavigationHistory.Entries, ","); got != "/d,/a,/c" {
		t.Errorf("Entries = %s, want /d,/a,/c", got)
	}
	if _, ok := c.Browser.NavigationHistory.LastUsed["/b"]; ok {
		t.Error("Evicted entry should be removed from LastUsed")
	}
}

func TestGetNavigationHistorySortsByLastUsed(t *testing.T) {
	now := time.Now()
	c := getDefaultConfig()
	c.Browser.NavigationHistory.Entries = []string{"/old", "/new", "/mid"}
	c.Browser.NavigationHistory.LastUsed = map[string]time.Time{
		"/old": now.Add(-2 * time.Hour),
		"/new": now,
		"/mid": now.Add(-time.Hour),
	}

	got := c.GetNavigationHistory()
	if strings.Join(got, ",") != "/new,/mid,/old" {
		t.Errorf("GetNavigationHistory() = %v", got)
	}
	// stored order is untouched
	if c.Browser.NavigationHistory.Entries[0] != "/old" {
		t.Error("GetNavigationHistory should not reorder stored entries")
	}
}
