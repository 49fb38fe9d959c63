package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/text/language"

	"explorer/internal/constants"
	apperrors "explorer/internal/errors"
	"explorer/internal/fileinfo"
)

// Config represents the application configuration
type Config struct {
	Window  WindowConfig  `json:"window"`
	Theme   ThemeConfig   `json:"theme"`
	Browser BrowserConfig `json:"browser"`
	Preview PreviewConfig `json:"preview"`
}

// WindowConfig represents window-related settings
type WindowConfig struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	PreviewSplit float64 `json:"previewSplit"` // fraction of the width given to the file list
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark     bool   `json:"dark"`
	FontSize int    `json:"fontSize"`
	FontPath string `json:"fontPath"`
}

// BrowserConfig represents file browsing settings
type BrowserConfig struct {
	ShowHiddenFiles   bool                    `json:"showHiddenFiles"`
	SortKey           string                  `json:"sortKey"` // "nameAsc", "dateNewestFirst", ...
	Locale            string                  `json:"locale"`  // BCP 47 tag for name collation; empty = system locale
	DisableWatch      bool                    `json:"disableWatch"`
	Favorites         []FavoriteConfig        `json:"favorites"`
	NavigationHistory NavigationHistoryConfig `json:"navigationHistory"`
}

// FavoriteConfig is one sidebar shortcut
type FavoriteConfig struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NavigationHistoryConfig represents navigation history settings
type NavigationHistoryConfig struct {
	MaxEntries int                  `json:"maxEntries"` // Maximum number of paths to remember
	Entries    []string             `json:"entries"`    // Path history (newest first)
	LastUsed   map[string]time.Time `json:"lastUsed"`   // LRU management
}

// PreviewConfig represents preview pane settings
type PreviewConfig struct {
	TextLimit     int `json:"textLimit"`     // characters shown before a text preview is truncated
	ThumbnailSize int `json:"thumbnailSize"` // pixels
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
	debugPrint func(format string, args ...interface{})
}

// NewManager creates a new configuration manager
func NewManager(debugPrint func(format string, args ...interface{})) *Manager {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &Manager{
		configPath: getConfigPath(),
		debugPrint: debugPrint,
	}
}

// Path returns the configuration file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	// Start with default configuration
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	// Parse config file into a temporary config. Booleans are seeded with
	// their defaults since Unmarshal leaves absent keys untouched.
	fileConfig := Config{
		Theme: ThemeConfig{Dark: config.Theme.Dark},
		Browser: BrowserConfig{
			ShowHiddenFiles: config.Browser.ShowHiddenFiles,
			DisableWatch:    config.Browser.DisableWatch,
		},
	}
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, apperrors.NewConfigError("load", "error parsing config file", err)
	}

	// Merge file config with defaults
	mergeConfigs(config, &fileConfig)
	m.debugPrint("Config loaded from %s", m.configPath)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	// Create the config directory if it doesn't exist
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return apperrors.NewConfigError("save", "error creating config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return apperrors.NewConfigError("save", "error marshaling config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return apperrors.NewConfigError("save", "error writing config file", err)
	}

	m.debugPrint("Config saved to %s", m.configPath)
	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:        constants.DefaultWindowWidth,
			Height:       constants.DefaultWindowHeight,
			PreviewSplit: constants.DefaultPreviewSplitOffset,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
			FontPath: "",
		},
		Browser: BrowserConfig{
			ShowHiddenFiles: constants.DefaultShowHiddenFiles,
			SortKey:         constants.DefaultSortKey,
			Favorites:       defaultFavorites(),
			NavigationHistory: NavigationHistoryConfig{
				MaxEntries: constants.DefaultHistoryMax,
				Entries:    make([]string, 0),
				LastUsed:   make(map[string]time.Time),
			},
		},
		Preview: PreviewConfig{
			TextLimit:     constants.DefaultTextPreviewLimit,
			ThumbnailSize: constants.DefaultThumbnailSize,
		},
	}
}

// defaultFavorites lists the home directory and the usual user folders that exist
func defaultFavorites() []FavoriteConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		return []FavoriteConfig{}
	}
	favorites := []FavoriteConfig{{Name: "Home", Path: home}}
	for _, name := range []string{"Desktop", "Documents", "Downloads"} {
		p := filepath.Join(home, name)
		if fi, err := os.Stat(p); err == nil && fi.IsDir() {
			favorites = append(favorites, FavoriteConfig{Name: name, Path: p})
		}
	}
	return favorites
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\explorer\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.ApplicationName)

	case "darwin":
		// macOS: ~/Library/Application Support/explorer/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return constants.ConfigFileName
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.ApplicationName)

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/explorer/config.json or ~/.config/explorer/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.ApplicationName)
	}

	return filepath.Join(configDir, constants.ConfigFileName)
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	// Merge Window config
	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}
	if fileConfig.Window.PreviewSplit > 0 && fileConfig.Window.PreviewSplit < 1 {
		defaultConfig.Window.PreviewSplit = fileConfig.Window.PreviewSplit
	}

	// Merge Theme config
	// bools always take the file value; Load seeds absent keys with the defaults
	defaultConfig.Theme.Dark = fileConfig.Theme.Dark
	if fileConfig.Theme.FontSize != 0 {
		defaultConfig.Theme.FontSize = fileConfig.Theme.FontSize
	}
	if fileConfig.Theme.FontPath != "" {
		defaultConfig.Theme.FontPath = fileConfig.Theme.FontPath
	}

	// Merge Browser config
	defaultConfig.Browser.ShowHiddenFiles = fileConfig.Browser.ShowHiddenFiles
	defaultConfig.Browser.DisableWatch = fileConfig.Browser.DisableWatch
	if fileConfig.Browser.SortKey != "" {
		defaultConfig.Browser.SortKey = fileConfig.Browser.SortKey
	}
	if fileConfig.Browser.Locale != "" {
		defaultConfig.Browser.Locale = fileConfig.Browser.Locale
	}
	// An explicit empty list removes all favorites
	if fileConfig.Browser.Favorites != nil {
		defaultConfig.Browser.Favorites = fileConfig.Browser.Favorites
	}

	// Merge NavigationHistory config
	if fileConfig.Browser.NavigationHistory.MaxEntries != 0 {
		defaultConfig.Browser.NavigationHistory.MaxEntries = fileConfig.Browser.NavigationHistory.MaxEntries
	}
	if fileConfig.Browser.NavigationHistory.Entries != nil {
		defaultConfig.Browser.NavigationHistory.Entries = fileConfig.Browser.NavigationHistory.Entries
	}
	if fileConfig.Browser.NavigationHistory.LastUsed != nil {
		defaultConfig.Browser.NavigationHistory.LastUsed = fileConfig.Browser.NavigationHistory.LastUsed
	}

	// Merge Preview config
	if fileConfig.Preview.TextLimit > 0 {
		defaultConfig.Preview.TextLimit = fileConfig.Preview.TextLimit
	}
	if fileConfig.Preview.ThumbnailSize > 0 {
		defaultConfig.Preview.ThumbnailSize = fileConfig.Preview.ThumbnailSize
	}
}

// SortKey returns the configured sort key, falling back to name order
func (c *Config) SortKey() fileinfo.SortKey {
	key, err := fileinfo.ParseSortKey(c.Browser.SortKey)
	if err != nil {
		log.Printf("Invalid sortKey in config, using %s: %v", fileinfo.SortNameAsc, err)
		return fileinfo.SortNameAsc
	}
	return key
}

// SetSortKey stores key in its config form
func (c *Config) SetSortKey(key fileinfo.SortKey) {
	c.Browser.SortKey = key.String()
}

// LocaleTag returns the configured collation locale, or language.Und for the system locale
func (c *Config) LocaleTag() language.Tag {
	if c.Browser.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Browser.Locale)
	if err != nil {
		log.Printf("Invalid locale in config, using system locale: %v", err)
		return language.Und
	}
	return tag
}

// AddToNavigationHistory adds a path to navigation history
func (c *Config) AddToNavigationHistory(path string) {
	history := &c.Browser.NavigationHistory
	if history.LastUsed == nil {
		history.LastUsed = make(map[string]time.Time)
	}

	// Remove existing entry if it exists
	for i, entry := range history.Entries {
		if entry == path {
			history.Entries = append(history.Entries[:i], history.Entries[i+1:]...)
			break
		}
	}

	// Add to beginning of slice (newest first)
	history.Entries = append([]string{path}, history.Entries...)
	history.LastUsed[path] = time.Now()

	// Enforce max entries limit
	if history.MaxEntries > 0 && len(history.Entries) > history.MaxEntries {
		for _, dropped := range history.Entries[history.MaxEntries:] {
			delete(history.LastUsed, dropped)
		}
		history.Entries = history.Entries[:history.MaxEntries]
	}
}

// GetNavigationHistory returns the navigation history entries sorted by last used time (newest first)
func (c *Config) GetNavigationHistory() []string {
	history := c.Browser.NavigationHistory
	sorted := make([]string, len(history.Entries))
	copy(sorted, history.Entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return history.LastUsed[sorted[i]].After(history.LastUsed[sorted[j]])
	})
	return sorted
}
