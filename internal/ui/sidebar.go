package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/config"
)

// Sidebar lists favorite folders
type Sidebar struct {
	favorites []config.FavoriteConfig
	list      *widget.List
	addButton *widget.Button
	root      *fyne.Container

	onSelect func(path string)
	// suppress is set while the list selection is changed programmatically
	suppress bool
}

// NewSidebar creates the favorites sidebar. onAdd is called by the "+" button.
func NewSidebar(favorites []config.FavoriteConfig, onSelect func(path string), onAdd func()) *Sidebar {
	s := &Sidebar{
		favorites: append([]config.FavoriteConfig(nil), favorites...),
		onSelect:  onSelect,
	}

	s.list = widget.NewList(
		func() int { return len(s.favorites) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel("favorite"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(s.favorites) {
				return
			}
			fav := s.favorites[id]
			row := obj.(*fyne.Container)
			row.Objects[1].(*widget.Label).SetText(FavoriteLabel(fav))
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if s.suppress || id < 0 || id >= len(s.favorites) {
			return
		}
		if s.onSelect != nil {
			s.onSelect(s.favorites[id].Path)
		}
	}

	s.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), onAdd)
	title := widget.NewLabelWithStyle("Favorites", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	s.root = container.NewBorder(container.NewBorder(nil, nil, nil, s.addButton, title), nil, nil, nil, s.list)
	return s
}

// GetContainer returns the sidebar's root object
func (s *Sidebar) GetContainer() fyne.CanvasObject { return s.root }

// SetFavorites replaces the listed favorites
func (s *Sidebar) SetFavorites(favorites []config.FavoriteConfig) {
	s.favorites = append([]config.FavoriteConfig(nil), favorites...)
	s.list.Refresh()
}

// Highlight selects the favorite for path, or clears the selection
func (s *Sidebar) Highlight(path string) {
	s.suppress = true
	defer func() { s.suppress = false }()
	for i, fav := range s.favorites {
		if filepath.Clean(fav.Path) == filepath.Clean(path) {
			s.list.Select(i)
			return
		}
	}
	s.list.UnselectAll()
}

// FavoriteLabel returns the display name of a favorite
func FavoriteLabel(fav config.FavoriteConfig) string {
	if fav.Name != "" {
		return fav.Name
	}
	return filepath.Base(fav.Path)
}

// AddFavorite appends path unless it is already a favorite; it reports whether the list changed
func AddFavorite(favorites []config.FavoriteConfig, path string) ([]config.FavoriteConfig, bool) {
	for _, fav := range favorites {
		if filepath.Clean(fav.Path) == filepath.Clean(path) {
			return favorites, false
		}
	}
	return append(favorites, config.FavoriteConfig{Name: filepath.Base(path), Path: path}), true
}
