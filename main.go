package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/config"
	"explorer/internal/constants"
	"explorer/internal/fileinfo"
	"explorer/internal/jobs"
	"explorer/internal/preview"
	customtheme "explorer/internal/theme"
	"explorer/internal/ui"
	"explorer/internal/watcher"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// browserView keys the window's background jobs
const browserView = "browser"

// Browser is the explorer window: a favorites sidebar, the listing of the
// current directory and a preview of the selected entry. All fields are
// owned by the UI goroutine; background results arrive through fyne.Do.
type Browser struct {
	view          string
	window        fyne.Window
	config        *config.Config
	configManager config.ManagerInterface
	jobs          *jobs.Manager
	lister        *fileinfo.Lister
	resolver      *preview.Resolver
	dirWatcher    *watcher.Watcher

	currentPath string
	entries     []fileinfo.DirectoryEntry // full listing in display order
	visible     []fileinfo.DirectoryEntry // entries matching the search query
	selectedID  string
	query       string
	sortKey     fileinfo.SortKey
	showHidden  bool

	pathEntry   *widget.Entry
	searchEntry *widget.Entry
	fileList    *widget.List
	statusLabel *widget.Label
	previewPane *ui.PreviewPane
	sidebar     *ui.Sidebar
	busyOverlay *ui.BusyOverlay
}

// NewBrowser creates a window showing path
func NewBrowser(a fyne.App, path string, cfg *config.Config, configManager config.ManagerInterface, jobManager *jobs.Manager) *Browser {
	b := &Browser{
		view:          browserView,
		window:        a.NewWindow(constants.ApplicationTitle),
		config:        cfg,
		configManager: configManager,
		jobs:          jobManager,
		lister:        fileinfo.NewLister(fileinfo.LocalFS{}, debugPrint),
		resolver: preview.NewResolver(fileinfo.LocalFS{}, preview.Options{
			TextLimit:     cfg.Preview.TextLimit,
			ThumbnailSize: cfg.Preview.ThumbnailSize,
		}, debugPrint),
		sortKey:    cfg.SortKey(),
		showHidden: cfg.Browser.ShowHiddenFiles,
	}

	if !cfg.Browser.DisableWatch {
		w, err := watcher.New(b.onDirectoryChanged, debugPrint)
		if err != nil {
			log.Printf("Directory watching disabled: %v", err)
		} else {
			b.dirWatcher = w
		}
	}

	b.setupUI()
	b.LoadDirectory(path)
	return b
}

func (b *Browser) setupUI() {
	b.pathEntry = widget.NewEntry()
	b.pathEntry.OnSubmitted = b.navigateToPath

	b.searchEntry = widget.NewEntry()
	b.searchEntry.SetPlaceHolder("Search (text or glob such as *.go)")
	b.searchEntry.OnChanged = func(q string) {
		b.query = q
		b.applyFilter()
	}

	labels := make([]string, 0, len(fileinfo.SortKeys()))
	for _, k := range fileinfo.SortKeys() {
		labels = append(labels, k.Label())
	}
	sortSelect := widget.NewSelect(labels, nil)
	sortSelect.SetSelected(b.sortKey.Label())
	sortSelect.OnChanged = func(label string) {
		key, ok := fileinfo.SortKeyFromLabel(label)
		if !ok || key == b.sortKey {
			return
		}
		b.sortKey = key
		b.config.SetSortKey(key)
		b.saveConfig()
		fileinfo.SortEntries(b.entries, key, b.config.LocaleTag())
		b.applyFilter()
	}

	hiddenCheck := widget.NewCheck("Hidden files", nil)
	hiddenCheck.SetChecked(b.showHidden)
	hiddenCheck.OnChanged = func(on bool) {
		b.showHidden = on
		b.config.Browser.ShowHiddenFiles = on
		b.saveConfig()
		b.Refresh()
	}

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MoveUpIcon(), b.goUp),
		widget.NewToolbarAction(theme.HomeIcon(), func() {
			home, err := os.UserHomeDir()
			if err != nil {
				ui.ShowErrorDialog(b.window, err)
				return
			}
			b.LoadDirectory(home)
		}),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), b.Refresh),
		widget.NewToolbarAction(theme.HistoryIcon(), b.showNavigationHistory),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderNewIcon(), func() {
			ui.ShowNewFolderDialog(b.window, b.currentPath, debugPrint, func(path string) {
				b.selectedID = path
				b.Refresh()
			})
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), b.openSelected),
	)

	b.fileList = widget.NewList(
		func() int { return len(b.visible) },
		func() fyne.CanvasObject {
			icon := ui.NewTappableIcon(theme.FileIcon(), nil)
			name := widget.NewLabel("filename")
			name.Truncation = fyne.TextTruncateEllipsis
			size := widget.NewLabel("000.0 KB")
			modified := widget.NewLabel(constants.TimestampDisplayLayout)
			modified.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, icon, container.NewHBox(size, modified), name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(b.visible) {
				return
			}
			entry := b.visible[id]
			row := obj.(*fyne.Container)
			// Border layout order: center, left, right
			name := row.Objects[0].(*widget.Label)
			icon := row.Objects[1].(*ui.TappableIcon)
			info := row.Objects[2].(*fyne.Container)

			name.SetText(entry.Name)
			if entry.IsHidden {
				name.Importance = widget.LowImportance
			} else {
				name.Importance = widget.MediumImportance
			}
			name.Refresh()
			icon.SetResource(ui.IconFor(entry))
			icon.SetOnTapped(func() {
				if entry.IsDir {
					b.LoadDirectory(entry.ID)
				}
			})
			info.Objects[0].(*widget.Label).SetText(fileinfo.FormatEntrySize(entry))
			info.Objects[1].(*widget.Label).SetText(entry.ModifiedAt.Local().Format(constants.TimestampDisplayLayout))
		},
	)
	b.fileList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(b.visible) {
			return
		}
		b.selectEntry(b.visible[id])
	}

	b.statusLabel = widget.NewLabel("")
	b.statusLabel.Importance = widget.LowImportance
	b.jobs.Subscribe(func() {
		fyne.Do(b.updateStatus)
	})

	b.previewPane = ui.NewPreviewPane(b.openPath, debugPrint)
	b.sidebar = ui.NewSidebar(b.config.Browser.Favorites, b.LoadDirectory, b.addCurrentToFavorites)
	b.busyOverlay = ui.NewBusyOverlay()

	listArea := container.NewStack(b.fileList, b.busyOverlay.GetContainer())
	split := container.NewHSplit(listArea, b.previewPane.GetContainer())
	split.Offset = b.config.Window.PreviewSplit

	sidebarSplit := container.NewHSplit(b.sidebar.GetContainer(), split)
	sidebarSplit.Offset = 0.18

	top := container.NewVBox(
		container.NewBorder(nil, nil, toolbar, container.NewHBox(hiddenCheck, sortSelect), b.searchEntry),
		b.pathEntry,
	)
	b.window.SetContent(container.NewBorder(top, b.statusLabel, nil, nil, sidebarSplit))
	b.window.Resize(fyne.NewSize(float32(b.config.Window.Width), float32(b.config.Window.Height)))

	b.window.SetCloseIntercept(func() {
		debugPrint("Window close intercepted for %s", b.view)
		if b.dirWatcher != nil {
			b.dirWatcher.Stop()
		}
		size := b.window.Canvas().Size()
		b.config.Window.Width = int(size.Width)
		b.config.Window.Height = int(size.Height)
		b.config.Window.PreviewSplit = split.Offset
		b.saveConfig()
		b.window.Close()
	})
}

// LoadDirectory makes path the current directory and lists it
func (b *Browser) LoadDirectory(path string) {
	path = filepath.Clean(path)
	if b.currentPath != "" && b.currentPath != path {
		b.config.AddToNavigationHistory(b.currentPath)
		b.saveConfig()
	}

	b.currentPath = path
	b.selectedID = ""
	b.entries = nil
	b.visible = nil
	b.pathEntry.SetText(path)
	b.window.SetTitle(fmt.Sprintf("%s - %s", fileinfo.BaseName(path), constants.ApplicationTitle))
	b.fileList.UnselectAll()
	b.fileList.Refresh()
	b.previewPane.Clear()
	b.sidebar.Highlight(path)

	if b.dirWatcher != nil && b.dirWatcher.Dir() != path {
		if err := b.dirWatcher.Watch(path); err != nil {
			debugPrint("Watch failed: %v", err)
		}
	}
	b.Refresh()
}

// Refresh re-lists the current directory in the background
func (b *Browser) Refresh() {
	path := b.currentPath
	opts := fileinfo.ListOptions{
		ShowHidden: b.showHidden,
		SortKey:    b.sortKey,
		Locale:     b.config.LocaleTag(),
	}
	b.busyOverlay.Begin("Loading " + fileinfo.BaseName(path) + "...")
	jobs.Run(b.jobs, b.view, jobs.TypeList, path,
		func() ([]fileinfo.DirectoryEntry, error) {
			return b.lister.List(path, opts)
		},
		func(entries []fileinfo.DirectoryEntry, err error) {
			fyne.Do(func() { b.applyListing(path, entries, err) })
		},
	)
}

func (b *Browser) applyListing(path string, entries []fileinfo.DirectoryEntry, err error) {
	if path != b.currentPath {
		return
	}
	b.busyOverlay.End()
	if err != nil {
		log.Printf("Error reading directory: %v", err)
		b.entries = nil
		b.applyFilter()
		ui.ShowErrorDialog(b.window, err)
		return
	}
	prev, hadSelection := b.selectedEntry()
	b.entries = entries
	b.applyFilter()

	// a watched file that changed on disk gets a fresh preview
	if cur, ok := b.selectedEntry(); hadSelection && ok && !cur.IsDir &&
		(!cur.ModifiedAt.Equal(prev.ModifiedAt) || cur.SizeBytes != prev.SizeBytes) {
		b.showEntry(cur)
	}
}

// applyFilter recomputes the visible rows and keeps the selection when it survives
func (b *Browser) applyFilter() {
	b.visible = fileinfo.FilterEntries(b.entries, b.query)
	b.fileList.Refresh()

	for i, e := range b.visible {
		if e.ID == b.selectedID {
			b.fileList.Select(i)
			b.fileList.ScrollTo(i)
			b.updateStatus()
			return
		}
	}
	if b.selectedID != "" {
		b.selectedID = ""
		b.previewPane.Clear()
	}
	b.fileList.UnselectAll()
	b.updateStatus()
}

func (b *Browser) updateStatus() {
	b.statusLabel.SetText(ui.StatusText(b.jobs.List(), b.view, len(b.visible), len(b.entries)))
}

// selectEntry shows entry in the preview pane, resolving files in the background
func (b *Browser) selectEntry(entry fileinfo.DirectoryEntry) {
	if entry.ID == b.selectedID && !entry.IsDir {
		return
	}
	b.showEntry(entry)
}

func (b *Browser) showEntry(entry fileinfo.DirectoryEntry) {
	b.selectedID = entry.ID
	if entry.IsDir {
		b.previewPane.ShowFolder(entry)
		return
	}

	b.previewPane.ShowLoading(entry)
	jobs.Run(b.jobs, b.view, jobs.TypePreview, entry.ID,
		func() (preview.Result, error) {
			return b.resolver.Resolve(entry.ID), nil
		},
		func(res preview.Result, _ error) {
			fyne.Do(func() {
				if b.selectedID == entry.ID {
					b.previewPane.ShowResult(entry, res)
				}
			})
		},
	)
}

func (b *Browser) selectedEntry() (fileinfo.DirectoryEntry, bool) {
	for _, e := range b.visible {
		if e.ID == b.selectedID {
			return e, true
		}
	}
	return fileinfo.DirectoryEntry{}, false
}

// openSelected enters a selected folder or opens a file with its default application
func (b *Browser) openSelected() {
	entry, ok := b.selectedEntry()
	if !ok {
		return
	}
	if entry.IsDir {
		b.LoadDirectory(entry.ID)
		return
	}
	b.openPath(entry.ID)
}

func (b *Browser) openPath(path string) {
	if err := fileinfo.OpenWithDefaultApp(path); err != nil {
		ui.ShowErrorDialog(b.window, err)
	}
}

// goUp moves to the parent directory; at the root it does nothing
func (b *Browser) goUp() {
	parent, ok := fileinfo.ParentPath(b.currentPath)
	if !ok {
		return
	}
	child := b.currentPath
	b.LoadDirectory(parent)
	b.selectedID = child
}

// navigateToPath handles path entry validation and navigation
func (b *Browser) navigateToPath(input string) {
	path, err := fileinfo.ExpandPath(input)
	if err != nil {
		debugPrint("Invalid path %q: %v", input, err)
		b.pathEntry.SetText(b.currentPath)
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		debugPrint("Not a directory: %s", path)
		ui.ShowErrorDialog(b.window, ui.NotAFolderError(path, err))
		b.pathEntry.SetText(b.currentPath)
		return
	}
	b.LoadDirectory(path)
	b.window.Canvas().Unfocus()
}

func (b *Browser) showNavigationHistory() {
	paths := b.config.GetNavigationHistory()
	if len(paths) == 0 {
		ui.ShowMessageDialog(b.window, "Recent Folders", "No folders visited yet.")
		return
	}
	hd := ui.NewNavigationHistoryDialog(paths, b.config.Browser.NavigationHistory.LastUsed, debugPrint)
	hd.ShowDialog(b.window, b.LoadDirectory)
}

func (b *Browser) addCurrentToFavorites() {
	favorites, added := ui.AddFavorite(b.config.Browser.Favorites, b.currentPath)
	if !added {
		return
	}
	b.config.Browser.Favorites = favorites
	b.saveConfig()
	b.sidebar.SetFavorites(favorites)
	b.sidebar.Highlight(b.currentPath)
}

// onDirectoryChanged runs on the watcher goroutine
func (b *Browser) onDirectoryChanged(change watcher.Change) {
	fyne.Do(func() {
		if change.Dir != b.currentPath {
			return
		}
		debugPrint("Directory changed: %s %v", change.Dir, change.Names)
		if change.DirRemoved {
			b.goToExistingAncestor()
			return
		}
		b.Refresh()
	})
}

// goToExistingAncestor leaves a directory that no longer exists
func (b *Browser) goToExistingAncestor() {
	path := b.currentPath
	for {
		parent, ok := fileinfo.ParentPath(path)
		if !ok {
			b.LoadDirectory(parent)
			return
		}
		if info, err := os.Stat(parent); err == nil && info.IsDir() {
			b.LoadDirectory(parent)
			return
		}
		path = parent
	}
}

func (b *Browser) saveConfig() {
	if err := b.configManager.Save(b.config); err != nil {
		log.Printf("Error saving config: %v", err)
	}
}

func main() {
	// Parse command line flags
	var startPath string
	flag.BoolVar(&debugMode, "d", false, "Enable debug mode")
	flag.StringVar(&startPath, "path", "", "Starting directory path")
	flag.Parse()

	// If no path specified via flag, check remaining arguments
	if startPath == "" && flag.NArg() > 0 {
		startPath = flag.Arg(0)
	}

	if startPath == "" {
		pwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Error getting current directory: %v", err)
		}
		startPath = pwd
	} else {
		expanded, err := fileinfo.ExpandPath(startPath)
		if err != nil {
			log.Fatalf("Error accessing path '%s': %v", startPath, err)
		}
		if info, err := os.Stat(expanded); err != nil {
			log.Fatalf("Error accessing path '%s': %v", startPath, err)
		} else if !info.IsDir() {
			log.Fatalf("Path '%s' is not a directory", startPath)
		}
		startPath = expanded
	}

	configManager := config.NewManager(debugPrint)
	cfg, err := configManager.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	a := app.New()
	a.Settings().SetTheme(customtheme.NewCustomTheme(cfg.Theme))

	jobManager := jobs.NewManager(debugPrint)
	b := NewBrowser(a, startPath, cfg, configManager, jobManager)
	b.window.ShowAndRun()

	jobManager.Wait()
}
