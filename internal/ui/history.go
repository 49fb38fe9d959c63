package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/constants"
	"explorer/internal/fileinfo"
)

// NavigationHistoryDialog lists recently visited folders with a filter
type NavigationHistoryDialog struct {
	allPaths      []string
	filteredPaths []string
	lastUsed      map[string]time.Time
	searchEntry   *widget.Entry
	historyList   *widget.List
	dialog        dialog.Dialog
	debugPrint    func(format string, args ...interface{})
}

// NewNavigationHistoryDialog creates a dialog over paths (newest first)
func NewNavigationHistoryDialog(paths []string, lastUsed map[string]time.Time, debugPrint func(format string, args ...interface{})) *NavigationHistoryDialog {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	hd := &NavigationHistoryDialog{
		allPaths:      append([]string(nil), paths...),
		filteredPaths: append([]string(nil), paths...),
		lastUsed:      lastUsed,
		debugPrint:    debugPrint,
	}
	hd.createWidgets()
	return hd
}

func (hd *NavigationHistoryDialog) createWidgets() {
	hd.searchEntry = widget.NewEntry()
	hd.searchEntry.SetPlaceHolder("Filter (text or glob such as **/src)")
	hd.searchEntry.OnChanged = hd.applyFilter

	hd.historyList = widget.NewList(
		func() int { return len(hd.filteredPaths) },
		func() fyne.CanvasObject {
			when := widget.NewLabel("2006-01-02 15:04")
			when.Importance = widget.LowImportance
			path := widget.NewLabel("path")
			path.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, nil, when, path)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(hd.filteredPaths) {
				return
			}
			p := hd.filteredPaths[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(p)
			when := ""
			if t, ok := hd.lastUsed[p]; ok {
				when = t.Local().Format(constants.TimestampDisplayLayout)
			}
			row.Objects[1].(*widget.Label).SetText(when)
		},
	)
}

// applyFilter narrows the list to paths matching query
func (hd *NavigationHistoryDialog) applyFilter(query string) {
	m := fileinfo.NewMatcher(query)
	hd.filteredPaths = hd.filteredPaths[:0]
	for _, p := range hd.allPaths {
		if m.Match(p) {
			hd.filteredPaths = append(hd.filteredPaths, p)
		}
	}
	hd.debugPrint("History filter %q: %d of %d", query, len(hd.filteredPaths), len(hd.allPaths))
	hd.historyList.UnselectAll()
	hd.historyList.Refresh()
}

// ShowDialog shows the dialog; callback receives the chosen path
func (hd *NavigationHistoryDialog) ShowDialog(parent fyne.Window, callback func(string)) {
	content := container.NewBorder(hd.searchEntry, nil, nil, nil, hd.historyList)
	hd.dialog = dialog.NewCustom("Recent Folders", "Close", content, parent)
	hd.historyList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(hd.filteredPaths) {
			return
		}
		selected := hd.filteredPaths[id]
		hd.debugPrint("History selected: %s", selected)
		hd.dialog.Hide()
		if callback != nil {
			callback(selected)
		}
	}
	hd.dialog.Resize(fyne.NewSize(600, 400))
	hd.dialog.Show()
	parent.Canvas().Focus(hd.searchEntry)
}
