package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/fileinfo"
)

// ShowNewFolderDialog asks for a name and creates the folder inside dir.
// Creation errors are shown in a modal dialog; onCreated receives the new path.
func ShowNewFolderDialog(parent fyne.Window, dir string, debugPrint func(format string, args ...interface{}), onCreated func(path string)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("untitled folder")
	nameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("enter a folder name")
		}
		return nil
	}

	form := dialog.NewForm(
		"New Folder",
		"Create",
		"Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			path, err := fileinfo.CreateFolder(dir, nameEntry.Text)
			if err != nil {
				debugPrint("Create folder failed: %v", err)
				ShowErrorDialog(parent, err)
				return
			}
			debugPrint("Created folder %s", path)
			if onCreated != nil {
				onCreated(path)
			}
		},
		parent,
	)
	form.Resize(fyne.NewSize(380, 160))
	form.Show()
	parent.Canvas().Focus(nameEntry)
}
