package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	apperrors "explorer/internal/errors"
)

// ShowMessageDialog displays a simple OK dialog with a title and message.
// It returns immediately after showing.
func ShowMessageDialog(parent fyne.Window, title, message string) {
	d := dialog.NewInformation(title, message, parent)
	d.Show()
}

// NotAFolderError reports that path cannot be opened as a folder; err is
// the stat failure, if any.
func NotAFolderError(path string, err error) error {
	return apperrors.NewUIError("navigate", path+" is not a folder", err)
}

// ShowErrorDialog displays err in a modal dialog. Application errors show
// their message and path rather than the full chain.
func ShowErrorDialog(parent fyne.Window, err error) {
	dialog.ShowError(errors.New(ErrorMessage(err)), parent)
}

// ErrorMessage returns the user-facing text for err
func ErrorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message
		if appErr.Path != "" {
			msg += ":\n" + appErr.Path
		}
		if appErr.Err != nil {
			msg += "\n\n" + appErr.Err.Error()
		}
		return msg
	}
	return err.Error()
}
