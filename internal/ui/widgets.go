package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/fileinfo"
	"explorer/internal/preview"
)

// TappableIcon is an icon that handles taps; file rows use it to enter folders
type TappableIcon struct {
	widget.BaseWidget
	icon     *widget.Icon
	onTapped func()
}

// NewTappableIcon creates a new tappable icon widget
func NewTappableIcon(resource fyne.Resource, onTapped func()) *TappableIcon {
	ti := &TappableIcon{
		icon:     widget.NewIcon(resource),
		onTapped: onTapped,
	}
	ti.ExtendBaseWidget(ti)
	return ti
}

// Tapped handles tap events on the icon
func (ti *TappableIcon) Tapped(_ *fyne.PointEvent) {
	if ti.onTapped != nil {
		ti.onTapped()
	}
}

// SetResource sets the icon resource
func (ti *TappableIcon) SetResource(resource fyne.Resource) {
	ti.icon.SetResource(resource)
}

// SetOnTapped sets the tap handler function
func (ti *TappableIcon) SetOnTapped(onTapped func()) {
	ti.onTapped = onTapped
}

// CreateRenderer creates the widget renderer
func (ti *TappableIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ti.icon)
}

// IconFor picks the list icon for an entry from its preview kind
func IconFor(entry fileinfo.DirectoryEntry) fyne.Resource {
	if entry.IsDir {
		return theme.FolderIcon()
	}
	switch preview.Classify(entry.Name) {
	case preview.KindImage:
		return theme.FileImageIcon()
	case preview.KindText:
		return theme.FileTextIcon()
	case preview.KindPDF:
		return theme.DocumentIcon()
	default:
		return theme.FileIcon()
	}
}
