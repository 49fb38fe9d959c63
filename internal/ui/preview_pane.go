package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"explorer/internal/constants"
	"explorer/internal/fileinfo"
	"explorer/internal/preview"
)

// PreviewPane shows the selected entry's details and its preview
type PreviewPane struct {
	title   *widget.Label
	details *widget.Label
	body    *fyne.Container
	root    *fyne.Container

	onOpen     func(path string)
	debugPrint func(format string, args ...interface{})
}

// NewPreviewPane creates an empty pane. onOpen is called for "Open" buttons
// (PDFs and unsupported files).
func NewPreviewPane(onOpen func(path string), debugPrint func(format string, args ...interface{})) *PreviewPane {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	p := &PreviewPane{
		title:      widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		details:    widget.NewLabel(""),
		body:       container.NewStack(),
		onOpen:     onOpen,
		debugPrint: debugPrint,
	}
	p.title.Truncation = fyne.TextTruncateEllipsis
	p.details.Truncation = fyne.TextTruncateEllipsis

	header := container.NewVBox(p.title, p.details, widget.NewSeparator())
	p.root = container.NewBorder(header, nil, nil, nil, p.body)
	p.Clear()
	return p
}

// GetContainer returns the pane's root object
func (p *PreviewPane) GetContainer() fyne.CanvasObject { return p.root }

// Clear shows the placeholder used when nothing is selected
func (p *PreviewPane) Clear() {
	p.title.SetText("")
	p.details.SetText("")
	p.setBody(centeredLabel(constants.NoSelectionPreviewLabel, widget.LowImportance))
}

// ShowLoading shows entry's details while its preview is resolved
func (p *PreviewPane) ShowLoading(entry fileinfo.DirectoryEntry) {
	p.setHeader(entry)
	bar := widget.NewProgressBarInfinite()
	p.setBody(container.NewCenter(bar))
}

// ShowFolder shows a directory; folders have no content preview
func (p *PreviewPane) ShowFolder(entry fileinfo.DirectoryEntry) {
	p.setHeader(entry)
	icon := widget.NewIcon(theme.FolderIcon())
	p.setBody(container.NewCenter(container.NewGridWrap(fyne.NewSize(96, 96), icon)))
}

// ShowResult shows a resolved preview for entry
func (p *PreviewPane) ShowResult(entry fileinfo.DirectoryEntry, res preview.Result) {
	p.setHeader(entry)
	p.setBody(p.render(entry, res))
}

func (p *PreviewPane) setHeader(entry fileinfo.DirectoryEntry) {
	p.title.SetText(entry.Name)
	p.details.SetText(DetailsLine(entry))
}

func (p *PreviewPane) setBody(obj fyne.CanvasObject) {
	p.body.Objects = []fyne.CanvasObject{obj}
	p.body.Refresh()
}

// DetailsLine formats the type, size and modification time of entry
func DetailsLine(entry fileinfo.DirectoryEntry) string {
	return fmt.Sprintf("%s  |  %s  |  %s",
		fileinfo.Describe(entry),
		fileinfo.FormatEntrySize(entry),
		entry.ModifiedAt.Local().Format(constants.TimestampDisplayLayout))
}

func (p *PreviewPane) render(entry fileinfo.DirectoryEntry, res preview.Result) fyne.CanvasObject {
	switch r := res.(type) {
	case preview.Image:
		img := canvas.NewImageFromImage(r.Thumbnail)
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScaleSmooth
		img.SetMinSize(fyne.NewSize(constants.PreviewImageMinWidth, constants.PreviewImageMinHeight))
		caption := widget.NewLabelWithStyle(fmt.Sprintf("%d x %d %s", r.Width, r.Height, r.Format),
			fyne.TextAlignCenter, fyne.TextStyle{})
		caption.Importance = widget.LowImportance
		return container.NewBorder(nil, caption, nil, nil, img)

	case preview.Text:
		grid := widget.NewTextGridFromString(r.Content)
		scroll := container.NewScroll(grid)
		if !r.Truncated {
			return scroll
		}
		note := widget.NewLabel(fmt.Sprintf("Showing the first %d characters", len([]rune(r.Content))))
		note.Importance = widget.WarningImportance
		return container.NewBorder(nil, note, nil, nil, scroll)

	case preview.PDFDelegate:
		return p.openPrompt(theme.DocumentIcon(), "PDF Document", r.Path)

	case preview.Failed:
		p.debugPrint("Preview failed for %s: %v", entry.ID, r)
		return centeredLabel(r.Reason, widget.DangerImportance)

	default:
		return p.openPrompt(theme.FileIcon(), "No preview available", entry.ID)
	}
}

func (p *PreviewPane) openPrompt(icon fyne.Resource, text, path string) fyne.CanvasObject {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	open := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if p.onOpen != nil {
			p.onOpen(path)
		}
	})
	if p.onOpen == nil {
		open.Disable()
	}
	iconBox := container.NewGridWrap(fyne.NewSize(64, 64), widget.NewIcon(icon))
	return container.NewCenter(container.NewVBox(container.NewCenter(iconBox), label, container.NewCenter(open)))
}

func centeredLabel(text string, importance widget.Importance) fyne.CanvasObject {
	l := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	l.Importance = importance
	l.Wrapping = fyne.TextWrapWord
	return container.NewCenter(l)
}
