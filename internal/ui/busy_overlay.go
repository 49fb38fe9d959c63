package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// busyBlocker is a full-area widget that shows a semi-transparent backdrop
// with a spinner and swallows taps so the list underneath cannot be used
type busyBlocker struct {
	widget.BaseWidget
	content *fyne.Container
}

func newBusyBlocker(content *fyne.Container) *busyBlocker {
	b := &busyBlocker{content: content}
	b.ExtendBaseWidget(b)
	return b
}

func (b *busyBlocker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

// Swallow taps to block interactions underneath
func (b *busyBlocker) Tapped(_ *fyne.PointEvent)          {}
func (b *busyBlocker) TappedSecondary(_ *fyne.PointEvent) {}

// BusyOverlay covers the file list while a slow listing is in progress.
// It only appears when the work outlasts Delay, so fast listings do not flicker.
type BusyOverlay struct {
	Delay time.Duration

	spinner *widget.ProgressBarInfinite
	label   *widget.Label
	root    *fyne.Container
	visible bool
	// token identifies the latest Begin so a stale timer cannot show the overlay
	token uint64
}

// NewBusyOverlay creates a hidden overlay
func NewBusyOverlay() *BusyOverlay {
	spinner := widget.NewProgressBarInfinite()
	spinner.Stop()

	lbl := widget.NewLabel("Loading...")
	lbl.Alignment = fyne.TextAlignCenter
	lbl.Importance = widget.HighImportance

	bg := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 96})
	panel := container.NewPadded(container.NewVBox(spinner, lbl))
	root := container.NewStack(newBusyBlocker(container.NewStack(bg, container.NewCenter(panel))))
	root.Hide()

	return &BusyOverlay{
		Delay:   300 * time.Millisecond,
		spinner: spinner,
		label:   lbl,
		root:    root,
	}
}

// GetContainer returns the overlay object to stack above the content
func (bo *BusyOverlay) GetContainer() *fyne.Container { return bo.root }

// Begin schedules the overlay with text after Delay. Must be called on the UI goroutine.
func (bo *BusyOverlay) Begin(text string) {
	bo.token++
	token := bo.token
	time.AfterFunc(bo.Delay, func() {
		fyne.Do(func() {
			if bo.token == token {
				bo.show(text)
			}
		})
	})
}

// End hides the overlay and cancels any pending Begin
func (bo *BusyOverlay) End() {
	bo.token++
	if !bo.visible {
		return
	}
	bo.visible = false
	bo.spinner.Stop()
	bo.root.Hide()
}

func (bo *BusyOverlay) show(text string) {
	if text != "" {
		bo.label.SetText(text)
	}
	if bo.visible {
		return
	}
	bo.visible = true
	bo.spinner.Start()
	bo.root.Show()
}

// IsVisible reports whether the overlay is shown
func (bo *BusyOverlay) IsVisible() bool { return bo.visible }
