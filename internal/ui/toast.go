package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Notifier shows a short message that needs no acknowledgment.
type Notifier interface {
	Notify(message string)
}

// Toast is a non-modal pop-up near the bottom of a canvas that hides itself.
type Toast struct {
	canvas   fyne.Canvas
	duration time.Duration
	current  *widget.PopUp

	// after schedules fn to run on the main thread once d has passed.
	after func(d time.Duration, fn func())
}

func NewToast(c fyne.Canvas, d time.Duration) *Toast {
	return &Toast{
		canvas:   c,
		duration: d,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, func() {
				fyne.Do(fn)
			})
		},
	}
}

func (t *Toast) Notify(message string) {
	if t.current != nil {
		t.current.Hide()
	}

	label := widget.NewLabelWithStyle(message, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	popUp := widget.NewPopUp(label, t.canvas)

	cs := t.canvas.Size()
	ps := popUp.MinSize()
	pos := fyne.NewPos((cs.Width-ps.Width)/2, cs.Height-ps.Height-theme.Padding()*8)
	if pos.Y < 0 {
		pos.Y = 0
	}
	popUp.ShowAtPosition(pos)
	t.current = popUp

	t.after(t.duration, func() {
		// A newer toast may have replaced this one already
		if t.current != popUp {
			return
		}
		popUp.Hide()
		t.current = nil
	})
}

func (t *Toast) visible() bool {
	return t.current != nil && t.current.Visible()
}
