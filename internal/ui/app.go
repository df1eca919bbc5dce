package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/barishamil/mysimpleapp/internal/greeting"
)

type Config struct {
	AppID         string
	Title         string
	Size          fyne.Size
	ToastDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		AppID:         "com.example.mysimpleapp",
		Title:         "MySimpleApp",
		Size:          fyne.NewSize(360, 640),
		ToastDuration: 2 * time.Second,
	}
}

type App struct {
	FyneApp      fyne.App
	Window       fyne.Window
	NameEntry    *widget.Entry
	SubmitButton *widget.Button
	Output       *widget.Label
	Notifier     Notifier
}

func NewApp(fa fyne.App, cfg Config) *App {
	w := fa.NewWindow(cfg.Title)
	w.Resize(cfg.Size)

	uiApp := &App{
		FyneApp:  fa,
		Window:   w,
		Notifier: NewToast(w.Canvas(), cfg.ToastDuration),
	}

	uiApp.setupUI()

	return uiApp
}

func (a *App) setupUI() {
	a.NameEntry = widget.NewEntry()
	a.NameEntry.SetPlaceHolder("请输入姓名")
	a.NameEntry.OnSubmitted = func(string) {
		a.onSubmit()
	}

	a.SubmitButton = widget.NewButton("提交", a.onSubmit)
	a.SubmitButton.Importance = widget.HighImportance

	a.Output = widget.NewLabel("")
	a.Output.Alignment = fyne.TextAlignCenter
	a.Output.Wrapping = fyne.TextWrapWord

	a.Window.SetContent(container.NewPadded(container.NewVBox(
		a.NameEntry,
		a.SubmitButton,
		a.Output,
	)))
}

func (a *App) onSubmit() {
	msg, err := greeting.Compose(a.NameEntry.Text)
	if errors.Is(err, greeting.ErrEmptyName) {
		a.Notifier.Notify(greeting.EmptyNameMessage)
		return
	}
	a.Output.SetText(msg)
}

func (a *App) Run() {
	a.Window.ShowAndRun()
}
