package display

import (
	"image/color"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const timeTextSize = 128

// Appearance defines display visuals.
type Appearance struct {
	BackgroundColor string
	TextColor       string
	Mode            model.Mode
}

// Callbacks defines display button handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

// Window shows the running time.
type Window struct {
	window         fyne.Window
	background     *canvas.Rectangle
	timeLabel      *canvas.Text
	statusLabel    *canvas.Text
	toggleButton   *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
	callbacks      Callbacks
}

// New creates the main timer window.
func New(app fyne.App, appearance Appearance, callbacks Callbacks) *Window {
	window := app.NewWindow(modeTitle(appearance.Mode))
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(BackgroundColor(appearance.BackgroundColor))

	timeLabel := canvas.NewText("00:00", TextColor(appearance.TextColor))
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = timeTextSize

	statusLabel := canvas.NewText("", TextColor(appearance.TextColor))
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 16

	display := &Window{
		window:      window,
		background:  background,
		timeLabel:   timeLabel,
		statusLabel: statusLabel,
		callbacks:   callbacks,
	}

	display.toggleButton = widget.NewButton("Start", func() {
		if display.callbacks.OnToggle != nil {
			display.callbacks.OnToggle()
		}
	})
	display.toggleButton.Importance = widget.SuccessImportance
	display.resetButton = widget.NewButton("Reset", func() {
		if display.callbacks.OnReset != nil {
			display.callbacks.OnReset()
		}
	})
	display.resetButton.Importance = widget.DangerImportance
	display.settingsButton = widget.NewButton("Settings", func() {
		if display.callbacks.OnSettings != nil {
			display.callbacks.OnSettings()
		}
	})
	display.settingsButton.Importance = widget.HighImportance

	buttons := container.NewHBox(
		layout.NewSpacer(),
		display.toggleButton,
		display.resetButton,
		display.settingsButton,
		layout.NewSpacer(),
	)
	content := container.NewBorder(
		container.NewPadded(statusLabel),
		container.NewPadded(buttons),
		nil,
		nil,
		container.NewCenter(timeLabel),
	)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(900, 520))

	display.setAppearanceUnsafe(appearance)
	return display
}

// Window exposes the underlying fyne window.
func (display *Window) Window() fyne.Window {
	return display.window
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// SetAppearance updates colors and the mode caption.
func (display *Window) SetAppearance(appearance Appearance) {
	display.setAppearanceUnsafe(appearance)
}

// Render shows the given state and formatted time.
func (display *Window) Render(state timekeeper.State, formatted string) {
	display.timeLabel.Text = formatted
	display.timeLabel.Refresh()

	if state == timekeeper.StateRunning {
		display.toggleButton.SetText("Pause")
		display.toggleButton.Importance = widget.WarningImportance
	} else {
		display.toggleButton.SetText("Start")
		display.toggleButton.Importance = widget.SuccessImportance
	}
	display.toggleButton.Refresh()

	display.statusLabel.Text = stateDescription(state)
	display.statusLabel.Refresh()
}

func (display *Window) setAppearanceUnsafe(appearance Appearance) {
	display.background.FillColor = BackgroundColor(appearance.BackgroundColor)
	textColor := TextColor(appearance.TextColor)
	display.timeLabel.Color = textColor
	display.statusLabel.Color = fadeColor(textColor)
	display.window.SetTitle(modeTitle(appearance.Mode))
	canvas.Refresh(display.background)
	display.timeLabel.Refresh()
	display.statusLabel.Refresh()
}

func fadeColor(value color.Color) color.Color {
	r, g, b, _ := value.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xb0}
}

func modeTitle(mode model.Mode) string {
	if mode == model.ModeStopwatch {
		return "Interview Timer - Stopwatch"
	}
	return "Interview Timer - Countdown"
}

func stateDescription(state timekeeper.State) string {
	switch state {
	case timekeeper.StateRunning:
		return "Running"
	case timekeeper.StatePaused:
		return "Paused"
	case timekeeper.StateCompleted:
		return "Time's up"
	default:
		return "Ready"
	}
}
