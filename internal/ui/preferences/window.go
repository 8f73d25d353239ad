package preferences

import (
	"image/color"
	"strconv"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/ui/display"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	modeCountdownLabel = "Countdown"
	modeStopwatchLabel = "Stopwatch"
)

// Callbacks defines preferences window handlers.
type Callbacks struct {
	OnSave      func(settings.Settings)
	OnTestSound func(url string)
}

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    settings.Settings
	sounds      []settings.Sound
	callbacks   Callbacks
	mode        *widget.RadioGroup
	duration    *widget.Entry
	autoRestart *widget.Check
	countdown   *fyne.Container
	beep        *widget.Select
	sound       *widget.Select
	testButton  *widget.Button
	background  *widget.Entry
	text        *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, current settings.Settings, sounds []settings.Sound, callbacks Callbacks) *Window {
	window := app.NewWindow("Timer Settings")

	prefs := &Window{
		window:    window,
		callbacks: callbacks,
	}

	prefs.mode = widget.NewRadioGroup([]string{modeCountdownLabel, modeStopwatchLabel}, func(selected string) {
		prefs.setCountdownVisible(selected != modeStopwatchLabel)
	})
	prefs.mode.Horizontal = true
	prefs.mode.Required = true

	prefs.duration = widget.NewEntry()
	prefs.duration.SetPlaceHolder("1-120")
	prefs.autoRestart = widget.NewCheck("Auto-restart when time is up", nil)
	prefs.countdown = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Duration"), widget.NewLabel("min"), prefs.duration),
		prefs.autoRestart,
	)

	beepLabels := make([]string, 0, len(settings.BeepPresets))
	for _, preset := range settings.BeepPresets {
		beepLabels = append(beepLabels, preset.Label)
	}
	prefs.beep = widget.NewSelect(beepLabels, nil)

	prefs.sound = widget.NewSelect(nil, nil)
	prefs.testButton = widget.NewButton("Test Sound", func() {
		if prefs.callbacks.OnTestSound != nil {
			prefs.callbacks.OnTestSound(prefs.selectedSoundURL())
		}
	})

	prefs.background = widget.NewEntry()
	prefs.text = widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.mode,
		prefs.countdown,
		container.NewBorder(nil, nil, widget.NewLabel("Beep"), nil, prefs.beep),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, prefs.testButton, prefs.sound),
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.colorRow("Background", prefs.background, display.BackgroundColor),
		prefs.colorRow("Text", prefs.text, display.TextColor),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		prefs.UpdateSettings(prefs.settings, prefs.sounds)
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(440, 460))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(current, sounds)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(current settings.Settings, sounds []settings.Sound) {
	prefs.settings = current
	prefs.sounds = sounds

	if current.Mode == model.ModeStopwatch {
		prefs.mode.SetSelected(modeStopwatchLabel)
	} else {
		prefs.mode.SetSelected(modeCountdownLabel)
	}
	prefs.setCountdownVisible(current.Mode != model.ModeStopwatch)
	prefs.duration.SetText(strconv.Itoa(current.DurationMinutes))
	prefs.autoRestart.SetChecked(current.AutoRestart)
	prefs.beep.SetSelected(settings.BeepLabel(current.BeepInterval))

	names := make([]string, 0, len(sounds))
	selected := ""
	for _, sound := range sounds {
		names = append(names, sound.Name)
		if sound.URL == current.SoundURL {
			selected = sound.Name
		}
	}
	prefs.sound.SetOptions(names)
	prefs.sound.SetSelected(selected)

	prefs.background.SetText(current.BackgroundColor)
	prefs.text.SetText(current.TextColor)
}

func (prefs *Window) colorRow(label string, entry *widget.Entry, parse func(string) color.Color) fyne.CanvasObject {
	pick := widget.NewButton("Pick...", func() {
		picker := dialog.NewColorPicker(label+" color", "Choose a color", func(picked color.Color) {
			entry.SetText(display.HexString(picked))
		}, prefs.window)
		picker.Advanced = true
		picker.SetColor(parse(entry.Text))
		picker.Show()
	})
	return container.NewBorder(nil, nil, widget.NewLabel(label), pick, entry)
}

func (prefs *Window) setCountdownVisible(visible bool) {
	if visible {
		prefs.countdown.Show()
	} else {
		prefs.countdown.Hide()
	}
}

func (prefs *Window) selectedSoundURL() string {
	for _, sound := range prefs.sounds {
		if sound.Name == prefs.sound.Selected {
			return sound.URL
		}
	}
	return prefs.settings.SoundURL
}

func (prefs *Window) collect() settings.Settings {
	collected := prefs.settings

	collected.Mode = model.ModeCountdown
	if prefs.mode.Selected == modeStopwatchLabel {
		collected.Mode = model.ModeStopwatch
	}
	collected.DurationMinutes = settings.ParseDurationMinutes(prefs.duration.Text)
	collected.AutoRestart = prefs.autoRestart.Checked
	if seconds, ok := settings.BeepFromLabel(prefs.beep.Selected); ok {
		collected.BeepInterval = seconds
	}
	collected.SoundURL = prefs.selectedSoundURL()
	collected.BackgroundColor = prefs.background.Text
	collected.TextColor = prefs.text.Text
	return collected
}

func (prefs *Window) handleSave() {
	collected := prefs.collect()
	prefs.settings = collected
	if prefs.callbacks.OnSave != nil {
		prefs.callbacks.OnSave(collected)
	}
	prefs.window.Hide()
}
