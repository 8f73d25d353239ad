package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const menuTitle = "Interview Timer"

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        Host
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	running    bool
	display    string
}

// New creates a tray manager with the provided callbacks. A nil host yields
// a manager that only tracks labels.
func New(app Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		display:   "--:--",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("Show Timer", func() { call(manager.callbacks.OnShow) })
	manager.toggleItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnToggle) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) })
	manager.prefsItem = fyne.NewMenuItem("Settings", func() { call(manager.callbacks.OnPreferences) })
	manager.quitItem = fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) })

	manager.refreshStatus()
	manager.refreshMenu()
	return manager
}

// SetStatus updates the displayed time.
func (manager *Manager) SetStatus(display string) {
	manager.display = display
	manager.refreshStatus()
	manager.refreshMenu()
}

// SetRunning switches the toggle item between Start and Pause.
func (manager *Manager) SetRunning(running bool) {
	if manager.running == running {
		return
	}
	manager.running = running
	if running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.refreshStatus()
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.display
	if !manager.running {
		status = fmt.Sprintf("%s (stopped)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Time: %s", status)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.showItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.prefsItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
