package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/google-login/internal/config"
)

// SettingsDialog edits the simulated login delay and the language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	delayEntry     *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder(strconv.Itoa(config.DefaultLoginDelayMs))

	sd.languageCodes = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLoginDelay)),
		sd.delayEntry,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.delayEntry.SetText(strconv.Itoa(int(sd.settings.GetLoginDelay() / time.Millisecond)))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if ms, err := strconv.Atoi(sd.delayEntry.Text); err == nil {
		sd.settings.SetLoginDelay(time.Duration(ms) * time.Millisecond)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
		sd.localization.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
