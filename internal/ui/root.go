package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-mp3/internal/config"
	"github.com/ytget/yt-mp3/internal/extract"
	"github.com/ytget/yt-mp3/internal/i18n"
	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// RootUI is the main form
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   *extract.Controller
	session      *extract.Session
	settings     *config.Settings
	localization *i18n.Localization
	watcher      *platform.ArtifactWatcher // nil when file watching is unavailable
	logger       *slog.Logger

	urlLabel      *widget.Label
	dirLabel      *widget.Label
	filenameLabel *widget.Label
	qualityLabel  *widget.Label

	urlEntry      *widget.Entry
	dirEntry      *widget.Entry
	filenameEntry *widget.Entry
	qualitySelect *widget.Select

	browseBtn   *widget.Button
	renameBtn   *widget.Button
	downloadBtn *widget.Button
	revealBtn   *widget.Button

	statusText *canvas.Text
	logLabel   *widget.Label
	logScroll  *container.Scroll
}

// NewRootUI builds the form inside window. watcher may be nil.
func NewRootUI(window fyne.Window, app fyne.App, controller *extract.Controller, settings *config.Settings,
	localization *i18n.Localization, watcher *platform.ArtifactWatcher, logger *slog.Logger) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   controller,
		session:      extract.NewSession(),
		settings:     settings,
		localization: localization,
		watcher:      watcher,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))
	ui.setupUI()
	return ui
}

// Run starts forwarding controller updates and watcher events to the UI
// thread until ctx is done
func (ui *RootUI) Run(ctx context.Context) {
	go ui.drainUpdates(ctx)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.dirLabel = widget.NewLabel("")
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetOutputDirectory())
	ui.browseBtn = widget.NewButton("", ui.onBrowseClick)

	ui.filenameLabel = widget.NewLabel("")
	ui.filenameEntry = widget.NewEntry()
	ui.renameBtn = widget.NewButton("", ui.onRenameClick)

	ui.qualityLabel = widget.NewLabel("")
	ui.qualitySelect = widget.NewSelect(nil, nil)

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.revealBtn = widget.NewButton("", ui.onRevealClick)

	ui.statusText = canvas.NewText("", nil)
	ui.statusText.TextSize = StatusTextSize
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	qualityBox := container.NewGridWrap(fyne.NewSize(QualitySelectWidth, ui.qualitySelect.MinSize().Height), ui.qualitySelect)
	form := container.New(layout.NewFormLayout(),
		ui.urlLabel, ui.urlEntry,
		ui.dirLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry),
		ui.filenameLabel, container.NewBorder(nil, nil, nil, ui.renameBtn, ui.filenameEntry),
		ui.qualityLabel, container.NewHBox(qualityBox),
	)
	actions := container.NewHBox(layout.NewSpacer(), ui.downloadBtn, ui.revealBtn, layout.NewSpacer())
	top := container.NewVBox(form, actions, ui.statusText)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logScroll))

	ui.refreshUITexts()
	ui.refreshControls()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	quitItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyQuit), func() {
		ui.app.Quit()
	})
	quitItem.IsQuit = true

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), quitItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language. Status and
// log lines already produced keep their language.
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(i18n.KeyAppTitle))

	ui.urlLabel.SetText(l.GetText(i18n.KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(l.GetText(i18n.KeyEnterURL))
	ui.dirLabel.SetText(l.GetText(i18n.KeyOutputDirLabel))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(i18n.KeyBrowse))
	ui.filenameLabel.SetText(l.GetText(i18n.KeyFilenameLabel))
	ui.renameBtn.SetText(l.GetText(i18n.KeyRename))
	ui.qualityLabel.SetText(l.GetText(i18n.KeyQualityLabel))
	ui.downloadBtn.SetText(l.GetText(i18n.KeyDownload))
	ui.revealBtn.SetText(l.GetText(i18n.KeyReveal))

	selected := ui.selectedQuality()
	if selected == 0 {
		selected = ui.settings.GetQuality()
	}
	options := make([]string, 0, len(model.Qualities()))
	for _, q := range model.Qualities() {
		options = append(options, ui.qualityOption(q))
	}
	ui.qualitySelect.SetOptions(options)
	ui.qualitySelect.SetSelected(ui.qualityOption(selected))
}

func (ui *RootUI) qualityOption(q model.Quality) string {
	return fmt.Sprintf(QualityOptionFormat, q, ui.localization.GetText(i18n.KeyKbps))
}

// selectedQuality returns the quality picked in the dropdown, or 0
func (ui *RootUI) selectedQuality() model.Quality {
	fields := strings.Fields(ui.qualitySelect.Selected)
	if len(fields) == 0 {
		return 0
	}
	q, err := model.ParseQuality(fields[0])
	if err != nil {
		return 0
	}
	return q
}

// onBrowseClick shows a folder picker for the output directory
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Error("Folder picker failed", "error", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if dir == nil {
			return
		}
		ui.dirEntry.SetText(dir.Path())
	}, ui.window)
}

// onDownloadClick validates the form and starts a job
func (ui *RootUI) onDownloadClick() {
	req := model.JobRequest{
		URL:       ui.urlEntry.Text,
		OutputDir: ui.dirEntry.Text,
		Filename:  ui.filenameEntry.Text,
		Quality:   ui.selectedQuality(),
	}

	if _, err := ui.controller.Start(req, ui.session.Begin); err != nil {
		ui.showStartError(err)
		return
	}

	ui.settings.SetOutputDirectory(strings.TrimSpace(req.OutputDir))
	ui.settings.SetQuality(req.Quality)
	ui.refreshControls()
}

func (ui *RootUI) showStartError(err error) {
	l := ui.localization

	var verr *extract.ValidationError
	if errors.As(err, &verr) {
		key := i18n.KeyInvalidQuality
		switch verr.Reason {
		case extract.ReasonMissingURL:
			key = i18n.KeyPleaseEnterURL
		case extract.ReasonMissingOutputDir:
			key = i18n.KeyPleaseChooseDir
		}
		dialog.ShowInformation(l.GetText(i18n.KeyNotice), l.GetText(key), ui.window)
		return
	}
	if errors.Is(err, extract.ErrJobInFlight) {
		dialog.ShowInformation(l.GetText(i18n.KeyNotice), l.GetText(i18n.KeyJobInFlight), ui.window)
		return
	}

	ui.logger.Error("Failed to start job", "error", err)
	dialog.ShowError(err, ui.window)
}

// onRenameClick renames the current artifact to the filename field
func (ui *RootUI) onRenameClick() {
	l := ui.localization
	current := ui.session.Artifact

	if ui.watcher != nil {
		ui.watcher.Clear()
	}
	renamed, err := ui.controller.Rename(current, ui.filenameEntry.Text)
	if err != nil {
		ui.watchArtifact(current)
		ui.showRenameError(err)
		return
	}

	ui.session.Renamed(renamed)
	ui.session.AppendLog(l.Format(i18n.KeyRenamedTo, renamed.Path))
	ui.watchArtifact(renamed)
	ui.refreshControls()
	ui.refreshLog()
	ui.filenameEntry.SetText(ui.session.Filename)

	dialog.ShowInformation(l.GetText(i18n.KeySuccess), l.Format(i18n.KeyRenamedTo, renamed.FileName()), ui.window)
}

func (ui *RootUI) showRenameError(err error) {
	l := ui.localization

	var rerr *extract.RenameError
	if !errors.As(err, &rerr) {
		if errors.Is(err, extract.ErrJobInFlight) {
			dialog.ShowInformation(l.GetText(i18n.KeyNotice), l.GetText(i18n.KeyJobInFlight), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	switch rerr.Reason {
	case extract.ReasonNoArtifact:
		dialog.ShowInformation(l.GetText(i18n.KeyNotice), l.GetText(i18n.KeyNothingToRename), ui.window)
	case extract.ReasonMissingName:
		dialog.ShowInformation(l.GetText(i18n.KeyNotice), l.GetText(i18n.KeyPleaseEnterName), ui.window)
	case extract.ReasonTargetExists:
		dialog.ShowError(errors.New(l.GetText(i18n.KeyTargetExists)), ui.window)
	default:
		msg := l.Format(i18n.KeyRenameFailed, err)
		ui.session.AppendLog(msg)
		ui.refreshLog()
		dialog.ShowError(errors.New(msg), ui.window)
	}
}

// onRevealClick shows the current artifact in the system file manager
func (ui *RootUI) onRevealClick() {
	artifact := ui.session.Artifact
	if artifact.IsZero() {
		return
	}

	err := platform.RevealArtifact(artifact)
	if errors.Is(err, platform.ErrArtifactMissing) {
		ui.onArtifactGone(platform.ArtifactEvent{Path: artifact.Path, EventType: platform.ArtifactRemoved, Timestamp: time.Now()})
		return
	}
	if err != nil {
		ui.logger.Error("Failed to reveal artifact", "path", artifact.Path, "error", err)
		msg := fmt.Sprintf(LabeledErrorFormat, ui.localization.GetText(i18n.KeyErrorOpeningDir), err)
		dialog.ShowError(errors.New(msg), ui.window)
	}
}

// drainUpdates is the only goroutine that receives from the controller and
// the watcher; every update is applied on the Fyne thread
func (ui *RootUI) drainUpdates(ctx context.Context) {
	var watcherEvents <-chan platform.ArtifactEvent
	if ui.watcher != nil {
		watcherEvents = ui.watcher.Events()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case u := <-ui.controller.Updates():
			fyne.Do(func() {
				ui.applyUpdate(u)
			})
		case ev := <-watcherEvents:
			fyne.Do(func() {
				ui.onArtifactGone(ev)
			})
		}
	}
}

// applyUpdate folds one controller update into the session and widgets
func (ui *RootUI) applyUpdate(u extract.Update) {
	ui.session.Apply(u)

	if u.Artifact != nil {
		ui.filenameEntry.SetText(ui.session.Filename)
		ui.watchArtifact(ui.session.Artifact)
	}
	if u.Done {
		ui.logger.Debug("Job finished", "id", u.JobID, "state", ui.session.State)
	}

	ui.refreshControls()
	if u.Log != "" {
		ui.refreshLog()
	}
}

// onArtifactGone forgets the artifact after an external move or delete
func (ui *RootUI) onArtifactGone(ev platform.ArtifactEvent) {
	if ev.Path != ui.session.Artifact.Path {
		return
	}
	ui.session.Invalidate()
	ui.session.AppendLog(ui.localization.Format(i18n.KeyArtifactVanished, ev.Path))
	ui.refreshControls()
	ui.refreshLog()
}

func (ui *RootUI) watchArtifact(a model.Artifact) {
	if ui.watcher == nil || a.IsZero() {
		return
	}
	if err := ui.watcher.Watch(a.Path); err != nil {
		ui.logger.Warn("Failed to watch artifact", "path", a.Path, "error", err)
	}
}

// refreshControls syncs the status line and button states with the session
func (ui *RootUI) refreshControls() {
	ui.statusText.Text = ui.session.Status
	ui.statusText.Color = ui.app.Settings().Theme().Color(StatusColorName(ui.session.State), ui.app.Settings().ThemeVariant())
	ui.statusText.Refresh()

	if ui.session.Busy {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}
	if ui.session.CanRename() {
		ui.renameBtn.Enable()
		ui.revealBtn.Enable()
	} else {
		ui.renameBtn.Disable()
		ui.revealBtn.Disable()
	}
}

func (ui *RootUI) refreshLog() {
	ui.logLabel.SetText(ui.session.LogText())
	ui.logScroll.ScrollToBottom()
}
