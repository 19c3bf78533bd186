package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/controller"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/toast"
)

// Messages
type generationDoneMsg struct {
	code string
	err  error
}

type toastExpiredMsg struct{ id string }

type autosaveTickMsg struct{}

// App is the root model. Every controller call happens on the Update loop;
// only the generation job runs inside a command.
type App struct {
	ctrl     *controller.Controller
	settings *models.Settings
	log      zerolog.Logger

	form      *GeneratorForm
	builder   *BuilderModel
	favorites *FavoritesModel
	confirm   *ConfirmationModel
	spinner   spinner.Model

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	width  int
	height int

	// Replaced in tests
	copyToClipboard func(string) error
	writeFile       func(path, content string) error
}

func NewApp(ctrl *controller.Controller, settings *models.Settings, logger zerolog.Logger) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	a := &App{
		ctrl:            ctrl,
		settings:        settings,
		log:             logger.With().Str("component", "tui").Logger(),
		form:            NewGeneratorForm(ctrl.State().Config),
		builder:         NewBuilderModel(),
		favorites:       NewFavoritesModel(),
		confirm:         NewConfirmation(),
		spinner:         sp,
		ctx:             ctx,
		cancel:          cancel,
		copyToClipboard: clipboard.WriteAll,
		writeFile:       files.WriteFile,
	}

	a.unsubscribe = ctrl.Subscribe(a.apply)

	if draft, ok := ctrl.PendingDraft(); ok {
		a.confirm.Show(ConfirmationConfig{
			Title:      "Restore session",
			Message:    controller.RestoreQuestion,
			Warning:    "Declining discards the saved code.",
			DefaultYes: true,
			Type:       ConfirmTypeDialog,
		}, func() tea.Cmd {
			a.ctrl.ResolveDraft(draft, true)
			return nil
		}, func() tea.Cmd {
			a.ctrl.ResolveDraft(draft, false)
			return nil
		})
	}
	ctrl.LoadFavorites()

	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.autosaveTick(), a.flushToasts())
}

func (a *App) autosaveTick() tea.Cmd {
	return tea.Tick(a.settings.UI.AutosaveInterval, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

// flushToasts schedules expiry for toasts pushed since the last flush
func (a *App) flushToasts() tea.Cmd {
	pushed := a.ctrl.TakePushed()
	if len(pushed) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pushed))
	for _, t := range pushed {
		id := t.ID
		cmds = append(cmds, tea.Tick(a.ctrl.Toasts().TTL(), func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// apply pushes a controller snapshot into the sub-models
func (a *App) apply(s controller.State) {
	a.builder.SetCode(s.Code)
	a.favorites.SetItems(s.Favorites)
}

func (a *App) layout() {
	contentHeight := a.height - 10
	a.form.SetWidth(a.width - 4)
	a.builder.SetSize(a.width, contentHeight)
	a.favorites.SetSize(a.width, contentHeight)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	case generationDoneMsg:
		// A fresh result replaces whatever the editor holds
		if msg.err == nil && a.builder.Editing() && a.ctrl.State().Status == controller.StatusGenerating {
			a.builder.CancelEditing()
		}
		a.ctrl.Finish(msg.code, msg.err)
		if msg.err != nil {
			a.log.Error().Err(msg.err).Msg("generation failed")
		}

	case toastExpiredMsg:
		a.ctrl.ExpireToast(msg.id)

	case autosaveTickMsg:
		a.autosave()
		cmds = append(cmds, a.autosaveTick())

	case spinner.TickMsg:
		if a.ctrl.State().Status == controller.StatusGenerating {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if a.ctrl.State().View == controller.ViewBuilder {
			cmds = append(cmds, a.builder.Update(msg))
		}
	}

	cmds = append(cmds, a.flushToasts())
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return a.quit()
	case "f1":
		return a.switchView(controller.ViewGenerator)
	case "f2":
		return a.switchView(controller.ViewBuilder)
	case "f3":
		return a.switchView(controller.ViewFavorites)
	case "ctrl+t":
		return a.switchView(a.nextView())
	case "ctrl+x":
		if latest, ok := a.ctrl.Toasts().Latest(); ok {
			a.ctrl.DismissToast(latest.ID)
		}
		return nil
	}

	switch a.ctrl.State().View {
	case controller.ViewGenerator:
		return a.handleGeneratorKey(msg)
	case controller.ViewBuilder:
		return a.handleBuilderKey(msg)
	case controller.ViewFavorites:
		return a.handleFavoritesKey(msg)
	}
	return nil
}

func (a *App) nextView() controller.View {
	s := a.ctrl.State()
	next := (s.View + 1) % controller.View(len(controller.Views))
	if next == controller.ViewBuilder && !s.HasCode() {
		next++
	}
	return next
}

func (a *App) switchView(v controller.View) tea.Cmd {
	current := a.ctrl.State().View
	if current == v {
		return nil
	}
	if current == controller.ViewBuilder {
		a.commitEdits()
		a.autosave()
	}
	if err := a.ctrl.SetView(v); err != nil {
		a.log.Debug().Err(err).Str("view", v.String()).Msg("view not available")
	}
	return nil
}

func (a *App) commitEdits() {
	if a.builder.Editing() && a.builder.StopEditing() {
		a.ctrl.SetCode(a.builder.Code())
	}
}

func (a *App) autosave() {
	if a.builder.Editing() {
		if edited := a.builder.editor.Value(); edited != a.builder.Code() {
			a.ctrl.SetCode(edited)
		}
	}
	wrote, err := a.ctrl.AutosaveDraft()
	if err != nil {
		a.log.Warn().Err(err).Msg("autosave failed")
		return
	}
	if wrote {
		a.log.Debug().Msg("draft autosaved")
	}
}

func (a *App) quit() tea.Cmd {
	a.commitEdits()
	a.autosave()
	a.cancel()
	a.unsubscribe()
	return tea.Quit
}

func (a *App) generate(begin func() (controller.Job, error)) tea.Cmd {
	job, err := begin()
	if err != nil {
		if !errors.Is(err, controller.ErrBusy) {
			a.log.Debug().Err(err).Msg("generation not started")
		}
		return nil
	}

	ctx := a.ctx
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		code, err := job(ctx)
		return generationDoneMsg{code: code, err: err}
	})
}

func (a *App) handleGeneratorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+g":
		cfg := a.form.Config()
		return a.generate(func() (controller.Job, error) { return a.ctrl.Begin(cfg) })
	case "ctrl+o":
		a.ctrl.SetConfig(a.form.Config())
		a.ctrl.SaveFavorite()
		return nil
	}

	changed, cmd := a.form.Update(msg)
	if changed {
		a.ctrl.SetConfig(a.form.Config())
	}
	return cmd
}

func (a *App) handleBuilderKey(msg tea.KeyMsg) tea.Cmd {
	if a.builder.Editing() {
		if msg.String() == "esc" {
			a.commitEdits()
			return nil
		}
		return a.builder.Update(msg)
	}

	switch msg.String() {
	case "q":
		return a.quit()
	case "e", "enter":
		if a.ctrl.State().Status == controller.StatusGenerating {
			a.ctrl.Notify("Wait for the new version before editing.", toast.Info)
			return nil
		}
		return a.builder.StartEditing()
	case "c":
		if err := a.copyToClipboard(a.builder.Code()); err != nil {
			a.log.Warn().Err(err).Msg("clipboard write failed")
			a.ctrl.Notify("Could not copy code to the clipboard.", toast.Error)
		} else {
			a.ctrl.Notify("Code copied to clipboard!", toast.Success)
		}
		return nil
	case "r":
		return a.generate(a.ctrl.BeginRegenerate)
	case "s":
		a.ctrl.SaveFavorite()
		return nil
	case "x":
		path := a.settings.Output.ExportPath
		if err := a.writeFile(path, a.builder.Code()); err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("export failed")
			a.ctrl.Notify("Could not export the website.", toast.Error)
		} else {
			a.ctrl.Notify(fmt.Sprintf("Exported to %s", path), toast.Success)
		}
		return nil
	}
	return a.builder.Update(msg)
}

func (a *App) handleFavoritesKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return a.quit()
	case "enter":
		if fav, ok := a.favorites.Selected(); ok {
			if err := a.ctrl.LoadFavorite(fav.ID); err == nil {
				a.form.SetConfig(a.ctrl.State().Config)
			}
		}
		return nil
	case "d", "delete":
		if fav, ok := a.favorites.Selected(); ok {
			a.ctrl.DeleteFavorite(fav.ID)
		}
		return nil
	case "D":
		if len(a.ctrl.State().Favorites) == 0 {
			return nil
		}
		a.confirm.Show(ConfirmationConfig{
			Message:     "Are you sure you want to clear all favorites? This cannot be undone.",
			Destructive: true,
			Type:        ConfirmTypeInline,
			Width:       a.width - 4,
		}, func() tea.Cmd {
			a.ctrl.ClearFavorites()
			return nil
		}, nil)
		return nil
	}
	a.favorites.Update(msg)
	return nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	s := a.ctrl.State()
	var b strings.Builder

	b.WriteString(renderHeader(a.width, s.View, s.HasCode()))
	b.WriteString("\n\n")

	if a.confirm.Active() && a.confirm.config.Type == ConfirmTypeDialog {
		dialog := a.confirm.View()
		b.WriteString(lipgloss.Place(a.width, max(a.height-4, lipgloss.Height(dialog)), lipgloss.Center, lipgloss.Center, dialog))
		return b.String()
	}

	b.WriteString(NewViewTitle(a.title(s)).ViewWithAlignment(a.width))
	b.WriteString("\n")

	var content string
	switch s.View {
	case controller.ViewGenerator:
		content = a.generatorView(s)
	case controller.ViewBuilder:
		content = DescriptionStyle.Render(a.builder.Summary()) + "\n" + a.builder.View()
	case controller.ViewFavorites:
		content = a.favorites.View()
	}

	border := InactiveBorderStyle
	if !a.confirm.Active() {
		border = ActiveBorderStyle
	}
	pane := border.Width(max(a.width-4, 10)).Render(content)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(pane))
	b.WriteString("\n")

	if a.confirm.Active() {
		b.WriteString(a.confirm.View())
		b.WriteString("\n")
	}
	if toasts := a.renderToasts(); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(renderHelp(a.width, a.help(s)))

	return b.String()
}

func (a *App) title(s controller.State) string {
	switch s.View {
	case controller.ViewGenerator:
		return "Describe your website"
	case controller.ViewBuilder:
		if s.LastConfig != nil && s.LastConfig.BusinessName != "" {
			return "Website for " + s.LastConfig.BusinessName
		}
		return "Your website"
	default:
		return fmt.Sprintf("Favorites (%d)", len(s.Favorites))
	}
}

func (a *App) generatorView(s controller.State) string {
	var b strings.Builder
	b.WriteString(a.form.View())

	switch s.Status {
	case controller.StatusGenerating:
		b.WriteString("\n")
		b.WriteString(a.spinner.View())
		b.WriteString(" Generating your website with " + a.settings.AI.Model + "...")
	case controller.StatusError:
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("× " + s.Err))
	}
	return b.String()
}

func (a *App) renderToasts() string {
	items := a.ctrl.Toasts().Items()
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, t := range items {
		lines[i] = ToastStyle(t.Severity).Render(t.Icon() + " " + t.Text)
	}
	return lipgloss.NewStyle().
		Width(max(a.width-2, 10)).
		Align(lipgloss.Right).
		Render(strings.Join(lines, "\n"))
}

func (a *App) help(s controller.State) []string {
	if a.confirm.Active() {
		return []string{"y confirm", "n cancel"}
	}
	switch s.View {
	case controller.ViewGenerator:
		return []string{"tab next field", "←/→ choose", "space toggle feature", "enter apply example", "ctrl+g generate", "ctrl+o favorite", "f1-f3 tabs", "ctrl+c quit"}
	case controller.ViewBuilder:
		if a.builder.Editing() {
			return []string{"esc done editing", "ctrl+c quit"}
		}
		return []string{"e edit", "c copy", "r regenerate", "s favorite", "x export", "↑/↓ scroll", "f1-f3 tabs", "q quit"}
	default:
		return []string{"↑/↓ select", "enter load", "d delete", "D clear all", "f1-f3 tabs", "q quit"}
	}
}
