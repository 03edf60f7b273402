// Package tui is the interactive terminal front end. It renders the session
// controller's state and turns key presses into controller operations, which
// run asynchronously as bubbletea commands.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ekaraca/phishdrill/internal/gameclient"
	"github.com/ekaraca/phishdrill/internal/model"
	"github.com/ekaraca/phishdrill/internal/session"
)

const opTimeout = 30 * time.Second

// screen selects between the game flow and the auxiliary screens
type screen int

const (
	screenGame screen = iota
	screenRegister
	screenLeaderboard
)

// gameModes is the mode-select menu, in display order
var gameModes = []struct {
	mode  model.GameMode
	label string
	desc  string
}{
	{model.ModePhishingOnly, "Oltalama Testi", "10 e-posta: güvenli mi, oltalama mı?"},
	{model.ModePasswordOnly, "Şifre Güvenliği", "10 soru, ardından bir şifre denemesi"},
	{model.ModeMixed, "Karma Mod", "5 oltalama + 5 şifre sorusu + şifre denemesi"},
}

// registration form field order
const (
	regFieldName = iota
	regFieldBirthDate
	regFieldEducation
	regFieldProfession
	regFieldTraining
	regFieldCount
)

// App is the bubbletea model for the whole client
type App struct {
	controller *session.Controller
	users      *gameclient.UserClient

	screen screen
	width  int
	height int

	nameInput     textinput.Model
	passwordInput textinput.Model
	spinner       spinner.Model
	busy          bool

	// choice is the highlighted index in whatever list the screen shows
	choice int
	status string

	regInputs   []textinput.Model
	regFocus    int
	regTraining bool

	leaderboard []model.LeaderboardEntry
}

type opDoneMsg struct{ err error }

type registeredMsg struct {
	id  model.UserID
	err error
}

type leaderboardMsg struct {
	entries []model.LeaderboardEntry
	err     error
}

// New creates the TUI application model
func New(controller *session.Controller, users *gameclient.UserClient) App {
	name := textinput.New()
	name.Placeholder = "Adınız"
	name.CharLimit = 40
	name.Width = 30
	name.Focus()

	password := textinput.New()
	password.Placeholder = "Güçlü bir şifre deneyin"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64
	password.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	regLabels := []string{"Ad Soyad", "Doğum tarihi (YYYY-AA-GG)", "Eğitim durumu", "Meslek"}
	regInputs := make([]textinput.Model, len(regLabels))
	for i, label := range regLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 60
		ti.Width = 30
		regInputs[i] = ti
	}
	regInputs[0].Focus()

	return App{
		controller:    controller,
		users:         users,
		nameInput:     name,
		passwordInput: password,
		spinner:       sp,
		regInputs:     regInputs,
	}
}

// Run starts the interactive client and blocks until it exits
func Run(controller *session.Controller, users *gameclient.UserClient) error {
	p := tea.NewProgram(New(controller, users), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// do wraps a controller operation as an async command
func (a App) do(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return opDoneMsg{err: op(ctx)}
	}
}

func (a App) fetchLeaderboard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		entries, err := a.users.Leaderboard(ctx)
		return leaderboardMsg{entries: entries, err: err}
	}
}

func (a App) register() tea.Cmd {
	profile := model.Profile{
		FullName:                 a.regInputs[regFieldName].Value(),
		BirthDate:                a.regInputs[regFieldBirthDate].Value(),
		EducationLevel:           a.regInputs[regFieldEducation].Value(),
		Profession:               a.regInputs[regFieldProfession].Value(),
		HasCybersecurityTraining: a.regTraining,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		id, err := a.controller.RegisterUser(ctx, profile)
		return registeredMsg{id: id, err: err}
	}
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case opDoneMsg:
		a.busy = false
		a.choice = 0
		s := a.controller.Session()
		if msg.err != nil {
			a.status = s.Error
			if a.status == "" {
				a.status = msg.err.Error()
			}
			return a, nil
		}
		a.status = ""
		if s.Phase == model.PhaseWelcome {
			// After a restart: fresh run, fresh inputs
			a.nameInput.SetValue("")
			a.nameInput.Focus()
			a.passwordInput.SetValue("")
		}
		if s.AwaitingPasswordEntry() {
			a.passwordInput.Focus()
			return a, textinput.Blink
		}
		if s.Phase == model.PhaseResults && s.Report == nil {
			// Advancing past the last question can land on results without an
			// inline report; fetch it before rendering
			a.busy = true
			return a, tea.Batch(a.spinner.Tick, a.do(a.controller.GetResults))
		}
		return a, nil

	case registeredMsg:
		a.busy = false
		if msg.err != nil {
			a.status = errorStyle.Render("Kayıt başarısız: " + msg.err.Error())
			return a, nil
		}
		a.screen = screenGame
		a.status = statusStyle.Render("Kayıt tamamlandı, sonuçlarınız kaydedilecek.")
		return a, nil

	case leaderboardMsg:
		a.busy = false
		if msg.err != nil {
			a.status = errorStyle.Render("Skor tablosu yüklenemedi: " + msg.err.Error())
			return a, nil
		}
		a.leaderboard = msg.entries
		a.screen = screenLeaderboard
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.busy {
			return a, nil
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case screenRegister:
		return a.updateRegister(msg)
	case screenLeaderboard:
		return a.updateLeaderboard(msg)
	}

	s := a.controller.Session()
	switch {
	case s.Phase == model.PhaseWelcome:
		return a.updateWelcome(msg)
	case s.Phase == model.PhaseModeSelect:
		return a.updateMenu(msg)
	case s.Phase == model.PhasePhishingQuestion:
		return a.updateQuestion(msg, &s)
	case s.Phase == model.PhasePasswordQuestion && s.AwaitingPasswordEntry():
		return a.updateEntry(msg)
	case s.Phase == model.PhasePasswordQuestion:
		return a.updateQuestion(msg, &s)
	case s.Phase == model.PhaseResults:
		return a.updateResults(msg)
	}
	return a, nil
}

func (a App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.do(func(ctx context.Context) error {
			return a.controller.StartGame(ctx, a.nameInput.Value())
		}))
	case "tab":
		a.screen = screenRegister
		a.status = ""
		return a, nil
	case "esc":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(msg)
	return a, cmd
}

func (a App) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.screen = screenGame
		a.status = ""
		return a, nil
	case "up", "shift+tab":
		a.regFocus = (a.regFocus + regFieldCount - 1) % regFieldCount
		return a.focusRegField()
	case "down", "tab":
		a.regFocus = (a.regFocus + 1) % regFieldCount
		return a.focusRegField()
	case " ":
		if a.regFocus == regFieldTraining {
			a.regTraining = !a.regTraining
			return a, nil
		}
	case "enter":
		if a.regFocus < regFieldTraining {
			a.regFocus++
			return a.focusRegField()
		}
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.register())
	}

	if a.regFocus < len(a.regInputs) {
		var cmd tea.Cmd
		a.regInputs[a.regFocus], cmd = a.regInputs[a.regFocus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) focusRegField() (tea.Model, tea.Cmd) {
	for i := range a.regInputs {
		if i == a.regFocus {
			a.regInputs[i].Focus()
		} else {
			a.regInputs[i].Blur()
		}
	}
	return a, textinput.Blink
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.choice > 0 {
			a.choice--
		}
	case "down", "j":
		if a.choice < len(gameModes)-1 {
			a.choice++
		}
	case "enter":
		mode := gameModes[a.choice].mode
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.do(func(ctx context.Context) error {
			return a.controller.SelectGameMode(ctx, mode)
		}))
	case "l":
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.fetchLeaderboard())
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

// updateQuestion handles both phishing and password multiple-choice steps
func (a App) updateQuestion(msg tea.KeyMsg, s *model.Session) (tea.Model, tea.Cmd) {
	options := questionOptions(s)

	if s.Feedback != nil {
		// Feedback is showing; the only transition out is the next question
		if msg.String() == "enter" || msg.String() == " " {
			a.busy = true
			return a, tea.Batch(a.spinner.Tick, a.do(a.controller.NextQuestion))
		}
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		if a.choice > 0 {
			a.choice--
		}
	case "down", "j":
		if a.choice < len(options)-1 {
			a.choice++
		}
	case "enter":
		if a.choice >= len(options) {
			return a, nil
		}
		answer := options[a.choice]
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.do(func(ctx context.Context) error {
			return a.controller.SubmitAnswer(ctx, answer)
		}))
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		password := a.passwordInput.Value()
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.do(func(ctx context.Context) error {
			return a.controller.SubmitPassword(ctx, password)
		}))
	case "esc":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.passwordInput, cmd = a.passwordInput.Update(msg)
	return a, cmd
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.do(a.controller.RestartGame))
	case "l":
		a.busy = true
		return a, tea.Batch(a.spinner.Tick, a.fetchLeaderboard())
	case "q", "esc", "enter":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		a.screen = screenGame
		return a, nil
	}
	return a, nil
}

// questionOptions returns the options of whichever question is active
func questionOptions(s *model.Session) []string {
	if s.CurrentQuestion != nil {
		return s.CurrentQuestion.Options
	}
	if s.CurrentPasswordQuestion != nil {
		return s.CurrentPasswordQuestion.Options
	}
	return nil
}
