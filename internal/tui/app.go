// internal/tui/app.go
//
// Terminal UI for the specification wizard. It follows The Elm
// Architecture via bubbletea:
//
// 1. Model: the App struct holds all screen state
// 2. Update: reacts to key presses and async results
// 3. View: renders the active screen to a string
//
// The wizard itself (step order, form values, validation) lives in the
// wizard package; this file only drives it.

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfa-project/specgen/internal/client"
	"github.com/pfa-project/specgen/internal/document"
	"github.com/pfa-project/specgen/internal/export"
	"github.com/pfa-project/specgen/internal/metrics"
	"github.com/pfa-project/specgen/internal/models"
	"github.com/pfa-project/specgen/internal/wizard"
)

// appState represents which "screen" we're on
type appState int

const (
	stateWizard         appState = iota // Step-by-step form screens
	statePreview                        // Rendered document preview
	stateSavedList                      // Saved specifications from the API
	stateSessionExpired                 // Token rejected, user must log in again
)

const requestTimeout = 15 * time.Second

// Messages produced by async commands.
type saveResultMsg struct {
	spec models.Specification
	err  error
}

type exportResultMsg struct {
	path     string
	duration time.Duration
	err      error
}

type savedListMsg struct {
	specs []models.Specification
	err   error
}

// App is the main application model. It holds ALL the TUI state.
type App struct {
	state     appState
	sequencer *wizard.Sequencer
	form      *wizard.FormState
	gate      wizard.Gate
	session   *client.Session
	exporter  export.Exporter
	metrics   *metrics.DocumentMetrics

	// Inputs for the current wizard step
	inputs     []textinput.Model
	fields     []fieldSpec
	focusIndex int

	// Draft identity: set after the first successful save so later saves
	// update instead of creating duplicates.
	savedID string

	preview        document.RenderedDocument
	savedSpecs     []models.Specification
	savedSelection int

	statusMsg string
	errMsg    string

	width  int
	height int
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithGate overrides the validation gate controlling forward navigation.
func WithGate(gate wizard.Gate) AppOption {
	return func(a *App) {
		if gate != nil {
			a.gate = gate
		}
	}
}

// WithMetrics attaches a metrics collector to the wizard flow.
func WithMetrics(m *metrics.DocumentMetrics) AppOption {
	return func(a *App) {
		a.metrics = m
	}
}

// NewApp creates the wizard application. session may be unauthenticated;
// saving then surfaces the login prompt instead of an API call.
func NewApp(session *client.Session, exporter export.Exporter, opts ...AppOption) *App {
	app := &App{
		state:     stateWizard,
		sequencer: wizard.NewSequencer(),
		form:      wizard.NewFormState(),
		gate:      wizard.PermissiveGate{},
		session:   session,
		exporter:  exporter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.rebuildInputs()
	return app
}

// rebuildInputs creates the text inputs for the current step, seeded from
// the form state so revisiting a step shows the previous answers.
func (a *App) rebuildInputs() {
	a.fields = stepFields[a.sequencer.Current()]
	a.inputs = make([]textinput.Model, len(a.fields))
	for i, spec := range a.fields {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 2048
		ti.Width = 60
		ti.SetValue(a.form.Get(spec.field))
		a.inputs[i] = ti
	}
	a.focusIndex = 0
	if len(a.inputs) > 0 {
		a.inputs[0].Focus()
	}
}

// syncForm writes every visible input back into the form state.
func (a *App) syncForm() {
	for i, spec := range a.fields {
		a.form.Set(spec.field, a.inputs[i].Value())
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case saveResultMsg:
		if msg.err != nil {
			return a.handlePersistenceError("save", msg.err)
		}
		a.savedID = msg.spec.ID
		a.errMsg = ""
		a.statusMsg = "Cahier des charges enregistré"
		return a, nil

	case exportResultMsg:
		if msg.err != nil {
			if a.metrics != nil {
				a.metrics.RecordExportFailed(context.Background(), a.form.ProjectType, msg.duration)
			}
			a.errMsg = fmt.Sprintf("Échec de l'export: %v", msg.err)
			return a, nil
		}
		if a.metrics != nil {
			a.metrics.RecordDocumentExported(context.Background(), a.form.ProjectType, msg.duration)
		}
		a.errMsg = ""
		a.statusMsg = fmt.Sprintf("Document exporté: %s", msg.path)
		return a, nil

	case savedListMsg:
		if msg.err != nil {
			return a.handlePersistenceError("list", msg.err)
		}
		a.errMsg = ""
		a.savedSpecs = msg.specs
		a.savedSelection = 0
		a.state = stateSavedList
		return a, nil

	case tea.KeyMsg:
		switch a.state {
		case stateWizard:
			return a.updateWizard(msg)
		case statePreview:
			if msg.String() == "esc" || msg.String() == "q" {
				a.state = stateWizard
			}
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a, nil
		case stateSavedList:
			return a.updateSavedList(msg)
		case stateSessionExpired:
			// Any key exits so the CLI can run its login flow.
			return a, tea.Quit
		}
	}

	return a, nil
}

// updateWizard handles keys on the form and review screens.
func (a *App) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onReview := a.sequencer.Current() == wizard.StepReview

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.syncForm()
		if a.sequencer.Retreat() {
			a.rebuildInputs()
			a.statusMsg = ""
			a.errMsg = ""
		}
		return a, nil

	case "enter":
		if onReview {
			return a, nil
		}
		a.syncForm()
		if a.focusIndex < len(a.inputs)-1 {
			return a.focusInput(a.focusIndex + 1)
		}
		return a.tryAdvance()

	case "tab", "down":
		if !onReview && len(a.inputs) > 0 {
			a.syncForm()
			return a.focusInput((a.focusIndex + 1) % len(a.inputs))
		}
	case "shift+tab", "up":
		if !onReview && len(a.inputs) > 0 {
			a.syncForm()
			return a.focusInput((a.focusIndex - 1 + len(a.inputs)) % len(a.inputs))
		}
	}

	if onReview {
		switch msg.String() {
		case "p":
			return a.showPreview()
		case "s":
			return a.saveSpecification()
		case "e":
			return a.exportDocument(false)
		case "w":
			return a.exportDocument(true)
		case "l":
			return a.loadSavedList()
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	// Everything else feeds the focused input.
	var cmd tea.Cmd
	if len(a.inputs) > 0 {
		a.inputs[a.focusIndex], cmd = a.inputs[a.focusIndex].Update(msg)
		a.form.Set(a.fields[a.focusIndex].field, a.inputs[a.focusIndex].Value())
	}
	return a, cmd
}

func (a *App) updateSavedList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc", "q":
		a.state = stateWizard
	case "up", "k":
		if a.savedSelection > 0 {
			a.savedSelection--
		}
	case "down", "j":
		if a.savedSelection < len(a.savedSpecs)-1 {
			a.savedSelection++
		}
	case "enter":
		if a.savedSelection < len(a.savedSpecs) {
			spec := a.savedSpecs[a.savedSelection]
			doc, err := document.Render(spec, time.Now())
			if err != nil {
				a.errMsg = fmt.Sprintf("Échec du rendu: %v", err)
				return a, nil
			}
			a.preview = doc
			a.state = statePreview
		}
	}
	return a, nil
}

func (a *App) focusInput(index int) (tea.Model, tea.Cmd) {
	a.inputs[a.focusIndex].Blur()
	a.focusIndex = index
	return a, a.inputs[a.focusIndex].Focus()
}

// tryAdvance asks the gate for permission before moving forward. A denial
// keeps the user on the current step with the reason displayed.
func (a *App) tryAdvance() (tea.Model, tea.Cmd) {
	if err := a.gate.CanAdvance(a.sequencer.Current(), a.form); err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	if a.sequencer.Advance() {
		a.rebuildInputs()
		a.statusMsg = ""
		a.errMsg = ""
	}
	return a, nil
}

func (a *App) showPreview() (tea.Model, tea.Cmd) {
	spec := document.Assemble(a.form)
	if a.metrics != nil {
		a.metrics.RecordDocumentAssembled(context.Background(), spec.ProjectType, len(spec.Sections))
	}
	doc, err := document.Render(spec, time.Now())
	if err != nil {
		a.errMsg = fmt.Sprintf("Échec du rendu: %v", err)
		return a, nil
	}
	a.preview = doc
	a.state = statePreview
	return a, nil
}

// saveSpecification assembles the document and persists it. The form is
// snapshotted before the async call so later edits cannot race the save.
func (a *App) saveSpecification() (tea.Model, tea.Cmd) {
	if !a.session.Authenticated() {
		a.state = stateSessionExpired
		return a, nil
	}

	spec := document.Assemble(a.form)
	if a.metrics != nil {
		a.metrics.RecordDocumentAssembled(context.Background(), spec.ProjectType, len(spec.Sections))
	}
	spec.ID = a.savedID
	api := a.session.Client()
	a.statusMsg = "Enregistrement..."

	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var saved models.Specification
		var err error
		if spec.Persisted() {
			saved, err = api.UpdateSpecification(ctx, spec)
		} else {
			saved, err = api.CreateSpecification(ctx, spec)
		}
		return saveResultMsg{spec: saved, err: err}
	}
}

func (a *App) exportDocument(share bool) (tea.Model, tea.Cmd) {
	spec := document.Assemble(a.form)
	a.statusMsg = "Export en cours..."

	return a, func() tea.Msg {
		start := time.Now()
		if share {
			err := a.exporter.Share(spec)
			return exportResultMsg{path: "", duration: time.Since(start), err: err}
		}
		path, err := a.exporter.RenderToFile(spec)
		return exportResultMsg{path: path, duration: time.Since(start), err: err}
	}
}

func (a *App) loadSavedList() (tea.Model, tea.Cmd) {
	if !a.session.Authenticated() {
		a.state = stateSessionExpired
		return a, nil
	}
	api := a.session.Client()
	a.statusMsg = "Chargement..."

	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		specs, err := api.ListSpecifications(ctx)
		return savedListMsg{specs: specs, err: err}
	}
}

// handlePersistenceError routes an expired session to the dedicated
// screen; every other failure stays on the current screen with a message.
func (a *App) handlePersistenceError(operation string, err error) (tea.Model, tea.Cmd) {
	if a.metrics != nil {
		errorType := "server_error"
		if errors.Is(err, client.ErrSessionExpired) {
			errorType = "session_expired"
		}
		a.metrics.RecordPersistenceFailed(context.Background(), operation, errorType)
	}

	if errors.Is(err, client.ErrSessionExpired) {
		_ = a.session.SignOut()
		a.state = stateSessionExpired
		return a, nil
	}

	a.errMsg = fmt.Sprintf("Échec de l'opération: %v", err)
	a.statusMsg = ""
	return a, nil
}
