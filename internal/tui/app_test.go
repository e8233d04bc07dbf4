package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-project/specgen/internal/client"
	"github.com/pfa-project/specgen/internal/export"
	"github.com/pfa-project/specgen/internal/models"
	"github.com/pfa-project/specgen/internal/wizard"
)

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	tokenPath := filepath.Join(t.TempDir(), "token")
	session := client.NewSession(client.New("http://localhost:0"), tokenPath)
	exporter := export.NewFileExporter(t.TempDir())
	return NewApp(session, exporter, opts...)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestWizardStartsAtFirstStep(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, wizard.StepInfo, app.sequencer.Current())
	assert.Len(t, app.inputs, len(stepFields[wizard.StepInfo]))
	assert.Equal(t, 0, app.focusIndex)
}

func TestTypingUpdatesFormState(t *testing.T) {
	app := newTestApp(t)

	for _, r := range "Mon Projet" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "Mon Projet", app.form.ProjectName)
}

func TestEnterOnLastFieldAdvancesStep(t *testing.T) {
	app := newTestApp(t)

	// Enter moves through every field of the first step, then advances.
	for range stepFields[wizard.StepInfo] {
		app.Update(keyMsg("enter"))
	}

	assert.Equal(t, wizard.StepObjectives, app.sequencer.Current())
	assert.Len(t, app.inputs, len(stepFields[wizard.StepObjectives]))
}

func TestEscRetreatsAndPreservesValues(t *testing.T) {
	app := newTestApp(t)

	for _, r := range "Acme" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	for range stepFields[wizard.StepInfo] {
		app.Update(keyMsg("enter"))
	}
	require.Equal(t, wizard.StepObjectives, app.sequencer.Current())

	app.Update(keyMsg("esc"))
	assert.Equal(t, wizard.StepInfo, app.sequencer.Current())
	assert.Equal(t, "Acme", app.inputs[0].Value())
}

func TestEscOnFirstStepIsNoOp(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("esc"))
	assert.Equal(t, wizard.StepInfo, app.sequencer.Current())
}

func TestGateBlocksAdvance(t *testing.T) {
	gate := wizard.RequiredFieldsGate{
		Required: map[wizard.Step][]wizard.Field{
			wizard.StepInfo: {wizard.FieldProjectName},
		},
	}
	app := newTestApp(t, WithGate(gate))

	for range stepFields[wizard.StepInfo] {
		app.Update(keyMsg("enter"))
	}

	assert.Equal(t, wizard.StepInfo, app.sequencer.Current())
	assert.NotEmpty(t, app.errMsg)

	// Filling the required field unblocks the step.
	app.rebuildInputs()
	for _, r := range "Projet" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	for range stepFields[wizard.StepInfo] {
		app.Update(keyMsg("enter"))
	}
	assert.Equal(t, wizard.StepObjectives, app.sequencer.Current())
}

func TestReviewPreviewShowsAssembledDocument(t *testing.T) {
	app := newTestApp(t)
	app.form.ProjectName = "Refonte"
	app.form.PrimaryObjective = "Moderniser"

	// Walk to the review step.
	for app.sequencer.Current() != wizard.StepReview {
		require.True(t, app.sequencer.Advance())
	}
	app.rebuildInputs()

	app.Update(keyMsg("p"))
	assert.Equal(t, statePreview, app.state)
	assert.Equal(t, "Refonte", app.preview.Subtitle)

	view := app.View()
	assert.Contains(t, view, "CAHIER DES CHARGES")
	assert.Contains(t, view, "Objectifs")

	app.Update(keyMsg("esc"))
	assert.Equal(t, stateWizard, app.state)
}

func TestSessionExpiredRoutesToDedicatedScreen(t *testing.T) {
	app := newTestApp(t)
	app.session.Client().SetToken("stale")

	model, _ := app.Update(savedListMsg{err: client.ErrSessionExpired})
	app = model.(*App)

	assert.Equal(t, stateSessionExpired, app.state)
	assert.False(t, app.session.Authenticated())
	assert.Contains(t, app.View(), "Session expirée")
}

func TestSaveWithoutSessionRoutesToLoginScreen(t *testing.T) {
	app := newTestApp(t)
	for app.sequencer.Current() != wizard.StepReview {
		require.True(t, app.sequencer.Advance())
	}
	app.rebuildInputs()

	app.Update(keyMsg("s"))
	assert.Equal(t, stateSessionExpired, app.state)
}

func TestSaveResultRemembersID(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(saveResultMsg{spec: models.Specification{ID: "spec-1"}})
	app = model.(*App)

	assert.Equal(t, "spec-1", app.savedID)
	assert.Equal(t, "Cahier des charges enregistré", app.statusMsg)
}

func TestStepIndicatorCountsSteps(t *testing.T) {
	app := newTestApp(t)
	indicator := app.renderStepIndicator()
	assert.Contains(t, indicator, "Étape 1/6")

	require.True(t, app.sequencer.Advance())
	indicator = app.renderStepIndicator()
	assert.Contains(t, indicator, "Étape 2/6")
}
