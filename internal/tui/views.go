package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfa-project/specgen/internal/document"
	"github.com/pfa-project/specgen/internal/wizard"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3B82F6"))

	reachedMarkerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3B82F6"))

	pendingMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1F2937")).
				Underline(true)
)

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateWizard:
		if a.sequencer.Current() == wizard.StepReview {
			content = a.renderReview()
		} else {
			content = a.renderStep()
		}
	case statePreview:
		content = a.renderPreview()
	case stateSavedList:
		content = a.renderSavedList()
	case stateSessionExpired:
		content = a.renderSessionExpired()
	}

	var footer []string
	if a.errMsg != "" {
		footer = append(footer, errStyle.Render(a.errMsg))
	}
	if a.statusMsg != "" {
		footer = append(footer, statusStyle.Render(a.statusMsg))
	}
	if len(footer) == 0 {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, strings.Join(footer, "\n"))
}

// renderStepIndicator draws the dots-and-lines progress bar across the
// top of every wizard screen. Reached markers are filled; the connector
// after a marker fills only once that step is behind us.
func (a *App) renderStepIndicator() string {
	var b strings.Builder
	for i := 0; i < a.sequencer.Len(); i++ {
		marker := "○"
		style := pendingMarkerStyle
		if a.sequencer.Reached(i) {
			marker = "●"
			style = reachedMarkerStyle
		}
		b.WriteString(style.Render(marker))
		if i < a.sequencer.Len()-1 {
			connector := "───"
			connStyle := pendingMarkerStyle
			if a.sequencer.Completed(i) {
				connStyle = reachedMarkerStyle
			}
			b.WriteString(connStyle.Render(connector))
		}
	}
	position := fmt.Sprintf("  Étape %d/%d", a.sequencer.Index()+1, a.sequencer.Len())
	return b.String() + labelStyle.Render(position)
}

func (a *App) renderStep() string {
	step := a.sequencer.Current()

	var rows []string
	rows = append(rows, a.renderStepIndicator(), "")
	rows = append(rows, titleStyle.Render(step.Title()))

	for i, spec := range a.fields {
		label := labelStyle.Render(spec.label)
		if i == a.focusIndex {
			label = focusedLabelStyle.Render(spec.label)
		}
		rows = append(rows, label, a.inputs[i].View(), "")
	}

	rows = append(rows, labelStyle.Render("Entrée → champ suivant    Tab/↓ ↑ → naviguer    Échap → étape précédente"))
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderReview() string {
	var rows []string
	rows = append(rows, a.renderStepIndicator(), "")
	rows = append(rows, titleStyle.Render(wizard.StepReview.Title()))

	spec := document.Assemble(a.form)
	rows = append(rows, fmt.Sprintf("Projet: %s", orDash(spec.ProjectName)))
	rows = append(rows, fmt.Sprintf("Type: %s", orDash(spec.ProjectType)))
	rows = append(rows, fmt.Sprintf("Entreprise: %s", orDash(spec.CompanyName)))
	rows = append(rows, fmt.Sprintf("Sections: %d", len(spec.Sections)))
	if a.savedID != "" {
		rows = append(rows, labelStyle.Render("Document déjà enregistré, S mettra à jour"))
	}
	rows = append(rows, "")
	rows = append(rows, labelStyle.Render("P → aperçu    S → enregistrer    E → exporter    W → partager    L → mes documents"))
	rows = append(rows, labelStyle.Render("Échap → étape précédente    Q → quitter"))
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderPreview() string {
	doc := a.preview

	var rows []string
	rows = append(rows, titleStyle.Render(doc.Title))
	rows = append(rows, sectionTitleStyle.Render(doc.Subtitle), "")

	for _, field := range doc.Metadata {
		rows = append(rows, fmt.Sprintf("%s: %s", labelStyle.Render(field.Label), field.Value))
	}
	rows = append(rows, "")

	for _, section := range doc.Sections {
		rows = append(rows, sectionTitleStyle.Render(section.Title))
		rows = append(rows, section.Content, "")
	}

	rows = append(rows, labelStyle.Render(doc.Footer))
	rows = append(rows, "")
	rows = append(rows, labelStyle.Render("Échap → retour"))
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderSavedList() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Mes cahiers des charges"))

	if len(a.savedSpecs) == 0 {
		rows = append(rows, labelStyle.Render("Aucun document enregistré."))
	}
	for i, spec := range a.savedSpecs {
		line := fmt.Sprintf("%s (%s)", orDash(spec.ProjectName), orDash(spec.ProjectType))
		if i == a.savedSelection {
			line = focusedLabelStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	rows = append(rows, "")
	rows = append(rows, labelStyle.Render("Entrée → aperçu    ↑ ↓ → naviguer    Échap → retour"))
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderSessionExpired() string {
	rows := []string{
		errStyle.Render("Session expirée"),
		"",
		"Votre session n'est plus valide. Reconnectez-vous avec `specgen login`.",
		"",
		labelStyle.Render("Appuyez sur une touche pour quitter"),
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}
