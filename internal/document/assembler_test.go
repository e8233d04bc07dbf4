package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-project/specgen/internal/wizard"
)

func fullForm() *wizard.FormState {
	return &wizard.FormState{
		ProjectName:           "Application de gestion de tâches",
		ProjectType:           "Application mobile",
		CompanyName:           "TechSolutions SAS",
		CompanyDescription:    "ESN spécialisée dans les outils métier",
		PrimaryObjective:      "Centraliser le suivi des tâches",
		SecondaryObjectives:   "Notifications, rapports hebdomadaires",
		UserProfiles:          "Chefs de projet, développeurs",
		TechnicalRequirements: "API REST, application mobile iOS/Android",
		ExistingSystems:       "Jira, tableur partagé",
		TechnicalConstraints:  "Hébergement souverain, RGPD",
		BudgetMin:             "5000",
		BudgetMax:             "10000",
		TimeConstraints:       "Mise en production avant l'été",
		StartDate:             "01/01/2025",
		EndDate:               "31/12/2025",
		Milestones:            "MVP en mars, beta en juin",
	}
}

func TestAssembleBudgetAndTimelineSynthesis(t *testing.T) {
	form := fullForm()
	spec := Assemble(form)

	assert.Equal(t, "5000 - 10000", spec.Budget)
	assert.Equal(t, "01/01/2025 - 31/12/2025", spec.Timeline)

	t.Run("empty sub-fields concatenate verbatim", func(t *testing.T) {
		form := wizard.NewFormState()
		form.Set(wizard.FieldBudgetMin, "5000")
		spec := Assemble(form)
		assert.Equal(t, "5000 - ", spec.Budget)
		assert.Equal(t, " - ", spec.Timeline)
	})
}

func TestAssembleCopiesIdentityFields(t *testing.T) {
	spec := Assemble(fullForm())

	assert.Equal(t, "Application de gestion de tâches", spec.ProjectName)
	assert.Equal(t, "Application mobile", spec.ProjectType)
	assert.Equal(t, "TechSolutions SAS", spec.CompanyName)
	assert.Equal(t, "ESN spécialisée dans les outils métier", spec.CompanyDescription)
	assert.Equal(t, "Centraliser le suivi des tâches", spec.PrimaryObjective)
	assert.Equal(t, "API REST, application mobile iOS/Android", spec.TechnicalRequirements)

	// No defaulting at this layer: empty stays empty.
	empty := Assemble(wizard.NewFormState())
	assert.Equal(t, "", empty.ProjectName)
	assert.Equal(t, "", empty.ProjectType)
	assert.False(t, empty.Persisted())
}

func TestAssembleSectionPrecedence(t *testing.T) {
	spec := Assemble(fullForm())

	titles := make([]string, len(spec.Sections))
	for i, s := range spec.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		SectionPresentation,
		SectionObjectives,
		SectionTechnical,
		SectionConstraints,
		SectionFeatures,
		SectionUserProfiles,
		SectionBudget,
	}, titles)
}

func TestAssembleFiltersEmptySections(t *testing.T) {
	form := fullForm()
	form.PrimaryObjective = ""
	spec := Assemble(form)

	titles := make([]string, len(spec.Sections))
	for i, s := range spec.Sections {
		titles[i] = s.Title
	}
	assert.NotContains(t, titles, SectionObjectives)
	assert.Equal(t, []string{
		SectionPresentation,
		SectionTechnical,
		SectionConstraints,
		SectionFeatures,
		SectionUserProfiles,
		SectionBudget,
	}, titles)

	t.Run("whitespace-only content is filtered too", func(t *testing.T) {
		form := fullForm()
		form.UserProfiles = "  \n "
		spec := Assemble(form)
		for _, s := range spec.Sections {
			assert.NotEqual(t, SectionUserProfiles, s.Title)
		}
	})
}

func TestAssembleBudgetSectionAlwaysIncluded(t *testing.T) {
	// Even with every value empty, the composite keeps its labels and the
	// section survives the filter.
	spec := Assemble(wizard.NewFormState())

	require.Len(t, spec.Sections, 1)
	assert.Equal(t, SectionBudget, spec.Sections[0].Title)
	assert.Equal(t, "- Budget:  - \n- Délai:  - \n- Jalons: ", spec.Sections[0].Content)
}

func TestAssembleDeterminism(t *testing.T) {
	form := fullForm()
	first := Assemble(form)
	second := Assemble(form)
	assert.Equal(t, first, second)
}

func TestAssembledSpecificationIsIndependent(t *testing.T) {
	form := fullForm()
	spec := Assemble(form)

	form.Set(wizard.FieldProjectName, "Autre projet")
	form.Set(wizard.FieldPrimaryObjective, "")

	assert.Equal(t, "Application de gestion de tâches", spec.ProjectName)
	assert.Equal(t, "Centraliser le suivi des tâches", spec.Sections[1].Content)
}
