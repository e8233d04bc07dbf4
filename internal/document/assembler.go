// Package document turns a completed form into the presentable
// "cahier des charges": a pure assembler from form state to the
// specification model, and a renderer producing the preview structure
// and the exportable HTML document.
package document

import (
	"fmt"
	"strings"

	"github.com/pfa-project/specgen/internal/models"
	"github.com/pfa-project/specgen/internal/wizard"
)

// Section titles, in the fixed precedence the document uses.
const (
	SectionPresentation = "Présentation du projet"
	SectionObjectives   = "Objectifs"
	SectionTechnical    = "Spécifications techniques"
	SectionConstraints  = "Contraintes techniques"
	SectionFeatures     = "Fonctionnalités principales"
	SectionUserProfiles = "Profils utilisateurs"
	SectionBudget       = "Budget et délais"
)

// Assemble builds a Specification from the form state. It is pure and
// total: no IO, deterministic for a given input, and safe to call on a
// partially filled form (the result just reflects whatever is there).
//
// Identity fields are copied verbatim, empty strings included; display
// placeholders are a renderer concern. Budget and timeline are synthesized
// as "min - max" / "start - end" with empty sub-values concatenated as-is.
func Assemble(form *wizard.FormState) models.Specification {
	budget := fmt.Sprintf("%s - %s", form.BudgetMin, form.BudgetMax)
	timeline := fmt.Sprintf("%s - %s", form.StartDate, form.EndDate)

	candidates := []models.Section{
		{Title: SectionPresentation, Content: form.CompanyDescription},
		{Title: SectionObjectives, Content: form.PrimaryObjective},
		{Title: SectionTechnical, Content: form.TechnicalRequirements},
		{Title: SectionConstraints, Content: form.TechnicalConstraints},
		{Title: SectionFeatures, Content: form.SecondaryObjectives},
		{Title: SectionUserProfiles, Content: form.UserProfiles},
		{
			Title: SectionBudget,
			// The embedded labels keep this composite non-empty, so the
			// filter below always retains it.
			Content: fmt.Sprintf("- Budget: %s\n- Délai: %s\n- Jalons: %s",
				budget, timeline, form.Milestones),
		},
	}

	sections := make([]models.Section, 0, len(candidates))
	for _, s := range candidates {
		if strings.TrimSpace(s.Content) == "" {
			continue
		}
		sections = append(sections, s)
	}

	return models.Specification{
		ProjectName:           form.ProjectName,
		ProjectType:           form.ProjectType,
		CompanyName:           form.CompanyName,
		CompanyDescription:    form.CompanyDescription,
		PrimaryObjective:      form.PrimaryObjective,
		Budget:                budget,
		Timeline:              timeline,
		TechnicalRequirements: form.TechnicalRequirements,
		Sections:              sections,
	}
}
