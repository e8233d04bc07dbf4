package tui

import (
	"github.com/pfa-project/specgen/internal/wizard"
)

// fieldSpec describes one input shown on a wizard screen.
type fieldSpec struct {
	field       wizard.Field
	label       string
	placeholder string
}

// stepFields maps each wizard step to the inputs it presents, in display
// order. The review step carries no inputs of its own.
var stepFields = map[wizard.Step][]fieldSpec{
	wizard.StepInfo: {
		{wizard.FieldProjectName, "Nom du projet", "Refonte du site vitrine"},
		{wizard.FieldProjectType, "Type de projet", "Site web, application mobile..."},
		{wizard.FieldCompanyName, "Nom de l'entreprise", "Acme SARL"},
		{wizard.FieldCompanyDescription, "Description de l'entreprise", "Secteur, taille, activité..."},
	},
	wizard.StepObjectives: {
		{wizard.FieldPrimaryObjective, "Objectif principal", "Que doit accomplir le projet ?"},
		{wizard.FieldSecondaryObjectives, "Objectifs secondaires", "Objectifs complémentaires"},
		{wizard.FieldUserProfiles, "Profils utilisateurs", "Qui utilisera le produit ?"},
	},
	wizard.StepTechnical: {
		{wizard.FieldTechnicalRequirements, "Fonctionnalités principales", "Liste des fonctionnalités attendues"},
		{wizard.FieldExistingSystems, "Systèmes existants", "Outils ou systèmes à intégrer"},
	},
	wizard.StepConstraints: {
		{wizard.FieldTechnicalConstraints, "Contraintes techniques", "Technologies imposées, hébergement..."},
		{wizard.FieldBudgetMin, "Budget minimum", "5000"},
		{wizard.FieldBudgetMax, "Budget maximum", "10000"},
	},
	wizard.StepDeadlines: {
		{wizard.FieldTimeConstraints, "Contraintes de délai", "Échéances importantes"},
		{wizard.FieldStartDate, "Date de début", "01/09/2025"},
		{wizard.FieldEndDate, "Date de fin", "31/12/2025"},
		{wizard.FieldMilestones, "Jalons", "Maquettes, MVP, livraison..."},
	},
	wizard.StepReview: {},
}
