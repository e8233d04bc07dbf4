// Package wizard implements the multi-step form flow that collects project
// requirements: the typed form state, the linear step sequencer, and the
// validation gate that governs forward navigation.
package wizard

// Field identifies one named form input.
type Field string

const (
	FieldProjectName           Field = "projectName"
	FieldProjectType           Field = "projectType"
	FieldCompanyName           Field = "companyName"
	FieldCompanyDescription    Field = "companyDescription"
	FieldPrimaryObjective      Field = "primaryObjective"
	FieldSecondaryObjectives   Field = "secondaryObjectives"
	FieldUserProfiles          Field = "userProfiles"
	FieldTechnicalRequirements Field = "technicalRequirements"
	FieldExistingSystems       Field = "existingSystems"
	FieldTechnicalConstraints  Field = "technicalConstraints"
	FieldBudgetMin             Field = "budgetMin"
	FieldBudgetMax             Field = "budgetMax"
	FieldTimeConstraints       Field = "timeConstraints"
	FieldStartDate             Field = "startDate"
	FieldEndDate               Field = "endDate"
	FieldMilestones            Field = "milestones"
)

// FormState holds the live answers for one wizard session. Every field
// defaults to the empty string; nothing is required at this layer. The state
// is owned by a single session and mutated only through Set.
type FormState struct {
	ProjectName           string
	ProjectType           string
	CompanyName           string
	CompanyDescription    string
	PrimaryObjective      string
	SecondaryObjectives   string
	UserProfiles          string
	TechnicalRequirements string
	ExistingSystems       string
	TechnicalConstraints  string
	BudgetMin             string
	BudgetMax             string
	TimeConstraints       string
	StartDate             string
	EndDate               string
	Milestones            string
}

// NewFormState creates an empty form state for a fresh wizard session.
func NewFormState() *FormState {
	return &FormState{}
}

// Get returns the current value for a field. Unknown fields read as "".
func (f *FormState) Get(field Field) string {
	switch field {
	case FieldProjectName:
		return f.ProjectName
	case FieldProjectType:
		return f.ProjectType
	case FieldCompanyName:
		return f.CompanyName
	case FieldCompanyDescription:
		return f.CompanyDescription
	case FieldPrimaryObjective:
		return f.PrimaryObjective
	case FieldSecondaryObjectives:
		return f.SecondaryObjectives
	case FieldUserProfiles:
		return f.UserProfiles
	case FieldTechnicalRequirements:
		return f.TechnicalRequirements
	case FieldExistingSystems:
		return f.ExistingSystems
	case FieldTechnicalConstraints:
		return f.TechnicalConstraints
	case FieldBudgetMin:
		return f.BudgetMin
	case FieldBudgetMax:
		return f.BudgetMax
	case FieldTimeConstraints:
		return f.TimeConstraints
	case FieldStartDate:
		return f.StartDate
	case FieldEndDate:
		return f.EndDate
	case FieldMilestones:
		return f.Milestones
	}
	return ""
}

// Set replaces the value for a field unconditionally. No validation happens
// here; the gate decides whether the user may move forward.
func (f *FormState) Set(field Field, value string) {
	switch field {
	case FieldProjectName:
		f.ProjectName = value
	case FieldProjectType:
		f.ProjectType = value
	case FieldCompanyName:
		f.CompanyName = value
	case FieldCompanyDescription:
		f.CompanyDescription = value
	case FieldPrimaryObjective:
		f.PrimaryObjective = value
	case FieldSecondaryObjectives:
		f.SecondaryObjectives = value
	case FieldUserProfiles:
		f.UserProfiles = value
	case FieldTechnicalRequirements:
		f.TechnicalRequirements = value
	case FieldExistingSystems:
		f.ExistingSystems = value
	case FieldTechnicalConstraints:
		f.TechnicalConstraints = value
	case FieldBudgetMin:
		f.BudgetMin = value
	case FieldBudgetMax:
		f.BudgetMax = value
	case FieldTimeConstraints:
		f.TimeConstraints = value
	case FieldStartDate:
		f.StartDate = value
	case FieldEndDate:
		f.EndDate = value
	case FieldMilestones:
		f.Milestones = value
	}
}

// Fields lists every form field in declaration order.
func Fields() []Field {
	return []Field{
		FieldProjectName,
		FieldProjectType,
		FieldCompanyName,
		FieldCompanyDescription,
		FieldPrimaryObjective,
		FieldSecondaryObjectives,
		FieldUserProfiles,
		FieldTechnicalRequirements,
		FieldExistingSystems,
		FieldTechnicalConstraints,
		FieldBudgetMin,
		FieldBudgetMax,
		FieldTimeConstraints,
		FieldStartDate,
		FieldEndDate,
		FieldMilestones,
	}
}
