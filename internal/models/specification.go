package models

// Section is one titled block of content inside a specification document.
// Sections are always derived from form input by the assembler, never built
// directly from raw user text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Specification is the assembled project-requirements document. ID is empty
// for a locally assembled document and set by the backend once persisted.
type Specification struct {
	ID                    string    `json:"id,omitempty"`
	ProjectName           string    `json:"projectName"`
	ProjectType           string    `json:"projectType"`
	CompanyName           string    `json:"companyName"`
	CompanyDescription    string    `json:"companyDescription"`
	PrimaryObjective      string    `json:"primaryObjective"`
	Budget                string    `json:"budget"`
	Timeline              string    `json:"timeline"`
	TechnicalRequirements string    `json:"technicalRequirements"`
	Sections              []Section `json:"sections"`
}

// Persisted reports whether the document has been stored by the backend.
func (s *Specification) Persisted() bool {
	return s.ID != ""
}
