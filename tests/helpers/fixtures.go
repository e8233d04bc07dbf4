package helpers

import (
	"github.com/pfa-project/specgen/internal/models"
)

// TestUser represents a test user fixture
type TestUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Default test fixtures
var (
	DefaultTestUser = TestUser{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "test-password-123",
	}
)

// CompleteSpecification builds a fully populated specification the way the
// assembler produces one from a filled-in wizard form.
func CompleteSpecification() models.Specification {
	return models.Specification{
		ProjectName:           "Refonte du site vitrine",
		ProjectType:           "Site web",
		CompanyName:           "Acme SARL",
		CompanyDescription:    "PME du secteur industriel, 50 salariés",
		PrimaryObjective:      "Moderniser l'image de marque",
		Budget:                "5000 - 10000",
		Timeline:              "01/09/2025 - 31/12/2025",
		TechnicalRequirements: "CMS headless, responsive design",
		Sections: []models.Section{
			{Title: "Présentation du projet", Content: "Refonte du site vitrine\n\nPME du secteur industriel, 50 salariés"},
			{Title: "Objectifs", Content: "Moderniser l'image de marque"},
			{Title: "Fonctionnalités principales", Content: "CMS headless, responsive design"},
			{Title: "Budget et délais", Content: "- Budget: 5000 - 10000\n- Délai: 01/09/2025 - 31/12/2025\n- Jalons: Maquettes, MVP, livraison"},
		},
	}
}

// MinimalSpecification builds a specification with only a project name,
// the smallest document a user can save.
func MinimalSpecification() models.Specification {
	return models.Specification{
		ProjectName: "Projet minimal",
		Sections: []models.Section{
			{Title: "Présentation du projet", Content: "Projet minimal"},
			{Title: "Budget et délais", Content: "- Budget:  - \n- Délai:  - \n- Jalons: "},
		},
	}
}
