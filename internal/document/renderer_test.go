package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-project/specgen/internal/models"
)

var renderTime = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestRenderMetadataPlaceholders(t *testing.T) {
	spec := models.Specification{
		ProjectName: "Portail client",
		ProjectType: "",
		CompanyName: "TechSolutions SAS",
		Budget:      " - ",
		Timeline:    "01/01/2025 - 31/12/2025",
	}

	doc, err := Render(spec, renderTime)
	require.NoError(t, err)

	require.Len(t, doc.Metadata, 4)
	assert.Equal(t, "Type de projet", doc.Metadata[0].Label)
	assert.Equal(t, Placeholder, doc.Metadata[0].Value)
	assert.Equal(t, "TechSolutions SAS", doc.Metadata[1].Value)
	assert.Equal(t, Placeholder, doc.Metadata[2].Value, "an all-empty budget range falls back")
	assert.Equal(t, "01/01/2025 - 31/12/2025", doc.Metadata[3].Value)
}

func TestRenderNonEmptyValueShownVerbatim(t *testing.T) {
	spec := models.Specification{
		ProjectName: "Portail client",
		ProjectType: "Site web",
		Budget:      "5000 - 10000",
	}

	doc, err := Render(spec, renderTime)
	require.NoError(t, err)
	assert.Equal(t, "Site web", doc.Metadata[0].Value)
	assert.Equal(t, "5000 - 10000", doc.Metadata[2].Value)
}

func TestRenderHeaderAndFooter(t *testing.T) {
	spec := models.Specification{ProjectName: "Portail client"}

	doc, err := Render(spec, renderTime)
	require.NoError(t, err)

	assert.Equal(t, "CAHIER DES CHARGES", doc.Title)
	assert.Equal(t, "Portail client", doc.Subtitle)
	assert.Equal(t, renderTime, doc.GeneratedAt)
	assert.Equal(t, "Document généré le 15/03/2025 par Spécification Generator", doc.Footer)
}

func TestRenderExportMarkup(t *testing.T) {
	spec := models.Specification{
		ProjectName: "Portail client",
		ProjectType: "Site web",
		CompanyName: "TechSolutions SAS",
		Budget:      "5000 - 10000",
		Timeline:    "01/01/2025 - 31/12/2025",
		Sections: []models.Section{
			{Title: SectionObjectives, Content: "Ligne un\nLigne deux"},
		},
	}

	doc, err := Render(spec, renderTime)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.HTML, "<!DOCTYPE html>"))
	assert.Contains(t, doc.HTML, "<h1>CAHIER DES CHARGES</h1>")
	assert.Contains(t, doc.HTML, "<h2>Portail client</h2>")
	assert.Contains(t, doc.HTML, "<h3>Objectifs</h3>")
	assert.Contains(t, doc.HTML, "Ligne un<br/>Ligne deux")
	assert.Contains(t, doc.HTML, "5000 - 10000")
	assert.Contains(t, doc.HTML, doc.Footer)
}

func TestRenderEscapesUserContent(t *testing.T) {
	spec := models.Specification{
		ProjectName: "<script>alert(1)</script>",
		Sections: []models.Section{
			{Title: SectionObjectives, Content: "a < b && c > d"},
		},
	}

	doc, err := Render(spec, renderTime)
	require.NoError(t, err)
	assert.NotContains(t, doc.HTML, "<script>alert(1)</script>")
	assert.Contains(t, doc.HTML, "a &lt; b")
}

func TestRenderEmptySections(t *testing.T) {
	doc, err := Render(models.Specification{ProjectName: "Vide"}, renderTime)
	require.NoError(t, err)

	assert.Empty(t, doc.Sections)
	assert.NotContains(t, doc.HTML, "<h3>")
	assert.Contains(t, doc.HTML, "metadata")
	assert.Contains(t, doc.HTML, doc.Footer)
}
