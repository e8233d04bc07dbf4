package document

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/pfa-project/specgen/internal/models"
)

// Placeholder shown for empty metadata values.
const Placeholder = "Non spécifié"

// MetadataField is one labeled entry in the document's metadata block.
type MetadataField struct {
	Label string
	Value string
}

// RenderedDocument carries both presentational forms of a specification:
// the structured preview and the self-contained HTML export markup. The
// two share one semantic structure and differ only in encoding.
type RenderedDocument struct {
	Title       string
	Subtitle    string
	Metadata    []MetadataField
	Sections    []models.Section
	GeneratedAt time.Time
	Footer      string
	HTML        string
}

// multiline escapes section content and preserves line breaks the way the
// export document expects (<br/> between lines).
func multiline(s string) template.HTML {
	lines := strings.Split(s, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(escaped, "<br/>"))
}

var exportTemplate = template.Must(template.New("export").Funcs(template.FuncMap{
	"multiline": multiline,
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Cahier des Charges - {{.Spec.ProjectName}}</title>
    <style>
      body { font-family: 'Helvetica', 'Arial', sans-serif; margin: 0; padding: 0; color: #333; }
      .container { padding: 40px; max-width: 800px; margin: 0 auto; }
      .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #3B82F6; padding-bottom: 20px; }
      h1 { color: #1E40AF; font-size: 28px; margin-bottom: 10px; }
      h2 { color: #3B82F6; font-size: 22px; margin-top: 0; }
      .metadata { display: flex; flex-wrap: wrap; margin-bottom: 30px; background-color: #F9FAFB; padding: 20px; border-radius: 8px; }
      .metadata-item { width: 50%; margin-bottom: 15px; }
      .metadata-label { font-size: 12px; color: #6B7280; margin-bottom: 5px; }
      .metadata-value { font-weight: bold; font-size: 14px; }
      .section { margin-bottom: 25px; }
      h3 { color: #1F2937; font-size: 18px; margin-bottom: 10px; border-bottom: 1px solid #E5E7EB; padding-bottom: 5px; }
      p { font-size: 14px; line-height: 1.6; }
      .footer { margin-top: 50px; text-align: center; font-size: 12px; color: #6B7280; border-top: 1px solid #E5E7EB; padding-top: 20px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>{{.Title}}</h1>
        <h2>{{.Spec.ProjectName}}</h2>
      </div>
      <div class="metadata">
{{- range .Metadata}}
        <div class="metadata-item">
          <div class="metadata-label">{{.Label}}</div>
          <div class="metadata-value">{{.Value}}</div>
        </div>
{{- end}}
      </div>
{{- range .Spec.Sections}}
      <div class="section">
        <h3>{{.Title}}</h3>
        <p>{{multiline .Content}}</p>
      </div>
{{- end}}
      <div class="footer">
        {{.Footer}}
      </div>
    </div>
  </body>
</html>
`))

type exportData struct {
	Title    string
	Spec     models.Specification
	Metadata []MetadataField
	Footer   string
}

// Render produces the preview structure and export markup for a
// specification. now is the generation timestamp stamped into the footer.
// An empty sections list renders a valid document with metadata and footer
// only.
func Render(spec models.Specification, now time.Time) (RenderedDocument, error) {
	metadata := []MetadataField{
		{Label: "Type de projet", Value: orPlaceholder(spec.ProjectType)},
		{Label: "Entreprise", Value: orPlaceholder(spec.CompanyName)},
		{Label: "Budget", Value: orPlaceholder(stripRange(spec.Budget))},
		{Label: "Délai", Value: orPlaceholder(stripRange(spec.Timeline))},
	}

	footer := fmt.Sprintf("Document généré le %s par Spécification Generator",
		now.Format("02/01/2006"))

	data := exportData{
		Title:    "CAHIER DES CHARGES",
		Spec:     spec,
		Metadata: metadata,
		Footer:   footer,
	}

	var buf bytes.Buffer
	if err := exportTemplate.Execute(&buf, data); err != nil {
		return RenderedDocument{}, fmt.Errorf("failed to render export markup: %w", err)
	}

	return RenderedDocument{
		Title:       data.Title,
		Subtitle:    spec.ProjectName,
		Metadata:    metadata,
		Sections:    spec.Sections,
		GeneratedAt: now,
		Footer:      footer,
		HTML:        buf.String(),
	}, nil
}

// orPlaceholder substitutes the literal placeholder for blank values.
func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// stripRange collapses a synthesized "min - max" range whose both ends are
// empty down to "", so it falls back to the placeholder like any other
// unset metadata value.
func stripRange(value string) string {
	if strings.TrimSpace(value) == "-" {
		return ""
	}
	return value
}
