package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfa-project/specgen/internal/document"
	"github.com/pfa-project/specgen/internal/models"
)

// ErrExportFailed wraps any failure to produce an export artifact. On
// error no partial file is left behind.
var ErrExportFailed = errors.New("export failed")

// Exporter turns a specification into a shareable artifact.
type Exporter interface {
	// RenderToFile writes the export document and returns the path of the
	// file it produced.
	RenderToFile(spec models.Specification) (string, error)
	// Share produces the artifact and hands it off to the platform's
	// sharing mechanism.
	Share(spec models.Specification) error
}

// FileExporter writes HTML export documents into a directory. The write
// is atomic: the document lands under its final name only once fully
// written.
type FileExporter struct {
	dir string
	now func() time.Time
}

// NewFileExporter creates an exporter targeting dir. The directory is
// created on first export if it does not exist.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir, now: time.Now}
}

// RenderToFile renders the specification to HTML and writes it under a
// name derived from the project name.
func (e *FileExporter) RenderToFile(spec models.Specification) (string, error) {
	doc, err := document.Render(spec, e.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create export directory: %v", ErrExportFailed, err)
	}

	path := filepath.Join(e.dir, fileName(spec))

	// Write to a temp file in the same directory, then rename into place
	// so a failed export never leaves a truncated document.
	tmp, err := os.CreateTemp(e.dir, ".export-*.html")
	if err != nil {
		return "", fmt.Errorf("%w: failed to create temp file: %v", ErrExportFailed, err)
	}

	if _, err := tmp.WriteString(doc.HTML); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: failed to write document: %v", ErrExportFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: failed to close temp file: %v", ErrExportFailed, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: failed to finalize document: %v", ErrExportFailed, err)
	}

	return path, nil
}

// Share renders the document to a file and opens it with the desktop's
// default handler. On headless systems the file is still produced and
// its path logged for manual sharing.
func (e *FileExporter) Share(spec models.Specification) error {
	path, err := e.RenderToFile(spec)
	if err != nil {
		return err
	}
	return openInBrowser(path)
}

// fileName derives a filesystem-safe name from the project name, falling
// back to a generic one for unnamed drafts.
func fileName(spec models.Specification) string {
	name := strings.TrimSpace(spec.ProjectName)
	if name == "" {
		name = "cahier-des-charges"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "cahier-des-charges"
	}
	return slug + ".html"
}
