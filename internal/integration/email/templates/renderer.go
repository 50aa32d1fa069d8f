// Package templates renders the operator emails from embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// RunReportTemplate is the name of the recurring run report template.
const RunReportTemplate = "run_report"

// RunReportFailure is one failed recurring entry in a run report.
type RunReportFailure struct {
	RecurringEntryID string
	Code             string
	Message          string
}

// RunReportData feeds the run report template.
type RunReportData struct {
	RunDate  string
	Created  int
	Skipped  int
	Failed   int
	Failures []RunReportFailure
}

// Rendered holds both bodies of a rendered email.
type Rendered struct {
	HTML string
	Text string
}

// Renderer executes the embedded templates. Every template exists as a
// name.html and name.txt pair.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render executes both bodies of the named template.
func (r *Renderer) Render(name string, data any) (Rendered, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Rendered{}, fmt.Errorf("failed to render %s.txt: %w", name, err)
	}
	return Rendered{HTML: html.String(), Text: text.String()}, nil
}
