// Package renderer renders simulations as Markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSimulation renders a single simulation to a markdown string.
func RenderSimulation(s *Simulation) string {
	partials := map[string]string{
		"simulation_title":   "simulation_title.md",
		"simulation_input":   "simulation_input.md",
		"simulation_summary": "simulation_summary.md",
		"yearly_tranches":    "yearly_tranches.md",
	}
	return renderTemplate("simulation", "simulation.md", partials, s)
}

// RenderDistribution renders a Monte Carlo summary to a markdown string.
func RenderDistribution(d *Distribution) string {
	partials := map[string]string{
		"simulation_title": "simulation_title.md",
		"simulation_input": "simulation_input.md",
	}
	return renderTemplate("distribution", "distribution.md", partials, d)
}

// RenderCatalog renders the drop catalog to a markdown string.
func RenderCatalog(c *Catalog) string {
	return renderTemplate("catalog", "catalog.md", nil, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
