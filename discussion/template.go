package discussion

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/roundtable/persona"
)

// DefaultTemplate mirrors the shape of a placeholder model reply. It is a
// pure function of persona and topic, which makes full runs reproducible.
const DefaultTemplate = `[{{.Persona.Name}} perspective on: {{.Topic}}]`

// TemplateGenerator is the deterministic ResponseGenerator: it renders a
// text/template instead of calling a model. Useful for dry runs and as the
// reference implementation in tests.
type TemplateGenerator struct {
	tmpl *template.Template
}

// templateData is the data handed to the response template.
type templateData struct {
	Persona persona.Persona
	Topic   string
	Round   int
	Prior   *Transcript
}

// NewTemplateGenerator returns a generator rendering DefaultTemplate.
func NewTemplateGenerator() *TemplateGenerator {
	g, err := NewTemplateGeneratorWithTemplate(DefaultTemplate)
	if err != nil {
		panic(err)
	}
	return g
}

// NewTemplateGeneratorWithTemplate returns a generator rendering the given
// template. The template may reference .Persona, .Topic, .Round and .Prior.
func NewTemplateGeneratorWithTemplate(text string) (*TemplateGenerator, error) {
	tmpl, err := template.New("response").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse response template: %w", err)
	}
	return &TemplateGenerator{tmpl: tmpl}, nil
}

// Generate implements ResponseGenerator.
func (g *TemplateGenerator) Generate(_ context.Context, p persona.Persona, topic string, prior *Transcript) (string, error) {
	// Each persona speaks once per round, so its prior turn count gives the
	// current round regardless of the conditioning mode.
	round := 1
	for _, t := range prior.Turns {
		if t.Persona == p.ID {
			round++
		}
	}

	var buf bytes.Buffer
	err := g.tmpl.Execute(&buf, templateData{
		Persona: p,
		Topic:   topic,
		Round:   round,
		Prior:   prior,
	})
	if err != nil {
		return "", fmt.Errorf("render response template: %w", err)
	}
	return buf.String(), nil
}
