package discussion

import (
	"context"
	"testing"

	"github.com/roundtable/persona"
)

func TestTemplateGenerator_DefaultOutput(t *testing.T) {
	gen := NewTemplateGenerator()
	p := persona.Persona{ID: "product_manager", Name: "Product Manager"}

	got, err := gen.Generate(context.Background(), p, "New billing flow", NewTranscript("New billing flow"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[Product Manager perspective on: New billing flow]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTemplateGenerator_CustomTemplateSeesRound(t *testing.T) {
	gen, err := NewTemplateGeneratorWithTemplate(`{{.Persona.ID}} r{{.Round}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := persona.Persona{ID: "a", Name: "A"}
	prior := NewTranscript("X")
	prior.Turns = []Turn{
		{Persona: "a", Round: 1, Text: "first"},
		{Persona: "b", Round: 1, Text: "first"},
	}

	got, err := gen.Generate(context.Background(), p, "X", prior)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a r2" {
		t.Fatalf("got %q, want %q", got, "a r2")
	}
}

func TestNewTemplateGeneratorWithTemplate_Invalid(t *testing.T) {
	if _, err := NewTemplateGeneratorWithTemplate(`{{.Broken`); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTemplateGenerator_PureFunctionOfInputs(t *testing.T) {
	gen := NewTemplateGenerator()
	p := persona.Persona{ID: "a", Name: "A"}

	first, _ := gen.Generate(context.Background(), p, "X", NewTranscript("X"))
	second, _ := gen.Generate(context.Background(), p, "X", NewTranscript("X"))
	if first != second {
		t.Fatalf("template generator is not deterministic: %q vs %q", first, second)
	}
}
