package consts

import (
	"bytes"
	"text/template"
)

// PersonaInstructionTemplate renders the system instruction for a persona
// agent from its display name, focus areas and behavioral directive.
const PersonaInstructionTemplate = `You are the {{.Name}} in a planning and design review discussion.

Your focus areas:
{{range .Focus}}- {{.}}
{{end}}
{{.Directive}}

Contribution rules:
- Speak only from your own perspective and expertise.
- Keep each contribution to a few focused paragraphs.
- When earlier statements from this discussion are provided, build on them:
  agree, challenge, or refine, but do not repeat them.`

// TurnPromptTemplate renders the per-turn user prompt: the topic, the current
// round, and the statements made so far.
const TurnPromptTemplate = `Discussion topic: {{.Topic}}

This is round {{.Round}} of the discussion.
{{if .Entries}}
Statements so far:
{{range .Entries}}
[{{.Speaker}}]{{if .Failed}} (no statement, generation failed){{else}}
{{.Text}}{{end}}
{{end}}{{end}}
Give your contribution for this round.`

var (
	personaInstructionTmpl = template.Must(template.New("persona_instruction").Parse(PersonaInstructionTemplate))
	turnPromptTmpl         = template.Must(template.New("turn_prompt").Parse(TurnPromptTemplate))
)

// TranscriptEntry is a rendered view of an earlier turn, decoupled from the
// discussion types so prompt building stays free of import cycles.
type TranscriptEntry struct {
	Speaker string
	Text    string
	Failed  bool
}

// BuildPersonaInstruction renders the system instruction for one persona.
func BuildPersonaInstruction(name string, focus []string, directive string) (string, error) {
	var buf bytes.Buffer
	err := personaInstructionTmpl.Execute(&buf, map[string]any{
		"Name":      name,
		"Focus":     focus,
		"Directive": directive,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildTurnPrompt renders the prompt handed to a persona for one turn.
func BuildTurnPrompt(topic string, round int, entries []TranscriptEntry) (string, error) {
	var buf bytes.Buffer
	err := turnPromptTmpl.Execute(&buf, map[string]any{
		"Topic":   topic,
		"Round":   round,
		"Entries": entries,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
