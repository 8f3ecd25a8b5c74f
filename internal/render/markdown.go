package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roundtable/discussion"
	"github.com/roundtable/persona"
)

const (
	markdownHeaderV1        = "<!-- roundtable-discussion:v1 -->"
	beginDiscussionJSONDump = "<!-- BEGIN_ROUNDTABLE_DISCUSSION_JSON -->"
	endDiscussionJSONDump   = "<!-- END_ROUNDTABLE_DISCUSSION_JSON -->"
)

// DiscussionDumpV1 is the canonical serialized form of a transcript.
type DiscussionDumpV1 struct {
	DiscussionID string   `json:"discussion_id"`
	Topic        string   `json:"topic"`
	Rounds       int      `json:"rounds"`
	Turns        []TurnV1 `json:"turns"`
}

// TurnV1 is one serialized turn.
type TurnV1 struct {
	Persona string `json:"persona"`
	Name    string `json:"name,omitempty"`
	Round   int    `json:"round"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BuildDumpV1 converts a transcript into its serialized form. The registry
// supplies display names; turns whose persona is no longer registered keep
// only the id.
func BuildDumpV1(tr *discussion.Transcript, registry *persona.Registry) (DiscussionDumpV1, error) {
	if tr == nil {
		return DiscussionDumpV1{}, fmt.Errorf("transcript is nil")
	}

	turns := make([]TurnV1, 0, tr.Len())
	for _, t := range tr.Turns {
		v := TurnV1{
			Persona: t.Persona,
			Round:   t.Round,
			Text:    t.Text,
			Error:   t.Err,
		}
		if registry != nil {
			if p, err := registry.Get(t.Persona); err == nil {
				v.Name = p.Name
			}
		}
		turns = append(turns, v)
	}

	return DiscussionDumpV1{
		DiscussionID: tr.ID,
		Topic:        tr.Topic,
		Rounds:       tr.Rounds(),
		Turns:        turns,
	}, nil
}

// EncodeMarkdownV1 renders the dump as markdown: a version marker, one
// section per round with one sub-section per speaker, and the JSON dump
// embedded in comment markers so the document can be decoded again.
func EncodeMarkdownV1(dump DiscussionDumpV1) ([]byte, error) {
	body, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(markdownHeaderV1)
	buf.WriteString("\n\n")

	if strings.TrimSpace(dump.Topic) != "" {
		buf.WriteString("# ")
		buf.WriteString(strings.TrimSpace(dump.Topic))
		buf.WriteString("\n\n")
	}

	round := 0
	for _, t := range dump.Turns {
		if t.Round != round {
			round = t.Round
			fmt.Fprintf(&buf, "## Round %d\n\n", round)
		}

		speaker := t.Name
		if speaker == "" {
			speaker = t.Persona
		}
		buf.WriteString("### ")
		buf.WriteString(speaker)
		buf.WriteString("\n\n")

		if t.Error != "" {
			fmt.Fprintf(&buf, "_generation failed: %s_\n\n", t.Error)
			continue
		}
		buf.WriteString("```text\n")
		buf.WriteString(t.Text)
		buf.WriteString("\n```\n\n")
	}

	buf.WriteString(beginDiscussionJSONDump)
	buf.WriteString("\n")
	buf.Write(body)
	buf.WriteString("\n")
	buf.WriteString(endDiscussionJSONDump)
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// DecodeMarkdownV1 extracts the embedded JSON dump from a rendered document.
func DecodeMarkdownV1(markdown []byte) (DiscussionDumpV1, error) {
	content := string(markdown)

	begin := strings.Index(content, beginDiscussionJSONDump)
	if begin < 0 {
		return DiscussionDumpV1{}, fmt.Errorf("missing json dump begin marker")
	}
	begin += len(beginDiscussionJSONDump)

	end := strings.Index(content, endDiscussionJSONDump)
	if end < 0 || end < begin {
		return DiscussionDumpV1{}, fmt.Errorf("missing json dump end marker")
	}

	raw := strings.TrimSpace(content[begin:end])
	var dump DiscussionDumpV1
	if err := json.Unmarshal([]byte(raw), &dump); err != nil {
		return DiscussionDumpV1{}, err
	}
	return dump, nil
}
