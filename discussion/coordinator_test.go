package discussion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/roundtable/persona"
)

func twoPersonaRegistry(t *testing.T) *persona.Registry {
	t.Helper()
	r, err := persona.NewRegistry([]persona.Persona{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return r
}

func echoGenerator() ResponseGenerator {
	return GeneratorFunc(func(_ context.Context, p persona.Persona, topic string, _ *Transcript) (string, error) {
		return fmt.Sprintf("%s:%s", p.Name, topic), nil
	})
}

func TestRun_TurnCountAndOrder(t *testing.T) {
	c, err := NewCoordinator(twoPersonaRegistry(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr, err := c.Run(context.Background(), "X", 2, echoGenerator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tr.Len() != 4 {
		t.Fatalf("expected 4 turns, got %d", tr.Len())
	}

	wantPersonas := []string{"a", "b", "a", "b"}
	wantRounds := []int{1, 1, 2, 2}
	wantTexts := []string{"A:X", "B:X", "A:X", "B:X"}
	for i, turn := range tr.Turns {
		if turn.Persona != wantPersonas[i] {
			t.Fatalf("turn %d: persona %s, want %s", i, turn.Persona, wantPersonas[i])
		}
		if turn.Round != wantRounds[i] {
			t.Fatalf("turn %d: round %d, want %d", i, turn.Round, wantRounds[i])
		}
		if turn.Text != wantTexts[i] {
			t.Fatalf("turn %d: text %q, want %q", i, turn.Text, wantTexts[i])
		}
	}
}

func TestRun_InvalidRounds(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	for _, rounds := range []int{0, -1, -100} {
		_, err := c.Run(context.Background(), "X", rounds, echoGenerator())
		if !errors.Is(err, ErrInvalidRounds) {
			t.Fatalf("rounds=%d: expected ErrInvalidRounds, got %v", rounds, err)
		}
	}
}

func TestRun_NilGenerator(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))
	if _, err := c.Run(context.Background(), "X", 1, nil); err == nil {
		t.Fatalf("expected error for nil generator")
	}
}

func TestRun_FailureIsolatedToSingleTurn(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	boom := errors.New("backend unavailable")
	gen := GeneratorFunc(func(_ context.Context, p persona.Persona, topic string, prior *Transcript) (string, error) {
		// Fail only persona b in round 2, i.e. the fourth turn.
		if p.ID == "b" && prior.Len() == 3 {
			return "", boom
		}
		return p.Name, nil
	})

	tr, err := c.Run(context.Background(), "X", 2, gen)
	if err != nil {
		t.Fatalf("run must not abort on a single turn failure: %v", err)
	}

	if tr.Len() != 4 {
		t.Fatalf("expected 4 turns, got %d", tr.Len())
	}

	failed := tr.Failed()
	if len(failed) != 1 {
		t.Fatalf("expected exactly 1 failed turn, got %d", len(failed))
	}
	if failed[0].Persona != "b" || failed[0].Round != 2 {
		t.Fatalf("wrong turn failed: %#v", failed[0])
	}
	if failed[0].Err != boom.Error() {
		t.Fatalf("failed turn should carry the error description, got %q", failed[0].Err)
	}
	if failed[0].Text != "" {
		t.Fatalf("failed turn must not carry text, got %q", failed[0].Text)
	}

	for i, turn := range tr.Turns[:3] {
		if turn.Failed() {
			t.Fatalf("turn %d should have succeeded: %#v", i, turn)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	first, err := c.Run(context.Background(), "X", 3, echoGenerator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Run(context.Background(), "X", 3, echoGenerator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Turns {
		a, b := first.Turns[i], second.Turns[i]
		if a.Persona != b.Persona || a.Round != b.Round || a.Text != b.Text || a.Err != b.Err {
			t.Fatalf("turn %d differs: %#v vs %#v", i, a, b)
		}
	}
}

func TestRun_CancellationAtTurnBoundary(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	gen := GeneratorFunc(func(_ context.Context, p persona.Persona, _ string, _ *Transcript) (string, error) {
		calls++
		if calls == 2 {
			// Cancel mid-run; the coordinator must notice before turn 3.
			cancel()
		}
		return p.Name, nil
	})

	tr, err := c.Run(ctx, "X", 2, gen)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 generation calls, got %d", calls)
	}
	if tr.Len() != 2 {
		t.Fatalf("expected the partial transcript with 2 turns, got %d", tr.Len())
	}
	for _, turn := range tr.Turns {
		if turn.Failed() {
			t.Fatalf("completed turns must not be marked failed: %#v", turn)
		}
	}
}

func TestRun_ConditionedVisibility(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	var visible []int
	gen := GeneratorFunc(func(_ context.Context, p persona.Persona, _ string, prior *Transcript) (string, error) {
		visible = append(visible, prior.Len())
		return p.Name, nil
	})

	if _, err := c.Run(context.Background(), "X", 2, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Default mode: turn i sees all turns 1..i-1, current round included.
	want := []int{0, 1, 2, 3}
	for i := range want {
		if visible[i] != want[i] {
			t.Fatalf("call %d saw %d prior turns, want %d", i, visible[i], want[i])
		}
	}
}

func TestRun_IndependentRoundsVisibility(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t), WithIndependentRounds())

	var visible []int
	gen := GeneratorFunc(func(_ context.Context, p persona.Persona, _ string, prior *Transcript) (string, error) {
		visible = append(visible, prior.Len())
		return p.Name, nil
	})

	if _, err := c.Run(context.Background(), "X", 2, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Independent mode: only completed rounds are visible.
	want := []int{0, 0, 2, 2}
	for i := range want {
		if visible[i] != want[i] {
			t.Fatalf("call %d saw %d prior turns, want %d", i, visible[i], want[i])
		}
	}
}

func TestRun_GeneratorCannotMutateTranscript(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))

	gen := GeneratorFunc(func(_ context.Context, p persona.Persona, _ string, prior *Transcript) (string, error) {
		for i := range prior.Turns {
			prior.Turns[i].Text = "tampered"
		}
		return p.Name, nil
	})

	tr, err := c.Run(context.Background(), "X", 1, gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Turns[0].Text != "A" {
		t.Fatalf("generator tampered with the live transcript: %q", tr.Turns[0].Text)
	}
}

func TestNewCoordinator_NilRegistry(t *testing.T) {
	if _, err := NewCoordinator(nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestTranscript_Helpers(t *testing.T) {
	c, _ := NewCoordinator(twoPersonaRegistry(t))
	tr, _ := c.Run(context.Background(), "X", 3, echoGenerator())

	if tr.Rounds() != 3 {
		t.Fatalf("expected 3 rounds, got %d", tr.Rounds())
	}
	second := tr.Round(2)
	if len(second) != 2 {
		t.Fatalf("expected 2 turns in round 2, got %d", len(second))
	}
	if second[0].Persona != "a" || second[1].Persona != "b" {
		t.Fatalf("round 2 out of order: %#v", second)
	}
	if tr.ID == "" {
		t.Fatalf("transcript must carry a run id")
	}
	if tr.Topic != "X" {
		t.Fatalf("transcript topic %q, want X", tr.Topic)
	}
}
