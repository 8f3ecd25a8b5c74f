package discussion

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one persona's contribution in one round. A turn either carries the
// generated text or, when the generator failed, the error description in Err.
// Turns are immutable once appended and owned by their Transcript.
type Turn struct {
	// Persona is the registry id of the speaker.
	Persona string
	// Round is 1-based and contiguous across the transcript.
	Round int
	// Text is the generated contribution. Empty when the turn failed.
	Text string
	// Err holds the generation error description for a failed turn.
	Err string
	// CreatedAt records when the turn was appended.
	CreatedAt time.Time
}

// Failed reports whether this is a failed-turn sentinel.
func (t Turn) Failed() bool {
	return t.Err != ""
}

// Transcript is the ordered record of all turns of one discussion run.
// Insertion order is chronological: the coordinator is its only writer for
// the run's duration, after which it is handed to the caller.
type Transcript struct {
	// ID uniquely identifies the discussion run.
	ID string
	// Topic is the discussion topic the run was started with.
	Topic string
	// Turns in chronological order.
	Turns []Turn
}

// NewTranscript returns an empty transcript for the given topic.
func NewTranscript(topic string) *Transcript {
	return &Transcript{
		ID:    uuid.NewString(),
		Topic: topic,
	}
}

// Len returns the number of recorded turns.
func (tr *Transcript) Len() int {
	return len(tr.Turns)
}

// Round returns the turns of the given 1-based round, in speaking order.
func (tr *Transcript) Round(n int) []Turn {
	var out []Turn
	for _, t := range tr.Turns {
		if t.Round == n {
			out = append(out, t)
		}
	}
	return out
}

// Rounds returns the highest round number present, 0 for an empty transcript.
func (tr *Transcript) Rounds() int {
	max := 0
	for _, t := range tr.Turns {
		if t.Round > max {
			max = t.Round
		}
	}
	return max
}

// Failed returns the failed-turn sentinels, in chronological order.
func (tr *Transcript) Failed() []Turn {
	var out []Turn
	for _, t := range tr.Turns {
		if t.Failed() {
			out = append(out, t)
		}
	}
	return out
}

// snapshot returns a read-only view of the first n turns. Generators receive
// snapshots so a misbehaving implementation cannot disturb the live
// transcript.
func (tr *Transcript) snapshot(n int) *Transcript {
	turns := make([]Turn, n)
	copy(turns, tr.Turns[:n])
	return &Transcript{
		ID:    tr.ID,
		Topic: tr.Topic,
		Turns: turns,
	}
}
