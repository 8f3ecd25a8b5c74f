package discussion

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithIndependentRounds makes every persona respond without seeing the other
// statements of the current round: the transcript handed to a generator is
// truncated at the last completed round. The default conditions each turn on
// all earlier turns, current round included.
func WithIndependentRounds() Option {
	return func(c *Coordinator) {
		c.independentRounds = true
	}
}
