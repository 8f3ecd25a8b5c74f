package middleware

import (
	"github.com/roundtable/discussion"
)

// Middleware wraps a ResponseGenerator with cross-cutting behavior.
type Middleware func(discussion.ResponseGenerator) discussion.ResponseGenerator

// Chain applies the middlewares to gen, first middleware outermost.
func Chain(gen discussion.ResponseGenerator, mws ...Middleware) discussion.ResponseGenerator {
	for i := len(mws) - 1; i >= 0; i-- {
		gen = mws[i](gen)
	}
	return gen
}
