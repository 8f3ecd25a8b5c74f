package llm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kratos/blades"
)

// ModelRegistry manages the lifecycle of and access to model providers,
// keyed by persona id.
type ModelRegistry struct {
	mu     sync.RWMutex
	models map[string]blades.ModelProvider
}

// NewModelRegistry creates an empty ModelRegistry.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		models: make(map[string]blades.ModelProvider),
	}
}

// Register registers a model provider for a persona.
func (r *ModelRegistry) Register(personaID string, model blades.ModelProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[personaID] = model
}

// Get retrieves the model provider for a persona.
func (r *ModelRegistry) Get(personaID string) (blades.ModelProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.models[personaID]
	if !ok {
		return nil, fmt.Errorf("model provider for persona %s not found", personaID)
	}
	return model, nil
}

// Close closes all registered models that implement a Close method.
func (r *ModelRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for personaID, m := range r.models {
		if closer, ok := m.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close model %s: %w", personaID, err))
			}
		}
	}

	return errors.Join(errs...)
}
