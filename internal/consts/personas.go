package consts

const (
	PersonaProductManager = "product_manager"
	PersonaArchitect      = "architect"
	PersonaDeveloper      = "developer"
	PersonaQAEngineer     = "qa_engineer"
	PersonaProjectManager = "project_manager"
)

const (
	// DefaultRounds is the number of discussion rounds used when the
	// configuration does not specify one.
	DefaultRounds = 3

	// DefaultTopic is used when neither the flag nor the config name a topic.
	DefaultTopic = "Implementing a new user authentication system"
)

// BuiltinPersonaOrder fixes the speaking order of the builtin personas.
// Registry order defines turn order within every round, so this must never
// depend on map iteration.
var BuiltinPersonaOrder = []string{
	PersonaProductManager,
	PersonaArchitect,
	PersonaDeveloper,
	PersonaQAEngineer,
	PersonaProjectManager,
}
