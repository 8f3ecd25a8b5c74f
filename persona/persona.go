package persona

// Persona is one fixed participant role in a discussion. It is immutable
// after registry construction: focus areas bias what the persona talks
// about, the directive biases how generated responses are framed.
type Persona struct {
	// ID is the unique registry key, e.g. "product_manager".
	ID string
	// Name is the display name used in prompts and rendering.
	Name string
	// Focus is the ordered list of focus areas.
	Focus []string
	// Directive is free text appended to the persona's instruction.
	Directive string
}

// String implements fmt.Stringer.
func (p Persona) String() string {
	return p.Name
}
