package persona

import (
	"github.com/roundtable/internal/consts"
)

// Builtin returns the five planning-review personas in speaking order.
// The slice is freshly allocated on every call.
func Builtin() []Persona {
	return []Persona{
		{
			ID:   consts.PersonaProductManager,
			Name: "Product Manager",
			Focus: []string{
				"User needs and business requirements",
				"Market considerations and competitive analysis",
				"Feature prioritization and roadmap planning",
				"ROI and business value assessment",
				"Stakeholder alignment and communication",
			},
			Directive: "Ask questions about user impact, business value, and market fit. " +
				"Challenge technical solutions from a business perspective.",
		},
		{
			ID:   consts.PersonaArchitect,
			Name: "System Architect",
			Focus: []string{
				"High-level system design and architecture patterns",
				"Scalability, performance, and reliability concerns",
				"Technology selection and integration strategies",
				"Security and compliance considerations",
				"Long-term technical vision and evolution",
			},
			Directive: "Evaluate technical feasibility and architectural soundness. " +
				"Propose design patterns and architectural solutions.",
		},
		{
			ID:   consts.PersonaDeveloper,
			Name: "Senior Developer",
			Focus: []string{
				"Implementation complexity and effort estimation",
				"Code quality, maintainability, and technical debt",
				"Development workflow and tooling requirements",
				"Performance optimization and debugging considerations",
				"Team productivity and development experience",
			},
			Directive: "Assess implementation feasibility and development challenges. " +
				"Suggest practical solutions and alternatives.",
		},
		{
			ID:   consts.PersonaQAEngineer,
			Name: "QA Engineer",
			Focus: []string{
				"Testing strategy and quality assurance planning",
				"Risk assessment and edge case identification",
				"Automation possibilities and test coverage",
				"User experience and usability validation",
				"Performance and reliability testing needs",
			},
			Directive: "Identify quality risks and testing requirements. " +
				"Suggest quality gates and validation approaches.",
		},
		{
			ID:   consts.PersonaProjectManager,
			Name: "Project Manager",
			Focus: []string{
				"Timeline estimation and milestone planning",
				"Resource allocation and team coordination",
				"Risk identification and mitigation strategies",
				"Communication and stakeholder management",
				"Delivery planning and scope management",
			},
			Directive: "Assess project feasibility and coordination needs. " +
				"Identify risks, dependencies, and timeline considerations.",
		},
	}
}
