package customer

import (
	"fmt"
	"strings"
	"time"
)

// Profile accumulates what the dealership knows about one customer across a
// conversation. It is session-scoped state: one conversation, one profile.
type Profile struct {
	Name        string
	ContactInfo string

	BudgetRange         string
	PreferredMake       string
	PreferredColor      string
	BodyStylePreference string
	FuelTypePreference  string

	FamilySize string
	PrimaryUse string

	SafetyPriority   bool
	LuxuryPreference bool
	EcoFriendly      bool

	Needs      []string
	Objections []string
	Interests  []string

	Stage       Stage
	CreatedAt   time.Time
	LastUpdated time.Time
}

func NewProfile() *Profile {
	now := time.Now()
	return &Profile{
		Stage:       StageGreeting,
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// Apply folds one utterance's analysis into the profile, deduplicating the
// accumulated lists.
func (p *Profile) Apply(a Analysis) {
	if a.BudgetRange != "" {
		p.BudgetRange = a.BudgetRange
	}
	p.Interests = mergeUnique(p.Interests, a.Preferences)
	p.Needs = mergeUnique(p.Needs, a.Needs)
	for _, need := range a.Needs {
		switch need {
		case "prioridad en seguridad":
			p.SafetyPriority = true
		case "eficiencia combustible":
			p.EcoFriendly = true
		}
	}
	p.LastUpdated = time.Now()
}

// UpdateStage moves the sales process to the given stage and returns the
// previous one.
func (p *Profile) UpdateStage(stage Stage) Stage {
	previous := p.Stage
	p.Stage = stage
	p.LastUpdated = time.Now()
	return previous
}

// Summary renders the profile for the sales persona.
func (p *Profile) Summary() string {
	var b strings.Builder
	b.WriteString("**PERFIL DEL CLIENTE:**\n")
	if p.Name != "" {
		fmt.Fprintf(&b, "• Nombre: %s\n", p.Name)
	}
	if p.BudgetRange != "" {
		fmt.Fprintf(&b, "• Presupuesto: %s\n", p.BudgetRange)
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "• Intereses: %s\n", strings.Join(p.Interests, ", "))
	}
	if len(p.Needs) > 0 {
		fmt.Fprintf(&b, "• Necesidades: %s\n", strings.Join(p.Needs, ", "))
	}
	fmt.Fprintf(&b, "• Etapa de venta: %s (%d%%)\n", p.Stage, p.Stage.Progress())
	return b.String()
}
