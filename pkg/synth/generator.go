package synth

import (
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Generator produces every entity of one kind for a run.
//
// Generate must produce exactly count entities unless the generator's
// cardinality is structural (derived from the profile or from a
// prerequisite kind already in the context), in which case count is
// advisory. Generators never fail for a valid (count, context) pair:
// missing prerequisite data degrades to empty foreign-key attributes.
// Every generator stores its result into the context before returning;
// downstream generators and the weaver discover entities through the
// context, not the return value.
type Generator interface {
	Kind() model.Kind
	Generate(count int, gc *Context) []model.Entity
}

// Registry maps entity kinds to their generators. It is built
// explicitly at construction time and passed into the orchestrator;
// there is no process-global registration.
type Registry struct {
	generators map[model.Kind]Generator
}

// NewRegistry creates an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[model.Kind]Generator)}
}

// Register adds a generator, replacing any prior generator for the kind.
func (r *Registry) Register(g Generator) {
	r.generators[g.Kind()] = g
}

// Lookup returns the generator for a kind, if one is registered.
func (r *Registry) Lookup(kind model.Kind) (Generator, bool) {
	g, ok := r.generators[kind]
	return g, ok
}

// Kinds returns the registered kinds in canonical order.
func (r *Registry) Kinds() []model.Kind {
	out := make([]model.Kind, 0, len(r.generators))
	for _, kind := range model.AllKinds() {
		if _, ok := r.generators[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

// DefaultRegistry builds the full production registry: the twelve
// primary generators plus one ontology generator per extended kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&LocationGenerator{})
	r.Register(&DepartmentGenerator{})
	r.Register(&RoleGenerator{})
	r.Register(&NetworkGenerator{})
	r.Register(&PersonGenerator{})
	r.Register(&SystemGenerator{})
	r.Register(&VendorGenerator{})
	r.Register(&DataAssetGenerator{})
	r.Register(&PolicyGenerator{})
	r.Register(&VulnerabilityGenerator{})
	r.Register(&ThreatActorGenerator{})
	r.Register(&IncidentGenerator{})
	for _, kind := range model.ExtendedKinds() {
		r.Register(NewOntologyGenerator(kind))
	}
	return r
}
