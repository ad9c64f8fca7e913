package synth

import (
	"time"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Context is the per-run scratch space shared by the generators and the
// weaver: the profile, the seeded value source, and every entity
// produced so far keyed by kind. It is owned by exactly one
// orchestrator run and discarded afterwards.
type Context struct {
	Profile *Profile
	Rand    *Source

	// Seed is the seed this run was constructed with, nil when the run
	// was seeded from the clock.
	Seed *int64

	now       time.Time
	generated map[model.Kind][]model.Entity
	idPool    map[model.Kind][]string
}

// NewContext builds a run context. When seed is non-nil all randomness
// in the run, including UUID assignment, derives from it.
func NewContext(profile *Profile, seed *int64) *Context {
	effective := time.Now().UnixNano()
	if seed != nil {
		effective = *seed
	}
	return &Context{
		Profile:   profile,
		Rand:      NewSource(effective),
		Seed:      seed,
		now:       time.Now().UTC().Truncate(time.Second),
		generated: make(map[model.Kind][]model.Entity),
		idPool:    make(map[model.Kind][]string),
	}
}

// Now returns the run's fixed clock. Every record generated in one run
// carries the same creation instant.
func (gc *Context) Now() time.Time {
	return gc.now
}

// Store replaces the kind's slot with the given entities and rebuilds
// the matching id pool. Each kind is written at most once per run; the
// orchestrator's fixed dependency order guarantees consumers run after
// their producer.
func (gc *Context) Store(kind model.Kind, ents []model.Entity) {
	ids := make([]string, 0, len(ents))
	for _, ent := range ents {
		ids = append(ids, ent.EntityID())
	}
	gc.generated[kind] = ents
	gc.idPool[kind] = ids
}

// Entities returns the stored entities for a kind in generation order,
// or an empty slice when the kind was never generated.
func (gc *Context) Entities(kind model.Kind) []model.Entity {
	if ents, ok := gc.generated[kind]; ok {
		return ents
	}
	return []model.Entity{}
}

// IDs returns the stored ids for a kind in generation order, or an
// empty slice when the kind was never generated.
func (gc *Context) IDs(kind model.Kind) []string {
	if ids, ok := gc.idPool[kind]; ok {
		return ids
	}
	return []string{}
}

// Kinds returns every kind with at least one stored entity, in the
// canonical kind order.
func (gc *Context) Kinds() []model.Kind {
	out := make([]model.Kind, 0, len(gc.generated))
	for _, kind := range model.AllKinds() {
		if len(gc.generated[kind]) > 0 {
			out = append(out, kind)
		}
	}
	return out
}

// TotalEntities returns the number of entities stored across all kinds.
func (gc *Context) TotalEntities() int {
	total := 0
	for _, ents := range gc.generated {
		total += len(ents)
	}
	return total
}
