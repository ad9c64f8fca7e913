package synth

import (
	"fmt"
	"time"

	"github.com/dd0wney/cluso-synthgraph/pkg/logging"
	"github.com/dd0wney/cluso-synthgraph/pkg/metrics"
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// GraphLoader receives generated entities and relationships in bulk.
// *graph.Graph satisfies it; so does anything backed by a remote store.
type GraphLoader interface {
	AddEntitiesBulk(entities []model.Entity) ([]string, error)
	AddRelationshipsBulk(relationships []*model.Relationship) ([]string, error)
}

// Orchestrator drives a full generation run: entity generation in
// dependency order, relationship weaving, and optional quality scoring.
type Orchestrator struct {
	profile  *Profile
	loader   GraphLoader
	registry *Registry
	weaver   *Weaver
	logger   logging.Logger
	metrics  *metrics.Collector
	seed     *int64

	scoreQuality bool
	scorer       ScorerConfig

	gc     *Context
	report *QualityReport
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSeed pins the run to a deterministic random sequence. Two runs
// with the same profile and seed produce identical graphs.
func WithSeed(seed int64) Option {
	return func(o *Orchestrator) {
		s := seed
		o.seed = &s
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithMetrics attaches a metrics collector; nil disables instrumentation.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *Orchestrator) { o.metrics = collector }
}

// WithQualityScoring enables the post-run quality assessment.
func WithQualityScoring(cfg ScorerConfig) Option {
	return func(o *Orchestrator) {
		o.scoreQuality = true
		o.scorer = cfg
	}
}

// WithRegistry swaps the generator registry, e.g. to add custom kinds
// or stub out a built-in generator in tests.
func WithRegistry(registry *Registry) Option {
	return func(o *Orchestrator) { o.registry = registry }
}

// NewOrchestrator validates the profile and prepares a run. A profile
// that fails validation is the only fatal input: everything downstream
// degrades by skipping, not failing.
func NewOrchestrator(profile *Profile, loader GraphLoader, opts ...Option) (*Orchestrator, error) {
	if profile == nil {
		return nil, fmt.Errorf("orchestrator: profile is required")
	}
	if loader == nil {
		return nil, fmt.Errorf("orchestrator: graph loader is required")
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("orchestrator: invalid profile %q: %w", profile.Name, err)
	}

	o := &Orchestrator{
		profile:  profile,
		loader:   loader,
		registry: DefaultRegistry(),
		weaver:   NewWeaver(),
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// generationPhase pairs a kind with the count it should produce for
// this profile. Order matters: later kinds reference earlier ones.
type generationPhase struct {
	kind  model.Kind
	count int
}

func (o *Orchestrator) phases(gc *Context) []generationPhase {
	p := o.profile
	coeff := p.Coefficient()

	scaled := func(r CountRange) int {
		n := r.Resolve(gc.Rand)
		return int(float64(n) * coeff)
	}

	phases := []generationPhase{
		{model.KindLocation, p.LocationCount},
		{model.KindDepartment, len(p.Departments)},
		{model.KindRole, 1}, // structural: generator derives its own count
		{model.KindNetwork, p.Networks.Resolve(gc.Rand)},
		{model.KindPerson, p.EmployeeCount},
		{model.KindSystem, scaled(p.Systems)},
		{model.KindVendor, p.Vendors.Resolve(gc.Rand)},
		{model.KindDataAsset, scaled(p.DataAssets)},
		{model.KindPolicy, p.Policies.Resolve(gc.Rand)},
		{model.KindVulnerability, scaled(p.Vulnerabilities)},
		{model.KindThreatActor, p.ThreatActors.Resolve(gc.Rand)},
		{model.KindIncident, scaled(p.Incidents)},
	}

	for _, kind := range model.ExtendedKinds() {
		r, ok := p.OntologyCounts[kind]
		if !ok || r.IsZero() {
			continue
		}
		phases = append(phases, generationPhase{kind, r.Resolve(gc.Rand)})
	}
	return phases
}

// Generate runs the full pipeline and returns per-kind entity counts
// plus a "_relationships" total. Kinds with no registered generator or
// a non-positive count are skipped.
func (o *Orchestrator) Generate() (map[string]int, error) {
	started := time.Now()

	gc := NewContext(o.profile, o.seed)
	o.gc = gc
	counts := make(map[string]int)

	o.logger.Info("generation started",
		logging.String("profile", o.profile.Name),
		logging.Int("employees", o.profile.EmployeeCount),
	)

	for _, phase := range o.phases(gc) {
		if phase.count <= 0 {
			continue
		}
		gen, ok := o.registry.Lookup(phase.kind)
		if !ok {
			o.logger.Warn("no generator registered, skipping",
				logging.Kind(string(phase.kind)))
			continue
		}

		entities := gen.Generate(phase.count, gc)
		if len(entities) == 0 {
			continue
		}
		if _, err := o.loader.AddEntitiesBulk(entities); err != nil {
			return counts, fmt.Errorf("orchestrator: loading %s entities: %w", phase.kind, err)
		}

		counts[string(phase.kind)] = len(entities)
		o.metrics.EntitiesGenerated(string(phase.kind), len(entities))
		o.logger.Debug("entities generated",
			logging.Kind(string(phase.kind)),
			logging.Int("count", len(entities)),
		)
	}

	relationships := o.weaver.WeaveAll(gc)
	if len(relationships) > 0 {
		if _, err := o.loader.AddRelationshipsBulk(relationships); err != nil {
			return counts, fmt.Errorf("orchestrator: loading relationships: %w", err)
		}
	}
	counts["_relationships"] = len(relationships)
	for _, rel := range relationships {
		o.metrics.RelationshipWoven(string(rel.Kind))
	}

	if o.scoreQuality {
		report := AssessQuality(gc, o.scorer)
		o.report = &report
		o.metrics.QualityScores(report.ComponentScores())
		o.logger.Info("quality assessed",
			logging.Float64("overall", report.Overall),
			logging.Int("entities", report.EntitiesAssessed),
		)
	}

	elapsed := time.Since(started)
	o.metrics.GenerationCompleted(elapsed, gc.TotalEntities(), len(relationships))
	o.logger.Info("generation finished",
		logging.Int("entities", gc.TotalEntities()),
		logging.Int("relationships", len(relationships)),
		logging.Duration("elapsed", elapsed),
	)

	return counts, nil
}

// Context exposes the generation context of the last run, primarily so
// callers can export or inspect what was produced.
func (o *Orchestrator) Context() *Context {
	return o.gc
}

// QualityReport returns the last run's assessment, or nil when quality
// scoring was not enabled.
func (o *Orchestrator) QualityReport() *QualityReport {
	return o.report
}
