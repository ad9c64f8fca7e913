package synth

import (
	"fmt"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// OntologyGenerator covers the extended enterprise-ontology kinds with
// a single parameterized generator. Records are Generic: their typed
// attributes live in the open Attrs map under the keys set below.
type OntologyGenerator struct {
	kind model.Kind
}

// NewOntologyGenerator builds a generator for one extended kind.
func NewOntologyGenerator(kind model.Kind) *OntologyGenerator {
	return &OntologyGenerator{kind: kind}
}

func (g *OntologyGenerator) Kind() model.Kind { return g.kind }

func (g *OntologyGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		ent := &model.Generic{Base: model.NewBase(gc.Rand.UUID(), g.kind, "", gc.Now())}
		g.populate(ent, i, gc)
		if ent.Description == "" {
			ent.Description = fmt.Sprintf("%s record %s tracked in the enterprise inventory. %s",
				titleCase(string(g.kind)), ent.Name, gc.Rand.Sentence(6))
		}
		ent.Tags = append(ent.Tags, string(g.kind))
		out = append(out, ent)
	}
	gc.Store(g.kind, out)
	return out
}

func (g *OntologyGenerator) populate(ent *model.Generic, i int, gc *Context) {
	r := gc.Rand
	switch g.kind {
	case model.KindApplication:
		ent.Name = fmt.Sprintf("%s-app", r.Word())
		ent.Attrs["language"] = Choice(r, []string{"go", "java", "python", "typescript", "kotlin"})
		ent.Attrs["tier"] = Choice(r, []string{"frontend", "backend", "batch"})
		ent.Attrs["version"] = fmt.Sprintf("%d.%d.%d", r.IntRange(0, 5), r.Intn(20), r.Intn(10))
	case model.KindService:
		ent.Name = fmt.Sprintf("%s-service", r.Word())
		ent.Attrs["protocol"] = Choice(r, []string{"grpc", "http", "amqp"})
		ent.Attrs["sla_pct"] = Choice(r, []float64{99.0, 99.5, 99.9, 99.99})
	case model.KindDatabase:
		ent.Name = fmt.Sprintf("%s-db", r.Word())
		ent.Attrs["engine"] = Choice(r, systemStacks["database"])
		ent.Attrs["size_gb"] = float64(r.IntRange(1, 4000))
	case model.KindCloudAccount:
		provider := Choice(r, []string{"aws", "gcp", "azure"})
		ent.Name = fmt.Sprintf("acct-%s-%03d", provider, i+1)
		ent.Attrs["provider"] = provider
		ent.Attrs["monthly_spend"] = float64(r.IntRange(500, 250000))
	case model.KindProject:
		ent.Name = fmt.Sprintf("Project %s", Choice(r, companyAdjectives))
		ent.Attrs["status"] = Choice(r, []string{"proposed", "active", "on_hold", "completed"})
		ent.Attrs["budget"] = float64(r.IntRange(10000, 2000000))
	case model.KindProduct:
		ent.Name = fmt.Sprintf("%s %s", Choice(r, companyAdjectives), Choice(r, companyNouns))
		ent.Attrs["lifecycle_stage"] = Choice(r, []string{"alpha", "beta", "ga", "sunset"})
	case model.KindCustomer:
		ent.Name = r.CompanyName()
		ent.Attrs["segment"] = Choice(r, []string{"smb", "mid_market", "enterprise"})
		ent.Attrs["arr"] = float64(r.IntRange(5000, 1500000))
	case model.KindContract:
		ent.Name = fmt.Sprintf("CTR-%05d", r.IntRange(10000, 99999))
		ent.Attrs["value"] = float64(r.IntRange(10000, 5000000))
		ent.Attrs["term_months"] = r.IntRange(12, 60)
	case model.KindBusinessUnit:
		ent.Name = fmt.Sprintf("%s Business Unit", Choice(r, companyNouns))
		ent.Attrs["pl_owner"] = r.FirstName() + " " + r.LastName()
	case model.KindTeam:
		ent.Name = fmt.Sprintf("%s team", r.Word())
		ent.Attrs["agile"] = r.Chance(0.7)
	case model.KindProcess:
		ent.Name = fmt.Sprintf("%s process", r.Word())
		ent.Attrs["maturity"] = Choice(r, []string{"initial", "managed", "defined", "optimized"})
	case model.KindControl:
		ent.Name = fmt.Sprintf("CTL-%03d", i+1)
		ent.Attrs["framework"] = Choice(r, policyFrameworks)
		ent.Attrs["status"] = Choice(r, []string{"implemented", "partial", "planned"})
	case model.KindRegulation:
		ent.Name = classificationRegulations[i%len(classificationRegulations)]
		ent.Attrs["jurisdiction"] = Choice(r, []string{"EU", "US", "US-CA", "global"})
	case model.KindCertification:
		ent.Name = vendorCertifications[i%len(vendorCertifications)]
		ent.Attrs["valid_years"] = r.IntRange(1, 3)
	case model.KindSkill:
		ent.Name = skillCatalog[i%len(skillCatalog)]
		ent.Attrs["demand"] = Choice(r, []string{"low", "medium", "high"})
	case model.KindKPI:
		ent.Name = fmt.Sprintf("%s rate", r.Word())
		ent.Attrs["target"] = r.FloatRange(0.5, 1.0)
		ent.Attrs["unit"] = Choice(r, []string{"pct", "count", "usd"})
	case model.KindBudget:
		ent.Name = fmt.Sprintf("FY26 %s budget", r.Word())
		ent.Attrs["amount"] = float64(r.IntRange(100000, 20000000))
	case model.KindRisk:
		ent.Name = fmt.Sprintf("RISK-%03d", i+1)
		likelihood := float64(r.IntRange(1, 5))
		impact := float64(r.IntRange(1, 5))
		ent.Attrs["likelihood"] = likelihood
		ent.Attrs["impact"] = impact
		ent.Attrs["severity"] = model.SeverityFor(likelihood, impact)
		ent.Attrs["status"] = Choice(r, []string{"accepted", "mitigating", "transferred", "open"})
		ent.Description = fmt.Sprintf("Register entry %s with likelihood %.0f and impact %.0f, treated as %s. %s",
			ent.Name, likelihood, impact, ent.Attrs["severity"], r.Sentence(5))
	default:
		ent.Name = fmt.Sprintf("%s-%03d", g.kind, i+1)
	}
}
