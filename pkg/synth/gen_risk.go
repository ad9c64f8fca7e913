package synth

import (
	"fmt"
	"math"
	"strings"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// VulnerabilityGenerator emits known weaknesses. Severity is derived
// from the CVSS band, never sampled independently.
type VulnerabilityGenerator struct{}

func (VulnerabilityGenerator) Kind() model.Kind { return model.KindVulnerability }

func (VulnerabilityGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		cvss := math.Round(gc.Rand.FloatRange(1.0, 10.0)*10) / 10
		severity := model.CVSSSeverity(cvss)

		// Exploits cluster around the high end of the scale.
		exploitChance := 0.15
		if cvss >= 7.0 {
			exploitChance = 0.5
		}

		cve := gc.Rand.CVE()
		vuln := &model.Vulnerability{
			Base:             model.NewBase(gc.Rand.UUID(), model.KindVulnerability, cve, gc.Now()),
			CVE:              cve,
			CVSS:             cvss,
			Severity:         severity,
			ExploitAvailable: gc.Rand.Chance(exploitChance),
			Patched:          gc.Rand.Chance(0.4),
		}
		vuln.Description = fmt.Sprintf("%s severity vulnerability %s with CVSS base score %.1f. %s",
			titleCase(severity), cve, cvss, gc.Rand.Sentence(6))
		vuln.Tags = []string{"vulnerability", severity}
		if vuln.ExploitAvailable {
			vuln.Tags = append(vuln.Tags, "exploit_available")
		}
		out = append(out, vuln)
	}
	gc.Store(model.KindVulnerability, out)
	return out
}

var actorAnimals = []string{
	"Spider", "Panda", "Bear", "Kitten", "Phoenix", "Serpent", "Falcon",
	"Jackal", "Mantis", "Wolf",
}

// ThreatActorGenerator emits adversary profiles whose sophistication
// and motivation correlate with their actor type.
type ThreatActorGenerator struct{}

func (ThreatActorGenerator) Kind() model.Kind { return model.KindThreatActor }

func (ThreatActorGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		actorType := Choice(gc.Rand, actorTypes)

		var sophistication, motivation string
		var ttpCount int
		switch actorType {
		case "nation_state":
			sophistication = Choice(gc.Rand, sophisticationLevels[2:])
			motivation = "espionage"
			ttpCount = gc.Rand.IntRange(3, 5)
		case "cybercrime":
			sophistication = Choice(gc.Rand, sophisticationLevels[1:3])
			motivation = "financial"
			ttpCount = gc.Rand.IntRange(2, 4)
		case "hacktivist":
			sophistication = Choice(gc.Rand, sophisticationLevels[:2])
			motivation = "ideology"
			ttpCount = gc.Rand.IntRange(1, 3)
		default: // insider
			sophistication = Choice(gc.Rand, sophisticationLevels[:2])
			motivation = Choice(gc.Rand, []string{"financial", "revenge"})
			ttpCount = gc.Rand.IntRange(1, 2)
		}

		name := fmt.Sprintf("%s %s", Choice(gc.Rand, companyAdjectives), Choice(gc.Rand, actorAnimals))
		actor := &model.ThreatActor{
			Base:           model.NewBase(gc.Rand.UUID(), model.KindThreatActor, name, gc.Now()),
			ActorType:      actorType,
			Sophistication: sophistication,
			Motivation:     motivation,
			TTPs:           Sample(gc.Rand, ttpCatalog, ttpCount),
		}
		actor.Description = fmt.Sprintf("%s group %q with %s sophistication, motivated by %s. %s",
			strings.ReplaceAll(actorType, "_", " "), name, sophistication, motivation, gc.Rand.Sentence(5))
		actor.Tags = []string{"threat_actor", actorType}
		out = append(out, actor)
	}
	gc.Store(model.KindThreatActor, out)
	return out
}

// IncidentGenerator emits recorded security events. Severity is always
// derived from likelihood x impact via the documented mapping.
type IncidentGenerator struct{}

func (IncidentGenerator) Kind() model.Kind { return model.KindIncident }

func (IncidentGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		incidentType := Choice(gc.Rand, incidentTypes)
		likelihood := float64(gc.Rand.IntRange(1, 5))
		impact := float64(gc.Rand.IntRange(1, 5))
		severity := model.SeverityFor(likelihood, impact)

		name := fmt.Sprintf("INC-%04d", i+1)
		incident := &model.Incident{
			Base:         model.NewBase(gc.Rand.UUID(), model.KindIncident, name, gc.Now()),
			IncidentType: incidentType,
			Likelihood:   likelihood,
			Impact:       impact,
			Severity:     severity,
			Status:       Choice(gc.Rand, incidentStatuses),
		}
		incident.Description = fmt.Sprintf("%s incident %s scored at likelihood %.0f and impact %.0f (%s). %s",
			titleCase(strings.ReplaceAll(incidentType, "_", " ")), name, likelihood, impact, severity, gc.Rand.Paragraph(2))
		incident.Tags = []string{"incident", severity, incidentType}
		out = append(out, incident)
	}
	gc.Store(model.KindIncident, out)
	return out
}
