package synth

import (
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Weaver runs the post-generation pass that connects the generated
// entities. Steps execute in a fixed order; a step whose required
// kinds are absent from the context is skipped, never an error. All
// randomness comes from the context's seeded source.
type Weaver struct {
	steps []weaveStep
}

type weaveStep struct {
	name     string
	requires []model.Kind
	weave    func(gc *Context, rt *relTable)
}

// relTable accumulates relationships for one weave pass.
type relTable struct {
	gc   *Context
	rels []*model.Relationship
}

func (rt *relTable) add(kind model.RelationshipKind, fromID, toID string) *model.Relationship {
	rel := model.NewRelationship(rt.gc.Rand.UUID(), kind, fromID, toID, rt.gc.Now())
	rt.rels = append(rt.rels, rel)
	return rel
}

// NewWeaver builds the production weaver with every step enabled.
func NewWeaver() *Weaver {
	return &Weaver{steps: []weaveStep{
		{name: "org-hierarchy", requires: []model.Kind{model.KindPerson, model.KindDepartment}, weave: weaveHierarchy},
		{name: "role-assignment", requires: []model.Kind{model.KindPerson, model.KindRole}, weave: weaveRoles},
		{name: "network-attachment", requires: []model.Kind{model.KindSystem, model.KindNetwork}, weave: weaveNetworks},
		{name: "location-assignment", requires: []model.Kind{model.KindLocation}, weave: weaveLocations},
		{name: "vulnerability-exposure", requires: []model.Kind{model.KindVulnerability, model.KindSystem}, weave: weaveVulnerabilities},
		{name: "threat-activity", requires: []model.Kind{model.KindThreatActor}, weave: weaveThreats},
		{name: "incident-impact", requires: []model.Kind{model.KindIncident}, weave: weaveIncidents},
		{name: "supply-chain", requires: []model.Kind{model.KindSystem, model.KindVendor}, weave: weaveSupply},
		{name: "compliance-certification", requires: []model.Kind{model.KindVendor, model.KindCertification}, weave: weaveCertifications},
		{name: "governance", requires: []model.Kind{model.KindPolicy}, weave: weaveGovernance},
		{name: "data-placement", requires: []model.Kind{model.KindDataAsset, model.KindSystem}, weave: weaveDataPlacement},
		{name: "application-dependencies", requires: []model.Kind{model.KindApplication, model.KindSystem}, weave: weaveApplications},
		{name: "team-membership", requires: []model.Kind{model.KindTeam}, weave: weaveTeams},
		{name: "risk-register", requires: []model.Kind{model.KindControl, model.KindRisk}, weave: weaveRiskRegister},
		{name: "finance-ownership", requires: []model.Kind{model.KindDepartment}, weave: weaveFinance},
	}}
}

// WeaveAll runs every applicable step and returns the full edge set.
// A context with no stored entities yields an empty, non-nil slice.
func (w *Weaver) WeaveAll(gc *Context) []*model.Relationship {
	rt := &relTable{gc: gc, rels: []*model.Relationship{}}
	for _, step := range w.steps {
		if !stepApplicable(gc, step) {
			continue
		}
		step.weave(gc, rt)
	}
	return rt.rels
}

func stepApplicable(gc *Context, step weaveStep) bool {
	for _, kind := range step.requires {
		if len(gc.Entities(kind)) == 0 {
			return false
		}
	}
	return true
}

// weaveHierarchy assigns people to departments weighted by headcount
// fraction, then builds an acyclic reporting tree inside each
// department. The first person placed in a department acts as its head.
func weaveHierarchy(gc *Context, rt *relTable) {
	people := gc.IDs(model.KindPerson)
	departments := gc.IDs(model.KindDepartment)

	weights := make([]float64, len(departments))
	for i := range departments {
		if i < len(gc.Profile.Departments) {
			weights[i] = gc.Profile.Departments[i].HeadcountFraction
		}
	}

	members := make([][]string, len(departments))
	for _, personID := range people {
		deptIdx := gc.Rand.WeightedIndex(weights)
		rt.add(model.RelWorksIn, personID, departments[deptIdx])
		members[deptIdx] = append(members[deptIdx], personID)
	}

	for _, deptMembers := range members {
		for j := 1; j < len(deptMembers); j++ {
			// Reporting to an earlier member keeps the chain acyclic.
			manager := deptMembers[gc.Rand.Intn(j)]
			rt.add(model.RelReportsTo, deptMembers[j], manager)
			rt.add(model.RelManages, manager, deptMembers[j])
		}
	}
}

func weaveRoles(gc *Context, rt *relTable) {
	roles := gc.IDs(model.KindRole)
	for _, personID := range gc.IDs(model.KindPerson) {
		rt.add(model.RelHasRole, personID, Choice(gc.Rand, roles))
	}
}

// weaveNetworks attaches every system to one network, biasing
// production systems away from guest zones.
func weaveNetworks(gc *Context, rt *relTable) {
	networks := gc.Entities(model.KindNetwork)

	weights := make([]float64, len(networks))
	for i, ent := range networks {
		net := ent.(*model.Network)
		if net.Zone == "guest" {
			weights[i] = 0.2
		} else {
			weights[i] = 1.0
		}
	}

	for _, ent := range gc.Entities(model.KindSystem) {
		idx := gc.Rand.WeightedIndex(weights)
		rt.add(model.RelConnectsTo, ent.EntityID(), networks[idx].EntityID())
	}
}

// weaveLocations places systems and departments at sites, weighted by
// site capacity so large sites absorb more of the estate.
func weaveLocations(gc *Context, rt *relTable) {
	locations := gc.Entities(model.KindLocation)

	weights := make([]float64, len(locations))
	for i, ent := range locations {
		weights[i] = float64(ent.(*model.Location).Capacity)
	}

	for _, ent := range gc.Entities(model.KindSystem) {
		idx := gc.Rand.WeightedIndex(weights)
		rt.add(model.RelLocatedAt, ent.EntityID(), locations[idx].EntityID())
	}
	for _, ent := range gc.Entities(model.KindDepartment) {
		idx := gc.Rand.WeightedIndex(weights)
		rt.add(model.RelLocatedAt, ent.EntityID(), locations[idx].EntityID())
	}
}

// criticalityWeight biases vulnerability placement toward systems whose
// compromise matters more.
func criticalityWeight(criticality string) float64 {
	switch criticality {
	case "critical":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

func weaveVulnerabilities(gc *Context, rt *relTable) {
	systems := gc.Entities(model.KindSystem)

	weights := make([]float64, len(systems))
	for i, ent := range systems {
		weights[i] = criticalityWeight(ent.(*model.System).Criticality)
	}

	for _, ent := range gc.Entities(model.KindVulnerability) {
		vuln := ent.(*model.Vulnerability)
		affected := gc.Rand.IntRange(1, min(3, len(systems)))

		seen := make(map[int]struct{}, affected)
		for len(seen) < affected {
			idx := gc.Rand.WeightedIndex(weights)
			if _, dup := seen[idx]; dup {
				// Weighted draws can repeat; fall back to a linear probe
				// so the loop always terminates.
				idx = nextFreeIndex(idx, len(systems), seen)
			}
			seen[idx] = struct{}{}
			rt.add(model.RelAffects, vuln.EntityID(), systems[idx].EntityID()).
				WithWeight(vuln.CVSS / 10.0)
		}
	}
}

func nextFreeIndex(start, n int, seen map[int]struct{}) int {
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if _, dup := seen[idx]; !dup {
			return idx
		}
	}
	return start
}

func weaveThreats(gc *Context, rt *relTable) {
	vulns := gc.IDs(model.KindVulnerability)
	systems := gc.IDs(model.KindSystem)

	for _, actorID := range gc.IDs(model.KindThreatActor) {
		if len(vulns) > 0 {
			for _, vulnID := range Sample(gc.Rand, vulns, gc.Rand.IntRange(1, 2)) {
				rt.add(model.RelExploits, actorID, vulnID)
			}
		}
		if len(systems) > 0 {
			for _, systemID := range Sample(gc.Rand, systems, gc.Rand.IntRange(1, 2)) {
				rt.add(model.RelTargets, actorID, systemID)
			}
		}
	}
}

func weaveIncidents(gc *Context, rt *relTable) {
	systems := gc.IDs(model.KindSystem)
	actors := gc.IDs(model.KindThreatActor)

	for _, incidentID := range gc.IDs(model.KindIncident) {
		if len(systems) > 0 {
			for _, systemID := range Sample(gc.Rand, systems, gc.Rand.IntRange(1, 2)) {
				rt.add(model.RelImpacts, incidentID, systemID)
			}
		}
		if len(actors) > 0 && gc.Rand.Chance(0.6) {
			rt.add(model.RelAttributedTo, incidentID, Choice(gc.Rand, actors))
		}
	}
}

func weaveSupply(gc *Context, rt *relTable) {
	vendors := gc.IDs(model.KindVendor)
	for _, systemID := range gc.IDs(model.KindSystem) {
		if gc.Rand.Chance(0.7) {
			rt.add(model.RelSuppliedBy, systemID, Choice(gc.Rand, vendors))
		}
	}
}

func weaveCertifications(gc *Context, rt *relTable) {
	certifications := gc.IDs(model.KindCertification)
	for _, vendorID := range gc.IDs(model.KindVendor) {
		for _, certID := range Sample(gc.Rand, certifications, gc.Rand.IntRange(1, 2)) {
			rt.add(model.RelCertifiedAgainst, vendorID, certID)
		}
	}
}

func weaveGovernance(gc *Context, rt *relTable) {
	systems := gc.IDs(model.KindSystem)
	departments := gc.IDs(model.KindDepartment)
	vulns := gc.IDs(model.KindVulnerability)

	for _, ent := range gc.Entities(model.KindPolicy) {
		policy := ent.(*model.Policy)
		if len(systems) > 0 {
			for _, systemID := range Sample(gc.Rand, systems, gc.Rand.IntRange(1, 3)) {
				rt.add(model.RelGoverns, policy.EntityID(), systemID)
			}
		}
		if len(departments) > 0 {
			for _, deptID := range Sample(gc.Rand, departments, gc.Rand.IntRange(1, 2)) {
				rt.add(model.RelGoverns, policy.EntityID(), deptID)
			}
		}
		if len(vulns) > 0 && securityPolicy(policy.PolicyType) {
			for _, vulnID := range Sample(gc.Rand, vulns, gc.Rand.IntRange(1, 2)) {
				rt.add(model.RelMitigates, policy.EntityID(), vulnID)
			}
		}
	}
}

func securityPolicy(policyType string) bool {
	switch policyType {
	case "access_control", "encryption", "incident_response":
		return true
	}
	return false
}

// weaveDataPlacement stores each data asset on a system, preferring
// database and file-server workloads.
func weaveDataPlacement(gc *Context, rt *relTable) {
	systems := gc.Entities(model.KindSystem)

	weights := make([]float64, len(systems))
	for i, ent := range systems {
		switch ent.(*model.System).SystemType {
		case "database", "file_server":
			weights[i] = 3
		default:
			weights[i] = 1
		}
	}

	for _, assetID := range gc.IDs(model.KindDataAsset) {
		idx := gc.Rand.WeightedIndex(weights)
		rt.add(model.RelStores, systems[idx].EntityID(), assetID)
	}
}

func weaveApplications(gc *Context, rt *relTable) {
	systems := gc.IDs(model.KindSystem)
	applications := gc.IDs(model.KindApplication)

	for _, appID := range applications {
		rt.add(model.RelDependsOn, appID, Choice(gc.Rand, systems))
	}
	for _, serviceID := range gc.IDs(model.KindService) {
		rt.add(model.RelDependsOn, serviceID, Choice(gc.Rand, applications))
	}
	for _, dbID := range gc.IDs(model.KindDatabase) {
		rt.add(model.RelDependsOn, dbID, Choice(gc.Rand, systems))
	}
}

func weaveTeams(gc *Context, rt *relTable) {
	departments := gc.IDs(model.KindDepartment)
	people := gc.IDs(model.KindPerson)

	for _, teamID := range gc.IDs(model.KindTeam) {
		if len(departments) > 0 {
			rt.add(model.RelMemberOf, teamID, Choice(gc.Rand, departments))
		}
		if len(people) > 0 {
			for _, personID := range Sample(gc.Rand, people, gc.Rand.IntRange(2, 8)) {
				rt.add(model.RelMemberOf, personID, teamID)
			}
		}
	}
}

func weaveRiskRegister(gc *Context, rt *relTable) {
	risks := gc.IDs(model.KindRisk)
	for _, controlID := range gc.IDs(model.KindControl) {
		rt.add(model.RelMitigates, controlID, Choice(gc.Rand, risks))
	}
}

func weaveFinance(gc *Context, rt *relTable) {
	departments := gc.IDs(model.KindDepartment)

	for _, budgetID := range gc.IDs(model.KindBudget) {
		rt.add(model.RelOwns, Choice(gc.Rand, departments), budgetID)
	}
	for _, kpiID := range gc.IDs(model.KindKPI) {
		rt.add(model.RelResponsibleFor, Choice(gc.Rand, departments), kpiID)
	}
}
