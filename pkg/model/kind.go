package model

// Kind identifies which typed record an entity is.
type Kind string

// Primary entity kinds. These have dedicated typed records and
// full-fidelity generators.
const (
	KindPerson        Kind = "person"
	KindDepartment    Kind = "department"
	KindRole          Kind = "role"
	KindSystem        Kind = "system"
	KindNetwork       Kind = "network"
	KindDataAsset     Kind = "data_asset"
	KindPolicy        Kind = "policy"
	KindVendor        Kind = "vendor"
	KindLocation      Kind = "location"
	KindVulnerability Kind = "vulnerability"
	KindThreatActor   Kind = "threat_actor"
	KindIncident      Kind = "incident"
)

// Extended enterprise-ontology kinds. These are represented by the
// Generic record with typed attributes in the open Attrs map.
const (
	KindApplication   Kind = "application"
	KindService       Kind = "service"
	KindDatabase      Kind = "database"
	KindCloudAccount  Kind = "cloud_account"
	KindProject       Kind = "project"
	KindProduct       Kind = "product"
	KindCustomer      Kind = "customer"
	KindContract      Kind = "contract"
	KindBusinessUnit  Kind = "business_unit"
	KindTeam          Kind = "team"
	KindProcess       Kind = "process"
	KindControl       Kind = "control"
	KindRegulation    Kind = "regulation"
	KindCertification Kind = "certification"
	KindSkill         Kind = "skill"
	KindKPI           Kind = "kpi"
	KindBudget        Kind = "budget"
	KindRisk          Kind = "risk"
)

// PrimaryKinds lists the kinds backed by dedicated typed records, in a
// stable order.
func PrimaryKinds() []Kind {
	return []Kind{
		KindPerson, KindDepartment, KindRole, KindSystem, KindNetwork,
		KindDataAsset, KindPolicy, KindVendor, KindLocation,
		KindVulnerability, KindThreatActor, KindIncident,
	}
}

// ExtendedKinds lists the enterprise-ontology kinds backed by the
// Generic record, in a stable order.
func ExtendedKinds() []Kind {
	return []Kind{
		KindApplication, KindService, KindDatabase, KindCloudAccount,
		KindProject, KindProduct, KindCustomer, KindContract,
		KindBusinessUnit, KindTeam, KindProcess, KindControl,
		KindRegulation, KindCertification, KindSkill, KindKPI,
		KindBudget, KindRisk,
	}
}

// AllKinds returns every known entity kind in a stable order.
func AllKinds() []Kind {
	return append(PrimaryKinds(), ExtendedKinds()...)
}

// Valid reports whether k is a known entity kind.
func (k Kind) Valid() bool {
	for _, known := range AllKinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string { return string(k) }

// RelationshipKind identifies the semantic type of a directed edge.
type RelationshipKind string

const (
	RelWorksIn          RelationshipKind = "WORKS_IN"
	RelReportsTo        RelationshipKind = "REPORTS_TO"
	RelManages          RelationshipKind = "MANAGES"
	RelHasRole          RelationshipKind = "HAS_ROLE"
	RelConnectsTo       RelationshipKind = "CONNECTS_TO"
	RelLocatedAt        RelationshipKind = "LOCATED_AT"
	RelAffects          RelationshipKind = "AFFECTS"
	RelSuppliedBy       RelationshipKind = "SUPPLIED_BY"
	RelGoverns          RelationshipKind = "GOVERNS"
	RelStores           RelationshipKind = "STORES"
	RelMitigates        RelationshipKind = "MITIGATES"
	RelExploits         RelationshipKind = "EXPLOITS"
	RelTargets          RelationshipKind = "TARGETS"
	RelImpacts          RelationshipKind = "IMPACTS"
	RelAttributedTo     RelationshipKind = "ATTRIBUTED_TO"
	RelOwns             RelationshipKind = "OWNS"
	RelDependsOn        RelationshipKind = "DEPENDS_ON"
	RelMemberOf         RelationshipKind = "MEMBER_OF"
	RelResponsibleFor   RelationshipKind = "RESPONSIBLE_FOR"
	RelCertifiedAgainst RelationshipKind = "CERTIFIED_AGAINST"
)

// AllRelationshipKinds returns every known relationship kind in a
// stable order.
func AllRelationshipKinds() []RelationshipKind {
	return []RelationshipKind{
		RelWorksIn, RelReportsTo, RelManages, RelHasRole, RelConnectsTo,
		RelLocatedAt, RelAffects, RelSuppliedBy, RelGoverns, RelStores,
		RelMitigates, RelExploits, RelTargets, RelImpacts, RelAttributedTo,
		RelOwns, RelDependsOn, RelMemberOf, RelResponsibleFor,
		RelCertifiedAgainst,
	}
}

func (rk RelationshipKind) String() string { return string(rk) }
