package model

import "time"

// Entity is implemented by every typed record in the graph.
// Records are immutable value objects once constructed; mutation happens
// only through the graph engine's update path.
type Entity interface {
	// EntityID returns the stable unique identifier.
	EntityID() string
	// EntityKind returns the discriminant tag.
	EntityKind() Kind
	// Meta returns the shared bookkeeping fields.
	Meta() *Base
}

// Base carries the fields common to every entity kind: identity,
// naming, tagging, the open extension map, and temporal bookkeeping.
type Base struct {
	ID          string         `json:"id" yaml:"id"`
	Kind        Kind           `json:"kind" yaml:"kind"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"updated_at"`
	ValidFrom   *time.Time     `json:"valid_from,omitempty" yaml:"valid_from,omitempty"`
	ValidTo     *time.Time     `json:"valid_to,omitempty" yaml:"valid_to,omitempty"`
	Version     int            `json:"version" yaml:"version"`
}

// NewBase constructs the shared fields for a record. The caller supplies
// the clock so a generation run stamps every record with the same instant.
func NewBase(id string, kind Kind, name string, now time.Time) Base {
	return Base{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Attrs:     make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func (b *Base) EntityID() string { return b.ID }

func (b *Base) EntityKind() Kind { return b.Kind }

func (b *Base) Meta() *Base { return b }

// HasTag reports whether the entity carries the given tag.
func (b *Base) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Attr returns an open extension attribute.
func (b *Base) Attr(key string) (any, bool) {
	v, ok := b.Attrs[key]
	return v, ok
}

// Person is an employee or contractor.
type Person struct {
	Base      `yaml:",inline"`
	FirstName string   `json:"first_name" yaml:"first_name"`
	LastName  string   `json:"last_name" yaml:"last_name"`
	Email     string   `json:"email" yaml:"email"`
	Title     string   `json:"title" yaml:"title"`
	Seniority string   `json:"seniority" yaml:"seniority"`
	Skills    []string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Department is an organizational unit.
type Department struct {
	Base            `yaml:",inline"`
	Code            string  `json:"code" yaml:"code"`
	HeadcountTarget int     `json:"headcount_target" yaml:"headcount_target"`
	BudgetPerHead   float64 `json:"budget_per_head" yaml:"budget_per_head"`
	Criticality     string  `json:"criticality" yaml:"criticality"`
	DataSensitivity string  `json:"data_sensitivity" yaml:"data_sensitivity"`
}

// Role is a job function with an associated permission set.
type Role struct {
	Base        `yaml:",inline"`
	Privileged  bool     `json:"privileged" yaml:"privileged"`
	Permissions []string `json:"permissions" yaml:"permissions"`
	MFARequired bool     `json:"mfa_required" yaml:"mfa_required"`
}

// System is a deployed compute workload.
type System struct {
	Base        `yaml:",inline"`
	Hostname    string   `json:"hostname" yaml:"hostname"`
	IP          string   `json:"ip" yaml:"ip"`
	OS          string   `json:"os" yaml:"os"`
	SystemType  string   `json:"system_type" yaml:"system_type"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	Criticality string   `json:"criticality" yaml:"criticality"`
	Environment string   `json:"environment" yaml:"environment"`
}

// Network is a routed segment systems attach to.
type Network struct {
	Base   `yaml:",inline"`
	CIDR   string `json:"cidr" yaml:"cidr"`
	Zone   string `json:"zone" yaml:"zone"`
	VLANID int    `json:"vlan_id" yaml:"vlan_id"`
}

// DataAsset is a classified body of stored data.
type DataAsset struct {
	Base           `yaml:",inline"`
	Classification string   `json:"classification" yaml:"classification"`
	Format         string   `json:"format" yaml:"format"`
	SizeGB         float64  `json:"size_gb" yaml:"size_gb"`
	Encrypted      bool     `json:"encrypted" yaml:"encrypted"`
	Regulations    []string `json:"regulations,omitempty" yaml:"regulations,omitempty"`
	RetentionDays  int      `json:"retention_days" yaml:"retention_days"`
}

// Policy is a governance document applied to systems and departments.
type Policy struct {
	Base              `yaml:",inline"`
	PolicyType        string `json:"policy_type" yaml:"policy_type"`
	Framework         string `json:"framework" yaml:"framework"`
	ReviewCycleMonths int    `json:"review_cycle_months" yaml:"review_cycle_months"`
	Mandatory         bool   `json:"mandatory" yaml:"mandatory"`
}

// Vendor is a third-party supplier.
type Vendor struct {
	Base           `yaml:",inline"`
	Service        string   `json:"service" yaml:"service"`
	RiskTier       string   `json:"risk_tier" yaml:"risk_tier"`
	DataAccess     bool     `json:"data_access" yaml:"data_access"`
	Certifications []string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	AnnualValue    float64  `json:"annual_value" yaml:"annual_value"`
}

// Location is a physical site.
type Location struct {
	Base     `yaml:",inline"`
	City     string `json:"city" yaml:"city"`
	Country  string `json:"country" yaml:"country"`
	Region   string `json:"region" yaml:"region"`
	SiteType string `json:"site_type" yaml:"site_type"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

// Vulnerability is a known weakness affecting systems.
type Vulnerability struct {
	Base             `yaml:",inline"`
	CVE              string  `json:"cve" yaml:"cve"`
	CVSS             float64 `json:"cvss" yaml:"cvss"`
	Severity         string  `json:"severity" yaml:"severity"`
	ExploitAvailable bool    `json:"exploit_available" yaml:"exploit_available"`
	Patched          bool    `json:"patched" yaml:"patched"`
}

// ThreatActor is an adversary profile.
type ThreatActor struct {
	Base           `yaml:",inline"`
	ActorType      string   `json:"actor_type" yaml:"actor_type"`
	Sophistication string   `json:"sophistication" yaml:"sophistication"`
	Motivation     string   `json:"motivation" yaml:"motivation"`
	TTPs           []string `json:"ttps,omitempty" yaml:"ttps,omitempty"`
}

// Incident is a recorded security event with risk scoring.
// Severity is derived from Likelihood and Impact; see SeverityFor.
type Incident struct {
	Base         `yaml:",inline"`
	IncidentType string  `json:"incident_type" yaml:"incident_type"`
	Likelihood   float64 `json:"likelihood" yaml:"likelihood"`
	Impact       float64 `json:"impact" yaml:"impact"`
	Severity     string  `json:"severity" yaml:"severity"`
	Status       string  `json:"status" yaml:"status"`
}

// Generic backs the extended ontology kinds. Typed attributes live in
// the open Attrs map under documented keys.
type Generic struct {
	Base `yaml:",inline"`
}

// SeverityFor maps a likelihood x impact product (each on a 1-5 scale)
// to a severity label. This is the documented risk-math contract the
// quality scorer verifies.
func SeverityFor(likelihood, impact float64) string {
	score := likelihood * impact
	switch {
	case score <= 4:
		return "low"
	case score <= 9:
		return "medium"
	case score <= 16:
		return "high"
	default:
		return "critical"
	}
}

// CVSSSeverity maps a CVSS base score to its severity band.
func CVSSSeverity(score float64) string {
	switch {
	case score < 4.0:
		return "low"
	case score < 7.0:
		return "medium"
	case score < 9.0:
		return "high"
	default:
		return "critical"
	}
}
