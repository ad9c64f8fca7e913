package synth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
	"github.com/dd0wney/cluso-synthgraph/pkg/validation"
)

// CountRange is either a fixed count (Min == Max) or an inclusive range
// resolved against the run's seeded source. In YAML it accepts a scalar
// or a two-element list.
type CountRange struct {
	Min int
	Max int
}

// Fixed is a CountRange that always resolves to n.
func Fixed(n int) CountRange {
	return CountRange{Min: n, Max: n}
}

// Between is an inclusive CountRange.
func Between(min, max int) CountRange {
	return CountRange{Min: min, Max: max}
}

// Resolve picks the run's count for this range.
func (c CountRange) Resolve(src *Source) int {
	if c.Max <= c.Min {
		return c.Min
	}
	return src.IntRange(c.Min, c.Max)
}

// IsZero reports whether the range can only resolve to zero.
func (c CountRange) IsZero() bool {
	return c.Min == 0 && c.Max == 0
}

// UnmarshalYAML accepts `5` or `[3, 10]`.
func (c *CountRange) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("count range: %w", err)
		}
		c.Min, c.Max = n, n
		return nil
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("count range: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("count range: expected [min, max], got %d elements", len(pair))
		}
		c.Min, c.Max = pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("count range: expected scalar or [min, max]")
	}
}

// MarshalYAML emits a scalar for fixed counts and [min, max] otherwise.
func (c CountRange) MarshalYAML() (any, error) {
	if c.Min == c.Max {
		return c.Min, nil
	}
	return []int{c.Min, c.Max}, nil
}

// DepartmentSpec describes one organizational unit in a profile.
type DepartmentSpec struct {
	Name              string     `yaml:"name" validate:"required"`
	HeadcountFraction float64    `yaml:"headcount_fraction" validate:"gte=0,lte=1"`
	SystemsRange      CountRange `yaml:"systems"`
	DataSensitivity   string     `yaml:"data_sensitivity" validate:"omitempty,oneof=public internal confidential restricted"`
	Critical          bool       `yaml:"critical"`
}

// Profile is the immutable declarative configuration for one synthetic
// enterprise: headcount, department mix, and per-kind count ranges.
type Profile struct {
	Name          string           `yaml:"name" validate:"required"`
	Industry      string           `yaml:"industry" validate:"required"`
	EmployeeCount int              `yaml:"employee_count" validate:"gte=0"`
	Departments   []DepartmentSpec `yaml:"departments" validate:"required,min=1,dive"`
	LocationCount int              `yaml:"location_count" validate:"gte=0"`

	Networks        CountRange `yaml:"networks"`
	Systems         CountRange `yaml:"systems"`
	Vendors         CountRange `yaml:"vendors"`
	DataAssets      CountRange `yaml:"data_assets"`
	Policies        CountRange `yaml:"policies"`
	Vulnerabilities CountRange `yaml:"vulnerabilities"`
	ThreatActors    CountRange `yaml:"threat_actors"`
	Incidents       CountRange `yaml:"incidents"`
	Roles           CountRange `yaml:"roles"`

	// OntologyCounts sizes the extended enterprise-ontology kinds.
	// Kinds absent from the map are not generated.
	OntologyCounts map[model.Kind]CountRange `yaml:"ontology_counts"`

	// IndustryCoefficient scales structurally derived counts (for
	// example systems per department). Zero means the default of 1.0.
	IndustryCoefficient float64 `yaml:"industry_coefficient" validate:"gte=0"`

	// Domain is the DNS domain used for generated emails and hosts.
	Domain string `yaml:"domain"`
}

// fractionTolerance bounds how far department headcount fractions may
// drift from summing to 1.0 before the profile is rejected.
const fractionTolerance = 0.02

// Validate checks the profile. A malformed profile is the one fatal
// error class in generation: it is rejected here, never tolerated
// downstream.
func (p *Profile) Validate() error {
	if err := validation.Struct(p); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}

	cv := validation.NewConfigValidator("Profile")
	cv.Required("Name", p.Name).
		NonNegative("EmployeeCount", p.EmployeeCount).
		NonNegative("LocationCount", p.LocationCount).
		NonNegativeFloat("IndustryCoefficient", p.IndustryCoefficient)

	var fractionSum float64
	for i, dept := range p.Departments {
		field := fmt.Sprintf("Departments[%d]", i)
		cv.Required(field+".Name", dept.Name)
		cv.NonNegative(field+".Systems.Min", dept.SystemsRange.Min)
		cv.MinLEMax(field+".Systems", dept.SystemsRange.Min, dept.SystemsRange.Max)
		fractionSum += dept.HeadcountFraction
	}
	cv.RangeFloat("Departments.HeadcountFractions", fractionSum, 1.0-fractionTolerance, 1.0+fractionTolerance)

	ranges := map[string]CountRange{
		"Networks":        p.Networks,
		"Systems":         p.Systems,
		"Vendors":         p.Vendors,
		"DataAssets":      p.DataAssets,
		"Policies":        p.Policies,
		"Vulnerabilities": p.Vulnerabilities,
		"ThreatActors":    p.ThreatActors,
		"Incidents":       p.Incidents,
		"Roles":           p.Roles,
	}
	for field, r := range ranges {
		cv.NonNegative(field+".Min", r.Min)
		cv.MinLEMax(field, r.Min, r.Max)
	}
	for kind, r := range p.OntologyCounts {
		field := "OntologyCounts." + kind.String()
		cv.Custom(field, func() error {
			if !kind.Valid() {
				return fmt.Errorf("unknown entity kind %q", kind)
			}
			return nil
		})
		cv.NonNegative(field+".Min", r.Min)
		cv.MinLEMax(field, r.Min, r.Max)
	}

	return cv.Validate()
}

// Coefficient returns the industry scaling factor, defaulting to 1.0.
func (p *Profile) Coefficient() float64 {
	if p.IndustryCoefficient <= 0 {
		return 1.0
	}
	return p.IndustryCoefficient
}

// EmailDomain returns the profile's DNS domain, with a stable default.
func (p *Profile) EmailDomain() string {
	if p.Domain != "" {
		return p.Domain
	}
	return "corp.example.com"
}

// LoadProfile reads and validates a YAML profile from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
