package synth

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuiltinProfilesValidate(t *testing.T) {
	for _, name := range []string{"tech-company", "financial-services", "healthcare"} {
		profile, err := BuiltinProfile(name, 200)
		if err != nil {
			t.Fatalf("BuiltinProfile(%q) error = %v", name, err)
		}
		if err := profile.Validate(); err != nil {
			t.Errorf("built-in profile %q failed validation: %v", name, err)
		}
	}
}

func TestBuiltinProfileUnknown(t *testing.T) {
	if _, err := BuiltinProfile("casino", 10); err == nil {
		t.Error("BuiltinProfile should reject unknown names")
	}
}

func TestProfileRejectsBadFractions(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.Departments[0].HeadcountFraction = 0.9

	err := profile.Validate()
	if err == nil {
		t.Fatal("Validate() accepted fractions summing far from 1.0")
	}
	if !strings.Contains(err.Error(), "HeadcountFractions") {
		t.Errorf("error should mention headcount fractions, got: %v", err)
	}
}

func TestProfileFractionTolerance(t *testing.T) {
	profile := TechCompanyProfile(100)
	// Nudge within the accepted tolerance band.
	profile.Departments[0].HeadcountFraction += 0.01

	if err := profile.Validate(); err != nil {
		t.Errorf("Validate() rejected a fraction sum within tolerance: %v", err)
	}
}

func TestProfileRejectsNegativeEmployees(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.EmployeeCount = -5

	if err := profile.Validate(); err == nil {
		t.Error("Validate() accepted a negative employee count")
	}
}

func TestProfileRejectsInvertedRange(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.Systems = CountRange{Min: 50, Max: 10}

	if err := profile.Validate(); err == nil {
		t.Error("Validate() accepted a range with min greater than max")
	}
}

func TestProfileRejectsMissingDepartments(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.Departments = nil

	if err := profile.Validate(); err == nil {
		t.Error("Validate() accepted a profile with no departments")
	}
}

func TestProfileRejectsUnknownOntologyKind(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.OntologyCounts["starship"] = Fixed(3)

	if err := profile.Validate(); err == nil {
		t.Error("Validate() accepted an unknown ontology kind")
	}
}

func TestCoefficientDefaults(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.IndustryCoefficient = 0
	if got := profile.Coefficient(); got != 1.0 {
		t.Errorf("Coefficient() = %v, want 1.0 default", got)
	}
}

func TestEmailDomainDefaults(t *testing.T) {
	profile := TechCompanyProfile(100)
	profile.Domain = ""
	if got := profile.EmailDomain(); got != "corp.example.com" {
		t.Errorf("EmailDomain() = %q, want corp.example.com default", got)
	}
}

func TestCountRangeResolve(t *testing.T) {
	src := NewSource(42)

	if got := Fixed(7).Resolve(src); got != 7 {
		t.Errorf("Fixed(7).Resolve() = %d, want 7", got)
	}

	r := Between(3, 10)
	for i := 0; i < 100; i++ {
		n := r.Resolve(src)
		if n < 3 || n > 10 {
			t.Fatalf("Between(3, 10).Resolve() = %d, out of bounds", n)
		}
	}
}

func TestCountRangeYAML(t *testing.T) {
	var scalar CountRange
	if err := yaml.Unmarshal([]byte("5"), &scalar); err != nil {
		t.Fatalf("unmarshal scalar: %v", err)
	}
	if scalar.Min != 5 || scalar.Max != 5 {
		t.Errorf("scalar range = %+v, want {5 5}", scalar)
	}

	var pair CountRange
	if err := yaml.Unmarshal([]byte("[3, 10]"), &pair); err != nil {
		t.Fatalf("unmarshal pair: %v", err)
	}
	if pair.Min != 3 || pair.Max != 10 {
		t.Errorf("pair range = %+v, want {3 10}", pair)
	}

	var bad CountRange
	if err := yaml.Unmarshal([]byte("[1, 2, 3]"), &bad); err == nil {
		t.Error("unmarshal should reject a three-element range")
	}
}

func TestParseProfileYAML(t *testing.T) {
	input := []byte(`
name: Boutique Consultancy
industry: consulting
employee_count: 40
location_count: 1
domain: boutique.example
departments:
  - name: Advisory
    headcount_fraction: 0.7
  - name: Operations
    headcount_fraction: 0.3
systems: [5, 10]
networks: 2
`)
	profile, err := ParseProfile(input)
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	if profile.Name != "Boutique Consultancy" {
		t.Errorf("Name = %q", profile.Name)
	}
	if len(profile.Departments) != 2 {
		t.Errorf("departments = %d, want 2", len(profile.Departments))
	}
	if profile.Systems.Min != 5 || profile.Systems.Max != 10 {
		t.Errorf("systems range = %+v, want {5 10}", profile.Systems)
	}
	if profile.Networks.Min != 2 || profile.Networks.Max != 2 {
		t.Errorf("networks range = %+v, want {2 2}", profile.Networks)
	}
}

func TestParseProfileRejectsInvalid(t *testing.T) {
	if _, err := ParseProfile([]byte("name: Orphan Co")); err == nil {
		t.Error("ParseProfile should reject a profile missing required fields")
	}
	if _, err := ParseProfile([]byte("{not yaml")); err == nil {
		t.Error("ParseProfile should reject malformed YAML")
	}
}
