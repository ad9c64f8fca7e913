package synth

import (
	"fmt"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Built-in organizational profiles. Each returns a validated-by-
// construction profile sized for the given headcount.

// TechCompanyProfile models a software company with ten departments.
func TechCompanyProfile(employeeCount int) *Profile {
	return &Profile{
		Name:          "tech-company",
		Industry:      "technology",
		EmployeeCount: employeeCount,
		Domain:        "apexdata.io",
		Departments: []DepartmentSpec{
			{Name: "Engineering", HeadcountFraction: 0.30, SystemsRange: Between(4, 10), DataSensitivity: "confidential", Critical: true},
			{Name: "Product", HeadcountFraction: 0.10, SystemsRange: Between(1, 3), DataSensitivity: "internal"},
			{Name: "Sales", HeadcountFraction: 0.12, SystemsRange: Between(1, 3), DataSensitivity: "confidential"},
			{Name: "Marketing", HeadcountFraction: 0.08, SystemsRange: Between(1, 2), DataSensitivity: "internal"},
			{Name: "Customer Success", HeadcountFraction: 0.10, SystemsRange: Between(1, 3), DataSensitivity: "confidential"},
			{Name: "Finance", HeadcountFraction: 0.06, SystemsRange: Between(1, 3), DataSensitivity: "restricted", Critical: true},
			{Name: "People Operations", HeadcountFraction: 0.05, SystemsRange: Between(1, 2), DataSensitivity: "restricted"},
			{Name: "IT Operations", HeadcountFraction: 0.08, SystemsRange: Between(2, 6), DataSensitivity: "internal", Critical: true},
			{Name: "Security", HeadcountFraction: 0.06, SystemsRange: Between(2, 4), DataSensitivity: "restricted", Critical: true},
			{Name: "Legal", HeadcountFraction: 0.05, SystemsRange: Between(1, 2), DataSensitivity: "restricted"},
		},
		LocationCount:       3,
		Networks:            Between(3, 6),
		Systems:             Between(15, 40),
		Vendors:             Between(8, 20),
		DataAssets:          Between(10, 30),
		Policies:            Between(6, 12),
		Vulnerabilities:     Between(10, 30),
		ThreatActors:        Between(3, 8),
		Incidents:           Between(4, 12),
		Roles:               Between(6, 12),
		IndustryCoefficient: 1.2,
		OntologyCounts: map[model.Kind]CountRange{
			model.KindApplication:   Between(6, 15),
			model.KindService:       Between(8, 20),
			model.KindDatabase:      Between(4, 10),
			model.KindCloudAccount:  Between(2, 6),
			model.KindProject:       Between(4, 10),
			model.KindProduct:       Between(1, 4),
			model.KindCustomer:      Between(10, 30),
			model.KindContract:      Between(5, 15),
			model.KindBusinessUnit:  Fixed(3),
			model.KindTeam:          Between(6, 15),
			model.KindProcess:       Between(4, 10),
			model.KindControl:       Between(6, 15),
			model.KindRegulation:    Fixed(4),
			model.KindCertification: Fixed(3),
			model.KindSkill:         Fixed(12),
			model.KindKPI:           Between(5, 12),
			model.KindBudget:        Between(3, 8),
			model.KindRisk:          Between(5, 15),
		},
	}
}

// FinancialServicesProfile models a regulated financial firm: heavier
// governance, more restricted data, fewer engineering systems.
func FinancialServicesProfile(employeeCount int) *Profile {
	return &Profile{
		Name:          "financial-services",
		Industry:      "finance",
		EmployeeCount: employeeCount,
		Domain:        "meridianpay.com",
		Departments: []DepartmentSpec{
			{Name: "Trading", HeadcountFraction: 0.15, SystemsRange: Between(3, 8), DataSensitivity: "restricted", Critical: true},
			{Name: "Risk Management", HeadcountFraction: 0.12, SystemsRange: Between(2, 5), DataSensitivity: "restricted", Critical: true},
			{Name: "Compliance", HeadcountFraction: 0.10, SystemsRange: Between(1, 4), DataSensitivity: "restricted", Critical: true},
			{Name: "Technology", HeadcountFraction: 0.20, SystemsRange: Between(4, 12), DataSensitivity: "confidential", Critical: true},
			{Name: "Operations", HeadcountFraction: 0.18, SystemsRange: Between(2, 6), DataSensitivity: "confidential"},
			{Name: "Client Services", HeadcountFraction: 0.12, SystemsRange: Between(1, 3), DataSensitivity: "confidential"},
			{Name: "Finance", HeadcountFraction: 0.08, SystemsRange: Between(1, 3), DataSensitivity: "restricted"},
			{Name: "Legal", HeadcountFraction: 0.05, SystemsRange: Between(1, 2), DataSensitivity: "restricted"},
		},
		LocationCount:       4,
		Networks:            Between(4, 8),
		Systems:             Between(20, 50),
		Vendors:             Between(10, 25),
		DataAssets:          Between(15, 40),
		Policies:            Between(10, 20),
		Vulnerabilities:     Between(8, 25),
		ThreatActors:        Between(4, 10),
		Incidents:           Between(5, 15),
		Roles:               Between(8, 16),
		IndustryCoefficient: 1.5,
		OntologyCounts: map[model.Kind]CountRange{
			model.KindApplication:   Between(8, 20),
			model.KindService:       Between(6, 15),
			model.KindDatabase:      Between(6, 15),
			model.KindCloudAccount:  Between(1, 4),
			model.KindProject:       Between(3, 8),
			model.KindCustomer:      Between(20, 50),
			model.KindContract:      Between(10, 25),
			model.KindBusinessUnit:  Fixed(4),
			model.KindTeam:          Between(8, 18),
			model.KindProcess:       Between(8, 16),
			model.KindControl:       Between(12, 25),
			model.KindRegulation:    Fixed(6),
			model.KindCertification: Fixed(4),
			model.KindKPI:           Between(8, 16),
			model.KindBudget:        Between(4, 10),
			model.KindRisk:          Between(10, 25),
		},
	}
}

// HealthcareProfile models a healthcare provider with strict data
// handling obligations.
func HealthcareProfile(employeeCount int) *Profile {
	return &Profile{
		Name:          "healthcare",
		Industry:      "healthcare",
		EmployeeCount: employeeCount,
		Domain:        "clearwaterhealth.org",
		Departments: []DepartmentSpec{
			{Name: "Clinical Operations", HeadcountFraction: 0.35, SystemsRange: Between(3, 8), DataSensitivity: "restricted", Critical: true},
			{Name: "Patient Records", HeadcountFraction: 0.12, SystemsRange: Between(2, 5), DataSensitivity: "restricted", Critical: true},
			{Name: "Billing", HeadcountFraction: 0.10, SystemsRange: Between(1, 4), DataSensitivity: "restricted"},
			{Name: "IT", HeadcountFraction: 0.10, SystemsRange: Between(3, 8), DataSensitivity: "confidential", Critical: true},
			{Name: "Administration", HeadcountFraction: 0.15, SystemsRange: Between(1, 3), DataSensitivity: "internal"},
			{Name: "Pharmacy", HeadcountFraction: 0.08, SystemsRange: Between(1, 3), DataSensitivity: "restricted"},
			{Name: "Laboratory", HeadcountFraction: 0.10, SystemsRange: Between(2, 5), DataSensitivity: "restricted", Critical: true},
		},
		LocationCount:       5,
		Networks:            Between(3, 6),
		Systems:             Between(15, 35),
		Vendors:             Between(8, 18),
		DataAssets:          Between(15, 40),
		Policies:            Between(8, 16),
		Vulnerabilities:     Between(10, 30),
		ThreatActors:        Between(3, 8),
		Incidents:           Between(5, 15),
		Roles:               Between(6, 12),
		IndustryCoefficient: 1.0,
		OntologyCounts: map[model.Kind]CountRange{
			model.KindApplication:   Between(5, 12),
			model.KindService:       Between(4, 10),
			model.KindDatabase:      Between(4, 10),
			model.KindProject:       Between(2, 6),
			model.KindTeam:          Between(5, 12),
			model.KindProcess:       Between(6, 12),
			model.KindControl:       Between(10, 20),
			model.KindRegulation:    Fixed(5),
			model.KindCertification: Fixed(2),
			model.KindKPI:           Between(4, 10),
			model.KindBudget:        Between(3, 8),
			model.KindRisk:          Between(8, 20),
		},
	}
}

// BuiltinProfile resolves a named built-in profile.
func BuiltinProfile(name string, employeeCount int) (*Profile, error) {
	switch name {
	case "tech-company":
		return TechCompanyProfile(employeeCount), nil
	case "financial-services":
		return FinancialServicesProfile(employeeCount), nil
	case "healthcare":
		return HealthcareProfile(employeeCount), nil
	default:
		return nil, fmt.Errorf("unknown builtin profile %q", name)
	}
}
