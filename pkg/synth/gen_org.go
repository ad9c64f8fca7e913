package synth

import (
	"fmt"
	"math"
	"strings"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// LocationGenerator emits physical sites. Cardinality is the profile's
// location count; the first site is always the headquarters.
type LocationGenerator struct{}

func (LocationGenerator) Kind() model.Kind { return model.KindLocation }

func (LocationGenerator) Generate(count int, gc *Context) []model.Entity {
	places := Sample(gc.Rand, cityCountryRegion, count)
	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		place := places[i%len(places)]
		siteType := "hq"
		if i > 0 {
			siteType = Choice(gc.Rand, siteTypes[1:])
		}

		var capacity int
		switch siteType {
		case "hq":
			capacity = gc.Rand.IntRange(200, 800)
		case "datacenter":
			capacity = gc.Rand.IntRange(10, 50)
		case "branch":
			capacity = gc.Rand.IntRange(20, 150)
		default:
			capacity = gc.Rand.IntRange(5, 30)
		}

		loc := &model.Location{
			Base:     model.NewBase(gc.Rand.UUID(), model.KindLocation, fmt.Sprintf("%s %s", place[0], siteLabel(siteType)), gc.Now()),
			City:     place[0],
			Country:  place[1],
			Region:   place[2],
			SiteType: siteType,
			Capacity: capacity,
		}
		loc.Description = fmt.Sprintf("%s site in %s, %s with capacity for %d staff. %s",
			siteLabel(siteType), place[0], place[1], capacity, gc.Rand.Sentence(6))
		loc.Tags = []string{"location", siteType, strings.ToLower(place[2])}
		out = append(out, loc)
	}
	gc.Store(model.KindLocation, out)
	return out
}

func siteLabel(siteType string) string {
	switch siteType {
	case "hq":
		return "Headquarters"
	case "datacenter":
		return "Datacenter"
	case "branch":
		return "Branch Office"
	default:
		return "Remote Hub"
	}
}

// DepartmentGenerator emits one department per profile spec; count is
// advisory.
type DepartmentGenerator struct{}

func (DepartmentGenerator) Kind() model.Kind { return model.KindDepartment }

func (DepartmentGenerator) Generate(count int, gc *Context) []model.Entity {
	specs := gc.Profile.Departments
	out := make([]model.Entity, 0, len(specs))
	for _, spec := range specs {
		headcount := int(math.Round(spec.HeadcountFraction * float64(gc.Profile.EmployeeCount)))

		criticality := Choice(gc.Rand, []string{"low", "medium", "high"})
		budgetPerHead := gc.Rand.FloatRange(80_000, 150_000)
		if spec.Critical {
			// Critical departments always carry an elevated budget per head.
			criticality = "critical"
			budgetPerHead = gc.Rand.FloatRange(150_000, 250_000)
		}

		sensitivity := spec.DataSensitivity
		if sensitivity == "" {
			sensitivity = "internal"
		}

		dept := &model.Department{
			Base:            model.NewBase(gc.Rand.UUID(), model.KindDepartment, spec.Name, gc.Now()),
			Code:            deptCode(spec.Name),
			HeadcountTarget: headcount,
			BudgetPerHead:   math.Round(budgetPerHead),
			Criticality:     criticality,
			DataSensitivity: sensitivity,
		}
		dept.Description = fmt.Sprintf("%s department with a target headcount of %d, handling %s data. %s",
			spec.Name, headcount, sensitivity, gc.Rand.Sentence(6))
		dept.Tags = []string{"department", criticality}
		out = append(out, dept)
	}
	gc.Store(model.KindDepartment, out)
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func deptCode(name string) string {
	var code strings.Builder
	for _, word := range strings.Fields(name) {
		code.WriteByte(word[0])
	}
	return strings.ToUpper(code.String())
}

// RoleGenerator emits the org-wide role catalog (one role per
// archetype) plus one lead role per previously generated department.
// Cardinality is structural; count is advisory.
type RoleGenerator struct{}

func (RoleGenerator) Kind() model.Kind { return model.KindRole }

func (RoleGenerator) Generate(count int, gc *Context) []model.Entity {
	out := make([]model.Entity, 0, len(roleArchetypes)+len(gc.Entities(model.KindDepartment)))

	for _, archetype := range roleArchetypes {
		perms := append([]string{}, rolePermissions[archetype]...)
		privileged := privilegedArchetypes[archetype]

		role := &model.Role{
			Base:        model.NewBase(gc.Rand.UUID(), model.KindRole, titleCase(archetype), gc.Now()),
			Privileged:  privileged,
			Permissions: perms,
			// Privileged roles always require MFA; others follow policy
			// roughly half the time.
			MFARequired: privileged || gc.Rand.Chance(0.5),
		}
		role.Description = fmt.Sprintf("%s role granting %d permissions including %s. %s",
			titleCase(archetype), len(perms), perms[0], gc.Rand.Sentence(5))
		role.Tags = []string{"role", archetype}
		if privileged {
			role.Tags = append(role.Tags, "privileged")
		}
		out = append(out, role)
	}

	for _, ent := range gc.Entities(model.KindDepartment) {
		dept := ent.(*model.Department)
		role := &model.Role{
			Base:        model.NewBase(gc.Rand.UUID(), model.KindRole, dept.Name+" Lead", gc.Now()),
			Privileged:  false,
			Permissions: append([]string{}, rolePermissions["manager"]...),
			MFARequired: gc.Rand.Chance(0.5),
		}
		role.Description = fmt.Sprintf("Leadership role for the %s department with approval and budget visibility. %s",
			dept.Name, gc.Rand.Sentence(5))
		role.Tags = []string{"role", "lead"}
		out = append(out, role)
	}

	gc.Store(model.KindRole, out)
	return out
}

// PersonGenerator emits exactly count people with unique corporate
// emails.
type PersonGenerator struct{}

func (PersonGenerator) Kind() model.Kind { return model.KindPerson }

func (PersonGenerator) Generate(count int, gc *Context) []model.Entity {
	domain := gc.Profile.EmailDomain()
	usedEmails := make(map[string]int, count)

	jobFamilies := []string{
		"Software Engineer", "Account Executive", "Data Analyst",
		"Product Manager", "Security Analyst", "Systems Administrator",
		"Financial Analyst", "Recruiter", "Marketing Specialist",
		"Support Engineer", "Counsel", "Operations Coordinator",
	}

	out := make([]model.Entity, 0, count)
	for i := 0; i < count; i++ {
		first := gc.Rand.FirstName()
		last := gc.Rand.LastName()

		email := gc.Rand.Email(first, last, domain)
		if n, taken := usedEmails[email]; taken {
			usedEmails[email] = n + 1
			email = gc.Rand.Email(first, fmt.Sprintf("%s%d", last, n+1), domain)
		} else {
			usedEmails[email] = 1
		}

		seniority := Choice(gc.Rand, seniorities)
		family := Choice(gc.Rand, jobFamilies)
		title := titleCase(seniority) + " " + family

		person := &model.Person{
			Base:      model.NewBase(gc.Rand.UUID(), model.KindPerson, first+" "+last, gc.Now()),
			FirstName: first,
			LastName:  last,
			Email:     email,
			Title:     title,
			Seniority: seniority,
			Skills:    Sample(gc.Rand, skillCatalog, gc.Rand.IntRange(2, 4)),
		}
		person.Description = fmt.Sprintf("%s working as %s, reachable at %s. %s",
			first+" "+last, title, email, gc.Rand.Sentence(5))
		person.Tags = []string{"person", seniority}
		out = append(out, person)
	}
	gc.Store(model.KindPerson, out)
	return out
}
