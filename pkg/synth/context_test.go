package synth

import (
	"testing"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewContextSeeded(t *testing.T) {
	profile := TechCompanyProfile(100)

	a := NewContext(profile, int64Ptr(42))
	b := NewContext(profile, int64Ptr(42))

	if a.Rand.Intn(1<<30) != b.Rand.Intn(1<<30) {
		t.Error("equally seeded contexts produced different random draws")
	}
	if !a.Now().Equal(b.Now()) {
		t.Error("equally seeded contexts have different run clocks")
	}
}

func TestContextClockIsFixed(t *testing.T) {
	gc := NewContext(TechCompanyProfile(10), int64Ptr(1))
	first := gc.Now()
	second := gc.Now()
	if !first.Equal(second) {
		t.Errorf("run clock moved: %v then %v", first, second)
	}
}

func TestContextStoreAndLookup(t *testing.T) {
	gc := NewContext(TechCompanyProfile(10), int64Ptr(1))

	people := []model.Entity{
		&model.Person{Base: model.NewBase("p-1", model.KindPerson, "Alice Chen", gc.Now())},
		&model.Person{Base: model.NewBase("p-2", model.KindPerson, "Bob Okafor", gc.Now())},
	}
	gc.Store(model.KindPerson, people)

	if got := len(gc.Entities(model.KindPerson)); got != 2 {
		t.Errorf("Entities(person) = %d, want 2", got)
	}
	ids := gc.IDs(model.KindPerson)
	if len(ids) != 2 || ids[0] != "p-1" || ids[1] != "p-2" {
		t.Errorf("IDs(person) = %v", ids)
	}
	if gc.TotalEntities() != 2 {
		t.Errorf("TotalEntities() = %d, want 2", gc.TotalEntities())
	}
}

func TestContextStoreReplacesSlot(t *testing.T) {
	gc := NewContext(TechCompanyProfile(10), int64Ptr(1))

	gc.Store(model.KindPerson, []model.Entity{
		&model.Person{Base: model.NewBase("p-1", model.KindPerson, "Alice Chen", gc.Now())},
	})
	gc.Store(model.KindPerson, []model.Entity{
		&model.Person{Base: model.NewBase("p-9", model.KindPerson, "Dana Reyes", gc.Now())},
	})

	ids := gc.IDs(model.KindPerson)
	if len(ids) != 1 || ids[0] != "p-9" {
		t.Errorf("IDs(person) after replace = %v, want [p-9]", ids)
	}
}

func TestContextEmptyKind(t *testing.T) {
	gc := NewContext(TechCompanyProfile(10), int64Ptr(1))

	if ents := gc.Entities(model.KindVendor); len(ents) != 0 {
		t.Errorf("Entities(vendor) on empty context = %v", ents)
	}
	if ids := gc.IDs(model.KindVendor); len(ids) != 0 {
		t.Errorf("IDs(vendor) on empty context = %v", ids)
	}
}

func TestContextKindsCanonicalOrder(t *testing.T) {
	gc := NewContext(TechCompanyProfile(10), int64Ptr(1))

	// Store out of canonical order.
	gc.Store(model.KindSystem, []model.Entity{
		&model.System{Base: model.NewBase("s-1", model.KindSystem, "web-001", gc.Now())},
	})
	gc.Store(model.KindPerson, []model.Entity{
		&model.Person{Base: model.NewBase("p-1", model.KindPerson, "Alice Chen", gc.Now())},
	})

	kinds := gc.Kinds()
	if len(kinds) != 2 || kinds[0] != model.KindPerson || kinds[1] != model.KindSystem {
		t.Errorf("Kinds() = %v, want [person system]", kinds)
	}
}
