package graph

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPerson(id, name string) *model.Person {
	return &model.Person{
		Base:      model.NewBase(id, model.KindPerson, name, testClock),
		FirstName: name,
		LastName:  "Tester",
		Email:     name + "@example.com",
	}
}

func testSystem(id, name string) *model.System {
	return &model.System{
		Base:        model.NewBase(id, model.KindSystem, name, testClock),
		Hostname:    name + ".internal",
		SystemType:  "web_server",
		Criticality: "medium",
	}
}

func testRel(id string, kind model.RelationshipKind, from, to string) *model.Relationship {
	return model.NewRelationship(id, kind, from, to, testClock)
}

func TestGraph_AddAndGetEntity(t *testing.T) {
	g := New()

	p := testPerson("p1", "alice")
	if err := g.AddEntity(p); err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	got, err := g.GetEntity("p1")
	if err != nil {
		t.Fatalf("Failed to get entity: %v", err)
	}
	if got.EntityKind() != model.KindPerson {
		t.Errorf("Expected kind person, got %s", got.EntityKind())
	}
	if got.Meta().Name != "alice" {
		t.Errorf("Expected name alice, got %s", got.Meta().Name)
	}
	if got.Meta().Version != 1 {
		t.Errorf("Expected version 1, got %d", got.Meta().Version)
	}
}

func TestGraph_GetEntity_NotFound(t *testing.T) {
	g := New()

	_, err := g.GetEntity("nope")
	if err == nil {
		t.Fatal("Expected error for missing entity")
	}
	if !errors.Is(err, ErrEntityNotFound) {
		t.Errorf("Expected ErrEntityNotFound, got %v", err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true")
	}
}

func TestGraph_AddEntity_Duplicate(t *testing.T) {
	g := New()

	if err := g.AddEntity(testPerson("p1", "alice")); err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}
	err := g.AddEntity(testPerson("p1", "bob"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestGraph_AddEntitiesBulk(t *testing.T) {
	g := New()

	ents := []model.Entity{
		testPerson("p1", "alice"),
		testPerson("p2", "bob"),
		testSystem("s1", "web-01"),
	}
	ids, err := g.AddEntitiesBulk(ents)
	if err != nil {
		t.Fatalf("Bulk add failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("Expected 3 ids, got %d", len(ids))
	}
	if ids[0] != "p1" || ids[2] != "s1" {
		t.Errorf("IDs out of order: %v", ids)
	}

	stats := g.Statistics()
	if stats.EntityCount != 3 {
		t.Errorf("Expected 3 entities, got %d", stats.EntityCount)
	}
	if stats.EntityKinds["person"] != 2 {
		t.Errorf("Expected 2 persons, got %d", stats.EntityKinds["person"])
	}
}

func TestGraph_AddEntitiesBulk_AtomicOnFailure(t *testing.T) {
	g := New()

	ents := []model.Entity{
		testPerson("p1", "alice"),
		testPerson("p1", "duplicate"),
	}
	if _, err := g.AddEntitiesBulk(ents); err == nil {
		t.Fatal("Expected duplicate error")
	}

	// Nothing from the failed batch may be visible.
	if stats := g.Statistics(); stats.EntityCount != 0 {
		t.Errorf("Expected empty graph after failed bulk, got %d entities", stats.EntityCount)
	}
}

func TestGraph_AddRelationship_DanglingEndpoint(t *testing.T) {
	g := New()
	if err := g.AddEntity(testPerson("p1", "alice")); err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	err := g.AddRelationship(testRel("r1", model.RelWorksIn, "p1", "ghost"))
	if !errors.Is(err, ErrDanglingEndpoint) {
		t.Errorf("Expected ErrDanglingEndpoint, got %v", err)
	}
}

func TestGraph_AddRelationshipsBulk(t *testing.T) {
	g := New()

	ents := []model.Entity{
		testPerson("p1", "alice"),
		testPerson("p2", "bob"),
		testPerson("p3", "carol"),
	}
	if _, err := g.AddEntitiesBulk(ents); err != nil {
		t.Fatalf("Bulk entity add failed: %v", err)
	}

	rels := []*model.Relationship{
		testRel("r1", model.RelReportsTo, "p2", "p1"),
		testRel("r2", model.RelReportsTo, "p3", "p1"),
		testRel("r3", model.RelManages, "p1", "p2"),
	}
	ids, err := g.AddRelationshipsBulk(rels)
	if err != nil {
		t.Fatalf("Bulk relationship add failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("Expected 3 ids, got %d", len(ids))
	}

	stats := g.Statistics()
	if stats.RelationshipCount != 3 {
		t.Errorf("Expected 3 relationships, got %d", stats.RelationshipCount)
	}
	if stats.RelationshipKinds["REPORTS_TO"] != 2 {
		t.Errorf("Expected 2 REPORTS_TO, got %d", stats.RelationshipKinds["REPORTS_TO"])
	}
}

func TestGraph_UpdateEntity_BumpsVersion(t *testing.T) {
	g := New()
	if err := g.AddEntity(testPerson("p1", "alice")); err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	updated := testPerson("p1", "alice a.")
	if err := g.UpdateEntity(updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := g.GetEntity("p1")
	if err != nil {
		t.Fatalf("Failed to get entity: %v", err)
	}
	if got.Meta().Version != 2 {
		t.Errorf("Expected version 2, got %d", got.Meta().Version)
	}
	if got.Meta().Name != "alice a." {
		t.Errorf("Expected updated name, got %s", got.Meta().Name)
	}
}

func TestGraph_UpdateEntity_KindMismatch(t *testing.T) {
	g := New()
	if err := g.AddEntity(testPerson("x1", "alice")); err != nil {
		t.Fatalf("Failed to add entity: %v", err)
	}

	err := g.UpdateEntity(testSystem("x1", "web-01"))
	if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Expected ErrInvalidKind, got %v", err)
	}
}

func TestGraph_DeleteEntity_DetachesRelationships(t *testing.T) {
	g := New()
	if _, err := g.AddEntitiesBulk([]model.Entity{
		testPerson("p1", "alice"),
		testPerson("p2", "bob"),
	}); err != nil {
		t.Fatalf("Bulk add failed: %v", err)
	}
	if err := g.AddRelationship(testRel("r1", model.RelReportsTo, "p2", "p1")); err != nil {
		t.Fatalf("Add relationship failed: %v", err)
	}

	if err := g.DeleteEntity("p1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	stats := g.Statistics()
	if stats.EntityCount != 1 {
		t.Errorf("Expected 1 entity, got %d", stats.EntityCount)
	}
	if stats.RelationshipCount != 0 {
		t.Errorf("Expected relationships detached, got %d", stats.RelationshipCount)
	}
	if _, err := g.GetRelationship("r1"); !errors.Is(err, ErrRelationshipNotFound) {
		t.Errorf("Expected relationship gone, got %v", err)
	}
}

func TestGraph_Statistics_Density(t *testing.T) {
	g := New()
	if _, err := g.AddEntitiesBulk([]model.Entity{
		testPerson("p1", "a"),
		testPerson("p2", "b"),
		testPerson("p3", "c"),
	}); err != nil {
		t.Fatalf("Bulk add failed: %v", err)
	}
	if err := g.AddRelationship(testRel("r1", model.RelReportsTo, "p2", "p1")); err != nil {
		t.Fatalf("Add relationship failed: %v", err)
	}

	stats := g.Statistics()
	// Directed density: 1 edge over 3*2 possible.
	want := 1.0 / 6.0
	if diff := stats.Density - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected density %f, got %f", want, stats.Density)
	}
}

func TestGraph_EntitiesByKind_InsertionOrder(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		if err := g.AddEntity(testPerson(fmt.Sprintf("p%d", i), fmt.Sprintf("person-%d", i))); err != nil {
			t.Fatalf("Failed to add entity: %v", err)
		}
	}

	people := g.EntitiesByKind(model.KindPerson)
	if len(people) != 5 {
		t.Fatalf("Expected 5 people, got %d", len(people))
	}
	for i, p := range people {
		want := fmt.Sprintf("p%d", i)
		if p.EntityID() != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, p.EntityID())
		}
	}
}
