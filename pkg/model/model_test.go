package model

import (
	"encoding/json"
	"testing"
	"time"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		likelihood float64
		impact     float64
		want       string
	}{
		{1, 1, "low"},
		{2, 2, "low"},
		{1, 4, "low"},
		{3, 3, "medium"},
		{2, 4, "medium"},
		{3, 5, "high"},
		{4, 4, "high"},
		{5, 4, "critical"},
		{5, 5, "critical"},
	}
	for _, c := range cases {
		if got := SeverityFor(c.likelihood, c.impact); got != c.want {
			t.Errorf("SeverityFor(%v, %v) = %q, want %q", c.likelihood, c.impact, got, c.want)
		}
	}
}

func TestCVSSSeverity(t *testing.T) {
	cases := []struct {
		cvss float64
		want string
	}{
		{1.0, "low"},
		{3.9, "low"},
		{4.0, "medium"},
		{6.9, "medium"},
		{7.0, "high"},
		{8.9, "high"},
		{9.0, "critical"},
		{10.0, "critical"},
	}
	for _, c := range cases {
		if got := CVSSSeverity(c.cvss); got != c.want {
			t.Errorf("CVSSSeverity(%v) = %q, want %q", c.cvss, got, c.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	if !KindPerson.Valid() {
		t.Error("person should be a valid kind")
	}
	if !KindRisk.Valid() {
		t.Error("risk should be a valid kind")
	}
	if Kind("starship").Valid() {
		t.Error("starship should not be a valid kind")
	}
}

func TestAllKindsDisjoint(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, kind := range AllKinds() {
		if seen[kind] {
			t.Errorf("kind %q listed twice", kind)
		}
		seen[kind] = true
	}
	if len(seen) != len(PrimaryKinds())+len(ExtendedKinds()) {
		t.Errorf("AllKinds() has %d kinds, want %d", len(seen), len(PrimaryKinds())+len(ExtendedKinds()))
	}
}

func TestNewRelationshipDefaults(t *testing.T) {
	rel := NewRelationship("r-1", RelWorksIn, "p-1", "d-1", testClock)
	if rel.Weight != 1.0 {
		t.Errorf("Weight = %v, want 1.0", rel.Weight)
	}
	if rel.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", rel.Confidence)
	}
	if rel.Version != 1 {
		t.Errorf("Version = %d, want 1", rel.Version)
	}

	rel.WithWeight(0.5).WithProp("channel", "ldap")
	if rel.Weight != 0.5 {
		t.Errorf("WithWeight did not apply: %v", rel.Weight)
	}
	if rel.Props["channel"] != "ldap" {
		t.Errorf("WithProp did not apply: %v", rel.Props)
	}
}

func TestUnmarshalEntityDispatch(t *testing.T) {
	person := &Person{
		Base:  NewBase("p-1", KindPerson, "Alice Chen", testClock),
		Email: "alice.chen@corp.example.com",
	}
	data, err := json.Marshal(person)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := UnmarshalEntity(data)
	if err != nil {
		t.Fatalf("UnmarshalEntity() error = %v", err)
	}
	got, ok := decoded.(*Person)
	if !ok {
		t.Fatalf("decoded type = %T, want *Person", decoded)
	}
	if got.Email != person.Email {
		t.Errorf("email = %q, want %q", got.Email, person.Email)
	}
}

func TestUnmarshalEntityGeneric(t *testing.T) {
	team := &Generic{Base: NewBase("t-1", KindTeam, "Platform Team", testClock)}
	team.Attrs["agile"] = true

	data, err := json.Marshal(team)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := UnmarshalEntity(data)
	if err != nil {
		t.Fatalf("UnmarshalEntity() error = %v", err)
	}
	if _, ok := decoded.(*Generic); !ok {
		t.Fatalf("decoded type = %T, want *Generic", decoded)
	}
	if decoded.EntityKind() != KindTeam {
		t.Errorf("kind = %q, want team", decoded.EntityKind())
	}
}

func TestUnmarshalEntityRejectsUnknownKind(t *testing.T) {
	if _, err := UnmarshalEntity([]byte(`{"id":"x-1","kind":"starship"}`)); err == nil {
		t.Error("UnmarshalEntity should reject unknown kinds")
	}
}
