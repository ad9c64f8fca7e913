package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dd0wney/cluso-synthgraph/pkg/graph"
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func buildTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()

	alice := &model.Person{
		Base:      model.NewBase("p-1", model.KindPerson, "Alice Chen", testClock),
		FirstName: "Alice",
		LastName:  "Chen",
		Email:     "alice.chen@corp.example.com",
		Seniority: "senior",
	}
	web := &model.System{
		Base:        model.NewBase("s-1", model.KindSystem, "web-001.corp.internal", testClock),
		Hostname:    "web-001.corp.internal",
		SystemType:  "web_server",
		TechStack:   []string{"nginx"},
		Criticality: "high",
		Environment: "production",
	}
	team := &model.Generic{
		Base: model.NewBase("t-1", model.KindTeam, "Platform Team", testClock),
	}
	team.Attrs["focus"] = "infrastructure"

	if _, err := g.AddEntitiesBulk([]model.Entity{alice, web, team}); err != nil {
		t.Fatalf("AddEntitiesBulk() error = %v", err)
	}

	rel := model.NewRelationship("r-1", model.RelMemberOf, "p-1", "t-1", testClock)
	if _, err := g.AddRelationshipsBulk([]*model.Relationship{rel}); err != nil {
		t.Fatalf("AddRelationshipsBulk() error = %v", err)
	}
	return g
}

func TestJSONLRoundTrip(t *testing.T) {
	g := buildTestGraph(t)

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, g); err != nil {
		t.Fatalf("WriteJSONL() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("JSONL line count = %d, want 4", len(lines))
	}

	entities, relationships, err := ReadJSONL(&buf)
	if err != nil {
		t.Fatalf("ReadJSONL() error = %v", err)
	}
	if len(entities) != 3 {
		t.Errorf("entities = %d, want 3", len(entities))
	}
	if len(relationships) != 1 {
		t.Errorf("relationships = %d, want 1", len(relationships))
	}

	person, ok := entities[0].(*model.Person)
	if !ok {
		t.Fatalf("first entity type = %T, want *model.Person", entities[0])
	}
	if person.Email != "alice.chen@corp.example.com" {
		t.Errorf("person email = %q after round trip", person.Email)
	}
}

func TestJSONLDecodesGenericKinds(t *testing.T) {
	g := buildTestGraph(t)

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, g); err != nil {
		t.Fatalf("WriteJSONL() error = %v", err)
	}

	entities, _, err := ReadJSONL(&buf)
	if err != nil {
		t.Fatalf("ReadJSONL() error = %v", err)
	}

	var team *model.Generic
	for _, ent := range entities {
		if ent.EntityKind() == model.KindTeam {
			team = ent.(*model.Generic)
		}
	}
	if team == nil {
		t.Fatal("team entity missing after round trip")
	}
	if team.Attrs["focus"] != "infrastructure" {
		t.Errorf("team attrs = %v, want focus=infrastructure", team.Attrs)
	}
}

func TestReadJSONLRejectsUnknownRecord(t *testing.T) {
	input := strings.NewReader(`{"record":"mystery","data":{}}`)
	if _, _, err := ReadJSONL(input); err == nil {
		t.Error("ReadJSONL() should reject unknown record types")
	}
}

func TestWriteGraphML(t *testing.T) {
	g := buildTestGraph(t)

	var buf bytes.Buffer
	if err := WriteGraphML(&buf, g); err != nil {
		t.Fatalf("WriteGraphML() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<graphml xmlns="http://graphml.graphdrawing.org/xmlns">`,
		`edgedefault="directed"`,
		`<node id="p-1">`,
		`<edge id="r-1" source="p-1" target="t-1">`,
		`<data key="kind">person</data>`,
		`<data key="relkind">MEMBER_OF</data>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GraphML output missing %q", want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := buildTestGraph(t)

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, g, testClock); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	entities, relationships, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if len(entities) != 3 {
		t.Errorf("entities = %d, want 3", len(entities))
	}
	if len(relationships) != 1 {
		t.Errorf("relationships = %d, want 1", len(relationships))
	}

	system, ok := entities[1].(*model.System)
	if !ok {
		t.Fatalf("second entity type = %T, want *model.System", entities[1])
	}
	if system.Hostname != "web-001.corp.internal" {
		t.Errorf("system hostname = %q after round trip", system.Hostname)
	}
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	if _, _, err := ReadSnapshot(strings.NewReader("not a snapshot")); err == nil {
		t.Error("ReadSnapshot() should reject non-snappy input")
	}
}
