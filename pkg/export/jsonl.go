package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// jsonlRecord wraps each line so a consumer can demux entities and
// relationships from a single stream.
type jsonlRecord struct {
	Record string          `json:"record"`
	Data   json.RawMessage `json:"data"`
}

// WriteJSONL streams the graph as JSON Lines, one record per line:
// all entities first, then all relationships.
func WriteJSONL(w io.Writer, src GraphSource) error {
	enc := json.NewEncoder(w)

	for _, ent := range src.AllEntities() {
		data, err := json.Marshal(ent)
		if err != nil {
			return fmt.Errorf("export: marshaling %s entity %s: %w", ent.EntityKind(), ent.EntityID(), err)
		}
		if err := enc.Encode(jsonlRecord{Record: "entity", Data: data}); err != nil {
			return fmt.Errorf("export: writing entity record: %w", err)
		}
	}

	for _, rel := range src.AllRelationships() {
		data, err := json.Marshal(rel)
		if err != nil {
			return fmt.Errorf("export: marshaling relationship %s: %w", rel.ID, err)
		}
		if err := enc.Encode(jsonlRecord{Record: "relationship", Data: data}); err != nil {
			return fmt.Errorf("export: writing relationship record: %w", err)
		}
	}

	return nil
}

// ReadJSONL parses a JSON Lines stream written by WriteJSONL.
func ReadJSONL(r io.Reader) ([]model.Entity, []*model.Relationship, error) {
	var (
		entities      []model.Entity
		relationships []*model.Relationship
	)

	dec := json.NewDecoder(r)
	for {
		var record jsonlRecord
		if err := dec.Decode(&record); err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, fmt.Errorf("export: reading record: %w", err)
		}

		switch record.Record {
		case "entity":
			ent, err := model.UnmarshalEntity(record.Data)
			if err != nil {
				return nil, nil, fmt.Errorf("export: %w", err)
			}
			entities = append(entities, ent)
		case "relationship":
			rel := &model.Relationship{}
			if err := json.Unmarshal(record.Data, rel); err != nil {
				return nil, nil, fmt.Errorf("export: decoding relationship: %w", err)
			}
			relationships = append(relationships, rel)
		default:
			return nil, nil, fmt.Errorf("export: unknown record type %q", record.Record)
		}
	}

	return entities, relationships, nil
}
