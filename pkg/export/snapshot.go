package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

const snapshotFormatVersion = 1

// Snapshot is a self-describing dump of a generated graph.
type Snapshot struct {
	FormatVersion int                   `json:"format_version"`
	CreatedAt     time.Time             `json:"created_at"`
	Entities      []json.RawMessage     `json:"entities"`
	Relationships []*model.Relationship `json:"relationships"`
}

// WriteSnapshot writes a snappy-compressed JSON snapshot of the graph.
func WriteSnapshot(w io.Writer, src GraphSource, now time.Time) error {
	snap := Snapshot{
		FormatVersion: snapshotFormatVersion,
		CreatedAt:     now.UTC(),
		Relationships: src.AllRelationships(),
	}

	for _, ent := range src.AllEntities() {
		data, err := json.Marshal(ent)
		if err != nil {
			return fmt.Errorf("export: marshaling %s entity %s: %w", ent.EntityKind(), ent.EntityID(), err)
		}
		snap.Entities = append(snap.Entities, data)
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("export: marshaling snapshot: %w", err)
	}

	if _, err := w.Write(snappy.Encode(nil, raw)); err != nil {
		return fmt.Errorf("export: writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot reads a snapshot back into typed entities and
// relationships. Snapshots from a newer format version are rejected.
func ReadSnapshot(r io.Reader) ([]model.Entity, []*model.Relationship, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("export: reading snapshot: %w", err)
	}

	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("export: decompressing snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil, fmt.Errorf("export: decoding snapshot: %w", err)
	}
	if snap.FormatVersion > snapshotFormatVersion {
		return nil, nil, fmt.Errorf("export: unsupported snapshot format version %d", snap.FormatVersion)
	}

	entities := make([]model.Entity, 0, len(snap.Entities))
	for _, data := range snap.Entities {
		ent, err := model.UnmarshalEntity(data)
		if err != nil {
			return nil, nil, fmt.Errorf("export: %w", err)
		}
		entities = append(entities, ent)
	}

	return entities, snap.Relationships, nil
}
