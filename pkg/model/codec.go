package model

import (
	"encoding/json"
	"fmt"
)

// newOfKind returns a zero record of the right concrete type for kind.
// Extended-ontology kinds map to Generic.
func newOfKind(kind Kind) (Entity, error) {
	switch kind {
	case KindPerson:
		return &Person{}, nil
	case KindDepartment:
		return &Department{}, nil
	case KindRole:
		return &Role{}, nil
	case KindSystem:
		return &System{}, nil
	case KindNetwork:
		return &Network{}, nil
	case KindDataAsset:
		return &DataAsset{}, nil
	case KindPolicy:
		return &Policy{}, nil
	case KindVendor:
		return &Vendor{}, nil
	case KindLocation:
		return &Location{}, nil
	case KindVulnerability:
		return &Vulnerability{}, nil
	case KindThreatActor:
		return &ThreatActor{}, nil
	case KindIncident:
		return &Incident{}, nil
	}
	if kind.Valid() {
		return &Generic{}, nil
	}
	return nil, fmt.Errorf("model: unknown entity kind %q", kind)
}

// UnmarshalEntity decodes a JSON entity into its concrete typed record,
// dispatching on the embedded kind field.
func UnmarshalEntity(data []byte) (Entity, error) {
	var probe struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("model: decoding entity kind: %w", err)
	}

	ent, err := newOfKind(probe.Kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, ent); err != nil {
		return nil, fmt.Errorf("model: decoding %s entity: %w", probe.Kind, err)
	}
	return ent, nil
}
