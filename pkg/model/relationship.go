package model

import "time"

// Relationship is a directed, typed edge between two entities.
// Endpoints are referenced by id only; resolving them is the graph
// engine's job, never the relationship's.
type Relationship struct {
	ID         string           `json:"id" yaml:"id"`
	Kind       RelationshipKind `json:"kind" yaml:"kind"`
	FromID     string           `json:"from_id" yaml:"from_id"`
	ToID       string           `json:"to_id" yaml:"to_id"`
	Weight     float64          `json:"weight" yaml:"weight"`
	Confidence float64          `json:"confidence" yaml:"confidence"`
	Props      map[string]any   `json:"props,omitempty" yaml:"props,omitempty"`
	CreatedAt  time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" yaml:"updated_at"`
	Version    int              `json:"version" yaml:"version"`
}

// NewRelationship constructs an edge with default weight and confidence.
func NewRelationship(id string, kind RelationshipKind, fromID, toID string, now time.Time) *Relationship {
	return &Relationship{
		ID:         id,
		Kind:       kind,
		FromID:     fromID,
		ToID:       toID,
		Weight:     1.0,
		Confidence: 1.0,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
}

// WithWeight sets the edge weight and returns the relationship for chaining.
func (r *Relationship) WithWeight(w float64) *Relationship {
	r.Weight = w
	return r
}

// WithProp sets a single property, initializing the map if needed.
func (r *Relationship) WithProp(key string, value any) *Relationship {
	if r.Props == nil {
		r.Props = make(map[string]any)
	}
	r.Props[key] = value
	return r
}
