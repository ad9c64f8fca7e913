package graph

import (
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Direction selects which adjacency list Neighbors walks.
type Direction int

const (
	Outgoing Direction = iota
	Incoming
	Both
)

// NeighborOption filters a Neighbors query.
type NeighborOption func(*neighborQuery)

type neighborQuery struct {
	relationshipKind model.RelationshipKind
	entityKind       model.Kind
	filterRelKind    bool
	filterEntKind    bool
}

// WithRelationshipKind restricts the walk to edges of the given kind.
func WithRelationshipKind(kind model.RelationshipKind) NeighborOption {
	return func(q *neighborQuery) {
		q.relationshipKind = kind
		q.filterRelKind = true
	}
}

// WithEntityKind restricts results to entities of the given kind.
func WithEntityKind(kind model.Kind) NeighborOption {
	return func(q *neighborQuery) {
		q.entityKind = kind
		q.filterEntKind = true
	}
}

// Neighbors returns the entities adjacent to id along the requested
// direction, in edge insertion order. A node seen through multiple
// edges appears once.
func (g *Graph) Neighbors(id string, direction Direction, opts ...NeighborOption) ([]model.Entity, error) {
	var q neighborQuery
	for _, opt := range opts {
		opt(&q)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.entities[id]; !ok {
		return nil, EntityNotFoundError(id)
	}

	var relIDs []string
	switch direction {
	case Outgoing:
		relIDs = g.outgoing[id]
	case Incoming:
		relIDs = g.incoming[id]
	case Both:
		relIDs = append(append([]string{}, g.outgoing[id]...), g.incoming[id]...)
	}

	seen := make(map[string]struct{})
	out := make([]model.Entity, 0, len(relIDs))
	for _, relID := range relIDs {
		rel, ok := g.relationships[relID]
		if !ok {
			continue
		}
		if q.filterRelKind && rel.Kind != q.relationshipKind {
			continue
		}

		otherID := rel.ToID
		if otherID == id {
			otherID = rel.FromID
		}
		if _, dup := seen[otherID]; dup {
			continue
		}

		other, ok := g.entities[otherID]
		if !ok {
			continue
		}
		if q.filterEntKind && other.EntityKind() != q.entityKind {
			continue
		}
		seen[otherID] = struct{}{}
		out = append(out, other)
	}
	return out, nil
}

// Traverse walks the graph breadth-first from start, following outgoing
// edges up to maxDepth hops, and returns every reached entity including
// the start node.
func (g *Graph) Traverse(start string, maxDepth int) ([]model.Entity, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	root, ok := g.entities[start]
	if !ok {
		return nil, EntityNotFoundError(start)
	}

	visited := map[string]struct{}{start: {}}
	result := []model.Entity{root}
	frontier := []string{start}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, relID := range g.outgoing[id] {
				rel, ok := g.relationships[relID]
				if !ok {
					continue
				}
				if _, dup := visited[rel.ToID]; dup {
					continue
				}
				ent, ok := g.entities[rel.ToID]
				if !ok {
					continue
				}
				visited[rel.ToID] = struct{}{}
				result = append(result, ent)
				next = append(next, rel.ToID)
			}
		}
		frontier = next
	}
	return result, nil
}
