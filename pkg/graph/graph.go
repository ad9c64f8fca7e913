// Package graph implements the in-memory property-graph engine the
// synthetic generator loads into: typed entities and directed typed
// relationships with kind indexes, adjacency lists, bulk operations,
// and traversal.
package graph

import (
	"sync"
	"sync/atomic"

	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// Graph is the in-memory graph engine. All operations are safe for
// concurrent use; reads take the shared lock.
type Graph struct {
	// Core data structures
	entities      map[string]model.Entity
	relationships map[string]*model.Relationship

	// Indexes for fast lookups
	entitiesByKind      map[model.Kind][]string
	relationshipsByKind map[model.RelationshipKind][]string
	outgoing            map[string][]string // entity ID -> outgoing relationship IDs
	incoming            map[string][]string // entity ID -> incoming relationship IDs

	// Concurrency control
	mu sync.RWMutex

	// Counters (atomic, readable without the lock)
	entityCount       uint64
	relationshipCount uint64
}

// New creates an empty graph engine.
func New() *Graph {
	return &Graph{
		entities:            make(map[string]model.Entity),
		relationships:       make(map[string]*model.Relationship),
		entitiesByKind:      make(map[model.Kind][]string),
		relationshipsByKind: make(map[model.RelationshipKind][]string),
		outgoing:            make(map[string][]string),
		incoming:            make(map[string][]string),
	}
}

// AddEntity inserts a single entity.
func (g *Graph) AddEntity(ent model.Entity) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addEntityLocked(ent, -1)
}

// AddEntitiesBulk inserts a batch of entities and returns their IDs in
// input order. The batch is validated up front and applied atomically:
// either every entity is inserted or none are.
func (g *Graph) AddEntitiesBulk(ents []model.Entity) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, len(ents))
	for i, ent := range ents {
		if err := g.validateEntityLocked(ent, i); err != nil {
			return nil, err
		}
		id := ent.EntityID()
		if _, dup := seen[id]; dup {
			return nil, NewError("AddEntitiesBulk").Entity(id).Index(i).Cause(ErrDuplicateID).Err()
		}
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(ents))
	for i, ent := range ents {
		if err := g.addEntityLocked(ent, i); err != nil {
			return nil, err
		}
		ids = append(ids, ent.EntityID())
	}
	return ids, nil
}

// AddRelationship inserts a single relationship. Both endpoints must
// already exist.
func (g *Graph) AddRelationship(rel *model.Relationship) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addRelationshipLocked(rel, -1)
}

// AddRelationshipsBulk inserts a batch of relationships and returns
// their IDs in input order. Validated up front, applied atomically.
func (g *Graph) AddRelationshipsBulk(rels []*model.Relationship) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{}, len(rels))
	for i, rel := range rels {
		if err := g.validateRelationshipLocked(rel, i); err != nil {
			return nil, err
		}
		if _, dup := seen[rel.ID]; dup {
			return nil, NewError("AddRelationshipsBulk").Relationship(rel.ID).Index(i).Cause(ErrDuplicateID).Err()
		}
		seen[rel.ID] = struct{}{}
	}

	ids := make([]string, 0, len(rels))
	for i, rel := range rels {
		if err := g.addRelationshipLocked(rel, i); err != nil {
			return nil, err
		}
		ids = append(ids, rel.ID)
	}
	return ids, nil
}

// GetEntity returns the entity with the given ID.
func (g *Graph) GetEntity(id string) (model.Entity, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ent, ok := g.entities[id]
	if !ok {
		return nil, EntityNotFoundError(id)
	}
	return ent, nil
}

// GetRelationship returns the relationship with the given ID.
func (g *Graph) GetRelationship(id string) (*model.Relationship, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rel, ok := g.relationships[id]
	if !ok {
		return nil, RelationshipNotFoundError(id)
	}
	return rel, nil
}

// UpdateEntity replaces an existing entity of the same kind and bumps
// its version counter.
func (g *Graph) UpdateEntity(ent model.Entity) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := ent.EntityID()
	existing, ok := g.entities[id]
	if !ok {
		return EntityNotFoundError(id)
	}
	if existing.EntityKind() != ent.EntityKind() {
		return NewError("UpdateEntity").Entity(id).Cause(ErrInvalidKind).Err()
	}

	ent.Meta().Version = existing.Meta().Version + 1
	g.entities[id] = ent
	return nil
}

// DeleteEntity removes the entity and every relationship touching it.
func (g *Graph) DeleteEntity(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ent, ok := g.entities[id]
	if !ok {
		return EntityNotFoundError(id)
	}

	for _, relID := range append(append([]string{}, g.outgoing[id]...), g.incoming[id]...) {
		if rel, exists := g.relationships[relID]; exists {
			g.removeRelationshipLocked(rel)
		}
	}

	delete(g.entities, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	g.entitiesByKind[ent.EntityKind()] = removeID(g.entitiesByKind[ent.EntityKind()], id)
	atomic.AddUint64(&g.entityCount, ^uint64(0))
	return nil
}

// DeleteRelationship removes a single relationship.
func (g *Graph) DeleteRelationship(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rel, ok := g.relationships[id]
	if !ok {
		return RelationshipNotFoundError(id)
	}
	g.removeRelationshipLocked(rel)
	return nil
}

// EntitiesByKind returns all entities of the given kind in insertion order.
func (g *Graph) EntitiesByKind(kind model.Kind) []model.Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.entitiesByKind[kind]
	out := make([]model.Entity, 0, len(ids))
	for _, id := range ids {
		if ent, ok := g.entities[id]; ok {
			out = append(out, ent)
		}
	}
	return out
}

// RelationshipsByKind returns all relationships of the given kind in
// insertion order.
func (g *Graph) RelationshipsByKind(kind model.RelationshipKind) []*model.Relationship {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.relationshipsByKind[kind]
	out := make([]*model.Relationship, 0, len(ids))
	for _, id := range ids {
		if rel, ok := g.relationships[id]; ok {
			out = append(out, rel)
		}
	}
	return out
}

// AllEntities returns every entity, grouped by kind in canonical kind
// order and in insertion order within each kind. The ordering is
// stable across runs, which keeps exports deterministic.
func (g *Graph) AllEntities() []model.Entity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]model.Entity, 0, len(g.entities))
	for _, kind := range model.AllKinds() {
		for _, id := range g.entitiesByKind[kind] {
			if ent, ok := g.entities[id]; ok {
				out = append(out, ent)
			}
		}
	}
	return out
}

// AllRelationships returns every relationship, grouped by kind in
// canonical kind order and in insertion order within each kind.
func (g *Graph) AllRelationships() []*model.Relationship {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*model.Relationship, 0, len(g.relationships))
	for _, kind := range model.AllRelationshipKinds() {
		for _, id := range g.relationshipsByKind[kind] {
			if rel, ok := g.relationships[id]; ok {
				out = append(out, rel)
			}
		}
	}
	return out
}

// internal helpers, caller must hold the write lock

func (g *Graph) validateEntityLocked(ent model.Entity, index int) error {
	if ent == nil || ent.EntityID() == "" {
		return NewError("AddEntity").Entity("").Index(index).Cause(ErrInvalidID).Err()
	}
	if !ent.EntityKind().Valid() {
		return NewError("AddEntity").Entity(ent.EntityID()).Index(index).Cause(ErrInvalidKind).Err()
	}
	if _, exists := g.entities[ent.EntityID()]; exists {
		return NewError("AddEntity").Entity(ent.EntityID()).Index(index).Cause(ErrDuplicateID).Err()
	}
	return nil
}

func (g *Graph) addEntityLocked(ent model.Entity, index int) error {
	if err := g.validateEntityLocked(ent, index); err != nil {
		return err
	}
	id := ent.EntityID()
	g.entities[id] = ent
	g.entitiesByKind[ent.EntityKind()] = append(g.entitiesByKind[ent.EntityKind()], id)
	atomic.AddUint64(&g.entityCount, 1)
	return nil
}

func (g *Graph) validateRelationshipLocked(rel *model.Relationship, index int) error {
	if rel == nil || rel.ID == "" {
		return NewError("AddRelationship").Relationship("").Index(index).Cause(ErrInvalidID).Err()
	}
	if _, exists := g.relationships[rel.ID]; exists {
		return NewError("AddRelationship").Relationship(rel.ID).Index(index).Cause(ErrDuplicateID).Err()
	}
	if _, ok := g.entities[rel.FromID]; !ok {
		return NewError("AddRelationship").Relationship(rel.ID).Index(index).
			Context("from=" + rel.FromID).Cause(ErrDanglingEndpoint).Err()
	}
	if _, ok := g.entities[rel.ToID]; !ok {
		return NewError("AddRelationship").Relationship(rel.ID).Index(index).
			Context("to=" + rel.ToID).Cause(ErrDanglingEndpoint).Err()
	}
	return nil
}

func (g *Graph) addRelationshipLocked(rel *model.Relationship, index int) error {
	if err := g.validateRelationshipLocked(rel, index); err != nil {
		return err
	}
	g.relationships[rel.ID] = rel
	g.relationshipsByKind[rel.Kind] = append(g.relationshipsByKind[rel.Kind], rel.ID)
	g.outgoing[rel.FromID] = append(g.outgoing[rel.FromID], rel.ID)
	g.incoming[rel.ToID] = append(g.incoming[rel.ToID], rel.ID)
	atomic.AddUint64(&g.relationshipCount, 1)
	return nil
}

func (g *Graph) removeRelationshipLocked(rel *model.Relationship) {
	delete(g.relationships, rel.ID)
	g.relationshipsByKind[rel.Kind] = removeID(g.relationshipsByKind[rel.Kind], rel.ID)
	g.outgoing[rel.FromID] = removeID(g.outgoing[rel.FromID], rel.ID)
	g.incoming[rel.ToID] = removeID(g.incoming[rel.ToID], rel.ID)
	atomic.AddUint64(&g.relationshipCount, ^uint64(0))
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
