package graph

import (
	"sync/atomic"
)

// Statistics is a read-only summary of the graph's current shape.
type Statistics struct {
	EntityCount       uint64            `json:"entity_count"`
	RelationshipCount uint64            `json:"relationship_count"`
	EntityKinds       map[string]uint64 `json:"entity_types"`
	RelationshipKinds map[string]uint64 `json:"relationship_types"`
	Density           float64           `json:"density"`
	AvgDegree         float64           `json:"avg_degree"`
}

// Statistics computes counts, per-kind breakdowns, directed density
// (|E| / |V|*(|V|-1)) and the average out-degree.
func (g *Graph) Statistics() Statistics {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := Statistics{
		EntityCount:       atomic.LoadUint64(&g.entityCount),
		RelationshipCount: atomic.LoadUint64(&g.relationshipCount),
		EntityKinds:       make(map[string]uint64, len(g.entitiesByKind)),
		RelationshipKinds: make(map[string]uint64, len(g.relationshipsByKind)),
	}

	for kind, ids := range g.entitiesByKind {
		if len(ids) > 0 {
			stats.EntityKinds[kind.String()] = uint64(len(ids))
		}
	}
	for kind, ids := range g.relationshipsByKind {
		if len(ids) > 0 {
			stats.RelationshipKinds[kind.String()] = uint64(len(ids))
		}
	}

	n := float64(stats.EntityCount)
	e := float64(stats.RelationshipCount)
	if n > 1 {
		stats.Density = e / (n * (n - 1))
		stats.AvgDegree = e / n
	}
	return stats
}
