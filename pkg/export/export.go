// Package export serializes generated graphs: JSON Lines for
// downstream pipelines, GraphML for visualization tools, and a
// compressed snapshot format for saving and reloading full datasets.
package export

import (
	"github.com/dd0wney/cluso-synthgraph/pkg/model"
)

// GraphSource is the read side an exporter needs. *graph.Graph
// implements it; so does any view returning deterministic ordering.
type GraphSource interface {
	AllEntities() []model.Entity
	AllRelationships() []*model.Relationship
}
