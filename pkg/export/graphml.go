package export

import (
	"encoding/xml"
	"fmt"
	"io"
)

// GraphML scaffolding. Only the attribute keys we actually emit are
// declared; consumers like yEd and Gephi require the declarations.

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	ID     string        `xml:"id,attr"`
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML serializes the graph as GraphML with kind and name
// attributes on nodes and kind and weight attributes on edges.
func WriteGraphML(w io.Writer, src GraphSource) error {
	doc := graphmlDoc{
		XMLNS: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: "kind", For: "node", AttrName: "kind", AttrType: "string"},
			{ID: "name", For: "node", AttrName: "name", AttrType: "string"},
			{ID: "relkind", For: "edge", AttrName: "kind", AttrType: "string"},
			{ID: "weight", For: "edge", AttrName: "weight", AttrType: "double"},
		},
		Graph: graphmlGraph{ID: "G", EdgeDefault: "directed"},
	}

	for _, ent := range src.AllEntities() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{
			ID: ent.EntityID(),
			Data: []graphmlData{
				{Key: "kind", Value: string(ent.EntityKind())},
				{Key: "name", Value: ent.Meta().Name},
			},
		})
	}

	for _, rel := range src.AllRelationships() {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			ID:     rel.ID,
			Source: rel.FromID,
			Target: rel.ToID,
			Data: []graphmlData{
				{Key: "relkind", Value: string(rel.Kind)},
				{Key: "weight", Value: fmt.Sprintf("%g", rel.Weight)},
			},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: writing graphml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encoding graphml: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("export: finalizing graphml: %w", err)
	}
	return nil
}
