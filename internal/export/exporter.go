// Package export flattens the node graph to the JSON interchange document.
package export

import (
	"encoding/json"
	"io"

	"github.com/zheng/doxgraph/internal/graph"
)

// Exporter serializes a parsed registry.
type Exporter struct {
	reg *graph.Registry
}

// NewExporter creates an exporter over the registry.
func NewExporter(reg *graph.Registry) *Exporter {
	return &Exporter{reg: reg}
}

// Export writes the full node collection to w as an indented JSON array.
// Each node serializes its variant's field set; relationship sets render as
// lists whose order carries no meaning. Nested value records such as
// function parameters are encoded recursively.
func (e *Exporter) Export(w io.Writer) error {
	nodes := e.reg.Nodes
	if nodes == nil {
		nodes = []graph.Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(nodes)
}
