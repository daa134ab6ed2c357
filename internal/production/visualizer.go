// Package production provides integrations built on the core packages: an
// exporter for class metadata and a channel publisher for change notifications.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tortugaresearch/anchor/metadata"
)

// Visualizer renders class metadata.
type Visualizer struct{}

// ExportDOT generates Graphviz DOT source for a class. Every property is a
// node; calculated properties get an edge from each of their sources. Names
// in changed are highlighted.
func (v *Visualizer) ExportDOT(c *metadata.Class, changed []string) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Metadata {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
`)

	dirty := make(map[string]bool, len(changed))
	for _, n := range changed {
		dirty[n] = true
	}

	fmt.Fprintf(&buf, "  subgraph cluster_%s {\n", c.Name())
	fmt.Fprintf(&buf, "    label=%q;\n", c.Name())
	for _, p := range c.Properties() {
		renderProperty(&buf, p, dirty[p.Name])
	}
	buf.WriteString("  }\n")

	for _, e := range collectEdges(c) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func renderProperty(buf *bytes.Buffer, p *metadata.Property, changed bool) {
	attrs := ""
	if p.IsCalculated() {
		attrs = " shape=ellipse"
	}
	if changed {
		attrs += " style=filled fillcolor=lightgreen"
	}
	fmt.Fprintf(buf, "    %q [label=%q%s];\n", p.Name, p.Name, attrs)
}

// Edge is a source to calculated property dependency.
type Edge struct {
	From string
	To   string
}

func collectEdges(c *metadata.Class) []Edge {
	var edges []Edge
	for _, p := range c.Calculated() {
		for _, src := range p.CalculatedFrom {
			edges = append(edges, Edge{From: src, To: p.Name})
		}
	}
	return edges
}

// ClassInfo is the serialisable form of a class.
type ClassInfo struct {
	Class      string         `json:"class" yaml:"class"`
	Properties []PropertyInfo `json:"properties" yaml:"properties"`
}

// PropertyInfo is the serialisable form of a property.
type PropertyInfo struct {
	Name           string   `json:"name" yaml:"name"`
	CalculatedFrom []string `json:"calculated_from,omitempty" yaml:"calculated_from,omitempty"`
	Affects        []string `json:"affects,omitempty" yaml:"affects,omitempty"`
	HasGetter      bool     `json:"has_getter" yaml:"has_getter"`
}

// Describe converts c to its serialisable form.
func (v *Visualizer) Describe(c *metadata.Class) ClassInfo {
	info := ClassInfo{Class: c.Name()}
	for _, p := range c.Properties() {
		info.Properties = append(info.Properties, PropertyInfo{
			Name:           p.Name,
			CalculatedFrom: p.CalculatedFrom,
			Affects:        p.AffectsCalculated,
			HasGetter:      p.Getter != nil,
		})
	}
	return info
}

// ExportJSON serializes the class description to indented JSON.
func (v *Visualizer) ExportJSON(c *metadata.Class) ([]byte, error) {
	return json.MarshalIndent(v.Describe(c), "", "  ")
}

// ExportYAML serializes the class description to YAML.
func (v *Visualizer) ExportYAML(c *metadata.Class) ([]byte, error) {
	return yaml.Marshal(v.Describe(c))
}
