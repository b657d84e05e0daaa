// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"encoding/json"
	"fmt"
)

// jsonldValue is one entry in an expanded JSON-LD node's property array: an
// IRI reference ("@id"), or a literal with an optional "@language"/"@type".
type jsonldValue struct {
	ID       string `json:"@id,omitempty"`
	Value    string `json:"@value,omitempty"`
	Language string `json:"@language,omitempty"`
	Type     string `json:"@type,omitempty"`
}

// jsonldNode is one expanded-form JSON-LD node object.
type jsonldNode struct {
	ID         string                   `json:"@id"`
	Type       []string                 `json:"@type,omitempty"`
	Properties map[string][]jsonldValue `json:"-"`
}

// MarshalJSON flattens Properties into the node object alongside @id/@type,
// since encoding/json cannot merge a dynamic map into named struct fields in
// one pass.
func (n jsonldNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(n.Properties)+2)
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// WriteJSONLD serializes g as an expanded JSON-LD document: one node object
// per distinct subject, each property an array of value objects, in
// subject-insertion order.
func WriteJSONLD(g *Graph) (string, error) {
	var order []string
	nodes := make(map[string]*jsonldNode)
	nodeID := func(n Node) string {
		if n.Kind == Blank {
			return "_:" + n.Value
		}
		return n.Value
	}

	for _, t := range g.Triples() {
		id := nodeID(t.Subject)
		node, ok := nodes[id]
		if !ok {
			node = &jsonldNode{ID: id, Properties: make(map[string][]jsonldValue)}
			nodes[id] = node
			order = append(order, id)
		}
		if t.Predicate.Value == RDFType {
			node.Type = append(node.Type, t.Object.Value)
			continue
		}
		var v jsonldValue
		switch t.Object.Kind {
		case IRI, Blank:
			v = jsonldValue{ID: nodeID(t.Object)}
		default:
			v = jsonldValue{Value: t.Object.Value, Language: t.Object.Lang, Type: t.Object.Datatype}
		}
		node.Properties[t.Predicate.Value] = append(node.Properties[t.Predicate.Value], v)
	}

	out := make([]*jsonldNode, 0, len(order))
	for _, id := range order {
		out = append(out, nodes[id])
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseJSONLD parses the expanded-form document WriteJSONLD emits back into
// a Graph.
func ParseJSONLD(text string) (*Graph, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("rdf: parsing JSON-LD: %w", err)
	}
	g := New()
	for _, obj := range raw {
		var id string
		if err := json.Unmarshal(obj["@id"], &id); err != nil {
			return nil, fmt.Errorf("rdf: node missing @id: %w", err)
		}
		subject := jsonldTermFromID(id)
		if rawType, ok := obj["@type"]; ok {
			var types []string
			if err := json.Unmarshal(rawType, &types); err != nil {
				return nil, err
			}
			for _, ty := range types {
				g.Add(subject, NewIRI(RDFType), NewIRI(ty))
			}
		}
		for key, rawVals := range obj {
			if key == "@id" || key == "@type" {
				continue
			}
			var vals []jsonldValue
			if err := json.Unmarshal(rawVals, &vals); err != nil {
				return nil, fmt.Errorf("rdf: property %q: %w", key, err)
			}
			for _, v := range vals {
				g.Add(subject, NewIRI(key), jsonldValueToNode(v))
			}
		}
	}
	return g, nil
}

func jsonldTermFromID(id string) Node {
	if len(id) > 2 && id[:2] == "_:" {
		return NewBlank(id[2:])
	}
	return NewIRI(id)
}

func jsonldValueToNode(v jsonldValue) Node {
	if v.ID != "" {
		return jsonldTermFromID(v.ID)
	}
	if v.Language != "" {
		return NewLangLiteral(v.Value, v.Language)
	}
	if v.Type != "" {
		return NewTypedLiteral(v.Value, v.Type)
	}
	return NewLiteral(v.Value)
}
