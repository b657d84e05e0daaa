// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import "fmt"

// Graph is a mutable, insertion-ordered set of triples with monotonic
// blank-node minting. Serialization walks triples in insertion order so two
// converter runs over identical input produce byte-identical N-Triples
// output, per the determinism requirement on blank-node IDs.
type Graph struct {
	triples []Triple
	nextID  int
}

// New returns an empty graph.
func New() *Graph { return &Graph{} }

// NewBlankNode mints a fresh blank node, unique within this graph.
func (g *Graph) NewBlankNode() Node {
	id := g.nextID
	g.nextID++
	return NewBlank(fmt.Sprintf("b%d", id))
}

// Add appends one triple.
func (g *Graph) Add(s, p, o Node) {
	g.triples = append(g.triples, Triple{Subject: s, Predicate: p, Object: o})
}

// AddTriple appends a pre-built Triple.
func (g *Graph) AddTriple(t Triple) { g.triples = append(g.triples, t) }

// Triples returns every triple in insertion order. The caller must not
// mutate the returned slice.
func (g *Graph) Triples() []Triple { return g.triples }

// Len reports the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// ByIndex is a subject-keyed lookup table, suitable for the BIBFRAME-to-MARC
// converter's "index all triples by subject" step (spec §4.I algorithm
// step 1).
type ByIndex struct {
	bySubject map[string][]Triple
}

// subjectKey disambiguates blank and IRI subjects that might otherwise share
// a Value (not possible in practice, but keeps the index collision-free).
func subjectKey(n Node) string {
	if n.Kind == Blank {
		return "_:" + n.Value
	}
	return n.Value
}

// IndexBySubject builds a ByIndex over every triple in g, preserving
// per-subject insertion order.
func (g *Graph) IndexBySubject() *ByIndex {
	idx := &ByIndex{bySubject: make(map[string][]Triple)}
	for _, t := range g.triples {
		k := subjectKey(t.Subject)
		idx.bySubject[k] = append(idx.bySubject[k], t)
	}
	return idx
}

// Triples returns every triple with the given subject, in insertion order.
func (idx *ByIndex) Triples(subject Node) []Triple {
	return idx.bySubject[subjectKey(subject)]
}

// Objects returns the object of every triple with the given subject and
// predicate IRI, in insertion order.
func (idx *ByIndex) Objects(subject Node, predicate string) []Node {
	var out []Node
	for _, t := range idx.Triples(subject) {
		if t.Predicate.Value == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// Object returns the first object of the given subject/predicate pair.
func (idx *ByIndex) Object(subject Node, predicate string) (Node, bool) {
	objs := idx.Objects(subject, predicate)
	if len(objs) == 0 {
		return Node{}, false
	}
	return objs[0], true
}

// HasType reports whether subject has an rdf:type triple whose object is
// typeIRI.
func (idx *ByIndex) HasType(subject Node, typeIRI string) bool {
	for _, o := range idx.Objects(subject, RDFType) {
		if o.Value == typeIRI {
			return true
		}
	}
	return false
}

// Types returns every rdf:type object for subject, in insertion order.
func (idx *ByIndex) Types(subject Node) []Node {
	return idx.Objects(subject, RDFType)
}

// SubjectsOfType returns every distinct subject in the graph (in first-seen
// order) that carries an rdf:type triple matching typeIRI.
func (g *Graph) SubjectsOfType(typeIRI string) []Node {
	var out []Node
	seen := make(map[string]bool)
	for _, t := range g.triples {
		if t.Predicate.Value != RDFType || t.Object.Value != typeIRI {
			continue
		}
		k := subjectKey(t.Subject)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t.Subject)
	}
	return out
}
