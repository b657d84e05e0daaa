// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import "testing"

func sampleGraph() *Graph {
	g := New()
	work := NewIRI("http://example.org/work/1")
	instance := g.NewBlankNode()
	g.Add(work, NewIRI(RDFType), NewIRI("http://id.loc.gov/ontologies/bibframe/Work"))
	g.Add(work, NewIRI("http://id.loc.gov/ontologies/bibframe/hasInstance"), instance)
	g.Add(instance, NewIRI(RDFType), NewIRI("http://id.loc.gov/ontologies/bibframe/Instance"))
	g.Add(instance, NewIRI("http://id.loc.gov/ontologies/bibframe/title"), NewLangLiteral("The go gopher", "en"))
	return g
}

func TestNewBlankNodeMonotonic(t *testing.T) {
	g := New()
	a := g.NewBlankNode()
	b := g.NewBlankNode()
	if a.Equal(b) {
		t.Fatal("two minted blank nodes compared equal")
	}
}

func TestIndexBySubject(t *testing.T) {
	g := sampleGraph()
	idx := g.IndexBySubject()
	work := NewIRI("http://example.org/work/1")
	if !idx.HasType(work, "http://id.loc.gov/ontologies/bibframe/Work") {
		t.Error("expected Work to carry the Work type")
	}
	objs := idx.Objects(work, "http://id.loc.gov/ontologies/bibframe/hasInstance")
	if len(objs) != 1 || !objs[0].IsBlank() {
		t.Errorf("hasInstance objects = %v", objs)
	}
}

func TestSubjectsOfType(t *testing.T) {
	g := sampleGraph()
	works := g.SubjectsOfType("http://id.loc.gov/ontologies/bibframe/Work")
	if len(works) != 1 {
		t.Fatalf("len(works) = %d, want 1", len(works))
	}
}

func TestNTriplesRoundTrip(t *testing.T) {
	g := sampleGraph()
	text := WriteNTriples(g)
	got, err := ParseNTriples(text)
	if err != nil {
		t.Fatalf("ParseNTriples: %v", err)
	}
	if WriteNTriples(got) != text {
		t.Errorf("round trip not byte-identical:\nwant %q\ngot  %q", text, WriteNTriples(got))
	}
}

func TestTurtleRoundTripIsomorphic(t *testing.T) {
	g := sampleGraph()
	text := WriteTurtle(g)
	got, err := ParseTurtle(text)
	if err != nil {
		t.Fatalf("ParseTurtle: %v", err)
	}
	if !Equal(g, got) {
		t.Error("turtle round trip not isomorphic to original graph")
	}
}

func TestJSONLDRoundTripIsomorphic(t *testing.T) {
	g := sampleGraph()
	text, err := WriteJSONLD(g)
	if err != nil {
		t.Fatalf("WriteJSONLD: %v", err)
	}
	got, err := ParseJSONLD(text)
	if err != nil {
		t.Fatalf("ParseJSONLD: %v", err)
	}
	if !Equal(g, got) {
		t.Error("json-ld round trip not isomorphic to original graph")
	}
}

func TestRDFXMLRoundTripIsomorphic(t *testing.T) {
	g := sampleGraph()
	text, err := WriteRDFXML(g)
	if err != nil {
		t.Fatalf("WriteRDFXML: %v", err)
	}
	got, err := ParseRDFXML(text, "http://id.loc.gov/ontologies/bibframe/")
	if err != nil {
		t.Fatalf("ParseRDFXML: %v", err)
	}
	if !Equal(g, got) {
		t.Error("rdf/xml round trip not isomorphic to original graph")
	}
}

func TestEqualDetectsDifferentGraphs(t *testing.T) {
	a := sampleGraph()
	b := New()
	if Equal(a, b) {
		t.Error("Equal reported an empty graph equal to a non-empty one")
	}
}
