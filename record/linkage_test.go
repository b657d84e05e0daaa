// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import "testing"

func TestParseSubfield6(t *testing.T) {
	label, script := ParseSubfield6("245-01/$1")
	if label != "245-01" || script != "$1" {
		t.Errorf("got (%q, %q), want (245-01, $1)", label, script)
	}
	label, script = ParseSubfield6("245-01")
	if label != "245-01" || script != "" {
		t.Errorf("got (%q, %q), want (245-01, \"\")", label, script)
	}
}

func TestLinked880ForAndReferent(t *testing.T) {
	r := New(sampleLeader())
	main := &Field{Tag: "245", Subfields: []Subfield{
		{Code: '6', Value: "880-01"},
		{Code: 'a', Value: "Title in Latin script"},
	}}
	r.AddField(main)
	alt := &Field{Tag: "880", Subfields: []Subfield{
		{Code: '6', Value: "245-01/$1"},
		{Code: 'a', Value: "Title in original script"},
	}}
	r.AddField(alt)

	linked := r.Linked880For("245", main)
	if len(linked) != 1 {
		t.Fatalf("Linked880For = %d fields, want 1", len(linked))
	}
	if v, _ := linked[0].Subfield('a'); v != "Title in original script" {
		t.Errorf("linked $a = %q", v)
	}

	referent, ok := LinkageReferent(alt)
	if !ok || referent != "245" {
		t.Errorf("LinkageReferent = %q, %v, want 245, true", referent, ok)
	}
}

func TestGetFieldPairs(t *testing.T) {
	r := New(sampleLeader())
	r.AddField(&Field{Tag: "245", Subfields: []Subfield{{Code: '6', Value: "880-01"}}})
	r.AddField(&Field{Tag: "880", Subfields: []Subfield{{Code: '6', Value: "245-01"}}})

	pairs := r.GetFieldPairs("245")
	if len(pairs) != 1 {
		t.Fatalf("GetFieldPairs = %d, want 1", len(pairs))
	}
	if pairs[0].Linked880 == nil {
		t.Fatal("expected a linked 880 field")
	}
}
