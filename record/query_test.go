// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import "testing"

func TestQueryTagEqualsAndRange(t *testing.T) {
	r := New(sampleLeader())
	r.AddField(&Field{Tag: "650", Subfields: []Subfield{{Code: 'a', Value: "Fiction"}}})
	r.AddField(&Field{Tag: "651", Subfields: []Subfield{{Code: 'a', Value: "France"}}})
	r.AddField(&Field{Tag: "245", Subfields: []Subfield{{Code: 'a', Value: "Title"}}})

	got := r.Fields(TagEquals("650"))
	if len(got) != 1 {
		t.Fatalf("TagEquals(650) = %d, want 1", len(got))
	}

	got = r.Fields(TagRange("600", "699"))
	if len(got) != 2 {
		t.Fatalf("TagRange(600,699) = %d, want 2", len(got))
	}
}

func TestQueryIndicatorWildcardAndSubfields(t *testing.T) {
	r := New(sampleLeader())
	r.AddField(&Field{Tag: "245", Indicator1: '1', Indicator2: '0', Subfields: []Subfield{
		{Code: 'a', Value: "Moby Dick"},
	}})
	r.AddField(&Field{Tag: "245", Indicator1: '0', Indicator2: '0', Subfields: []Subfield{
		{Code: 'a', Value: "A Tale"},
	}})

	got := r.Fields(And(TagEquals("245"), Indicator1Equals('1')))
	if len(got) != 1 {
		t.Fatalf("Indicator1Equals('1') = %d, want 1", len(got))
	}

	got = r.Fields(And(TagEquals("245"), Indicator1Equals(anyIndicator)))
	if len(got) != 2 {
		t.Fatalf("wildcard indicator = %d, want 2", len(got))
	}

	got = r.Fields(And(TagEquals("245"), HasSubfields('a')))
	if len(got) != 2 {
		t.Fatalf("HasSubfields('a') = %d, want 2", len(got))
	}

	got = r.Fields(SubfieldContains('a', "Moby"))
	if len(got) != 1 {
		t.Fatalf("SubfieldContains = %d, want 1", len(got))
	}
}

func TestQueryOrNot(t *testing.T) {
	r := New(sampleLeader())
	r.AddField(&Field{Tag: "100"})
	r.AddField(&Field{Tag: "700"})
	r.AddField(&Field{Tag: "245"})

	got := r.Fields(Or(TagEquals("100"), TagEquals("700")))
	if len(got) != 2 {
		t.Fatalf("Or = %d, want 2", len(got))
	}

	got = r.Fields(Not(TagEquals("245")))
	if len(got) != 2 {
		t.Fatalf("Not = %d, want 2", len(got))
	}
}
