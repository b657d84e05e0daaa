// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bibframe

import (
	"testing"

	"github.com/solidcoredata/marcstream/rdf"
	"github.com/solidcoredata/marcstream/record"
)

func TestRoundTripTitle(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "test123")
	r.AddField(newField("245", '1', '0', sf('a', "Test Title")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	titles := out.FieldsByTag("245")
	if len(titles) != 1 {
		t.Fatalf("len(245) = %d, want 1", len(titles))
	}
	if v, ok := titles[0].Subfield('a'); !ok || v != "Test Title" {
		t.Errorf("245$a = %q, %v, want %q", v, ok, "Test Title")
	}
}

func TestRoundTripCreator(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "test456")
	r.AddField(newField("100", '1', ' ', sf('a', "Smith, John"), sf('4', "aut")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	if len(out.FieldsByTag("100")) != 1 {
		t.Fatalf("len(100) = %d, want 1", len(out.FieldsByTag("100")))
	}
}

func TestRoundTripSubject(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "test789")
	r.AddField(newField("650", ' ', '0', sf('a', "Computer science")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	if len(out.FieldsByTag("650")) != 1 {
		t.Fatalf("len(650) = %d, want 1", len(out.FieldsByTag("650")))
	}
}

func TestRoundTripISBN(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "testabc")
	r.AddField(newField("020", ' ', ' ', sf('a', "9780123456789")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	isbns := out.FieldsByTag("020")
	if len(isbns) != 1 {
		t.Fatalf("len(020) = %d, want 1", len(isbns))
	}
	if v, ok := isbns[0].Subfield('a'); !ok || v != "9780123456789" {
		t.Errorf("020$a = %q, %v", v, ok)
	}
}

func TestRoundTripPublication(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "testdef")
	r.AddField(newField("264", ' ', '1', sf('a', "New York"), sf('b', "Publisher"), sf('c', "2020")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	if len(out.FieldsByTag("264")) != 1 {
		t.Fatalf("len(264) = %d, want 1", len(out.FieldsByTag("264")))
	}
}

func TestRoundTripEmptyGraph(t *testing.T) {
	g := rdf.New()
	out := ConvertToMARC(g)
	if out.Leader().RecordType != 'a' {
		t.Errorf("RecordType = %q, want 'a'", out.Leader().RecordType)
	}
}

func TestRoundTripWorkTypePreservation(t *testing.T) {
	l, err := record.ParseLeader([]byte("01042ccm a2200289 i 4500"))
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	r := record.New(l)

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)
	if out.Leader().RecordType != 'c' {
		t.Errorf("RecordType = %q, want 'c'", out.Leader().RecordType)
	}
}

func TestRoundTripSeries(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "testser")
	r.AddField(newField("490", '0', ' ', sf('a', "Series Name"), sf('v', "vol. 3")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	series := out.FieldsByTag("490")
	if len(series) != 1 {
		t.Fatalf("len(490) = %d, want 1", len(series))
	}
	if v, ok := series[0].Subfield('a'); !ok || v != "Series Name" {
		t.Errorf("490$a = %q, %v", v, ok)
	}
	if v, ok := series[0].Subfield('v'); !ok || v != "vol. 3" {
		t.Errorf("490$v = %q, %v", v, ok)
	}
}

func TestRoundTripLinkingEntry(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "testlink")
	r.AddField(newField("780", '0', '0', sf('t', "Previous Title")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	out := ConvertToMARC(g)

	linking := out.FieldsByTag("780")
	if len(linking) != 1 {
		t.Fatalf("len(780) = %d, want 1", len(linking))
	}
	if v, ok := linking[0].Subfield('t'); !ok || v != "Previous Title" {
		t.Errorf("780$t = %q, %v", v, ok)
	}
}
