// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bibframe

import (
	"testing"

	"github.com/solidcoredata/marcstream/record"
)

func sampleLeader(t *testing.T) record.Leader {
	t.Helper()
	l, err := record.ParseLeader([]byte("01042nam a2200289 i 4500"))
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	return l
}

func newField(tag string, ind1, ind2 byte, subfields ...record.Subfield) *record.Field {
	return &record.Field{Tag: tag, Indicator1: ind1, Indicator2: ind2, Subfields: subfields}
}

func sf(code byte, value string) record.Subfield { return record.Subfield{Code: code, Value: value} }

func TestConvertTitleField(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("245", '1', '0', sf('a', "Test Title")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	instances := g.SubjectsOfType(bf(Classes.Instance))
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}
	titles := idx.Objects(instances[0], bf(Properties.Title))
	if len(titles) != 1 {
		t.Fatalf("len(titles) = %d, want 1", len(titles))
	}
	mainTitle, ok := idx.Object(titles[0], bf(Properties.MainTitle))
	if !ok || mainTitle.Value != "Test Title" {
		t.Errorf("mainTitle = %+v, want %q", mainTitle, "Test Title")
	}
}

func TestConvertCreatorRelator(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("100", '1', ' ', sf('a', "Smith, John"), sf('4', "aut")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	works := g.SubjectsOfType(bf(Classes.Work))
	if len(works) != 1 {
		t.Fatalf("len(works) = %d, want 1", len(works))
	}
	contributions := idx.Objects(works[0], bf(Properties.Contribution))
	if len(contributions) != 1 {
		t.Fatalf("len(contributions) = %d, want 1", len(contributions))
	}
	if !idx.HasType(contributions[0], bflc(BFLC.PrimaryContribution)) {
		t.Error("expected creator contribution to carry bflc:PrimaryContribution")
	}
	role, ok := idx.Object(contributions[0], bf(Properties.Role))
	if !ok || role.Value != Relators+"aut" {
		t.Errorf("role = %+v, want relator IRI for aut", role)
	}
}

func TestConvertSubjectSubdivisions(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("650", ' ', '0', sf('a', "Computer science"), sf('x', "History")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	works := g.SubjectsOfType(bf(Classes.Work))
	subjects := idx.Objects(works[0], bf(Properties.Subject))
	if len(subjects) != 1 {
		t.Fatalf("len(subjects) = %d, want 1", len(subjects))
	}
	label, ok := idx.Object(subjects[0], "http://www.w3.org/2000/01/rdf-schema#label")
	if !ok || label.Value != "Computer science--History" {
		t.Errorf("label = %+v, want %q", label, "Computer science--History")
	}
}

func TestConvertISBNWithQualifier(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("020", ' ', ' ', sf('a', "9780123456789"), sf('q', "pbk")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	instances := g.SubjectsOfType(bf(Classes.Instance))
	ids := idx.Objects(instances[0], bf(Properties.IdentifiedBy))
	if len(ids) != 1 {
		t.Fatalf("len(ids) = %d, want 1", len(ids))
	}
	if !idx.HasType(ids[0], bf(Classes.Isbn)) {
		t.Error("expected identifier to be typed Isbn")
	}
}

func TestConvertWorkTypeFromLeader(t *testing.T) {
	l, err := record.ParseLeader([]byte("01042ccm a2200289 i 4500"))
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	r := record.New(l)

	g := ConvertToBIBFRAME(r, DefaultConfig())
	if len(g.SubjectsOfType(bf(Classes.NotatedMusic))) != 1 {
		t.Error("expected a NotatedMusic-typed Work for leader type 'c'")
	}
}

func TestConvertSerialInstanceType(t *testing.T) {
	l, err := record.ParseLeader([]byte("01042nas a2200289 i 4500"))
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	r := record.New(l)

	g := ConvertToBIBFRAME(r, DefaultConfig())
	if len(g.SubjectsOfType(bf(Classes.Serial))) != 1 {
		t.Error("expected a Serial-typed Instance for bibliographic level 's'")
	}
}

func TestConvertBaseURIGeneration(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddControlField("001", "ocm12345")
	r.AddField(newField("245", '1', '0', sf('a', "Title")))

	cfg := DefaultConfig()
	cfg.BaseURI = "http://example.org/"
	g := ConvertToBIBFRAME(r, cfg)

	works := g.SubjectsOfType(bf(Classes.Work))
	if len(works) != 1 || !works[0].IsIRI() || works[0].Value != "http://example.org/work/ocm12345" {
		t.Errorf("work node = %+v, want minted IRI with control number", works)
	}
}

func TestConvertLinkingEntry780(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("780", '0', '0', sf('t', "Previous Title"), sf('x', "1234-5678")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	instances := g.SubjectsOfType(bf(Classes.Instance))
	related := idx.Objects(instances[0], bf(Properties.PrecededBy))
	if len(related) != 1 {
		t.Fatalf("len(precededBy) = %d, want 1", len(related))
	}
}

func TestConvertSeries490Untraced(t *testing.T) {
	r := record.New(sampleLeader(t))
	r.AddField(newField("490", '0', ' ', sf('a', "Series Name"), sf('v', "vol. 3")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()

	instances := g.SubjectsOfType(bf(Classes.Instance))
	stmt, ok := idx.Object(instances[0], bf(Properties.SeriesStatement))
	if !ok || stmt.Value != "Series Name" {
		t.Errorf("seriesStatement = %+v, want %q", stmt, "Series Name")
	}
}

func TestConvertMusicFormatFields(t *testing.T) {
	l, err := record.ParseLeader([]byte("01042ncm a2200289 i 4500"))
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	r := record.New(l)
	r.AddField(newField("348", ' ', ' ', sf('a', "notated music")))

	g := ConvertToBIBFRAME(r, DefaultConfig())
	idx := g.IndexBySubject()
	instances := g.SubjectsOfType(bf(Classes.Instance))
	format, ok := idx.Object(instances[0], bf("musicFormat"))
	if !ok || format.Value != "notated music" {
		t.Errorf("musicFormat = %+v, want %q", format, "notated music")
	}
}
