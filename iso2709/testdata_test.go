// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import (
	"bytes"
	"testing"

	"github.com/solidcoredata/marcstream/record"
)

// baseLeader returns a leader with plausible symbolic byte values; the
// numeric fields (RecordLength, DataBaseAddress) are always overwritten
// by Writer.WriteRecord before serialization.
func baseLeader() record.Leader {
	return record.Leader{
		RecordStatus:       'n',
		RecordType:         'a',
		BibliographicLevel: 'm',
		ControlType:        ' ',
		CharacterCoding:    'a',
		IndicatorCount:     '2',
		SubfieldCodeCount:  '2',
		EncodingLevel:      ' ',
		CatalogingForm:     'a',
		MultipartLevel:     ' ',
	}
}

// sampleRecord builds a small but representative record: one control
// field and two data fields with two distinct subfield codes each.
func sampleRecord() *record.Record {
	rec := record.New(baseLeader())
	rec.AddControlField("001", "ocm00000001")
	title := &record.Field{Tag: "245", Indicator1: '1', Indicator2: '0'}
	title.Subfields = append(title.Subfields,
		record.Subfield{Code: 'a', Value: "The go gopher"},
		record.Subfield{Code: 'c', Value: "by a student"})
	rec.AddField(title)
	subject := &record.Field{Tag: "650", Indicator1: ' ', Indicator2: '0'}
	subject.Subfields = append(subject.Subfields,
		record.Subfield{Code: 'a', Value: "Go (Programming language)"},
		record.Subfield{Code: 'x', Value: "Concurrency"})
	rec.AddField(subject)
	return rec
}

// mustEncode serializes rec with a fresh Writer and returns its bytes.
func mustEncode(t *testing.T, rec *record.Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	return buf.Bytes()
}
