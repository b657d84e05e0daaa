// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import (
	"bytes"
	"strings"
	"testing"

	"github.com/solidcoredata/marcstream/record"
)

func TestWriteRecordRoundTrip(t *testing.T) {
	rec := sampleRecord()
	out := mustEncode(t, rec)

	if got := out[len(out)-1]; got != RecordTerminator {
		t.Fatalf("last byte = %#x, want record terminator", got)
	}

	leader, err := record.ParseLeader(out[:record.LeaderSize])
	if err != nil {
		t.Fatalf("ParseLeader: %v", err)
	}
	if leader.RecordLength != len(out) {
		t.Errorf("leader.RecordLength = %d, want %d (actual encoded length)", leader.RecordLength, len(out))
	}
	if leader.DataBaseAddress <= record.LeaderSize {
		t.Errorf("leader.DataBaseAddress = %d, want > %d", leader.DataBaseAddress, record.LeaderSize)
	}

	rd := NewReader(bytes.NewReader(out))
	got, err := rd.ReadRecord()
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if v, ok := got.ControlField("001"); !ok || v != "ocm00000001" {
		t.Errorf("control field 001 = %q, %v", v, ok)
	}
	title, ok := got.GetField("245")
	if !ok {
		t.Fatal("missing 245 field")
	}
	if v, _ := title.Subfield('a'); v != "The go gopher" {
		t.Errorf("245$a = %q", v)
	}
	if v, _ := title.Subfield('c'); v != "by a student" {
		t.Errorf("245$c = %q", v)
	}
}

func TestWriteRecordAfterFinish(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := w.WriteRecord(sampleRecord()); err != ErrWriterFinished {
		t.Fatalf("WriteRecord after Finish = %v, want ErrWriterFinished", err)
	}
}

func TestWriteRecordCountsRecordsWritten(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 3; i++ {
		if err := w.WriteRecord(sampleRecord()); err != nil {
			t.Fatalf("WriteRecord %d: %v", i, err)
		}
	}
	if w.RecordsWritten() != 3 {
		t.Errorf("RecordsWritten() = %d, want 3", w.RecordsWritten())
	}
}

func TestWriteDirectoryEntryRejectsBadTagWidth(t *testing.T) {
	var dir bytes.Buffer
	if err := writeDirectoryEntry(&dir, "24", 10, 24); err == nil {
		t.Fatal("expected error for a 2-byte tag")
	}
}

func TestWriteDirectoryEntryRejectsOverWidth(t *testing.T) {
	var dir bytes.Buffer
	if err := writeDirectoryEntry(&dir, "245", 10000, 24); err == nil {
		t.Fatal("expected error for a field length exceeding 4 digits")
	}
	if err := writeDirectoryEntry(&dir, "245", 10, 100000); err == nil {
		t.Fatal("expected error for an offset exceeding 5 digits")
	}
}

func TestWriteRecordEmptyRecordHasNoFields(t *testing.T) {
	rec := record.New(baseLeader())
	out := mustEncode(t, rec)
	rd := NewReader(bytes.NewReader(out))
	got, err := rd.ReadRecord()
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if _, ok := got.ControlField("001"); ok {
		t.Error("expected no control fields on an empty record")
	}
	if strings.Count(string(out), string(rune(RecordTerminator))) != 1 {
		t.Error("expected exactly one record terminator")
	}
}
