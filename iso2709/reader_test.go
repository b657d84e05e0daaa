// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/solidcoredata/marcstream/marcerr"
	"github.com/solidcoredata/marcstream/record"
	"github.com/solidcoredata/marcstream/recovery"
)

func TestReadRecordEOFAtCleanEnd(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	rd := NewReader(bytes.NewReader(out))
	if _, err := rd.ReadRecord(); err != nil {
		t.Fatalf("first ReadRecord: %v", err)
	}
	if _, err := rd.ReadRecord(); err != io.EOF {
		t.Fatalf("second ReadRecord = %v, want io.EOF", err)
	}
}

func TestReadRecordTwoConcatenatedRecords(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(mustEncode(t, sampleRecord()))
	buf.Write(mustEncode(t, sampleRecord()))
	rd := NewReader(&buf)
	for i := 0; i < 2; i++ {
		if _, err := rd.ReadRecord(); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if rd.RecordsRead() != 2 {
		t.Errorf("RecordsRead() = %d, want 2", rd.RecordsRead())
	}
	if _, err := rd.ReadRecord(); err != io.EOF {
		t.Fatalf("ReadRecord after stream end = %v, want io.EOF", err)
	}
}

func TestReadRecordEmptyStreamIsEOF(t *testing.T) {
	rd := NewReader(bytes.NewReader(nil))
	if _, err := rd.ReadRecord(); err != io.EOF {
		t.Fatalf("empty stream = %v, want io.EOF", err)
	}
}

func TestReadRecordShortLeaderIsTruncated(t *testing.T) {
	rd := NewReader(bytes.NewReader([]byte("0002")))
	_, err := rd.ReadRecord()
	var merr *marcerr.Error
	if !errors.As(err, &merr) || merr.Kind != marcerr.KindTruncated {
		t.Fatalf("err = %v, want KindTruncated", err)
	}
}

func TestReadRecordTruncatedBodyStrictFails(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	short := out[:len(out)-5]
	rd := NewReader(bytes.NewReader(short), WithRecoveryPolicy(recovery.New(recovery.Strict)))
	_, err := rd.ReadRecord()
	var merr *marcerr.Error
	if !errors.As(err, &merr) || merr.Kind != marcerr.KindTruncated {
		t.Fatalf("err = %v, want KindTruncated", err)
	}
}

func TestReadRecordTruncatedBodyLenientRecovers(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	short := out[:len(out)-5]
	rd := NewReader(bytes.NewReader(short), WithRecoveryPolicy(recovery.New(recovery.Lenient)))
	rec, err := rd.ReadRecord()
	if err != nil {
		t.Fatalf("lenient ReadRecord: %v", err)
	}
	if v, ok := rec.ControlField("001"); !ok || v != "ocm00000001" {
		t.Errorf("ControlField(001) = %q, %v, want fully-present field to survive truncation", v, ok)
	}
	f, ok := rec.GetField("245")
	if !ok {
		t.Fatal("expected 245 to survive truncation; it precedes the truncated tail")
	}
	if a, _ := f.Subfield('a'); a != "The go gopher" {
		t.Errorf("245$a = %q, want %q", a, "The go gopher")
	}
}

func TestReadRecordTruncatedBodyPermissiveRecovers(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	short := out[:len(out)-5]
	rd := NewReader(bytes.NewReader(short), WithRecoveryPolicy(recovery.New(recovery.Permissive)))
	if _, err := rd.ReadRecord(); err != nil {
		t.Fatalf("permissive ReadRecord: %v", err)
	}
}

func TestReadRecordInvalidLeaderDigits(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	out[0] = 'x'
	rd := NewReader(bytes.NewReader(out))
	_, err := rd.ReadRecord()
	var merr *marcerr.Error
	if !errors.As(err, &merr) || merr.Kind != marcerr.KindInvalidLeader {
		t.Fatalf("err = %v, want KindInvalidLeader", err)
	}
}

// corruptDirectoryOverrun inflates the first directory entry's length so it
// runs past the available data area.
func corruptDirectoryOverrun(t *testing.T, out []byte) []byte {
	t.Helper()
	dirStart := record.LeaderSize
	copy(out[dirStart+3:dirStart+7], []byte("9999"))
	return out
}

func TestReadRecordDirectoryOverrunStrictFails(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	out = corruptDirectoryOverrun(t, out)
	rd := NewReader(bytes.NewReader(out), WithRecoveryPolicy(recovery.New(recovery.Strict)))
	_, err := rd.ReadRecord()
	var merr *marcerr.Error
	if !errors.As(err, &merr) || merr.Kind != marcerr.KindInvalidDirectory {
		t.Fatalf("err = %v, want KindInvalidDirectory", err)
	}
}

func TestReadRecordDirectoryOverrunLenientClips(t *testing.T) {
	out := mustEncode(t, sampleRecord())
	out = corruptDirectoryOverrun(t, out)
	rd := NewReader(bytes.NewReader(out), WithRecoveryPolicy(recovery.New(recovery.Lenient)))
	if _, err := rd.ReadRecord(); err != nil {
		t.Fatalf("lenient ReadRecord: %v", err)
	}
}

func TestReadRecordMissingFieldTerminatorStrictFails(t *testing.T) {
	rec := sampleRecord()
	out := mustEncode(t, rec)
	// Overwrite the 001 control field's terminator with a plain byte
	// without adjusting any offsets; this is the smallest corruption
	// that preserves every later field's byte position. 001 is the first
	// field of the data area, which starts at the leader's base address.
	base, _ := parseDigitsExact(out[12:17])
	idx := bytes.IndexByte(out[base:], FieldTerminator)
	if idx < 0 {
		t.Fatal("no field terminator found in encoded record")
	}
	idx += base
	out[idx] = 'x'
	rd := NewReader(bytes.NewReader(out), WithRecoveryPolicy(recovery.New(recovery.Strict)))
	_, err := rd.ReadRecord()
	var merr *marcerr.Error
	if !errors.As(err, &merr) || merr.Kind != marcerr.KindMissingTerminator {
		t.Fatalf("err = %v, want KindMissingTerminator", err)
	}
}

func TestReadRecordMissingFieldTerminatorLenientRecovers(t *testing.T) {
	rec := sampleRecord()
	out := mustEncode(t, rec)
	base, _ := parseDigitsExact(out[12:17])
	idx := base + bytes.IndexByte(out[base:], FieldTerminator)
	out[idx] = 'x'
	rd := NewReader(bytes.NewReader(out), WithRecoveryPolicy(recovery.New(recovery.Lenient)))
	if _, err := rd.ReadRecord(); err != nil {
		t.Fatalf("lenient ReadRecord: %v", err)
	}
}
