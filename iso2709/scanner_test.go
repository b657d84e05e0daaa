// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import "testing"

func TestScanFindsEachRecord(t *testing.T) {
	a := mustEncode(t, sampleRecord())
	b := mustEncode(t, sampleRecord())
	buf := append(append([]byte{}, a...), b...)

	spans := Scan(buf)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}
	if spans[0].Offset != 0 || spans[0].Length != len(a) {
		t.Errorf("span 0 = %+v, want offset 0 length %d", spans[0], len(a))
	}
	if spans[1].Offset != len(a) || spans[1].Length != len(b) {
		t.Errorf("span 1 = %+v, want offset %d length %d", spans[1], len(a), len(b))
	}
}

func TestScanExcludesTrailingPartialRecord(t *testing.T) {
	a := mustEncode(t, sampleRecord())
	buf := append(append([]byte{}, a...), a[:len(a)/2]...)

	spans := Scan(buf)
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1 (trailing partial record excluded)", len(spans))
	}
}

func TestScanLimited(t *testing.T) {
	a := mustEncode(t, sampleRecord())
	buf := append(append(append([]byte{}, a...), a...), a...)

	spans := ScanLimited(buf, 2)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}
	if spans[1].Offset+spans[1].Length != 2*len(a) {
		t.Errorf("ScanLimited(2) boundary mismatch: %+v", spans)
	}
}

func TestScanLimitedZeroOrNegative(t *testing.T) {
	buf := mustEncode(t, sampleRecord())
	if spans := ScanLimited(buf, 0); spans != nil {
		t.Errorf("ScanLimited(0) = %v, want nil", spans)
	}
	if spans := ScanLimited(buf, -1); spans != nil {
		t.Errorf("ScanLimited(-1) = %v, want nil", spans)
	}
}

func TestCountRecords(t *testing.T) {
	a := mustEncode(t, sampleRecord())
	buf := append(append([]byte{}, a...), a...)
	if n := CountRecords(buf); n != 2 {
		t.Errorf("CountRecords = %d, want 2", n)
	}
}
