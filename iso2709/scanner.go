// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import "bytes"

// Span is the half-open-at-start, inclusive-at-end byte range of one
// record within a buffer: buf[Offset:Offset+Length] includes the
// record's trailing record-terminator byte.
type Span struct {
	Offset int
	Length int
}

// Scan locates every complete record in buf by a linear scan for the
// record-terminator byte (0x1D). The scan itself is the structural stage
// of a scan/extract split: Scan only finds boundaries, iso2709.Reader (or
// a pipeline worker) extracts and parses the bytes inside each Span. The
// byte search uses bytes.IndexByte, which the Go runtime vectorizes on
// supported architectures — the accelerated "memchr" primitive the
// boundary scanner calls for.
//
// Between successive terminator positions p[i-1] (exclusive, or buffer
// start) and p[i] (inclusive), the record spans [p[i-1]+1 .. p[i]].
// Trailing bytes after the last terminator (a partial final record) are
// not included in the result; the caller retains them for the next
// chunk.
func Scan(buf []byte) []Span {
	return scanLimited(buf, -1)
}

// ScanLimited returns at most n spans, with identical coordinates to
// what Scan(buf) would produce for the same prefix of terminators. A
// negative or zero n returns no spans.
func ScanLimited(buf []byte, n int) []Span {
	if n <= 0 {
		return nil
	}
	return scanLimited(buf, n)
}

func scanLimited(buf []byte, n int) []Span {
	var spans []Span
	start := 0
	for {
		if n >= 0 && len(spans) >= n {
			break
		}
		rel := bytes.IndexByte(buf[start:], RecordTerminator)
		if rel < 0 {
			break
		}
		end := start + rel
		spans = append(spans, Span{Offset: start, Length: end - start + 1})
		start = end + 1
	}
	return spans
}

// CountRecords returns the number of record-terminator bytes in buf,
// without allocating a Span for each.
func CountRecords(buf []byte) int {
	count := 0
	start := 0
	for {
		rel := bytes.IndexByte(buf[start:], RecordTerminator)
		if rel < 0 {
			return count
		}
		count++
		start += rel + 1
	}
}
