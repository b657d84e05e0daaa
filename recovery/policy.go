// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recovery implements the strategy objects consulted by the
// iso2709 reader at each structural decision point where a malformed
// record can either be rejected, patched, or passed through uninspected.
package recovery

import "github.com/solidcoredata/marcstream/marcerr"

// Mode selects how the reader responds to structural anomalies.
type Mode int

const (
	// Strict rejects any record that deviates from the ISO 2709 grammar;
	// the reader returns the first error it encounters.
	Strict Mode = iota
	// Lenient repairs anomalies it has a well-defined fix for (a body
	// short read against the declared record_length is recovered as a
	// partial record built from whichever fields were fully present; a
	// directory entry whose declared length runs past the available data
	// is clipped to the available bytes; a field missing its terminator
	// is accepted as ending at the end of its bytes) and rejects the rest.
	Lenient
	// Permissive accepts everything Lenient does, and its Policy
	// additionally reports a missing record terminator and non-UTF-8 field
	// data as tolerated. The iso2709 reader consults neither of those two
	// answers (it does not check record terminators or validate UTF-8), so
	// it treats records the same under Permissive as under Lenient.
	Permissive
)

// Policy is consulted by the reader at each decision point named below.
// A Policy must be safe for concurrent use by multiple pipeline workers.
type Policy interface {
	Mode() Mode

	// ClipDirectoryOverrun reports whether a directory entry whose
	// declared length+offset extends past the available data area
	// should be clipped to the available length (true) or rejected
	// (false, the reader returns a KindInvalidDirectory error).
	ClipDirectoryOverrun() bool

	// ToleratesMissingFieldTerminator reports whether a data field
	// missing its trailing field terminator (because the record
	// terminator or end of buffer was reached instead) should be
	// accepted as the field's implicit end.
	ToleratesMissingFieldTerminator() bool

	// ToleratesMissingRecordTerminator reports whether a record may end
	// without a trailing record terminator byte.
	ToleratesMissingRecordTerminator() bool

	// ToleratesTruncatedTail reports whether a short read of the record
	// body (end of stream reached before the declared record_length) is
	// recovered as a partial record containing whichever fields were
	// fully present, rather than rejected outright.
	ToleratesTruncatedTail() bool

	// ToleratesInvalidUTF8 reports whether non-UTF-8 bytes in field or
	// subfield data should be replaced with U+FFFD rather than raising
	// a KindEncoding error.
	ToleratesInvalidUTF8() bool
}

type policy struct{ mode Mode }

// New returns the Policy for the given Mode.
func New(mode Mode) Policy { return policy{mode: mode} }

func (p policy) Mode() Mode { return p.mode }

func (p policy) ClipDirectoryOverrun() bool {
	return p.mode == Lenient || p.mode == Permissive
}

func (p policy) ToleratesMissingFieldTerminator() bool {
	return p.mode == Lenient || p.mode == Permissive
}

func (p policy) ToleratesMissingRecordTerminator() bool {
	return p.mode == Permissive
}

func (p policy) ToleratesTruncatedTail() bool {
	return p.mode == Lenient || p.mode == Permissive
}

func (p policy) ToleratesInvalidUTF8() bool {
	return p.mode == Permissive
}

// Decide applies kind-specific recovery to an anomaly at the given
// sequence/tag/directory position, returning a non-nil error when the
// active policy does not tolerate the anomaly. recovered reports whether
// the caller should continue parsing using a patched value rather than
// abort.
func Decide(p Policy, kind marcerr.Kind, record int, tag string, dirIndex int) (recovered bool, err error) {
	switch kind {
	case marcerr.KindInvalidDirectory:
		if p.ClipDirectoryOverrun() {
			return true, nil
		}
	case marcerr.KindMissingTerminator:
		if p.ToleratesMissingFieldTerminator() {
			return true, nil
		}
	case marcerr.KindInvalidField:
		if p.Mode() == Lenient || p.Mode() == Permissive {
			return true, nil
		}
	case marcerr.KindTruncated:
		if p.ToleratesTruncatedTail() {
			return true, nil
		}
	case marcerr.KindEncoding:
		if p.ToleratesInvalidUTF8() {
			return true, nil
		}
	}
	e := marcerr.New(kind, record, tag, nil)
	if dirIndex >= 0 {
		e = e.WithDirectoryIndex(dirIndex)
	}
	return false, e
}
