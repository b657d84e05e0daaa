// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/solidcoredata/marcstream/marcerr"
)

// LeaderSize is the fixed width of every ISO 2709 leader.
const LeaderSize = 24

// Leader is the 24-byte structure described in the spec's ISO 2709 wire
// format table. RecordLength and DataBaseAddress are derived: a Reader
// fills them in from the bytes it parsed, but a Writer always recomputes
// them from the record it is about to serialize.
type Leader struct {
	RecordLength       int
	RecordStatus       byte
	RecordType         byte
	BibliographicLevel byte
	ControlType        byte
	CharacterCoding    byte
	IndicatorCount     byte
	SubfieldCodeCount  byte
	DataBaseAddress    int
	EncodingLevel      byte
	CatalogingForm     byte
	MultipartLevel     byte
}

// Reserved is the literal 4-byte tail of every leader (bytes 20-23),
// carried unchanged by both the reader and the writer.
const Reserved = "4500"

// Position names a symbolic (non-numeric) byte offset in the leader, for
// use with the valid-value registry below.
type Position int

const (
	PosRecordStatus Position = iota
	PosRecordType
	PosBibliographicLevel
	PosControlType
	PosCharacterCoding
	PosEncodingLevel
	PosCatalogingForm
	PosMultipartLevel
)

type valueEntry struct {
	value byte
	desc  string
}

// registry associates each symbolic leader position with its enumerated
// valid byte values and a human-readable description of each, grounded on
// the Library of Congress MARC21 leader concordance. It serves
// ValidValuesAt/DescribeValue/IsValidValue only; it never affects parsing,
// which tolerates unlisted values at symbolic positions (spec §4.B).
var registry = map[Position][]valueEntry{
	PosRecordStatus: {
		{'a', "Increase in encoding level"},
		{'c', "Corrected or revised"},
		{'d', "Deleted"},
		{'n', "New"},
		{'p', "Increase in encoding level from prepublication"},
	},
	PosRecordType: {
		{'a', "Language material"},
		{'c', "Notated music"},
		{'d', "Manuscript notated music"},
		{'e', "Cartographic material"},
		{'f', "Manuscript cartographic material"},
		{'g', "Projected medium"},
		{'i', "Nonmusical sound recording"},
		{'j', "Musical sound recording"},
		{'k', "Two-dimensional nonprojectable graphic"},
		{'m', "Computer file"},
		{'o', "Kit"},
		{'p', "Mixed materials"},
		{'r', "Three-dimensional artifact"},
		{'t', "Manuscript language material"},
	},
	PosBibliographicLevel: {
		{'a', "Monographic component part"},
		{'b', "Serial component part"},
		{'c', "Collection"},
		{'d', "Subunit"},
		{'i', "Integrating resource"},
		{'m', "Monograph/item"},
		{'s', "Serial"},
	},
	PosControlType: {
		{' ', "No specified type"},
		{'a', "Archival"},
	},
	PosCharacterCoding: {
		{' ', "MARC-8"},
		{'a', "UCS/Unicode (UTF-8)"},
	},
	PosEncodingLevel: {
		{' ', "Full level"},
		{'1', "Full level, material not examined"},
		{'2', "Less-than-full level, material not examined"},
		{'3', "Abbreviated level"},
		{'4', "Core level"},
		{'5', "Partial (preliminary) level"},
		{'7', "Minimal level"},
		{'8', "Prepublication level"},
		{'u', "Unknown"},
		{'z', "Not applicable"},
	},
	PosCatalogingForm: {
		{' ', "Non-ISBD"},
		{'a', "AACR2"},
		{'c', "ISBD punctuation omitted"},
		{'i', "ISBD"},
		{'u', "Unknown"},
	},
	PosMultipartLevel: {
		{' ', "Not specified or not applicable"},
		{'a', "Set"},
		{'b', "Part with independent title"},
		{'c', "Part with dependent title"},
	},
}

// ValidValuesAt returns every registered value byte at pos, in the order
// the registry defines them.
func ValidValuesAt(pos Position) []byte {
	entries := registry[pos]
	out := make([]byte, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// DescribeValue returns the human-readable description of v at pos, and
// whether v is registered at all.
func DescribeValue(pos Position, v byte) (string, bool) {
	for _, e := range registry[pos] {
		if e.value == v {
			return e.desc, true
		}
	}
	return "", false
}

// IsValidValue reports whether v is one of the registered values at pos.
func IsValidValue(pos Position, v byte) bool {
	_, ok := DescribeValue(pos, v)
	return ok
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parseFixedDigits(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}

// ParseLeader decodes exactly LeaderSize bytes. Decoding is strict on
// width and on the two numeric positions (must be ASCII digits); it
// tolerates any byte value at the symbolic positions, since the registry
// above is advisory, not a parsing gate.
func ParseLeader(b []byte) (Leader, error) {
	if len(b) != LeaderSize {
		return Leader{}, marcerr.New(marcerr.KindInvalidLeader, -1, "", fmt.Errorf("leader must be %d bytes, got %d", LeaderSize, len(b)))
	}
	if !isDigits(b[0:5]) {
		return Leader{}, marcerr.New(marcerr.KindInvalidLeader, -1, "", fmt.Errorf("record length %q is not all digits", b[0:5]))
	}
	if !isDigits(b[12:17]) {
		return Leader{}, marcerr.New(marcerr.KindInvalidLeader, -1, "", fmt.Errorf("data base address %q is not all digits", b[12:17]))
	}
	l := Leader{
		RecordLength:       parseFixedDigits(b[0:5]),
		RecordStatus:       b[5],
		RecordType:         b[6],
		BibliographicLevel: b[7],
		ControlType:        b[8],
		CharacterCoding:    b[9],
		IndicatorCount:     b[10],
		SubfieldCodeCount:  b[11],
		DataBaseAddress:    parseFixedDigits(b[12:17]),
		EncodingLevel:      b[17],
		CatalogingForm:     b[18],
		MultipartLevel:     b[19],
	}
	if l.RecordLength < LeaderSize {
		return Leader{}, marcerr.New(marcerr.KindInvalidLeader, -1, "", fmt.Errorf("record length %d must be at least %d", l.RecordLength, LeaderSize))
	}
	if l.DataBaseAddress < LeaderSize {
		return Leader{}, marcerr.New(marcerr.KindInvalidLeader, -1, "", fmt.Errorf("data base address %d must be at least %d", l.DataBaseAddress, LeaderSize))
	}
	return l, nil
}

// Bytes rebuilds all 24 bytes. RecordLength and DataBaseAddress are taken
// verbatim from l; a Writer sets them immediately before calling Bytes.
func (l Leader) Bytes() []byte {
	out := make([]byte, LeaderSize)
	copy(out[0:5], fmt.Sprintf("%05d", l.RecordLength))
	out[5] = l.RecordStatus
	out[6] = l.RecordType
	out[7] = l.BibliographicLevel
	out[8] = l.ControlType
	out[9] = l.CharacterCoding
	out[10] = l.IndicatorCount
	out[11] = l.SubfieldCodeCount
	copy(out[12:17], fmt.Sprintf("%05d", l.DataBaseAddress))
	out[17] = l.EncodingLevel
	out[18] = l.CatalogingForm
	out[19] = l.MultipartLevel
	copy(out[20:24], Reserved)
	return out
}

// IsUTF8 reports whether CharacterCoding selects UTF-8 data, per §6.2.
func (l Leader) IsUTF8() bool { return l.CharacterCoding == 'a' }
