// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iso2709 reads and writes MARC21 bibliographic records in their
// ISO 2709 binary interchange form, and provides a boundary scanner and a
// producer-consumer streaming pipeline over a byte source carrying many
// concatenated records.
//
// Wire layout of one record:
//
//	+----------------+----------------------------+-----------------------------+---+
//	| LEADER (24)    | DIRECTORY (12 * n + 1)     | DATA (fields, each 0x1E-term)| RT|
//	+----------------+----------------------------+-----------------------------+---+
//
// LEADER is the fixed 24-byte header decoded by package record. DIRECTORY
// is a sequence of 12-byte entries (tag(3) length(4) offset(5)) followed
// by a single field-terminator byte. DATA is the concatenation of every
// field's bytes, each ending in a field terminator (0x1E); a control
// field's bytes are its raw value, a data field's bytes are
// "ind1 ind2 (0x1F code value)* 0x1E". The record ends with one record
// terminator byte (0x1D).
package iso2709

// Structural delimiter bytes reserved by the ISO 2709 grammar. None of
// these may occur inside a field or subfield value.
const (
	SubfieldDelimiter = 0x1F
	FieldTerminator   = 0x1E
	RecordTerminator  = 0x1D
)

// MaxRecordLength is the largest value the leader's 5-digit record-length
// field can represent.
const MaxRecordLength = 99999

// directoryEntrySize is the fixed width of one directory entry:
// tag(3) + length(4) + offset(5).
const directoryEntrySize = 12
