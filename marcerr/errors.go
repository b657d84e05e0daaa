// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marcerr defines the error taxonomy shared by the record and
// recovery packages and the iso2709 reader, writer and pipeline.
package marcerr

import (
	"errors"
	"fmt"
)

// Kind classifies the structural point at which a record failed to decode
// or encode.
type Kind int

const (
	// KindUnknown is the zero value; never produced by this package.
	KindUnknown Kind = iota
	// KindTruncated means the input ended before a complete record could
	// be read.
	KindTruncated
	// KindInvalidLeader means the 24-byte leader failed validation.
	KindInvalidLeader
	// KindInvalidDirectory means a directory entry was malformed or
	// pointed outside the data area.
	KindInvalidDirectory
	// KindMissingTerminator means a field or record terminator was
	// expected but not found.
	KindMissingTerminator
	// KindOversizedRecord means an encoded record would exceed the
	// 99999-byte ISO 2709 record length field.
	KindOversizedRecord
	// KindEncoding means a value could not be represented as valid UTF-8
	// data at encode time, or decoded bytes were not valid UTF-8 at
	// decode time under a strict recovery policy.
	KindEncoding
	// KindInvalidField means a single field's bytes could not be parsed
	// (e.g. a stray byte where a subfield delimiter was expected);
	// lenient/permissive recovery drops the field and continues.
	KindInvalidField
	// KindGraphConversion means a required entity was missing during a
	// MARC<->BIBFRAME conversion.
	KindGraphConversion
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindInvalidLeader:
		return "invalid leader"
	case KindInvalidDirectory:
		return "invalid directory"
	case KindMissingTerminator:
		return "missing terminator"
	case KindOversizedRecord:
		return "oversized record"
	case KindEncoding:
		return "encoding"
	case KindInvalidField:
		return "invalid field"
	case KindGraphConversion:
		return "graph conversion"
	default:
		return "unknown"
	}
}

// Sentinel errors usable with errors.Is. Error.Unwrap exposes the one
// matching the Kind so that callers can test the failure class without a
// type assertion.
var (
	ErrTruncated          = errors.New("marcstream: truncated record")
	ErrInvalidLeader      = errors.New("marcstream: invalid leader")
	ErrInvalidDirectory   = errors.New("marcstream: invalid directory")
	ErrMissingTerminator  = errors.New("marcstream: missing terminator")
	ErrOversizedRecord    = errors.New("marcstream: record exceeds maximum encoded length")
	ErrEncoding           = errors.New("marcstream: encoding error")
	ErrInvalidField       = errors.New("marcstream: invalid field")
	ErrGraphConversion    = errors.New("marcstream: graph conversion error")
)

var sentinels = map[Kind]error{
	KindTruncated:         ErrTruncated,
	KindInvalidLeader:     ErrInvalidLeader,
	KindInvalidDirectory:  ErrInvalidDirectory,
	KindMissingTerminator: ErrMissingTerminator,
	KindOversizedRecord:   ErrOversizedRecord,
	KindEncoding:          ErrEncoding,
	KindInvalidField:      ErrInvalidField,
	KindGraphConversion:   ErrGraphConversion,
}

// Error is the structured error type returned by the record, recovery and
// iso2709 packages. It carries enough positional context (record sequence number,
// field tag, directory slot, byte offset) for a caller to report or skip
// the offending record.
type Error struct {
	Kind           Kind
	Record         int // 0-based sequence number within the stream, -1 if unknown
	Tag            string
	DirectoryIndex int // 0-based directory entry index, -1 if not applicable
	ByteOffset     int64
	Cause          error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("marcstream: record %d: %s", e.Record, e.Kind)
	if e.Tag != "" {
		msg += fmt.Sprintf(" (tag %s)", e.Tag)
	}
	if e.DirectoryIndex >= 0 {
		msg += fmt.Sprintf(" (directory entry %d)", e.DirectoryIndex)
	}
	if e.ByteOffset != 0 {
		msg += fmt.Sprintf(" at offset %d", e.ByteOffset)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the Kind's sentinel error and the wrapped Cause, so
// errors.Is(err, marcerr.ErrTruncated) and errors.Is(err, someUnderlyingErr)
// both work at once, not just whichever one this picked.
func (e *Error) Unwrap() []error {
	var errs []error
	if s, ok := sentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// New builds an *Error with DirectoryIndex defaulted to -1 (not applicable).
func New(kind Kind, record int, tag string, cause error) *Error {
	return &Error{Kind: kind, Record: record, Tag: tag, DirectoryIndex: -1, Cause: cause}
}

// WithDirectoryIndex returns a copy of e with DirectoryIndex set.
func (e *Error) WithDirectoryIndex(i int) *Error {
	c := *e
	c.DirectoryIndex = i
	return &c
}

// WithByteOffset returns a copy of e with ByteOffset set.
func (e *Error) WithByteOffset(off int64) *Error {
	c := *e
	c.ByteOffset = off
	return &c
}
