// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iso2709

import (
	"io"
	"log/slog"

	"github.com/solidcoredata/marcstream/marcerr"
	"github.com/solidcoredata/marcstream/record"
	"github.com/solidcoredata/marcstream/recovery"
)

// Reader decodes ISO 2709 records from a pull-based byte source. A Reader
// is owned by one goroutine at a time; it holds no locks.
type Reader struct {
	r           io.Reader
	policy      recovery.Policy
	logger      *slog.Logger
	recordsRead int
}

// Option configures a Reader.
type Option func(*options)

type options struct {
	policy recovery.Policy
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{policy: recovery.New(recovery.Strict), logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRecoveryPolicy sets the recovery policy consulted at each
// structural decision point. Defaults to recovery.Strict.
func WithRecoveryPolicy(p recovery.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the structured logger used for recoverable anomalies.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewReader wraps r. Recovery mode defaults to Strict; pass
// WithRecoveryPolicy to change it.
func NewReader(r io.Reader, opts ...Option) *Reader {
	o := newOptions(opts)
	return &Reader{r: r, policy: o.policy, logger: o.logger}
}

// RecordsRead returns the number of records successfully returned so far.
func (rd *Reader) RecordsRead() int { return rd.recordsRead }

// ReadRecord returns the next record, io.EOF at a clean end of stream, or
// a *marcerr.Error describing a structural failure. The reader never
// reads beyond the declared record_length.
func (rd *Reader) ReadRecord() (*record.Record, error) {
	seq := rd.recordsRead
	leaderBytes := make([]byte, record.LeaderSize)
	n, err := io.ReadFull(rd.r, leaderBytes)
	if n == 0 && err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, marcerr.New(marcerr.KindTruncated, seq, "", err)
	}
	if err != nil {
		// io.ReadFull returns ErrUnexpectedEOF for a short, non-empty read.
		return nil, marcerr.New(marcerr.KindTruncated, seq, "", err)
	}

	leader, lerr := record.ParseLeader(leaderBytes)
	if lerr != nil {
		return nil, lerr
	}

	remaining := leader.RecordLength - record.LeaderSize
	body := make([]byte, remaining)
	got, rerr := io.ReadFull(rd.r, body)
	if rerr != nil {
		if recovered, rec := recovery.Decide(rd.policy, marcerr.KindTruncated, seq, "", -1); !recovered {
			return nil, rec
		}
		body = body[:got]
		rd.logger.Debug("truncated record recovered", "record", seq, "declared", remaining, "got", got)
	}

	baseOffset := leader.DataBaseAddress - record.LeaderSize
	if baseOffset > len(body) {
		if recovered, rec := recovery.Decide(rd.policy, marcerr.KindInvalidDirectory, seq, "", -1); !recovered {
			return nil, rec
		}
		baseOffset = len(body)
	}
	directory := body[:baseOffset]
	data := body[baseOffset:]

	entries, derr := parseDirectory(rd.policy, seq, directory)
	if derr != nil {
		return nil, derr
	}

	rec := record.New(leader)
	for i, e := range entries {
		end := e.offset + e.length
		if end > len(data) {
			if recovered, err := recovery.Decide(rd.policy, marcerr.KindInvalidDirectory, seq, e.tag, i); !recovered {
				return nil, err
			}
			if e.offset >= len(data) {
				continue
			}
			end = len(data)
		}
		fieldBytes := data[e.offset:end]
		if record.ControlFieldTag(e.tag) {
			if err := parseControlFieldInto(rec, e.tag, fieldBytes, rd.policy, seq, i); err != nil {
				return nil, err
			}
			continue
		}
		if err := parseDataFieldInto(rec, e.tag, fieldBytes, rd.policy, seq, i); err != nil {
			return nil, err
		}
	}

	rd.recordsRead++
	return rec, nil
}

type directoryEntry struct {
	tag    string
	length int
	offset int
}

// parseDirectory parses the fixed-width ASCII-digit directory entries
// without intermediate string allocation for the numeric fields, per
// §4.C.2. A non-digit byte in a numeric position is a KindInvalidDirectory;
// lenient/permissive modes skip the offending entry instead of failing
// the whole record.
func parseDirectory(p recovery.Policy, seq int, directory []byte) ([]directoryEntry, error) {
	var entries []directoryEntry
	i := 0
	for i < len(directory) {
		if directory[i] == FieldTerminator {
			return entries, nil
		}
		if i+directoryEntrySize > len(directory) {
			if recovered, err := recovery.Decide(p, marcerr.KindInvalidDirectory, seq, "", len(entries)); !recovered {
				return nil, err
			}
			return entries, nil
		}
		entry := directory[i : i+directoryEntrySize]
		tag := string(entry[0:3])
		length, lok := parseDigitsExact(entry[3:7])
		offset, ook := parseDigitsExact(entry[7:12])
		if !lok || !ook {
			if recovered, err := recovery.Decide(p, marcerr.KindInvalidDirectory, seq, tag, len(entries)); !recovered {
				return nil, err
			}
			i += directoryEntrySize
			continue
		}
		entries = append(entries, directoryEntry{tag: tag, length: length, offset: offset})
		i += directoryEntrySize
	}
	// Ran off the end without seeing a field terminator.
	if recovered, err := recovery.Decide(p, marcerr.KindMissingTerminator, seq, "", len(entries)); !recovered {
		return nil, err
	}
	return entries, nil
}

// parseDigitsExact parses a fixed-width run of ASCII digits without
// intermediate string allocation.
func parseDigitsExact(b []byte) (int, bool) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func parseControlFieldInto(rec *record.Record, tag string, raw []byte, p recovery.Policy, seq, dirIndex int) error {
	value := raw
	if n := len(value); n > 0 && value[n-1] == FieldTerminator {
		value = value[:n-1]
	} else {
		recovered, err := recovery.Decide(p, marcerr.KindMissingTerminator, seq, tag, dirIndex)
		if !recovered {
			return err
		}
	}
	rec.AddControlField(tag, string(value))
	return nil
}

// parseDataFieldInto implements §4.C.1: ind1/ind2 then a scan for
// 0x1F-introduced subfields running to the next 0x1F or the trailing
// 0x1E. A stray non-delimiter byte where a subfield delimiter is expected
// is a structural error: strict fails the whole record; lenient/
// permissive drops this field only and leaves the record otherwise
// intact.
func parseDataFieldInto(rec *record.Record, tag string, raw []byte, p recovery.Policy, seq, dirIndex int) error {
	if len(raw) < 2 {
		recovered, err := recovery.Decide(p, marcerr.KindInvalidField, seq, tag, dirIndex)
		if !recovered {
			return err
		}
		return nil
	}
	f := &record.Field{Tag: tag, Indicator1: raw[0], Indicator2: raw[1]}
	body := raw[2:]
	if n := len(body); n > 0 && body[n-1] == FieldTerminator {
		body = body[:n-1]
	} else if !p.ToleratesMissingFieldTerminator() {
		recovered, err := recovery.Decide(p, marcerr.KindMissingTerminator, seq, tag, dirIndex)
		if !recovered {
			return err
		}
	}

	i := 0
	for i < len(body) {
		if body[i] != SubfieldDelimiter {
			recovered, err := recovery.Decide(p, marcerr.KindInvalidField, seq, tag, dirIndex)
			if !recovered {
				return err
			}
			return nil // drop the field, keep the rest of the record
		}
		if i+1 >= len(body) {
			break
		}
		code := body[i+1]
		start := i + 2
		end := start
		for end < len(body) && body[end] != SubfieldDelimiter {
			end++
		}
		f.Subfields = append(f.Subfields, record.Subfield{Code: code, Value: string(body[start:end])})
		i = end
	}
	rec.AddField(f)
	return nil
}
