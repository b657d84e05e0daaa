// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import "strings"

// Linkage880Tag is the MARC tag carrying alternate-script transcriptions.
const Linkage880Tag = "880"

// ParseSubfield6 splits a $6 value of the form "TAG-OCC/SCRIPT" into its
// "TAG-OCC" label and its optional "/SCRIPT" suffix. script is empty when
// no "/" is present.
func ParseSubfield6(v string) (label, script string) {
	if i := strings.IndexByte(v, '/'); i >= 0 {
		return v[:i], v[i+1:]
	}
	return v, ""
}

// splitTagOcc splits a "TAG-OCC" label into its two components.
func splitTagOcc(label string) (tag, occ string, ok bool) {
	i := strings.IndexByte(label, '-')
	if i < 0 {
		return "", "", false
	}
	return label[:i], label[i+1:], true
}

// linked880Index indexes 880 fields by their own "$6 = TAG-OCC" label
// (TAG names the field the 880 transcribes, OCC its occurrence number),
// built on demand per the Design Notes: this is a relation computed from
// the record, not a bidirectional pointer kept up to date as fields
// mutate.
type linked880Index struct {
	labels []string // 880's own TAG-OCC label, parallel to fields
	fields []*Field
}

func buildLinked880Index(r *Record) *linked880Index {
	idx := &linked880Index{}
	for _, f := range r.dataByTag[Linkage880Tag] {
		v, ok := f.Subfield('6')
		if !ok {
			continue
		}
		label, _ := ParseSubfield6(v)
		idx.labels = append(idx.labels, label)
		idx.fields = append(idx.fields, f)
	}
	return idx
}

func (idx *linked880Index) matching(prefix string) []*Field {
	var out []*Field
	for i, label := range idx.labels {
		if strings.HasPrefix(label, prefix) {
			out = append(out, idx.fields[i])
		}
	}
	return out
}

// Linked880For returns every 880 field whose own "$6 = TAG-OCC" label
// starts with "<tag>-<occ>", where <occ> is the occurrence number parsed
// out of f's own $6 (conventionally "880-<occ>" on the original field),
// and <tag> is f's own tag — the inverse of how the 880 names it back.
// f must not itself be tagged 880.
func (r *Record) Linked880For(tag string, f *Field) []*Field {
	if tag == Linkage880Tag {
		return nil
	}
	v, ok := f.Subfield('6')
	if !ok {
		return nil
	}
	ownLabel, _ := ParseSubfield6(v)
	_, occ, ok := splitTagOcc(ownLabel)
	if !ok {
		return nil
	}
	idx := buildLinked880Index(r)
	return idx.matching(tag + "-" + occ)
}

// LinkageReferent parses an 880 field's own $6 and returns the tag of the
// field it transcribes ("TAG" out of "TAG-OCC"), and whether parsing
// succeeded.
func LinkageReferent(f880 *Field) (referentTag string, ok bool) {
	v, has := f880.Subfield('6')
	if !has {
		return "", false
	}
	label, _ := ParseSubfield6(v)
	tag, _, ok := splitTagOcc(label)
	return tag, ok
}

// FieldPair is one (original, linked880) result from GetFieldPairs.
// Linked880 is nil when the original carries no $6 linkage or no matching
// 880 field exists.
type FieldPair struct {
	Original  *Field
	Linked880 *Field
}

// GetFieldPairs yields (original, linked880?) for every field with the
// given tag, in the tag's insertion order, per §4.A.2. When a field links
// to more than one 880 (repeated occurrence numbers are not expected but
// not forbidden), the first match is paired and the rest are omitted;
// callers needing every match should use Linked880For directly.
func (r *Record) GetFieldPairs(tag string) []FieldPair {
	fields := r.dataByTag[tag]
	if len(fields) == 0 {
		return nil
	}
	idx := buildLinked880Index(r)
	out := make([]FieldPair, 0, len(fields))
	for _, f := range fields {
		pair := FieldPair{Original: f}
		if v, ok := f.Subfield('6'); ok {
			ownLabel, _ := ParseSubfield6(v)
			if _, occ, ok := splitTagOcc(ownLabel); ok {
				if matches := idx.matching(tag + "-" + occ); len(matches) > 0 {
					pair.Linked880 = matches[0]
				}
			}
		}
		out = append(out, pair)
	}
	return out
}
