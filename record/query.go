// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"regexp"
	"strings"
)

// Predicate is a pure, side-effect-free test over a field. It composes
// via And/Or/Not; the record exposes an iterator (Query) yielding every
// field for which Match returns true, in the record's iteration order.
type Predicate interface {
	Match(tag string, f *Field) bool
}

type predFunc func(tag string, f *Field) bool

func (p predFunc) Match(tag string, f *Field) bool { return p(tag, f) }

// TagEquals matches fields whose tag equals want.
func TagEquals(want string) Predicate {
	return predFunc(func(tag string, f *Field) bool { return tag == want })
}

// TagRange matches fields whose tag falls lexicographically in [start, end].
func TagRange(start, end string) Predicate {
	return predFunc(func(tag string, f *Field) bool { return tag >= start && tag <= end })
}

// anyIndicator is the wildcard value for Indicator1Equals/Indicator2Equals.
const anyIndicator byte = 0

// Indicator1Equals matches fields whose first indicator equals want. A
// want value of 0 (the zero byte, never a legal indicator) acts as a
// wildcard matching any indicator.
func Indicator1Equals(want byte) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		return want == anyIndicator || (f != nil && f.Indicator1 == want)
	})
}

// Indicator2Equals matches fields whose second indicator equals want,
// with the same wildcard convention as Indicator1Equals.
func Indicator2Equals(want byte) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		return want == anyIndicator || (f != nil && f.Indicator2 == want)
	})
}

// HasSubfields matches fields that carry every code in codes, regardless
// of order or repetition.
func HasSubfields(codes ...byte) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		if f == nil {
			return false
		}
		for _, want := range codes {
			found := false
			for _, sf := range f.Subfields {
				if sf.Code == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	})
}

// SubfieldExact matches fields with a subfield code whose value equals want.
func SubfieldExact(code byte, want string) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		if f == nil {
			return false
		}
		for _, sf := range f.Subfields {
			if sf.Code == code && sf.Value == want {
				return true
			}
		}
		return false
	})
}

// SubfieldContains matches fields with a subfield code whose value
// contains substr.
func SubfieldContains(code byte, substr string) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		if f == nil {
			return false
		}
		for _, sf := range f.Subfields {
			if sf.Code == code && strings.Contains(sf.Value, substr) {
				return true
			}
		}
		return false
	})
}

// SubfieldMatches matches fields with a subfield code whose value matches
// the compiled regular expression re.
func SubfieldMatches(code byte, re *regexp.Regexp) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		if f == nil {
			return false
		}
		for _, sf := range f.Subfields {
			if sf.Code == code && re.MatchString(sf.Value) {
				return true
			}
		}
		return false
	})
}

// And matches when every sub-predicate matches.
func And(preds ...Predicate) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		for _, p := range preds {
			if !p.Match(tag, f) {
				return false
			}
		}
		return true
	})
}

// Or matches when any sub-predicate matches.
func Or(preds ...Predicate) Predicate {
	return predFunc(func(tag string, f *Field) bool {
		for _, p := range preds {
			if p.Match(tag, f) {
				return true
			}
		}
		return false
	})
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return predFunc(func(tag string, f *Field) bool { return !p.Match(tag, f) })
}

// Query calls fn for every data field matching p, in the record's
// iteration order, until fn returns false.
func (r *Record) Query(p Predicate, fn func(tag string, f *Field) bool) {
	for _, tag := range r.dataTagOrder {
		for _, f := range r.dataByTag[tag] {
			if p.Match(tag, f) {
				if !fn(tag, f) {
					return
				}
			}
		}
	}
}

// Fields materializes Query's results into a slice.
func (r *Record) Fields(p Predicate) []*Field {
	var out []*Field
	r.Query(p, func(tag string, f *Field) bool {
		out = append(out, f)
		return true
	})
	return out
}
