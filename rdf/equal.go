// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"sort"
	"strconv"
)

// Equal reports whether a and b contain the same triples up to a consistent
// renaming of blank-node labels (graph isomorphism on blank-node structure,
// per spec §4.J). Two graphs with identical non-blank structure but
// different blank-node numbering (e.g. one re-serialized through a
// relabeling parser) still compare equal.
func Equal(a, b *Graph) bool {
	if a.Len() != b.Len() {
		return false
	}
	return equalStrings(canonicalLines(a), canonicalLines(b))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// canonicalLines renders every triple with blank nodes relabeled by their
// first-seen order within the graph, then sorts the resulting lines. This is
// a correct isomorphism test only for graphs without blank-node symmetry
// ambiguity (no two structurally interchangeable blank nodes) — the shape
// every converter in this module produces, since each blank node is reached
// by a unique predicate path from a named or control-number-derived root.
func canonicalLines(g *Graph) []string {
	relabel := make(map[string]string)
	next := 0
	label := func(n Node) Node {
		if n.Kind != Blank {
			return n
		}
		l, ok := relabel[n.Value]
		if !ok {
			l = "c" + strconv.Itoa(next)
			next++
			relabel[n.Value] = l
		}
		return NewBlank(l)
	}
	lines := make([]string, 0, g.Len())
	for _, t := range g.Triples() {
		s := label(t.Subject)
		o := label(t.Object)
		lines = append(lines, encodeNTripleTerm(s)+" "+encodeNTripleTerm(t.Predicate)+" "+encodeNTripleTerm(o)+" .")
	}
	sort.Strings(lines)
	return lines
}
