// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"fmt"
	"strings"
)

// WriteTurtle serializes g as Turtle, grouping consecutive triples that
// share a subject under one "subject p1 o1 ; p2 o2 ." block. No prefixes are
// declared; every IRI is written in full <...> form, which keeps the
// serializer a straightforward specialization of the N-Triples term
// encoding rather than a second escaping scheme to maintain.
func WriteTurtle(g *Graph) string {
	var b strings.Builder
	triples := g.Triples()
	i := 0
	for i < len(triples) {
		subj := triples[i].Subject
		b.WriteString(encodeNTripleTerm(subj))
		j := i
		first := true
		for j < len(triples) && triples[j].Subject.Equal(subj) {
			if !first {
				b.WriteString(" ;\n   ")
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(encodeNTripleTerm(triples[j].Predicate))
			b.WriteByte(' ')
			b.WriteString(encodeNTripleTerm(triples[j].Object))
			first = false
			j++
		}
		b.WriteString(" .\n")
		i = j
	}
	return b.String()
}

// ParseTurtle parses the restricted Turtle subset WriteTurtle emits:
// semicolon-grouped predicate-object lists, full <...> IRIs, no prefixes,
// no collections or blank-node property lists. It is not a general Turtle
// parser.
func ParseTurtle(text string) (*Graph, error) {
	g := New()
	for _, stmt := range splitTurtleStatements(text) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		parts := strings.SplitN(stmt, " ", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("rdf: malformed turtle statement %q", stmt)
		}
		subjTok := parts[0]
		subj, err := parseNTripleTerm(subjTok)
		if err != nil {
			return nil, err
		}
		for _, clause := range strings.Split(parts[1], " ;") {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}
			toks, err := tokenizeNTripleTerms(clause)
			if err != nil {
				return nil, err
			}
			if len(toks) != 2 {
				return nil, fmt.Errorf("rdf: expected predicate and object, got %q", clause)
			}
			p, err := parseNTripleTerm(toks[0])
			if err != nil {
				return nil, err
			}
			o, err := parseNTripleTerm(toks[1])
			if err != nil {
				return nil, err
			}
			g.Add(subj, p, o)
		}
	}
	return g, nil
}

// splitTurtleStatements splits on a line-ending " .\n" terminator, which is
// exactly what WriteTurtle emits between subject blocks.
func splitTurtleStatements(text string) []string {
	return strings.Split(strings.ReplaceAll(text, " .\n", "\x00"), "\x00")
}
