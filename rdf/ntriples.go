// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"bufio"
	"fmt"
	"strings"
)

// WriteNTriples serializes g as N-Triples (one "subject predicate object ."
// line per triple, in insertion order), the format spec §6.3 requires exact
// byte-identical round-tripping for.
func WriteNTriples(g *Graph) string {
	var b strings.Builder
	for _, t := range g.Triples() {
		b.WriteString(encodeNTripleTerm(t.Subject))
		b.WriteByte(' ')
		b.WriteString(encodeNTripleTerm(t.Predicate))
		b.WriteByte(' ')
		b.WriteString(encodeNTripleTerm(t.Object))
		b.WriteString(" .\n")
	}
	return b.String()
}

func encodeNTripleTerm(n Node) string {
	switch n.Kind {
	case IRI:
		return "<" + escapeIRI(n.Value) + ">"
	case Blank:
		return "_:" + n.Value
	default:
		s := "\"" + escapeLiteral(n.Value) + "\""
		if n.Lang != "" {
			return s + "@" + n.Lang
		}
		if n.Datatype != "" {
			return s + "^^<" + escapeIRI(n.Datatype) + ">"
		}
		return s
	}
}

func escapeIRI(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<', '>', '"', '{', '}', '|', '^', '`', '\\', ' ':
			fmt.Fprintf(&b, "\\u%04X", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}

// ParseNTriples parses an N-Triples document into a new Graph. Blank-node
// labels from the source text are preserved verbatim (not re-minted), so
// parsing output already written by WriteNTriples round-trips exactly.
func ParseNTriples(text string) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseNTripleLine(line)
		if err != nil {
			return nil, fmt.Errorf("rdf: line %d: %w", lineNo, err)
		}
		g.AddTriple(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseNTripleLine(line string) (Triple, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")
	line = strings.TrimSpace(line)
	toks, err := tokenizeNTripleTerms(line)
	if err != nil {
		return Triple{}, err
	}
	if len(toks) != 3 {
		return Triple{}, fmt.Errorf("expected 3 terms, got %d: %q", len(toks), line)
	}
	s, err := parseNTripleTerm(toks[0])
	if err != nil {
		return Triple{}, err
	}
	p, err := parseNTripleTerm(toks[1])
	if err != nil {
		return Triple{}, err
	}
	o, err := parseNTripleTerm(toks[2])
	if err != nil {
		return Triple{}, err
	}
	return Triple{Subject: s, Predicate: p, Object: o}, nil
}

// tokenizeNTripleTerms splits a triple's term section into exactly three
// whitespace-delimited tokens, respecting quoted-literal boundaries so a
// literal's own internal spaces are not mistaken for separators.
func tokenizeNTripleTerms(line string) ([]string, error) {
	var toks []string
	i := 0
	for len(toks) < 3 {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) {
			return toks, nil
		}
		start := i
		switch line[i] {
		case '<':
			end := strings.IndexByte(line[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated IRI in %q", line)
			}
			i += end + 1
		case '"':
			i++
			for i < len(line) {
				if line[i] == '\\' {
					i += 2
					continue
				}
				if line[i] == '"' {
					i++
					break
				}
				i++
			}
			// consume an optional @lang or ^^<...> suffix
			if i < len(line) && line[i] == '@' {
				for i < len(line) && line[i] != ' ' {
					i++
				}
			} else if i+1 < len(line) && line[i] == '^' && line[i+1] == '^' {
				i += 2
				if i < len(line) && line[i] == '<' {
					end := strings.IndexByte(line[i:], '>')
					if end < 0 {
						return nil, fmt.Errorf("unterminated datatype IRI in %q", line)
					}
					i += end + 1
				}
			}
		default: // blank node label, e.g. _:b0
			for i < len(line) && line[i] != ' ' {
				i++
			}
		}
		toks = append(toks, line[start:i])
	}
	return toks, nil
}

func parseNTripleTerm(tok string) (Node, error) {
	switch {
	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		return NewIRI(tok[1 : len(tok)-1]), nil
	case strings.HasPrefix(tok, "_:"):
		return NewBlank(tok[2:]), nil
	case strings.HasPrefix(tok, "\""):
		return parseNTripleLiteral(tok)
	default:
		return Node{}, fmt.Errorf("unrecognized term %q", tok)
	}
}

func parseNTripleLiteral(tok string) (Node, error) {
	end := strings.LastIndexByte(tok, '"')
	if end <= 0 {
		return Node{}, fmt.Errorf("malformed literal %q", tok)
	}
	value := unescapeLiteral(tok[1:end])
	rest := tok[end+1:]
	switch {
	case strings.HasPrefix(rest, "@"):
		return NewLangLiteral(value, rest[1:]), nil
	case strings.HasPrefix(rest, "^^<") && strings.HasSuffix(rest, ">"):
		return NewTypedLiteral(value, rest[3:len(rest)-1]), nil
	case rest == "":
		return NewLiteral(value), nil
	default:
		return Node{}, fmt.Errorf("malformed literal suffix %q", rest)
	}
}
