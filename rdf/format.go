// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import "fmt"

// Format selects one of the four serializations spec §6.3 names.
type Format int

const (
	NTriples Format = iota
	Turtle
	JSONLD
	RDFXML
)

// MimeType returns the IANA media type for f, per spec §6.3.
func (f Format) MimeType() string {
	switch f {
	case NTriples:
		return "application/n-triples"
	case Turtle:
		return "text/turtle"
	case JSONLD:
		return "application/ld+json"
	case RDFXML:
		return "application/rdf+xml"
	default:
		return ""
	}
}

// Write serializes g in the given format.
func Write(g *Graph, f Format) (string, error) {
	switch f {
	case NTriples:
		return WriteNTriples(g), nil
	case Turtle:
		return WriteTurtle(g), nil
	case JSONLD:
		return WriteJSONLD(g)
	case RDFXML:
		return WriteRDFXML(g)
	default:
		return "", fmt.Errorf("rdf: unknown format %d", f)
	}
}

// Parse parses text in the given format. propertyNamespace is only consulted
// for RDFXML (see ParseRDFXML); pass "" for the other formats.
func Parse(text string, f Format, propertyNamespace string) (*Graph, error) {
	switch f {
	case NTriples:
		return ParseNTriples(text)
	case Turtle:
		return ParseTurtle(text)
	case JSONLD:
		return ParseJSONLD(text)
	case RDFXML:
		return ParseRDFXML(text, propertyNamespace)
	default:
		return nil, fmt.Errorf("rdf: unknown format %d", f)
	}
}
