// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// WriteRDFXML serializes g as RDF/XML: one rdf:Description per subject,
// properties as "x:localName" child elements (local name is the part of the
// predicate IRI after the last '/' or '#'). The element text is built
// directly with xml.EscapeText rather than through struct marshaling, since
// a generated "x:" prefix has no declared xmlns binding for encoding/xml's
// struct-tag namespace matching to resolve correctly on the decode side.
func WriteRDFXML(g *Graph) (string, error) {
	order, bySubject := groupBySubject(g)
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, "<rdf:RDF xmlns:rdf=%q>\n", RDFNamespace)
	for _, key := range order {
		triples := bySubject[key]
		subj := triples[0].Subject
		if subj.Kind == Blank {
			fmt.Fprintf(&b, "  <rdf:Description rdf:nodeID=%q>\n", subj.Value)
		} else {
			fmt.Fprintf(&b, "  <rdf:Description rdf:about=%q>\n", attrEscape(subj.Value))
		}
		for _, t := range triples {
			if t.Predicate.Value == RDFType {
				fmt.Fprintf(&b, "    <rdf:type rdf:resource=%q/>\n", attrEscape(t.Object.Value))
				continue
			}
			local := localName(t.Predicate.Value)
			switch t.Object.Kind {
			case IRI:
				fmt.Fprintf(&b, "    <x:%s rdf:resource=%q/>\n", local, attrEscape(t.Object.Value))
			case Blank:
				fmt.Fprintf(&b, "    <x:%s rdf:nodeID=%q/>\n", local, t.Object.Value)
			default:
				attrs := ""
				if t.Object.Lang != "" {
					attrs = fmt.Sprintf(` xml:lang=%q`, t.Object.Lang)
				} else if t.Object.Datatype != "" {
					attrs = fmt.Sprintf(` rdf:datatype=%q`, attrEscape(t.Object.Datatype))
				}
				fmt.Fprintf(&b, "    <x:%s%s>%s</x:%s>\n", local, attrs, textEscape(t.Object.Value), local)
			}
		}
		b.WriteString("  </rdf:Description>\n")
	}
	b.WriteString("</rdf:RDF>\n")
	return b.String(), nil
}

func attrEscape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func textEscape(s string) string { return attrEscape(s) }

func localName(iri string) string {
	for i := len(iri) - 1; i >= 0; i-- {
		if iri[i] == '/' || iri[i] == '#' {
			return iri[i+1:]
		}
	}
	return iri
}

func groupBySubject(g *Graph) ([]string, map[string][]Triple) {
	order := []string{}
	grouped := make(map[string][]Triple)
	for _, t := range g.Triples() {
		k := subjectKey(t.Subject)
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], t)
	}
	return order, grouped
}

// ParseRDFXML parses a document produced by WriteRDFXML using a token-level
// scan (rather than struct unmarshaling) so that predicate elements bearing
// an undeclared "x:" prefix are handled explicitly instead of depending on
// encoding/xml's namespace-prefix resolution for an unbound prefix.
// propertyNamespace is prepended to every "x:"-prefixed element's local name
// to reconstruct the predicate IRI; pass the vocabulary namespace the
// converter serialized against.
func ParseRDFXML(text, propertyNamespace string) (*Graph, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	g := New()
	var subj Node
	var haveSubject bool

	attr := func(attrs []xml.Attr, local string) (string, bool) {
		for _, a := range attrs {
			if a.Name.Local == local {
				return a.Value, true
			}
		}
		return "", false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rdf: parsing RDF/XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "RDF":
			continue
		case "Description":
			if about, ok := attr(start.Attr, "about"); ok {
				subj = NewIRI(about)
			} else if nodeID, ok := attr(start.Attr, "nodeID"); ok {
				subj = NewBlank(nodeID)
			} else {
				return nil, fmt.Errorf("rdf: rdf:Description missing both rdf:about and rdf:nodeID")
			}
			haveSubject = true
		case "type":
			resource, _ := attr(start.Attr, "resource")
			g.Add(subj, NewIRI(RDFType), NewIRI(resource))
		default:
			if !haveSubject {
				continue
			}
			local := strings.TrimPrefix(start.Name.Local, "x:")
			pred := NewIRI(propertyNamespace + local)
			if resource, ok := attr(start.Attr, "resource"); ok {
				g.Add(subj, pred, NewIRI(resource))
				continue
			}
			if nodeID, ok := attr(start.Attr, "nodeID"); ok {
				g.Add(subj, pred, NewBlank(nodeID))
				continue
			}
			value, err := readCharData(dec)
			if err != nil {
				return nil, err
			}
			if datatype, ok := attr(start.Attr, "datatype"); ok {
				g.Add(subj, pred, NewTypedLiteral(value, datatype))
			} else if lang, ok := attr(start.Attr, "lang"); ok {
				g.Add(subj, pred, NewLangLiteral(value, lang))
			} else {
				g.Add(subj, pred, NewLiteral(value))
			}
		}
	}
	return g, nil
}

// readCharData accumulates character data up to the next end element,
// for a property element with no rdf:resource/rdf:nodeID attribute.
func readCharData(dec *xml.Decoder) (string, error) {
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			return b.String(), nil
		}
	}
}
