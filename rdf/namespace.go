// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

// Core W3C namespaces, needed by every RDF vocabulary regardless of domain.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDFType is rdf:type, used constantly enough (every typed node) to deserve
// its own constant rather than a namespace+local concatenation at each call
// site.
var RDFType = RDFNamespace + "type"

// Join concatenates a namespace and a local name into a full IRI string.
// Namespaces in this package always carry their own trailing separator
// ('/' or '#'), matching the LOC/W3C vocabularies' own literal URI strings.
func Join(namespace, local string) string { return namespace + local }
