// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bibframe

import "github.com/solidcoredata/marcstream/rdf"

// Config controls how a record is converted to a BIBFRAME graph and how
// that graph is serialized, per spec §6.5. Field-for-field mirror of
// original_source/src/bibframe/config.rs's BibframeConfig, with Go zero
// values substituting for Rust's Option/Default.
type Config struct {
	// BaseURI mints URIs under this prefix when non-empty; otherwise every
	// entity is a blank node.
	BaseURI string

	// UseControlNumber selects field 001 as the id portion of a minted URI;
	// when false (or 001 is absent), the literal "unknown" is used.
	UseControlNumber bool

	// LinkAuthorities is not read by ConvertToBIBFRAME: agent and subject
	// nodes are always blank nodes, and $0 subfields are not converted.
	LinkAuthorities bool

	// OutputFormat selects the serialization that config.Run passes to
	// rdf.Write; ConvertToBIBFRAME itself does not read it.
	OutputFormat rdf.Format

	// IncludeBFLC emits BFLC extension triples: primary contribution
	// marker, simple agent/place/date, encoding level.
	IncludeBFLC bool

	// IncludeSource is not read by ConvertToBIBFRAME; the source record's
	// bytes are never embedded in AdminMetadata.
	IncludeSource bool

	// FailFast is not read by ConvertToBIBFRAME, which returns no error
	// and always converts every field it recognizes.
	FailFast bool

	// Strict is not read by ConvertToBIBFRAME; questionable data (e.g. an
	// unrecognized indicator) is always converted on a best-effort basis.
	Strict bool
}

// DefaultConfig returns the configuration original_source/src/bibframe/config.rs's
// Default impl specifies: blank nodes, 001-derived ids, JSON-LD output, BFLC
// extensions on, everything else off.
func DefaultConfig() Config {
	return Config{
		UseControlNumber: true,
		OutputFormat:     rdf.JSONLD,
		IncludeBFLC:      true,
	}
}
