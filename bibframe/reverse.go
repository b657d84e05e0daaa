// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bibframe

import (
	"strings"

	"github.com/solidcoredata/marcstream/rdf"
	"github.com/solidcoredata/marcstream/record"
)

// ConvertToMARC reconstructs a record from a BIBFRAME graph, per spec §4.I.
// Conversion is best-effort: BIBFRAME is semantically richer than MARC, so
// some data (non-filing indicators, positional 008 codes, $0 authority
// links) does not survive the round trip.
func ConvertToMARC(g *rdf.Graph) *record.Record {
	r := &reverser{graph: g, idx: g.IndexBySubject()}
	r.findEntities()
	return r.convert()
}

// reverser holds the mutable state threaded through one BIBFRAME-to-MARC
// run, grounded on original_source/src/bibframe/reverse_converter.rs's
// BibframeToMarcConverter.
type reverser struct {
	graph *rdf.Graph
	idx   *rdf.ByIndex

	work, instance         rdf.Node
	haveWork, haveInstance bool
}

// findEntities locates the first node typed Work (or a Work subtype) and
// the first typed Instance (or an Instance subtype), per algorithm step 2.
func (r *reverser) findEntities() {
	for _, t := range r.graph.Triples() {
		if t.Predicate.Value != rdf.RDFType {
			continue
		}
		typeURI := t.Object.Value
		if !r.haveWork && (typeURI == bf(Classes.Work) || isWorkSubtype(typeURI)) {
			r.work, r.haveWork = t.Subject, true
		}
		if !r.haveInstance && (typeURI == bf(Classes.Instance) || isInstanceSubtype(typeURI)) {
			r.instance, r.haveInstance = t.Subject, true
		}
	}
}

func (r *reverser) convert() *record.Record {
	rec := record.New(r.createLeader())

	r.extractControlFields(rec)
	r.extractTitles(rec)
	r.extractCreators(rec)
	r.extractContributors(rec)
	r.extractSubjects(rec)
	r.extractIdentifiers(rec)
	r.extractProvisionActivity(rec)
	r.extractPhysicalDescription(rec)
	r.extractNotes(rec)
	r.extractSeries(rec)
	r.extractLinkingEntries(rec)

	return rec
}

// createLeader synthesizes a leader from the Work's and Instance's types,
// per algorithm step 3.
func (r *reverser) createLeader() record.Leader {
	recordType := byte('a')
	bibLevel := byte('m')

	if r.haveWork {
		for _, typ := range r.idx.Types(r.work) {
			recordType = workTypeToLeader06(typ.Value)
		}
	}
	if r.haveInstance {
		for _, typ := range r.idx.Types(r.instance) {
			bibLevel = instanceTypeToLeader07(typ.Value)
		}
	}

	return record.Leader{
		RecordStatus:       'n',
		RecordType:         recordType,
		BibliographicLevel: bibLevel,
		ControlType:        ' ',
		CharacterCoding:    'a',
		IndicatorCount:     '2',
		SubfieldCodeCount:  '2',
		EncodingLevel:      ' ',
		CatalogingForm:     'a',
		MultipartLevel:     ' ',
	}
}

// extractControlFields emits 001 and a minimal 008, per algorithm steps 4-5.
func (r *reverser) extractControlFields(rec *record.Record) {
	if r.haveInstance {
		if num, ok := r.findControlNumber(); ok {
			rec.AddControlField("001", num)
		}
	}
	rec.AddControlField("008", r.create008Field())
}

// findControlNumber returns the value of the first LCCN or Local identifier
// on the Instance.
func (r *reverser) findControlNumber() (string, bool) {
	for _, idNode := range r.idx.Objects(r.instance, bf(Properties.IdentifiedBy)) {
		isControlID := false
		var value string
		for _, typ := range r.idx.Types(idNode) {
			if strings.Contains(typ.Value, "Lccn") || strings.Contains(typ.Value, "Local") {
				isControlID = true
			}
		}
		if v, ok := r.idx.Object(idNode, rdf.Join(rdf.RDFNamespace, "value")); ok {
			value = v.Value
		}
		if isControlID && value != "" {
			return value, true
		}
	}
	return "", false
}

// create008Field builds a minimal 40-byte 008 control field, per algorithm
// step 5.
func (r *reverser) create008Field() string {
	var b strings.Builder
	b.WriteString("      ") // date entered, unknown
	b.WriteByte('s')        // single known date
	year, ok := r.extractPublicationYear()
	if !ok {
		year = "    "
	}
	b.WriteString(year)
	b.WriteString("    ") // date 2
	b.WriteString("xx ")  // place of publication
	b.WriteString("    ") // illustrations
	b.WriteByte(' ')      // target audience
	b.WriteByte(' ')      // form of item
	b.WriteString("    ") // nature of contents
	b.WriteByte(' ')      // government publication
	b.WriteByte('0')      // conference publication
	b.WriteByte('0')      // festschrift
	b.WriteByte('0')      // index
	b.WriteByte(' ')      // undefined
	b.WriteByte('0')      // literary form
	b.WriteByte(' ')      // biography
	b.WriteString("eng")  // language
	b.WriteByte(' ')      // modified record
	b.WriteByte(' ')      // cataloging source
	return b.String()
}

// extractPublicationYear pulls the first 4 ASCII digits out of the
// Instance's provisionActivity date, for 008 positions 7-10.
func (r *reverser) extractPublicationYear() (string, bool) {
	if !r.haveInstance {
		return "", false
	}
	for _, activity := range r.idx.Objects(r.instance, bf(Properties.ProvisionActivity)) {
		date, ok := r.idx.Object(activity, bf(Properties.Date))
		if !ok || !date.IsLiteral() {
			continue
		}
		var digits strings.Builder
		for _, c := range date.Value {
			if c >= '0' && c <= '9' {
				digits.WriteRune(c)
				if digits.Len() == 4 {
					return digits.String(), true
				}
			}
		}
	}
	return "", false
}

// extractTitles emits the Instance's titles as 245 (first) and 246 (rest)
// plus a responsibilityStatement onto 245 $c, per algorithm step 6.
func (r *reverser) extractTitles(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	first := true
	for _, titleNode := range r.idx.Objects(r.instance, bf(Properties.Title)) {
		tag := "246"
		if first {
			tag = "245"
			first = false
		}
		rec.AddField(r.createTitleField(tag, titleNode))
	}
	if resp, ok := r.idx.Object(r.instance, bf(Properties.ResponsibilityStatement)); ok && resp.IsLiteral() {
		if f, ok := rec.GetField("245"); ok {
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'c', Value: resp.Value})
		}
	}
}

// createTitleField rebuilds a title field by inverse property mapping.
func (r *reverser) createTitleField(tag string, titleNode rdf.Node) *record.Field {
	f := &record.Field{Tag: tag, Indicator1: '0', Indicator2: '0'}
	for _, t := range r.idx.Triples(titleNode) {
		if !t.Object.IsLiteral() {
			continue
		}
		switch {
		case strings.HasSuffix(t.Predicate.Value, "mainTitle"):
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: t.Object.Value})
		case strings.HasSuffix(t.Predicate.Value, "subtitle"):
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'b', Value: t.Object.Value})
		case strings.HasSuffix(t.Predicate.Value, "partNumber"):
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'n', Value: t.Object.Value})
		case strings.HasSuffix(t.Predicate.Value, "partName"):
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'p', Value: t.Object.Value})
		}
	}
	return f
}

// extractCreators emits the Work's primary contributions as 100/110/111,
// per algorithm step 7.
func (r *reverser) extractCreators(rec *record.Record) {
	r.extractAgents(rec, true, "1")
}

// extractContributors emits the Work's non-primary contributions as
// 700/710/711, per algorithm step 7.
func (r *reverser) extractContributors(rec *record.Record) {
	r.extractAgents(rec, false, "7")
}

func (r *reverser) extractAgents(rec *record.Record, wantPrimary bool, prefix string) {
	if !r.haveWork {
		return
	}
	for _, contrib := range r.idx.Objects(r.work, bf(Properties.Contribution)) {
		isPrimary := r.idx.HasType(contrib, bflc(BFLC.PrimaryContribution))
		if isPrimary != wantPrimary {
			continue
		}
		if f := r.createAgentField(contrib, prefix); f != nil {
			rec.AddField(f)
		}
	}
}

// createAgentField rebuilds a 1XX/7XX field from a contribution node.
func (r *reverser) createAgentField(contrib rdf.Node, prefix string) *record.Field {
	agentNode, ok := r.idx.Object(contrib, bf(Properties.Agent))
	if !ok {
		return nil
	}

	agentType := "Person"
	for _, typ := range r.idx.Types(agentNode) {
		if strings.Contains(typ.Value, "Organization") {
			agentType = "Organization"
		} else if strings.Contains(typ.Value, "Meeting") {
			agentType = "Meeting"
		}
	}

	tag := "700"
	switch {
	case prefix == "1" && agentType == "Person":
		tag = "100"
	case prefix == "1" && agentType == "Organization":
		tag = "110"
	case prefix == "1" && agentType == "Meeting":
		tag = "111"
	case prefix == "7" && agentType == "Organization":
		tag = "710"
	case prefix == "7" && agentType == "Meeting":
		tag = "711"
	}

	f := &record.Field{Tag: tag, Indicator1: '1', Indicator2: ' '}

	if label, ok := r.idx.Object(agentNode, rdf.Join(rdf.RDFSNamespace, "label")); ok && label.IsLiteral() {
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: label.Value})
	}

	if role, ok := r.idx.Object(contrib, bf(Properties.Role)); ok {
		switch {
		case role.IsIRI() && strings.HasPrefix(role.Value, Relators):
			if code := strings.TrimPrefix(role.Value, Relators); code != "" {
				f.Subfields = append(f.Subfields, record.Subfield{Code: '4', Value: code})
			}
		case role.IsLiteral():
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'e', Value: role.Value})
		}
	}

	return f
}

// extractSubjects emits the Work's subjects as 6XX fields, per algorithm
// step 8.
func (r *reverser) extractSubjects(rec *record.Record) {
	if !r.haveWork {
		return
	}
	for _, subj := range r.idx.Objects(r.work, bf(Properties.Subject)) {
		if f := r.createSubjectField(subj); f != nil {
			rec.AddField(f)
		}
	}
}

func (r *reverser) createSubjectField(subj rdf.Node) *record.Field {
	tag := "650"
	for _, typ := range r.idx.Types(subj) {
		tag = subjectTypeToTag(typ.Value)
	}

	f := &record.Field{Tag: tag, Indicator1: ' ', Indicator2: '0'}

	label, ok := r.idx.Object(subj, rdf.Join(rdf.RDFSNamespace, "label"))
	if !ok || !label.IsLiteral() {
		return nil
	}
	parts := strings.Split(label.Value, "--")
	f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: strings.TrimSpace(parts[0])})
	for _, p := range parts[1:] {
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'x', Value: strings.TrimSpace(p)})
	}
	return f
}

// extractIdentifiers emits the Instance's identifiers as 0XX fields, per
// algorithm step 9.
func (r *reverser) extractIdentifiers(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	for _, idNode := range r.idx.Objects(r.instance, bf(Properties.IdentifiedBy)) {
		if f := r.createIdentifierField(idNode); f != nil {
			rec.AddField(f)
		}
	}
}

func (r *reverser) createIdentifierField(idNode rdf.Node) *record.Field {
	tag := "035"
	for _, typ := range r.idx.Types(idNode) {
		tag = identifierTypeToTag(typ.Value)
	}

	f := &record.Field{Tag: tag, Indicator1: ' ', Indicator2: ' '}
	if value, ok := r.idx.Object(idNode, rdf.Join(rdf.RDFNamespace, "value")); ok && value.IsLiteral() {
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: value.Value})
	}
	if len(f.Subfields) == 0 {
		return nil
	}
	return f
}

// extractProvisionActivity emits the Instance's provision activities as
// 264 fields, plus a copyrightDate 264 with indicator2 '4', per algorithm
// step 10.
func (r *reverser) extractProvisionActivity(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	for _, activity := range r.idx.Objects(r.instance, bf(Properties.ProvisionActivity)) {
		if f := r.createProvisionField(activity); f != nil {
			rec.AddField(f)
		}
	}
	if cr, ok := r.idx.Object(r.instance, bf(Properties.CopyrightDate)); ok && cr.IsLiteral() {
		f := &record.Field{Tag: "264", Indicator1: ' ', Indicator2: '4'}
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'c', Value: cr.Value})
		rec.AddField(f)
	}
}

func (r *reverser) createProvisionField(activity rdf.Node) *record.Field {
	ind2 := byte('1')
	for _, typ := range r.idx.Types(activity) {
		ind2 = provisionTypeToIndicator(typ.Value)
	}
	f := &record.Field{Tag: "264", Indicator1: ' ', Indicator2: ind2}

	hasCode := func(code byte) bool {
		for _, sf := range f.Subfields {
			if sf.Code == code {
				return true
			}
		}
		return false
	}

	for _, t := range r.idx.Triples(activity) {
		switch {
		case strings.HasSuffix(t.Predicate.Value, "simplePlace") && t.Object.IsLiteral():
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: t.Object.Value})
		case t.Predicate.Value == bf(Properties.Place):
			if label, ok := r.idx.Object(t.Object, rdf.Join(rdf.RDFSNamespace, "label")); ok && label.IsLiteral() && !hasCode('a') {
				f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: label.Value})
			}
		case strings.HasSuffix(t.Predicate.Value, "simpleAgent") && t.Object.IsLiteral():
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'b', Value: t.Object.Value})
		case t.Predicate.Value == bf(Properties.Agent):
			if label, ok := r.idx.Object(t.Object, rdf.Join(rdf.RDFSNamespace, "label")); ok && label.IsLiteral() && !hasCode('b') {
				f.Subfields = append(f.Subfields, record.Subfield{Code: 'b', Value: label.Value})
			}
		case (strings.HasSuffix(t.Predicate.Value, "simpleDate") || t.Predicate.Value == bf(Properties.Date)) && t.Object.IsLiteral():
			if !hasCode('c') {
				f.Subfields = append(f.Subfields, record.Subfield{Code: 'c', Value: t.Object.Value})
			}
		}
	}

	if len(f.Subfields) == 0 {
		return nil
	}
	return f
}

// extractPhysicalDescription emits a 300 field, per algorithm step 11.
func (r *reverser) extractPhysicalDescription(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	f := &record.Field{Tag: "300", Indicator1: ' ', Indicator2: ' '}
	if extent, ok := r.idx.Object(r.instance, bf(Properties.Extent)); ok && extent.IsLiteral() {
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: extent.Value})
	}
	if dims, ok := r.idx.Object(r.instance, bf(Properties.Dimensions)); ok && dims.IsLiteral() {
		f.Subfields = append(f.Subfields, record.Subfield{Code: 'c', Value: dims.Value})
	}
	if len(f.Subfields) > 0 {
		rec.AddField(f)
	}
}

// extractNotes emits 500/520 fields, per algorithm step 11.
func (r *reverser) extractNotes(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	for _, note := range r.idx.Objects(r.instance, bf(Properties.Note)) {
		if note.IsLiteral() {
			f := &record.Field{Tag: "500", Indicator1: ' ', Indicator2: ' '}
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: note.Value})
			rec.AddField(f)
		}
	}
	for _, summary := range r.idx.Objects(r.instance, bf(Properties.Summary)) {
		if summary.IsLiteral() {
			f := &record.Field{Tag: "520", Indicator1: ' ', Indicator2: ' '}
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: summary.Value})
			rec.AddField(f)
		}
	}
}

// extractSeries emits a traced 830 from the Work's hasSeries edge and a 490
// from the Instance's seriesStatement, per algorithm step 11.
func (r *reverser) extractSeries(rec *record.Record) {
	if r.haveWork {
		for _, series := range r.idx.Objects(r.work, bf(Properties.HasSeries)) {
			title := r.seriesTitle(series)
			if title != "" {
				f := &record.Field{Tag: "830", Indicator1: ' ', Indicator2: '0'}
				f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: title})
				rec.AddField(f)
			}
		}
	}

	if r.haveInstance {
		stmt, hasStmt := r.idx.Object(r.instance, bf(Properties.SeriesStatement))
		if hasStmt && stmt.IsLiteral() {
			f := &record.Field{Tag: "490", Indicator1: '0', Indicator2: ' '}
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'a', Value: stmt.Value})
			if enum, ok := r.idx.Object(r.instance, bf("seriesEnumeration")); ok && enum.IsLiteral() {
				f.Subfields = append(f.Subfields, record.Subfield{Code: 'v', Value: enum.Value})
			}
			rec.AddField(f)
		}
	}
}

// seriesTitle resolves a series entity's title, preferring a nested
// title/mainTitle node and falling back to a direct rdfs:label.
func (r *reverser) seriesTitle(series rdf.Node) string {
	title := ""
	for _, t := range r.idx.Triples(series) {
		if strings.HasSuffix(t.Predicate.Value, "title") {
			if mainTitle, ok := r.idx.Object(t.Object, bf("mainTitle")); ok && mainTitle.IsLiteral() {
				title = mainTitle.Value
			}
		}
		if t.Predicate.Value == rdf.Join(rdf.RDFSNamespace, "label") && t.Object.IsLiteral() && title == "" {
			title = t.Object.Value
		}
	}
	return title
}

// linkingRelationship pairs a BIBFRAME relationship local name with the
// MARC tag it reconstructs to.
type linkingRelationship struct {
	property, tag string
}

// linkingRelationships maps Instance relationship properties back to
// linking-entry tags, grounded on reverse_converter.rs's relationship_map.
// It covers part of the forward converter's linkingTags table only:
// hasSubseries (762) is absent, and the Work-level entries (765, 767, 786,
// 787) are not read from the Work; relatedTo is looked up on the Instance.
var linkingRelationships = []linkingRelationship{
	{"precededBy", "780"},
	{"succeededBy", "785"},
	{"isPartOf", "773"},
	{"hasPart", "774"},
	{"otherPhysicalFormat", "776"},
	{"relatedTo", "787"},
	{"hasSeries", "760"},
	{"supplement", "770"},
	{"supplementTo", "772"},
	{"otherEdition", "775"},
	{"issuedWith", "777"},
}

// extractLinkingEntries emits 76X-78X fields from the Instance's
// relationship edges, per algorithm step 11.
func (r *reverser) extractLinkingEntries(rec *record.Record) {
	if !r.haveInstance {
		return
	}
	for _, rel := range linkingRelationships {
		for _, related := range r.idx.Objects(r.instance, bf(rel.property)) {
			if f := r.createLinkingField(rel.tag, related); f != nil {
				rec.AddField(f)
			}
		}
	}
}

func (r *reverser) createLinkingField(tag string, related rdf.Node) *record.Field {
	f := &record.Field{Tag: tag, Indicator1: '0', Indicator2: ' '}

	for _, t := range r.idx.Triples(related) {
		if strings.HasSuffix(t.Predicate.Value, "title") {
			if mainTitle, ok := r.idx.Object(t.Object, bf("mainTitle")); ok && mainTitle.IsLiteral() {
				f.Subfields = append(f.Subfields, record.Subfield{Code: 't', Value: mainTitle.Value})
			}
		}
	}

	for _, idNode := range r.idx.Objects(related, bf(Properties.IdentifiedBy)) {
		idType := "Local"
		for _, typ := range r.idx.Types(idNode) {
			if strings.HasSuffix(typ.Value, "Issn") {
				idType = "Issn"
			} else if strings.HasSuffix(typ.Value, "Isbn") {
				idType = "Isbn"
			}
		}
		value, ok := r.idx.Object(idNode, rdf.Join(rdf.RDFNamespace, "value"))
		if !ok || !value.IsLiteral() {
			continue
		}
		switch idType {
		case "Issn":
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'x', Value: value.Value})
		case "Isbn":
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'z', Value: value.Value})
		default:
			f.Subfields = append(f.Subfields, record.Subfield{Code: 'w', Value: value.Value})
		}
	}

	if len(f.Subfields) == 0 {
		return nil
	}
	return f
}

// isWorkSubtype reports whether typeURI names one of the Work subtypes
// from §4.H.3.
func isWorkSubtype(typeURI string) bool {
	for _, t := range []string{
		Classes.Text, Classes.NotatedMusic, Classes.Cartography, Classes.MovingImage,
		Classes.StillImage, Classes.Audio, Classes.MusicAudio, Classes.Multimedia,
		Classes.MixedMaterial, Classes.Object, Classes.Kit,
	} {
		if strings.HasSuffix(typeURI, t) {
			return true
		}
	}
	return false
}

// isInstanceSubtype reports whether typeURI names one of the Instance
// subtypes from §4.H.3.
func isInstanceSubtype(typeURI string) bool {
	for _, t := range []string{Classes.Serial, Classes.Manuscript, Classes.Electronic, Classes.Print} {
		if strings.HasSuffix(typeURI, t) {
			return true
		}
	}
	return false
}

// workTypeToLeader06 is the inverse of determineWorkType.
func workTypeToLeader06(typeURI string) byte {
	switch {
	case strings.HasSuffix(typeURI, Classes.Text):
		return 'a'
	case strings.HasSuffix(typeURI, Classes.NotatedMusic):
		return 'c'
	case strings.HasSuffix(typeURI, Classes.Cartography):
		return 'e'
	case strings.HasSuffix(typeURI, Classes.MovingImage):
		return 'g'
	case strings.HasSuffix(typeURI, Classes.MusicAudio):
		// Checked before Audio: MusicAudio's URI also ends with "Audio".
		return 'j'
	case strings.HasSuffix(typeURI, Classes.Audio):
		return 'i'
	case strings.HasSuffix(typeURI, Classes.StillImage):
		return 'k'
	case strings.HasSuffix(typeURI, Classes.Multimedia):
		return 'm'
	case strings.HasSuffix(typeURI, Classes.Kit):
		return 'o'
	case strings.HasSuffix(typeURI, Classes.MixedMaterial):
		return 'p'
	case strings.HasSuffix(typeURI, Classes.Object):
		return 'r'
	default:
		return 'a'
	}
}

// instanceTypeToLeader07 is the inverse of determineInstanceType.
func instanceTypeToLeader07(typeURI string) byte {
	if strings.HasSuffix(typeURI, Classes.Serial) {
		return 's'
	}
	return 'm'
}

// subjectTypeToTag maps a subject entity's type to its MARC 6XX tag.
func subjectTypeToTag(typeURI string) string {
	switch {
	case strings.HasSuffix(typeURI, Classes.Person):
		return "600"
	case strings.HasSuffix(typeURI, Classes.Organization):
		return "610"
	case strings.HasSuffix(typeURI, Classes.Meeting):
		return "611"
	case strings.HasSuffix(typeURI, Classes.Work):
		return "630"
	case strings.HasSuffix(typeURI, Classes.Topic):
		return "650"
	case strings.HasSuffix(typeURI, Classes.Place):
		return "651"
	case strings.HasSuffix(typeURI, Classes.GenreForm):
		return "655"
	default:
		return "650"
	}
}

// identifierTypeToTag maps an identifier entity's type to its MARC 0XX tag.
func identifierTypeToTag(typeURI string) string {
	switch {
	case strings.HasSuffix(typeURI, Classes.Lccn):
		return "010"
	case strings.HasSuffix(typeURI, Classes.Isbn):
		return "020"
	case strings.HasSuffix(typeURI, Classes.Issn):
		return "022"
	case strings.HasSuffix(typeURI, "Isrc"), strings.HasSuffix(typeURI, "Upc"),
		strings.HasSuffix(typeURI, "Ismn"), strings.HasSuffix(typeURI, "Ean"):
		return "024"
	default:
		return "035"
	}
}

// provisionTypeToIndicator maps a provision activity's type to 264
// indicator 2.
func provisionTypeToIndicator(typeURI string) byte {
	switch {
	case strings.HasSuffix(typeURI, Classes.Production):
		return '0'
	case strings.HasSuffix(typeURI, Classes.Publication):
		return '1'
	case strings.HasSuffix(typeURI, Classes.Distribution):
		return '2'
	case strings.HasSuffix(typeURI, Classes.Manufacture):
		return '3'
	default:
		return '1'
	}
}
