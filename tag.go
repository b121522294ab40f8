package scanner

import (
	"bytes"

	"golang.org/x/net/html/atom"
)

// TagKind discriminates the handful of HTML element categories this scanner
// treats specially, plus a catch-all HTML variant (any other element,
// known or unknown, outside foreign content) and a CUSTOM variant for any
// element other than svg/math once inside foreign content.
type TagKind int

const (
	TagHTML TagKind = iota
	TagVoid
	TagScript
	TagStyle
	TagTitle
	TagTextarea
	TagPlaintext
	TagSVG
	TagMath
	TagHead
	TagBody
	TagCustom
)

// Tag is a single entry on the scanner's open-element stack.
//
// Name is retained for every kind, not just TagCustom, because CanContain's
// content-model checks (p-in-p, li-in-li, table-cell nesting) need the
// original generic tag name even though the variant they all share is the
// same TagHTML — per spec.md §3, "for non-CUSTOM variants the original
// spelling is discarded" describes Equal's notion of equality (two <div>s
// and a <p> all compare equal as TagHTML), not a prohibition on the oracle
// keeping the spelling around for its own table lookups.
type Tag struct {
	Kind TagKind
	Name []byte
}

// Equal reports whether two tags refer to the same element for the purpose
// of matching a closing tag against the stack: same Kind, and for TagCustom
// the same (already-normalized) name. Two TagHTML tags are always equal
// regardless of their underlying spelling (</p> closes a <div> just as
// readily as far as stack matching is concerned; CanContain is what keeps
// that from mattering in well-formed input).
func (t Tag) Equal(o Tag) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == TagCustom {
		return bytes.Equal(t.Name, o.Name)
	}
	return true
}

// voidAtoms is the standard set of HTML void elements: elements that never
// have an end tag and are never pushed onto the open-element stack.
var voidAtoms = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// classifyAtoms maps the handful of canonical atoms this scanner gives
// dedicated lexical treatment to their TagKind. Anything not in this table,
// and not in voidAtoms, classifies as TagHTML (outside foreign content) or
// TagCustom (inside it) — see Classify.
var classifyAtoms = map[atom.Atom]TagKind{
	atom.Script:    TagScript,
	atom.Style:     TagStyle,
	atom.Title:     TagTitle,
	atom.Textarea:  TagTextarea,
	atom.Plaintext: TagPlaintext,
	atom.Svg:       TagSVG,
	atom.Math:      TagMath,
	atom.Head:      TagHead,
	atom.Body:      TagBody,
}

// Classify resolves an already-scanned tag name to its Tag. name is expected
// to be ASCII-uppercased already when foreign is false (scanTagName does
// this); foreign indicates whether we are classifying inside foreign
// content (an SVG or MATH element is open somewhere on the stack), in which
// case an element with no dedicated handling becomes TagCustom rather than
// the generic TagHTML, and name is taken case-preserved as scanned.
//
// The name is resolved through atom.Lookup — the same "canonicalize via
// atom, then branch" idiom the HTML tree builder's stop-tag tables use —
// before consulting voidAtoms/classifyAtoms, rather than hand-matching
// strings.
func Classify(name []byte, foreign bool) Tag {
	lookupName := name
	if !foreign {
		lookupName = toLower(name)
	}

	a := atom.Lookup(lookupName)
	stored := append([]byte(nil), name...)

	if !foreign {
		if voidAtoms[a] {
			return Tag{Kind: TagVoid, Name: stored}
		}
		if kind, ok := classifyAtoms[a]; ok {
			return Tag{Kind: kind, Name: stored}
		}
		return Tag{Kind: TagHTML, Name: stored}
	}

	if kind, ok := classifyAtoms[a]; ok && (kind == TagSVG || kind == TagMath) {
		return Tag{Kind: kind, Name: stored}
	}
	return Tag{Kind: TagCustom, Name: stored}
}

// IsVoid reports whether tag is a standard void element (area, base, br,
// col, embed, hr, img, input, link, meta, param, source, track, wbr). Void
// elements are never pushed onto the open-element stack.
func IsVoid(tag Tag) bool {
	return tag.Kind == TagVoid
}

// blockLevelNames marks the handful of generic HTML tags treated as
// block-level for the "a <p> cannot contain another block-level element"
// rule. This is a deliberately small, named subset of the full HTML5
// optional-tags table, matching the specific cases spec.md §4.1 calls out.
var blockLevelNames = map[string]bool{
	"ADDRESS": true, "ARTICLE": true, "ASIDE": true, "BLOCKQUOTE": true,
	"DETAILS": true, "DIV": true, "DL": true, "FIELDSET": true,
	"FIGCAPTION": true, "FIGURE": true, "FOOTER": true, "FORM": true,
	"H1": true, "H2": true, "H3": true, "H4": true, "H5": true, "H6": true,
	"HEADER": true, "MAIN": true, "NAV": true, "OL": true,
	"P": true, "PRE": true, "SECTION": true, "TABLE": true, "UL": true,
}

// CanContain encodes the subset of the HTML5 "optional tags" content model
// relevant to implicit closure: whether parent may directly contain a
// newly-seen child start tag without parent first being implicitly closed.
// Only TagHTML parents carry the three named restrictions below; every
// other kind (including TagCustom, TagHead and TagBody) permits any child,
// deferring entirely to explicit/implicit end tags and EOF handling for
// HEAD/BODY (spec.md §4.8 rule 5).
func CanContain(parent Tag, child Tag) bool {
	if parent.Kind != TagHTML {
		return true
	}

	parentName := string(parent.Name)
	childName := string(child.Name)

	if parentName == "P" && blockLevelNames[childName] {
		return false
	}
	if parentName == "LI" && childName == "LI" {
		return false
	}
	if (parentName == "TD" || parentName == "TH") && (childName == "TD" || childName == "TH") {
		return false
	}
	return true
}

func toLower(name []byte) []byte {
	out := make([]byte, len(name))
	for i, c := range name {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
