package scanner

// builtinDjangoTags is the fixed set of Django tag names the generic block
// validator rejects outright, because the grammar already has dedicated
// rules for them (spec.md Glossary).
var builtinDjangoTags = map[string]bool{
	"if": true, "elif": true, "else": true, "endif": true,
	"for": true, "empty": true, "endfor": true,
	"with": true, "endwith": true,
	"block": true, "endblock": true,
	"extends": true, "include": true, "load": true, "url": true,
	"csrf_token": true,
	"autoescape": true, "endautoescape": true,
	"filter": true, "endfilter": true,
	"spaceless": true, "endspaceless": true,
	"verbatim": true, "endverbatim": true,
	"cycle": true, "firstof": true, "now": true, "regroup": true,
	"ifchanged": true, "endifchanged": true,
	"widthratio": true, "templatetag": true, "debug": true, "lorem": true,
	"resetcycle": true,
	"querystring": true,
	"partialdef":  true, "endpartialdef": true, "partial": true,
	"comment": true, "endcomment": true,
}

const maxGenericTagName = 255

// validateGenericTag implements spec.md §4.13. Zero-width: it always
// mark_ends at entry, regardless of outcome, since the host rewinds on
// return. Used by the grammar, at the point just after "{%", to decide
// whether an unknown tag name should be parsed as a block form
// ("{% name ... %} ... {% endname %}") or a simple tag ("{% name ... %}").
func validateGenericTag(lx Lexer, valid ValidSymbols) (Symbol, bool) {
	lx.MarkEnd()

	if !isIdentStart(lx.Lookahead()) {
		return 0, false
	}

	name := scanGenericIdentifier(lx)
	lowered := string(toLower(name))

	if builtinDjangoTags[lowered] || hasPrefixEnd(lowered) {
		return 0, false
	}

	if valid.Offered(ValidateGenericBlock) && scanForBlockCloser(lx, lowered) {
		return ValidateGenericBlock, true
	}

	if valid.Offered(ValidateGenericSimple) {
		return ValidateGenericSimple, true
	}

	return 0, false
}

func hasPrefixEnd(name string) bool {
	return len(name) >= 3 && name[:3] == "end"
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func scanGenericIdentifier(lx Lexer) []byte {
	var name []byte
	for isIdentRune(lx.Lookahead()) {
		if len(name) < maxGenericTagName {
			name = append(name, byte(lx.Lookahead()))
		}
		lx.Advance(false)
	}
	return name
}

// scanForBlockCloser probes forward, without committing any lexer
// progress into the (zero-width) token, for "{%" ws "end<name>" terminated
// by whitespace or '%'. It does not call MarkEnd — the caller always
// rewinds to the mark_end set at entry regardless of what this returns.
func scanForBlockCloser(lx Lexer, name string) bool {
	for {
		c := lx.Lookahead()
		if c == EOF {
			return false
		}

		if c == '{' {
			lx.Advance(false)
			if lx.Lookahead() != '%' {
				continue
			}
			lx.Advance(false)

			for isWhitespace(lx.Lookahead()) {
				lx.Advance(false)
			}

			matched := true
			closer := "end" + name
			for i := 0; i < len(closer); i++ {
				if lowerASCII(lx.Lookahead()) != lowerASCII(rune(closer[i])) {
					matched = false
					break
				}
				lx.Advance(false)
			}

			if matched {
				next := lx.Lookahead()
				if next == EOF || isWhitespace(next) || next == '%' {
					return true
				}
			}
			continue
		}

		lx.Advance(false)
	}
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
