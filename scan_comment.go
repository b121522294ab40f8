package scanner

// htmlCommentState names the ten states of the HTML5 comment tokenizer
// this sub-scanner implements (spec.md §4.4).
type htmlCommentState int

const (
	commentStart htmlCommentState = iota
	commentStartDash
	commentBody
	commentLT
	commentLTBang
	commentLTBangDash
	commentLTBangDashDash
	commentEndDash
	commentEnd
	commentEndBang
)

// htmlComment implements spec.md §4.4. It is entered right after the
// dispatcher has consumed "<!"; it requires the next two characters to be
// "--" (anything else rejects — the dispatcher's caller only reaches here
// having already decided this is a comment opener) and then runs the
// state machine, accepting the early-close forms "<!-->" and "<!--->", and
// terminating on EOF exactly as on a successful "-->"/"--!>".
//
// Ported state-for-state from original_source/src/scanner.c's scan_comment.
func htmlComment(lx Lexer) (Symbol, bool) {
	if lx.Lookahead() != '-' {
		return 0, false
	}
	lx.Advance(false)
	if lx.Lookahead() != '-' {
		return 0, false
	}
	lx.Advance(false)

	state := commentStart

	for {
		c := lx.Lookahead()

		if c == EOF {
			lx.MarkEnd()
			return Comment, true
		}

		switch state {
		case commentStart:
			switch c {
			case '-':
				state = commentStartDash
				lx.Advance(false)
			case '>':
				lx.Advance(false)
				lx.MarkEnd()
				return Comment, true
			default:
				state = commentBody
				lx.Advance(false)
			}

		case commentStartDash:
			switch c {
			case '-':
				state = commentEnd
				lx.Advance(false)
			case '>':
				lx.Advance(false)
				lx.MarkEnd()
				return Comment, true
			default:
				state = commentBody
				lx.Advance(false)
			}

		case commentBody:
			switch c {
			case '<':
				state = commentLT
				lx.Advance(false)
			case '-':
				state = commentEndDash
				lx.Advance(false)
			default:
				lx.Advance(false)
			}

		case commentLT:
			switch c {
			case '!':
				state = commentLTBang
				lx.Advance(false)
			case '<':
				state = commentBody
				lx.Advance(false)
			default:
				state = commentBody
			}

		case commentLTBang:
			if c == '-' {
				state = commentLTBangDash
				lx.Advance(false)
			} else {
				state = commentBody
			}

		case commentLTBangDash:
			if c == '-' {
				state = commentLTBangDashDash
				lx.Advance(false)
			} else {
				state = commentEndDash
			}

		case commentLTBangDashDash:
			state = commentEnd

		case commentEndDash:
			if c == '-' {
				state = commentEnd
				lx.Advance(false)
			} else {
				state = commentBody
				lx.Advance(false)
			}

		case commentEnd:
			switch c {
			case '>':
				lx.Advance(false)
				lx.MarkEnd()
				return Comment, true
			case '!':
				state = commentEndBang
				lx.Advance(false)
			case '-':
				lx.Advance(false)
			default:
				state = commentBody
				lx.Advance(false)
			}

		case commentEndBang:
			switch c {
			case '-':
				state = commentEndDash
				lx.Advance(false)
			case '>':
				lx.Advance(false)
				lx.MarkEnd()
				return Comment, true
			default:
				state = commentBody
				lx.Advance(false)
			}
		}
	}
}
