package segmenter

// The states of the sentence break parser.
const (
	sbAny = iota
	sbCR
	sbParaSep
	sbATerm
	sbUpperATerm // ATerm directly preceded by a cased letter (SB7 context)
	sbATermClose
	sbATermSp
	sbSTerm
	sbSTermClose
	sbSTermSp
	sbUpper
	sbLower
)

// sbTransitions implements the sentence break parser's state transitions.
// Each case maps a (state, property) pair to the new state, whether a
// sentence boundary lies between the previous and the current code point,
// and the number of the governing rule. Lower rule numbers take precedence
// when a (state, prAny) and a (sbAny, property) transition both apply.
//
// Unicode version 15.0.0, UAX #29 rules SB1 to SB11 plus SB998.
func sbTransitions(state, prop int) (newState int, boundary bool, rule int) {
	switch uint64(state) | uint64(prop)<<32 {
	// SB3.
	case sbCR | prLF<<32:
		return sbParaSep, false, 30

	// SB4.
	case sbCR | prAny<<32:
		return sbAny, true, 40
	case sbParaSep | prAny<<32:
		return sbAny, true, 40

	// Paragraph separators.
	case sbAny | prCR<<32:
		return sbCR, false, 9990
	case sbAny | prLF<<32:
		return sbParaSep, false, 9990
	case sbAny | prSep<<32:
		return sbParaSep, false, 9990

	// Cased letters, tracked for SB7.
	case sbAny | prUpper<<32:
		return sbUpper, false, 9990
	case sbAny | prLower<<32:
		return sbLower, false, 9990

	// Sentence terminals.
	case sbAny | prATerm<<32:
		return sbATerm, false, 9990
	case sbUpper | prATerm<<32:
		return sbUpperATerm, false, 9990
	case sbLower | prATerm<<32:
		return sbUpperATerm, false, 9990
	case sbAny | prSTerm<<32:
		return sbSTerm, false, 9990

	// SB6.
	case sbATerm | prNumeric<<32:
		return sbAny, false, 60
	case sbUpperATerm | prNumeric<<32:
		return sbAny, false, 60

	// SB7.
	case sbUpperATerm | prUpper<<32:
		return sbUpper, false, 70

	// SB8a.
	case sbATerm | prSContinue<<32:
		return sbAny, false, 81
	case sbATerm | prATerm<<32:
		return sbATerm, false, 81
	case sbATerm | prSTerm<<32:
		return sbSTerm, false, 81
	case sbUpperATerm | prSContinue<<32:
		return sbAny, false, 81
	case sbUpperATerm | prATerm<<32:
		return sbATerm, false, 81
	case sbUpperATerm | prSTerm<<32:
		return sbSTerm, false, 81
	case sbATermClose | prSContinue<<32:
		return sbAny, false, 81
	case sbATermClose | prATerm<<32:
		return sbATerm, false, 81
	case sbATermClose | prSTerm<<32:
		return sbSTerm, false, 81
	case sbATermSp | prSContinue<<32:
		return sbAny, false, 81
	case sbATermSp | prATerm<<32:
		return sbATerm, false, 81
	case sbATermSp | prSTerm<<32:
		return sbSTerm, false, 81
	case sbSTerm | prSContinue<<32:
		return sbAny, false, 81
	case sbSTerm | prATerm<<32:
		return sbATerm, false, 81
	case sbSTerm | prSTerm<<32:
		return sbSTerm, false, 81
	case sbSTermClose | prSContinue<<32:
		return sbAny, false, 81
	case sbSTermClose | prATerm<<32:
		return sbATerm, false, 81
	case sbSTermClose | prSTerm<<32:
		return sbSTerm, false, 81
	case sbSTermSp | prSContinue<<32:
		return sbAny, false, 81
	case sbSTermSp | prATerm<<32:
		return sbATerm, false, 81
	case sbSTermSp | prSTerm<<32:
		return sbSTerm, false, 81

	// SB9.
	case sbATerm | prClose<<32:
		return sbATermClose, false, 90
	case sbUpperATerm | prClose<<32:
		return sbATermClose, false, 90
	case sbATermClose | prClose<<32:
		return sbATermClose, false, 90
	case sbSTerm | prClose<<32:
		return sbSTermClose, false, 90
	case sbSTermClose | prClose<<32:
		return sbSTermClose, false, 90

	// SB9/SB10: a paragraph separator closes the terminator sequence
	// without a break before it; SB4 then breaks after it.
	case sbATerm | prCR<<32:
		return sbCR, false, 90
	case sbATerm | prLF<<32:
		return sbParaSep, false, 90
	case sbATerm | prSep<<32:
		return sbParaSep, false, 90
	case sbUpperATerm | prCR<<32:
		return sbCR, false, 90
	case sbUpperATerm | prLF<<32:
		return sbParaSep, false, 90
	case sbUpperATerm | prSep<<32:
		return sbParaSep, false, 90
	case sbATermClose | prCR<<32:
		return sbCR, false, 90
	case sbATermClose | prLF<<32:
		return sbParaSep, false, 90
	case sbATermClose | prSep<<32:
		return sbParaSep, false, 90
	case sbATermSp | prCR<<32:
		return sbCR, false, 100
	case sbATermSp | prLF<<32:
		return sbParaSep, false, 100
	case sbATermSp | prSep<<32:
		return sbParaSep, false, 100
	case sbSTerm | prCR<<32:
		return sbCR, false, 90
	case sbSTerm | prLF<<32:
		return sbParaSep, false, 90
	case sbSTerm | prSep<<32:
		return sbParaSep, false, 90
	case sbSTermClose | prCR<<32:
		return sbCR, false, 90
	case sbSTermClose | prLF<<32:
		return sbParaSep, false, 90
	case sbSTermClose | prSep<<32:
		return sbParaSep, false, 90
	case sbSTermSp | prCR<<32:
		return sbCR, false, 100
	case sbSTermSp | prLF<<32:
		return sbParaSep, false, 100
	case sbSTermSp | prSep<<32:
		return sbParaSep, false, 100

	// SB10.
	case sbATerm | prSp<<32:
		return sbATermSp, false, 100
	case sbUpperATerm | prSp<<32:
		return sbATermSp, false, 100
	case sbATermClose | prSp<<32:
		return sbATermSp, false, 100
	case sbATermSp | prSp<<32:
		return sbATermSp, false, 100
	case sbSTerm | prSp<<32:
		return sbSTermSp, false, 100
	case sbSTermClose | prSp<<32:
		return sbSTermSp, false, 100
	case sbSTermSp | prSp<<32:
		return sbSTermSp, false, 100

	// SB11.
	case sbATerm | prAny<<32:
		return sbAny, true, 110
	case sbUpperATerm | prAny<<32:
		return sbAny, true, 110
	case sbATermClose | prAny<<32:
		return sbAny, true, 110
	case sbATermSp | prAny<<32:
		return sbAny, true, 110
	case sbSTerm | prAny<<32:
		return sbAny, true, 110
	case sbSTermClose | prAny<<32:
		return sbAny, true, 110
	case sbSTermSp | prAny<<32:
		return sbAny, true, 110

	default:
		return -1, false, -1
	}
}

// aTermState reports whether the parser is inside an ambiguous-terminal
// sequence (ATerm Close* Sp*), the context in which SB8 applies.
func aTermState(state int) bool {
	return state == sbATerm || state == sbUpperATerm || state == sbATermClose || state == sbATermSp
}

// decidesSB8 reports whether a property settles the SB8 lookahead: these
// classes either start the next sentence or open a new terminator
// sequence, so scanning stops at them. prLower is handled separately as
// the no-break outcome.
func decidesSB8(prop int) bool {
	switch prop {
	case prOLetter, prUpper, prSep, prCR, prLF, prATerm, prSTerm:
		return true
	}
	return false
}

// transitionSentenceBreakState determines the new state of the sentence
// break parser given the current state and the next code point. It also
// reports whether a sentence boundary lies before the code point.
// "suppressed" marks a full stop that the active locale tailoring
// identified as an abbreviation dot. "next" supplies the code points
// following r when a rule needs forward context.
func transitionSentenceBreakState(state int, r rune, suppressed bool, next lookaheadFunc) (newState int, sentenceBoundary bool) {
	prop := propertySentence(r)

	// SB1: the start of text carries no parser state yet.
	if state < 0 {
		state = sbAny
	}

	// A suppressed full stop marks an abbreviation, not a sentence
	// terminal: it neither opens nor closes a terminator sequence.
	if suppressed && prop == prATerm {
		return sbAny, false
	}

	// SB5: Extend and Format attach to the preceding character. Directly
	// after a paragraph separator there is nothing to attach to and SB4
	// breaks first.
	if prop == prExtend || prop == prFormat {
		if state == sbParaSep || state == sbCR {
			return sbAny, true
		}
		return state, false
	}

	// Find the applicable transition in the table.
	var rule int
	newState, sentenceBoundary, rule = sbTransitions(state, prop)
	if newState < 0 {
		// No specific transition found. Try the less specific ones.
		anyProp, anyPropBoundary, anyPropRule := sbTransitions(state, prAny)
		anyState, anyStateBoundary, anyStateRule := sbTransitions(sbAny, prop)
		if anyProp >= 0 && anyState >= 0 {
			// Both apply. Use the any-state target state but let the
			// lower-numbered rule decide the boundary.
			newState, sentenceBoundary, rule = anyState, anyStateBoundary, anyStateRule
			if anyPropRule < anyStateRule {
				sentenceBoundary, rule = anyPropBoundary, anyPropRule
			}
		} else if anyProp >= 0 {
			newState, sentenceBoundary, rule = anyProp, anyPropBoundary, anyPropRule
		} else if anyState >= 0 {
			newState, sentenceBoundary, rule = anyState, anyStateBoundary, anyStateRule
		} else {
			// SB998: do not break anywhere else.
			newState, sentenceBoundary, rule = sbAny, false, 9980
		}
	}

	// SB8: ATerm Close* Sp* × (¬(OLetter | Upper | Lower | ParaSep |
	// SATerm))* Lower. A lower case letter ahead keeps the full stop
	// inside the sentence ("etc. the reader", "Jr. (the second)").
	if sentenceBoundary && rule == 110 && aTermState(state) {
		if prop == prLower {
			return sbLower, false
		}
		if !decidesSB8(prop) {
			for {
				rr, ok := next()
				if !ok {
					break
				}
				p := propertySentence(rr)
				if p == prLower {
					return sbAny, false
				}
				if decidesSB8(p) {
					break
				}
			}
		}
	}

	return
}
