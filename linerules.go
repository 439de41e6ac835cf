package segmenter

// BreakKind classifies a line break position. A break is either forbidden,
// allowed (word wrap may use it), or mandatory (after hard line breaks).
type BreakKind int

const (
	LineDontBreak BreakKind = iota // You may not break the line here.
	LineCanBreak                   // You may or may not break the line here.
	LineMustBreak                  // You must break the line here.
)

// Base states of the line break parser: the line break class of the
// previous character, plus a few composite states for the sequences the
// rules track across more than one character (space runs, numeric runs,
// regional indicator parity).
const (
	lbcAny = iota
	lbcBK
	lbcCR
	lbcLF
	lbcNL
	lbcSP
	lbcZW
	lbcZWSP // ZW followed by SP* (LB8)
	lbcWJ
	lbcGL
	lbcBA
	lbcBB
	lbcHY
	lbcCL
	lbcCP
	lbcCLCPSP // (CL | CP) followed by SP* (LB16)
	lbcEX
	lbcIS
	lbcSY
	lbcOP
	lbcOPSP // OP followed by SP* (LB14)
	lbcQU
	lbcQUSP // QU followed by SP* (LB15)
	lbcNS
	lbcIN
	lbcB2
	lbcB2SP // B2 followed by SP* (LB17)
	lbcCB
	lbcAL
	lbcHL
	lbcHLHY // HL followed by HY or BA (LB21a)
	lbcNU
	lbcNUSYIS // NU followed by (SY | IS)* (LB25)
	lbcNUCLCP // NU (SY | IS)* followed by CL or CP (LB25)
	lbcPR
	lbcPO
	lbcID
	lbcEB
	lbcEM
	lbcRIOdd  // Odd number of regional indicators (LB30a)
	lbcRIEven // Even number of regional indicators (LB30a)
	lbcJL
	lbcJV
	lbcJT
	lbcH2
	lbcH3
)

// Context flags carried alongside the base state.
const (
	ctxAfterZWJ = 1 << iota // Previous character was ZWJ (LB8a)
	ctxCPNarrow             // CP with East Asian width other than F/W/H (LB30)
)

// lineContext is the complete line break parser state. A state of -1
// denotes the start of text.
type lineContext struct {
	state int
	flags int
}

// stateForLineProp maps a resolved line break property to the base state
// representing it as the previous character.
func stateForLineProp(prop int) int {
	switch prop {
	case prBK:
		return lbcBK
	case prCR:
		return lbcCR
	case prLF:
		return lbcLF
	case prNL:
		return lbcNL
	case prSP:
		return lbcSP
	case prZW:
		return lbcZW
	case prWJ:
		return lbcWJ
	case prGL:
		return lbcGL
	case prBA:
		return lbcBA
	case prBB:
		return lbcBB
	case prHY:
		return lbcHY
	case prCL:
		return lbcCL
	case prCP:
		return lbcCP
	case prEX:
		return lbcEX
	case prIS:
		return lbcIS
	case prSY:
		return lbcSY
	case prOP:
		return lbcOP
	case prQU:
		return lbcQU
	case prNS:
		return lbcNS
	case prIN:
		return lbcIN
	case prB2:
		return lbcB2
	case prCB:
		return lbcCB
	case prAL:
		return lbcAL
	case prHL:
		return lbcHL
	case prNU:
		return lbcNU
	case prPR:
		return lbcPR
	case prPO:
		return lbcPO
	case prID:
		return lbcID
	case prEB:
		return lbcEB
	case prEM:
		return lbcEM
	case prRI:
		return lbcRIOdd
	case prJL:
		return lbcJL
	case prJV:
		return lbcJV
	case prJT:
		return lbcJT
	case prH2:
		return lbcH2
	case prH3:
		return lbcH3
	default:
		return lbcAL
	}
}

// enter builds the context after consuming a character with the given
// resolved property into the given base state.
func enter(state, prop int, r rune) lineContext {
	next := lineContext{state: state}
	if prop == prCP {
		if ea := propertyEastAsianWidth(r); ea != prEAF && ea != prEAW && ea != prEAH {
			next.flags |= ctxCPNarrow
		}
	}
	return next
}

// lineSpaceState reports whether the base state is a space run after which
// LB18 allows a break (the ZW and OP space runs are consumed by LB8 and
// LB14 before LB18 applies).
func lineSpaceState(state int) bool {
	return state == lbcSP || state == lbcQUSP || state == lbcCLCPSP || state == lbcB2SP
}

// transitionLineBreakState determines the new state of the line break
// parser given the current context and the next code point, and reports
// the kind of break allowed before that code point. "cjAsNS" selects the
// strict resolution of conditional Japanese starters (LB1); "next"
// supplies the following code points for the rules with forward context.
//
// Unicode version 15.0.0, UAX #14 rules LB1 to LB31.
func transitionLineBreakState(ctx lineContext, r rune, cjAsNS bool, next lookaheadFunc) (lineContext, BreakKind) {
	prop, genCat := propertyLineBreak(r)

	// LB1: resolve ambiguous classes.
	switch prop {
	case prAI, prSG, prAny:
		prop = prAL
	case prSA:
		if genCat == gcMn || genCat == gcMc {
			prop = prCM
		} else {
			prop = prAL
		}
	case prCJ:
		if cjAsNS {
			prop = prNS
		} else {
			prop = prID
		}
	}

	// LB2: never break at the start of text.
	sot := ctx.state < 0
	if sot {
		ctx = lineContext{state: lbcAny}
	}

	st := ctx.state
	afterZWJ := ctx.flags&ctxAfterZWJ != 0

	mandatoryState := st == lbcBK || st == lbcCR || st == lbcLF || st == lbcNL
	spaceRunState := st == lbcSP || st == lbcZWSP || st == lbcQUSP || st == lbcCLCPSP || st == lbcB2SP || st == lbcOPSP

	// LB9/LB10: combining marks and ZWJ.
	if prop == prCM || prop == prZWJ {
		if !sot && !mandatoryState && st != lbcZW && !spaceRunState {
			// LB9: absorb into the preceding base character.
			out := ctx
			if prop == prZWJ {
				out.flags |= ctxAfterZWJ
			} else {
				out.flags &^= ctxAfterZWJ
			}
			return out, LineDontBreak
		}
		// LB10: no base character, treat as AL.
		out := enter(lbcAL, prAL, r)
		if prop == prZWJ {
			out.flags |= ctxAfterZWJ
		}
		switch {
		case mandatoryState:
			return out, lb45MustBreak(st, prAL)
		case st == lbcZW || (spaceRunState && st != lbcOPSP):
			return out, LineCanBreak
		default:
			return out, LineDontBreak
		}
	}

	out, kind := lineBreakDecision(ctx, st, prop, r, next)

	// LB8a: no break after a zero width joiner.
	if afterZWJ && kind == LineCanBreak {
		kind = LineDontBreak
	}
	return out, kind
}

// lb45MustBreak reports the mandatory break decision after BK, CR, LF, or
// NL, honoring the CR × LF exception of LB5.
func lb45MustBreak(st, prop int) BreakKind {
	if st == lbcCR && prop == prLF {
		return LineDontBreak
	}
	return LineMustBreak
}

// lineBreakDecision applies LB4 through LB31 in rule order.
func lineBreakDecision(ctx lineContext, st, prop int, r rune, next lookaheadFunc) (lineContext, BreakKind) {
	// LB4, LB5: break after hard line breaks; CR × LF.
	if st == lbcBK || st == lbcLF || st == lbcNL {
		return enter(stateForLineProp(prop), prop, r), LineMustBreak
	}
	if st == lbcCR {
		if prop == prLF {
			return enter(lbcLF, prop, r), LineDontBreak
		}
		return enter(stateForLineProp(prop), prop, r), LineMustBreak
	}

	// LB6: do not break before hard line breaks.
	if prop == prBK || prop == prCR || prop == prLF || prop == prNL {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB7: do not break before spaces or zero width space. Space runs
	// extend the composite states the later rules need.
	if prop == prSP {
		newState := lbcSP
		switch st {
		case lbcZW, lbcZWSP:
			newState = lbcZWSP
		case lbcOP, lbcOPSP:
			newState = lbcOPSP
		case lbcQU, lbcQUSP:
			newState = lbcQUSP
		case lbcCL, lbcCP, lbcNUCLCP, lbcCLCPSP:
			newState = lbcCLCPSP
		case lbcB2, lbcB2SP:
			newState = lbcB2SP
		}
		return lineContext{state: newState}, LineDontBreak
	}
	if prop == prZW {
		return enter(lbcZW, prop, r), LineDontBreak
	}

	// LB8: break after zero width space, even after trailing spaces.
	if st == lbcZW || st == lbcZWSP {
		return enter(stateForLineProp(prop), prop, r), LineCanBreak
	}

	// LB11: do not break before or after word joiner.
	if prop == prWJ {
		return enter(lbcWJ, prop, r), LineDontBreak
	}
	if st == lbcWJ {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB12: do not break after glue.
	if st == lbcGL {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB12a: do not break before glue, except after spaces and hyphens.
	if prop == prGL {
		if !lineSpaceState(st) && st != lbcBA && st != lbcHY && st != lbcHLHY {
			return enter(lbcGL, prop, r), LineDontBreak
		}
		return enter(lbcGL, prop, r), LineCanBreak
	}

	// LB13: do not break before closing punctuation, exclamations, or
	// separators. Numeric runs keep their LB25 tracking states.
	switch prop {
	case prCL, prCP:
		newState := stateForLineProp(prop)
		if st == lbcNU || st == lbcNUSYIS {
			newState = lbcNUCLCP
		}
		return enter(newState, prop, r), LineDontBreak
	case prEX:
		return enter(lbcEX, prop, r), LineDontBreak
	case prIS, prSY:
		newState := stateForLineProp(prop)
		if st == lbcNU || st == lbcNUSYIS {
			newState = lbcNUSYIS
		}
		return enter(newState, prop, r), LineDontBreak
	}

	// LB14: do not break after opening punctuation, even after spaces.
	if st == lbcOP || st == lbcOPSP {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB15: do not break within quotation followed by opening
	// punctuation, even with intervening spaces.
	if st == lbcQUSP && prop == prOP {
		return enter(lbcOP, prop, r), LineDontBreak
	}

	// LB16: do not break between closing punctuation and a nonstarter,
	// even with intervening spaces.
	if (st == lbcCL || st == lbcCP || st == lbcNUCLCP || st == lbcCLCPSP) && prop == prNS {
		return enter(lbcNS, prop, r), LineDontBreak
	}

	// LB17: do not break within em dash pairs, even with intervening
	// spaces.
	if (st == lbcB2 || st == lbcB2SP) && prop == prB2 {
		return enter(lbcB2, prop, r), LineDontBreak
	}

	// LB18: break after spaces.
	if lineSpaceState(st) {
		return enter(stateForLineProp(prop), prop, r), LineCanBreak
	}

	// LB19: do not break before or after quotation marks.
	if prop == prQU {
		return enter(lbcQU, prop, r), LineDontBreak
	}
	if st == lbcQU {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB20: break before and after contingent breaks.
	if prop == prCB {
		return enter(lbcCB, prop, r), LineCanBreak
	}
	if st == lbcCB {
		return enter(stateForLineProp(prop), prop, r), LineCanBreak
	}

	// LB21: do not break before hyphens, break-after marks, or
	// nonstarters; do not break after break-before marks.
	if prop == prBA || prop == prHY || prop == prNS {
		newState := stateForLineProp(prop)
		if st == lbcHL && (prop == prHY || prop == prBA) {
			newState = lbcHLHY // LB21a context
		}
		return enter(newState, prop, r), LineDontBreak
	}
	if st == lbcBB {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB21a: do not break after Hebrew letter plus hyphen.
	if st == lbcHLHY {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB21b: do not break between solidus and Hebrew letters.
	if (st == lbcSY || st == lbcNUSYIS) && prop == prHL {
		return enter(lbcHL, prop, r), LineDontBreak
	}

	// LB22: do not break before inseparables.
	if prop == prIN {
		return enter(lbcIN, prop, r), LineDontBreak
	}

	// LB23: do not break between letters and numbers.
	if (st == lbcAL || st == lbcHL) && prop == prNU {
		return enter(lbcNU, prop, r), LineDontBreak
	}
	if st == lbcNU && (prop == prAL || prop == prHL) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB23a: do not break between numeric prefixes and ideographs, or
	// between ideographs and numeric postfixes.
	if st == lbcPR && (prop == prID || prop == prEB || prop == prEM) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}
	if (st == lbcID || st == lbcEB || st == lbcEM) && prop == prPO {
		return enter(lbcPO, prop, r), LineDontBreak
	}

	// LB24: do not break between numeric prefix/postfix and letters.
	if (st == lbcPR || st == lbcPO) && (prop == prAL || prop == prHL) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}
	if (st == lbcAL || st == lbcHL) && (prop == prPR || prop == prPO) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB25: do not break within number sequences such as "$(12.35)" or
	// "100,000.50".
	if (st == lbcPR || st == lbcPO) && prop == prNU {
		return enter(lbcNU, prop, r), LineDontBreak
	}
	if (st == lbcPR || st == lbcPO) && (prop == prOP || prop == prHY) {
		// PR × OP NU and PR × HY NU need one code point of lookahead.
		if rr, ok := next(); ok {
			if p, _ := propertyLineBreak(rr); p == prNU {
				return enter(stateForLineProp(prop), prop, r), LineDontBreak
			}
		}
	}
	if (st == lbcHY || st == lbcIS || st == lbcNU || st == lbcNUSYIS) && prop == prNU {
		return enter(lbcNU, prop, r), LineDontBreak
	}
	if (st == lbcNU || st == lbcNUSYIS || st == lbcNUCLCP) && (prop == prPO || prop == prPR) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB26: do not break inside a Korean syllable.
	if st == lbcJL && (prop == prJL || prop == prJV || prop == prH2 || prop == prH3) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}
	if (st == lbcJV || st == lbcH2) && (prop == prJV || prop == prJT) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}
	if (st == lbcJT || st == lbcH3) && prop == prJT {
		return enter(lbcJT, prop, r), LineDontBreak
	}

	// LB27: treat a Korean syllable block like an ideograph for numeric
	// affixes.
	if (st == lbcJL || st == lbcJV || st == lbcJT || st == lbcH2 || st == lbcH3) && prop == prPO {
		return enter(lbcPO, prop, r), LineDontBreak
	}
	if st == lbcPR && (prop == prJL || prop == prJV || prop == prJT || prop == prH2 || prop == prH3) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB28: do not break between alphabetics.
	if (st == lbcAL || st == lbcHL) && (prop == prAL || prop == prHL) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB29: do not break between separators and letters.
	if (st == lbcIS || st == lbcNUSYIS) && (prop == prAL || prop == prHL) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB30: do not break between letters or numbers and narrow opening
	// or closing punctuation.
	if (st == lbcAL || st == lbcHL || st == lbcNU) && prop == prOP {
		if ea := propertyEastAsianWidth(r); ea != prEAF && ea != prEAW && ea != prEAH {
			return enter(lbcOP, prop, r), LineDontBreak
		}
	}
	if (st == lbcCP || st == lbcNUCLCP) && ctx.flags&ctxCPNarrow != 0 && (prop == prAL || prop == prHL || prop == prNU) {
		return enter(stateForLineProp(prop), prop, r), LineDontBreak
	}

	// LB30a: do not break within pairs of regional indicators.
	if prop == prRI {
		if st == lbcRIOdd {
			return enter(lbcRIEven, prop, r), LineDontBreak
		}
		return enter(lbcRIOdd, prop, r), LineCanBreak
	}

	// LB30b: do not break between an emoji base and an emoji modifier.
	if st == lbcEB && prop == prEM {
		return enter(lbcEM, prop, r), LineDontBreak
	}

	// LB31: break everywhere else.
	return enter(stateForLineProp(prop), prop, r), LineCanBreak
}
