package parser

// Binding powers follow the PostgreSQL operator precedence table. Left
// associativity is the default; higher binds tighter.
const (
	bpOr         = 1
	bpAnd        = 2
	bpNot        = 3
	bpIs         = 4
	bpCompare    = 5
	bpBetweenIn  = 6
	bpUserOp     = 7
	bpAddSub     = 8
	bpMulDiv     = 9
	bpExp        = 10
	bpUnary      = 11
	// `.` and `::` are handled by the postfix loop and bind tighter than
	// everything else.
)

var exprRecoverySet = stmtRecoverySet.Union(NewTokenSet(COMMA, R_PAREN, R_BRACK, FROM_KW, WHERE_KW, THEN_KW, ELSE_KW, END_KW, AS_KW))

// expr parses a full expression.
func expr(p *parser) {
	exprBP(p, 0)
}

func exprBP(p *parser, minBP int) (CompletedMarker, bool) {
	lhs, ok := lhsExpr(p)
	if !ok {
		return lhs, false
	}
	for {
		if p.stuck() {
			return lhs, true
		}
		// NOT BETWEEN / NOT IN / NOT LIKE / NOT ILIKE / NOT SIMILAR
		if p.at(NOT_KW) {
			switch p.nth(1) {
			case BETWEEN_KW, IN_KW, LIKE_KW, ILIKE_KW, SIMILAR_KW:
				if bpBetweenIn < minBP {
					return lhs, true
				}
				m := p.precede(lhs)
				p.bump(NOT_KW)
				lhs = finishNegatable(p, m)
				continue
			}
			return lhs, true
		}
		switch p.current() {
		case BETWEEN_KW, IN_KW, LIKE_KW, ILIKE_KW, SIMILAR_KW:
			if bpBetweenIn < minBP {
				return lhs, true
			}
			m := p.precede(lhs)
			lhs = finishNegatable(p, m)
			continue
		case IS_KW, ISNULL_KW, NOTNULL_KW:
			if bpIs < minBP {
				return lhs, true
			}
			m := p.precede(lhs)
			lhs = finishIsExpr(p, m)
			continue
		case AND_KW:
			if bpAnd < minBP {
				return lhs, true
			}
			m := p.precede(lhs)
			p.bump(AND_KW)
			exprBP(p, bpAnd+1)
			lhs = p.close(m, BIN_EXPR)
			continue
		case OR_KW:
			if bpOr < minBP {
				return lhs, true
			}
			m := p.precede(lhs)
			p.bump(OR_KW)
			exprBP(p, bpOr+1)
			lhs = p.close(m, BIN_EXPR)
			continue
		}
		opKind, nRaw, bp, ok := binaryOpAt(p)
		if !ok || bp < minBP {
			return lhs, true
		}
		m := p.precede(lhs)
		p.bumpN(opKind, nRaw)
		exprBP(p, bp+1)
		lhs = p.close(m, BIN_EXPR)
	}
}

// finishNegatable parses the tail of BETWEEN/IN/LIKE/ILIKE/SIMILAR with the
// operator keyword at the current position and the marker already preceding
// the left operand.
func finishNegatable(p *parser, m Marker) CompletedMarker {
	switch p.current() {
	case BETWEEN_KW:
		p.bump(BETWEEN_KW)
		if p.at(SYMMETRIC_KW) || p.at(ASYMMETRIC_KW) {
			p.bumpAny()
		}
		exprBP(p, bpBetweenIn+1)
		p.expect(AND_KW)
		exprBP(p, bpBetweenIn+1)
		return p.close(m, BETWEEN_EXPR)
	case IN_KW:
		p.bump(IN_KW)
		if p.at(L_PAREN) {
			tupleOrSubquery(p)
		} else {
			exprBP(p, bpBetweenIn+1)
		}
		return p.close(m, IN_EXPR)
	case LIKE_KW, ILIKE_KW:
		p.bumpAny()
		exprBP(p, bpBetweenIn+1)
		if p.at(ESCAPE_KW) {
			p.bump(ESCAPE_KW)
			exprBP(p, bpBetweenIn+1)
		}
		return p.close(m, LIKE_EXPR)
	case SIMILAR_KW:
		p.bump(SIMILAR_KW)
		p.expect(TO_KW)
		exprBP(p, bpBetweenIn+1)
		if p.at(ESCAPE_KW) {
			p.bump(ESCAPE_KW)
			exprBP(p, bpBetweenIn+1)
		}
		return p.close(m, LIKE_EXPR)
	}
	return p.close(m, ERROR)
}

func finishIsExpr(p *parser, m Marker) CompletedMarker {
	switch p.current() {
	case ISNULL_KW, NOTNULL_KW:
		p.bumpAny()
		return p.close(m, IS_EXPR)
	}
	p.bump(IS_KW)
	p.eat(NOT_KW)
	switch p.current() {
	case NULL_KW, TRUE_KW, FALSE_KW:
		p.bumpAny()
	case DISTINCT_KW:
		p.bump(DISTINCT_KW)
		p.expect(FROM_KW)
		exprBP(p, bpIs+1)
	default:
		// IS DOCUMENT, IS NORMALIZED and friends; accept one name.
		if atName(p) {
			p.bumpAny()
		} else {
			p.err("expected expression after IS")
		}
	}
	return p.close(m, IS_EXPR)
}

// binaryOpAt recognizes the operator (single-token or joined compound) at the
// current position and returns its CST kind, raw-token count, and binding
// power.
func binaryOpAt(p *parser) (SyntaxKind, int, int, bool) {
	switch {
	case p.at(NEQ):
		return NEQ, 2, bpCompare, true
	case p.at(LT_EQ):
		return LT_EQ, 2, bpCompare, true
	case p.at(GT_EQ):
		return GT_EQ, 2, bpCompare, true
	case p.at(CONCAT):
		return CONCAT, 2, bpUserOp, true
	case p.at(ARROW_ARROW):
		return ARROW_ARROW, 3, bpUserOp, true
	case p.at(ARROW):
		return ARROW, 2, bpUserOp, true
	case p.atComposite3(POUND, GT, GT):
		return POUND_GT_GT, 3, bpUserOp, true
	case p.atComposite2(POUND, GT):
		return POUND_GT, 2, bpUserOp, true
	case p.atComposite2(POUND, MINUS):
		return POUND_MINUS, 2, bpUserOp, true
	case p.atComposite2(AT, GT):
		return AT_GT, 2, bpUserOp, true
	case p.atComposite2(LT, AT):
		return LT_AT, 2, bpUserOp, true
	case p.atComposite2(AT, AT):
		return AT_AT, 2, bpUserOp, true
	case p.atComposite2(AMP, AMP):
		return AMP_AMP, 2, bpUserOp, true
	case p.atComposite2(TILDE, STAR):
		return TILDE_STAR, 2, bpUserOp, true
	case p.atComposite3(BANG, TILDE, STAR):
		return BANG_TILDE_STAR, 3, bpUserOp, true
	case p.atComposite2(BANG, TILDE):
		return BANG_TILDE, 2, bpUserOp, true
	}
	switch p.current() {
	case EQ, LT, GT:
		return p.current(), 1, bpCompare, true
	case PLUS, MINUS:
		return p.current(), 1, bpAddSub, true
	case STAR, SLASH, PERCENT:
		return p.current(), 1, bpMulDiv, true
	case CARET:
		return CARET, 1, bpExp, true
	case TILDE, AMP, PIPE, POUND, QUESTION, AT:
		// Remaining single-character operators bind at the user level. A run
		// of joined operator characters forms one custom operator.
		return CUSTOM_OP, p.opRunLen(), bpUserOp, true
	}
	return TOMBSTONE, 0, 0, false
}

var opCharKinds = NewTokenSet(PLUS, MINUS, STAR, SLASH, LT, GT, EQ, TILDE, BANG, AT, POUND, PERCENT, CARET, AMP, PIPE, QUESTION)

// opRunLen measures a run of joined operator characters starting at the
// current token.
func (p *parser) opRunLen() int {
	n := 1
	for opCharKinds.Contains(p.nth(n)) && p.inp.IsJoint(p.pos+n) {
		n++
	}
	return n
}

func lhsExpr(p *parser) (CompletedMarker, bool) {
	var lhs CompletedMarker
	switch p.current() {
	case INT_NUMBER, FLOAT_NUMBER, STRING, ESC_STRING, UNICODE_ESC_STRING,
		DOLLAR_QUOTED_STRING, BYTE_STRING, BIT_STRING, TRUE_KW, FALSE_KW, NULL_KW:
		m := p.open()
		p.bumpAny()
		lhs = p.close(m, LITERAL)
	case PARAM_TOKEN:
		m := p.open()
		p.bump(PARAM_TOKEN)
		lhs = p.close(m, PARAM_EXPR)
	case CASE_KW:
		lhs = caseExpr(p)
	case CAST_KW, TREAT_KW:
		lhs = castExpr(p)
	case ARRAY_KW:
		lhs = arrayExpr(p)
	case EXISTS_KW:
		m := p.open()
		nr := p.open()
		p.bump(EXISTS_KW)
		p.close(nr, NAME_REF)
		if p.at(L_PAREN) {
			argList(p)
		}
		lhs = p.close(m, CALL_EXPR)
	case COALESCE_KW, GREATEST_KW, LEAST_KW, NULLIF_KW, EXTRACT_KW, POSITION_KW, SUBSTRING_KW, TRIM_KW, OVERLAY_KW:
		m := p.open()
		nr := p.open()
		p.bumpAny()
		p.close(nr, NAME_REF)
		if p.at(L_PAREN) {
			argList(p)
		}
		lhs = p.close(m, CALL_EXPR)
	case CURRENT_DATE_KW, CURRENT_TIME_KW, CURRENT_TIMESTAMP_KW, LOCALTIME_KW,
		LOCALTIMESTAMP_KW, CURRENT_USER_KW, CURRENT_ROLE_KW, CURRENT_CATALOG_KW,
		CURRENT_SCHEMA_KW, SESSION_USER_KW, SYSTEM_USER_KW, USER_KW:
		m := p.open()
		nr := p.open()
		p.bumpAny()
		p.close(nr, NAME_REF)
		if p.at(L_PAREN) {
			argList(p)
		}
		lhs = p.close(m, CALL_EXPR)
	case MINUS, PLUS:
		m := p.open()
		p.bumpAny()
		exprBP(p, bpUnary)
		lhs = p.close(m, PREFIX_EXPR)
	case NOT_KW:
		m := p.open()
		p.bump(NOT_KW)
		exprBP(p, bpNot)
		lhs = p.close(m, PREFIX_EXPR)
	case TILDE, AT, POUND, QUESTION, BANG:
		m := p.open()
		p.bumpN(CUSTOM_OP, p.opRunLen())
		exprBP(p, bpUnary)
		lhs = p.close(m, PREFIX_EXPR)
	case L_PAREN:
		lhs = tupleOrSubquery(p)
	case STAR:
		m := p.open()
		p.bump(STAR)
		lhs = p.close(m, STAR_EXPR)
	case ROW_KW:
		m := p.open()
		nr := p.open()
		p.bump(ROW_KW)
		p.close(nr, NAME_REF)
		if p.at(L_PAREN) {
			argList(p)
		}
		lhs = p.close(m, CALL_EXPR)
	case INTERVAL_KW:
		// `interval '1 day'` literal syntax.
		m := p.open()
		p.bump(INTERVAL_KW)
		if p.at(STRING) {
			p.bump(STRING)
		}
		lhs = p.close(m, LITERAL)
	case SELECT_KW, VALUES_KW:
		// Bare subquery in expression position (already inside parens).
		m := p.open()
		selectBody(p)
		lhs = p.close(m, PAREN_EXPR)
	default:
		if atName(p) || p.current() == TIMESTAMP_KW || p.current() == TIME_KW {
			m := p.open()
			nameRef(p)
			lhs = p.close(m, NAME_REF_EXPR)
		} else {
			p.errRecover("expected expression", exprRecoverySet)
			return CompletedMarker{}, false
		}
	}
	return postfixExpr(p, lhs), true
}

// postfixExpr applies the tightest-binding suffixes: qualified-name dots,
// call argument lists, subscripts, and `::` casts.
func postfixExpr(p *parser, lhs CompletedMarker) CompletedMarker {
	for {
		switch {
		case p.at(DOT):
			m := p.precede(lhs)
			p.bump(DOT)
			switch {
			case p.at(STAR):
				p.bump(STAR)
			case p.at(FLOAT_NUMBER):
				seg := p.open()
				p.floatSplit()
				p.close(seg, PATH_SEGMENT)
			default:
				nameRef(p)
			}
			lhs = p.close(m, FIELD_EXPR)
		case p.at(FLOAT_NUMBER) && p.inp.IsJoint(p.pos) && (lhs.kind == NAME_REF_EXPR || lhs.kind == FIELD_EXPR):
			m := p.precede(lhs)
			seg := p.open()
			p.floatSplit()
			p.close(seg, PATH_SEGMENT)
			lhs = p.close(m, FIELD_EXPR)
		case p.at(L_PAREN) && (lhs.kind == NAME_REF_EXPR || lhs.kind == FIELD_EXPR):
			m := p.precede(lhs)
			argList(p)
			lhs = p.close(m, CALL_EXPR)
		case p.at(L_BRACK):
			m := p.precede(lhs)
			p.bump(L_BRACK)
			if !p.at(R_BRACK) {
				expr(p)
				if p.at(COLON) {
					p.bump(COLON)
					expr(p)
				}
			}
			p.expect(R_BRACK)
			lhs = p.close(m, INDEX_EXPR_SUBSCRIPT)
		case p.at(COLONCOLON):
			m := p.precede(lhs)
			p.bump(COLONCOLON)
			typeName(p)
			lhs = p.close(m, CAST_EXPR)
		default:
			return lhs
		}
	}
}

func caseExpr(p *parser) CompletedMarker {
	m := p.open()
	p.bump(CASE_KW)
	if !p.at(WHEN_KW) {
		expr(p)
	}
	for p.at(WHEN_KW) {
		w := p.open()
		p.bump(WHEN_KW)
		expr(p)
		p.expect(THEN_KW)
		expr(p)
		p.close(w, WHEN_CLAUSE)
	}
	if p.at(ELSE_KW) {
		e := p.open()
		p.bump(ELSE_KW)
		expr(p)
		p.close(e, ELSE_CLAUSE)
	}
	p.expect(END_KW)
	return p.close(m, CASE_EXPR)
}

func castExpr(p *parser) CompletedMarker {
	m := p.open()
	p.bumpAny() // CAST or TREAT
	p.expect(L_PAREN)
	expr(p)
	p.expect(AS_KW)
	typeName(p)
	p.expect(R_PAREN)
	return p.close(m, CAST_EXPR)
}

func arrayExpr(p *parser) CompletedMarker {
	m := p.open()
	p.bump(ARRAY_KW)
	switch p.current() {
	case L_BRACK:
		p.bump(L_BRACK)
		if !p.at(R_BRACK) {
			expr(p)
			for p.eat(COMMA) {
				expr(p)
			}
		}
		p.expect(R_BRACK)
	case L_PAREN:
		p.bump(L_PAREN)
		selectBody(p)
		p.expect(R_PAREN)
	default:
		p.err("expected [ or ( after ARRAY")
	}
	return p.close(m, ARRAY_EXPR)
}

// tupleOrSubquery parses a parenthesized expression, tuple, or subquery.
func tupleOrSubquery(p *parser) CompletedMarker {
	m := p.open()
	p.bump(L_PAREN)
	if p.at(SELECT_KW) || p.at(VALUES_KW) || p.at(WITH_KW) {
		selectBody(p)
		p.expect(R_PAREN)
		return p.close(m, PAREN_EXPR)
	}
	if p.at(R_PAREN) {
		p.bump(R_PAREN)
		return p.close(m, TUPLE_EXPR)
	}
	expr(p)
	if p.at(COMMA) {
		for p.eat(COMMA) {
			expr(p)
		}
		p.expect(R_PAREN)
		return p.close(m, TUPLE_EXPR)
	}
	p.expect(R_PAREN)
	return p.close(m, PAREN_EXPR)
}

func argList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	if p.at(DISTINCT_KW) || p.at(ALL_KW) {
		p.bumpAny()
	}
	if !p.at(R_PAREN) {
		arg(p)
		for p.eat(COMMA) {
			arg(p)
		}
	}
	if p.at(ORDER_KW) {
		orderByClause(p)
	}
	p.expect(R_PAREN)
	p.close(m, ARG_LIST)
}

func arg(p *parser) {
	if p.at(STAR) && (p.nth(1) == R_PAREN || p.nth(1) == COMMA) {
		m := p.open()
		p.bump(STAR)
		p.close(m, STAR_EXPR)
		return
	}
	if p.at(VARIADIC_KW) {
		p.bump(VARIADIC_KW)
	}
	expr(p)
	// EXTRACT(field FROM source), POSITION(a IN b), SUBSTRING(x FROM y FOR z),
	// TRIM(BOTH x FROM y) and friends.
	for p.at(FROM_KW) || p.at(FOR_KW) || p.at(IN_KW) || p.at(AS_KW) {
		p.bumpAny()
		expr(p)
	}
}
