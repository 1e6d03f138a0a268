package parser

// typeName parses a type reference. The shape distinguishes the SQL-standard
// type syntaxes that get their own node kinds (char/bit/double/time/interval)
// from plain possibly-qualified names (PATH_TYPE), and wraps array suffixes
// in ARRAY_TYPE.
func typeName(p *parser) {
	var cm CompletedMarker
	switch p.current() {
	case CHAR_KW, CHARACTER_KW, NCHAR_KW, VARCHAR_KW, NATIONAL_KW:
		m := p.open()
		if p.at(NATIONAL_KW) {
			p.bump(NATIONAL_KW)
		}
		p.bumpAny()
		p.eat(VARYING_KW)
		if p.at(L_PAREN) {
			typeArgList(p)
		}
		cm = p.close(m, CHAR_TYPE)
	case BIT_KW:
		m := p.open()
		p.bump(BIT_KW)
		p.eat(VARYING_KW)
		if p.at(L_PAREN) {
			typeArgList(p)
		}
		cm = p.close(m, BIT_TYPE)
	case DOUBLE_KW:
		m := p.open()
		p.bump(DOUBLE_KW)
		p.expect(PRECISION_KW)
		cm = p.close(m, DOUBLE_TYPE)
	case TIME_KW, TIMESTAMP_KW:
		m := p.open()
		seg := p.open()
		p.bumpAny()
		p.close(seg, NAME_REF)
		if p.at(L_PAREN) {
			typeArgList(p)
		}
		if p.at(WITH_KW) {
			tz := p.open()
			p.bump(WITH_KW)
			p.expect(TIME_KW)
			p.expect(ZONE_KW)
			p.close(tz, WITH_TIMEZONE)
		} else if p.at(WITHOUT_KW) {
			tz := p.open()
			p.bump(WITHOUT_KW)
			p.expect(TIME_KW)
			p.expect(ZONE_KW)
			p.close(tz, WITHOUT_TIMEZONE)
		}
		cm = p.close(m, TIME_TYPE)
	case INTERVAL_KW:
		m := p.open()
		p.bump(INTERVAL_KW)
		intervalFields(p)
		if p.at(L_PAREN) {
			typeArgList(p)
		}
		cm = p.close(m, INTERVAL_TYPE)
	case SETOF_KW:
		// `setof t` in function returns; the element type carries the shape.
		p.bump(SETOF_KW)
		typeName(p)
		return
	default:
		if !atTypeName(p) {
			p.errRecover("expected type", exprRecoverySet)
			return
		}
		m := p.open()
		typePath(p)
		if p.at(PERCENT) && p.nth(1) == TYPE_KW {
			p.bump(PERCENT)
			p.bump(TYPE_KW)
			cm = p.close(m, PERCENT_TYPE)
			return
		}
		if p.at(L_PAREN) {
			typeArgList(p)
		}
		cm = p.close(m, PATH_TYPE)
	}

	// Array suffixes: `[]`, `[3]`, or trailing `ARRAY [n]`.
	for {
		switch {
		case p.at(L_BRACK):
			m := p.precede(cm)
			p.bump(L_BRACK)
			if p.at(INT_NUMBER) {
				p.bump(INT_NUMBER)
			}
			p.expect(R_BRACK)
			cm = p.close(m, ARRAY_TYPE)
		case p.at(ARRAY_KW):
			m := p.precede(cm)
			p.bump(ARRAY_KW)
			if p.eat(L_BRACK) {
				if p.at(INT_NUMBER) {
					p.bump(INT_NUMBER)
				}
				p.expect(R_BRACK)
			}
			cm = p.close(m, ARRAY_TYPE)
		default:
			return
		}
	}
}

func atTypeName(p *parser) bool {
	k := p.current()
	return nameTokens.Contains(k) || TypeKeywords.Contains(k)
}

// typePath is path() but allowing type keywords as segments, for names like
// `pg_catalog.varchar`.
func typePath(p *parser) {
	m := p.open()
	typePathSegment(p)
	for p.at(DOT) {
		p.bump(DOT)
		typePathSegment(p)
	}
	p.close(m, PATH)
}

func typePathSegment(p *parser) {
	m := p.open()
	if atTypeName(p) {
		nr := p.open()
		p.bumpAny()
		p.close(nr, NAME_REF)
	} else {
		p.errRecover("expected type name", stmtRecoverySet)
	}
	p.close(m, PATH_SEGMENT)
}

// typeArgList parses the parenthesized modifiers of a type, e.g. the `(255)`
// of varchar(255) or `(10, 2)` of numeric.
func typeArgList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	if !p.at(R_PAREN) {
		expr(p)
		for p.eat(COMMA) {
			expr(p)
		}
	}
	p.expect(R_PAREN)
	p.close(m, TYPE_ARG_LIST)
}

func intervalFields(p *parser) {
	switch p.current() {
	case YEAR_KW, MONTH_KW, DAY_KW, HOUR_KW, MINUTE_KW, SECOND_KW:
		p.bumpAny()
		if p.at(TO_KW) {
			p.bump(TO_KW)
			switch p.current() {
			case MONTH_KW, HOUR_KW, MINUTE_KW, SECOND_KW:
				p.bumpAny()
			default:
				p.err("expected interval field")
			}
		}
	}
}
