package parser

// withPrefixedStmt parses `WITH ...` and dispatches on the statement that
// follows the CTE list.
func withPrefixedStmt(p *parser) {
	m := p.open()
	withClause(p)
	switch p.current() {
	case SELECT_KW, VALUES_KW:
		selectStmt(p, m)
	case INSERT_KW:
		insertBody(p, m)
	case UPDATE_KW:
		updateBody(p, m)
	case DELETE_KW:
		deleteBody(p, m)
	default:
		p.err("expected SELECT, INSERT, UPDATE, or DELETE after WITH clause")
		recoverToStmtBoundary(p)
		p.close(m, ERROR)
	}
}

func withClause(p *parser) {
	m := p.open()
	p.bump(WITH_KW)
	// `WITH RECURSIVE name ...`; RECURSIVE is contextual and arrives as IDENT.
	if p.at(IDENT) && (p.nth(1) == IDENT || p.nth(1) == QUOTED_IDENT) {
		p.bumpAny()
	}
	commonTableExpr(p)
	for p.eat(COMMA) {
		commonTableExpr(p)
	}
	p.close(m, WITH_CLAUSE)
}

func commonTableExpr(p *parser) {
	m := p.open()
	name(p)
	if p.at(L_PAREN) {
		columnList(p)
	}
	p.expect(AS_KW)
	if p.at(MATERIALIZED_KW) {
		p.bump(MATERIALIZED_KW)
	} else if p.at(NOT_KW) && p.nth(1) == MATERIALIZED_KW {
		p.bump(NOT_KW)
		p.bump(MATERIALIZED_KW)
	}
	p.expect(L_PAREN)
	switch p.current() {
	case SELECT_KW, VALUES_KW, WITH_KW:
		selectBody(p)
	case INSERT_KW:
		insertBody(p, p.open())
	case UPDATE_KW:
		updateBody(p, p.open())
	case DELETE_KW:
		deleteBody(p, p.open())
	default:
		p.err("expected query in common table expression")
	}
	p.expect(R_PAREN)
	p.close(m, COMMON_TABLE_EXPR)
}

// selectStmt finishes a select statement into the given marker, including the
// trailing semicolon.
func selectStmt(p *parser, m Marker) {
	selectCore(p)
	stmtEnd(p)
	p.close(m, SELECT_STMT)
}

// selectBody parses a select (or VALUES) without creating a statement node;
// used for subqueries and view definitions.
func selectBody(p *parser) {
	m := p.open()
	selectCore(p)
	p.close(m, SELECT_STMT)
}

func selectCore(p *parser) {
	if p.at(WITH_KW) {
		withClause(p)
	}
	if p.at(VALUES_KW) {
		valuesClause(p)
		return
	}
	p.expect(SELECT_KW)
	if p.at(DISTINCT_KW) {
		p.bump(DISTINCT_KW)
		if p.at(ON_KW) {
			p.bump(ON_KW)
			p.expect(L_PAREN)
			expr(p)
			for p.eat(COMMA) {
				expr(p)
			}
			p.expect(R_PAREN)
		}
	} else {
		p.eat(ALL_KW)
	}
	selectTargetList(p)
	if p.at(FROM_KW) {
		fromClause(p)
	}
	if p.at(WHERE_KW) {
		whereClause(p)
	}
	if p.at(GROUP_KW) {
		g := p.open()
		p.bump(GROUP_KW)
		p.expect(BY_KW)
		expr(p)
		for p.eat(COMMA) {
			expr(p)
		}
		p.close(g, GROUP_BY_CLAUSE)
	}
	if p.at(HAVING_KW) {
		h := p.open()
		p.bump(HAVING_KW)
		expr(p)
		p.close(h, HAVING_CLAUSE)
	}
	for p.at(UNION_KW) || p.at(INTERSECT_KW) || p.at(EXCEPT_KW) {
		p.bumpAny()
		if p.at(ALL_KW) || p.at(DISTINCT_KW) {
			p.bumpAny()
		}
		if p.at(L_PAREN) {
			tupleOrSubquery(p)
		} else {
			inner := p.open()
			selectCore(p)
			p.close(inner, SELECT_STMT)
			break
		}
	}
	if p.at(ORDER_KW) {
		orderByClause(p)
	}
	limitOffsetClauses(p)
	if p.at(FOR_KW) {
		// Row locking: FOR UPDATE / FOR SHARE / FOR NO KEY UPDATE ...
		p.bump(FOR_KW)
		for p.at(UPDATE_KW) || p.at(SHARE_KW) || p.at(NO_KW) || p.at(KEY_KW) {
			p.bumpAny()
		}
		if p.at(OF_KW) {
			p.bump(OF_KW)
			path(p)
			for p.eat(COMMA) {
				path(p)
			}
		}
		if p.at(NOWAIT_KW) || p.at(SKIP_KW) {
			p.bumpAny()
			p.eat(LOCKED_KW)
		}
	}
}

func selectTargetList(p *parser) {
	m := p.open()
	selectTarget(p)
	for p.eat(COMMA) {
		selectTarget(p)
	}
	p.close(m, SELECT_TARGET_LIST)
}

func selectTarget(p *parser) {
	m := p.open()
	expr(p)
	if p.at(AS_KW) {
		a := p.open()
		p.bump(AS_KW)
		aliasName(p)
		p.close(a, ALIAS)
	} else if atBareLabel(p) {
		a := p.open()
		aliasName(p)
		p.close(a, ALIAS)
	}
	p.close(m, SELECT_TARGET)
}

// atBareLabel reports whether the current token can serve as a column alias
// without AS.
func atBareLabel(p *parser) bool {
	k := p.current()
	return k == IDENT || k == QUOTED_IDENT || BareLabelKeywords.Contains(k)
}

func aliasName(p *parser) {
	k := p.current()
	if k == IDENT || k == QUOTED_IDENT || AllKeywords.Contains(k) {
		m := p.open()
		p.bumpAny()
		p.close(m, NAME)
		return
	}
	p.err("expected alias name")
}

func fromClause(p *parser) {
	m := p.open()
	p.bump(FROM_KW)
	fromItem(p)
	for p.eat(COMMA) {
		fromItem(p)
	}
	p.close(m, FROM_CLAUSE)
}

func fromItem(p *parser) {
	m := p.open()
	fromPrimary(p)
	for atJoinStart(p) {
		j := p.open()
		if p.at(NATURAL_KW) {
			p.bump(NATURAL_KW)
		}
		switch p.current() {
		case JOIN_KW:
			p.bump(JOIN_KW)
		case INNER_KW:
			p.bump(INNER_KW)
			p.expect(JOIN_KW)
		case CROSS_KW:
			p.bump(CROSS_KW)
			p.expect(JOIN_KW)
		case LEFT_KW, RIGHT_KW, FULL_KW:
			p.bumpAny()
			p.eat(OUTER_KW)
			p.expect(JOIN_KW)
		}
		fromPrimary(p)
		if p.at(ON_KW) {
			p.bump(ON_KW)
			expr(p)
		} else if p.at(USING_KW) {
			p.bump(USING_KW)
			columnList(p)
		}
		p.close(j, JOIN_CLAUSE)
	}
	p.close(m, FROM_ITEM)
}

func atJoinStart(p *parser) bool {
	switch p.current() {
	case JOIN_KW, INNER_KW, CROSS_KW, LEFT_KW, RIGHT_KW, FULL_KW, NATURAL_KW:
		return true
	}
	return false
}

func fromPrimary(p *parser) {
	p.eat(LATERAL_KW)
	if p.at(L_PAREN) {
		tupleOrSubquery(p)
		fromAlias(p)
		return
	}
	p.eat(ONLY_KW)
	path(p)
	if p.at(STAR) {
		p.bump(STAR)
	}
	if p.at(L_PAREN) {
		// Table function call, e.g. generate_series(1, 10).
		argList(p)
	}
	fromAlias(p)
}

func fromAlias(p *parser) {
	if p.at(AS_KW) {
		a := p.open()
		p.bump(AS_KW)
		aliasName(p)
		if p.at(L_PAREN) {
			columnList(p)
		}
		p.close(a, ALIAS)
		return
	}
	if p.current() == IDENT || p.current() == QUOTED_IDENT {
		a := p.open()
		aliasName(p)
		if p.at(L_PAREN) {
			columnList(p)
		}
		p.close(a, ALIAS)
	}
}

func whereClause(p *parser) {
	m := p.open()
	p.bump(WHERE_KW)
	expr(p)
	p.close(m, WHERE_CLAUSE)
}

func orderByClause(p *parser) {
	m := p.open()
	p.bump(ORDER_KW)
	p.expect(BY_KW)
	sortExpr(p)
	for p.eat(COMMA) {
		sortExpr(p)
	}
	p.close(m, ORDER_BY_CLAUSE)
}

func sortExpr(p *parser) {
	m := p.open()
	expr(p)
	if p.at(ASC_KW) || p.at(DESC_KW) {
		p.bumpAny()
	} else if p.at(USING_KW) {
		p.bump(USING_KW)
		if _, n, _, ok := binaryOpAt(p); ok {
			p.bumpN(CUSTOM_OP, n)
		}
	}
	if p.at(NULLS_KW) {
		p.bump(NULLS_KW)
		if p.at(FIRST_KW) || p.at(LAST_KW) {
			p.bumpAny()
		}
	}
	p.close(m, SORT_EXPR)
}

func limitOffsetClauses(p *parser) {
	for {
		switch p.current() {
		case LIMIT_KW:
			m := p.open()
			p.bump(LIMIT_KW)
			if p.at(ALL_KW) {
				p.bump(ALL_KW)
			} else {
				expr(p)
			}
			p.close(m, LIMIT_CLAUSE)
		case OFFSET_KW:
			m := p.open()
			p.bump(OFFSET_KW)
			expr(p)
			if p.at(ROW_KW) || p.at(ROWS_KW) {
				p.bumpAny()
			}
			p.close(m, OFFSET_CLAUSE)
		case FETCH_KW:
			m := p.open()
			p.bump(FETCH_KW)
			if p.at(FIRST_KW) || p.at(NEXT_KW) {
				p.bumpAny()
			}
			if !p.at(ROW_KW) && !p.at(ROWS_KW) {
				expr(p)
			}
			if p.at(ROW_KW) || p.at(ROWS_KW) {
				p.bumpAny()
			}
			p.eat(ONLY_KW)
			p.close(m, LIMIT_CLAUSE)
		default:
			return
		}
	}
}

func valuesClause(p *parser) {
	m := p.open()
	p.bump(VALUES_KW)
	valuesRow(p)
	for p.eat(COMMA) {
		valuesRow(p)
	}
	p.close(m, VALUES_CLAUSE)
}

func valuesRow(p *parser) {
	if !p.at(L_PAREN) {
		p.errRecover("expected ( in VALUES", stmtRecoverySet)
		return
	}
	tupleOrSubquery(p)
}

func insertStmt(p *parser) {
	insertBody(p, p.open())
}

func insertBody(p *parser, m Marker) {
	p.bump(INSERT_KW)
	p.expect(INTO_KW)
	path(p)
	if p.at(AS_KW) {
		a := p.open()
		p.bump(AS_KW)
		aliasName(p)
		p.close(a, ALIAS)
	}
	if p.at(L_PAREN) {
		columnList(p)
	}
	switch p.current() {
	case VALUES_KW:
		valuesClause(p)
	case SELECT_KW, WITH_KW, L_PAREN:
		selectBody(p)
	case DEFAULT_KW:
		p.bump(DEFAULT_KW)
		p.expect(VALUES_KW)
	default:
		p.err("expected VALUES or query in INSERT")
	}
	if p.at(ON_KW) {
		onConflictClause(p)
	}
	if p.at(RETURNING_KW) {
		returningClause(p)
	}
	stmtEnd(p)
	p.close(m, INSERT_STMT)
}

func onConflictClause(p *parser) {
	m := p.open()
	p.bump(ON_KW)
	// ON CONFLICT: CONFLICT is contextual, arriving as IDENT.
	if p.current() == IDENT {
		p.bumpAny()
	}
	if p.at(L_PAREN) {
		p.bump(L_PAREN)
		expr(p)
		for p.eat(COMMA) {
			expr(p)
		}
		p.expect(R_PAREN)
	} else if p.at(ON_KW) && p.nth(1) == CONSTRAINT_KW {
		p.bump(ON_KW)
		p.bump(CONSTRAINT_KW)
		nameRef(p)
	}
	p.expect(DO_KW)
	if p.at(NOTHING_KW) {
		p.bump(NOTHING_KW)
	} else if p.at(UPDATE_KW) {
		p.bump(UPDATE_KW)
		p.expect(SET_KW)
		setClause(p)
		for p.eat(COMMA) {
			setClause(p)
		}
		if p.at(WHERE_KW) {
			whereClause(p)
		}
	} else {
		p.err("expected NOTHING or UPDATE after DO")
	}
	p.close(m, ON_CONFLICT_CLAUSE)
}

func returningClause(p *parser) {
	m := p.open()
	p.bump(RETURNING_KW)
	selectTargetList(p)
	p.close(m, RETURNING_CLAUSE)
}

func updateStmt(p *parser) {
	updateBody(p, p.open())
}

func updateBody(p *parser, m Marker) {
	p.bump(UPDATE_KW)
	p.eat(ONLY_KW)
	path(p)
	fromAlias(p)
	p.expect(SET_KW)
	setClause(p)
	for p.eat(COMMA) {
		setClause(p)
	}
	if p.at(FROM_KW) {
		fromClause(p)
	}
	if p.at(WHERE_KW) {
		whereClause(p)
	}
	if p.at(RETURNING_KW) {
		returningClause(p)
	}
	stmtEnd(p)
	p.close(m, UPDATE_STMT)
}

func setClause(p *parser) {
	m := p.open()
	if p.at(L_PAREN) {
		columnList(p)
	} else {
		nameRef(p)
	}
	p.expect(EQ)
	if p.at(DEFAULT_KW) {
		lit := p.open()
		p.bump(DEFAULT_KW)
		p.close(lit, LITERAL)
	} else {
		expr(p)
	}
	p.close(m, SET_CLAUSE)
}

func deleteStmt(p *parser) {
	deleteBody(p, p.open())
}

func deleteBody(p *parser, m Marker) {
	p.bump(DELETE_KW)
	p.expect(FROM_KW)
	p.eat(ONLY_KW)
	path(p)
	fromAlias(p)
	if p.at(USING_KW) {
		p.bump(USING_KW)
		fromItem(p)
		for p.eat(COMMA) {
			fromItem(p)
		}
	}
	if p.at(WHERE_KW) {
		whereClause(p)
	}
	if p.at(RETURNING_KW) {
		returningClause(p)
	}
	stmtEnd(p)
	p.close(m, DELETE_STMT)
}

func truncateStmt(p *parser) {
	m := p.open()
	p.bump(TRUNCATE_KW)
	p.eat(TABLE_KW)
	p.eat(ONLY_KW)
	path(p)
	for p.eat(COMMA) {
		path(p)
	}
	if p.at(RESTART_KW) || p.at(CONTINUE_KW) {
		p.bumpAny()
		p.eat(IDENTITY_KW)
	}
	if p.at(CASCADE_KW) || p.at(RESTRICT_KW) {
		p.bumpAny()
	}
	stmtEnd(p)
	p.close(m, TRUNCATE_STMT)
}

// columnList parses `( name, name, ... )`.
func columnList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	if !p.at(R_PAREN) {
		nameRef(p)
		for p.eat(COMMA) {
			nameRef(p)
		}
	}
	p.expect(R_PAREN)
	p.close(m, COLUMN_LIST)
}
