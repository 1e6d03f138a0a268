package parser

func createStmt(p *parser) {
	m := p.open()
	p.bump(CREATE_KW)
	if p.at(OR_KW) {
		p.bump(OR_KW)
		p.expect(REPLACE_KW)
	}
	switch p.current() {
	case GLOBAL_KW, LOCAL_KW, TEMP_KW, TEMPORARY_KW, UNLOGGED_KW:
		for p.at(GLOBAL_KW) || p.at(LOCAL_KW) || p.at(TEMP_KW) || p.at(TEMPORARY_KW) || p.at(UNLOGGED_KW) {
			p.bumpAny()
		}
		if p.at(TABLE_KW) {
			p.bump(TABLE_KW)
			createTable(p, m)
		} else if p.at(SEQUENCE_KW) {
			p.bump(SEQUENCE_KW)
			createLenient(p, m, CREATE_TABLE)
		} else if p.at(VIEW_KW) {
			p.bump(VIEW_KW)
			createView(p, m)
		} else {
			p.err("expected TABLE, SEQUENCE, or VIEW")
			recoverToStmtBoundary(p)
			p.close(m, ERROR)
		}
	case TABLE_KW:
		p.bump(TABLE_KW)
		createTable(p, m)
	case UNIQUE_KW:
		p.bump(UNIQUE_KW)
		p.expect(INDEX_KW)
		createIndex(p, m)
	case INDEX_KW:
		p.bump(INDEX_KW)
		createIndex(p, m)
	case DOMAIN_KW:
		p.bump(DOMAIN_KW)
		createDomain(p, m)
	case FUNCTION_KW, PROCEDURE_KW:
		p.bumpAny()
		createFunction(p, m)
	case TYPE_KW:
		p.bump(TYPE_KW)
		createType(p, m)
	case MATERIALIZED_KW:
		p.bump(MATERIALIZED_KW)
		p.expect(VIEW_KW)
		createView(p, m)
	case VIEW_KW:
		p.bump(VIEW_KW)
		createView(p, m)
	case SCHEMA_KW:
		p.bump(SCHEMA_KW)
		createSchema(p, m)
	default:
		p.err("expected a CREATE statement")
		recoverToStmtBoundary(p)
		p.close(m, ERROR)
	}
}

// createLenient swallows the rest of the statement for CREATE variants whose
// internals the linter never inspects.
func createLenient(p *parser, m Marker, kind SyntaxKind) {
	for !p.atEOF() && !p.at(SEMICOLON) {
		if p.stuck() {
			break
		}
		p.bumpAny()
	}
	stmtEnd(p)
	p.close(m, kind)
}

func createTable(p *parser, m Marker) {
	ifNotExists(p)
	pathAsName(p)
	if p.at(PARTITION_KW) {
		po := p.open()
		p.bump(PARTITION_KW)
		p.expect(OF_KW)
		path(p)
		// FOR VALUES ... / DEFAULT; bounds are opaque to the linter.
		for !p.atEOF() && !p.at(SEMICOLON) {
			if p.stuck() {
				break
			}
			p.bumpAny()
		}
		p.close(po, PARTITION_OF_CLAUSE)
		stmtEnd(p)
		p.close(m, CREATE_TABLE)
		return
	}
	if p.at(L_PAREN) {
		tableArgList(p)
	}
	for {
		switch p.current() {
		case INHERITS_KW:
			i := p.open()
			p.bump(INHERITS_KW)
			p.expect(L_PAREN)
			path(p)
			for p.eat(COMMA) {
				path(p)
			}
			p.expect(R_PAREN)
			p.close(i, INHERITS_CLAUSE)
		case PARTITION_KW:
			pb := p.open()
			p.bump(PARTITION_KW)
			p.expect(BY_KW)
			if p.at(RANGE_KW) || p.current() == IDENT {
				p.bumpAny() // RANGE, LIST, HASH
			}
			if p.at(L_PAREN) {
				p.bump(L_PAREN)
				expr(p)
				for p.eat(COMMA) {
					expr(p)
				}
				p.expect(R_PAREN)
			}
			p.close(pb, PARTITION_BY_CLAUSE)
		case USING_KW:
			u := p.open()
			p.bump(USING_KW)
			nameRef(p)
			p.close(u, USING_METHOD)
		case WITH_KW:
			w := p.open()
			p.bump(WITH_KW)
			if p.at(L_PAREN) {
				p.bump(L_PAREN)
				for !p.at(R_PAREN) && !p.atEOF() {
					if p.stuck() {
						break
					}
					p.bumpAny()
				}
				p.expect(R_PAREN)
			}
			p.close(w, WITH_OPTIONS)
		case TABLESPACE_KW:
			t := p.open()
			p.bump(TABLESPACE_KW)
			nameRef(p)
			p.close(t, TABLESPACE_CLAUSE)
		case ON_KW:
			// ON COMMIT DROP and friends for temporary tables.
			p.bump(ON_KW)
			p.eat(COMMIT_KW)
			if p.at(DROP_KW) || p.at(DELETE_KW) || p.at(PRESERVE_KW) {
				p.bumpAny()
				p.eat(ROWS_KW)
			}
		default:
			stmtEnd(p)
			p.close(m, CREATE_TABLE)
			return
		}
	}
}

// pathAsName parses a qualified name whose last segment introduces a binding.
func pathAsName(p *parser) {
	m := p.open()
	seg := p.open()
	nameNode(p, NAME)
	p.close(seg, PATH_SEGMENT)
	for p.at(DOT) {
		p.bump(DOT)
		seg := p.open()
		nameNode(p, NAME)
		p.close(seg, PATH_SEGMENT)
	}
	p.close(m, PATH)
}

func tableArgList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	if !p.at(R_PAREN) {
		tableArg(p)
		for p.eat(COMMA) {
			tableArg(p)
		}
	}
	p.expect(R_PAREN)
	p.close(m, TABLE_ARG_LIST)
}

func tableArg(p *parser) {
	switch p.current() {
	case LIKE_KW:
		m := p.open()
		p.bump(LIKE_KW)
		path(p)
		for p.at(INCLUDING_KW) || p.at(EXCLUDING_KW) {
			p.bumpAny()
			switch p.current() {
			case DEFAULTS_KW, CONSTRAINTS_KW, INDEXES_KW, STORAGE_KW, ALL_KW,
				IDENTITY_KW, GENERATED_KW, STATISTICS_KW, IDENT:
				p.bumpAny()
			}
		}
		p.close(m, LIKE_CLAUSE)
	case CONSTRAINT_KW, PRIMARY_KW, UNIQUE_KW, CHECK_KW, FOREIGN_KW, EXCLUDE_KW:
		tableConstraint(p)
	default:
		columnDef(p)
	}
}

func columnDef(p *parser) {
	m := p.open()
	name(p)
	typeName(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	for atConstraintStart(p) {
		columnConstraint(p)
	}
	p.close(m, COLUMN_DEF)
}

func atConstraintStart(p *parser) bool {
	switch p.current() {
	case CONSTRAINT_KW, NOT_KW, NULL_KW, DEFAULT_KW, PRIMARY_KW, UNIQUE_KW,
		CHECK_KW, REFERENCES_KW, GENERATED_KW, DEFERRABLE_KW, INITIALLY_KW,
		COLLATE_KW:
		return true
	}
	return false
}

// columnConstraint parses a single column-level constraint, including the
// optional leading CONSTRAINT name.
func columnConstraint(p *parser) {
	m := p.open()
	if p.at(CONSTRAINT_KW) {
		cn := p.open()
		p.bump(CONSTRAINT_KW)
		name(p)
		p.close(cn, CONSTRAINT_NAME)
	}
	switch p.current() {
	case NOT_KW:
		p.bump(NOT_KW)
		p.expect(NULL_KW)
		p.close(m, NOT_NULL_CONSTRAINT)
	case NULL_KW:
		p.bump(NULL_KW)
		p.close(m, NULL_CONSTRAINT)
	case DEFAULT_KW:
		p.bump(DEFAULT_KW)
		exprBP(p, bpBetweenIn)
		p.close(m, DEFAULT_CONSTRAINT)
	case PRIMARY_KW:
		p.bump(PRIMARY_KW)
		p.expect(KEY_KW)
		indexParams(p)
		p.close(m, PRIMARY_KEY_CONSTRAINT)
	case UNIQUE_KW:
		p.bump(UNIQUE_KW)
		nullsDistinct(p)
		indexParams(p)
		p.close(m, UNIQUE_CONSTRAINT)
	case CHECK_KW:
		p.bump(CHECK_KW)
		p.expect(L_PAREN)
		expr(p)
		p.expect(R_PAREN)
		if p.at(NO_KW) {
			p.bump(NO_KW)
			p.expect(INHERIT_KW)
		}
		p.close(m, CHECK_CONSTRAINT)
	case REFERENCES_KW:
		p.bump(REFERENCES_KW)
		path(p)
		if p.at(L_PAREN) {
			columnList(p)
		}
		referencesTail(p)
		p.close(m, REFERENCES_CONSTRAINT)
	case GENERATED_KW:
		p.bump(GENERATED_KW)
		if p.at(ALWAYS_KW) {
			p.bump(ALWAYS_KW)
		} else if p.at(BY_KW) {
			p.bump(BY_KW)
			p.expect(DEFAULT_KW)
		}
		p.expect(AS_KW)
		if p.at(IDENTITY_KW) {
			p.bump(IDENTITY_KW)
			if p.at(L_PAREN) {
				p.bump(L_PAREN)
				sequenceOptions(p)
				p.expect(R_PAREN)
			}
		} else {
			p.expect(L_PAREN)
			expr(p)
			p.expect(R_PAREN)
			p.eat(STORED_KW)
		}
		p.close(m, GENERATED_CONSTRAINT)
	case DEFERRABLE_KW, INITIALLY_KW:
		deferrableTail(p)
		p.close(m, DEFERRABLE_CLAUSE)
	case COLLATE_KW:
		p.bump(COLLATE_KW)
		path(p)
		p.close(m, ERROR)
	default:
		p.err("expected constraint")
		p.close(m, ERROR)
	}
}

func nullsDistinct(p *parser) {
	if p.at(NULLS_KW) {
		p.bump(NULLS_KW)
		p.eat(NOT_KW)
		p.expect(DISTINCT_KW)
	}
}

// indexParams parses the optional storage tail of PRIMARY KEY / UNIQUE
// constraints: INCLUDE, WITH, USING INDEX TABLESPACE. The `USING INDEX name`
// form of ALTER TABLE gets its own node so rules can find it.
func indexParams(p *parser) {
	for {
		switch p.current() {
		case INCLUDE_KW:
			i := p.open()
			p.bump(INCLUDE_KW)
			if p.at(L_PAREN) {
				columnList(p)
			}
			p.close(i, INDEX_PARAMS)
		case WITH_KW:
			w := p.open()
			p.bump(WITH_KW)
			if p.at(L_PAREN) {
				p.bump(L_PAREN)
				for !p.at(R_PAREN) && !p.atEOF() {
					if p.stuck() {
						break
					}
					p.bumpAny()
				}
				p.expect(R_PAREN)
			}
			p.close(w, INDEX_PARAMS)
		case USING_KW:
			if p.nth(1) != INDEX_KW {
				return
			}
			if p.nth(2) == TABLESPACE_KW {
				t := p.open()
				p.bump(USING_KW)
				p.bump(INDEX_KW)
				p.bump(TABLESPACE_KW)
				nameRef(p)
				p.close(t, INDEX_PARAMS)
				continue
			}
			u := p.open()
			p.bump(USING_KW)
			p.bump(INDEX_KW)
			nameRef(p)
			p.close(u, USING_INDEX)
		case DEFERRABLE_KW, NOT_KW, INITIALLY_KW:
			if p.at(NOT_KW) && p.nth(1) != DEFERRABLE_KW {
				return
			}
			d := p.open()
			deferrableTail(p)
			p.close(d, DEFERRABLE_CLAUSE)
		default:
			return
		}
	}
}

func deferrableTail(p *parser) {
	if p.at(NOT_KW) {
		p.bump(NOT_KW)
		p.expect(DEFERRABLE_KW)
	} else {
		p.eat(DEFERRABLE_KW)
	}
	if p.at(INITIALLY_KW) {
		p.bump(INITIALLY_KW)
		if p.at(DEFERRED_KW) || p.at(IMMEDIATE_KW) {
			p.bumpAny()
		} else {
			p.err("expected DEFERRED or IMMEDIATE")
		}
	}
}

func referencesTail(p *parser) {
	for {
		switch p.current() {
		case MATCH_KW:
			p.bump(MATCH_KW)
			if p.at(FULL_KW) || p.at(PARTIAL_KW) || p.at(SIMPLE_KW) {
				p.bumpAny()
			}
		case ON_KW:
			a := p.open()
			p.bump(ON_KW)
			if p.at(DELETE_KW) || p.at(UPDATE_KW) {
				p.bumpAny()
			}
			switch p.current() {
			case NO_KW:
				p.bump(NO_KW)
				p.expect(ACTION_KW)
			case RESTRICT_KW, CASCADE_KW:
				p.bumpAny()
			case SET_KW:
				p.bump(SET_KW)
				if p.at(NULL_KW) || p.at(DEFAULT_KW) {
					p.bumpAny()
				}
				if p.at(L_PAREN) {
					columnList(p)
				}
			default:
				p.err("expected referential action")
			}
			p.close(a, REFERENCES_ACTION)
		default:
			return
		}
	}
}

// tableConstraint parses a table-level constraint.
func tableConstraint(p *parser) {
	m := p.open()
	if p.at(CONSTRAINT_KW) {
		cn := p.open()
		p.bump(CONSTRAINT_KW)
		name(p)
		p.close(cn, CONSTRAINT_NAME)
	}
	switch p.current() {
	case PRIMARY_KW:
		p.bump(PRIMARY_KW)
		p.expect(KEY_KW)
		if p.at(L_PAREN) {
			columnList(p)
		}
		indexParams(p)
		p.close(m, PRIMARY_KEY_CONSTRAINT)
	case UNIQUE_KW:
		p.bump(UNIQUE_KW)
		nullsDistinct(p)
		if p.at(L_PAREN) {
			columnList(p)
		}
		indexParams(p)
		p.close(m, UNIQUE_CONSTRAINT)
	case CHECK_KW:
		p.bump(CHECK_KW)
		p.expect(L_PAREN)
		expr(p)
		p.expect(R_PAREN)
		if p.at(NO_KW) {
			p.bump(NO_KW)
			p.expect(INHERIT_KW)
		}
		p.close(m, CHECK_CONSTRAINT)
	case FOREIGN_KW:
		p.bump(FOREIGN_KW)
		p.expect(KEY_KW)
		if p.at(L_PAREN) {
			columnList(p)
		}
		p.expect(REFERENCES_KW)
		path(p)
		if p.at(L_PAREN) {
			columnList(p)
		}
		referencesTail(p)
		p.close(m, FOREIGN_KEY_CONSTRAINT)
	case EXCLUDE_KW:
		p.bump(EXCLUDE_KW)
		if p.at(USING_KW) {
			p.bump(USING_KW)
			nameRef(p)
		}
		if p.at(L_PAREN) {
			p.bump(L_PAREN)
			for !p.at(R_PAREN) && !p.atEOF() {
				if p.stuck() {
					break
				}
				p.bumpAny()
			}
			p.expect(R_PAREN)
		}
		if p.at(WHERE_KW) {
			p.bump(WHERE_KW)
			p.expect(L_PAREN)
			expr(p)
			p.expect(R_PAREN)
		}
		p.close(m, EXCLUDE_CONSTRAINT)
	default:
		p.err("expected constraint")
		p.close(m, ERROR)
	}
}

func sequenceOptions(p *parser) {
	for !p.at(R_PAREN) && !p.atEOF() {
		if p.stuck() {
			return
		}
		p.bumpAny()
	}
}

func createIndex(p *parser, m Marker) {
	p.eat(CONCURRENTLY_KW)
	ifNotExists(p)
	if atName(p) && p.current() != ON_KW {
		name(p)
	}
	p.expect(ON_KW)
	p.eat(ONLY_KW)
	path(p)
	if p.at(USING_KW) {
		u := p.open()
		p.bump(USING_KW)
		nameRef(p)
		p.close(u, USING_METHOD)
	}
	if p.at(L_PAREN) {
		indexExprList(p)
	}
	for {
		switch p.current() {
		case INCLUDE_KW:
			p.bump(INCLUDE_KW)
			if p.at(L_PAREN) {
				columnList(p)
			}
		case WITH_KW:
			p.bump(WITH_KW)
			if p.at(L_PAREN) {
				p.bump(L_PAREN)
				for !p.at(R_PAREN) && !p.atEOF() {
					if p.stuck() {
						break
					}
					p.bumpAny()
				}
				p.expect(R_PAREN)
			}
		case TABLESPACE_KW:
			p.bump(TABLESPACE_KW)
			nameRef(p)
		case WHERE_KW:
			whereClause(p)
		case NULLS_KW:
			p.bump(NULLS_KW)
			p.eat(NOT_KW)
			p.eat(DISTINCT_KW)
		default:
			stmtEnd(p)
			p.close(m, CREATE_INDEX)
			return
		}
	}
}

func indexExprList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	indexElem(p)
	for p.eat(COMMA) {
		indexElem(p)
	}
	p.expect(R_PAREN)
	p.close(m, INDEX_EXPR_LIST)
}

func indexElem(p *parser) {
	m := p.open()
	expr(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	// Operator class, possibly with options.
	if p.current() == IDENT && p.nth(1) != COMMA && p.nth(1) != R_PAREN {
		p.bumpAny()
	}
	if p.at(ASC_KW) || p.at(DESC_KW) {
		p.bumpAny()
	}
	if p.at(NULLS_KW) {
		p.bump(NULLS_KW)
		if p.at(FIRST_KW) || p.at(LAST_KW) {
			p.bumpAny()
		}
	}
	p.close(m, INDEX_EXPR)
}

func createDomain(p *parser, m Marker) {
	pathAsName(p)
	p.eat(AS_KW)
	typeName(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	for {
		switch p.current() {
		case DEFAULT_KW:
			d := p.open()
			p.bump(DEFAULT_KW)
			exprBP(p, bpBetweenIn)
			p.close(d, DEFAULT_CONSTRAINT)
		case CONSTRAINT_KW, NOT_KW, NULL_KW, CHECK_KW:
			domainConstraint(p)
		default:
			stmtEnd(p)
			p.close(m, CREATE_DOMAIN)
			return
		}
	}
}

func domainConstraint(p *parser) {
	m := p.open()
	if p.at(CONSTRAINT_KW) {
		cn := p.open()
		p.bump(CONSTRAINT_KW)
		name(p)
		p.close(cn, CONSTRAINT_NAME)
	}
	switch p.current() {
	case NOT_KW:
		p.bump(NOT_KW)
		p.expect(NULL_KW)
		p.close(m, NOT_NULL_CONSTRAINT)
	case NULL_KW:
		p.bump(NULL_KW)
		p.close(m, NULL_CONSTRAINT)
	case CHECK_KW:
		p.bump(CHECK_KW)
		p.expect(L_PAREN)
		expr(p)
		p.expect(R_PAREN)
		p.close(m, CHECK_CONSTRAINT)
	default:
		p.err("expected domain constraint")
		p.close(m, ERROR)
	}
}

func createFunction(p *parser, m Marker) {
	pathAsName(p)
	if p.at(L_PAREN) {
		paramList(p)
	}
	if p.at(RETURNS_KW) {
		r := p.open()
		p.bump(RETURNS_KW)
		if p.at(TABLE_KW) {
			p.bump(TABLE_KW)
			p.expect(L_PAREN)
			for !p.at(R_PAREN) && !p.atEOF() {
				if p.stuck() {
					break
				}
				p.bumpAny()
			}
			p.expect(R_PAREN)
		} else {
			typeName(p)
		}
		p.close(r, RETURNS_CLAUSE)
	}
	for !p.atEOF() && !p.at(SEMICOLON) {
		funcOption(p)
		if p.stuck() {
			break
		}
	}
	stmtEnd(p)
	p.close(m, CREATE_FUNCTION)
}

func paramList(p *parser) {
	m := p.open()
	p.bump(L_PAREN)
	if !p.at(R_PAREN) {
		funcParam(p)
		for p.eat(COMMA) {
			funcParam(p)
		}
	}
	p.expect(R_PAREN)
	p.close(m, PARAM_LIST)
}

func funcParam(p *parser) {
	m := p.open()
	if p.at(IN_KW) || p.at(OUT_KW) || p.at(VARIADIC_KW) {
		p.bumpAny()
		p.eat(OUT_KW) // IN OUT
	}
	// An optional name followed by a type; with one token left it is a type.
	if atName(p) && atTypeNameAt(p, 1) {
		name(p)
	}
	typeName(p)
	if p.at(DEFAULT_KW) || p.at(EQ) {
		p.bumpAny()
		exprBP(p, bpBetweenIn)
	}
	p.close(m, FUNC_PARAM)
}

func atTypeNameAt(p *parser, n int) bool {
	k := p.nth(n)
	return k == IDENT || k == QUOTED_IDENT || TypeKeywords.Contains(k)
}

func funcOption(p *parser) {
	m := p.open()
	switch p.current() {
	case LANGUAGE_KW:
		p.bump(LANGUAGE_KW)
		if atName(p) || p.at(STRING) {
			p.bumpAny()
		}
	case AS_KW:
		p.bump(AS_KW)
		b := p.open()
		if p.at(STRING) || p.at(DOLLAR_QUOTED_STRING) || p.at(ESC_STRING) {
			p.bumpAny()
			if p.eat(COMMA) {
				if p.at(STRING) || p.at(DOLLAR_QUOTED_STRING) {
					p.bumpAny()
				}
			}
		}
		p.close(b, AS_BODY)
	case VOLATILE_KW, STABLE_KW, IMMUTABLE_KW, STRICT_KW, PARALLEL_KW, CALLED_KW, SECURITY_KW, COST_KW, ROWS_KW:
		p.bumpAny()
		// Swallow the option's argument tokens, if any.
		for atName(p) || p.at(INT_NUMBER) || p.at(FLOAT_NUMBER) || p.at(NULL_KW) || p.at(ON_KW) {
			p.bumpAny()
		}
	case RETURNS_KW:
		p.bump(RETURNS_KW)
		p.eat(NULL_KW)
		p.eat(ON_KW)
		p.eat(NULL_KW)
		if p.current() == IDENT {
			p.bumpAny()
		}
	case SET_KW:
		p.bump(SET_KW)
		for atName(p) || p.at(EQ) || p.at(TO_KW) || p.at(STRING) || p.at(INT_NUMBER) {
			p.bumpAny()
		}
	default:
		p.bumpAny()
	}
	p.close(m, FUNC_OPTION)
}

func createType(p *parser, m Marker) {
	pathAsName(p)
	if p.at(AS_KW) {
		p.bump(AS_KW)
		if p.current() == IDENT || p.at(RANGE_KW) {
			// AS ENUM / AS RANGE arrive as identifiers.
			p.bumpAny()
			if p.at(L_PAREN) {
				l := p.open()
				p.bump(L_PAREN)
				if !p.at(R_PAREN) {
					enumVariant(p)
					for p.eat(COMMA) {
						enumVariant(p)
					}
				}
				p.expect(R_PAREN)
				p.close(l, ENUM_VARIANT_LIST)
			}
		} else if p.at(L_PAREN) {
			l := p.open()
			p.bump(L_PAREN)
			if !p.at(R_PAREN) {
				compositeField(p)
				for p.eat(COMMA) {
					compositeField(p)
				}
			}
			p.expect(R_PAREN)
			p.close(l, COMPOSITE_FIELD_LIST)
		}
	} else if p.at(L_PAREN) {
		// Base type definition: opaque option list.
		p.bump(L_PAREN)
		for !p.at(R_PAREN) && !p.atEOF() {
			if p.stuck() {
				break
			}
			p.bumpAny()
		}
		p.expect(R_PAREN)
	}
	stmtEnd(p)
	p.close(m, CREATE_TYPE)
}

func enumVariant(p *parser) {
	if p.at(STRING) {
		m := p.open()
		p.bump(STRING)
		p.close(m, LITERAL)
	} else {
		p.errRecover("expected string literal", stmtRecoverySet)
	}
}

func compositeField(p *parser) {
	m := p.open()
	name(p)
	typeName(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	p.close(m, COMPOSITE_FIELD)
}

func createView(p *parser, m Marker) {
	ifNotExists(p)
	pathAsName(p)
	if p.at(L_PAREN) {
		columnList(p)
	}
	if p.at(WITH_KW) {
		p.bump(WITH_KW)
		if p.at(L_PAREN) {
			p.bump(L_PAREN)
			for !p.at(R_PAREN) && !p.atEOF() {
				if p.stuck() {
					break
				}
				p.bumpAny()
			}
			p.expect(R_PAREN)
		}
	}
	p.expect(AS_KW)
	selectBody(p)
	if p.at(WITH_KW) {
		p.bump(WITH_KW)
		if p.at(CASCADED_KW) || p.at(LOCAL_KW) {
			p.bumpAny()
		}
		p.eat(CHECK_KW)
		p.eat(OPTION_KW)
	}
	stmtEnd(p)
	p.close(m, CREATE_VIEW)
}

func createSchema(p *parser, m Marker) {
	ifNotExists(p)
	if atName(p) {
		name(p)
	}
	if p.at(AUTHORIZATION_KW) {
		p.bump(AUTHORIZATION_KW)
		if atName(p) || p.at(CURRENT_USER_KW) || p.at(SESSION_USER_KW) || p.at(CURRENT_ROLE_KW) {
			p.bumpAny()
		}
	}
	stmtEnd(p)
	p.close(m, CREATE_SCHEMA)
}
