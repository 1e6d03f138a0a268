package parser

func alterStmt(p *parser) {
	m := p.open()
	p.bump(ALTER_KW)
	switch p.current() {
	case TABLE_KW:
		p.bump(TABLE_KW)
		alterTable(p, m)
	case DOMAIN_KW:
		p.bump(DOMAIN_KW)
		alterDomain(p, m)
	case INDEX_KW, VIEW_KW, SEQUENCE_KW, SCHEMA_KW, TYPE_KW, FUNCTION_KW, MATERIALIZED_KW:
		// Forms the linter has no rules for; keep the statement well formed.
		p.bumpAny()
		for !p.atEOF() && !p.at(SEMICOLON) {
			if p.stuck() {
				break
			}
			p.bumpAny()
		}
		stmtEnd(p)
		p.close(m, ERROR)
	default:
		p.err("expected TABLE or DOMAIN")
		recoverToStmtBoundary(p)
		p.close(m, ERROR)
	}
}

func alterTable(p *parser, m Marker) {
	ifExists(p)
	p.eat(ONLY_KW)
	path(p)
	alterTableAction(p)
	for p.eat(COMMA) {
		alterTableAction(p)
	}
	stmtEnd(p)
	p.close(m, ALTER_TABLE)
}

var actionRecoverySet = stmtRecoverySet.Union(NewTokenSet(COMMA))

func alterTableAction(p *parser) {
	switch p.current() {
	case ADD_KW:
		alterTableAdd(p)
	case DROP_KW:
		alterTableDrop(p)
	case VALIDATE_KW:
		m := p.open()
		p.bump(VALIDATE_KW)
		p.expect(CONSTRAINT_KW)
		nameRef(p)
		p.close(m, VALIDATE_CONSTRAINT)
	case ALTER_KW:
		alterColumn(p)
	case RENAME_KW:
		alterTableRename(p)
	case SET_KW:
		alterTableSet(p)
	case OWNER_KW:
		m := p.open()
		p.bump(OWNER_KW)
		p.expect(TO_KW)
		if atName(p) || p.at(CURRENT_USER_KW) || p.at(SESSION_USER_KW) || p.at(CURRENT_ROLE_KW) {
			p.bumpAny()
		}
		p.close(m, OWNER_TO)
	case ENABLE_KW, INHERIT_KW, NO_KW, ATTACH_KW, DETACH_KW, REPLICA_KW:
		lenientAction(p)
	default:
		m := p.open()
		p.err("expected ALTER TABLE action")
		for !p.atEOF() && !p.atAny(actionRecoverySet) {
			if p.stuck() {
				break
			}
			p.bumpAny()
		}
		p.close(m, ALTER_TABLE_ACTION_ERROR)
	}
}

// lenientAction consumes an action the linter has no rules for, up to the
// next comma or statement boundary.
func lenientAction(p *parser) {
	m := p.open()
	depth := 0
	for !p.atEOF() {
		switch p.current() {
		case L_PAREN:
			depth++
		case R_PAREN:
			if depth == 0 {
				p.close(m, ALTER_TABLE_ACTION_ERROR)
				return
			}
			depth--
		case COMMA, SEMICOLON:
			if depth == 0 {
				p.close(m, ALTER_TABLE_ACTION_ERROR)
				return
			}
		}
		p.bumpAny()
	}
	p.close(m, ALTER_TABLE_ACTION_ERROR)
}

func alterTableAdd(p *parser) {
	m := p.open()
	p.bump(ADD_KW)
	switch p.current() {
	case COLUMN_KW:
		p.bump(COLUMN_KW)
		addColumnTail(p, m)
	case CONSTRAINT_KW, PRIMARY_KW, UNIQUE_KW, CHECK_KW, FOREIGN_KW, EXCLUDE_KW:
		tableConstraint(p)
		if p.at(NOT_KW) && p.nth(1) == VALID_KW {
			nv := p.open()
			p.bump(NOT_KW)
			p.bump(VALID_KW)
			p.close(nv, NOT_VALID)
		}
		p.close(m, ADD_CONSTRAINT)
	default:
		addColumnTail(p, m)
	}
}

func addColumnTail(p *parser, m Marker) {
	ifNotExists(p)
	name(p)
	typeName(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	for atConstraintStart(p) {
		columnConstraint(p)
	}
	p.close(m, ADD_COLUMN)
}

func alterTableDrop(p *parser) {
	m := p.open()
	p.bump(DROP_KW)
	if p.at(CONSTRAINT_KW) {
		p.bump(CONSTRAINT_KW)
		ifExists(p)
		nameRef(p)
		if p.at(CASCADE_KW) || p.at(RESTRICT_KW) {
			p.bumpAny()
		}
		p.close(m, DROP_CONSTRAINT)
		return
	}
	p.eat(COLUMN_KW)
	ifExists(p)
	nameRef(p)
	if p.at(CASCADE_KW) || p.at(RESTRICT_KW) {
		p.bumpAny()
	}
	p.close(m, DROP_COLUMN)
}

func alterColumn(p *parser) {
	m := p.open()
	p.bump(ALTER_KW)
	p.eat(COLUMN_KW)
	nameRef(p)
	switch p.current() {
	case TYPE_KW:
		setTypeTail(p, m)
		return
	case SET_KW:
		switch p.nth(1) {
		case DATA_KW, TYPE_KW:
			setTypeTail(p, m)
			return
		case DEFAULT_KW:
			o := p.open()
			p.bump(SET_KW)
			p.bump(DEFAULT_KW)
			exprBP(p, bpBetweenIn)
			p.close(o, SET_DEFAULT)
		case NOT_KW:
			o := p.open()
			p.bump(SET_KW)
			p.bump(NOT_KW)
			p.expect(NULL_KW)
			p.close(o, SET_NOT_NULL)
		case STATISTICS_KW:
			o := p.open()
			p.bump(SET_KW)
			p.bump(STATISTICS_KW)
			if p.at(INT_NUMBER) {
				p.bump(INT_NUMBER)
			}
			p.close(o, SET_STATISTICS)
		case STORAGE_KW:
			o := p.open()
			p.bump(SET_KW)
			p.bump(STORAGE_KW)
			if atName(p) {
				p.bumpAny()
			}
			p.close(o, SET_STORAGE)
		default:
			// SET ( attribute = value, ... ) and similar.
			lenientAction(p)
		}
	case DROP_KW:
		switch p.nth(1) {
		case DEFAULT_KW:
			o := p.open()
			p.bump(DROP_KW)
			p.bump(DEFAULT_KW)
			p.close(o, DROP_DEFAULT)
		case NOT_KW:
			o := p.open()
			p.bump(DROP_KW)
			p.bump(NOT_KW)
			p.expect(NULL_KW)
			p.close(o, DROP_NOT_NULL)
		case IDENTITY_KW:
			o := p.open()
			p.bump(DROP_KW)
			p.bump(IDENTITY_KW)
			ifExists(p)
			p.close(o, ALTER_TABLE_ACTION_ERROR)
		default:
			lenientAction(p)
		}
	case ADD_KW:
		// ADD GENERATED ... AS IDENTITY
		lenientAction(p)
	default:
		lenientAction(p)
	}
	p.close(m, ALTER_COLUMN)
}

// setTypeTail parses `[SET DATA] TYPE type [COLLATE ...] [USING expr]` into a
// SET_TYPE option.
func setTypeTail(p *parser, m Marker) {
	o := p.open()
	if p.at(SET_KW) {
		p.bump(SET_KW)
		p.eat(DATA_KW)
	}
	p.expect(TYPE_KW)
	typeName(p)
	if p.at(COLLATE_KW) {
		p.bump(COLLATE_KW)
		path(p)
	}
	if p.at(USING_KW) {
		p.bump(USING_KW)
		expr(p)
	}
	p.close(o, SET_TYPE)
	p.close(m, ALTER_COLUMN)
}

func alterTableRename(p *parser) {
	m := p.open()
	p.bump(RENAME_KW)
	switch p.current() {
	case TO_KW:
		p.bump(TO_KW)
		name(p)
		p.close(m, RENAME_TABLE)
	case CONSTRAINT_KW:
		p.bump(CONSTRAINT_KW)
		nameRef(p)
		p.expect(TO_KW)
		name(p)
		p.close(m, RENAME_CONSTRAINT)
	case COLUMN_KW:
		p.bump(COLUMN_KW)
		nameRef(p)
		p.expect(TO_KW)
		name(p)
		p.close(m, RENAME_COLUMN)
	default:
		nameRef(p)
		p.expect(TO_KW)
		name(p)
		p.close(m, RENAME_COLUMN)
	}
}

func alterTableSet(p *parser) {
	m := p.open()
	p.bump(SET_KW)
	switch p.current() {
	case LOGGED_KW:
		p.bump(LOGGED_KW)
		p.close(m, SET_LOGGED)
	case UNLOGGED_KW:
		p.bump(UNLOGGED_KW)
		p.close(m, SET_UNLOGGED)
	case SCHEMA_KW:
		p.bump(SCHEMA_KW)
		nameRef(p)
		p.close(m, SET_SCHEMA)
	case TABLESPACE_KW:
		p.bump(TABLESPACE_KW)
		nameRef(p)
		p.close(m, ALTER_TABLE_ACTION_ERROR)
	default:
		// SET (storage_parameter = value), SET WITHOUT CLUSTER, ...
		depth := 0
		for !p.atEOF() {
			switch p.current() {
			case L_PAREN:
				depth++
			case R_PAREN:
				depth--
			case COMMA, SEMICOLON:
				if depth == 0 {
					p.close(m, ALTER_TABLE_ACTION_ERROR)
					return
				}
			}
			p.bumpAny()
		}
		p.close(m, ALTER_TABLE_ACTION_ERROR)
	}
}

func alterDomain(p *parser, m Marker) {
	ifExists(p)
	path(p)
	switch p.current() {
	case ADD_KW:
		a := p.open()
		p.bump(ADD_KW)
		domainConstraint(p)
		if p.at(NOT_KW) && p.nth(1) == VALID_KW {
			nv := p.open()
			p.bump(NOT_KW)
			p.bump(VALID_KW)
			p.close(nv, NOT_VALID)
		}
		p.close(a, ADD_DOMAIN_CONSTRAINT)
	case DROP_KW:
		a := p.open()
		p.bump(DROP_KW)
		switch p.current() {
		case CONSTRAINT_KW:
			p.bump(CONSTRAINT_KW)
			ifExists(p)
			nameRef(p)
			if p.at(CASCADE_KW) || p.at(RESTRICT_KW) {
				p.bumpAny()
			}
			p.close(a, DROP_DOMAIN_CONSTRAINT)
		case DEFAULT_KW:
			p.bump(DEFAULT_KW)
			p.close(a, DOMAIN_DEFAULT)
		case NOT_KW:
			p.bump(NOT_KW)
			p.expect(NULL_KW)
			p.close(a, DOMAIN_NOT_NULL)
		default:
			p.err("expected CONSTRAINT, DEFAULT, or NOT NULL")
			p.close(a, ERROR)
		}
	case VALIDATE_KW:
		a := p.open()
		p.bump(VALIDATE_KW)
		p.expect(CONSTRAINT_KW)
		nameRef(p)
		p.close(a, VALIDATE_DOMAIN_CONSTRAINT)
	case SET_KW:
		a := p.open()
		p.bump(SET_KW)
		switch p.current() {
		case DEFAULT_KW:
			p.bump(DEFAULT_KW)
			exprBP(p, bpBetweenIn)
			p.close(a, DOMAIN_DEFAULT)
		case NOT_KW:
			p.bump(NOT_KW)
			p.expect(NULL_KW)
			p.close(a, DOMAIN_NOT_NULL)
		case SCHEMA_KW:
			p.bump(SCHEMA_KW)
			nameRef(p)
			p.close(a, SET_SCHEMA)
		default:
			p.err("expected DEFAULT, NOT NULL, or SCHEMA")
			p.close(a, ERROR)
		}
	case RENAME_KW:
		a := p.open()
		p.bump(RENAME_KW)
		if p.at(CONSTRAINT_KW) {
			p.bump(CONSTRAINT_KW)
			nameRef(p)
		}
		p.expect(TO_KW)
		name(p)
		p.close(a, RENAME_CONSTRAINT)
	case OWNER_KW:
		a := p.open()
		p.bump(OWNER_KW)
		p.expect(TO_KW)
		if atName(p) || p.at(CURRENT_USER_KW) || p.at(SESSION_USER_KW) {
			p.bumpAny()
		}
		p.close(a, OWNER_TO)
	default:
		p.err("expected ALTER DOMAIN action")
		recoverToStmtBoundary(p)
	}
	stmtEnd(p)
	p.close(m, ALTER_DOMAIN)
}
