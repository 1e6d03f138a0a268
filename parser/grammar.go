package parser

// Statement-start tokens used for error recovery: on a malformed statement the
// parser skips forward to the next semicolon or one of these.
var stmtStartSet = NewTokenSet(
	SELECT_KW, INSERT_KW, UPDATE_KW, DELETE_KW, TRUNCATE_KW, CREATE_KW,
	ALTER_KW, DROP_KW, BEGIN_KW, START_KW, COMMIT_KW, END_KW, ROLLBACK_KW,
	ABORT_KW, SAVEPOINT_KW, SET_KW, COMMENT_KW, WITH_KW, VALUES_KW, GRANT_KW,
)

var stmtRecoverySet = stmtStartSet.Union(NewTokenSet(SEMICOLON))

func sourceFile(p *parser) {
	m := p.open()
	for !p.atEOF() {
		statement(p)
	}
	p.close(m, SOURCE_FILE)
}

func statement(p *parser) {
	if p.at(SEMICOLON) {
		// Empty statement; the stray semicolon lives directly in the file.
		p.bump(SEMICOLON)
		return
	}
	switch p.current() {
	case WITH_KW:
		withPrefixedStmt(p)
	case SELECT_KW, VALUES_KW:
		selectStmt(p, p.open())
	case INSERT_KW:
		insertStmt(p)
	case UPDATE_KW:
		updateStmt(p)
	case DELETE_KW:
		deleteStmt(p)
	case TRUNCATE_KW:
		truncateStmt(p)
	case CREATE_KW:
		createStmt(p)
	case ALTER_KW:
		alterStmt(p)
	case DROP_KW:
		dropStmt(p)
	case BEGIN_KW, START_KW:
		beginStmt(p)
	case COMMIT_KW, END_KW:
		commitStmt(p)
	case ROLLBACK_KW, ABORT_KW:
		rollbackStmt(p)
	case SAVEPOINT_KW:
		savepointStmt(p)
	case SET_KW:
		setStmt(p)
	case COMMENT_KW:
		commentOnStmt(p)
	default:
		p.err("expected statement")
		// Always consume the offending token, then sync; a recovery token in
		// first position must not stall the statement loop.
		m := p.open()
		p.bumpAny()
		skipToStmtBoundary(p)
		p.close(m, ERROR)
	}
}

func skipToStmtBoundary(p *parser) {
	depth := 0
	for !p.atEOF() {
		switch p.current() {
		case L_PAREN:
			depth++
		case R_PAREN:
			if depth > 0 {
				depth--
			}
		case SEMICOLON:
			if depth == 0 {
				p.bump(SEMICOLON)
				return
			}
		default:
			if depth == 0 && p.atAny(stmtStartSet) {
				return
			}
		}
		p.bumpAny()
	}
}

// recoverToStmtBoundary skips tokens until the next statement boundary,
// wrapping the skipped run in an error node.
func recoverToStmtBoundary(p *parser) {
	if p.atEOF() || p.atAny(stmtStartSet) {
		return
	}
	m := p.open()
	skipToStmtBoundary(p)
	p.close(m, ERROR)
}

// stmtEnd consumes the terminating semicolon, if any, into the statement node.
func stmtEnd(p *parser) {
	p.eat(SEMICOLON)
}

func beginStmt(p *parser) {
	m := p.open()
	if p.at(START_KW) {
		p.bump(START_KW)
		p.expect(TRANSACTION_KW)
	} else {
		p.bump(BEGIN_KW)
		if p.at(WORK_KW) || p.at(TRANSACTION_KW) {
			p.bumpAny()
		}
	}
	transactionModes(p)
	stmtEnd(p)
	p.close(m, BEGIN_STMT)
}

func transactionModes(p *parser) {
	for {
		switch p.current() {
		case ISOLATION_KW:
			p.bump(ISOLATION_KW)
			p.expect(LEVEL_KW)
			switch p.current() {
			case SERIALIZABLE_KW:
				p.bump(SERIALIZABLE_KW)
			case REPEATABLE_KW:
				p.bump(REPEATABLE_KW)
				if p.current() == IDENT {
					p.bumpAny() // READ
				}
			default:
				// READ COMMITTED / READ UNCOMMITTED
				if p.current() == IDENT {
					p.bumpAny()
				}
				if p.at(UNCOMMITTED_KW) || p.current() == IDENT {
					p.bumpAny()
				}
			}
		case NOT_KW:
			p.bump(NOT_KW)
			p.bumpAny() // DEFERRABLE
		case DEFERRABLE_KW:
			p.bump(DEFERRABLE_KW)
		case COMMA:
			p.bump(COMMA)
		default:
			// READ ONLY / READ WRITE arrive as IDENT "read" plus keyword.
			if p.current() == IDENT {
				p.bumpAny()
				p.eat(ONLY_KW)
				continue
			}
			return
		}
	}
}

func commitStmt(p *parser) {
	m := p.open()
	p.bumpAny() // COMMIT or END
	if p.at(WORK_KW) || p.at(TRANSACTION_KW) {
		p.bumpAny()
	}
	if p.at(AND_KW) {
		p.bump(AND_KW)
		p.eat(NO_KW)
		p.eat(CHAIN_KW)
	}
	stmtEnd(p)
	p.close(m, COMMIT_STMT)
}

func rollbackStmt(p *parser) {
	m := p.open()
	p.bumpAny() // ROLLBACK or ABORT
	if p.at(WORK_KW) || p.at(TRANSACTION_KW) {
		p.bumpAny()
	}
	if p.at(TO_KW) {
		p.bump(TO_KW)
		p.eat(SAVEPOINT_KW)
		name(p)
	}
	if p.at(AND_KW) {
		p.bump(AND_KW)
		p.eat(NO_KW)
		p.eat(CHAIN_KW)
	}
	stmtEnd(p)
	p.close(m, ROLLBACK_STMT)
}

func savepointStmt(p *parser) {
	m := p.open()
	p.bump(SAVEPOINT_KW)
	name(p)
	stmtEnd(p)
	p.close(m, SAVEPOINT_STMT)
}

// setStmt parses SET in a deliberately lenient way; its many forms (run-time
// parameters, SET TRANSACTION, SET CONSTRAINTS) share no useful structure for
// linting.
func setStmt(p *parser) {
	m := p.open()
	p.bump(SET_KW)
	for !p.atEOF() && !p.at(SEMICOLON) {
		if p.atAny(stmtStartSet) && !p.at(SET_KW) {
			break
		}
		p.bumpAny()
	}
	stmtEnd(p)
	p.close(m, SET_STMT)
}

func commentOnStmt(p *parser) {
	m := p.open()
	p.bump(COMMENT_KW)
	p.expect(ON_KW)
	for !p.atEOF() && !p.at(SEMICOLON) && !p.at(IS_KW) {
		if p.stuck() {
			break
		}
		p.bumpAny()
	}
	if p.eat(IS_KW) {
		if p.at(NULL_KW) {
			lhs := p.open()
			p.bump(NULL_KW)
			p.close(lhs, LITERAL)
		} else {
			expr(p)
		}
	}
	stmtEnd(p)
	p.close(m, COMMENT_ON_STMT)
}

func dropStmt(p *parser) {
	m := p.open()
	p.bump(DROP_KW)
	var kind SyntaxKind
	switch p.current() {
	case TABLE_KW:
		p.bump(TABLE_KW)
		kind = DROP_TABLE
	case INDEX_KW:
		p.bump(INDEX_KW)
		p.eat(CONCURRENTLY_KW)
		kind = DROP_INDEX
	case DATABASE_KW:
		p.bump(DATABASE_KW)
		kind = DROP_DATABASE
	case TYPE_KW:
		p.bump(TYPE_KW)
		kind = DROP_TYPE
	case TRIGGER_KW:
		p.bump(TRIGGER_KW)
		kind = DROP_TRIGGER
	case DOMAIN_KW:
		p.bump(DOMAIN_KW)
		kind = DROP_DOMAIN
	default:
		p.err("expected TABLE, INDEX, DATABASE, TYPE, TRIGGER, or DOMAIN")
		recoverToStmtBoundary(p)
		p.close(m, ERROR)
		return
	}
	ifExists(p)
	if kind == DROP_TRIGGER {
		name(p)
		p.expect(ON_KW)
		path(p)
	} else {
		path(p)
		for p.eat(COMMA) {
			path(p)
		}
	}
	if p.at(CASCADE_KW) || p.at(RESTRICT_KW) {
		p.bumpAny()
	}
	stmtEnd(p)
	p.close(m, kind)
}

func ifExists(p *parser) {
	if p.at(IF_KW) && p.nth(1) == EXISTS_KW {
		p.bump(IF_KW)
		p.bump(EXISTS_KW)
	}
}

func ifNotExists(p *parser) {
	if p.at(IF_KW) && p.nth(1) == NOT_KW {
		p.bump(IF_KW)
		p.bump(NOT_KW)
		p.expect(EXISTS_KW)
	}
}

// Name parsing. A NAME introduces a binding (table being created, column being
// added); a NAME_REF mentions an existing one.

var nameTokens = NewTokenSet(IDENT, QUOTED_IDENT)

func atName(p *parser) bool {
	k := p.current()
	return nameTokens.Contains(k) || ColumnOrTableKeywords.Contains(k)
}

func name(p *parser) {
	nameNode(p, NAME)
}

func nameRef(p *parser) {
	nameNode(p, NAME_REF)
}

func nameNode(p *parser, kind SyntaxKind) {
	if !atName(p) {
		p.errRecover("expected name", stmtRecoverySet)
		return
	}
	m := p.open()
	p.bumpAny()
	p.close(m, kind)
}

// path parses a possibly-qualified name: `a`, `a.b`, `a.b.c`. Each segment is
// a PATH_SEGMENT holding a NAME_REF. A float literal that spells `b.c` (or a
// trailing `b.`) is re-split by the builder.
func path(p *parser) {
	m := p.open()
	pathSegment(p)
	for {
		if p.at(DOT) {
			p.bump(DOT)
			if p.at(FLOAT_NUMBER) {
				seg := p.open()
				p.floatSplit()
				p.close(seg, PATH_SEGMENT)
				continue
			}
			pathSegment(p)
			continue
		}
		if p.at(FLOAT_NUMBER) && p.inp.IsJoint(p.pos) {
			// `a.1` lexes the `.1` as one float token.
			seg := p.open()
			p.floatSplit()
			p.close(seg, PATH_SEGMENT)
			continue
		}
		break
	}
	p.close(m, PATH)
}

func pathSegment(p *parser) {
	m := p.open()
	nameRef(p)
	p.close(m, PATH_SEGMENT)
}
